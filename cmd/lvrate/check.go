package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrate/builder"
	"github.com/katalvlaran/lvrate/difftest"
	"github.com/katalvlaran/lvrate/elo"
	"github.com/katalvlaran/lvrate/irt"
	"github.com/katalvlaran/lvrate/objective"
	"github.com/spf13/cobra"
)

// Sizes of the synthetic problems the check command differentiates.
const (
	checkTeams     = 8
	checkGames     = 40
	checkStudents  = 12
	checkQuestions = 6
	checkResponses = 4
)

// errCheckFailed is returned when at least one derivative check fails.
var errCheckFailed = errors.New("derivative check failed")

// gradientCheck is one named check run by the check command.
type gradientCheck struct {
	name string
	run  func(opts difftest.Options) error
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify analytic gradients against central finite differences",
		Long: `Build small random Elo and IRT problems from the configured seed and
compare every analytic gradient and Jacobian with a central finite-difference
estimate, using the difftest section of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checks, err := buildChecks(a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, c := range checks {
				err := c.run(a.cfg.DiffTestOptions())
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", c.name, err)
					a.log.Error("check failed", "check", c.name, "err", err)
					continue
				}
				fmt.Fprintf(out, "ok    %s\n", c.name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(checks), errCheckFailed)
			}
			return nil
		},
	}
}

func buildChecks(a *app) ([]gradientCheck, error) {
	rng := a.cfg.Rand()
	tour, err := builder.BuildTournament(nil,
		[]builder.BuilderOption{builder.WithRand(rng)},
		builder.RandomSchedule(checkTeams, checkGames),
	)
	if err != nil {
		return nil, err
	}
	vocab, winners, losers, err := elo.ConvertEdges(tour.Graph.Pairs())
	if err != nil {
		return nil, err
	}
	teams := vocab.Len()
	eloF, err := elo.NewNegLikelihood(winners, losers)
	if err != nil {
		return nil, err
	}
	eloG, err := elo.NewNegLikelihoodGrad(winners, losers)
	if err != nil {
		return nil, err
	}
	probs, jac, err := elo.NewEdgeProbabilities(winners, losers)
	if err != nil {
		return nil, err
	}

	sim, err := irt.Simulate(checkStudents, checkQuestions, checkResponses, irt.WithRand(rng))
	if err != nil {
		return nil, err
	}
	n := checkStudents + checkQuestions
	irtL, err := irt.NewNegLikelihood(sim.Responses)
	if err != nil {
		return nil, err
	}
	irtLG, err := irt.NewNegLikelihoodGrad(sim.Responses)
	if err != nil {
		return nil, err
	}
	irtF, err := irt.NewNegObjective(sim.Responses)
	if err != nil {
		return nil, err
	}
	irtG, err := irt.NewNegObjectiveGrad(sim.Responses)
	if err != nil {
		return nil, err
	}

	gradient := func(f objective.Func, g objective.Grad, numArgs int) func(difftest.Options) error {
		return func(opts difftest.Options) error {
			return difftest.CheckGradient(f, objective.GradientOf(g), numArgs, opts)
		}
	}

	return []gradientCheck{
		{name: "elo likelihood gradient", run: gradient(eloF, eloG, teams)},
		{name: "elo edge probability jacobian", run: func(opts difftest.Options) error {
			return difftest.CheckJacobian(probs, jac, teams, opts)
		}},
		{name: "irt likelihood gradient", run: gradient(irtL, irtLG, n)},
		{name: "irt prior gradient", run: gradient(irt.NewNegPrior(), irt.NewNegPriorGrad(), n)},
		{name: "irt objective gradient", run: gradient(irtF, irtG, n)},
	}, nil
}
