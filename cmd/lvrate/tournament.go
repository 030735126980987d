package main

import (
	"fmt"

	"github.com/katalvlaran/lvrate/builder"
	"github.com/katalvlaran/lvrate/elo"
	"github.com/katalvlaran/lvrate/objective"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newTournamentCmd(a *app) *cobra.Command {
	var (
		teams, rounds, groups int
		spread                float64
	)
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Simulate a round robin from latent ratings and refit them",
		Long: `Draw latent ratings, play a round robin where each game is won with the
pairwise win probability, then minimize the pairwise objective over the
results and report how well the fitted ratings track the latent ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds < 1 || !(spread > 0) {
				return fmt.Errorf("rounds must be >= 1 and spread > 0, got %d and %g", rounds, spread)
			}
			bopts := []builder.BuilderOption{
				builder.WithRand(a.cfg.Rand()),
				builder.WithRounds(rounds),
				builder.WithSpread(spread),
			}
			if groups > 0 {
				bopts = append(bopts, builder.WithGroups(groups))
			}
			tour, err := builder.BuildTournament(nil, bopts, builder.RoundRobin(teams))
			if err != nil {
				return err
			}

			vocab, winners, losers, err := elo.ConvertEdges(tour.Graph.Pairs())
			if err != nil {
				return err
			}
			f, err := elo.NewNegLikelihood(winners, losers)
			if err != nil {
				return err
			}
			g, err := elo.NewNegLikelihoodGrad(winners, losers)
			if err != nil {
				return err
			}
			res, err := objective.Minimize(f, g, make([]float64, vocab.Len()), a.cfg.OptimizerSettings())
			if res == nil {
				return err
			}
			if err != nil {
				a.log.Warn("optimizer stopped early", "err", err)
			}

			latent := tour.RatingsOf(vocab.Names())
			st := tour.Graph.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "teams:        %d\n", st.CompetitorCount)
			fmt.Fprintf(out, "games:        %d\n", st.OutcomeCount)
			fmt.Fprintf(out, "status:       %s\n", res.Status)
			fmt.Fprintf(out, "correlation:  %.4f\n", stat.Correlation(latent, res.X, nil))
			return nil
		},
	}
	cmd.Flags().IntVar(&teams, "teams", 12, "Number of teams")
	cmd.Flags().IntVar(&rounds, "rounds", 4, "Meetings per pair")
	cmd.Flags().IntVar(&groups, "groups", 0, "Split teams into this many groups (0 for none)")
	cmd.Flags().Float64Var(&spread, "spread", 1, "Standard deviation of latent ratings")

	return cmd
}
