package main

import (
	"fmt"

	"github.com/katalvlaran/lvrate/irt"
	"github.com/katalvlaran/lvrate/objective"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Output formats for irt simulate.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// simFlags override the simulation section of the configuration.
type simFlags struct {
	students, questions, responses int
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.students, "students", 0, "Number of students (0 uses the config)")
	cmd.Flags().IntVar(&f.questions, "questions", 0, "Number of questions (0 uses the config)")
	cmd.Flags().IntVar(&f.responses, "responses", 0, "Responses per student (0 uses the config)")
}

// simulate draws a data set sized by the config, overridden by non-zero flags.
func (f *simFlags) simulate(a *app) (*irt.Simulation, error) {
	s := a.cfg.Simulation
	if f.students != 0 {
		s.Students = f.students
	}
	if f.questions != 0 {
		s.Questions = f.questions
	}
	if f.responses != 0 {
		s.ResponsesPerStudent = f.responses
	}
	a.log.Debug("simulating", "students", s.Students, "questions", s.Questions, "responses", s.ResponsesPerStudent, "seed", a.cfg.Seed)

	return irt.Simulate(s.Students, s.Questions, s.ResponsesPerStudent, irt.WithRand(a.cfg.Rand()))
}

// simulationDoc is the YAML layout of a simulation.
type simulationDoc struct {
	Abilities    []float64 `yaml:"abilities"`
	Difficulties []float64 `yaml:"difficulties"`
	Answered     [][]int   `yaml:"answered"`
	Correct      [][]bool  `yaml:"correct"`
}

func newIRTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "irt",
		Short: "Simulate and fit one-parameter item response data",
	}
	cmd.AddCommand(newIRTSimulateCmd(a), newIRTFitCmd(a))
	return cmd
}

func newIRTSimulateCmd(a *app) *cobra.Command {
	var (
		flags  simFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw a synthetic response data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, err := flags.simulate(a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case formatYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(simulationDoc{
					Abilities:    sim.Abilities,
					Difficulties: sim.Difficulties,
					Answered:     sim.Answered,
					Correct:      sim.Correct,
				}); err != nil {
					return err
				}
				return enc.Close()
			case formatText:
				students, per := sim.Shape()
				var right, total int
				for _, row := range sim.Correct {
					for _, ok := range row {
						total++
						if ok {
							right++
						}
					}
				}
				fmt.Fprintf(out, "students:     %d\n", students)
				fmt.Fprintf(out, "questions:    %d\n", len(sim.Difficulties))
				fmt.Fprintf(out, "responses:    %d per student\n", per)
				fmt.Fprintf(out, "correct:      %d/%d (%.1f%%)\n", right, total, 100*float64(right)/float64(total))
				fmt.Fprintf(out, "ability:      mean %.4f sd %.4f\n", stat.Mean(sim.Abilities, nil), stat.StdDev(sim.Abilities, nil))
				fmt.Fprintf(out, "difficulty:   mean %.4f sd %.4f\n", stat.Mean(sim.Difficulties, nil), stat.StdDev(sim.Difficulties, nil))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
			}
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, yaml)")

	return cmd
}

func newIRTFitCmd(a *app) *cobra.Command {
	var flags simFlags
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Simulate data, minimize the IRT objective and compare with the truth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sim, err := flags.simulate(a)
			if err != nil {
				return err
			}
			f, err := irt.NewNegObjective(sim.Responses)
			if err != nil {
				return err
			}
			g, err := irt.NewNegObjectiveGrad(sim.Responses)
			if err != nil {
				return err
			}

			truth := sim.Params()
			res, err := objective.Minimize(f, g, make([]float64, len(truth)), a.cfg.OptimizerSettings())
			if res == nil {
				return err
			}
			if err != nil {
				a.log.Warn("optimizer stopped early", "err", err)
			}
			a.log.Info("optimizer finished", "status", res.Status, "iterations", res.Iterations, "objective", res.F)

			students := len(sim.Abilities)
			abilities, difficulties := res.X[:students], res.X[students:]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status:                  %s\n", res.Status)
			fmt.Fprintf(out, "iterations:              %d\n", res.Iterations)
			fmt.Fprintf(out, "objective:               %.6f\n", res.F)
			fmt.Fprintf(out, "ability correlation:     %.4f\n", stat.Correlation(sim.Abilities, abilities, nil))
			fmt.Fprintf(out, "difficulty correlation:  %.4f\n", stat.Correlation(sim.Difficulties, difficulties, nil))
			fmt.Fprintf(out, "parameter distance:      %.4f\n", floats.Distance(truth, res.X, 2))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
