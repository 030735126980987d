package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvrate/core"
	"github.com/katalvlaran/lvrate/dfs"
	"github.com/katalvlaran/lvrate/elo"
	"github.com/katalvlaran/lvrate/football"
	"github.com/katalvlaran/lvrate/objective"
	"github.com/spf13/cobra"
)

var errNoConferenceGames = errors.New("no games within conference")

func newEloCmd(a *app) *cobra.Command {
	var (
		top         int
		conference  string
		conferences string
	)
	cmd := &cobra.Command{
		Use:   "elo <games.csv>",
		Short: "Fit pairwise ratings to game results",
		Long: `Convert every game to a (winner, loser) pair and minimize the pairwise
objective over one rating per team. Ratings are printed best first.

When some team never lost (or never won) the objective keeps decreasing as
its rating grows, so the run is bounded by optimizer.max_iterations.

With --conference only games between two teams of that conference are
fitted; team conferences are read from --conferences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resultsGraph(args[0], conferences, conference)
			if err != nil {
				return err
			}
			if err := warnIfDisconnected(a, g); err != nil {
				return err
			}
			vocab, winners, losers, err := elo.ConvertEdges(g.Pairs())
			if err != nil {
				return err
			}
			f, err := elo.NewNegLikelihood(winners, losers)
			if err != nil {
				return err
			}
			grad, err := elo.NewNegLikelihoodGrad(winners, losers)
			if err != nil {
				return err
			}

			a.log.Info("fitting ratings", "teams", vocab.Len(), "games", len(winners))
			res, err := objective.Minimize(f, grad, make([]float64, vocab.Len()), a.cfg.OptimizerSettings())
			if res == nil {
				return err
			}
			if err != nil {
				a.log.Warn("optimizer stopped early", "err", err)
			}
			a.log.Info("optimizer finished", "status", res.Status, "iterations", res.Iterations, "objective", res.F)

			order := make([]int, vocab.Len())
			for i := range order {
				order[i] = i
			}
			sort.SliceStable(order, func(i, j int) bool { return res.X[order[i]] > res.X[order[j]] })
			if top > 0 && top < len(order) {
				order = order[:top]
			}

			out := cmd.OutOrStdout()
			for rank, i := range order {
				fmt.Fprintf(out, "%4d  %-32s %8.4f\n", rank+1, vocab.Name(i), res.X[i])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "Print only the best N teams (0 prints all)")
	cmd.Flags().StringVar(&conference, "conference", "", "Fit only the games inside this conference")
	cmd.Flags().StringVar(&conferences, "conferences", defaultConferencesFile, "Team/conference CSV used with --conference")

	return cmd
}

// resultsGraph loads the season. With a conference it keeps only that
// conference's teams and the games among them.
func resultsGraph(gamesPath, conferencesPath, conference string) (*core.Graph, error) {
	if conference == "" {
		games, err := readGames(gamesPath)
		if err != nil {
			return nil, err
		}
		g := core.NewGraph(core.WithSelfPlay())
		for _, p := range football.Pairs(games) {
			if _, err := g.AddOutcome(p.Winner, p.Loser); err != nil {
				return nil, err
			}
		}
		return g, nil
	}

	season, err := loadSeason(gamesPath, conferencesPath)
	if err != nil {
		return nil, err
	}
	sub := core.GroupSubgraph(season, conference)
	if sub.OutcomeCount() == 0 {
		return nil, fmt.Errorf("conference %q: %w", conference, errNoConferenceGames)
	}
	return sub, nil
}

// warnIfDisconnected logs when the results do not form one strongly
// connected component; the fitted ratings then drift apart until the
// iteration limit.
func warnIfDisconnected(a *app, g *core.Graph) error {
	comps, err := dfs.StronglyConnectedComponents(g)
	if err != nil {
		return err
	}
	if len(comps) > 1 {
		a.log.Warn("results are not strongly connected; ratings have no finite optimum",
			"components", len(comps), "teams", g.CompetitorCount())
	}
	return nil
}
