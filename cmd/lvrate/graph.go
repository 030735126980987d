package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvrate/core"
	"github.com/katalvlaran/lvrate/dot"
	"github.com/katalvlaran/lvrate/football"
	"github.com/spf13/cobra"
)

// Default file names for the graph command.
const (
	defaultGamesFile       = "cfb2013lines.csv"
	defaultConferencesFile = "conferences.csv"
	defaultOutputFile      = "output.dot"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph [games.csv] [conferences.csv] [output.dot]",
		Short: "Render game results as a Graphviz digraph clustered by conference",
		Long: `Read a games file and a team/conference file and write a DOT digraph
with one edge per game from winner to loser. Games within a conference are
grouped in a cluster. Use "-" as output to write to stdout.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := []string{defaultGamesFile, defaultConferencesFile, defaultOutputFile}
			copy(files, args)

			g, err := loadSeason(files[0], files[1])
			if err != nil {
				return err
			}
			st := g.Stats()
			a.log.Info("season loaded", "teams", st.CompetitorCount, "conferences", st.GroupCount, "games", st.OutcomeCount)

			if files[2] == "-" {
				return dot.Write(cmd.OutOrStdout(), g)
			}
			out, err := os.Create(files[2])
			if err != nil {
				return err
			}
			if err := dot.Write(out, g); err != nil {
				out.Close()
				return err
			}
			a.log.Info("graph written", "path", files[2])

			return out.Close()
		},
	}
}

// loadSeason reads both CSV files and builds the grouped outcome graph.
func loadSeason(gamesPath, conferencesPath string) (*core.Graph, error) {
	games, err := readGames(gamesPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Open(conferencesPath)
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	conferences, err := football.ReadConferences(cf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", conferencesPath, err)
	}

	return football.BuildGraph(games, conferences)
}

func readGames(path string) ([]football.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	games, err := football.ReadGames(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return games, nil
}
