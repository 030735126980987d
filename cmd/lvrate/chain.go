package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvrate/bfs"
	"github.com/spf13/cobra"
)

func newChainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <games.csv> <from> <to>",
		Short: "Print a shortest chain of wins from one team to another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resultsGraph(args[0], "", "")
			if err != nil {
				return err
			}

			chain, err := bfs.WinChain(g, args[1], args[2])
			if err != nil {
				return fmt.Errorf("chain %s > %s: %w", args[1], args[2], err)
			}
			a.log.Debug("chain found", "length", len(chain)-1)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chain, " > "))

			return err
		},
	}
}
