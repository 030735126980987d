// Command lvrate rates competitors from head-to-head results and explores
// synthetic item-response data.
//
//	lvrate graph [games.csv] [conferences.csv] [output.dot]
//	lvrate elo games.csv
//	lvrate irt simulate | irt fit
//	lvrate tournament
//	lvrate chain games.csv from to
//	lvrate check
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
