// File: games.go
// Role: Game → outcome extraction and conference grouping.

package football

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrate/core"
)

const (
	methodBuildGraph        = "BuildGraph"
	methodSplitByConference = "SplitByConference"
)

// ErrUnknownTeam indicates a game references a team missing from the conference map.
var ErrUnknownTeam = errors.New("football: team has no conference")

// WinOrLose returns the game as a (winner, loser) pair. The home team wins
// only when it scored strictly more; ties go to the visitor.
func (g Game) WinOrLose() core.Pair {
	if g.HomeScore > g.VisitorScore {
		return core.Pair{Winner: g.Home, Loser: g.Visitor}
	}
	return core.Pair{Winner: g.Visitor, Loser: g.Home}
}

// Pairs maps every game to its (winner, loser) pair, preserving order.
func Pairs(games []Game) []core.Pair {
	out := make([]core.Pair, len(games))
	for i, g := range games {
		out[i] = g.WinOrLose()
	}
	return out
}

// BuildGraph records every game as an outcome, with each team assigned its
// conference. Teams that appear only in the conference map are not added.
// A row whose home and visiting team coincide is kept as a self-loop.
//
// Errors:
//   - ErrUnknownTeam when a home or visiting team has no conference.
//   - core errors from AddOutcome (e.g. core.ErrEmptyID, or
//     core.ErrRepeatNotAllowed under core.WithoutRepeats).
//
// Complexity: O(G) for G games.
func BuildGraph(games []Game, conferences map[string]string, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(append([]core.GraphOption{core.WithSelfPlay()}, opts...)...)
	for i, game := range games {
		for _, team := range [2]string{game.Home, game.Visitor} {
			conf, err := conferenceOf(methodBuildGraph, i, game, team, conferences)
			if err != nil {
				return nil, err
			}
			if err := g.AddCompetitor(team, conf); err != nil {
				return nil, fmt.Errorf("%s: game %d: %w", methodBuildGraph, i, err)
			}
		}
		p := game.WinOrLose()
		if _, err := g.AddOutcome(p.Winner, p.Loser); err != nil {
			return nil, fmt.Errorf("%s: game %d: %w", methodBuildGraph, i, err)
		}
	}

	return g, nil
}

// SplitByConference returns the in-conference pairs keyed by conference and
// the cross-conference pairs, both in game order. Two teams are in-conference
// when their conference strings are equal, the empty string included.
func SplitByConference(games []Game, conferences map[string]string) (map[string][]core.Pair, []core.Pair, error) {
	in := make(map[string][]core.Pair)
	var cross []core.Pair
	for i, game := range games {
		home, err := conferenceOf(methodSplitByConference, i, game, game.Home, conferences)
		if err != nil {
			return nil, nil, err
		}
		visitor, err := conferenceOf(methodSplitByConference, i, game, game.Visitor, conferences)
		if err != nil {
			return nil, nil, err
		}
		p := game.WinOrLose()
		if home == visitor {
			in[home] = append(in[home], p)
			continue
		}
		cross = append(cross, p)
	}

	return in, cross, nil
}

func conferenceOf(method string, i int, game Game, team string, conferences map[string]string) (string, error) {
	conf, ok := conferences[team]
	if !ok {
		return "", fmt.Errorf("%s: game %d (%s): %q: %w", method, i, game.Date, team, ErrUnknownTeam)
	}
	return conf, nil
}
