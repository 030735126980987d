// Package football reads college-football result files and turns them into
// head-to-head outcomes.
//
// Two CSV layouts are understood:
//
//	conferences.csv  team,conference                  (no header)
//	games.csv        date,home,home_score,visitor,visitor_score,line  (header row)
//
// The trailing betting line of games.csv is ignored. A game's winner is the
// home team when it outscored the visitor; otherwise (ties included) the
// visitor is recorded as the winner.
//
// BuildGraph loads games into a core.Graph grouped by conference, which is
// what dot.Write and elo.ConvertEdges consume.
package football
