// File: write.go
// Role: DOT rendering of a core.Graph.
// Determinism:
//   - Clusters in ascending group order; edges in outcome insertion order.

package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lvrate/core"
)

// badChars lists characters stripped from node and cluster names.
const badChars = " +.()-"

// TransformName returns name with every character of " +.()-" removed.
func TransformName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(badChars, r) {
			return -1
		}
		return r
	}, name)
}

// Write renders g as a digraph to w:
//
//	digraph G {
//	    node[shape=point];
//	    subgraph cluster_<Group> {
//	        label="<Group>"
//	        color=lightgrey
//	        Winner -> Loser;
//	    }
//
//	    Winner -> Loser;
//	}
//
// Only groups with at least one in-group outcome get a cluster.
func Write(w io.Writer, g *core.Graph) error {
	in := NewIndenter(w)
	inGroup, cross := g.Partition()

	groups := make([]string, 0, len(inGroup))
	for grp := range inGroup {
		groups = append(groups, grp)
	}
	sort.Strings(groups)

	in.WriteLine("digraph G {")
	in.Indent()
	in.WriteLine("node[shape=point];")
	for _, grp := range groups {
		in.WriteLine(fmt.Sprintf("subgraph cluster_%s {", TransformName(grp)))
		in.Indent()
		in.WriteLine(fmt.Sprintf(`label="%s"`, grp))
		in.WriteLine("color=lightgrey")
		for _, p := range inGroup[grp] {
			in.WriteLine(edge(p))
		}
		in.Dedent()
		in.WriteLine("}")
		in.WriteLine("")
	}
	for _, p := range cross {
		in.WriteLine(edge(p))
	}
	in.Dedent()
	in.WriteLine("}")

	return in.Err()
}

func edge(p core.Pair) string {
	return TransformName(p.Winner) + " -> " + TransformName(p.Loser) + ";"
}
