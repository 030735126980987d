package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvrate/core"
)

// ExampleGraph_Partition shows in-group outcomes clustered by group and the
// remaining cross-group outcomes.
func ExampleGraph_Partition() {
	g := core.NewGraph()
	_ = g.AddCompetitor("Ohio State", "Big Ten")
	_ = g.AddCompetitor("Michigan", "Big Ten")
	_ = g.AddCompetitor("Clemson", "ACC")

	_, _ = g.AddOutcome("Ohio State", "Michigan")
	_, _ = g.AddOutcome("Clemson", "Ohio State")

	in, cross := g.Partition()
	fmt.Println(in["Big Ten"])
	fmt.Println(cross)
	// Output:
	// [{Ohio State Michigan}]
	// [{Clemson Ohio State}]
}
