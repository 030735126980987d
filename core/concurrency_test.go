// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvrate/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddOutcome ensures that concurrent AddOutcome calls are safe
// and every outcome receives a unique sequence number.
func TestConcurrentAddOutcome(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddOutcome("X", fmt.Sprintf("V%d", id%10))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.OutcomeCount())
	seen := make(map[uint64]struct{}, num)
	for _, o := range g.Outcomes() {
		seen[o.Seq] = struct{}{}
	}
	require.Len(t, seen, num, "sequence numbers must be unique")

	wins, losses, err := g.Record("X")
	require.NoError(t, err)
	require.Equal(t, num, wins)
	require.Zero(t, losses)
}

// TestConcurrentReadWrite mixes AddOutcome with Partition/Stats readers.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCompetitor("A", "East"))
	require.NoError(t, g.AddCompetitor("B", "East"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.AddOutcome("A", "B")
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Partition()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	in, cross := g.Partition()
	require.Len(t, in["East"], rounds)
	require.Empty(t, cross)
}
