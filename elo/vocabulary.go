// SPDX-License-Identifier: MIT

package elo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvrate/core"
)

const methodConvertEdges = "ConvertEdges"

// Sentinel errors for input validation.
var (
	// ErrEmptyInput indicates no edges were supplied, so no vocabulary can be formed.
	ErrEmptyInput = errors.New("elo: empty edge list")

	// ErrEmptyName indicates an edge with an empty winner or loser name.
	ErrEmptyName = errors.New("elo: empty competitor name")

	// ErrLengthMismatch indicates winner and loser index sequences differ in length.
	ErrLengthMismatch = errors.New("elo: winner/loser length mismatch")
)

// Vocabulary maps competitor names to dense zero-based indices, assigned in
// lexicographic (byte-wise) order of the names. It is immutable once built.
type Vocabulary struct {
	names []string
	index map[string]int
}

// NewVocabulary builds a Vocabulary from the distinct entries of names.
func NewVocabulary(names []string) *Vocabulary {
	index := make(map[string]int, len(names))
	for _, n := range names {
		index[n] = 0
	}
	sorted := make([]string, 0, len(index))
	for n := range index {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	for i, n := range sorted {
		index[n] = i
	}

	return &Vocabulary{names: sorted, index: index}
}

// Len returns the number of distinct names.
func (v *Vocabulary) Len() int { return len(v.names) }

// Index returns the index of name and whether it is known.
func (v *Vocabulary) Index(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

// Name returns the name at index i; it panics if i is out of range, like a slice.
func (v *Vocabulary) Name(i int) string { return v.names[i] }

// Names returns a copy of the sorted names; Names()[i] has index i.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Map returns a fresh name→index map.
func (v *Vocabulary) Map() map[string]int {
	out := make(map[string]int, len(v.index))
	for k, i := range v.index {
		out[k] = i
	}
	return out
}

// ConvertEdges encodes pairs against a sorted vocabulary of every name that
// appears as a winner or a loser.
//
// Contract:
//   - len(winners) == len(losers) == len(pairs); position k encodes pairs[k].
//   - No deduplication: repeated pairs are encoded once per occurrence.
//   - Deterministic: identical input yields identical output.
//
// Errors:
//   - ErrEmptyInput when pairs is empty.
//   - ErrEmptyName when any name is "".
//
// Complexity: O(E + C log C) for E edges and C distinct names.
func ConvertEdges(pairs []core.Pair) (vocab *Vocabulary, winners, losers []int, err error) {
	if len(pairs) == 0 {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodConvertEdges, ErrEmptyInput)
	}

	names := make([]string, 0, 2*len(pairs))
	for k, p := range pairs {
		if p.Winner == "" || p.Loser == "" {
			return nil, nil, nil, fmt.Errorf("%s: edge %d: %w", methodConvertEdges, k, ErrEmptyName)
		}
		names = append(names, p.Winner, p.Loser)
	}
	vocab = NewVocabulary(names)

	winners = make([]int, len(pairs))
	losers = make([]int, len(pairs))
	for k, p := range pairs {
		winners[k] = vocab.index[p.Winner]
		losers[k] = vocab.index[p.Loser]
	}

	return vocab, winners, losers, nil
}
