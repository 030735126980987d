// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewCompetitors indicates a competitor or game count below the
// constructor's minimum.
var ErrTooFewCompetitors = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrRatingsTooShort indicates WithRatings supplied fewer ratings than the
// constructor has competitors.
var ErrRatingsTooShort = errors.New("builder: not enough ratings")

// ErrConstructFailed indicates a nil constructor or a core rejection while
// recording outcomes.
var ErrConstructFailed = errors.New("builder: construction failed")
