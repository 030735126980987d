// SPDX-License-Identifier: MIT

// Package builder generates synthetic tournaments: competitors with latent
// ratings and the head-to-head outcomes those ratings produce.
//
// A Tournament is assembled by BuildTournament from one or more Constructors
// (RoundRobin, RandomSchedule), configured through functional options:
//
//	t, err := builder.BuildTournament(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithGroups(2)},
//	    builder.RoundRobin(10),
//	)
//
// Each game between i and j is won by i with probability
// elo.WinProbability(r_i, r_j), where r are the latent ratings. Ratings are
// drawn from N(0, spread²) unless given explicitly with WithRatings.
//
// Determinism: identical options, seed and constructor order yield an
// identical Tournament. Option constructors panic on meaningless input;
// constructors return sentinel errors and never panic.
package builder
