// Package elo turns (winner, loser) observations into the dense integer
// encoding used by a pairwise-comparison model, and builds the objective
// that a numerical minimizer drives over per-competitor strengths.
//
// Model:
//
//	Each competitor i has a latent strength θ_i, and a single encounter is
//	won by i over j with the logistic probability
//
//	    P(i beats j) = 1 / (1 + exp(θ_j − θ_i)).
//
// The objective returned by NewNegLikelihood is the scoring surrogate
//
//	    Σ_edges [1 + exp(θ_loser − θ_winner)]
//
// i.e. a sum over edges of the reciprocal win probability, rather than a
// textbook −Σ log P. The two surfaces are minimized in different places;
// callers that compare against published fits must account for that.
//
// Usage:
//
//	vocab, w, l, err := elo.ConvertEdges(pairs)
//	f, err := elo.NewNegLikelihood(w, l)
//	g, err := elo.NewNegLikelihoodGrad(w, l)
//	res, err := objective.Minimize(f, g, make([]float64, vocab.Len()), settings)
package elo
