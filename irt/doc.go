// Package irt implements exploratory one-parameter-logistic (1PL) Item
// Response Theory: a simulator for sparse student/question responses and
// the negative objective a minimizer drives over abilities and difficulties.
//
// Model:
//
//	Student s has ability θ_s and question q difficulty β_q;
//
//	    P(s answers q correctly) = 1 / (1 + exp(β_q − θ_s)).
//
// Every function here is the "negative" of the quantity one would maximize,
// since numerical optimizers minimize. The parameter vector is laid out as
// x = [θ_0 … θ_{S−1}, β_0 … β_{Q−1}].
//
// The likelihood term sums raw probabilities, −(Σ_correct p + Σ_incorrect (1−p)),
// instead of their logarithms, and the prior term is Σx²/2 (a zero-mean,
// unit-variance Gaussian surrogate). Both forms are kept as-is; they shape
// the surface the optimizer sees.
package irt
