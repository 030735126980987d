// Package difftest checks hand-written gradients and Jacobians against
// central finite differences at randomly sampled points.
//
// 🚀 What is a finite-difference test?
//
//	For each coordinate i the derivative is approximated by the slope
//	    (f(x + ε·e_i) − f(x − ε·e_i)) / (2ε)
//	with every other coordinate held at the sampled point. A candidate
//	gradient passes when it agrees with that estimate to Decimal places,
//	i.e. |expected − actual| ≤ 1.5·10^(−Decimal), at every coordinate of
//	every trial.
//
// ⚙️ Usage:
//
//	opts := difftest.DefaultOptions()
//	opts.Rand = rand.New(rand.NewPCG(1, 2))
//	err := difftest.CheckGradient(f, grad, n, opts)
//	var mm *difftest.MismatchError
//	if errors.As(err, &mm) { ... mm.Col, mm.Expected, mm.Actual ... }
//
// In tests, difftest.Gradient / difftest.Jacobian report through testify.
//
// Vector case: every trial's Jacobian is compared. (An earlier formulation
// compared only the last trial's estimate after the loop; that silently
// skipped all but one sample and is not reproduced.)
package difftest
