// Package objective holds the function shapes shared by the likelihood
// constructors and the finite-difference verifier, plus a thin adapter to
// gonum's optimize package.
//
// A Func is a pure closure over immutable observation data: it allocates
// only local temporaries and never writes to what it captured, so one Func
// may be evaluated from many goroutines at once.
//
// Func and Grad keep the exact signatures of optimize.Problem.Func and
// optimize.Problem.Grad. Since a Func cannot return an error, an
// observation that indexes past the end of the parameter vector panics with
// an error wrapping ErrIndexOutOfRange; use Eval to receive it as an error.
package objective
