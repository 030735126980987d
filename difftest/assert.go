// SPDX-License-Identifier: MIT

package difftest

import (
	"fmt"

	"github.com/katalvlaran/lvrate/objective"
	"github.com/stretchr/testify/assert"
)

// Gradient runs CheckGradient and reports a failure on t, naming the
// offending coordinate and both values. It returns true when the check passes.
func Gradient(t assert.TestingT, f objective.Func, grad func(x []float64) []float64, numArgs int, opts Options, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return report(t, CheckGradient(f, grad, numArgs, opts), msgAndArgs...)
}

// Jacobian runs CheckJacobian and reports a failure on t.
func Jacobian(t assert.TestingT, f objective.VecFunc, jac objective.Jacobian, numArgs int, opts Options, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return report(t, CheckJacobian(f, jac, numArgs, opts), msgAndArgs...)
}

func report(t assert.TestingT, err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return true
	}
	if mm, ok := asMismatch(err); ok {
		return assert.Fail(t, fmt.Sprintf("%s at point %v", mm.Error(), mm.Point), msgAndArgs...)
	}
	return assert.NoError(t, err, msgAndArgs...)
}
