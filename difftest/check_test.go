package difftest_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvrate/difftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sumSquares(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

func twiceX(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 2 * v
	}
	return out
}

func identity(x []float64) []float64 {
	return append([]float64(nil), x...)
}

func seeded(seed uint64) difftest.Options {
	opts := difftest.DefaultOptions()
	opts.Rand = rand.New(rand.NewPCG(seed, seed+1))
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := difftest.DefaultOptions()
	assert.Equal(t, -1.0, opts.LeftBound)
	assert.Equal(t, 1.0, opts.RightBound)
	assert.Equal(t, 20, opts.NumTests)
	assert.Equal(t, 1e-6, opts.Eps)
	assert.Equal(t, 6, opts.Decimal)
	assert.InDelta(t, 1.5e-6, opts.Tolerance(), 1e-18)
}

// TestCheckGradient_CorrectPasses checks f = Σx², ∇f = 2x at every decimal up to 5.
func TestCheckGradient_CorrectPasses(t *testing.T) {
	for decimal := 0; decimal <= 5; decimal++ {
		for _, n := range []int{1, 3, 10} {
			opts := seeded(uint64(10*decimal + n))
			opts.Decimal = decimal
			assert.NoError(t, difftest.CheckGradient(sumSquares, twiceX, n, opts), "decimal=%d n=%d", decimal, n)
		}
	}
}

// TestCheckGradient_WrongFails checks ∇f = x (off by a factor of two) is rejected.
func TestCheckGradient_WrongFails(t *testing.T) {
	for decimal := 2; decimal <= 6; decimal++ {
		opts := seeded(uint64(decimal))
		opts.Decimal = decimal
		err := difftest.CheckGradient(sumSquares, identity, 3, opts)
		require.Error(t, err, "decimal=%d", decimal)
		assert.ErrorIs(t, err, difftest.ErrToleranceViolation)

		var mm *difftest.MismatchError
		require.True(t, errors.As(err, &mm))
		assert.Equal(t, 0, mm.Row)
		assert.Equal(t, decimal, mm.Decimal)
		require.Len(t, mm.Point, 3)
		assert.InDelta(t, 2*mm.Point[mm.Col], mm.Expected, 1e-6)
		assert.Equal(t, mm.Point[mm.Col], mm.Actual)
		assert.Contains(t, mm.Error(), "differ beyond")
	}
}

func TestCheckGradient_SamplesWithinBounds(t *testing.T) {
	opts := seeded(7)
	opts.LeftBound, opts.RightBound = 3, 4
	var seen int
	grad := func(x []float64) []float64 {
		for _, v := range x {
			assert.GreaterOrEqual(t, v, 3.0)
			assert.LessOrEqual(t, v, 4.0)
		}
		seen++
		return twiceX(x)
	}
	require.NoError(t, difftest.CheckGradient(sumSquares, grad, 4, opts))
	assert.Equal(t, opts.NumTests, seen)
}

func TestCheckGradient_BadInput(t *testing.T) {
	mod := func(f func(*difftest.Options)) difftest.Options {
		o := difftest.DefaultOptions()
		f(&o)
		return o
	}
	tests := []struct {
		name    string
		n       int
		opts    difftest.Options
		grad    func([]float64) []float64
		wantErr error
	}{
		{name: "zero args", n: 0, opts: difftest.DefaultOptions(), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "zero tests", n: 1, opts: mod(func(o *difftest.Options) { o.NumTests = 0 }), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "zero eps", n: 1, opts: mod(func(o *difftest.Options) { o.Eps = 0 }), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "nan eps", n: 1, opts: mod(func(o *difftest.Options) { o.Eps = math.NaN() }), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "negative decimal", n: 1, opts: mod(func(o *difftest.Options) { o.Decimal = -1 }), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "empty interval", n: 1, opts: mod(func(o *difftest.Options) { o.LeftBound = 1 }), grad: twiceX, wantErr: difftest.ErrBadOptions},
		{name: "nil grad", n: 1, opts: difftest.DefaultOptions(), wantErr: difftest.ErrBadOptions},
		{name: "short grad", n: 2, opts: difftest.DefaultOptions(), grad: func([]float64) []float64 { return []float64{0} }, wantErr: difftest.ErrShapeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := difftest.CheckGradient(sumSquares, tc.grad, tc.n, tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// vec maps (x0, x1) to (x0·x1, sin x0, x1²).
func vec(x []float64) []float64 {
	return []float64{x[0] * x[1], math.Sin(x[0]), x[1] * x[1]}
}

func vecJac(x []float64) *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		x[1], x[0],
		math.Cos(x[0]), 0,
		0, 2 * x[1],
	})
}

func TestCheckJacobian(t *testing.T) {
	require.NoError(t, difftest.CheckJacobian(vec, vecJac, 2, seeded(1)))

	wrong := func(x []float64) *mat.Dense {
		j := vecJac(x)
		j.Set(2, 1, x[1])
		return j
	}
	err := difftest.CheckJacobian(vec, wrong, 2, seeded(2))
	var mm *difftest.MismatchError
	require.True(t, errors.As(err, &mm), "got %v", err)
	assert.Equal(t, 2, mm.Row)
	assert.Equal(t, 1, mm.Col)

	tooSmall := func(x []float64) *mat.Dense { return mat.NewDense(2, 2, nil) }
	assert.ErrorIs(t, difftest.CheckJacobian(vec, tooSmall, 2, seeded(3)), difftest.ErrShapeMismatch)

	empty := func(x []float64) []float64 { return nil }
	assert.ErrorIs(t, difftest.CheckJacobian(empty, vecJac, 2, seeded(4)), difftest.ErrShapeMismatch)
	assert.ErrorIs(t, difftest.CheckJacobian(vec, vecJac, 0, seeded(4)), difftest.ErrBadOptions)
}

// TestCheckJacobian_EveryTrialCompared injects an error on the first trial
// only; a last-trial-only comparison would miss it.
func TestCheckJacobian_EveryTrialCompared(t *testing.T) {
	calls := 0
	flaky := func(x []float64) *mat.Dense {
		calls++
		j := vecJac(x)
		if calls == 1 {
			j.Set(0, 0, j.At(0, 0)+1)
		}
		return j
	}
	err := difftest.CheckJacobian(vec, flaky, 2, seeded(5))
	var mm *difftest.MismatchError
	require.True(t, errors.As(err, &mm), "got %v", err)
	assert.Equal(t, 0, mm.Trial)
	assert.Equal(t, 1, calls, "check stops at the first mismatch")
}

type recorder struct {
	failed bool
	msg    string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.msg = format
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			r.msg = s
		}
	}
}

func TestAssertHelpers(t *testing.T) {
	assert.True(t, difftest.Gradient(t, sumSquares, twiceX, 3, seeded(11)))
	assert.True(t, difftest.Jacobian(t, vec, vecJac, 2, seeded(12)))

	rec := &recorder{}
	assert.False(t, difftest.Gradient(rec, sumSquares, identity, 3, seeded(13)))
	assert.True(t, rec.failed)

	rec = &recorder{}
	assert.False(t, difftest.Gradient(rec, sumSquares, twiceX, 0, seeded(14)))
	assert.True(t, rec.failed)
}

// TestCheckGradient_ToleranceBoundary shifts the true gradient by 1e-3:
// inside 1.5·10⁻² but outside 1.5·10⁻³.
func TestCheckGradient_ToleranceBoundary(t *testing.T) {
	shifted := func(x []float64) []float64 {
		g := twiceX(x)
		for i := range g {
			g[i] += 1e-3
		}
		return g
	}

	opts := seeded(41)
	opts.Decimal = 2
	assert.NoError(t, difftest.CheckGradient(sumSquares, shifted, 4, opts))

	opts = seeded(41)
	opts.Decimal = 3
	err := difftest.CheckGradient(sumSquares, shifted, 4, opts)
	require.ErrorIs(t, err, difftest.ErrToleranceViolation)
	var mm *difftest.MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, 0, mm.Trial)
	assert.Equal(t, 0, mm.Col)
	assert.InDelta(t, 1e-3, mm.Actual-mm.Expected, 1e-6)
}
