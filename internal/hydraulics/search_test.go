package hydraulics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(x float64) (float64, error) { return x, nil }

func TestSearchUnboundedSmallestGridValue(t *testing.T) {
	x, it, err := searchUnbounded("x", identity, 0.00035, 0, 0.0001)
	require.NoError(t, err)
	assert.InDelta(t, 0.0004, x, 1e-12)
	assert.Greater(t, it, 0)

	// A target reached by the first step.
	x, _, err = searchUnbounded("x", identity, 1e-9, 0, 0.0001)
	require.NoError(t, err)
	assert.InDelta(t, 0.0001, x, 1e-12)

	// Offset start.
	x, _, err = searchUnbounded("x", identity, 2.5, 2, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, x, 1e-9)
}

func TestSearchUnboundedMatchesLinearScan(t *testing.T) {
	f := func(x float64) (float64, error) { return x * x * x, nil }
	target := 0.4321
	step := 0.001

	var want float64
	for k := 1; ; k++ {
		v, _ := f(float64(k) * step)
		if v >= target {
			want = float64(k) * step
			break
		}
	}

	got, _, err := searchUnbounded("x", f, target, 0, step)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSearchUnboundedDoesNotConverge(t *testing.T) {
	flat := func(float64) (float64, error) { return 0, nil }
	_, it, err := searchUnbounded("flat", flat, 1, 0, 1e-8)
	require.Error(t, err)

	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "flat", ce.Quantity)
	assert.LessOrEqual(t, it, maxSearchIterations+1)
}

func TestSearchUnboundedPropagatesErrors(t *testing.T) {
	boom := &NumericDomainError{msg: "boom"}
	f := func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, boom
		}
		return x, nil
	}
	_, _, err := searchUnbounded("x", f, 10, 0, 0.1)
	assert.Same(t, boom, err)
}

func TestSearchBoundedFindsFirstCrossing(t *testing.T) {
	// rises to 0.5 then falls again
	tent := func(x float64) (float64, error) {
		if x < 0.5 {
			return x, nil
		}
		return 1 - x, nil
	}
	x, _, err := searchBounded("tent", tent, 0.3, 0, 1, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-9)
}

func TestSearchBoundedStaysBelowUpperBound(t *testing.T) {
	x, _, err := searchBounded("x", identity, 0.99985, 0, 1, 0.0001)
	require.NoError(t, err)
	assert.Less(t, x, 1.0)
	assert.InDelta(t, 0.9999, x, 1e-9)
}

func TestSearchBoundedUnreachable(t *testing.T) {
	_, _, err := searchBounded("x", identity, 2, 0, 1, 0.001)
	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Error(), "not reached")

	_, _, err = searchBounded("x", identity, 0.5, 1, 1, 0.001)
	require.True(t, errors.As(err, &ce))
}
