package hydraulics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePipe(unknown Unknown, d float64) *CircularChannel {
	c := NewCircularChannel(unknown)
	c.SetDiameter(d)
	c.SetBedSlope(0.001)
	c.SetWaterDepth(0.70)
	c.SetManningRoughness(0.015)
	return c
}

func TestCircularDischarge(t *testing.T) {
	c := samplePipe(Discharge, 1.2)
	require.True(t, c.Analyze(), c.ErrMessage())

	assert.True(t, c.AlmostFull())
	assert.InDelta(t, 0.684929, c.WettedArea(), 1e-6)
	assert.InDelta(t, 2.085893, c.WettedPerimeter(), 1e-6)
	assert.InDelta(t, 1.00341, c.AverageVelocity(), 1e-5)
	assert.InDelta(t, 0.687263, c.Discharge(), 1e-6)
	assert.InDelta(t, 0.7/1.2*100, c.PercentFull(), 1e-9)
	assert.InDelta(t, 2*math.Sqrt(0.7*0.5), c.TopWidth(), 1e-12)

	// The reference driver's pipe.
	c = samplePipe(Discharge, 1.0)
	require.True(t, c.Analyze(), c.ErrMessage())
	assert.InDelta(t, 0.5501, c.Discharge(), 1e-4)
}

func TestCircularCriticalFlow(t *testing.T) {
	c := samplePipe(Discharge, 1.2)
	require.True(t, c.Analyze())

	assert.InDelta(t, 0.4211, c.FroudeNumber(), 1e-3)
	assert.Equal(t, Subcritical, c.FlowType())
	assert.InDelta(t, 0.44554, c.CriticalDepth(), 2*FineDepthStep)
	assert.InDelta(t, 0.0047963, c.CriticalSlope(), 1e-5)

	yc := c.CriticalDepth()
	sec, err := circularSection(1.2, yc)
	require.NoError(t, err)
	target := c.Discharge() * c.Discharge() / Gravity
	assert.GreaterOrEqual(t, math.Pow(sec.area, 3)/sec.topWidth, target)
}

func TestCircularHalfFullContinuity(t *testing.T) {
	d := 1.2
	half, err := circularSection(d, d/2)
	require.NoError(t, err)
	assert.True(t, half.almostFull)
	assert.InDelta(t, math.Pi*d*d/8, half.area, 1e-12)
	assert.InDelta(t, math.Pi*d/2, half.perimeter, 1e-12)

	below, err := circularSection(d, d/2-1e-9)
	require.NoError(t, err)
	assert.False(t, below.almostFull)
	assert.InDelta(t, half.area, below.area, 1e-8)
	assert.InDelta(t, half.perimeter, below.perimeter, 1e-8)
	assert.InDelta(t, d, half.topWidth, 1e-12)
}

func TestCircularSectionDomain(t *testing.T) {
	_, err := circularSection(1, 1.5)
	var ne *NumericDomainError
	require.True(t, errors.As(err, &ne))

	_, err = circularSection(0, 0.5)
	require.True(t, errors.As(err, &ne))

	full, err := circularSection(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, full.area, 1e-12)
	assert.InDelta(t, math.Pi, full.perimeter, 1e-12)
}

func TestCircularRoundTrips(t *testing.T) {
	ref := samplePipe(Discharge, 1.0)
	require.True(t, ref.Analyze())
	q := ref.Discharge()

	diameter := samplePipe(Diameter, 0)
	diameter.SetDischarge(q)
	require.True(t, diameter.Analyze(), diameter.ErrMessage())
	assert.InDelta(t, 1.0, diameter.Diameter(), 2*FineDepthStep)

	depth := samplePipe(WaterDepth, 1.0)
	depth.SetWaterDepth(0)
	depth.SetDischarge(q)
	require.True(t, depth.Analyze(), depth.ErrMessage())
	assert.InDelta(t, 0.70, depth.WaterDepth(), 2*FineDepthStep)
	assert.True(t, depth.AlmostFull())

	slope := samplePipe(BedSlope, 1.0)
	slope.SetBedSlope(0)
	slope.SetDischarge(q)
	require.True(t, slope.Analyze(), slope.ErrMessage())
	assert.InDelta(t, 0.001, slope.BedSlope(), 2*PipeSlopeStep)
}

func TestCircularDepthAboveCapacity(t *testing.T) {
	c := samplePipe(WaterDepth, 1.0)
	c.SetDischarge(10)
	assert.False(t, c.Analyze())
	var ce *ConvergenceError
	assert.True(t, errors.As(c.Err(), &ce))
}

func TestCircularValidation(t *testing.T) {
	c := samplePipe(Discharge, 0.5)
	assert.False(t, c.Analyze())
	assert.Equal(t, "Water depth must be less than the pipe diameter.", c.ErrMessage())
	var de *DimensionError
	assert.True(t, errors.As(c.Err(), &de))

	c = samplePipe(Discharge, 0.7)
	assert.False(t, c.Analyze(), "depth equal to the diameter")

	c = samplePipe(Discharge, 0)
	assert.False(t, c.Analyze())
	assert.True(t, errors.As(c.Err(), &de))

	c = samplePipe(BaseWidth, 1.0)
	assert.False(t, c.Analyze())
	var ie *InvalidValueError
	assert.True(t, errors.As(c.Err(), &ie))

	c = samplePipe(Discharge, 1.0)
	c.SetManningRoughness(0)
	assert.False(t, c.Analyze())
	assert.True(t, errors.As(c.Err(), &ie))
	assert.Zero(t, c.Discharge())
}

func TestCircularDischargeIncreasesWithDiameter(t *testing.T) {
	prev := 0.0
	for d := 0.71; d < 3; d += 0.01 {
		st, err := circularFlow(0.015, 0.001, d, 0.7)
		require.NoError(t, err)
		assert.Greater(t, st.discharge, prev)
		prev = st.discharge
	}
}
