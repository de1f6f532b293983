package hydraulics

import (
	"fmt"
	"math"
)

// CircularInputs describe a pipe flowing part full, in SI units.
type CircularInputs struct {
	Inputs
	Diameter float64 // m
}

func (in CircularInputs) Validate(unknown Unknown) error {
	switch unknown {
	case Discharge, BedSlope, WaterDepth, Diameter:
	default:
		return unsupportedUnknown("circular", unknown)
	}
	if err := in.Inputs.validate(unknown); err != nil {
		return err
	}
	if unknown != Diameter && !positive(in.Diameter) {
		return &DimensionError{msg: "Pipe diameter must be greater than zero."}
	}
	if err := validateDepth(unknown, in.WaterDepth); err != nil {
		return err
	}
	if unknown != Diameter && unknown != WaterDepth && in.WaterDepth >= in.Diameter {
		return &DimensionError{msg: "Water depth must be less than the pipe diameter."}
	}
	return nil
}

// AlmostFull reports whether the pipe runs at least half full.
func (in CircularInputs) AlmostFull() bool {
	return in.WaterDepth >= in.Diameter/2
}

// PercentFull is the water depth as a percentage of the diameter.
func (in CircularInputs) PercentFull() float64 {
	return in.WaterDepth / in.Diameter * 100
}

// pipeSection is the wetted geometry of a circle of diameter d filled to
// depth y. Theta is the angle in degrees subtended at the center by the
// water surface chord, measured on the dry side when almost full.
type pipeSection struct {
	almostFull bool
	theta      float64
	triangle   float64
	sector     float64
	area       float64
	perimeter  float64
	topWidth   float64
}

func circularSection(d, y float64) (pipeSection, error) {
	if d <= 0 || y < 0 {
		return pipeSection{}, &NumericDomainError{msg: fmt.Sprintf("pipe section undefined for diameter %g and depth %g", d, y)}
	}

	s := pipeSection{almostFull: y >= d/2}

	var arg float64
	if s.almostFull {
		arg = (2*y - d) / d
	} else {
		arg = (d - 2*y) / d
	}
	if math.IsNaN(arg) || arg < -1 || arg > 1 {
		return pipeSection{}, &NumericDomainError{msg: fmt.Sprintf("inverse cosine argument %g out of range for depth %g in a %g pipe", arg, y, d)}
	}
	s.theta = 2 * math.Acos(arg) * 180 / math.Pi

	s.triangle = d * d * math.Sin(s.theta*math.Pi/180) / 8
	if s.almostFull {
		s.sector = math.Pi * d * d * (360 - s.theta) / 1440
		s.area = s.sector + s.triangle
		s.perimeter = math.Pi * d * (360 - s.theta) / 360
	} else {
		s.sector = s.theta * math.Pi * d * d / 1440
		s.area = s.sector - s.triangle
		s.perimeter = math.Pi * d * s.theta / 360
	}

	// The chord is 2·triangle / |y − d/2|; written this way it stays finite
	// at half full.
	s.topWidth = 2 * math.Sqrt(math.Max(y*(d-y), 0))
	return s, nil
}

func circularFlow(n, slope, d, y float64) (flowState, error) {
	s, err := circularSection(d, y)
	if err != nil {
		return flowState{}, err
	}
	return manningFlow(n, slope, s.area, s.perimeter), nil
}

// SolveCircular solves a part-full pipe. Depth and diameter are searched on
// a 0.01 mm grid, the slope on a 1e-7 grid. The diameter search starts at
// the water depth (a full pipe). Because discharge in a pipe peaks just
// below the crown, the depth search returns the first depth that carries
// the target and fails when no depth below the crown does.
func SolveCircular(in CircularInputs, unknown Unknown) (CircularInputs, Result, error) {
	if err := in.Validate(unknown); err != nil {
		return in, Result{}, err
	}

	var res Result
	n := in.ManningRoughness

	switch unknown {
	case Discharge:
	case BedSlope:
		sec, err := circularSection(in.Diameter, in.WaterDepth)
		if err != nil {
			return in, Result{}, err
		}
		s, it, err := searchUnbounded("bed slope", func(s float64) (float64, error) {
			return manningFlow(n, s, sec.area, sec.perimeter).discharge, nil
		}, in.Discharge, 0, PipeSlopeStep)
		if err != nil {
			return in, Result{}, err
		}
		in.BedSlope, res.Iterations = s, it
	case Diameter:
		d, it, err := searchUnbounded("diameter", func(d float64) (float64, error) {
			st, err := circularFlow(n, in.BedSlope, d, in.WaterDepth)
			return st.discharge, err
		}, in.Discharge, in.WaterDepth, FineDepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.Diameter, res.Iterations = d, it
	case WaterDepth:
		y, it, err := searchBounded("water depth", func(y float64) (float64, error) {
			st, err := circularFlow(n, in.BedSlope, in.Diameter, y)
			return st.discharge, err
		}, in.Discharge, 0, in.Diameter, FineDepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.WaterDepth, res.Iterations = y, it
	default:
		return in, Result{}, unsupportedUnknown("circular", unknown)
	}

	d, y := in.Diameter, in.WaterDepth
	sec, err := circularSection(d, y)
	if err != nil {
		return in, Result{}, err
	}
	st := manningFlow(n, in.BedSlope, sec.area, sec.perimeter)
	if unknown == Discharge {
		in.Discharge = st.discharge
	}
	st.apply(&res)

	// Critical flow
	res.TopWidth = sec.topWidth
	res.HydraulicDepth = res.WettedArea / res.TopWidth
	res.classify()

	target := in.Discharge * in.Discharge / Gravity
	yc, it, err := searchBounded("critical depth", func(yc float64) (float64, error) {
		c, err := circularSection(d, yc)
		if err != nil {
			return 0, err
		}
		return math.Pow(c.area, 3) / c.topWidth, nil
	}, target, 0, d, FineDepthStep)
	if err != nil {
		return in, Result{}, err
	}
	crit, err := circularSection(d, yc)
	if err != nil {
		return in, Result{}, err
	}
	res.Iterations += it
	res.CriticalDepth = yc
	res.CriticalSlope = criticalSlope(in.Discharge, n, crit.area, crit.perimeter)

	return in, res, nil
}

// CircularChannel is a pipe flowing part full.
type CircularChannel struct {
	OpenChannel
	diameter float64
	unknown  Unknown
}

func NewCircularChannel(unknown Unknown) *CircularChannel {
	return &CircularChannel{OpenChannel: newOpenChannel(), unknown: unknown}
}

// SetDiameter sets the pipe internal diameter.
func (c *CircularChannel) SetDiameter(d float64) { c.diameter = c.unit.lengthIn(d) }

func (c *CircularChannel) Diameter() float64 { return c.unit.lengthOut(c.diameter) }

func (c *CircularChannel) SetUnknown(u Unknown) { c.unknown = u }

func (c *CircularChannel) Unknown() Unknown { return c.unknown }

// AlmostFull reports whether the pipe is at least half full.
func (c *CircularChannel) AlmostFull() bool { return c.current().AlmostFull() }

func (c *CircularChannel) PercentFull() float64 { return c.current().PercentFull() }

func (c *CircularChannel) current() CircularInputs {
	return CircularInputs{Inputs: c.inputs, Diameter: c.diameter}
}

func (c *CircularChannel) Analyze() bool {
	in, res, err := SolveCircular(c.current(), c.unknown)
	if err != nil {
		return c.fail("circular", c.unknown, err)
	}
	c.diameter = in.Diameter
	return c.succeed("circular", c.unknown, in.Inputs, res)
}

func (c *CircularChannel) RatingAt(stage float64) (RatingPoint, error) {
	in := c.current()
	in.WaterDepth = c.unit.lengthIn(stage)
	in, res, err := SolveCircular(in, Discharge)
	if err != nil {
		return RatingPoint{}, err
	}
	return c.ratingPoint(stage, in.Discharge, res), nil
}

// pipe outline resolution
const circleSegments = 72

func (c *CircularChannel) Profile() (Profile, error) {
	if !c.successful {
		return Profile{}, ErrNotAnalyzed
	}
	d, y := c.diameter, c.inputs.WaterDepth
	r := d / 2

	outline := make([]Point, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		outline = append(outline, P(r+r*math.Sin(a), r-r*math.Cos(a)))
	}

	// Wetted arc, measured from the invert.
	alpha := math.Acos(math.Max(-1, math.Min(1, (r-y)/r)))
	wetted := make([]Point, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := -alpha + 2*alpha*float64(i)/circleSegments
		wetted = append(wetted, P(r+r*math.Sin(a), r-r*math.Cos(a)))
	}

	p := Profile{
		Outline:       outline,
		Wetted:        wetted,
		WaterLevel:    y,
		CriticalLevel: c.result.CriticalDepth,
	}
	return p.in(c.unit), nil
}
