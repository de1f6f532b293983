package hydraulics

import "math"

// RectangularInputs describe a rectangular channel in SI units.
type RectangularInputs struct {
	Inputs
	BaseWidth float64 // m
}

// Validate checks every input except the unknown one.
func (in RectangularInputs) Validate(unknown Unknown) error {
	switch unknown {
	case Discharge, BedSlope, WaterDepth, BaseWidth:
	default:
		return unsupportedUnknown("rectangular", unknown)
	}
	if err := in.Inputs.validate(unknown); err != nil {
		return err
	}
	if err := validateBaseWidth(unknown, in.BaseWidth); err != nil {
		return err
	}
	return validateDepth(unknown, in.WaterDepth)
}

func validateBaseWidth(unknown Unknown, b float64) error {
	if unknown == BaseWidth {
		return nil
	}
	if b == 0 {
		return &DimensionError{msg: "Base width must be greater than zero."}
	}
	if !positive(b) {
		return &DimensionError{msg: "Invalid base width dimension."}
	}
	return nil
}

func unsupportedUnknown(shape string, unknown Unknown) error {
	return &InvalidValueError{msg: "Cannot solve for " + unknown.String() + " in a " + shape + " channel."}
}

func rectangularFlow(n, slope, b, y float64) flowState {
	return manningFlow(n, slope, b*y, b+2*y)
}

// SolveRectangular solves for unknown and returns the completed inputs with
// the derived result. Depth and width are found on a 0.1 mm grid and the
// slope on a 1e-8 grid, always as the smallest value carrying the target
// discharge.
func SolveRectangular(in RectangularInputs, unknown Unknown) (RectangularInputs, Result, error) {
	if err := in.Validate(unknown); err != nil {
		return in, Result{}, err
	}

	var res Result
	n := in.ManningRoughness

	switch unknown {
	case Discharge:
	case BedSlope:
		s, it, err := searchUnbounded("bed slope", func(s float64) (float64, error) {
			return rectangularFlow(n, s, in.BaseWidth, in.WaterDepth).discharge, nil
		}, in.Discharge, 0, SlopeStep)
		if err != nil {
			return in, Result{}, err
		}
		in.BedSlope, res.Iterations = s, it
	case WaterDepth:
		y, it, err := searchUnbounded("water depth", func(y float64) (float64, error) {
			return rectangularFlow(n, in.BedSlope, in.BaseWidth, y).discharge, nil
		}, in.Discharge, 0, DepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.WaterDepth, res.Iterations = y, it
	case BaseWidth:
		b, it, err := searchUnbounded("base width", func(b float64) (float64, error) {
			return rectangularFlow(n, in.BedSlope, b, in.WaterDepth).discharge, nil
		}, in.Discharge, 0, DepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.BaseWidth, res.Iterations = b, it
	default:
		return in, Result{}, unsupportedUnknown("rectangular", unknown)
	}

	st := rectangularFlow(n, in.BedSlope, in.BaseWidth, in.WaterDepth)
	if unknown == Discharge {
		in.Discharge = st.discharge
	}
	st.apply(&res)

	// Critical flow
	b := in.BaseWidth
	res.TopWidth = b
	res.HydraulicDepth = res.WettedArea / b
	res.classify()
	res.DischargeIntensity = in.Discharge / b
	res.CriticalDepth = math.Pow(math.Pow(res.DischargeIntensity, 2)/Gravity, 1.0/3.0)
	yc := res.CriticalDepth
	res.CriticalSlope = criticalSlope(in.Discharge, n, b*yc, b+2*yc)

	return in, res, nil
}

// RectangularChannel is a rectangular open channel model.
type RectangularChannel struct {
	OpenChannel
	baseWidth float64
	unknown   Unknown
}

// NewRectangularChannel returns a metric channel that solves for unknown.
func NewRectangularChannel(unknown Unknown) *RectangularChannel {
	return &RectangularChannel{OpenChannel: newOpenChannel(), unknown: unknown}
}

// SetBaseWidth sets the channel width.
func (c *RectangularChannel) SetBaseWidth(b float64) { c.baseWidth = c.unit.lengthIn(b) }

func (c *RectangularChannel) BaseWidth() float64 { return c.unit.lengthOut(c.baseWidth) }

func (c *RectangularChannel) SetUnknown(u Unknown) { c.unknown = u }

func (c *RectangularChannel) Unknown() Unknown { return c.unknown }

func (c *RectangularChannel) current() RectangularInputs {
	return RectangularInputs{Inputs: c.inputs, BaseWidth: c.baseWidth}
}

// Analyze solves the channel. On failure the previous results are kept and
// ErrMessage describes the problem.
func (c *RectangularChannel) Analyze() bool {
	in, res, err := SolveRectangular(c.current(), c.unknown)
	if err != nil {
		return c.fail("rectangular", c.unknown, err)
	}
	c.baseWidth = in.BaseWidth
	return c.succeed("rectangular", c.unknown, in.Inputs, res)
}

// RatingAt evaluates the discharge at water depth stage with the current
// width, slope and roughness.
func (c *RectangularChannel) RatingAt(stage float64) (RatingPoint, error) {
	in := c.current()
	in.WaterDepth = c.unit.lengthIn(stage)
	in, res, err := SolveRectangular(in, Discharge)
	if err != nil {
		return RatingPoint{}, err
	}
	return c.ratingPoint(stage, in.Discharge, res), nil
}

// Profile returns the section outline and wetted area of the last analysis.
func (c *RectangularChannel) Profile() (Profile, error) {
	if !c.successful {
		return Profile{}, ErrNotAnalyzed
	}
	b, y := c.baseWidth, c.inputs.WaterDepth
	top := freeboardTop(y, c.result.CriticalDepth)
	p := Profile{
		Outline:       []Point{P(0, top), P(0, 0), P(b, 0), P(b, top)},
		Wetted:        []Point{P(0, y), P(0, 0), P(b, 0), P(b, y)},
		WaterLevel:    y,
		CriticalLevel: c.result.CriticalDepth,
	}
	return p.in(c.unit), nil
}
