package hydraulics

import "math"

// TrapezoidalInputs describe a trapezoidal channel in SI units. SideSlope
// is horizontal over vertical and equal on both sides.
type TrapezoidalInputs struct {
	Inputs
	BaseWidth float64 // m
	SideSlope float64
}

func (in TrapezoidalInputs) Validate(unknown Unknown) error {
	switch unknown {
	case Discharge, BedSlope, WaterDepth, BaseWidth:
	default:
		return unsupportedUnknown("trapezoidal", unknown)
	}
	if err := in.Inputs.validate(unknown); err != nil {
		return err
	}
	if err := validateBaseWidth(unknown, in.BaseWidth); err != nil {
		return err
	}
	if err := validateDepth(unknown, in.WaterDepth); err != nil {
		return err
	}
	if !(in.SideSlope >= 0) || math.IsInf(in.SideSlope, 1) {
		return &DimensionError{msg: "Side slope value should be positive."}
	}
	return nil
}

func trapezoidArea(b, z, y float64) float64 {
	return (b + y*z) * y
}

func trapezoidPerimeter(b, z, y float64) float64 {
	return 2*y*math.Sqrt(z*z+1) + b
}

func trapezoidTopWidth(b, z, y float64) float64 {
	return b + 2*z*y
}

func trapezoidalFlow(n, slope, b, z, y float64) flowState {
	return manningFlow(n, slope, trapezoidArea(b, z, y), trapezoidPerimeter(b, z, y))
}

// SolveTrapezoidal solves for unknown with the same grids as
// SolveRectangular. The critical depth has no closed form here and is
// searched on a 0.01 mm grid as the smallest depth with A³/T ≥ Q²/g.
func SolveTrapezoidal(in TrapezoidalInputs, unknown Unknown) (TrapezoidalInputs, Result, error) {
	if err := in.Validate(unknown); err != nil {
		return in, Result{}, err
	}

	var res Result
	n, z := in.ManningRoughness, in.SideSlope

	switch unknown {
	case Discharge:
	case BedSlope:
		s, it, err := searchUnbounded("bed slope", func(s float64) (float64, error) {
			return trapezoidalFlow(n, s, in.BaseWidth, z, in.WaterDepth).discharge, nil
		}, in.Discharge, 0, SlopeStep)
		if err != nil {
			return in, Result{}, err
		}
		in.BedSlope, res.Iterations = s, it
	case WaterDepth:
		y, it, err := searchUnbounded("water depth", func(y float64) (float64, error) {
			return trapezoidalFlow(n, in.BedSlope, in.BaseWidth, z, y).discharge, nil
		}, in.Discharge, 0, DepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.WaterDepth, res.Iterations = y, it
	case BaseWidth:
		b, it, err := searchUnbounded("base width", func(b float64) (float64, error) {
			return trapezoidalFlow(n, in.BedSlope, b, z, in.WaterDepth).discharge, nil
		}, in.Discharge, 0, DepthStep)
		if err != nil {
			return in, Result{}, err
		}
		in.BaseWidth, res.Iterations = b, it
	default:
		return in, Result{}, unsupportedUnknown("trapezoidal", unknown)
	}

	b, y := in.BaseWidth, in.WaterDepth
	st := trapezoidalFlow(n, in.BedSlope, b, z, y)
	if unknown == Discharge {
		in.Discharge = st.discharge
	}
	st.apply(&res)

	// Critical flow
	res.TopWidth = trapezoidTopWidth(b, z, y)
	res.HydraulicDepth = res.WettedArea / res.TopWidth
	res.classify()
	res.DischargeIntensity = in.Discharge / b

	target := in.Discharge * in.Discharge / Gravity
	yc, it, err := searchUnbounded("critical depth", func(yc float64) (float64, error) {
		return math.Pow(trapezoidArea(b, z, yc), 3) / trapezoidTopWidth(b, z, yc), nil
	}, target, 0, FineDepthStep)
	if err != nil {
		return in, Result{}, err
	}
	res.Iterations += it
	res.CriticalDepth = yc
	res.CriticalSlope = criticalSlope(in.Discharge, n, trapezoidArea(b, z, yc), trapezoidPerimeter(b, z, yc))

	return in, res, nil
}

// TrapezoidalChannel is a trapezoidal open channel model.
type TrapezoidalChannel struct {
	OpenChannel
	baseWidth float64
	sideSlope float64
	unknown   Unknown
}

func NewTrapezoidalChannel(unknown Unknown) *TrapezoidalChannel {
	return &TrapezoidalChannel{OpenChannel: newOpenChannel(), unknown: unknown}
}

func (c *TrapezoidalChannel) SetBaseWidth(b float64) { c.baseWidth = c.unit.lengthIn(b) }

func (c *TrapezoidalChannel) BaseWidth() float64 { return c.unit.lengthOut(c.baseWidth) }

// SetSideSlope sets the horizontal run per unit rise of both banks.
func (c *TrapezoidalChannel) SetSideSlope(z float64) { c.sideSlope = z }

func (c *TrapezoidalChannel) SideSlope() float64 { return c.sideSlope }

func (c *TrapezoidalChannel) SetUnknown(u Unknown) { c.unknown = u }

func (c *TrapezoidalChannel) Unknown() Unknown { return c.unknown }

func (c *TrapezoidalChannel) current() TrapezoidalInputs {
	return TrapezoidalInputs{Inputs: c.inputs, BaseWidth: c.baseWidth, SideSlope: c.sideSlope}
}

func (c *TrapezoidalChannel) Analyze() bool {
	in, res, err := SolveTrapezoidal(c.current(), c.unknown)
	if err != nil {
		return c.fail("trapezoidal", c.unknown, err)
	}
	c.baseWidth = in.BaseWidth
	return c.succeed("trapezoidal", c.unknown, in.Inputs, res)
}

func (c *TrapezoidalChannel) RatingAt(stage float64) (RatingPoint, error) {
	in := c.current()
	in.WaterDepth = c.unit.lengthIn(stage)
	in, res, err := SolveTrapezoidal(in, Discharge)
	if err != nil {
		return RatingPoint{}, err
	}
	return c.ratingPoint(stage, in.Discharge, res), nil
}

func (c *TrapezoidalChannel) Profile() (Profile, error) {
	if !c.successful {
		return Profile{}, ErrNotAnalyzed
	}
	b, z, y := c.baseWidth, c.sideSlope, c.inputs.WaterDepth
	top := freeboardTop(y, c.result.CriticalDepth)
	left := z * top // toe of the left bank
	p := Profile{
		Outline: []Point{P(0, top), P(left, 0), P(left+b, 0), P(left+b+z*top, top)},
		Wetted: []Point{
			P(left-z*y, y), P(left, 0), P(left+b, 0), P(left+b+z*y, y),
		},
		WaterLevel:    y,
		CriticalLevel: c.result.CriticalDepth,
	}
	return p.in(c.unit), nil
}
