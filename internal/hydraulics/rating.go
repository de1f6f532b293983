package hydraulics

import "fmt"

// RatingPoint is one stage of a rating curve in the channel's units.
type RatingPoint struct {
	Stage        float64 // water depth, or water elevation for surveyed sections
	Discharge    float64
	Velocity     float64
	WettedArea   float64
	FroudeNumber float64
	FlowType     FlowType
}

// Rater evaluates a channel at a given stage with its other inputs fixed.
// All channel models implement it.
type Rater interface {
	RatingAt(stage float64) (RatingPoint, error)
}

func (c *OpenChannel) ratingPoint(stage, discharge float64, r Result) RatingPoint {
	return RatingPoint{
		Stage:        stage,
		Discharge:    c.unit.dischargeOut(discharge),
		Velocity:     c.unit.lengthOut(r.AverageVelocity),
		WettedArea:   c.unit.areaOut(r.WettedArea),
		FroudeNumber: r.FroudeNumber,
		FlowType:     r.FlowType,
	}
}

// RatingCurve evaluates steps+1 evenly spaced stages from from to to.
func RatingCurve(r Rater, from, to float64, steps int) ([]RatingPoint, error) {
	if steps < 1 {
		return nil, &InvalidValueError{msg: "rating curve needs at least one step"}
	}
	if !(to > from) {
		return nil, &InvalidValueError{msg: fmt.Sprintf("rating curve range %g to %g is empty", from, to)}
	}

	curve := make([]RatingPoint, 0, steps+1)
	dh := (to - from) / float64(steps)
	for i := 0; i <= steps; i++ {
		stage := from + float64(i)*dh
		if i == steps {
			stage = to
		}
		pt, err := r.RatingAt(stage)
		if err != nil {
			return nil, fmt.Errorf("stage %g: %w", stage, err)
		}
		curve = append(curve, pt)
	}
	return curve, nil
}
