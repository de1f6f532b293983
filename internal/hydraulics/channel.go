// Package hydraulics computes steady uniform open-channel flow with
// Manning's equation for rectangular, trapezoidal, circular (part-full) and
// irregular surveyed sections.
//
// Each shape has a pure Solve function working on SI inputs and a stateful
// channel model wrapping it with unit-aware setters and getters:
//
//	ch := hydraulics.NewRectangularChannel(hydraulics.WaterDepth)
//	ch.SetDischarge(1.2)
//	ch.SetBedSlope(0.001)
//	ch.SetBaseWidth(2)
//	ch.SetManningRoughness(0.015)
//	if ch.Analyze() {
//		fmt.Println(ch.WaterDepth())
//	}
//
// Channel models are not safe for concurrent use.
package hydraulics

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Gravity is the gravitational acceleration in m/s².
const Gravity = 9.81

// FlowType is the flow regime given by the Froude number.
type FlowType int

const (
	Subcritical FlowType = iota
	Critical
	Supercritical
)

func (f FlowType) String() string {
	switch f {
	case Subcritical:
		return "subcritical"
	case Critical:
		return "critical"
	case Supercritical:
		return "supercritical"
	default:
		return "unknown"
	}
}

// ClassifyFlow returns Critical only for a Froude number of exactly 1,
// which in floating point happens only by construction.
func ClassifyFlow(froude float64) FlowType {
	switch {
	case froude == 1:
		return Critical
	case froude < 1:
		return Subcritical
	default:
		return Supercritical
	}
}

// ManningVelocity is V = (1/n)·S^½·R^⅔.
func ManningVelocity(n, slope, hydraulicRadius float64) float64 {
	return (1 / n) * math.Sqrt(slope) * math.Pow(hydraulicRadius, 2.0/3.0)
}

// Unknown names the quantity an analysis solves for.
type Unknown int

const (
	Discharge Unknown = iota
	BedSlope
	WaterDepth
	BaseWidth
	Diameter
)

var unknownNames = map[Unknown]string{
	Discharge:  "discharge",
	BedSlope:   "bed slope",
	WaterDepth: "water depth",
	BaseWidth:  "base width",
	Diameter:   "diameter",
}

func (u Unknown) String() string {
	if s, ok := unknownNames[u]; ok {
		return s
	}
	return "unknown"
}

// ParseUnknown accepts the names printed by String, with underscores,
// hyphens or no separator, and the short forms q, s, y, b and d.
func ParseUnknown(s string) (Unknown, error) {
	switch normalizeName(s) {
	case "discharge", "q", "":
		return Discharge, nil
	case "bedslope", "slope", "s":
		return BedSlope, nil
	case "waterdepth", "depth", "y":
		return WaterDepth, nil
	case "basewidth", "width", "b":
		return BaseWidth, nil
	case "diameter", "d":
		return Diameter, nil
	}
	return Discharge, &InvalidValueError{msg: "invalid unknown " + s}
}

func normalizeName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ' || r == '_' || r == '-':
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// Inputs are the quantities shared by every shape, in SI units.
type Inputs struct {
	Discharge        float64 // m³/s
	BedSlope         float64 // m/m
	WaterDepth       float64 // m
	ManningRoughness float64
}

// validate checks the shared inputs that are not being solved for.
func (in Inputs) validate(unknown Unknown) error {
	if !positive(in.ManningRoughness) {
		return &InvalidValueError{msg: "Manning's roughness must be greater than zero."}
	}
	if unknown != Discharge && !positive(in.Discharge) {
		return &InvalidValueError{msg: "Discharge must be greater than zero."}
	}
	if unknown != BedSlope && !positive(in.BedSlope) {
		return &InvalidValueError{msg: "Bed slope must not be flat or less than zero."}
	}
	return nil
}

// positive rejects NaN and infinities along with values <= 0.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func validateDepth(unknown Unknown, depth float64) error {
	if unknown == WaterDepth {
		return nil
	}
	if depth == 0 {
		return &DimensionError{msg: "Water depth must be greater than zero."}
	}
	if !positive(depth) {
		return &DimensionError{msg: "Invalid depth of water."}
	}
	return nil
}

// Result holds the derived hydraulic quantities of a solved section in SI
// units.
type Result struct {
	WettedArea      float64 // m²
	WettedPerimeter float64 // m
	HydraulicRadius float64 // m
	AverageVelocity float64 // m/s
	TopWidth        float64 // m

	HydraulicDepth     float64 // m
	FroudeNumber       float64
	FlowType           FlowType
	DischargeIntensity float64 // m²/s, rectangular family only
	CriticalDepth      float64 // m
	CriticalSlope      float64

	// Iterations used by the trial searches, 0 for closed forms.
	Iterations int
}

// flowState is the wetted geometry and velocity at one trial.
type flowState struct {
	area, perimeter, radius, velocity, discharge float64
}

func manningFlow(n, slope, area, perimeter float64) flowState {
	s := flowState{area: area, perimeter: perimeter}
	if perimeter > 0 {
		s.radius = area / perimeter
	}
	s.velocity = ManningVelocity(n, slope, s.radius)
	s.discharge = s.velocity * area
	return s
}

func (s flowState) apply(r *Result) {
	r.WettedArea = s.area
	r.WettedPerimeter = s.perimeter
	r.HydraulicRadius = s.radius
	r.AverageVelocity = s.velocity
}

// classify fills the Froude number and flow type from velocity and
// hydraulic depth.
func (r *Result) classify() {
	r.FroudeNumber = r.AverageVelocity / math.Sqrt(Gravity*r.HydraulicDepth)
	r.FlowType = ClassifyFlow(r.FroudeNumber)
}

// criticalSlope is the slope that carries q at the critical section.
func criticalSlope(discharge, n, area, perimeter float64) float64 {
	rc := area / perimeter
	return math.Pow(discharge/(area*math.Pow(rc, 2.0/3.0))*n, 2)
}

// OpenChannel is the state shared by all channel models: the common
// inputs, the unit mode, the last result and the status of the last
// analysis. It is embedded by the shape models.
type OpenChannel struct {
	unit   Unit
	inputs Inputs
	result Result

	successful bool
	err        error

	// Log receives debug records of each analysis.
	Log logrus.FieldLogger
}

func newOpenChannel() OpenChannel {
	return OpenChannel{unit: Metric, Log: logrus.StandardLogger()}
}

// Unit returns the unit system of the setters and getters.
func (c *OpenChannel) Unit() Unit { return c.unit }

// SetUnit changes the unit system. Stored values are not affected.
func (c *OpenChannel) SetUnit(u Unit) { c.unit = u }

func (c *OpenChannel) SetDischarge(q float64) { c.inputs.Discharge = c.unit.dischargeIn(q) }

func (c *OpenChannel) SetBedSlope(s float64) { c.inputs.BedSlope = s }

func (c *OpenChannel) SetWaterDepth(y float64) { c.inputs.WaterDepth = c.unit.lengthIn(y) }

func (c *OpenChannel) SetManningRoughness(n float64) { c.inputs.ManningRoughness = n }

func (c *OpenChannel) Discharge() float64 { return c.unit.dischargeOut(c.inputs.Discharge) }

func (c *OpenChannel) BedSlope() float64 { return c.inputs.BedSlope }

func (c *OpenChannel) WaterDepth() float64 { return c.unit.lengthOut(c.inputs.WaterDepth) }

func (c *OpenChannel) ManningRoughness() float64 { return c.inputs.ManningRoughness }

func (c *OpenChannel) WettedArea() float64 { return c.unit.areaOut(c.result.WettedArea) }

func (c *OpenChannel) WettedPerimeter() float64 { return c.unit.lengthOut(c.result.WettedPerimeter) }

func (c *OpenChannel) HydraulicRadius() float64 { return c.unit.lengthOut(c.result.HydraulicRadius) }

func (c *OpenChannel) AverageVelocity() float64 { return c.unit.lengthOut(c.result.AverageVelocity) }

func (c *OpenChannel) TopWidth() float64 { return c.unit.lengthOut(c.result.TopWidth) }

func (c *OpenChannel) HydraulicDepth() float64 { return c.unit.lengthOut(c.result.HydraulicDepth) }

func (c *OpenChannel) FroudeNumber() float64 { return c.result.FroudeNumber }

func (c *OpenChannel) FlowType() FlowType { return c.result.FlowType }

// DischargeIntensity is the discharge per unit base width.
func (c *OpenChannel) DischargeIntensity() float64 {
	return c.unit.areaOut(c.result.DischargeIntensity)
}

func (c *OpenChannel) CriticalDepth() float64 { return c.unit.lengthOut(c.result.CriticalDepth) }

func (c *OpenChannel) CriticalSlope() float64 { return c.result.CriticalSlope }

// Result returns the derived quantities of the last successful analysis in
// SI units.
func (c *OpenChannel) Result() Result { return c.result }

// IsSuccessful reports whether the last analysis succeeded.
func (c *OpenChannel) IsSuccessful() bool { return c.successful }

// Err returns the error of the last failed analysis, or nil.
func (c *OpenChannel) Err() error { return c.err }

// ErrMessage returns the message of the last failed analysis, or "".
func (c *OpenChannel) ErrMessage() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// fail records err and keeps the previous result untouched.
func (c *OpenChannel) fail(shape string, unknown Unknown, err error) bool {
	c.successful = false
	c.err = err
	c.Log.WithFields(logrus.Fields{
		"shape":   shape,
		"unknown": unknown.String(),
		"error":   err.Error(),
	}).Debug("analysis failed")
	return false
}

func (c *OpenChannel) succeed(shape string, unknown Unknown, in Inputs, r Result) bool {
	c.inputs = in
	c.result = r
	c.successful = true
	c.err = nil
	c.Log.WithFields(logrus.Fields{
		"shape":      shape,
		"unknown":    unknown.String(),
		"discharge":  in.Discharge,
		"depth":      in.WaterDepth,
		"froude":     r.FroudeNumber,
		"iterations": r.Iterations,
	}).Debug("analysis finished")
	return true
}

// Channel is implemented by every channel model.
type Channel interface {
	Rater
	Analyze() bool
	IsSuccessful() bool
	Err() error
	ErrMessage() string
	Profile() (Profile, error)

	Unit() Unit
	Discharge() float64
	BedSlope() float64
	WaterDepth() float64
	ManningRoughness() float64
	WettedArea() float64
	WettedPerimeter() float64
	HydraulicRadius() float64
	AverageVelocity() float64
	TopWidth() float64
	HydraulicDepth() float64
	FroudeNumber() float64
	FlowType() FlowType
	DischargeIntensity() float64
	CriticalDepth() float64
	CriticalSlope() float64
}

var (
	_ Channel = (*RectangularChannel)(nil)
	_ Channel = (*TrapezoidalChannel)(nil)
	_ Channel = (*CircularChannel)(nil)
	_ Channel = (*IrregularChannel)(nil)
)
