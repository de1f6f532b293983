package section

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

// Section is a channel definition read from a JSON or TOML file. Lengths
// are in the definition's unit system; the slope is dimensionless.
//
// Which fields are required depends on the shape and on the unknown: the
// unknown quantity may be omitted or left at zero.
type Section struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description"`

	// rectangular, trapezoidal, circular or irregular
	Shape string `json:"shape" toml:"shape"`
	// metric (default) or imperial
	Unit string `json:"unit,omitempty" toml:"unit"`
	// quantity to solve for, discharge by default
	Unknown string `json:"unknown,omitempty" toml:"unknown"`

	Discharge  float64 `json:"discharge,omitempty" toml:"discharge"`
	BedSlope   float64 `json:"bed_slope,omitempty" toml:"bed_slope"`
	WaterDepth float64 `json:"water_depth,omitempty" toml:"water_depth"`
	Manning    float64 `json:"manning" toml:"manning"`

	// Prismatic geometry
	BaseWidth float64 `json:"base_width,omitempty" toml:"base_width"`
	SideSlope float64 `json:"side_slope,omitempty" toml:"side_slope"` // horizontal per vertical
	Diameter  float64 `json:"diameter,omitempty" toml:"diameter"`

	// Surveyed geometry, points from left bank to right bank
	WaterElevation float64            `json:"water_elevation,omitempty" toml:"water_elevation"`
	Points         []hydraulics.Point `json:"points,omitempty" toml:"points"`

	// Optional default range for rating curves
	Rating *RatingRange `json:"rating,omitempty" toml:"rating"`
}

// RatingRange is the stage range of a rating curve: water depths, or water
// elevations for irregular sections.
type RatingRange struct {
	From  float64 `json:"from" toml:"from"`
	To    float64 `json:"to" toml:"to"`
	Steps int     `json:"steps" toml:"steps"`
}

// Shape is a channel cross-section family.
type Shape string

const (
	Rectangular Shape = "rectangular"
	Trapezoidal Shape = "trapezoidal"
	Circular    Shape = "circular"
	Irregular   Shape = "irregular"
)

// ParseShape accepts the shape names case-insensitively, plus "pipe" and
// "natural".
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "rectangle":
		return Rectangular, nil
	case "trapezoidal", "trapezoid":
		return Trapezoidal, nil
	case "circular", "circle", "pipe":
		return Circular, nil
	case "irregular", "natural":
		return Irregular, nil
	}
	return "", &ValidationError{msg: fmt.Sprintf("unknown shape %q", s)}
}

// Validate checks that the definition names a known shape, unit and
// unknown. Numeric inputs are checked by the solver on analysis.
func (s *Section) Validate() error {
	if _, err := ParseShape(s.Shape); err != nil {
		return err
	}
	if _, err := hydraulics.ParseUnit(s.Unit); err != nil {
		return &ValidationError{msg: fmt.Sprintf("unknown unit system %q", s.Unit)}
	}
	if _, err := hydraulics.ParseUnknown(s.Unknown); err != nil {
		return &ValidationError{msg: fmt.Sprintf("unknown quantity %q", s.Unknown)}
	}
	if r := s.Rating; r != nil {
		if r.Steps < 1 {
			return &ValidationError{msg: "rating steps must be at least 1"}
		}
		if r.To <= r.From {
			return &ValidationError{msg: "rating range must increase"}
		}
	}
	return nil
}

// ValidationError represents a definition file error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
