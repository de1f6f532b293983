package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

// LoadFromFile loads a channel definition from a .json or .toml file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a definition in the given format ("json" or "toml") and
// validates it.
func Parse(data []byte, format string) (*Section, error) {
	var section Section
	switch format {
	case "json":
		if err := json.Unmarshal(data, &section); err != nil {
			return nil, err
		}
	case "toml":
		md, err := toml.Decode(string(data), &section)
		if err != nil {
			return nil, err
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			logrus.WithField("keys", keys).Warn("ignoring unknown definition keys")
		}
	default:
		return nil, &ValidationError{msg: fmt.Sprintf("unsupported definition format %q (use .json or .toml)", format)}
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}
	return &section, nil
}

// Channel builds the channel model described by the definition. The model
// is configured but not analyzed.
func (s *Section) Channel() (hydraulics.Channel, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	shape, _ := ParseShape(s.Shape)
	unit, _ := hydraulics.ParseUnit(s.Unit)
	unknown, _ := hydraulics.ParseUnknown(s.Unknown)

	type common interface {
		SetDischarge(float64)
		SetBedSlope(float64)
		SetWaterDepth(float64)
		SetManningRoughness(float64)
	}

	var ch hydraulics.Channel
	switch shape {
	case Rectangular:
		c := hydraulics.NewRectangularChannel(unknown)
		c.SetUnit(unit)
		c.SetBaseWidth(s.BaseWidth)
		ch = c
	case Trapezoidal:
		c := hydraulics.NewTrapezoidalChannel(unknown)
		c.SetUnit(unit)
		c.SetBaseWidth(s.BaseWidth)
		c.SetSideSlope(s.SideSlope)
		ch = c
	case Circular:
		c := hydraulics.NewCircularChannel(unknown)
		c.SetUnit(unit)
		c.SetDiameter(s.Diameter)
		ch = c
	case Irregular:
		c := hydraulics.NewIrregularChannel(unknown)
		c.SetUnit(unit)
		c.SetPoints(s.Points)
		c.SetWaterElevation(s.WaterElevation)
		ch = c
	}

	m := ch.(common)
	m.SetDischarge(s.Discharge)
	m.SetBedSlope(s.BedSlope)
	m.SetWaterDepth(s.WaterDepth)
	m.SetManningRoughness(s.Manning)
	return ch, nil
}

// Report holds the analyzed channel of a definition
type Report struct {
	Section *Section
	Shape   Shape
	Unknown hydraulics.Unknown
	Channel hydraulics.Channel

	// Surveyed geometry, irregular sections only
	Properties *Properties

	Message string
}

// Analyze builds and solves the channel.
func (s *Section) Analyze() (*Report, error) {
	ch, err := s.Channel()
	if err != nil {
		return nil, err
	}
	if !ch.Analyze() {
		return nil, fmt.Errorf("analyze %s: %w", s.title(), ch.Err())
	}

	shape, _ := ParseShape(s.Shape)
	unknown, _ := hydraulics.ParseUnknown(s.Unknown)
	report := &Report{
		Section: s,
		Shape:   shape,
		Unknown: unknown,
		Channel: ch,
	}
	if shape == Irregular {
		report.Properties = s.CalculateProperties()
	}

	report.Message = FlowMessage(ch.FlowType())
	return report, nil
}

// FlowMessage describes a flow regime for reports.
func FlowMessage(t hydraulics.FlowType) string {
	switch t {
	case hydraulics.Subcritical:
		return "Flow is subcritical (F < 1), the water depth is above critical depth"
	case hydraulics.Supercritical:
		return "Flow is supercritical (F > 1), the water depth is below critical depth"
	default:
		return "Flow is critical (F = 1)"
	}
}

// RatingCurve analyzes the channel and evaluates its rating curve over rng.
// A nil rng falls back to the definition's range, then to
// DefaultRatingRange.
func (s *Section) RatingCurve(rng *RatingRange) ([]hydraulics.RatingPoint, error) {
	report, err := s.Analyze()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		r := report.RatingRange(nil, nil, 0)
		rng = &r
	}
	return report.RatingCurve(*rng)
}

// RatingCurve evaluates the rating curve of the analyzed channel over rng.
func (r *Report) RatingCurve(rng RatingRange) ([]hydraulics.RatingPoint, error) {
	curve, err := hydraulics.RatingCurve(r.Channel, rng.From, rng.To, rng.Steps)
	if err != nil {
		return nil, fmt.Errorf("rating %s: %w", r.Section.title(), err)
	}
	return curve, nil
}

// RatingRange starts from the definition's range, or DefaultRatingRange
// without one, and replaces whichever of from, to and steps are given.
// A steps value below 1 keeps the base step count.
func (r *Report) RatingRange(from, to *float64, steps int) RatingRange {
	rng := r.DefaultRatingRange()
	if r.Section.Rating != nil {
		rng = *r.Section.Rating
	}
	if from != nil {
		rng.From = *from
	}
	if to != nil {
		rng.To = *to
	}
	if steps > 0 {
		rng.Steps = steps
	}
	return rng
}

// default number of rating intervals
const defaultRatingSteps = 20

// DefaultRatingRange spans the useful stages of the analyzed channel:
// up to twice the water depth for open prismatic sections, up to just
// below the crown for pipes and up to the lowest bank for surveyed
// sections. The first stage is one interval above the bottom.
func (r *Report) DefaultRatingRange() RatingRange {
	var bottom, top float64
	switch c := r.Channel.(type) {
	case *hydraulics.CircularChannel:
		top = 0.95 * c.Diameter()
	case *hydraulics.IrregularChannel:
		bottom, top = c.LowestElevation(), c.MaxWaterElevation()
	default:
		top = 2 * r.Channel.WaterDepth()
	}
	dh := (top - bottom) / defaultRatingSteps
	return RatingRange{From: bottom + dh, To: top, Steps: defaultRatingSteps - 1}
}

func (s *Section) title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Shape + " channel"
}
