package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

const rectangularJSON = `{
  "name": "Lateral A",
  "shape": "rectangular",
  "unknown": "discharge",
  "bed_slope": 0.001,
  "base_width": 1.0,
  "water_depth": 0.989,
  "manning": 0.015
}`

const irregularTOML = `
name = "Creek at station 2+300"
shape = "irregular"
bed_slope = 0.002
manning = 0.03
water_elevation = 99.5

[[points]]
x = 0.0
y = 100.0
[[points]]
x = 5.0
y = 99.0
[[points]]
x = 10.0
y = 96.0
[[points]]
x = 15.0
y = 95.5
[[points]]
x = 20.0
y = 98.0
[[points]]
x = 25.0
y = 100.0
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	s, err := LoadFromFile(writeTemp(t, "lateral.json", rectangularJSON))
	require.NoError(t, err)
	assert.Equal(t, "Lateral A", s.Name)
	assert.Equal(t, 0.989, s.WaterDepth)

	report, err := s.Analyze()
	require.NoError(t, err)
	assert.Equal(t, Rectangular, report.Shape)
	assert.Equal(t, hydraulics.Discharge, report.Unknown)
	assert.InDelta(t, 0.99989, report.Channel.Discharge(), 1e-4)
	assert.Nil(t, report.Properties)
	assert.Contains(t, report.Message, "subcritical")
}

func TestLoadTOML(t *testing.T) {
	s, err := LoadFromFile(writeTemp(t, "creek.toml", irregularTOML))
	require.NoError(t, err)
	require.Len(t, s.Points, 6)
	assert.Equal(t, hydraulics.P(15, 95.5), s.Points[3])

	report, err := s.Analyze()
	require.NoError(t, err)
	assert.InDelta(t, 108.49778, report.Channel.Discharge(), 1e-4)

	props := report.Properties
	require.NotNil(t, props)
	assert.Equal(t, 25.0, props.Width)
	assert.Equal(t, 95.5, props.LowestGround)
	assert.Equal(t, 100.0, props.LowestBank)
	assert.InDelta(t, 57.5, props.BankfullArea, 1e-9)
	assert.InDelta(t, 25.0, props.BankfullTopWidth, 1e-9)
	assert.InDelta(t, 13.26087, props.BankfullCentroidX, 1e-5)
	assert.InDelta(t, 98.35507, props.BankfullCentroidY, 1e-5)
}

func TestImperialDefinition(t *testing.T) {
	s := &Section{
		Shape:      "trapezoidal",
		Unit:       "imperial",
		BedSlope:   0.001,
		BaseWidth:  3.28,
		SideSlope:  1,
		WaterDepth: 0.989 * 3.28,
		Manning:    0.015,
	}
	report, err := s.Analyze()
	require.NoError(t, err)
	assert.Equal(t, hydraulics.Imperial, report.Channel.Unit())
	assert.InDelta(t, 1.967121*3.28*3.28, report.Channel.WettedArea(), 1e-6)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"format", rectangularJSON, "yaml"},
		{"shape", `{"shape": "hexagonal", "manning": 0.015}`, "json"},
		{"unit", `{"shape": "pipe", "unit": "cubits"}`, "json"},
		{"unknown", `{"shape": "pipe", "unknown": "velocity"}`, "json"},
		{"rating", `{"shape": "pipe", "rating": {"from": 1, "to": 0.5, "steps": 4}}`, "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "%v", err)
		})
	}

	_, err := Parse([]byte(`{"shape": `), "json")
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestAnalyzeWrapsSolverErrors(t *testing.T) {
	s := &Section{Name: "Culvert", Shape: "circular", Diameter: 0.5, WaterDepth: 0.7, BedSlope: 0.001, Manning: 0.013}
	_, err := s.Analyze()
	require.Error(t, err)
	var de *hydraulics.DimensionError
	assert.True(t, errors.As(err, &de))
	assert.Contains(t, err.Error(), "Culvert")
}

func TestRatingCurve(t *testing.T) {
	s, err := Parse([]byte(irregularTOML), "toml")
	require.NoError(t, err)

	curve, err := s.RatingCurve(nil)
	require.NoError(t, err)
	require.Len(t, curve, defaultRatingSteps)
	assert.InDelta(t, 100.0, curve[len(curve)-1].Stage, 1e-9)
	assert.Greater(t, curve[0].Stage, 95.5)

	curve, err = s.RatingCurve(&RatingRange{From: 97, To: 99.5, Steps: 5})
	require.NoError(t, err)
	require.Len(t, curve, 6)
	assert.InDelta(t, 108.49778, curve[5].Discharge, 1e-4)

	pipe := &Section{Shape: "circular", Diameter: 1.2, WaterDepth: 0.7, BedSlope: 0.001, Manning: 0.015,
		Rating: &RatingRange{From: 0.1, To: 1.1, Steps: 10}}
	curve, err = pipe.RatingCurve(nil)
	require.NoError(t, err)
	assert.Len(t, curve, 11)
}

func TestRatingRangeOverrides(t *testing.T) {
	s, err := Parse([]byte(irregularTOML), "toml")
	require.NoError(t, err)
	report, err := s.Analyze()
	require.NoError(t, err)

	from, to := 97.0, 99.5
	rng := report.RatingRange(&from, nil, 0)
	assert.Equal(t, 97.0, rng.From)
	assert.InDelta(t, 100.0, rng.To, 1e-12)
	assert.Equal(t, defaultRatingSteps-1, rng.Steps)

	rng = report.RatingRange(nil, &to, 0)
	assert.InDelta(t, 95.725, rng.From, 1e-9)
	assert.Equal(t, 99.5, rng.To)

	curve, err := report.RatingCurve(report.RatingRange(&from, nil, 0))
	require.NoError(t, err)
	require.Len(t, curve, defaultRatingSteps)
	assert.InDelta(t, 100.0, curve[len(curve)-1].Stage, 1e-9)

	pipe := &Section{Shape: "circular", Diameter: 1.2, WaterDepth: 0.7, BedSlope: 0.001, Manning: 0.015,
		Rating: &RatingRange{From: 0.1, To: 1.1, Steps: 10}}
	report, err = pipe.Analyze()
	require.NoError(t, err)
	top := 0.9
	assert.Equal(t, RatingRange{From: 0.1, To: 0.9, Steps: 4}, report.RatingRange(nil, &top, 4))
}
