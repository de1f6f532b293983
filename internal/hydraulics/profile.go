package hydraulics

import (
	"errors"
	"math"
)

// ErrNotAnalyzed is returned when a profile is requested before a
// successful analysis.
var ErrNotAnalyzed = errors.New("channel has not been analyzed successfully")

// Profile is the drawable cross-section of an analyzed channel: the
// channel boundary, the wetted polygon and the water and critical levels,
// all in the channel's units. Levels are depths for prismatic shapes and
// elevations for surveyed sections.
type Profile struct {
	Outline       []Point
	Wetted        []Point
	WaterLevel    float64
	CriticalLevel float64
	Unit          Unit
}

// Bounds returns the extent of the outline.
func (p Profile) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range p.Outline {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// in converts a metric profile to u.
func (p Profile) in(u Unit) Profile {
	f := u.factor()
	return Profile{
		Outline:       scalePoints(p.Outline, f),
		Wetted:        scalePoints(p.Wetted, f),
		WaterLevel:    p.WaterLevel * f,
		CriticalLevel: p.CriticalLevel * f,
		Unit:          u,
	}
}

// freeboardTop is the drawn height of an open prismatic section.
func freeboardTop(depth, criticalDepth float64) float64 {
	return 1.3 * math.Max(depth, criticalDepth)
}
