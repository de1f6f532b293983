package hydraulics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonAreaUnitSquare(t *testing.T) {
	square := []Point{P(0, 0), P(1, 0), P(1, 1), P(0, 1)}
	assert.InDelta(t, 1.0, PolygonArea(square), 1e-12)

	// Winding does not matter.
	reversed := []Point{P(0, 1), P(1, 1), P(1, 0), P(0, 0)}
	assert.InDelta(t, 1.0, PolygonArea(reversed), 1e-12)
}

func TestPolylineLengthIsOpen(t *testing.T) {
	square := []Point{P(0, 0), P(1, 0), P(1, 1), P(0, 1)}
	assert.InDelta(t, 3.0, PolylineLength(square), 1e-12)
}

func TestDegeneratePolygons(t *testing.T) {
	assert.Zero(t, PolygonArea(nil))
	assert.Zero(t, PolygonArea([]Point{P(0, 0), P(1, 1)}))
	assert.Zero(t, PolylineLength([]Point{P(3, 4)}))
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, P(0, 0).DistanceTo(P(3, 4)), 1e-12)
	assert.InDelta(t, 5.0, P(3, 4).DistanceTo(P(0, 0)), 1e-12)
}
