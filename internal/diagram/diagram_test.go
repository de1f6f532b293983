package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

func analyzedTrapezoid(t *testing.T) hydraulics.Profile {
	t.Helper()
	c := hydraulics.NewTrapezoidalChannel(hydraulics.Discharge)
	c.SetBedSlope(0.001)
	c.SetBaseWidth(1)
	c.SetSideSlope(1)
	c.SetWaterDepth(0.989)
	c.SetManningRoughness(0.015)
	require.True(t, c.Analyze(), c.ErrMessage())
	p, err := c.Profile()
	require.NoError(t, err)
	return p
}

func TestASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(analyzedTrapezoid(t))

	assert.Contains(t, out, "CHANNEL SECTION")
	assert.Contains(t, out, "W.S. 0.989 m")
	assert.Contains(t, out, "C.D. 0.707 m")

	var water, ground int
	for _, line := range strings.Split(out, "\n") {
		if strings.ContainsRune(line, waterCell) && !strings.Contains(line, "=") {
			water++
		}
		if strings.ContainsRune(line, groundCell) && !strings.Contains(line, "=") {
			ground++
		}
	}
	// the water fills roughly the lower 1/1.3 of the raster
	assert.InDelta(t, heightChars/1.3, water, 2)
	assert.Equal(t, heightChars, ground)
}

func TestASCIISectionDiagramEmpty(t *testing.T) {
	out := DrawASCIISectionDiagram(hydraulics.Profile{})
	assert.Contains(t, out, "no extent")
}

func TestCrossingsAtY(t *testing.T) {
	square := []hydraulics.Point{hydraulics.P(0, 0), hydraulics.P(2, 0), hydraulics.P(2, 1), hydraulics.P(0, 1)}
	assert.Equal(t, []float64{0, 2}, crossingsAtY(square, 0.5))
	assert.Empty(t, crossingsAtY(square, 1.5))
	assert.Nil(t, crossingsAtY(square[:2], 0.5))
}

func TestDrawSummaryBox(t *testing.T) {
	body := []string{"Q = 1.000 m³/s", "Flow: subcritical"}
	out := DrawSummaryBox("RESULT", body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, body, bottom border
	require.Len(t, lines, 4+len(body))
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, out, "Q = 1.000 m³/s")
}

func TestExportSectionDiagram(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"section.png", "section.svg", filepath.Join("nested", "section.pdf")} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportSectionDiagram(analyzedTrapezoid(t), "Trapezoidal channel", path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	// unknown extensions are saved as png
	path := filepath.Join(dir, "section.out")
	require.NoError(t, ExportSectionDiagram(analyzedTrapezoid(t), "", path))
	_, err := os.Stat(path + ".png")
	assert.NoError(t, err)
}

func TestExportRatingCurve(t *testing.T) {
	c := hydraulics.NewRectangularChannel(hydraulics.Discharge)
	c.SetBedSlope(0.001)
	c.SetBaseWidth(1)
	c.SetManningRoughness(0.015)
	curve, err := hydraulics.RatingCurve(c, 0.1, 1, 9)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rating.svg")
	require.NoError(t, ExportRatingCurve(curve, hydraulics.Metric, "Rating", path))
	_, err = os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, ExportRatingCurve(nil, hydraulics.Metric, "", path))
}
