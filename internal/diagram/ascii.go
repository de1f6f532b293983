package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

// Raster size of the ASCII cross-section
const (
	widthChars  = 48
	heightChars = 16
)

const (
	groundCell = '█'
	waterCell  = '░'
	emptyCell  = ' '
)

// DrawASCIISectionDiagram draws the channel outline and the wetted area of
// an analyzed channel, with the water surface and critical level marked on
// the right.
func DrawASCIISectionDiagram(p hydraulics.Profile) string {
	var sb strings.Builder

	minX, minY, maxX, maxY := p.Bounds()
	if len(p.Outline) < 2 || maxX <= minX || maxY <= minY {
		return "  (section has no extent to draw)\n"
	}
	dx := (maxX - minX) / widthChars
	dy := (maxY - minY) / heightChars

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(emptyCell), widthChars))
	}

	// Water fill, row by row between edge crossings
	for row := 0; row < heightChars; row++ {
		y := maxY - (float64(row)+0.5)*dy
		xs := crossingsAtY(p.Wetted, y)
		for i := 0; i+1 < len(xs); i += 2 {
			for col := 0; col < widthChars; col++ {
				x := minX + (float64(col)+0.5)*dx
				if x >= xs[i] && x <= xs[i+1] {
					grid[row][col] = waterCell
				}
			}
		}
	}

	// Channel boundary
	for i := 0; i+1 < len(p.Outline); i++ {
		a, b := p.Outline[i], p.Outline[i+1]
		n := 2 * (widthChars + heightChars)
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			col, row := cell(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y), minX, maxY, dx, dy)
			grid[row][col] = groundCell
		}
	}

	waterRow := levelRow(p.WaterLevel, maxY, dy)
	critRow := levelRow(p.CriticalLevel, maxY, dy)
	u := p.Unit.Length()

	sb.WriteString("\n")
	sb.WriteString("  CHANNEL SECTION\n")
	sb.WriteString("  ───────────────\n")
	for row := 0; row < heightChars; row++ {
		sb.WriteString("  ")
		sb.WriteString(string(grid[row]))
		switch {
		case row == waterRow && row == critRow:
			sb.WriteString(fmt.Sprintf(" ◄─ W.S. %.3f %s, C.D. %.3f %s", p.WaterLevel, u, p.CriticalLevel, u))
		case row == waterRow:
			sb.WriteString(fmt.Sprintf(" ◄─ W.S. %.3f %s", p.WaterLevel, u))
		case row == critRow:
			sb.WriteString(fmt.Sprintf(" ◄┄ C.D. %.3f %s", p.CriticalLevel, u))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = Channel boundary\n", groundCell))
	sb.WriteString(fmt.Sprintf("  %c = Flow area\n", waterCell))
	sb.WriteString("  W.S. = Water surface, C.D. = Critical depth level\n")

	return sb.String()
}

func cell(x, y, minX, maxY, dx, dy float64) (col, row int) {
	col = clamp(int((x-minX)/dx), 0, widthChars-1)
	row = clamp(int((maxY-y)/dy), 0, heightChars-1)
	return col, row
}

// levelRow is the raster row of elevation v, or -1 when v is outside the
// drawing.
func levelRow(v, maxY, dy float64) int {
	r := (maxY - v) / dy
	if r < 0 || r > heightChars || math.IsNaN(r) {
		return -1
	}
	return clamp(int(r), 0, heightChars-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// crossingsAtY finds the sorted X coordinates where a horizontal line at y
// crosses the edges of the closed polygon
func crossingsAtY(poly []hydraulics.Point, y float64) []float64 {
	var xs []float64
	n := len(poly)
	if n < 3 {
		return nil
	}
	for i := 0; i < n; i++ {
		v1, v2 := poly[i], poly[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	sort.Float64s(xs)
	return xs
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
