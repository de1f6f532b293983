package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

var (
	groundColor   = color.RGBA{R: 101, G: 67, B: 33, A: 255}
	waterColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	surfaceColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	criticalColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram exports the channel cross-section with its wetted
// area, water surface and critical level to an image file. The format
// follows the extension: .png, .svg or .pdf; anything else gets .png
// appended.
func ExportSectionDiagram(prof hydraulics.Profile, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	u := prof.Unit.Length()
	p.X.Label.Text = fmt.Sprintf("Offset (%s)", u)
	p.Y.Label.Text = fmt.Sprintf("Elevation (%s)", u)

	minX, _, maxX, _ := prof.Bounds()
	margin := 0.05 * (maxX - minX)

	if len(prof.Wetted) >= 3 {
		water, err := plotter.NewPolygon(toXYs(prof.Wetted))
		if err != nil {
			return err
		}
		water.Color = waterColor
		water.LineStyle.Color = surfaceColor
		p.Add(water)
	}

	ground, err := plotter.NewLine(toXYs(prof.Outline))
	if err != nil {
		return err
	}
	ground.LineStyle.Width = vg.Points(2)
	ground.LineStyle.Color = groundColor
	p.Add(ground)

	// Water surface across the wetted width
	wsMin, wsMax := minX, maxX
	if len(prof.Wetted) >= 2 {
		wsMin, wsMax = prof.Wetted[0].X, prof.Wetted[0].X
		for _, v := range prof.Wetted {
			wsMin, wsMax = min(wsMin, v.X), max(wsMax, v.X)
		}
	}
	surface, err := plotter.NewLine(plotter.XYs{
		{X: wsMin, Y: prof.WaterLevel},
		{X: wsMax, Y: prof.WaterLevel},
	})
	if err != nil {
		return err
	}
	surface.LineStyle.Width = vg.Points(1.5)
	surface.LineStyle.Color = surfaceColor
	p.Add(surface)

	critical, err := plotter.NewLine(plotter.XYs{
		{X: minX - margin, Y: prof.CriticalLevel},
		{X: maxX + margin, Y: prof.CriticalLevel},
	})
	if err != nil {
		return err
	}
	critical.LineStyle.Width = vg.Points(1.5)
	critical.LineStyle.Color = criticalColor
	critical.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(critical)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: wsMax, Y: prof.WaterLevel},
			{X: maxX + margin, Y: prof.CriticalLevel},
		},
		Labels: []string{
			fmt.Sprintf("W.S. %.3f %s", prof.WaterLevel, u),
			fmt.Sprintf("C.D. %.3f %s", prof.CriticalLevel, u),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportRatingCurve plots discharge against stage.
func ExportRatingCurve(curve []hydraulics.RatingPoint, unit hydraulics.Unit, title, filename string) error {
	if len(curve) == 0 {
		return fmt.Errorf("rating curve is empty")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("Discharge (%s)", unit.Discharge())
	p.Y.Label.Text = fmt.Sprintf("Stage (%s)", unit.Length())
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(curve))
	for i, c := range curve {
		pts[i] = plotter.XY{X: c.Discharge, Y: c.Stage}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = surfaceColor
	points.GlyphStyle.Color = surfaceColor
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(pts []hydraulics.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}
