package section

import (
	"math"

	"github.com/alexiusacademia/goflo/internal/hydraulics"
)

// Properties holds geometric properties of a surveyed section in the
// definition's units
type Properties struct {
	// Bounding box of the survey
	MinX, MaxX float64
	MinY, MaxY float64
	Width      float64
	Height     float64

	LowestGround float64
	LowestBank   float64 // highest water elevation without overflow

	// Wetted polygon with the water at the lowest bank
	BankfullArea      float64
	BankfullPerimeter float64
	BankfullTopWidth  float64
	BankfullCentroidX float64
	BankfullCentroidY float64
}

// CalculateProperties computes the survey properties. Bankfull values stay
// zero when the survey cannot hold water.
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}
	if len(s.Points) == 0 {
		return props
	}

	props.MinX, props.MaxX = s.Points[0].X, s.Points[0].X
	props.MinY, props.MaxY = s.Points[0].Y, s.Points[0].Y
	for _, p := range s.Points {
		props.MinX = math.Min(props.MinX, p.X)
		props.MaxX = math.Max(props.MaxX, p.X)
		props.MinY = math.Min(props.MinY, p.Y)
		props.MaxY = math.Max(props.MaxY, p.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	props.LowestGround = props.MinY
	props.LowestBank = math.Min(s.Points[0].Y, s.Points[len(s.Points)-1].Y)

	poly, err := hydraulics.WaterlineSection(s.Points, props.LowestBank)
	if err != nil {
		return props
	}
	props.BankfullArea = hydraulics.PolygonArea(poly)
	props.BankfullPerimeter = hydraulics.PolylineLength(poly)
	props.BankfullTopWidth = poly[0].DistanceTo(poly[len(poly)-1])
	props.BankfullCentroidX, props.BankfullCentroidY = centroid(poly)
	return props
}

// centroid of a closed polygon by the shoelace sums
func centroid(poly []hydraulics.Point) (cx, cy float64) {
	n := len(poly)
	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		signedArea += cross
		sumX += (poly[i].X + poly[j].X) * cross
		sumY += (poly[i].Y + poly[j].Y) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return 0, 0
	}
	return sumX / (6 * signedArea), sumY / (6 * signedArea)
}
