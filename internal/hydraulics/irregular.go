package hydraulics

import (
	"fmt"
	"math"
)

// IrregularInputs describe a surveyed cross-section in SI units. Points run
// from the left bank to the right bank. Inputs.WaterDepth is ignored on
// input and set to the depth above the lowest ground on output.
type IrregularInputs struct {
	Inputs
	Points         []Point
	WaterElevation float64 // m
}

// LowestElevation is the lowest surveyed ground elevation.
func (in IrregularInputs) LowestElevation() float64 {
	lowest := math.Inf(1)
	for _, p := range in.Points {
		lowest = math.Min(lowest, p.Y)
	}
	return lowest
}

// MaxWaterElevation is the lower of the two bank elevations.
func (in IrregularInputs) MaxWaterElevation() float64 {
	if len(in.Points) == 0 {
		return 0
	}
	return math.Min(in.Points[0].Y, in.Points[len(in.Points)-1].Y)
}

func (in IrregularInputs) Validate(unknown Unknown) error {
	switch unknown {
	case Discharge, BedSlope:
	default:
		return unsupportedUnknown("irregular", unknown)
	}
	if err := in.Inputs.validate(unknown); err != nil {
		return err
	}
	if len(in.Points) < 3 {
		return &DimensionError{msg: "Invalid number of points. Minimum is three (3) points."}
	}
	if in.WaterElevation > in.MaxWaterElevation() {
		return &DimensionError{msg: "Water elevation is above the lowest bank. Overflow!"}
	}
	if in.WaterElevation <= in.LowestElevation() {
		return &DimensionError{msg: "Water surface was set below the lowest ground."}
	}
	return nil
}

// WaterlineSection cuts the surveyed profile at elevation wl. Walking from
// the left bank, the left crossing is interpolated before the first point
// below the waterline and the right crossing before the next point at or
// above it; the points in between are kept. The result starts and ends on
// the waterline.
func WaterlineSection(points []Point, wl float64) ([]Point, error) {
	left := -1
	for i, p := range points {
		if p.Y < wl {
			left = i
			break
		}
	}
	if left < 0 {
		return nil, &DimensionError{msg: fmt.Sprintf("Water elevation %g does not cover any ground point.", wl)}
	}
	if left == 0 {
		return nil, &DimensionError{msg: "Left bank is below the water surface."}
	}

	right := -1
	for k := left + 1; k < len(points); k++ {
		if points[k].Y >= wl {
			right = k
			break
		}
	}
	if right < 0 {
		return nil, &DimensionError{msg: "Right bank is below the water surface."}
	}

	section := make([]Point, 0, right-left+2)
	section = append(section, waterlineCrossing(points[left-1], points[left], wl))
	section = append(section, points[left:right]...)
	section = append(section, waterlineCrossing(points[right-1], points[right], wl))
	return section, nil
}

func waterlineCrossing(p1, p2 Point, wl float64) Point {
	if p2.Y == p1.Y {
		return P(p1.X, wl)
	}
	return P((wl-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)+p1.X, wl)
}

// waterlineFlow is the clipped polygon with its area, wetted perimeter and
// top width.
type waterlineFlow struct {
	polygon   []Point
	area      float64
	perimeter float64
	topWidth  float64
}

func irregularSection(points []Point, wl float64) (waterlineFlow, error) {
	poly, err := WaterlineSection(points, wl)
	if err != nil {
		return waterlineFlow{}, err
	}
	return waterlineFlow{
		polygon:   poly,
		area:      PolygonArea(poly),
		perimeter: PolylineLength(poly),
		topWidth:  poly[0].DistanceTo(poly[len(poly)-1]),
	}, nil
}

// IrregularResult adds the waterline quantities of a surveyed section to
// Result.
type IrregularResult struct {
	Result
	Polygon                []Point // wetted polygon at the water elevation
	CriticalWaterElevation float64
}

// criticalReach is how far above the lowest bank, in multiples of the bank
// depth, the critical water elevation is searched.
const criticalReach = 10

// raisedBanks extends both end points of the survey vertically to top so
// that elevations above the lowest bank still cut a closed section.
func raisedBanks(points []Point, top float64) []Point {
	first, last := points[0], points[len(points)-1]
	raised := make([]Point, 0, len(points)+2)
	raised = append(raised, P(first.X, math.Max(first.Y, top)))
	raised = append(raised, points...)
	return append(raised, P(last.X, math.Max(last.Y, top)))
}

// SolveIrregular solves a surveyed section for the discharge or the bed
// slope (1e-7 grid). The critical water elevation is searched upward from
// the lowest ground on a 0.01 mm grid. Above the lowest bank the banks are
// taken as vertical walls, up to criticalReach bank depths higher.
func SolveIrregular(in IrregularInputs, unknown Unknown) (IrregularInputs, IrregularResult, error) {
	if err := in.Validate(unknown); err != nil {
		return in, IrregularResult{}, err
	}

	var res IrregularResult
	n := in.ManningRoughness

	sec, err := irregularSection(in.Points, in.WaterElevation)
	if err != nil {
		return in, IrregularResult{}, err
	}

	switch unknown {
	case Discharge:
	case BedSlope:
		s, it, err := searchUnbounded("bed slope", func(s float64) (float64, error) {
			return manningFlow(n, s, sec.area, sec.perimeter).discharge, nil
		}, in.Discharge, 0, PipeSlopeStep)
		if err != nil {
			return in, IrregularResult{}, err
		}
		in.BedSlope, res.Iterations = s, it
	default:
		return in, IrregularResult{}, unsupportedUnknown("irregular", unknown)
	}

	st := manningFlow(n, in.BedSlope, sec.area, sec.perimeter)
	if unknown == Discharge {
		in.Discharge = st.discharge
	}
	st.apply(&res.Result)
	res.Polygon = sec.polygon

	lowest := in.LowestElevation()
	in.WaterDepth = in.WaterElevation - lowest

	// Critical flow
	res.TopWidth = sec.topWidth
	res.HydraulicDepth = res.WettedArea / res.TopWidth
	res.classify()

	bank := in.MaxWaterElevation()
	ceiling := bank + criticalReach*(bank-lowest)
	walled := raisedBanks(in.Points, ceiling)
	target := in.Discharge * in.Discharge / Gravity
	yc, it, err := searchBounded("critical water elevation", func(e float64) (float64, error) {
		c, err := irregularSection(walled, e)
		if err != nil {
			return 0, err
		}
		return math.Pow(c.area, 3) / c.topWidth, nil
	}, target, lowest, ceiling, FineDepthStep)
	if err != nil {
		return in, IrregularResult{}, err
	}
	crit, err := irregularSection(walled, yc)
	if err != nil {
		return in, IrregularResult{}, err
	}
	res.Iterations += it
	res.CriticalWaterElevation = yc
	res.CriticalDepth = yc - lowest
	res.CriticalSlope = criticalSlope(in.Discharge, n, crit.area, crit.perimeter)

	return in, res, nil
}

// IrregularChannel is a natural channel described by surveyed ground
// points.
type IrregularChannel struct {
	OpenChannel
	points         []Point
	waterElevation float64
	unknown        Unknown

	polygon                []Point
	criticalWaterElevation float64
}

func NewIrregularChannel(unknown Unknown) *IrregularChannel {
	return &IrregularChannel{OpenChannel: newOpenChannel(), unknown: unknown}
}

// SetPoints copies the surveyed points, ordered from left to right bank.
func (c *IrregularChannel) SetPoints(points []Point) {
	c.points = scalePoints(points, 1/c.unit.factor())
}

func (c *IrregularChannel) Points() []Point { return scalePoints(c.points, c.unit.factor()) }

func (c *IrregularChannel) SetWaterElevation(e float64) { c.waterElevation = c.unit.lengthIn(e) }

func (c *IrregularChannel) WaterElevation() float64 { return c.unit.lengthOut(c.waterElevation) }

func (c *IrregularChannel) SetUnknown(u Unknown) { c.unknown = u }

func (c *IrregularChannel) Unknown() Unknown { return c.unknown }

// MaxWaterElevation is the lower bank elevation; water above it overflows.
func (c *IrregularChannel) MaxWaterElevation() float64 {
	return c.unit.lengthOut(c.current().MaxWaterElevation())
}

func (c *IrregularChannel) LowestElevation() float64 {
	return c.unit.lengthOut(c.current().LowestElevation())
}

func (c *IrregularChannel) CriticalWaterElevation() float64 {
	return c.unit.lengthOut(c.criticalWaterElevation)
}

func (c *IrregularChannel) current() IrregularInputs {
	return IrregularInputs{Inputs: c.inputs, Points: c.points, WaterElevation: c.waterElevation}
}

func (c *IrregularChannel) Analyze() bool {
	in, res, err := SolveIrregular(c.current(), c.unknown)
	if err != nil {
		return c.fail("irregular", c.unknown, err)
	}
	c.polygon = res.Polygon
	c.criticalWaterElevation = res.CriticalWaterElevation
	return c.succeed("irregular", c.unknown, in.Inputs, res.Result)
}

// RatingAt evaluates the discharge with the water surface at elevation
// stage.
func (c *IrregularChannel) RatingAt(stage float64) (RatingPoint, error) {
	in := c.current()
	in.WaterElevation = c.unit.lengthIn(stage)
	in, res, err := SolveIrregular(in, Discharge)
	if err != nil {
		return RatingPoint{}, err
	}
	return c.ratingPoint(stage, in.Discharge, res.Result), nil
}

func (c *IrregularChannel) Profile() (Profile, error) {
	if !c.successful {
		return Profile{}, ErrNotAnalyzed
	}
	p := Profile{
		Outline:       c.points,
		Wetted:        c.polygon,
		WaterLevel:    c.waterElevation,
		CriticalLevel: c.criticalWaterElevation,
	}
	return p.in(c.unit), nil
}
