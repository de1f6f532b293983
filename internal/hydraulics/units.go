package hydraulics

import "strings"

// Unit selects the unit system used at the input/output boundary of a
// channel model. All computation is done in SI.
type Unit int

const (
	Metric   Unit = iota // meters, seconds
	Imperial             // feet, seconds
)

// MeterToFoot is the length factor used by the conversions. It is kept at
// 3.28 rather than 3.28084 so results match the original tables.
const MeterToFoot = 3.28

func (u Unit) String() string {
	switch u {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return "unknown"
	}
}

// ParseUnit accepts "metric"/"si" and "imperial"/"english". An empty string
// is metric.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "si":
		return Metric, nil
	case "imperial", "english":
		return Imperial, nil
	}
	return Metric, &InvalidValueError{msg: "unknown unit system " + s}
}

// Suffixes for printing values in u.
func (u Unit) Length() string {
	if u == Imperial {
		return "ft"
	}
	return "m"
}

func (u Unit) Area() string {
	if u == Imperial {
		return "ft²"
	}
	return "m²"
}

func (u Unit) Velocity() string {
	if u == Imperial {
		return "ft/s"
	}
	return "m/s"
}

func (u Unit) Discharge() string {
	if u == Imperial {
		return "ft³/s"
	}
	return "m³/s"
}

// length factor from metric to u
func (u Unit) factor() float64 {
	if u == Imperial {
		return MeterToFoot
	}
	return 1
}

func (u Unit) lengthIn(v float64) float64 { return v / u.factor() }

func (u Unit) lengthOut(v float64) float64 { return v * u.factor() }

func (u Unit) areaOut(v float64) float64 {
	f := u.factor()
	return v * f * f
}

func (u Unit) dischargeIn(v float64) float64 {
	f := u.factor()
	return v / (f * f * f)
}

func (u Unit) dischargeOut(v float64) float64 {
	f := u.factor()
	return v * f * f * f
}
