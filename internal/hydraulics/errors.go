package hydraulics

import "fmt"

// DimensionError reports an invalid geometric input: a non-positive width,
// depth or diameter, or a water level outside the section.
type DimensionError struct {
	msg string
}

func (e *DimensionError) Error() string {
	return e.msg
}

// InvalidValueError reports an invalid non-geometric input such as a
// non-positive roughness, discharge or slope, or an unsupported unknown.
type InvalidValueError struct {
	msg string
}

func (e *InvalidValueError) Error() string {
	return e.msg
}

// NumericDomainError is returned when a geometric relation is evaluated
// outside its domain, e.g. an inverse cosine argument beyond [-1, 1].
type NumericDomainError struct {
	msg string
}

func (e *NumericDomainError) Error() string {
	return e.msg
}

// ConvergenceError is returned when a trial search does not reach its
// target within the iteration limit.
type ConvergenceError struct {
	Quantity   string
	Iterations int
	msg        string
}

func (e *ConvergenceError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("%s did not converge after %d iterations", e.Quantity, e.Iterations)
}
