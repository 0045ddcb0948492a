// Package penalty - tagged penalty-function variants and sentinel errors.
package penalty

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (construction-time validation)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrNegativeSlope indicates a linear function with Slope < 0.
	ErrNegativeSlope = errors.New("penalty: slope must be non-negative")

	// ErrNegativeIntercept indicates a linear function with Intercept < 0.
	ErrNegativeIntercept = errors.New("penalty: intercept must be non-negative")

	// ErrBreakpointTime indicates a step breakpoint time ≤ 0 or a
	// non-strictly-increasing time sequence.
	ErrBreakpointTime = errors.New("penalty: breakpoint times must be positive and strictly increasing")

	// ErrBreakpointValue indicates a negative or decreasing step penalty value.
	ErrBreakpointValue = errors.New("penalty: breakpoint penalties must be non-negative and non-decreasing")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Variant tag & parameters
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Kind tags the penalty-function variant a Func carries.
type Kind int

const (
	// Linear: f(τ) = Slope·τ + Intercept.
	Linear Kind = iota

	// Step: f(τ) is the penalty of the largest breakpoint with Time ≤ τ,
	// or 0 when τ precedes every breakpoint.
	Step
)

// Breakpoint is one step of a Step function: from tardiness Time onward
// (until the next breakpoint) the penalty equals Penalty.
type Breakpoint struct {
	// Time is the first tardiness value at which Penalty applies. Must be ≥ 1.
	Time int

	// Penalty is the non-negative penalty charged from Time onward.
	Penalty float64
}
