// Package instance - sentinel errors.
package instance

import "errors"

var (
	// ErrInvalidInstance indicates a malformed instance document: broken
	// JSON, a numeric domain violation, or a deadline beyond horizon+1.
	// Job-level and penalty-level sentinels from packages sched and
	// penalty pass through wrapped with the offending job id.
	ErrInvalidInstance = errors.New("instance: invalid instance")

	// ErrFunctionType indicates an unknown penalty_function.function_type.
	ErrFunctionType = errors.New("instance: unknown penalty function type")

	// ErrInvalidSolution indicates a malformed or inconsistent solution
	// file (wrong line count, unparsable slot index, illegal placement).
	ErrInvalidSolution = errors.New("instance: invalid solution file")

	// ErrBadGenConfig indicates an unusable generator configuration.
	ErrBadGenConfig = errors.New("instance: invalid generator configuration")
)
