// Package sched - sentinel errors shared by Job and Schedule constructors
// and mutation paths.
package sched

import "errors"

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrEmptyID indicates a job with an empty identifier.
	ErrEmptyID = errors.New("sched: job id must be non-empty")

	// ErrNegativeRelease indicates a release time < 0.
	ErrNegativeRelease = errors.New("sched: release time must be non-negative")

	// ErrNonPositiveWork indicates a processing time < 1.
	ErrNonPositiveWork = errors.New("sched: processing time must be at least one slot")

	// ErrDeadlineOrder indicates deadline ≤ release time.
	ErrDeadlineOrder = errors.New("sched: release time must precede deadline")

	// ErrNegativeReward indicates a reward < 0.
	ErrNegativeReward = errors.New("sched: reward must be non-negative")

	// ErrNegativeDrop indicates a drop penalty < 0.
	ErrNegativeDrop = errors.New("sched: drop penalty must be non-negative")

	// ErrNonPositiveHorizon indicates a horizon without a single slot.
	ErrNonPositiveHorizon = errors.New("sched: horizon must contain at least one slot")

	// ErrDuplicateID indicates two jobs sharing an id within one instance.
	ErrDuplicateID = errors.New("sched: duplicate job id")
)

// Placement errors surfaced by Place (external assignment of a slot).
var (
	// ErrUnknownJob indicates a job id absent from the instance.
	ErrUnknownJob = errors.New("sched: unknown job id")

	// ErrSlotOutOfRange indicates a slot index outside 0…T−1.
	ErrSlotOutOfRange = errors.New("sched: slot outside horizon")

	// ErrSlotOccupied indicates the slot already holds a job.
	ErrSlotOccupied = errors.New("sched: slot already assigned")

	// ErrOutsideWindow indicates a slot before the job's release or at or
	// beyond deadline + t*.
	ErrOutsideWindow = errors.New("sched: slot outside the job's schedulable window")

	// ErrOverAssigned indicates the job already holds processing-time slots.
	ErrOverAssigned = errors.New("sched: job assigned more slots than its processing time")
)
