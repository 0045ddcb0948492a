// Package sched - the immutable Job descriptor and its derived
// max-useful-tardiness.
package sched

import "github.com/katalvlaran/preempt/penalty"

// Job is an immutable job descriptor. Construct with NewJob; a Job built
// any other way carries an unset max-useful-tardiness and must not be
// handed to a Schedule.
type Job struct {
	// ID is the opaque, per-instance-unique identifier.
	ID string

	// Release is the earliest schedulable slot (inclusive, 0-based).
	Release int

	// Processing is the number of slots the job needs to complete.
	Processing int

	// Deadline is the last slot at which completion is still on-time;
	// completing at a later slot incurs tardiness last_slot − Deadline.
	Deadline int

	// Reward is earned when the job completes (tardiness penalty deducted).
	Reward float64

	// DropPenalty is charged when the job never completes.
	DropPenalty float64

	// Penalty maps tardiness to its completion penalty.
	Penalty penalty.Func

	// maxTardy is the largest tardiness worth finishing with: the largest
	// τ ≥ 0 with Penalty(τ) ≤ Reward + DropPenalty. Unbounded shapes keep
	// tardyBounded = false and are clamped to the horizon by the Schedule.
	maxTardy     int
	tardyBounded bool
}

// NewJob validates the parameters and derives the maximum useful
// tardiness. A tardiness beyond it costs more than the job can ever repay
// (reward plus the avoided drop penalty), so the schedulable window closes
// at Deadline + t*.
//
// Errors: ErrEmptyID, ErrNegativeRelease, ErrNonPositiveWork,
// ErrDeadlineOrder, ErrNegativeReward, ErrNegativeDrop.
//
// Complexity: O(|penalty parameters|).
func NewJob(id string, release, processing, deadline int, reward, dropPenalty float64, pf penalty.Func) (Job, error) {
	if id == "" {
		return Job{}, ErrEmptyID
	}
	if release < 0 {
		return Job{}, ErrNegativeRelease
	}
	if processing < 1 {
		return Job{}, ErrNonPositiveWork
	}
	if deadline <= release {
		return Job{}, ErrDeadlineOrder
	}
	if reward < 0 {
		return Job{}, ErrNegativeReward
	}
	if dropPenalty < 0 {
		return Job{}, ErrNegativeDrop
	}

	j := Job{
		ID:          id,
		Release:     release,
		Processing:  processing,
		Deadline:    deadline,
		Reward:      reward,
		DropPenalty: dropPenalty,
		Penalty:     pf,
	}
	j.maxTardy, j.tardyBounded = pf.MaxUsefulTardiness(reward + dropPenalty)

	return j, nil
}

// MaxUsefulTardiness returns the effective t* under a horizon of T slots:
// the derived bound, or T when the penalty shape never exhausts the job's
// budget.
func (j Job) MaxUsefulTardiness(T int) int {
	if !j.tardyBounded {
		return T
	}

	return j.maxTardy
}

// WindowEnd returns the first slot the job may no longer occupy under a
// horizon of T slots: Deadline + t*.
func (j Job) WindowEnd(T int) int {
	return j.Deadline + j.MaxUsefulTardiness(T)
}
