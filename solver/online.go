// Package solver - online greedy utility policy.
package solver

import (
	"math"

	"github.com/katalvlaran/preempt/sched"
)

// OnlineGreedy decides slots left to right: each slot goes to the
// schedulable job with the greatest utility, defined as the reward net of
// the tardiness penalty the job's earliest feasible completion would
// incur, spread over its processing time:
//
//	u_i(t) = (reward_i − c_i(t)) / processing_i
//
// where c_i(t) is the penalty at the tardiness of the last slot if the
// job ran uninterrupted from t (its remaining work decides that slot).
// Ties break by ascending job id. Slots with no schedulable job idle.
//
// On a non-nil schedule the policy never fails (a nil one yields
// ErrNilSchedule) and claims no optimality; the input schedule is
// not mutated (the returned Result carries a completed clone). Feasibility
// is inherited from the placement invariants: capacity, release and
// max-useful-tardiness windows hold by construction.
//
// Complexity: O(T · |jobs|).
func OnlineGreedy(s *sched.Schedule) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSchedule
	}

	var (
		run  = s.Clone()
		jobs = run.Jobs()
		T    = run.Horizon()
		t    int
	)
	for t = run.Cursor() + 1; t < T; t++ {
		ready := run.Schedulable(t)
		if len(ready) == 0 {
			continue
		}

		var (
			pick  = -1
			pickU = math.Inf(-1)
			i     int
			u     float64
		)
		for _, i = range ready {
			u = utility(run, i, t)
			if u > pickU || (u == pickU && jobs[i].ID < jobs[pick].ID) {
				pick, pickU = i, u
			}
		}
		// Cannot fail: Schedulable guarantees the placement invariants.
		_ = run.Place(t, jobs[pick].ID)
	}
	run.MarkDecided()

	return Result{Schedule: run, Value: run.Score(), Optimal: false}, nil
}

// utility is u_i(t) for job index i considered at slot t.
func utility(s *sched.Schedule, i, t int) float64 {
	var (
		j         = s.Jobs()[i]
		remaining = j.Processing - s.AssignedCount(i)
		last      = t + remaining - 1
		c         float64
	)
	if tardy := last - j.Deadline; tardy > 0 {
		c = j.Penalty.Evaluate(tardy)
	}

	return (j.Reward - c) / float64(j.Processing)
}
