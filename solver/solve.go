// Package solver - unified dispatcher.
package solver

import "github.com/katalvlaran/preempt/sched"

// Solve validates the inputs and routes to the requested solver: the
// offline strategies for Options.Setting == Offline, the greedy policy
// for Online.
//
// Errors: ErrNilSchedule, ErrBadOptions, ErrNotRoot (offline only),
// ErrUnsupportedStrategy, ErrUnsupportedSetting, and bound.ErrLP surfaced
// from the search.
func Solve(s *sched.Schedule, opts Options) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSchedule
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadOptions
	}

	switch opts.Setting {
	case Offline:
		switch opts.Strategy {
		case BranchBound:
			return BranchAndBound(s, opts)
		case Exhaustive:
			return BruteForce(s, opts)
		default:
			return Result{}, ErrUnsupportedStrategy
		}
	case Online:
		return OnlineGreedy(s)
	default:
		return Result{}, ErrUnsupportedSetting
	}
}
