// Package solver - exhaustive reference solver.
package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/preempt/sched"
)

// BruteForce enumerates every schedule reachable from the root by
// depth-first expansion and returns the best terminal one. Exponential in
// the horizon; it exists as the correctness oracle for the exact search
// and for property tests on small instances.
//
// The expansion order is the deterministic child order of Expand, and the
// first maximum encountered is kept, so results are reproducible.
//
// Errors: ErrNilSchedule, ErrBadOptions, ErrNotRoot.
func BruteForce(s *sched.Schedule, opts Options) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSchedule
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadOptions
	}
	if s.Cursor() != -1 {
		return Result{}, ErrNotRoot
	}

	e := &exhaustive{bestValue: math.Inf(-1)}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.visit(s)

	if e.best != nil {
		e.best.MarkDecided()
	}

	return Result{
		Schedule: e.best,
		Value:    e.bestValue,
		Optimal:  !e.stopped,
		Expanded: e.expanded,
	}, nil
}

// exhaustive is the DFS state. Maximum stack depth is the horizon, so the
// recursion needs no explicit stack.
type exhaustive struct {
	best      *sched.Schedule
	bestValue float64
	expanded  int

	useDeadline bool
	deadline    time.Time
	stopped     bool
}

func (e *exhaustive) visit(node *sched.Schedule) {
	if e.stopped {
		return
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stopped = true

		return
	}

	if node.Terminal() {
		if v := node.Score(); v > e.bestValue {
			e.bestValue = v
			e.best = node
		}

		return
	}

	e.expanded++
	var child *sched.Schedule
	for _, child = range node.Expand() {
		e.visit(child)
	}
}
