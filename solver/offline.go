// Package solver — best-first branch-and-bound over schedule candidates.
//
// Rationale (succinct):
//  1. The frontier holds partial schedules with cached bounds. Bounds are
//     computed once per node, on its first pass through the loop.
//  2. Prune: any candidate whose upper bound is ≤ the incumbent value
//     cannot contain a strictly better schedule; discard it eagerly so
//     its memory is reclaimable.
//  3. Select: the lexicographically greatest (lower, upper) pair. A high
//     lower bound promises a strong feasible completion nearby, so the
//     incumbent improves early and pruning bites sooner; ties fall back
//     to the upper bound and finally to insertion order, keeping runs
//     reproducible.
//  4. Score the selected node as-is (rest-idle completion) and challenge
//     the incumbent with it; expand unless terminal.
//  5. The loop ends when the frontier is empty — every subtree either
//     surrendered a candidate to scoring or was dominated — which proves
//     the incumbent optimal.
//  6. Soft time budget: checked once per loop turn; on expiry the current
//     incumbent is returned flagged non-optimal. Not an error.
//
// Complexity: worst case exponential in T (exact search); per loop turn
// O(|frontier|) scan plus one LP solve per fresh node.
package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/preempt/bound"
	"github.com/katalvlaran/preempt/sched"
)

// bnbEngine holds the frontier, the incumbent, and the search policies.
type bnbEngine struct {
	frontier []*sched.Schedule

	best      *sched.Schedule
	bestValue float64

	useDeadline bool
	deadline    time.Time

	expanded int
	pruned   int
}

// BranchAndBound runs the exact offline search from a root schedule and
// returns the optimum with a proof flag (Optimal=true unless the time
// budget expired first).
//
// Errors: ErrNilSchedule, ErrBadOptions, ErrNotRoot, and bound.ErrLP if a
// relaxation unexpectedly fails.
func BranchAndBound(s *sched.Schedule, opts Options) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSchedule
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadOptions
	}
	if s.Cursor() != -1 {
		return Result{}, ErrNotRoot
	}

	e := &bnbEngine{bestValue: math.Inf(-1)}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.frontier = s.Expand()
	for len(e.frontier) > 0 {
		if e.useDeadline && time.Now().After(e.deadline) {
			return e.result(false), nil
		}

		if err := e.ensureBounds(); err != nil {
			return Result{}, err
		}
		e.prune()
		if len(e.frontier) == 0 {
			break
		}

		cand := e.take()
		if v := cand.Score(); v > e.bestValue {
			e.bestValue = v
			e.best = cand
		}
		if !cand.Terminal() {
			e.expanded++
			e.frontier = append(e.frontier, cand.Expand()...)
		}
	}

	return e.result(true), nil
}

// ensureBounds fills missing bound caches across the frontier. The lower
// bound is the greedy EDF completion; the upper bound is the LP
// relaxation, whose failure aborts the search.
func (e *bnbEngine) ensureBounds() error {
	var c *sched.Schedule
	for _, c = range e.frontier {
		if _, ok := c.LowerBound(); !ok {
			c.SetLowerBound(bound.Lower(c))
		}
		if _, ok := c.UpperBound(); !ok {
			ub, err := bound.Upper(c)
			if err != nil {
				return err
			}
			c.SetUpperBound(ub)
		}
	}

	return nil
}

// prune drops every candidate whose upper bound cannot beat the incumbent
// and nils the vacated tail so pruned nodes are reclaimable immediately.
func (e *bnbEngine) prune() {
	kept := e.frontier[:0]
	var c *sched.Schedule
	for _, c = range e.frontier {
		ub, _ := c.UpperBound()
		if ub <= e.bestValue {
			e.pruned++
			continue
		}
		kept = append(kept, c)
	}
	var i int
	for i = len(kept); i < len(e.frontier); i++ {
		e.frontier[i] = nil
	}
	e.frontier = kept
}

// take removes and returns the candidate with the lexicographically
// greatest (lower, upper); the scan keeps the first maximum, so ties
// resolve by insertion order.
func (e *bnbEngine) take() *sched.Schedule {
	var (
		at     = 0
		bl, _  = e.frontier[0].LowerBound()
		bu, _  = e.frontier[0].UpperBound()
		i      int
		lo, up float64
	)
	for i = 1; i < len(e.frontier); i++ {
		lo, _ = e.frontier[i].LowerBound()
		up, _ = e.frontier[i].UpperBound()
		if lo > bl || (lo == bl && up > bu) {
			at, bl, bu = i, lo, up
		}
	}
	cand := e.frontier[at]
	e.frontier = append(e.frontier[:at], e.frontier[at+1:]...)

	return cand
}

// result finalizes the incumbent (remaining slots idle) and packages the
// search statistics.
func (e *bnbEngine) result(optimal bool) Result {
	if e.best != nil {
		e.best.MarkDecided()
	}

	return Result{
		Schedule: e.best,
		Value:    e.bestValue,
		Optimal:  optimal,
		Expanded: e.expanded,
		Pruned:   e.pruned,
	}
}
