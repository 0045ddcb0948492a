// Package sched - the Schedule search node: partial assignment, candidate
// expansion, scoring and bound caches.
package sched

// Idle marks a slot holding no job in the assignment array.
const Idle = -1

// Schedule is a mutable search-tree node: a partial assignment of jobs to
// the slots of a discrete horizon. Children produced by Expand are
// independent deep copies; the job set itself is shared immutably.
type Schedule struct {
	jobs  []Job
	index map[string]int // id → jobs index, shared across clones

	horizon   int
	windowEnd []int // per job: first slot it may no longer occupy; shared

	assignment []int // per slot: jobs index or Idle
	counts     []int // per job: slots held so far
	completed  []bool
	cursor     int // last decided slot; −1 for a fresh root

	lower, upper       float64
	hasLower, hasUpper bool
}

// New builds a root Schedule over the given jobs and horizon: all slots
// undecided, cursor at −1, no cached bounds. Jobs whose penalty shape
// never exhausts their budget get their max-useful-tardiness bound to the
// horizon here.
//
// Errors: ErrNonPositiveHorizon, ErrDuplicateID.
//
// Complexity: O(|jobs| + T).
func New(jobs []Job, horizon int) (*Schedule, error) {
	if horizon <= 0 {
		return nil, ErrNonPositiveHorizon
	}

	var (
		n     = len(jobs)
		s     = &Schedule{horizon: horizon, cursor: -1}
		i     int
		ok    bool
		owned = make([]Job, n)
	)
	copy(owned, jobs)
	s.jobs = owned
	s.index = make(map[string]int, n)
	s.windowEnd = make([]int, n)
	for i = 0; i < n; i++ {
		if _, ok = s.index[owned[i].ID]; ok {
			return nil, ErrDuplicateID
		}
		s.index[owned[i].ID] = i
		s.windowEnd[i] = owned[i].WindowEnd(horizon)
	}

	s.assignment = make([]int, horizon)
	for i = 0; i < horizon; i++ {
		s.assignment[i] = Idle
	}
	s.counts = make([]int, n)
	s.completed = make([]bool, n)

	return s, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Read access
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Horizon returns the number of slots T.
func (s *Schedule) Horizon() int { return s.horizon }

// Jobs returns the job set in input order. The slice is shared and must be
// treated as read-only.
func (s *Schedule) Jobs() []Job { return s.jobs }

// Cursor returns the last decided slot (−1 when nothing is decided yet).
func (s *Schedule) Cursor() int { return s.cursor }

// Terminal reports whether every slot has been decided.
func (s *Schedule) Terminal() bool { return s.cursor >= s.horizon-1 }

// JobIndex resolves a job id to its index in Jobs().
func (s *Schedule) JobIndex(id string) (int, bool) {
	i, ok := s.index[id]

	return i, ok
}

// AssignedAt returns the jobs index occupying the slot, or Idle.
func (s *Schedule) AssignedAt(slot int) int { return s.assignment[slot] }

// AssignedCount returns how many slots job i holds so far.
func (s *Schedule) AssignedCount(i int) int { return s.counts[i] }

// Completed reports whether job i holds all of its processing slots.
func (s *Schedule) Completed(i int) bool { return s.completed[i] }

// SlotsOf returns the slots held by job i, ascending.
func (s *Schedule) SlotsOf(i int) []int {
	out := make([]int, 0, s.counts[i])
	var t int
	for t = 0; t < s.horizon; t++ {
		if s.assignment[t] == i {
			out = append(out, t)
		}
	}

	return out
}

// Schedulable returns, in input order, the indexes of jobs legally
// assignable to the slot: released, not completed, and strictly before
// their max-useful-tardiness window closes.
func (s *Schedule) Schedulable(slot int) []int {
	out := make([]int, 0, len(s.jobs))
	var i int
	for i = 0; i < len(s.jobs); i++ {
		if !s.completed[i] && s.jobs[i].Release <= slot && slot < s.windowEnd[i] {
			out = append(out, i)
		}
	}

	return out
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Cloning & expansion
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Clone returns an independent deep copy of the mutable state. The job
// set, id index and window table are shared (they never change after
// construction). Cached bounds are carried over.
func (s *Schedule) Clone() *Schedule {
	c := &Schedule{
		jobs:      s.jobs,
		index:     s.index,
		horizon:   s.horizon,
		windowEnd: s.windowEnd,
		cursor:    s.cursor,
		lower:     s.lower,
		upper:     s.upper,
		hasLower:  s.hasLower,
		hasUpper:  s.hasUpper,
	}
	c.assignment = make([]int, len(s.assignment))
	copy(c.assignment, s.assignment)
	c.counts = make([]int, len(s.counts))
	copy(c.counts, s.counts)
	c.completed = make([]bool, len(s.completed))
	copy(c.completed, s.completed)

	return c
}

// Expand returns all legal one-slot extensions of the node at slot
// cursor+1: one child per schedulable job, or a single idle child when
// nothing is schedulable. A terminal node yields nil. Children are
// independent deep copies with cleared bound caches; iteration order (and
// therefore child order) follows the input job order, keeping the search
// deterministic.
//
// Complexity: O(|children| · (T + |jobs|)).
func (s *Schedule) Expand() []*Schedule {
	if s.Terminal() {
		return nil
	}

	var (
		slot  = s.cursor + 1
		ready = s.Schedulable(slot)
		child *Schedule
	)
	if len(ready) == 0 {
		child = s.Clone()
		child.cursor = slot
		child.InvalidateBounds()

		return []*Schedule{child}
	}

	out := make([]*Schedule, 0, len(ready))
	var i int
	for _, i = range ready {
		child = s.Clone()
		child.assignment[slot] = i
		child.counts[i]++
		if child.counts[i] == child.jobs[i].Processing {
			child.completed[i] = true
		}
		child.cursor = slot
		child.InvalidateBounds()
		out = append(out, child)
	}

	return out
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// External placement (online policy, solution import)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Place assigns the slot to the named job, enforcing every schedule
// invariant, and advances the cursor to at least the slot. Idle slots need
// no call — leave them unassigned and finish with MarkDecided.
//
// Errors: ErrUnknownJob, ErrSlotOutOfRange, ErrSlotOccupied,
// ErrOutsideWindow, ErrOverAssigned.
func (s *Schedule) Place(slot int, id string) error {
	i, ok := s.index[id]
	if !ok {
		return ErrUnknownJob
	}
	if slot < 0 || slot >= s.horizon {
		return ErrSlotOutOfRange
	}
	if s.assignment[slot] != Idle {
		return ErrSlotOccupied
	}
	if slot < s.jobs[i].Release || slot >= s.windowEnd[i] {
		return ErrOutsideWindow
	}
	if s.counts[i] >= s.jobs[i].Processing {
		return ErrOverAssigned
	}

	s.assignment[slot] = i
	s.counts[i]++
	if s.counts[i] == s.jobs[i].Processing {
		s.completed[i] = true
	}
	if slot > s.cursor {
		s.cursor = slot
	}
	s.InvalidateBounds()

	return nil
}

// MarkDecided declares every remaining slot idle, making the schedule
// terminal.
func (s *Schedule) MarkDecided() {
	if s.cursor < s.horizon-1 {
		s.cursor = s.horizon - 1
		s.InvalidateBounds()
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Scoring
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Score evaluates the objective of the assignment as it stands, treating
// every undecided slot as idle: completed jobs earn their reward minus the
// tardiness penalty of their last slot; every other job is charged its
// drop penalty. On a terminal schedule this is the exact objective; on a
// partial one it is the value of the rest-idle completion, which is always
// reachable from the node.
//
// Complexity: O(T + |jobs|).
func (s *Schedule) Score() float64 {
	var (
		n    = len(s.jobs)
		last = make([]int, n)
		i, t int
	)
	for i = 0; i < n; i++ {
		last[i] = -1
	}
	for t = 0; t < s.horizon; t++ {
		if s.assignment[t] != Idle {
			last[s.assignment[t]] = t
		}
	}

	var total float64
	for i = 0; i < n; i++ {
		if !s.completed[i] {
			total -= s.jobs[i].DropPenalty
			continue
		}
		total += s.jobs[i].Reward
		if tardy := last[i] - s.jobs[i].Deadline; tardy > 0 {
			total -= s.jobs[i].Penalty.Evaluate(tardy)
		}
	}

	return total
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Bound caches
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// LowerBound returns the cached lower bound, if one is set.
func (s *Schedule) LowerBound() (float64, bool) { return s.lower, s.hasLower }

// SetLowerBound caches a lower bound for the node.
func (s *Schedule) SetLowerBound(v float64) { s.lower, s.hasLower = v, true }

// UpperBound returns the cached upper bound, if one is set.
func (s *Schedule) UpperBound() (float64, bool) { return s.upper, s.hasUpper }

// SetUpperBound caches an upper bound for the node.
func (s *Schedule) SetUpperBound(v float64) { s.upper, s.hasUpper = v, true }

// InvalidateBounds clears both cached bounds; every mutation path calls it.
func (s *Schedule) InvalidateBounds() { s.hasLower, s.hasUpper = false, false }
