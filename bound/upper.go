// Package bound - LP-relaxation upper bound.
//
// The relaxation of the remaining scheduling problem, by penalty shape:
//
// Linear (every job affine-linear; ŵ_i = reward + drop penalty):
//
//	maximise   Σ_i ŵ_i·y_i − slope_i·τ̃_i − intercept_i·z_i
//	subject to Σ_i x_{i,t} ≤ 1                         (per slot)
//	           z_i ≤ τ̃_i                               (per job)
//	           Σ_{t>d_i} x_{i,t} ≤ p_i·z_i             (late mass raises the flag)
//	           (t−d_i)·x_{i,t} ≤ τ̃_i                   (per late slot)
//	           Σ_t x_{i,t} = p_i·y_i                   (work ⇔ acceptance)
//	           x fixed on decided slots, zero outside [release, deadline+t*)
//
// Step (any job non-linear): τ̃/z are replaced by tardiness-level
// indicators q_{i,k}, k = 0…K_i with Σ_k q_{i,k} ≤ 1, objective term
// −Σ_k f_i(k)·q_{i,k}, and per-late-slot rows (t−d_i)·x_{i,t} ≤ Σ_k k·q_{i,k}.
// A linear job embeds by leveling f_i pointwise, so mixed instances take
// this formulation.
//
// The LP value sits on the acceptance scale (each accepted job is worth
// reward + avoided drop penalty); Upper shifts it by −Σ_i δ_i so callers
// compare it directly against Schedule.Score and Lower.
package bound

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/preempt/penalty"
	"github.com/katalvlaran/preempt/sched"
)

// simplexTol is the tolerance handed to gonum's simplex.
const simplexTol = 1e-9

// Upper returns the LP-relaxation optimum of the remaining problem, on the
// Score scale. It is ≥ the best objective reachable from the node. The
// input is not mutated.
//
// Errors: ErrLP when the simplex reports no optimum.
//
// Complexity: LP assembly is O(|jobs|·T) rows of O(variables) width; the
// simplex dominates.
func Upper(s *sched.Schedule) (float64, error) {
	jobs := s.Jobs()
	if len(jobs) == 0 {
		return 0, nil
	}

	allLinear := true
	var i int
	for i = 0; i < len(jobs); i++ {
		if jobs[i].Penalty.Kind() != penalty.Linear {
			allLinear = false
			break
		}
	}

	var m *model
	if allLinear {
		m = buildLinear(s)
	} else {
		m = buildStep(s)
	}
	val, err := m.solve()
	if err != nil {
		return 0, err
	}

	// Shift from the acceptance scale to the Score scale.
	var dropSum float64
	for i = 0; i < len(jobs); i++ {
		dropSum += jobs[i].DropPenalty
	}

	return val - dropSum, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Dense LP assembly buffer
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// model accumulates a small dense LP: maximise obj·x subject to ≤ rows,
// = rows and per-variable bounds [lo, hi] (hi may be +Inf).
type model struct {
	nv   int
	obj  []float64
	lo   []float64
	hi   []float64
	ineq []lpRow
	eq   []lpRow
}

type lpRow struct {
	coef []float64
	rhs  float64
}

// newModel allocates a model of nv variables, all bounded to [0, 1].
func newModel(nv int) *model {
	m := &model{
		nv:  nv,
		obj: make([]float64, nv),
		lo:  make([]float64, nv),
		hi:  make([]float64, nv),
	}
	var i int
	for i = 0; i < nv; i++ {
		m.hi[i] = 1
	}

	return m
}

func (m *model) newRow() []float64 { return make([]float64, m.nv) }

func (m *model) addLE(coef []float64, rhs float64) {
	m.ineq = append(m.ineq, lpRow{coef: coef, rhs: rhs})
}

func (m *model) addEQ(coef []float64, rhs float64) {
	m.eq = append(m.eq, lpRow{coef: coef, rhs: rhs})
}

// solve assembles the general-form LP, converts it to standard form and
// runs gonum's simplex. Variable bounds become explicit ≤ rows because the
// converter treats every variable as free; maximisation flips the sign of
// the objective twice.
func (m *model) solve() (float64, error) {
	var (
		rows = len(m.ineq)
		i    int
	)
	for i = 0; i < m.nv; i++ {
		rows++ // −x_i ≤ −lo_i
		if !math.IsInf(m.hi[i], 1) {
			rows++ // x_i ≤ hi_i
		}
	}

	var (
		g = mat.NewDense(rows, m.nv, nil)
		h = make([]float64, rows)
		r int
	)
	for _, rw := range m.ineq {
		g.SetRow(r, rw.coef)
		h[r] = rw.rhs
		r++
	}
	for i = 0; i < m.nv; i++ {
		g.Set(r, i, -1)
		h[r] = -m.lo[i]
		r++
		if !math.IsInf(m.hi[i], 1) {
			g.Set(r, i, 1)
			h[r] = m.hi[i]
			r++
		}
	}

	a := mat.NewDense(len(m.eq), m.nv, nil)
	b := make([]float64, len(m.eq))
	for i, rw := range m.eq {
		a.SetRow(i, rw.coef)
		b[i] = rw.rhs
	}

	c := make([]float64, m.nv)
	for i = 0; i < m.nv; i++ {
		c[i] = -m.obj[i]
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	optF, _, err := lp.Simplex(cStd, aStd, bStd, simplexTol, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v (variables=%d, inequalities=%d, equalities=%d)",
			ErrLP, err, m.nv, len(m.ineq), len(m.eq))
	}

	return -optF, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Formulations
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// clampSlots zeroes x variables outside each job's schedulable window and
// fixes the variables of already-decided slots to the node's assignment.
func (m *model) clampSlots(s *sched.Schedule, xIdx func(i, t int) int) {
	var (
		jobs = s.Jobs()
		T    = s.Horizon()
		i, t int
	)
	for i = 0; i < len(jobs); i++ {
		end := jobs[i].WindowEnd(T)
		for t = 0; t < T; t++ {
			if t < jobs[i].Release || t >= end {
				m.hi[xIdx(i, t)] = 0
			}
		}
	}

	// Decided slots override the window clamp; legal assignments already
	// respect it.
	for t = 0; t <= s.Cursor(); t++ {
		at := s.AssignedAt(t)
		for i = 0; i < len(jobs); i++ {
			v := xIdx(i, t)
			if i == at {
				m.lo[v], m.hi[v] = 1, 1
			} else {
				m.hi[v] = 0
			}
		}
	}
}

// addCapacityRows adds Σ_i x_{i,t} ≤ 1 for every slot.
func (m *model) addCapacityRows(n, T int, xIdx func(i, t int) int) {
	var i, t int
	for t = 0; t < T; t++ {
		rw := m.newRow()
		for i = 0; i < n; i++ {
			rw[xIdx(i, t)] = 1
		}
		m.addLE(rw, 1)
	}
}

// addWorkRows adds Σ_t x_{i,t} = p_i·y_i for every job.
func (m *model) addWorkRows(jobs []sched.Job, T int, xIdx func(i, t int) int, yIdx func(i int) int) {
	var i, t int
	for i = 0; i < len(jobs); i++ {
		rw := m.newRow()
		for t = 0; t < T; t++ {
			rw[xIdx(i, t)] = 1
		}
		rw[yIdx(i)] = -float64(jobs[i].Processing)
		m.addEQ(rw, 0)
	}
}

// buildLinear assembles the affine-linear formulation. Variable layout:
// x (job-major, n·T), then y (n), then τ̃ (n), then z (n).
func buildLinear(s *sched.Schedule) *model {
	var (
		jobs = s.Jobs()
		n    = len(jobs)
		T    = s.Horizon()
		m    = newModel(n*T + 3*n)
	)
	xIdx := func(i, t int) int { return i*T + t }
	yIdx := func(i int) int { return n*T + i }
	tauIdx := func(i int) int { return n*T + n + i }
	zIdx := func(i int) int { return n*T + 2*n + i }

	var i, t int
	for i = 0; i < n; i++ {
		m.obj[yIdx(i)] = jobs[i].Reward + jobs[i].DropPenalty
		m.obj[tauIdx(i)] = -jobs[i].Penalty.Slope()
		m.obj[zIdx(i)] = -jobs[i].Penalty.Intercept()
		m.hi[tauIdx(i)] = math.Inf(1)
	}

	m.clampSlots(s, xIdx)
	m.addCapacityRows(n, T, xIdx)

	for i = 0; i < n; i++ {
		d := jobs[i].Deadline

		// Tardiness flag: z_i − τ̃_i ≤ 0.
		rw := m.newRow()
		rw[zIdx(i)] = 1
		rw[tauIdx(i)] = -1
		m.addLE(rw, 0)

		// Late mass bounded by flag·capacity. Slot d is on-time; lateness
		// starts at d+1.
		rw = m.newRow()
		for t = d + 1; t < T; t++ {
			rw[xIdx(i, t)] = 1
		}
		rw[zIdx(i)] = -float64(jobs[i].Processing)
		m.addLE(rw, 0)

		// Per-late-slot tardiness: (t−d_i)·x_{i,t} − τ̃_i ≤ 0.
		for t = d + 1; t < T; t++ {
			rw = m.newRow()
			rw[xIdx(i, t)] = float64(t - d)
			rw[tauIdx(i)] = -1
			m.addLE(rw, 0)
		}
	}

	m.addWorkRows(jobs, T, xIdx, yIdx)

	return m
}

// buildStep assembles the tardiness-level formulation. Variable layout:
// x (job-major, n·T), then y (n), then per-job level indicators q_{i,k}
// for k = 0…K_i, where K_i = min(t*_i, T−1−d_i) — deeper levels are
// unreachable within the horizon.
func buildStep(s *sched.Schedule) *model {
	var (
		jobs    = s.Jobs()
		n       = len(jobs)
		T       = s.Horizon()
		levels  = make([]int, n)
		offsets = make([]int, n)
		nq      int
		i, t, k int
	)
	for i = 0; i < n; i++ {
		maxK := jobs[i].MaxUsefulTardiness(T)
		if reach := T - 1 - jobs[i].Deadline; reach < maxK {
			maxK = reach
		}
		if maxK < 0 {
			maxK = 0
		}
		levels[i] = maxK + 1
		offsets[i] = nq
		nq += levels[i]
	}

	m := newModel(n*T + n + nq)
	xIdx := func(i, t int) int { return i*T + t }
	yIdx := func(i int) int { return n*T + i }
	qIdx := func(i, k int) int { return n*T + n + offsets[i] + k }

	for i = 0; i < n; i++ {
		m.obj[yIdx(i)] = jobs[i].Reward + jobs[i].DropPenalty
		for k = 1; k < levels[i]; k++ {
			m.obj[qIdx(i, k)] = -jobs[i].Penalty.Evaluate(k)
		}
	}

	m.clampSlots(s, xIdx)
	m.addCapacityRows(n, T, xIdx)

	for i = 0; i < n; i++ {
		d := jobs[i].Deadline

		// At most one active tardiness level (relaxed to a convex combination).
		rw := m.newRow()
		for k = 0; k < levels[i]; k++ {
			rw[qIdx(i, k)] = 1
		}
		m.addLE(rw, 1)

		// Per-late-slot tardiness: (t−d_i)·x_{i,t} ≤ Σ_k k·q_{i,k}.
		for t = d + 1; t < T; t++ {
			rw = m.newRow()
			rw[xIdx(i, t)] = float64(t - d)
			for k = 1; k < levels[i]; k++ {
				rw[qIdx(i, k)] = -float64(k)
			}
			m.addLE(rw, 0)
		}
	}

	m.addWorkRows(jobs, T, xIdx, yIdx)

	return m
}
