// Package solver_test validates the exact offline search: hand-solved
// scenarios, agreement with the brute-force oracle on random small
// instances, determinism, input validation, and the soft time budget.
package solver_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preempt/penalty"
	"github.com/katalvlaran/preempt/sched"
	"github.com/katalvlaran/preempt/solver"
)

// job builds a linear-penalty job, failing the test on error.
func job(t *testing.T, id string, release, processing, deadline int, reward, drop, slope, intercept float64) sched.Job {
	t.Helper()
	pf, err := penalty.NewLinear(slope, intercept)
	require.NoError(t, err)
	j, err := sched.NewJob(id, release, processing, deadline, reward, drop, pf)
	require.NoError(t, err)

	return j
}

// root builds a root schedule, failing the test on error.
func root(t *testing.T, jobs []sched.Job, horizon int) *sched.Schedule {
	t.Helper()
	s, err := sched.New(jobs, horizon)
	require.NoError(t, err)

	return s
}

func TestBranchAndBound_SingleOnTimeJob(t *testing.T) {
	s := root(t, []sched.Job{job(t, "a", 0, 2, 2, 10, 1, 1, 0)}, 3)

	res, err := solver.BranchAndBound(s, solver.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)

	assert.True(t, res.Optimal)
	assert.InDelta(t, 10.0, res.Value, 1e-6)
	idx, _ := res.Schedule.JobIndex("a")
	assert.Equal(t, []int{0, 1}, res.Schedule.SlotsOf(idx))
	assert.Equal(t, sched.Idle, res.Schedule.AssignedAt(2))
}

func TestBranchAndBound_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		jobs    []sched.Job
		horizon int
		want    float64
	}{
		{
			name: "forced tardiness",
			jobs: []sched.Job{
				job(t, "a", 0, 2, 2, 10, 5, 3, 0),
				job(t, "b", 0, 1, 1, 8, 2, 4, 0),
			},
			horizon: 4,
			want:    18,
		},
		{
			name: "drop optimal",
			jobs: []sched.Job{
				job(t, "a", 0, 2, 2, 1, 0, 100, 0),
				job(t, "b", 0, 1, 1, 5, 0, 1, 0),
			},
			horizon: 2,
			want:    5,
		},
		{
			name: "two-job interleaving",
			jobs: []sched.Job{
				job(t, "a", 0, 2, 2, 10, 5, 2, 0),
				job(t, "b", 1, 2, 3, 10, 5, 2, 0),
			},
			horizon: 4,
			want:    20,
		},
		{
			name:    "unreachable release is dropped",
			jobs:    []sched.Job{job(t, "a", 2, 2, 4, 5, 3, 1, 0)},
			horizon: 3,
			want:    -3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.BranchAndBound(root(t, tc.jobs, tc.horizon), solver.DefaultOptions())
			require.NoError(t, err)
			assert.True(t, res.Optimal)
			assert.InDelta(t, tc.want, res.Value, 1e-6)
		})
	}
}

func TestBranchAndBound_StepPenalty(t *testing.T) {
	pf, err := penalty.NewStep([]penalty.Breakpoint{{Time: 1, Penalty: 1}, {Time: 3, Penalty: 100}})
	require.NoError(t, err)
	a, err := sched.NewJob("a", 0, 2, 2, 10, 0, pf)
	require.NoError(t, err)

	res, err := solver.BranchAndBound(root(t, []sched.Job{a}, 5), solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.InDelta(t, 10.0, res.Value, 1e-6, "on-time completion beats every tardy placement")
}

func TestBranchAndBound_InputValidation(t *testing.T) {
	_, err := solver.BranchAndBound(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilSchedule)

	s := root(t, []sched.Job{job(t, "a", 0, 1, 1, 5, 0, 1, 0)}, 2)
	opts := solver.DefaultOptions()
	opts.TimeLimit = -time.Second
	_, err = solver.BranchAndBound(s, opts)
	assert.ErrorIs(t, err, solver.ErrBadOptions)

	require.NoError(t, s.Place(0, "a"))
	_, err = solver.BranchAndBound(s, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNotRoot)
}

func TestBranchAndBound_TimeLimitReturnsNonOptimal(t *testing.T) {
	jobs := make([]sched.Job, 0, 6)
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for i, id := range ids {
		jobs = append(jobs, job(t, id, i%3, 1+i%2, 2+i%4, 5+float64(i), 1, 1, 0))
	}
	s := root(t, jobs, 8)

	opts := solver.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	res, err := solver.BranchAndBound(s, opts)
	require.NoError(t, err, "deadline expiry is not an error")
	assert.False(t, res.Optimal)
}

func TestBranchAndBound_MatchesBruteForce(t *testing.T) {
	// Property 5: on random small instances the exact search equals the
	// exhaustive optimum. Seeded for reproducibility.
	rng := rand.New(rand.NewSource(7))
	const (
		rounds  = 12
		horizon = 5
	)
	ids := []string{"a", "b", "c", "d"}

	for round := 0; round < rounds; round++ {
		jobs := make([]sched.Job, 0, len(ids))
		for _, id := range ids {
			release := rng.Intn(horizon)
			deadline := release + 1 + rng.Intn(horizon+1-release)
			processing := 1 + rng.Intn(deadline-release)
			jobs = append(jobs, job(t, id,
				release, processing, deadline,
				float64(1+rng.Intn(20)), float64(rng.Intn(10)),
				float64(rng.Intn(5)), float64(rng.Intn(3))))
		}
		s := root(t, jobs, horizon)

		exact, err := solver.BranchAndBound(s, solver.DefaultOptions())
		require.NoError(t, err)
		oracleOpts := solver.DefaultOptions()
		oracleOpts.Strategy = solver.Exhaustive
		oracle, err := solver.BruteForce(s, oracleOpts)
		require.NoError(t, err)

		assert.True(t, exact.Optimal)
		assert.InDelta(t, oracle.Value, exact.Value, 1e-6,
			"round %d: branch-and-bound diverged from the exhaustive optimum", round)
	}
}

func TestBranchAndBound_Deterministic(t *testing.T) {
	jobs := []sched.Job{
		job(t, "a", 0, 2, 2, 10, 5, 3, 0),
		job(t, "b", 0, 1, 1, 8, 2, 4, 0),
		job(t, "c", 1, 2, 3, 6, 1, 2, 1),
	}

	first, err := solver.BranchAndBound(root(t, jobs, 4), solver.DefaultOptions())
	require.NoError(t, err)
	second, err := solver.BranchAndBound(root(t, jobs, 4), solver.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Value, second.Value)
	require.NotNil(t, first.Schedule)
	require.NotNil(t, second.Schedule)
	for slot := 0; slot < 4; slot++ {
		assert.Equal(t, first.Schedule.AssignedAt(slot), second.Schedule.AssignedAt(slot),
			"slot %d differs between identical runs", slot)
	}
}

func TestBruteForce_Scenario(t *testing.T) {
	jobs := []sched.Job{
		job(t, "a", 0, 2, 2, 10, 5, 3, 0),
		job(t, "b", 0, 1, 1, 8, 2, 4, 0),
	}
	res, err := solver.BruteForce(root(t, jobs, 4), solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.InDelta(t, 18.0, res.Value, 1e-6)
}

func TestSolve_Dispatch(t *testing.T) {
	s := root(t, []sched.Job{job(t, "a", 0, 1, 1, 5, 0, 1, 0)}, 2)

	opts := solver.DefaultOptions()
	res, err := solver.Solve(s, opts)
	require.NoError(t, err)
	assert.True(t, res.Optimal)

	opts.Setting = solver.Online
	res, err = solver.Solve(s, opts)
	require.NoError(t, err)
	assert.False(t, res.Optimal)

	opts.Setting = solver.Setting(99)
	_, err = solver.Solve(s, opts)
	assert.ErrorIs(t, err, solver.ErrUnsupportedSetting)

	opts = solver.DefaultOptions()
	opts.Strategy = solver.Strategy(99)
	_, err = solver.Solve(s, opts)
	assert.ErrorIs(t, err, solver.ErrUnsupportedStrategy)

	_, err = solver.Solve(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilSchedule)
}
