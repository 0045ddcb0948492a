// Package solver_test - online greedy policy: feasibility, determinism,
// utility-driven choices, and purity.
package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preempt/sched"
	"github.com/katalvlaran/preempt/solver"
)

func TestOnlineGreedy_SingleJob(t *testing.T) {
	s := root(t, []sched.Job{job(t, "a", 0, 2, 2, 10, 1, 1, 0)}, 3)

	res, err := solver.OnlineGreedy(s)
	require.NoError(t, err)
	require.NotNil(t, res.Schedule)

	assert.False(t, res.Optimal, "the online policy never claims optimality")
	assert.InDelta(t, 10.0, res.Value, 1e-9)
	idx, _ := res.Schedule.JobIndex("a")
	assert.Equal(t, []int{0, 1}, res.Schedule.SlotsOf(idx))
}

func TestOnlineGreedy_PicksGreatestUtility(t *testing.T) {
	// At slot 0: u_a = 10/2 = 5, u_b = 8/1 = 8 → b first, then a at 1–2.
	jobs := []sched.Job{
		job(t, "a", 0, 2, 2, 10, 5, 3, 0),
		job(t, "b", 0, 1, 1, 8, 2, 4, 0),
	}
	s := root(t, jobs, 4)

	res, err := solver.OnlineGreedy(s)
	require.NoError(t, err)
	bIdx, _ := res.Schedule.JobIndex("b")
	assert.Equal(t, bIdx, res.Schedule.AssignedAt(0))
	assert.InDelta(t, 18.0, res.Value, 1e-9)
}

func TestOnlineGreedy_TieBreaksByID(t *testing.T) {
	// Identical jobs → identical utilities; "a" must win the first slot.
	jobs := []sched.Job{
		job(t, "b", 0, 1, 2, 5, 1, 1, 0),
		job(t, "a", 0, 1, 2, 5, 1, 1, 0),
	}
	s := root(t, jobs, 2)

	res, err := solver.OnlineGreedy(s)
	require.NoError(t, err)
	aIdx, _ := res.Schedule.JobIndex("a")
	assert.Equal(t, aIdx, res.Schedule.AssignedAt(0))
}

func TestOnlineGreedy_IdlesWhenNothingSchedulable(t *testing.T) {
	s := root(t, []sched.Job{job(t, "a", 2, 1, 3, 5, 0, 1, 0)}, 4)

	res, err := solver.OnlineGreedy(s)
	require.NoError(t, err)
	assert.Equal(t, sched.Idle, res.Schedule.AssignedAt(0))
	assert.Equal(t, sched.Idle, res.Schedule.AssignedAt(1))
	aIdx, _ := res.Schedule.JobIndex("a")
	assert.Equal(t, aIdx, res.Schedule.AssignedAt(2))
	assert.True(t, res.Schedule.Terminal())
}

func TestOnlineGreedy_NeverViolatesInvariants(t *testing.T) {
	// Property 8 on seeded random instances: capacity, release and window
	// constraints hold on every produced schedule.
	rng := rand.New(rand.NewSource(21))
	ids := []string{"a", "b", "c", "d", "e"}
	const horizon = 7

	for round := 0; round < 20; round++ {
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

		res, err := solver.OnlineGreedy(s)
		require.NoError(t, err, "the online policy has no failure mode")
		out := res.Schedule
		counts := make([]int, len(jobs))
		for slot := 0; slot < horizon; slot++ {
			i := out.AssignedAt(slot)
			if i == sched.Idle {
				continue
			}
			counts[i]++
			assert.GreaterOrEqual(t, slot, jobs[i].Release)
			assert.Less(t, slot, jobs[i].WindowEnd(horizon))
		}
		for i, j := range jobs {
			assert.LessOrEqual(t, counts[i], j.Processing)
		}
	}
}

func TestOnlineGreedy_DoesNotMutateInput(t *testing.T) {
	s := root(t, []sched.Job{job(t, "a", 0, 2, 2, 10, 1, 1, 0)}, 3)
	_, err := solver.OnlineGreedy(s)
	require.NoError(t, err)
	assert.Equal(t, -1, s.Cursor())
	assert.Equal(t, sched.Idle, s.AssignedAt(0))
}
