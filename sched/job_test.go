// Package sched_test - Job construction and derived-window behavior.
package sched_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preempt/penalty"
	"github.com/katalvlaran/preempt/sched"
)

// linearFn is a test helper returning a validated linear penalty function.
func linearFn(t *testing.T, slope, intercept float64) penalty.Func {
	t.Helper()
	f, err := penalty.NewLinear(slope, intercept)
	require.NoError(t, err)

	return f
}

// stepFn is a test helper returning a validated step penalty function.
func stepFn(t *testing.T, points ...penalty.Breakpoint) penalty.Func {
	t.Helper()
	f, err := penalty.NewStep(points)
	require.NoError(t, err)

	return f
}

func TestNewJob_Validation(t *testing.T) {
	pf := linearFn(t, 1, 0)

	cases := []struct {
		name                          string
		id                            string
		release, processing, deadline int
		reward, drop                  float64
		want                          error
	}{
		{"empty id", "", 0, 1, 2, 1, 0, sched.ErrEmptyID},
		{"negative release", "a", -1, 1, 2, 1, 0, sched.ErrNegativeRelease},
		{"zero processing", "a", 0, 0, 2, 1, 0, sched.ErrNonPositiveWork},
		{"deadline at release", "a", 2, 1, 2, 1, 0, sched.ErrDeadlineOrder},
		{"negative reward", "a", 0, 1, 2, -1, 0, sched.ErrNegativeReward},
		{"negative drop penalty", "a", 0, 1, 2, 1, -1, sched.ErrNegativeDrop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sched.NewJob(tc.id, tc.release, tc.processing, tc.deadline, tc.reward, tc.drop, pf)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestJob_MaxUsefulTardiness_Budget(t *testing.T) {
	// Budget is reward + drop penalty: f(τ) = 3τ, w = 10, δ = 5 → ⌊15/3⌋ = 5.
	j, err := sched.NewJob("a", 0, 2, 4, 10, 5, linearFn(t, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, j.MaxUsefulTardiness(100))
	assert.Equal(t, 4+5, j.WindowEnd(100))
}

func TestJob_MaxUsefulTardiness_UnboundedBindsToHorizon(t *testing.T) {
	// Flat penalty below the budget: every tardiness stays worthwhile, so
	// the window is bound by the horizon handed in.
	j, err := sched.NewJob("a", 0, 1, 2, 10, 0, linearFn(t, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, 8, j.MaxUsefulTardiness(8))
	assert.Equal(t, 2+8, j.WindowEnd(8))
}

func TestJob_MaxUsefulTardiness_Step(t *testing.T) {
	// Step jumps above w+δ = 10 at τ = 3 → t* = 2.
	j, err := sched.NewJob("a", 0, 2, 2, 10, 0,
		stepFn(t, penalty.Breakpoint{Time: 1, Penalty: 1}, penalty.Breakpoint{Time: 3, Penalty: 100}))
	require.NoError(t, err)
	assert.Equal(t, 2, j.MaxUsefulTardiness(5))
}
