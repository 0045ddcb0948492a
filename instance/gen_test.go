// Package instance_test - seeded random generation.
package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preempt/instance"
	"github.com/katalvlaran/preempt/penalty"
)

func TestGenerate_Validation(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.Jobs = 0
	_, err := instance.Generate(cfg)
	assert.ErrorIs(t, err, instance.ErrBadGenConfig)

	cfg = instance.DefaultGenConfig()
	cfg.StepShare = 1.5
	_, err = instance.Generate(cfg)
	assert.ErrorIs(t, err, instance.ErrBadGenConfig)
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.Seed = 42

	first, err := instance.Generate(cfg)
	require.NoError(t, err)
	second, err := instance.Generate(cfg)
	require.NoError(t, err)

	a, err := instance.Marshal(first)
	require.NoError(t, err)
	b, err := instance.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "equal seeds must generate identical instances")

	cfg.Seed = 43
	third, err := instance.Generate(cfg)
	require.NoError(t, err)
	c, err := instance.Marshal(third)
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(c), "different seeds should diverge")
}

func TestGenerate_FieldDomains(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.Jobs = 20
	cfg.Slots = 8
	cfg.Seed = 3
	cfg.StepShare = 0.5

	s, err := instance.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, s.Jobs(), 20)
	assert.Equal(t, 8, s.Horizon())

	sawStep := false
	for _, j := range s.Jobs() {
		assert.GreaterOrEqual(t, j.Release, 0)
		assert.Less(t, j.Release, cfg.Slots)
		assert.Greater(t, j.Deadline, j.Release)
		assert.LessOrEqual(t, j.Deadline, cfg.Slots+1)
		assert.GreaterOrEqual(t, j.Processing, 1)
		assert.LessOrEqual(t, j.Processing, j.Deadline-j.Release)
		assert.GreaterOrEqual(t, j.Reward, 0.0)
		assert.GreaterOrEqual(t, j.DropPenalty, 0.0)
		if j.Penalty.Kind() == penalty.Step {
			sawStep = true
		}
	}
	assert.True(t, sawStep, "a 0.5 step share over 20 jobs should produce step penalties")
}

func TestGenerate_RoundTripsThroughJSON(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.Seed = 11
	cfg.StepShare = 0.3

	s, err := instance.Generate(cfg)
	require.NoError(t, err)
	data, err := instance.Marshal(s)
	require.NoError(t, err)
	back, err := instance.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s.Horizon(), back.Horizon())
	assert.Len(t, back.Jobs(), len(s.Jobs()))
}
