// Package instance - seeded random instance generation.
package instance

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/preempt/penalty"
	"github.com/katalvlaran/preempt/sched"
)

// GenConfig controls random instance generation. Zero value is not
// meaningful; start from DefaultGenConfig.
type GenConfig struct {
	// Jobs is the number of jobs to generate (≥ 1).
	Jobs int

	// Slots is the horizon length T (≥ 2).
	Slots int

	// Seed drives every random choice, including the uuid job ids; equal
	// configurations generate byte-identical instances.
	Seed int64

	// StepShare is the fraction of jobs receiving a step penalty function
	// instead of a linear one, in [0, 1].
	StepShare float64

	// MaxReward, MaxDrop, MaxSlope, MaxIntercept bound the respective
	// uniformly drawn parameters.
	MaxReward    float64
	MaxDrop      float64
	MaxSlope     float64
	MaxIntercept float64
}

// DefaultGenConfig mirrors the parameter ranges of the reference
// experiments: rewards and drop penalties up to 100, slopes up to 10,
// intercepts up to 20, linear penalties only.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Jobs:         5,
		Slots:        10,
		Seed:         0,
		StepShare:    0,
		MaxReward:    100,
		MaxDrop:      100,
		MaxSlope:     10,
		MaxIntercept: 20,
	}
}

// Generate builds a random but always-valid root schedule: every job's
// deadline fits release+1…Slots+1 and its processing time is at most
// deadline − release. A job whose deadline lands on Slots+1 can still need
// more slots than remain between its release and the end of the horizon.
//
// Errors: ErrBadGenConfig.
func Generate(cfg GenConfig) (*sched.Schedule, error) {
	if cfg.Jobs < 1 || cfg.Slots < 2 {
		return nil, fmt.Errorf("%w: jobs=%d slots=%d", ErrBadGenConfig, cfg.Jobs, cfg.Slots)
	}
	if cfg.StepShare < 0 || cfg.StepShare > 1 {
		return nil, fmt.Errorf("%w: step share %v outside [0,1]", ErrBadGenConfig, cfg.StepShare)
	}
	if cfg.MaxReward < 0 || cfg.MaxDrop < 0 || cfg.MaxSlope < 0 || cfg.MaxIntercept < 0 {
		return nil, fmt.Errorf("%w: negative parameter bound", ErrBadGenConfig)
	}

	var (
		rng  = rand.New(rand.NewSource(cfg.Seed))
		jobs = make([]sched.Job, 0, cfg.Jobs)
		i    int
	)
	for i = 0; i < cfg.Jobs; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, err
		}

		release := rng.Intn(cfg.Slots)
		deadline := release + 1 + rng.Intn(cfg.Slots+1-release)
		processing := 1 + rng.Intn(deadline-release)

		pf, err := randomPenalty(rng, cfg)
		if err != nil {
			return nil, err
		}
		j, err := sched.NewJob(id.String(), release, processing, deadline,
			rng.Float64()*cfg.MaxReward, rng.Float64()*cfg.MaxDrop, pf)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return sched.New(jobs, cfg.Slots)
}

// randomPenalty draws a linear function, or a short non-decreasing step
// ladder when the step share says so.
func randomPenalty(rng *rand.Rand, cfg GenConfig) (penalty.Func, error) {
	if rng.Float64() >= cfg.StepShare {
		return penalty.NewLinear(rng.Float64()*cfg.MaxSlope, rng.Float64()*cfg.MaxIntercept)
	}

	var (
		steps = 1 + rng.Intn(3)
		pts   = make([]penalty.Breakpoint, 0, steps)
		at    = 0
		level float64
		i     int
	)
	for i = 0; i < steps; i++ {
		at += 1 + rng.Intn(3)
		level += rng.Float64() * cfg.MaxIntercept
		pts = append(pts, penalty.Breakpoint{Time: at, Penalty: level})
	}

	return penalty.NewStep(pts)
}
