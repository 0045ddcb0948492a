// Package instance - JSON instance parsing, validation and marshalling.
package instance

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/preempt/penalty"
	"github.com/katalvlaran/preempt/sched"
)

// Wire types mirroring the instance document. penalty_function.parameters
// is polymorphic (object for linear, pair list for per-timeslot), so it is
// kept raw until the type tag is known.
type instanceDoc struct {
	TotalTimeSlots int      `json:"total_time_slots"`
	Jobs           []jobDoc `json:"jobs"`
}

type jobDoc struct {
	ID              string     `json:"id"`
	ReleaseTime     int        `json:"release_time"`
	ProcessingTime  int        `json:"processing_time"`
	Deadline        int        `json:"deadline"`
	Reward          float64    `json:"reward"`
	DropPenalty     float64    `json:"drop_penalty"`
	PenaltyFunction penaltyDoc `json:"penalty_function"`
}

type penaltyDoc struct {
	FunctionType string          `json:"function_type"`
	Parameters   json.RawMessage `json:"parameters"`
}

type linearParams struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

const (
	typeLinear = "linear"
	typeStep   = "per-timeslot"
)

// Parse decodes and validates an instance document and returns the root
// schedule. Deadlines may exceed the horizon by at most one slot (a job
// due "just after the end" is legal; anything later is a typo).
//
// Errors: ErrInvalidInstance, ErrFunctionType, plus sched/penalty
// sentinels wrapped with the offending job id.
func Parse(data []byte) (*sched.Schedule, error) {
	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	if doc.TotalTimeSlots <= 0 {
		return nil, fmt.Errorf("%w: total_time_slots must be positive, got %d",
			ErrInvalidInstance, doc.TotalTimeSlots)
	}

	jobs := make([]sched.Job, 0, len(doc.Jobs))
	for _, jd := range doc.Jobs {
		if jd.Deadline > doc.TotalTimeSlots+1 {
			return nil, fmt.Errorf("%w: job %q deadline %d exceeds horizon %d+1",
				ErrInvalidInstance, jd.ID, jd.Deadline, doc.TotalTimeSlots)
		}
		pf, err := parsePenalty(jd.PenaltyFunction)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", jd.ID, err)
		}
		j, err := sched.NewJob(jd.ID, jd.ReleaseTime, jd.ProcessingTime, jd.Deadline,
			jd.Reward, jd.DropPenalty, pf)
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", jd.ID, err)
		}
		jobs = append(jobs, j)
	}

	return sched.New(jobs, doc.TotalTimeSlots)
}

// Load reads and parses an instance file.
func Load(path string) (*sched.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}

	return Parse(data)
}

// parsePenalty decodes the polymorphic penalty_function block.
func parsePenalty(pd penaltyDoc) (penalty.Func, error) {
	switch pd.FunctionType {
	case typeLinear:
		var p linearParams
		if err := json.Unmarshal(pd.Parameters, &p); err != nil {
			return penalty.Func{}, fmt.Errorf("%w: linear parameters: %v", ErrInvalidInstance, err)
		}

		return penalty.NewLinear(p.Slope, p.Intercept)

	case typeStep:
		var pairs [][]float64
		if err := json.Unmarshal(pd.Parameters, &pairs); err != nil {
			return penalty.Func{}, fmt.Errorf("%w: per-timeslot parameters: %v", ErrInvalidInstance, err)
		}
		points := make([]penalty.Breakpoint, 0, len(pairs))
		for _, pair := range pairs {
			if len(pair) != 2 {
				return penalty.Func{}, fmt.Errorf("%w: per-timeslot point must be [time, penalty]", ErrInvalidInstance)
			}
			if pair[0] != math.Trunc(pair[0]) {
				return penalty.Func{}, fmt.Errorf("%w: per-timeslot time %v is not an integer", ErrInvalidInstance, pair[0])
			}
			points = append(points, penalty.Breakpoint{Time: int(pair[0]), Penalty: pair[1]})
		}

		return penalty.NewStep(points)

	default:
		return penalty.Func{}, fmt.Errorf("%w: %q", ErrFunctionType, pd.FunctionType)
	}
}

// Marshal renders the schedule's instance (jobs and horizon, not the
// assignment) back into the JSON document format; the inverse of Parse.
func Marshal(s *sched.Schedule) ([]byte, error) {
	doc := instanceDoc{
		TotalTimeSlots: s.Horizon(),
		Jobs:           make([]jobDoc, 0, len(s.Jobs())),
	}
	for _, j := range s.Jobs() {
		pd, err := marshalPenalty(j.Penalty)
		if err != nil {
			return nil, err
		}
		doc.Jobs = append(doc.Jobs, jobDoc{
			ID:              j.ID,
			ReleaseTime:     j.Release,
			ProcessingTime:  j.Processing,
			Deadline:        j.Deadline,
			Reward:          j.Reward,
			DropPenalty:     j.DropPenalty,
			PenaltyFunction: pd,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

func marshalPenalty(pf penalty.Func) (penaltyDoc, error) {
	if pf.Kind() == penalty.Linear {
		raw, err := json.Marshal(linearParams{Slope: pf.Slope(), Intercept: pf.Intercept()})
		if err != nil {
			return penaltyDoc{}, err
		}

		return penaltyDoc{FunctionType: typeLinear, Parameters: raw}, nil
	}

	steps := pf.Breakpoints()
	pairs := make([][]float64, 0, len(steps))
	for _, bp := range steps {
		pairs = append(pairs, []float64{float64(bp.Time), bp.Penalty})
	}
	raw, err := json.Marshal(pairs)
	if err != nil {
		return penaltyDoc{}, err
	}

	return penaltyDoc{FunctionType: typeStep, Parameters: raw}, nil
}
