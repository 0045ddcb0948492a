// Package instance - solution-file export and import.
package instance

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/preempt/sched"
)

// WriteSolution renders the schedule in the solution format: one line per
// job in input order with its 1-based slot indices comma-separated (or
// "null" when the job never runs), then a final line with the objective.
func WriteSolution(w io.Writer, s *sched.Schedule) error {
	var b strings.Builder
	var i int
	for i = 0; i < len(s.Jobs()); i++ {
		slots := s.SlotsOf(i)
		if len(slots) == 0 {
			b.WriteString("null\n")
			continue
		}
		parts := make([]string, len(slots))
		for k, slot := range slots {
			parts[k] = strconv.Itoa(slot + 1)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%g\n", s.Score())

	_, err := io.WriteString(w, b.String())

	return err
}

// SaveSolution writes the solution file to disk.
func SaveSolution(path string, s *sched.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteSolution(f, s); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ParseSolution applies a solution file to a fresh clone of base and
// returns the resulting terminal schedule, re-scoring it from scratch.
// The trailing objective line, if present, is ignored — the schedule's
// own Score is authoritative.
//
// Errors: ErrInvalidSolution (line count, slot syntax, or an illegal
// placement, with the schedule sentinel wrapped).
func ParseSolution(data []byte, base *sched.Schedule) (*sched.Schedule, error) {
	var (
		out   = base.Clone()
		jobs  = out.Jobs()
		lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	)
	if len(lines) < len(jobs) {
		return nil, fmt.Errorf("%w: %d lines for %d jobs", ErrInvalidSolution, len(lines), len(jobs))
	}

	var i int
	for i = 0; i < len(jobs); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "null" || line == "" {
			continue
		}
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: job %q: slot %q", ErrInvalidSolution, jobs[i].ID, field)
			}
			if err = out.Place(v-1, jobs[i].ID); err != nil {
				return nil, fmt.Errorf("%w: job %q at slot %d: %w", ErrInvalidSolution, jobs[i].ID, v, err)
			}
		}
	}
	out.MarkDecided()

	return out, nil
}

// LoadSolution reads a solution file and applies it to a clone of base.
func LoadSolution(path string, base *sched.Schedule) (*sched.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSolution, err)
	}

	return ParseSolution(data, base)
}
