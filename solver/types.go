// Package solver - common types, configuration options, and sentinel
// errors shared by the offline and online solvers.
package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/preempt/sched"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrNilSchedule indicates a nil schedule was handed to a solver.
	ErrNilSchedule = errors.New("solver: schedule must be non-nil")

	// ErrNotRoot indicates the schedule already has decided slots; the
	// offline solvers search from a fresh root only.
	ErrNotRoot = errors.New("solver: schedule already has decided slots")

	// ErrUnsupportedStrategy is returned when Options.Strategy selects an
	// unavailable offline strategy.
	ErrUnsupportedStrategy = errors.New("solver: unsupported strategy")

	// ErrUnsupportedSetting is returned when Options.Setting is unknown.
	ErrUnsupportedSetting = errors.New("solver: unsupported setting")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("solver: invalid options")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Selectors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Setting selects the information model the dispatcher solves under.
type Setting int

const (
	// Offline: the whole instance is known upfront; exact search applies.
	Offline Setting = iota

	// Online: slots are decided left to right by the greedy utility policy.
	Online
)

// Strategy enumerates offline solution strategies.
type Strategy int

const (
	// BranchBound: best-first branch-and-bound with LP-relaxation pruning.
	BranchBound Strategy = iota

	// Exhaustive: brute-force enumeration (correctness reference; small
	// instances only).
	Exhaustive
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures a solve. Zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// Setting routes between the offline search and the online policy.
	Setting Setting

	// Strategy selects the offline strategy (ignored for Online).
	Strategy Strategy

	// TimeLimit optionally bounds wall-clock time of the offline search.
	// Zero means "no limit". On expiry the best incumbent is returned with
	// Result.Optimal = false.
	TimeLimit time.Duration
}

// DefaultOptions returns production defaults: offline branch-and-bound,
// no time limit.
func DefaultOptions() Options {
	return Options{
		Setting:   Offline,
		Strategy:  BranchBound,
		TimeLimit: 0,
	}
}

// Result is the outcome of a solve.
type Result struct {
	// Schedule is the best schedule found (terminal; undecided suffixes
	// are idle). Nil only when a time limit expired before any candidate
	// was evaluated.
	Schedule *sched.Schedule

	// Value is Schedule's objective (−Inf when Schedule is nil).
	Value float64

	// Optimal reports whether Value is a proven optimum. Always false for
	// the online policy and after a time-limit expiry.
	Optimal bool

	// Expanded counts search-tree nodes expanded (offline strategies).
	Expanded int

	// Pruned counts candidates discarded by bound domination
	// (branch-and-bound only).
	Pruned int
}
