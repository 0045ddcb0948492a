// Package preempt is an exact solver toolkit for offline and online
// single-machine preemptive scheduling with tardiness and drop penalties.
//
// 🚀 What is preempt?
//
//	A deterministic, library-first toolkit that brings together:
//
//	  • Core model: jobs, penalty functions, partial schedules with invariants
//	  • Exact search: best-first branch-and-bound with LP-relaxation pruning
//	  • Heuristics: greedy EDF completions and an online utility policy
//
// ✨ Why choose preempt?
//
//   - Provable answers       — the offline solver returns certified optima
//   - Deterministic          — identical inputs always yield identical schedules
//   - Library-first          — the CLI is a thin adapter over plain Go APIs
//   - No hidden machinery    — the LP relaxation runs on gonum's simplex
//
// Everything is organized under five subpackages:
//
//	penalty/  — tardiness→penalty functions (affine-linear and monotone step)
//	sched/    — Job and Schedule: partial assignments, expansion, scoring
//	bound/    — greedy lower bound and LP-relaxation upper bound
//	solver/   — branch-and-bound, brute-force and online-greedy solvers
//	instance/ — JSON instances, solution files, seeded random generation
//
// Dive into DESIGN.md for the reasoning behind the search design and the
// relaxation formulations.
//
//	go get github.com/katalvlaran/preempt
package preempt
