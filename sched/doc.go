// Package sched holds the core state model of the single-machine
// preemptive scheduling problem: immutable Job descriptors and the mutable
// Schedule search node.
//
// A Schedule is a partial assignment of jobs to the slots of a discrete
// horizon 0…T−1. Slots are decided left to right; Cursor() is the last
// decided slot (−1 for a fresh root, T−1 for a terminal schedule). Expand
// produces all legal one-slot extensions as independent deep copies, which
// is exactly the branching step of the offline search.
//
// Invariants maintained by every mutation path (expansion and Place):
//
//   - at most one job per slot;
//   - a job never holds more slots than its processing time;
//   - a job only occupies slots inside [release, deadline + t*), where t*
//     is its maximum useful tardiness — beyond that window dropping the
//     job is strictly better than finishing it.
//
// Tardiness convention: a job completing exactly at its deadline slot is
// on-time; tardiness is max(0, last_slot − deadline). The convention is
// applied uniformly here, in package bound and in package solver.
package sched
