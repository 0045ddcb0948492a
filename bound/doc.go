// Package bound computes the two bounds steering the branch-and-bound
// search over partial schedules.
//
// Lower runs a greedy earliest-deadline-first completion of the node on a
// clone and scores it: any feasible completion's value is ≤ the optimum
// reachable from the node, so the heuristic value is an admissible lower
// bound.
//
// Upper solves the LP relaxation of the remaining problem with gonum's
// simplex: slot occupancy, acceptance, and tardiness surrogates become
// continuous variables, already-decided slots are fixed, and the LP
// optimum dominates every integral completion. Two formulations exist —
// one exploiting affine-linear penalties, one modelling step penalties via
// tardiness-level indicators; instances mixing both shapes take the step
// formulation with linear jobs leveled pointwise.
//
// Both bounds are pure: the input Schedule is never mutated. Both are
// expressed on the Score scale (drop penalties charged), so
// Lower(s) ≤ Upper(s) holds for every legal node.
package bound
