// Package solver turns the sched/bound building blocks into complete
// solvers for the preemptive scheduling objective.
//
// Three strategies are provided:
//
//	BranchAndBound — best-first search over a frontier of partial
//	    schedules. Every candidate carries a greedy lower bound and an
//	    LP-relaxation upper bound (computed lazily, cached on the node);
//	    candidates whose upper bound cannot beat the incumbent are pruned,
//	    and the candidate with the lexicographically greatest
//	    (lower, upper) pair is expanded next — favouring nodes likely to
//	    improve the incumbent early. Termination with an empty frontier
//	    certifies the incumbent optimal.
//
//	BruteForce — exhaustive expansion of the full search tree. Exponential;
//	    exists as the correctness reference for small instances.
//
//	OnlineGreedy — a single left-to-right pass assigning each slot to the
//	    schedulable job with the greatest utility (reward net of the
//	    tardiness penalty its earliest feasible completion would incur,
//	    per processing slot). Never fails on a non-nil schedule; makes no
//	    optimality claim.
//
// All strategies are synchronous, deterministic, and never mutate the
// schedule handed in. The offline strategies honour a soft time budget:
// on expiry they return the best incumbent with Result.Optimal = false —
// deadline expiry is a degraded answer, not an error.
package solver
