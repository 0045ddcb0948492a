// Package penalty models the tardiness-penalty side of the scheduling
// objective: non-decreasing, non-negative functions f(τ) of the integer
// tardiness τ incurred when a job completes past its deadline.
//
// Two shapes are supported, selected by a tag rather than an interface so
// that downstream consumers (scoring, LP-relaxation construction) can
// branch on the variant explicitly:
//
//	Linear — f(τ) = Slope·τ + Intercept
//	Step   — f(τ) equals the penalty of the largest breakpoint time ≤ τ
//
// Both shapes evaluate in O(|parameters|) and are validated exhaustively on
// construction; a constructed Func is immutable and safe to share.
package penalty
