// Package bound - sentinel errors.
package bound

import "errors"

// ErrLP indicates the relaxation solver failed to produce an optimum
// (infeasible, unbounded or numerically singular). Legal partial schedules
// always admit a feasible relaxation, so this surfaces a bug or a
// numerically hostile instance; it is fatal to the search. The wrapped
// message carries problem dimensions for diagnosis.
var ErrLP = errors.New("bound: linear-programming relaxation failed")
