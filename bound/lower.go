// Package bound - greedy earliest-deadline-first lower bound.
package bound

import "github.com/katalvlaran/preempt/sched"

// Lower completes the partial schedule greedily and returns the resulting
// objective. From slot cursor+1 onward each slot takes the schedulable job
// with the earliest deadline (ties by ascending id); the filled clone's
// score is a feasible value and therefore a valid lower bound on the
// optimum reachable from the node. The input is not mutated.
//
// Complexity: O(T · |jobs|).
func Lower(s *sched.Schedule) float64 {
	var (
		run  = s.Clone()
		jobs = run.Jobs()
		T    = run.Horizon()
		slot int
	)
	for slot = run.Cursor() + 1; slot < T; slot++ {
		ready := run.Schedulable(slot)
		if len(ready) == 0 {
			continue
		}
		pick := ready[0]
		var i int
		for _, i = range ready[1:] {
			if jobs[i].Deadline < jobs[pick].Deadline ||
				(jobs[i].Deadline == jobs[pick].Deadline && jobs[i].ID < jobs[pick].ID) {
				pick = i
			}
		}
		// Cannot fail: Schedulable guarantees window, capacity and count.
		_ = run.Place(slot, jobs[pick].ID)
	}
	run.MarkDecided()

	return run.Score()
}
