// Package instance adapts the core model to the outside world: JSON
// instance documents, plain-text solution files, and seeded random
// instance generation.
//
// The instance document is:
//
//	{
//	  "total_time_slots": 4,
//	  "jobs": [{
//	    "id": "a",
//	    "release_time": 0,
//	    "processing_time": 2,
//	    "deadline": 2,
//	    "reward": 10,
//	    "drop_penalty": 5,
//	    "penalty_function": {
//	      "function_type": "linear",
//	      "parameters": {"slope": 3, "intercept": 0}
//	    }
//	  }]
//	}
//
// Step penalties use "function_type": "per-timeslot" with parameters as a
// list of [time, penalty] pairs. Marshal is the exact inverse of Parse.
//
// A solution file carries one line per job in input order — the job's
// 1-based slot indices comma-separated, or "null" when it never runs —
// followed by a final line with the objective.
package instance
