package model

// scanStepMinutes is the increment of the linear scan phase.
const scanStepMinutes = 30

// findSlot searches one day for a feasible (start, room) pair for a session
// of the given duration. Two phases:
//
//  1. Append: if the cohort already has sessions on the day, try to start
//     right where the last one ends, keeping the cohort's day free of gaps.
//  2. Scan: walk the cohort's window from its opening time in 30-minute
//     steps.
//
// Candidate rooms are tried in registration order in both phases; the first
// free pairing wins. Returns ok=false when the day has no feasible slot.
func findSlot(schedule *Schedule, day Day, durationMinutes int, cohort Cohort, window Window, candidateRooms []string) (start ClockTime, room string, ok bool) {
	//** Append phase
	existing := schedule.CohortSessions(day, cohort)
	if len(existing) > 0 {
		appendStart := existing[len(existing)-1].End
		appendEnd := appendStart.Add(durationMinutes)
		if appendEnd <= window.Close {
			for _, candidate := range candidateRooms {
				if schedule.IsFree(day, appendStart, appendEnd, candidate, cohort) {
					return appendStart, candidate, true
				}
			}
		}
	}

	//** Scan phase
	for current := window.Open; current.Add(durationMinutes) <= window.Close; current = current.Add(scanStepMinutes) {
		end := current.Add(durationMinutes)
		for _, candidate := range candidateRooms {
			if schedule.IsFree(day, current, end, candidate, cohort) {
				return current, candidate, true
			}
		}
	}

	return 0, "", false
}
