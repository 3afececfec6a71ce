package model

// overlaps reports whether two half-open intervals intersect.
func overlaps(start1, end1, start2, end2 ClockTime) bool {
	return !(end1 <= start2 || start1 >= end2)
}

// IsFree decides whether [start, end) on day is free of both room conflicts
// and cohort conflicts against everything placed so far.
func (schedule *Schedule) IsFree(day Day, start, end ClockTime, room string, cohort Cohort) bool {
	//** Room scan: no other session anywhere may use the room at an
	// overlapping time, regardless of cohort.
	for key, entries := range schedule.entries {
		if key.Day != day {
			continue
		}
		for _, scheduled := range entries {
			for _, session := range scheduled.Sessions {
				if session.Day != day || session.Room != room {
					continue
				}
				if overlaps(start, end, session.Start, session.End) {
					return false
				}
			}
		}
	}

	//** Cohort scan: the cohort itself must be idle, regardless of room.
	for _, session := range schedule.CohortSessions(day, cohort) {
		if overlaps(start, end, session.Start, session.End) {
			return false
		}
	}

	return true
}
