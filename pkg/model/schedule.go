package model

import (
	"slices"
	"strings"
)

// SessionPlacement is one weekly occurrence of a course: a day, a half-open
// [Start, End) interval and a room id.
type SessionPlacement struct {
	Day   Day
	Start ClockTime
	End   ClockTime
	Room  string
}

// ScheduledCourse holds every successfully placed session of one course. It
// is mutated only while the driver is working on its course and is read-only
// afterwards.
type ScheduledCourse struct {
	Course   *Course
	Sessions []SessionPlacement
}

// ScheduleKey addresses one cohort's placements on one day.
type ScheduleKey struct {
	Day    Day
	Cohort Cohort
}

// Schedule is the single-owner mutable result of one generation run. It is
// append-only while the driver runs and read-only afterwards. A
// ScheduledCourse appears under one key per session it owns on that key's
// day.
type Schedule struct {
	entries map[ScheduleKey][]*ScheduledCourse
	courses []*ScheduledCourse // first-placement order, for deterministic output
}

func NewSchedule() *Schedule {
	return &Schedule{
		entries: make(map[ScheduleKey][]*ScheduledCourse),
	}
}

// Add records one placed session. The ScheduledCourse must already contain
// the placement among its sessions.
func (schedule *Schedule) Add(scheduled *ScheduledCourse, placement SessionPlacement) {
	key := ScheduleKey{Day: placement.Day, Cohort: scheduled.Course.Cohort()}
	if !slices.Contains(schedule.courses, scheduled) {
		schedule.courses = append(schedule.courses, scheduled)
	}
	schedule.entries[key] = append(schedule.entries[key], scheduled)
}

// ScheduledCourses returns every course with at least one placed session, in
// the order their first sessions were placed.
func (schedule *Schedule) ScheduledCourses() []*ScheduledCourse {
	return schedule.courses
}

// At returns the cohort's scheduled courses on a day, one entry per session
// the course owns on that day.
func (schedule *Schedule) At(day Day, cohort Cohort) []*ScheduledCourse {
	return schedule.entries[ScheduleKey{Day: day, Cohort: cohort}]
}

// Keys returns every populated (day, cohort) key sorted by day, semester and
// section, so callers iterating the schedule observe a stable order.
func (schedule *Schedule) Keys() []ScheduleKey {
	keys := make([]ScheduleKey, 0, len(schedule.entries))
	for key := range schedule.entries {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b ScheduleKey) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		if a.Cohort.Semester != b.Cohort.Semester {
			return a.Cohort.Semester - b.Cohort.Semester
		}
		return strings.Compare(a.Cohort.Section, b.Cohort.Section)
	})
	return keys
}

// CohortSessions returns the cohort's placed sessions on a day sorted by
// start time. The append phase of slot search schedules right after the last
// of these.
func (schedule *Schedule) CohortSessions(day Day, cohort Cohort) []SessionPlacement {
	sessions := make([]SessionPlacement, 0)
	for _, scheduled := range schedule.entries[ScheduleKey{Day: day, Cohort: cohort}] {
		for _, session := range scheduled.Sessions {
			if session.Day == day && !slices.Contains(sessions, session) {
				sessions = append(sessions, session)
			}
		}
	}
	slices.SortFunc(sessions, func(a, b SessionPlacement) int {
		return int(a.Start) - int(b.Start)
	})
	return sessions
}

// WeeklyMinutes is the cohort's total scheduled minutes across the week.
func (schedule *Schedule) WeeklyMinutes(cohort Cohort, days []Day) int {
	total := 0
	for _, day := range days {
		for _, session := range schedule.CohortSessions(day, cohort) {
			total += int(session.End - session.Start)
		}
	}
	return total
}
