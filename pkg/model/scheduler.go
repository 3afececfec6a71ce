package model

import (
	"slices"

	"github.com/samber/lo"
)

// CourseReport counts requested versus placed sessions for one course, so
// callers can surface partial failures ("N of M sessions scheduled").
type CourseReport struct {
	Course    *Course
	Requested int
	Placed    int
}

// Shortfall reports whether the course ended generation with fewer sessions
// than it requires.
func (report CourseReport) Shortfall() bool {
	return report.Placed < report.Requested
}

type Scheduler interface {
	Build(input ModelInput) (*Schedule, []CourseReport, error)

	Verify(schedule *Schedule, input ModelInput) bool
}

// NewGreedyScheduler returns the greedy single-pass scheduler. It never
// backtracks across already-placed sessions and does not guarantee a
// feasible schedule will be found when one exists; an unplaceable session is
// a per-course shortfall, never an error.
func NewGreedyScheduler() Scheduler {
	return greedyScheduler{}
}

type greedyScheduler struct{}

func (scheduler greedyScheduler) Build(input ModelInput) (*Schedule, []CourseReport, error) {
	if input.Rooms == nil {
		return nil, nil, ConfigurationError{Record: "rooms", Reason: "a room registry must be supplied"}
	}
	if len(input.Days) == 0 {
		return nil, nil, ConfigurationError{Record: "days", Reason: "at least one day must be supplied"}
	}
	if input.WeeklyCapMinutes <= 0 {
		return nil, nil, ConfigurationError{Record: "weekly cap", Reason: "must be positive"}
	}

	schedule := NewSchedule()
	reports := make([]CourseReport, 0, len(input.Courses))

	for _, cohort := range groupByCohort(input.Courses) {
		orderCourses(cohort.courses)

		for _, course := range cohort.courses {
			report := scheduler.placeCourse(schedule, course, input)
			reports = append(reports, report)
		}
	}

	return schedule, reports, nil
}

// placeCourse places as many of the course's weekly sessions as feasible.
// Each accepted session is committed to the schedule immediately so that
// later availability checks and the weekly-hour accounting see it.
func (scheduler greedyScheduler) placeCourse(schedule *Schedule, course *Course, input ModelInput) CourseReport {
	cohort := course.Cohort()
	window := WindowFor(course.Semester)
	duration := course.Kind.SessionMinutes()
	sessionsNeeded := course.Kind.SessionsPerWeek()
	candidateRooms := input.Rooms.RoomsOfKind(course.Kind.RoomKind())

	var scheduled *ScheduledCourse
	daysUsed := make([]Day, 0, sessionsNeeded)

	for n := 0; n < sessionsNeeded; n++ {
		for _, day := range input.Days {
			// A course with several weekly sessions spreads them over
			// distinct days.
			if sessionsNeeded > 1 && slices.Contains(daysUsed, day) {
				continue
			}
			if schedule.WeeklyMinutes(cohort, input.Days)+duration > input.WeeklyCapMinutes {
				continue
			}

			start, room, ok := findSlot(schedule, day, duration, cohort, window, candidateRooms)
			if !ok {
				continue
			}

			placement := SessionPlacement{
				Day:   day,
				Start: start,
				End:   start.Add(duration),
				Room:  room,
			}
			if scheduled == nil {
				scheduled = &ScheduledCourse{Course: course}
			}
			scheduled.Sessions = append(scheduled.Sessions, placement)
			schedule.Add(scheduled, placement)
			daysUsed = append(daysUsed, day)
			break
		}
		// No day yielded a slot: the occurrence stays unplaced and the
		// report carries the shortfall.
	}

	report := CourseReport{Course: course, Requested: sessionsNeeded}
	if scheduled != nil {
		report.Placed = len(scheduled.Sessions)
	}
	return report
}

// Verify re-checks the generated schedule against every scheduling
// invariant. A false result is a defect in the engine, not a runtime
// condition to recover from.
func (scheduler greedyScheduler) Verify(schedule *Schedule, input ModelInput) bool {
	type placedSession struct {
		course  *Course
		session SessionPlacement
	}

	sessions := make([]placedSession, 0)
	for _, scheduled := range schedule.ScheduledCourses() {
		//** Sessions of one course fall on distinct days
		days := lo.Map(scheduled.Sessions, func(session SessionPlacement, _ int) Day { return session.Day })
		if len(scheduled.Sessions) > 1 && len(lo.Uniq(days)) != len(days) {
			return false
		}

		for _, session := range scheduled.Sessions {
			//** Session lies within the cohort's window
			if !WindowFor(scheduled.Course.Semester).Contains(session.Start, session.End) {
				return false
			}
			//** Session uses a room of the right kind
			room, ok := input.Rooms.Get(session.Room)
			if !ok || room.Kind != scheduled.Course.Kind.RoomKind() {
				return false
			}
			sessions = append(sessions, placedSession{course: scheduled.Course, session: session})
		}
	}

	//** No room conflict and no cohort conflict between any pair of sessions
	for i := 0; i < len(sessions)-1; i++ {
		for j := i + 1; j < len(sessions); j++ {
			first, second := sessions[i], sessions[j]
			if first.session.Day != second.session.Day {
				continue
			}
			sameRoom := first.session.Room == second.session.Room
			sameCohort := first.course.Cohort() == second.course.Cohort()
			if (sameRoom || sameCohort) &&
				overlaps(first.session.Start, first.session.End, second.session.Start, second.session.End) {
				return false
			}
		}
	}

	//** Weekly cap holds for every cohort
	cohorts := lo.Uniq(lo.Map(input.Courses, func(course *Course, _ int) Cohort { return course.Cohort() }))
	for _, cohort := range cohorts {
		if schedule.WeeklyMinutes(cohort, input.Days) > input.WeeklyCapMinutes {
			return false
		}
	}

	return true
}

type cohortCourses struct {
	cohort  Cohort
	courses []*Course
}

// groupByCohort partitions courses by (semester, section), cohorts ordered
// by first appearance and each cohort's courses in input order. Processing a
// cohort's courses together is what makes weekly-hour accounting and the
// append phase see the cohort's already-placed sessions.
func groupByCohort(courses []*Course) []cohortCourses {
	groups := make([]cohortCourses, 0)
	index := make(map[Cohort]int)

	for _, course := range courses {
		cohort := course.Cohort()
		i, ok := index[cohort]
		if !ok {
			i = len(groups)
			index[cohort] = i
			groups = append(groups, cohortCourses{cohort: cohort})
		}
		groups[i].courses = append(groups[i].courses, course)
	}

	return groups
}

// orderCourses sorts a cohort's courses by placement priority: labs first,
// then longer sessions before shorter ones. The sort is stable so ties keep
// input order.
func orderCourses(courses []*Course) {
	slices.SortStableFunc(courses, func(a, b *Course) int {
		aLab, bLab := a.Kind == Lab, b.Kind == Lab
		if aLab != bLab {
			if aLab {
				return -1
			}
			return 1
		}
		return b.Kind.SessionMinutes() - a.Kind.SessionMinutes()
	})
}
