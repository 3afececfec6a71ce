package export

import (
	"fmt"
	"io"
	"slices"

	"github.com/limaJavier/unitime/pkg/model"
)

// PrintTimetable writes a readable timetable to w, grouped by day and
// cohort. A zero semester or empty section matches everything.
func PrintTimetable(w io.Writer, schedule *model.Schedule, days []model.Day, semester int, section string) {
	fmt.Fprintln(w, "UNIVERSITY TIMETABLE")

	keys := schedule.Keys()
	for _, day := range days {
		dayPrinted := false

		for _, key := range keys {
			if key.Day != day {
				continue
			}
			if semester != 0 && key.Cohort.Semester != semester {
				continue
			}
			if section != "" && key.Cohort.Section != section {
				continue
			}

			if !dayPrinted {
				fmt.Fprintf(w, "\n%v\n", day)
				dayPrinted = true
			}
			fmt.Fprintf(w, "\nSemester %d, Section %v:\n", key.Cohort.Semester, key.Cohort.Section)

			type line struct {
				session model.SessionPlacement
				course  *model.Course
			}
			lines := make([]line, 0)
			for _, scheduled := range schedule.At(key.Day, key.Cohort) {
				for _, session := range scheduled.Sessions {
					if session.Day == day {
						lines = append(lines, line{session: session, course: scheduled.Course})
					}
				}
			}
			slices.SortFunc(lines, func(a, b line) int {
				return int(a.session.Start) - int(b.session.Start)
			})

			for _, l := range lines {
				fmt.Fprintf(w, "  %v-%v | %-8s | %-30s | Room: %-6s | Teacher: %v\n",
					l.session.Start, l.session.End, l.course.Code, l.course.Name, l.session.Room, teacherLabel(l.course))
			}
		}
	}
}
