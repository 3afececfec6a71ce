// Package export turns a generated schedule into caller-facing formats. The
// exporters faithfully enumerate every placed session and carry no
// scheduling semantics of their own.
package export

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/limaJavier/unitime/pkg/model"
)

// ScheduleCSVRow is one placed session.
type ScheduleCSVRow struct {
	Day        string `csv:"day"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Room       string `csv:"room"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	Semester   int    `csv:"semester"`
	Section    string `csv:"section"`
	Department string `csv:"department"`
	Teacher    string `csv:"teacher"`
}

// ScheduleCSVString renders the schedule as CSV text, one row per session,
// sorted by day, start time and cohort.
func ScheduleCSVString(schedule *model.Schedule) (string, error) {
	rows := scheduleRows(schedule)
	return gocsv.MarshalString(&rows)
}

// ExportScheduleCSV writes the schedule to a CSV file, replacing any
// previous file at the path.
func ExportScheduleCSV(schedule *model.Schedule, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create csv file: %w", err)
	}
	defer out.Close()

	rows := scheduleRows(schedule)
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write csv file: %w", err)
	}
	return nil
}

func scheduleRows(schedule *model.Schedule) []*ScheduleCSVRow {
	rows := make([]*ScheduleCSVRow, 0)
	for _, scheduled := range schedule.ScheduledCourses() {
		course := scheduled.Course
		for _, session := range scheduled.Sessions {
			rows = append(rows, &ScheduleCSVRow{
				Day:        session.Day.String(),
				Start:      session.Start.String(),
				End:        session.End.String(),
				Room:       session.Room,
				CourseCode: course.Code,
				CourseName: course.Name,
				Semester:   course.Semester,
				Section:    course.Section,
				Department: course.Department,
				Teacher:    teacherLabel(course),
			})
		}
	}

	slices.SortFunc(rows, func(a, b *ScheduleCSVRow) int {
		if a.Day != b.Day {
			return compareDays(a.Day, b.Day)
		}
		if a.Start != b.Start {
			return strings.Compare(a.Start, b.Start)
		}
		if a.Semester != b.Semester {
			return a.Semester - b.Semester
		}
		if a.Section != b.Section {
			return strings.Compare(a.Section, b.Section)
		}
		return strings.Compare(a.CourseCode, b.CourseCode)
	})
	return rows
}

func compareDays(a, b string) int {
	dayA, _ := model.ParseDay(a)
	dayB, _ := model.ParseDay(b)
	return int(dayA) - int(dayB)
}

// teacherLabel substitutes the conventional placeholder for unassigned
// teachers.
func teacherLabel(course *model.Course) string {
	if course.Teacher == "" {
		return "TBA"
	}
	return course.Teacher
}
