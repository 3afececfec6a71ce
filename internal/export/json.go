package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/limaJavier/unitime/pkg/model"
)

type jsonSession struct {
	Day   string `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
	Room  string `json:"room"`
}

type jsonCourse struct {
	CourseCode string        `json:"course_code"`
	CourseName string        `json:"course_name"`
	Teacher    string        `json:"teacher"`
	Sessions   []jsonSession `json:"time_slots"`
}

// ScheduleJSON renders the schedule keyed by "Day_semester_section", each
// key listing the courses holding a session under it.
func ScheduleJSON(schedule *model.Schedule) ([]byte, error) {
	output := make(map[string][]jsonCourse)

	for _, key := range schedule.Keys() {
		keyString := fmt.Sprintf("%v_%d_%v", key.Day, key.Cohort.Semester, key.Cohort.Section)
		for _, scheduled := range schedule.At(key.Day, key.Cohort) {
			entry := jsonCourse{
				CourseCode: scheduled.Course.Code,
				CourseName: scheduled.Course.Name,
				Teacher:    teacherLabel(scheduled.Course),
			}
			for _, session := range scheduled.Sessions {
				entry.Sessions = append(entry.Sessions, jsonSession{
					Day:   session.Day.String(),
					Start: session.Start.String(),
					End:   session.End.String(),
					Room:  session.Room,
				})
			}
			output[keyString] = append(output[keyString], entry)
		}
	}

	return json.MarshalIndent(output, "", "  ")
}

// ExportScheduleJSON writes the JSON rendering to a file.
func ExportScheduleJSON(schedule *model.Schedule, path string) error {
	bytes, err := ScheduleJSON(schedule)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, bytes, 0o666); err != nil {
		return fmt.Errorf("cannot write json file: %w", err)
	}
	return nil
}
