package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/unitime/pkg/model"
)

func buildTestSchedule(t *testing.T) (*model.Schedule, model.ModelInput) {
	t.Helper()

	registry := model.NewRoomRegistry()
	assert.Nil(t, registry.Register("101", model.Classroom, model.DefaultRoomCapacity))
	assert.Nil(t, registry.Register("LAB1", model.LabRoom, 20))

	input := model.ModelInput{
		Courses: []*model.Course{
			{Code: "CS101", Name: "Programming Fundamentals", Kind: model.TheoryThreeCredit, CreditHours: 3, Semester: 1, Section: "A", Department: "CS", Teacher: "Dr. Chen", Enrolled: 30},
			{Code: "CS101L", Name: "Programming Lab", Kind: model.Lab, CreditHours: 1, Semester: 1, Section: "A", Department: "CS", Enrolled: 30},
		},
		Rooms:            registry,
		Days:             model.DefaultDays(),
		WeeklyCapMinutes: model.DefaultWeeklyCapMinutes,
	}

	schedule, _, err := model.NewGreedyScheduler().Build(input)
	assert.Nil(t, err)
	return schedule, input
}

func TestScheduleCSVString(t *testing.T) {
	schedule, _ := buildTestSchedule(t)

	csv, err := ScheduleCSVString(schedule)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	// Header plus one row per placed session: 1 lab + 2 theory sessions.
	assert.Len(t, lines, 4)
	assert.Equal(t, "day,start,end,room,course_code,course_name,semester,section,department,teacher", lines[0])
	assert.Contains(t, lines[1], "Monday,08:00,11:00,LAB1,CS101L")
	assert.Contains(t, lines[1], "TBA")
	assert.Contains(t, lines[2], "Monday,11:00,12:30,101,CS101")
	assert.Contains(t, lines[3], "Tuesday,08:00,09:30,101,CS101")
}

func TestExportScheduleCSV(t *testing.T) {
	schedule, _ := buildTestSchedule(t)
	path := filepath.Join(t.TempDir(), "schedule.csv")

	assert.Nil(t, ExportScheduleCSV(schedule, path))

	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Contains(t, string(content), "CS101L")
}

func TestScheduleJSON(t *testing.T) {
	schedule, _ := buildTestSchedule(t)

	bytes, err := ScheduleJSON(schedule)
	assert.Nil(t, err)

	var decoded map[string][]map[string]any
	assert.Nil(t, json.Unmarshal(bytes, &decoded))

	assert.Contains(t, decoded, "Monday_1_A")
	assert.Contains(t, decoded, "Tuesday_1_A")

	mondayCodes := make([]string, 0)
	for _, entry := range decoded["Monday_1_A"] {
		mondayCodes = append(mondayCodes, entry["course_code"].(string))
	}
	assert.ElementsMatch(t, []string{"CS101", "CS101L"}, mondayCodes)
}

func TestPrintTimetable(t *testing.T) {
	schedule, input := buildTestSchedule(t)

	var builder strings.Builder
	PrintTimetable(&builder, schedule, input.Days, 1, "A")
	output := builder.String()

	assert.Contains(t, output, "Monday")
	assert.Contains(t, output, "Semester 1, Section A:")
	assert.Contains(t, output, "08:00-11:00 | CS101L")
	assert.Contains(t, output, "Teacher: Dr. Chen")

	// Filtering by another cohort yields no sessions.
	builder.Reset()
	PrintTimetable(&builder, schedule, input.Days, 2, "")
	assert.NotContains(t, builder.String(), "CS101")
}
