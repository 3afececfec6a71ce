package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRawCourse() RawCourse {
	return RawCourse{
		Code:        "CS101",
		Name:        "Programming Fundamentals",
		Kind:        "THEORY_3CR",
		CreditHours: 3,
		Semester:    1,
		Section:     "A",
		Department:  "Computer Science",
		Teacher:     "Dr. Chen",
	}
}

func TestParseCourseKind(t *testing.T) {
	t.Run("Explicit labels", func(t *testing.T) {
		assert.Equal(t, Lab, ParseCourseKind("lab", 3))
		assert.Equal(t, TheoryThreeCredit, ParseCourseKind("THEORY", 2))
		assert.Equal(t, TheoryThreeCredit, ParseCourseKind("theory_3cr", 2))
		assert.Equal(t, TheoryTwoCredit, ParseCourseKind("THEORY_2", 3))
	})

	t.Run("Fallback by credit hours", func(t *testing.T) {
		assert.Equal(t, TheoryTwoCredit, ParseCourseKind("", 2))
		assert.Equal(t, TheoryThreeCredit, ParseCourseKind("", 3))
		assert.Equal(t, TheoryThreeCredit, ParseCourseKind("seminar", 1))
	})
}

func TestCourseKindDispatch(t *testing.T) {
	assert.Equal(t, 90, TheoryThreeCredit.SessionMinutes())
	assert.Equal(t, 120, TheoryTwoCredit.SessionMinutes())
	assert.Equal(t, 180, Lab.SessionMinutes())

	assert.Equal(t, 2, TheoryThreeCredit.SessionsPerWeek())
	assert.Equal(t, 1, TheoryTwoCredit.SessionsPerWeek())
	assert.Equal(t, 1, Lab.SessionsPerWeek())

	assert.Equal(t, LabRoom, Lab.RoomKind())
	assert.Equal(t, Classroom, TheoryThreeCredit.RoomKind())
	assert.Equal(t, Classroom, TheoryTwoCredit.RoomKind())
}

func TestProcessRawInput(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		input, err := ProcessRawInput(RawModelInput{Courses: []RawCourse{validRawCourse()}})

		assert.Nil(t, err)
		assert.Equal(t, DefaultDays(), input.Days)
		assert.Equal(t, DefaultWeeklyCapMinutes, input.WeeklyCapMinutes)
		assert.Equal(t, 25, input.Rooms.Len())
		assert.Equal(t, DefaultEnrolled, input.Courses[0].Enrolled)
	})

	t.Run("Explicit rooms, days and cap", func(t *testing.T) {
		raw := RawModelInput{
			Rooms: []RawRoom{
				{Id: "101", Kind: "classroom"},
				{Id: "LAB1", Kind: "lab", Capacity: 20},
			},
			Days:           []string{"Monday", "Wednesday", "Saturday"},
			WeeklyCapHours: 20,
			Courses:        []RawCourse{validRawCourse()},
		}

		input, err := ProcessRawInput(raw)

		assert.Nil(t, err)
		assert.Equal(t, []Day{Monday, Wednesday, Saturday}, input.Days)
		assert.Equal(t, 1200, input.WeeklyCapMinutes)
		assert.Equal(t, 2, input.Rooms.Len())

		room, _ := input.Rooms.Get("101")
		assert.Equal(t, DefaultRoomCapacity, room.Capacity)
	})

	t.Run("Configuration errors", func(t *testing.T) {
		broken := func(mutate func(raw *RawModelInput)) RawModelInput {
			raw := RawModelInput{Courses: []RawCourse{validRawCourse()}}
			mutate(&raw)
			return raw
		}

		cases := map[string]RawModelInput{
			"empty code":           broken(func(raw *RawModelInput) { raw.Courses[0].Code = " " }),
			"non-positive credits": broken(func(raw *RawModelInput) { raw.Courses[0].CreditHours = 0 }),
			"semester below one":   broken(func(raw *RawModelInput) { raw.Courses[0].Semester = 0 }),
			"empty section":        broken(func(raw *RawModelInput) { raw.Courses[0].Section = "" }),
			"negative enrolled":    broken(func(raw *RawModelInput) { raw.Courses[0].Enrolled = -1 }),
			"unknown day":          broken(func(raw *RawModelInput) { raw.Days = []string{"Funday"} }),
			"duplicate day":        broken(func(raw *RawModelInput) { raw.Days = []string{"Monday", "monday"} }),
			"negative cap":         broken(func(raw *RawModelInput) { raw.WeeklyCapHours = -1 }),
			"unknown room kind":    broken(func(raw *RawModelInput) { raw.Rooms = []RawRoom{{Id: "101", Kind: "garage"}} }),
			"duplicate room":       broken(func(raw *RawModelInput) { raw.Rooms = []RawRoom{{Id: "101", Kind: "classroom"}, {Id: "101", Kind: "lab"}} }),
		}

		for name, raw := range cases {
			_, err := ProcessRawInput(raw)
			assert.NotNil(t, err, name)

			var configurationError ConfigurationError
			assert.ErrorAs(t, err, &configurationError, name)
		}
	})
}
