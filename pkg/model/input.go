package model

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// CourseKind is the closed set of course variants. Durations and weekly
// session counts are dispatched exhaustively over it; there is no
// extensibility requirement.
type CourseKind uint8

const (
	TheoryThreeCredit CourseKind = iota
	TheoryTwoCredit
	Lab
)

func (kind CourseKind) String() string {
	switch kind {
	case TheoryThreeCredit:
		return "THEORY_3CR"
	case TheoryTwoCredit:
		return "THEORY_2CR"
	case Lab:
		return "LAB"
	}
	return fmt.Sprintf("CourseKind(%d)", uint8(kind))
}

// SessionMinutes is the duration of one weekly session.
func (kind CourseKind) SessionMinutes() int {
	switch kind {
	case TheoryThreeCredit:
		return 90
	case TheoryTwoCredit:
		return 120
	case Lab:
		return 180
	}
	log.Panicf("unknown course kind %d", kind)
	return 0
}

// SessionsPerWeek is the number of weekly occurrences the course requires.
func (kind CourseKind) SessionsPerWeek() int {
	switch kind {
	case TheoryThreeCredit:
		return 2
	case TheoryTwoCredit:
		return 1
	case Lab:
		return 1
	}
	log.Panicf("unknown course kind %d", kind)
	return 0
}

// RoomKind restricts which rooms a course's sessions may use.
func (kind CourseKind) RoomKind() RoomKind {
	if kind == Lab {
		return LabRoom
	}
	return Classroom
}

// ParseCourseKind resolves a kind label, falling back to the credit hours
// when the label is empty or unrecognized.
func ParseCourseKind(label string, creditHours int) CourseKind {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "LAB":
		return Lab
	case "THEORY", "THEORY_3", "THEORY_3CR":
		return TheoryThreeCredit
	case "THEORY_2", "THEORY_2CR":
		return TheoryTwoCredit
	}
	if creditHours == 2 {
		return TheoryTwoCredit
	}
	return TheoryThreeCredit
}

type Course struct {
	Code        string
	Name        string
	Kind        CourseKind
	CreditHours int
	Semester    int
	Section     string
	Department  string
	Teacher     string
	Enrolled    int
}

// Cohort identifies one semester/section combination. All courses of a
// cohort must end up with non-overlapping weekly sessions.
type Cohort struct {
	Semester int
	Section  string
}

func (c *Course) Cohort() Cohort {
	return Cohort{Semester: c.Semester, Section: c.Section}
}

func (c Cohort) String() string {
	return fmt.Sprintf("semester %d section %s", c.Semester, c.Section)
}

// ConfigurationError marks malformed room or course input. It is surfaced to
// the caller before generation starts; the driver never sees bad records.
type ConfigurationError struct {
	Record string
	Reason string
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %v: %v", err.Record, err.Reason)
}

type RawRoom struct {
	Id       string
	Kind     string
	Capacity int
}

type RawCourse struct {
	Code        string
	Name        string
	Kind        string
	CreditHours int
	Semester    int
	Section     string
	Department  string
	Teacher     string
	Enrolled    int
}

type RawModelInput struct {
	Rooms          []RawRoom
	Courses        []RawCourse
	Days           []string
	WeeklyCapHours float64
}

// ModelInput is the validated, immutable input of one generation run.
type ModelInput struct {
	Courses          []*Course
	Rooms            *RoomRegistry
	Days             []Day
	WeeklyCapMinutes int
}

// DefaultWeeklyCapMinutes is 35 hours: 7 hours a day over a 5-day week.
const DefaultWeeklyCapMinutes = 35 * 60

// DefaultEnrolled is assumed when the input does not state an enrolled count.
const DefaultEnrolled = 30

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ModelInput{}, err
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	input := ModelInput{
		WeeklyCapMinutes: DefaultWeeklyCapMinutes,
	}
	if rawInput.WeeklyCapHours != 0 {
		input.WeeklyCapMinutes = int(rawInput.WeeklyCapHours * 60)
	}
	if input.WeeklyCapMinutes <= 0 {
		return ModelInput{}, ConfigurationError{Record: "weekly cap", Reason: "must be positive"}
	}

	//** Manage days
	if len(rawInput.Days) == 0 {
		input.Days = DefaultDays()
	} else {
		for _, dayName := range rawInput.Days {
			day, err := ParseDay(dayName)
			if err != nil {
				return ModelInput{}, ConfigurationError{Record: "days", Reason: err.Error()}
			}
			if lo.Contains(input.Days, day) {
				return ModelInput{}, ConfigurationError{Record: "days", Reason: fmt.Sprintf("day %v listed twice", day)}
			}
			input.Days = append(input.Days, day)
		}
	}

	//** Manage rooms
	if len(rawInput.Rooms) == 0 {
		input.Rooms = DefaultRegistry()
	} else {
		input.Rooms = NewRoomRegistry()
		for _, rawRoom := range rawInput.Rooms {
			kind, err := ParseRoomKind(rawRoom.Kind)
			if err != nil {
				return ModelInput{}, ConfigurationError{Record: fmt.Sprintf("room %q", rawRoom.Id), Reason: err.Error()}
			}
			capacity := rawRoom.Capacity
			if capacity == 0 {
				capacity = DefaultRoomCapacity
			}
			if err := input.Rooms.Register(rawRoom.Id, kind, capacity); err != nil {
				return ModelInput{}, ConfigurationError{Record: fmt.Sprintf("room %q", rawRoom.Id), Reason: err.Error()}
			}
		}
	}

	//** Manage courses
	for _, rawCourse := range rawInput.Courses {
		course, err := courseFromRaw(rawCourse)
		if err != nil {
			return ModelInput{}, err
		}
		input.Courses = append(input.Courses, course)
	}

	return input, nil
}

func courseFromRaw(rawCourse RawCourse) (*Course, error) {
	record := fmt.Sprintf("course %q", rawCourse.Code)
	if strings.TrimSpace(rawCourse.Code) == "" {
		return nil, ConfigurationError{Record: "course", Reason: "code must not be empty"}
	}
	if rawCourse.CreditHours <= 0 {
		return nil, ConfigurationError{Record: record, Reason: "credit hours must be positive"}
	}
	if rawCourse.Semester < 1 {
		return nil, ConfigurationError{Record: record, Reason: "semester must be at least 1"}
	}
	if strings.TrimSpace(rawCourse.Section) == "" {
		return nil, ConfigurationError{Record: record, Reason: "section must not be empty"}
	}
	if rawCourse.Enrolled < 0 {
		return nil, ConfigurationError{Record: record, Reason: "enrolled count must not be negative"}
	}

	enrolled := rawCourse.Enrolled
	if enrolled == 0 {
		enrolled = DefaultEnrolled
	}

	return &Course{
		Code:        rawCourse.Code,
		Name:        rawCourse.Name,
		Kind:        ParseCourseKind(rawCourse.Kind, rawCourse.CreditHours),
		CreditHours: rawCourse.CreditHours,
		Semester:    rawCourse.Semester,
		Section:     rawCourse.Section,
		Department:  rawCourse.Department,
		Teacher:     rawCourse.Teacher,
		Enrolled:    enrolled,
	}, nil
}
