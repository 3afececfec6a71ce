package server

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/limaJavier/unitime/internal/config"
	"github.com/limaJavier/unitime/pkg/model"
)

type handlers struct {
	scheduler model.Scheduler
	config    *config.Config
}

func (h *handlers) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) generateTimetable(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}

	input, err := model.ProcessRawInput(rawInputFromRequest(request, h.config))
	if err != nil {
		var configurationError model.ConfigurationError
		if errors.As(err, &configurationError) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	schedule, reports, err := h.scheduler.Build(input)
	if err != nil {
		log.Error().Err(err).Msg("timetable generation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !h.scheduler.Verify(schedule, input) {
		log.Error().Msg("generated timetable failed verification")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "generated timetable failed verification"})
		return
	}

	ctx.JSON(http.StatusOK, buildResponse(request, schedule, reports))
}

// rawInputFromRequest flattens the department-grouped payload into engine
// input. Days are the union of the departments' working days in weekday
// order; rooms override the stock registry only when the caller supplies
// any.
func rawInputFromRequest(request GenerateRequest, cfg *config.Config) model.RawModelInput {
	raw := model.RawModelInput{
		WeeklyCapHours: cfg.Scheduling.WeeklyCapHours,
	}

	//** Days
	requested := make([]string, 0)
	for _, department := range request.Departments {
		for _, name := range department.WorkingDays {
			if !slices.ContainsFunc(requested, func(existing string) bool {
				return strings.EqualFold(existing, name)
			}) {
				requested = append(requested, name)
			}
		}
	}
	if len(requested) == 0 {
		raw.Days = cfg.Scheduling.Days
	} else {
		// Keep weekday order regardless of payload order.
		for _, day := range []model.Day{model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday, model.Saturday} {
			if slices.ContainsFunc(requested, func(name string) bool {
				return strings.EqualFold(name, day.String())
			}) {
				raw.Days = append(raw.Days, day.String())
			}
		}
	}

	//** Rooms
	for _, id := range append(request.Rooms.General, request.Rooms.NB...) {
		if strings.TrimSpace(id) != "" {
			raw.Rooms = append(raw.Rooms, model.RawRoom{Id: strings.TrimSpace(id), Kind: "classroom"})
		}
	}
	for _, id := range request.Rooms.Labs {
		if strings.TrimSpace(id) != "" {
			raw.Rooms = append(raw.Rooms, model.RawRoom{Id: strings.TrimSpace(id), Kind: "lab"})
		}
	}

	//** Courses
	for _, department := range request.Departments {
		for _, course := range department.Courses {
			raw.Courses = append(raw.Courses, model.RawCourse{
				Code:        course.Code,
				Name:        course.Name,
				Kind:        course.Type,
				CreditHours: course.CreditHours,
				Semester:    department.Semester,
				Section:     department.Section,
				Department:  department.Name,
				Teacher:     course.Teacher,
			})
		}
	}

	return raw
}

func buildResponse(request GenerateRequest, schedule *model.Schedule, reports []model.CourseReport) GenerateResponse {
	//** Reconstruct program names per department
	type programKey struct {
		semester   int
		section    string
		department string
	}
	programs := make(map[programKey]string)
	for _, department := range request.Departments {
		programs[programKey{department.Semester, department.Section, department.Name}] = department.Program
	}

	response := GenerateResponse{
		Timetables: make(map[string][]TimetableEntry),
		Report:     make([]CourseReportEntry, 0, len(reports)),
	}

	for _, scheduled := range schedule.ScheduledCourses() {
		course := scheduled.Course
		program, ok := programs[programKey{course.Semester, course.Section, course.Department}]
		if !ok {
			program = "Program"
		}
		groupKey := fmt.Sprintf("%v - %v - Semester %d - Section %v", course.Department, program, course.Semester, course.Section)

		teacher := course.Teacher
		if teacher == "" {
			teacher = "TBA"
		}
		for _, session := range scheduled.Sessions {
			response.Timetables[groupKey] = append(response.Timetables[groupKey], TimetableEntry{
				Time:    fmt.Sprintf("%v-%v", session.Start, session.End),
				Day:     strings.ToLower(session.Day.String()),
				Code:    course.Code,
				Name:    course.Name,
				Room:    session.Room,
				Teacher: teacher,
			})
		}
	}

	//** Sort each group by start time, then day
	for _, entries := range response.Timetables {
		slices.SortFunc(entries, func(a, b TimetableEntry) int {
			if a.Time != b.Time {
				return strings.Compare(a.Time, b.Time)
			}
			return strings.Compare(a.Day, b.Day)
		})
	}

	for _, report := range reports {
		response.Report = append(response.Report, CourseReportEntry{
			Code:      report.Course.Code,
			Name:      report.Course.Name,
			Semester:  report.Course.Semester,
			Section:   report.Course.Section,
			Requested: report.Requested,
			Placed:    report.Placed,
		})
	}

	return response
}
