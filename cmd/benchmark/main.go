// The benchmark binary generates progressively larger synthetic inputs and
// reports how the greedy engine behaves on them: wall time, placed sessions
// and acceptance rate.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/unitime/pkg/model"
)

type BenchmarkResult struct {
	Departments    int
	Cohorts        int
	Courses        int
	Requested      int
	Placed         int
	DurationMillis int64
	Verified       bool
}

var departmentNames = []string{"CSE", "EEE", "BBA", "ENG", "LAW", "PHR", "CIV", "TEX"}

var teacherNames = []string{
	"Dr. Rahman", "Dr. Sultana", "Mr. Karim", "Ms. Akter",
	"Dr. Hossain", "Mr. Islam", "Ms. Begum", "Dr. Chowdhury",
}

func main() {
	scheduler := model.NewGreedyScheduler()

	fmt.Println("departments,cohorts,courses,requested,placed,acceptance,duration_ms,verified")
	for _, departments := range []int{1, 2, 4, 8} {
		input, err := model.ProcessRawInput(syntheticInput(departments))
		if err != nil {
			log.Fatalf("cannot build synthetic input: %v", err)
		}

		result := run(scheduler, input, departments)
		fmt.Printf("%d,%d,%d,%d,%d,%.3f,%d,%v\n",
			result.Departments,
			result.Cohorts,
			result.Courses,
			result.Requested,
			result.Placed,
			acceptance(result),
			result.DurationMillis,
			result.Verified,
		)
	}
}

func run(scheduler model.Scheduler, input model.ModelInput, departments int) BenchmarkResult {
	start := time.Now()
	schedule, reports, err := scheduler.Build(input)
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	cohorts := lo.Uniq(lo.Map(input.Courses, func(course *model.Course, _ int) model.Cohort {
		return course.Cohort()
	}))

	return BenchmarkResult{
		Departments:    departments,
		Cohorts:        len(cohorts),
		Courses:        len(input.Courses),
		Requested:      lo.SumBy(reports, func(report model.CourseReport) int { return report.Requested }),
		Placed:         lo.SumBy(reports, func(report model.CourseReport) int { return report.Placed }),
		DurationMillis: duration.Milliseconds(),
		Verified:       scheduler.Verify(schedule, input),
	}
}

func acceptance(result BenchmarkResult) float64 {
	if result.Requested == 0 {
		return 1
	}
	return float64(result.Placed) / float64(result.Requested)
}

// syntheticInput builds a reproducible campus-sized input: each department
// carries eight semesters with two sections each, and every cohort takes
// three three-credit theory courses, one two-credit theory course and one
// lab. Teacher assignment is round-robin so repeated runs produce identical
// inputs.
func syntheticInput(departments int) model.RawModelInput {
	raw := model.RawModelInput{
		Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}

	teacherIndex := 0
	nextTeacher := func() string {
		teacher := teacherNames[teacherIndex%len(teacherNames)]
		teacherIndex++
		return teacher
	}

	for d := 0; d < departments; d++ {
		department := departmentNames[d%len(departmentNames)]
		for semester := 1; semester <= 8; semester++ {
			for _, section := range []string{"A", "B"} {
				for c := 1; c <= 3; c++ {
					raw.Courses = append(raw.Courses, model.RawCourse{
						Code:        fmt.Sprintf("%v%d0%d", department, semester, c),
						Name:        fmt.Sprintf("%v Course %d-%d", department, semester, c),
						Kind:        "theory",
						CreditHours: 3,
						Semester:    semester,
						Section:     section,
						Department:  department,
						Teacher:     nextTeacher(),
					})
				}
				raw.Courses = append(raw.Courses, model.RawCourse{
					Code:        fmt.Sprintf("%v%d04", department, semester),
					Name:        fmt.Sprintf("%v Course %d-4", department, semester),
					Kind:        "theory_2",
					CreditHours: 2,
					Semester:    semester,
					Section:     section,
					Department:  department,
					Teacher:     nextTeacher(),
				})
				raw.Courses = append(raw.Courses, model.RawCourse{
					Code:        fmt.Sprintf("%v%d05L", department, semester),
					Name:        fmt.Sprintf("%v Lab %d", department, semester),
					Kind:        "lab",
					CreditHours: 1,
					Semester:    semester,
					Section:     section,
					Department:  department,
					Teacher:     nextTeacher(),
				})
			}
		}
	}

	return raw
}
