package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/limaJavier/unitime/internal/export"
	"github.com/limaJavier/unitime/pkg/model"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the timetable will be written as JSON; if empty, a readable timetable is written into the Standard Output")
	csvFilePathPtr := flag.String("csv", "", "Path to the file where the timetable will be written as CSV; if empty, no CSV is produced")
	daysPtr := flag.String("days", "", "Comma-separated working days overriding the input file (e.g. \"Monday,Tuesday,Wednesday\")")
	capPtr := flag.Float64("cap", 0, "Weekly hour cap per semester-section overriding the input file")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr
	csvFile := *csvFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if *capPtr < 0 {
		log.Fatalf("weekly cap must be positive: %v", *capPtr)
	}

	// Extract input
	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	if *daysPtr != "" {
		days := make([]model.Day, 0)
		for _, name := range strings.Split(*daysPtr, ",") {
			day, err := model.ParseDay(strings.TrimSpace(name))
			if err != nil {
				log.Fatalf("invalid day override: %v", err)
			}
			days = append(days, day)
		}
		input.Days = days
	}
	if *capPtr > 0 {
		input.WeeklyCapMinutes = int(*capPtr * 60)
	}

	// Build timetable
	scheduler := model.NewGreedyScheduler()
	schedule, reports, err := scheduler.Build(input)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	// Verify timetable correctness
	if !scheduler.Verify(schedule, input) {
		fmt.Fprintln(os.Stderr, "generated timetable failed verification")
		os.Exit(15)
	}

	// Build output from timetable
	if outFile == "" {
		export.PrintTimetable(os.Stdout, schedule, input.Days, 0, "")
	} else if err := export.ExportScheduleJSON(schedule, outFile); err != nil {
		log.Fatalf("cannot write timetable file: %v", err)
	}
	if csvFile != "" {
		if err := export.ExportScheduleCSV(schedule, csvFile); err != nil {
			log.Fatalf("cannot write csv file: %v", err)
		}
	}

	printReport(os.Stdout, reports)
}

// printReport warns about every partially placed course.
func printReport(w io.Writer, reports []model.CourseReport) {
	shortfalls := 0
	for _, report := range reports {
		if !report.Shortfall() {
			continue
		}
		shortfalls++
		fmt.Fprintf(w, "WARNING: %v (Semester %d, Section %v) placed %d/%d sessions\n",
			report.Course.Code, report.Course.Semester, report.Course.Section, report.Placed, report.Requested)
	}
	if shortfalls == 0 {
		fmt.Fprintln(w, "All course sessions were placed")
	}
}
