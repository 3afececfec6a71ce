package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/unitime/pkg/model"
)

func TestPrintReportWarnsOnShortfalls(t *testing.T) {
	course := &model.Course{Code: "CS101", Semester: 1, Section: "A"}
	reports := []model.CourseReport{
		{Course: course, Requested: 2, Placed: 1},
		{Course: &model.Course{Code: "CS102", Semester: 1, Section: "A"}, Requested: 2, Placed: 2},
	}

	var out bytes.Buffer
	printReport(&out, reports)

	assert.Contains(t, out.String(), "WARNING: CS101 (Semester 1, Section A) placed 1/2 sessions")
	assert.NotContains(t, out.String(), "CS102")
	assert.NotContains(t, out.String(), "All course sessions were placed")
}

func TestPrintReportOnFullPlacement(t *testing.T) {
	reports := []model.CourseReport{
		{Course: &model.Course{Code: "CS101", Semester: 1, Section: "A"}, Requested: 2, Placed: 2},
	}

	var out bytes.Buffer
	printReport(&out, reports)

	assert.Equal(t, "All course sessions were placed\n", out.String())
}
