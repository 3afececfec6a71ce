package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/unitime/pkg/model"
)

func TestSyntheticInputIsReproducible(t *testing.T) {
	first := syntheticInput(2)
	second := syntheticInput(2)
	assert.Equal(t, first, second)
}

func TestSyntheticInputShape(t *testing.T) {
	raw := syntheticInput(1)

	// 8 semesters, 2 sections, 5 courses each
	assert.Len(t, raw.Courses, 8*2*5)

	input, err := model.ProcessRawInput(raw)
	assert.NoError(t, err)
	assert.Len(t, input.Days, 5)

	labs := 0
	for _, course := range input.Courses {
		if course.Kind == model.Lab {
			labs++
		}
	}
	assert.Equal(t, 8*2, labs)
}
