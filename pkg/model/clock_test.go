package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("Valid values", func(t *testing.T) {
		cases := map[string]ClockTime{
			"08:00": 480,
			"14:30": 870,
			"21:30": 1290,
			"00:00": 0,
		}
		for value, expected := range cases {
			parsed, err := ParseClockTime(value)
			assert.Nil(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("Invalid values", func(t *testing.T) {
		for _, value := range []string{"", "8", "25:00", "08:60", "ab:cd", "08-00"} {
			_, err := ParseClockTime(value)
			assert.NotNil(t, err, "value %q must not parse", value)
		}
	})

	t.Run("Round trip", func(t *testing.T) {
		assert.Equal(t, "08:00", ClockTime(480).String())
		assert.Equal(t, "09:30", ClockTime(480).Add(90).String())
	})
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("wednesday")
	assert.Nil(t, err)
	assert.Equal(t, Wednesday, day)

	_, err = ParseDay("Sunday")
	assert.NotNil(t, err)
}

func TestWindowFor(t *testing.T) {
	// Semesters 1-4 study in the morning, later semesters in the evening.
	for semester := 1; semester <= 4; semester++ {
		assert.Equal(t, MorningWindow, WindowFor(semester))
	}
	for semester := 5; semester <= 8; semester++ {
		assert.Equal(t, EveningWindow, WindowFor(semester))
	}
}

func TestWindowContains(t *testing.T) {
	assert.True(t, MorningWindow.Contains(480, 660))
	assert.True(t, MorningWindow.Contains(810, 900)) // up to the closing edge
	assert.False(t, MorningWindow.Contains(450, 540))
	assert.False(t, MorningWindow.Contains(840, 930))

	// The windows deliberately share 14:30-15:00.
	assert.True(t, EveningWindow.Open < MorningWindow.Close)
}
