package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Day of the week on which sessions may be scheduled. Sunday is intentionally
// absent: the generator never places classes on Sundays.
type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (day Day) String() string {
	if int(day) >= len(dayNames) {
		return fmt.Sprintf("Day(%d)", uint8(day))
	}
	return dayNames[day]
}

func ParseDay(name string) (Day, error) {
	for i, dayName := range dayNames {
		if strings.EqualFold(name, dayName) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid day", name)
}

// DefaultDays is the Monday-Friday working week used when the caller does not
// override the day list.
func DefaultDays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

func ParseClockTime(value string) (ClockTime, error) {
	hours, minutes, ok := strings.Cut(value, ":")
	if !ok {
		return 0, fmt.Errorf("%q is not a valid clock time", value)
	}
	h, err1 := strconv.Atoi(hours)
	m, err2 := strconv.Atoi(minutes)
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q is not a valid clock time", value)
	}
	return ClockTime(h*60 + m), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t ClockTime) Add(minutes int) ClockTime {
	return t + ClockTime(minutes)
}

// Window is the daily time range within which a cohort's sessions must fall.
type Window struct {
	Open  ClockTime
	Close ClockTime
}

var (
	// MorningWindow serves junior cohorts (semester <= 4).
	MorningWindow = Window{Open: 8 * 60, Close: 15 * 60}
	// EveningWindow serves senior cohorts. It opens 30 minutes before the
	// morning window closes, so the two windows deliberately overlap.
	EveningWindow = Window{Open: 14*60 + 30, Close: 21*60 + 30}
)

// WindowFor maps a semester to its daily window.
func WindowFor(semester int) Window {
	if semester <= 4 {
		return MorningWindow
	}
	return EveningWindow
}

// Contains reports whether [start, end) lies entirely within the window.
func (w Window) Contains(start, end ClockTime) bool {
	return start >= w.Open && end <= w.Close
}
