// Package timeutil provides the wall-clock helpers used by booking flows.
//
// All time-dependent logic goes through the Clock interface so lifecycle
// and future-date checks are deterministic under test. Dates and times are
// handled as strings in the persisted formats (YYYY-MM-DD and HH:MM:SS);
// both formats compare correctly lexically, which the future-slot checks
// rely on.
package timeutil

import (
	"regexp"
	"strconv"
	"time"
)

// Persisted date and time layouts.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Clock supplies the current time.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

// SystemClock reads the real system clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Useful for tests.
type FixedClock struct {
	// Instant is the time Now returns.
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// CurrentDate formats the clock's current date as YYYY-MM-DD.
func CurrentDate(c Clock) string {
	return c.Now().Format(DateLayout)
}

// CurrentTime formats the clock's current time as HH:MM:SS.
func CurrentTime(c Clock) string {
	return c.Now().Format(TimeLayout)
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)
)

// IsValidDate reports whether date is a well-formed YYYY-MM-DD calendar
// date, including month-length and leap-year checks.
func IsValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	daysInMonth := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
		daysInMonth[1] = 29
	}

	return day <= daysInMonth[month-1]
}

// IsValidTime reports whether t is a well-formed HH:MM:SS time of day.
func IsValidTime(t string) bool {
	return timeRe.MatchString(t)
}

// IsTodayOrLater reports whether date is the clock's current date or later.
func IsTodayOrLater(date string, c Clock) bool {
	return date >= CurrentDate(c)
}

// IsFutureSlot reports whether the date/time pair is strictly after the
// clock's current date and time.
func IsFutureSlot(date, t string, c Clock) bool {
	curDate := CurrentDate(c)
	curTime := CurrentTime(c)
	return date > curDate || (date == curDate && t > curTime)
}
