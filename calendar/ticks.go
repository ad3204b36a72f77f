// Package calendar converts between ticks (100ns intervals since 0001-01-01
// 00:00:00 in the proleptic Gregorian calendar) and calendar fields.
//
// The Calendar interface is the collaborator the date/time formatter consults
// for year, month, day and era decomposition; Gregorian and Japanese
// implementations are provided.
package calendar

import (
	"errors"
	"time"
)

const (
	TicksPerMillisecond int64 = 10000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24

	daysPerYear      = 365
	daysPer4Years    = daysPerYear*4 + 1
	daysPer100Years  = daysPer4Years*25 - 1
	daysPer400Years  = daysPer100Years*4 + 1
	daysTo10000      = daysPer400Years*25 - 366
	daysTo1970       = daysPer400Years*4 + daysPer100Years*3 + daysPer4Years*17 + daysPerYear
	unixEpochSeconds = daysTo1970 * 86400

	MinTicks int64 = 0
	MaxTicks int64 = daysTo10000*TicksPerDay - 1

	// UnixEpochTicks is 1970-01-01T00:00:00.
	UnixEpochTicks int64 = daysTo1970 * TicksPerDay

	MaxYear = 9999
)

var ErrOutOfRange = errors.New("calendar: value out of range")

var (
	daysToMonth365 = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	daysToMonth366 = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year, month int) int {
	days := &daysToMonth365
	if IsLeapYear(year) {
		days = &daysToMonth366
	}
	return days[month] - days[month-1]
}

// DateToTicks returns the ticks at midnight of the given Gregorian date.
func DateToTicks(year, month, day int) (int64, error) {
	if year < 1 || year > MaxYear || month < 1 || month > 12 {
		return 0, ErrOutOfRange
	}
	days := &daysToMonth365
	if IsLeapYear(year) {
		days = &daysToMonth366
	}
	if day < 1 || day > days[month]-days[month-1] {
		return 0, ErrOutOfRange
	}
	y := int64(year - 1)
	n := y*365 + y/4 - y/100 + y/400 + int64(days[month-1]) + int64(day) - 1
	return n * TicksPerDay, nil
}

// TimeToTicks returns the ticks for a time of day.
func TimeToTicks(hour, minute, second int) (int64, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, ErrOutOfRange
	}
	return int64(hour)*TicksPerHour + int64(minute)*TicksPerMinute + int64(second)*TicksPerSecond, nil
}

// Date splits ticks into a Gregorian year, month and day.
func Date(ticks int64) (year, month, day int) {
	n := int(ticks / TicksPerDay)

	y400 := n / daysPer400Years
	n -= y400 * daysPer400Years

	y100 := n / daysPer100Years
	if y100 == 4 { // last day of a 400-year cycle
		y100 = 3
	}
	n -= y100 * daysPer100Years

	y4 := n / daysPer4Years
	n -= y4 * daysPer4Years

	y1 := n / daysPerYear
	if y1 == 4 { // last day of a leap year
		y1 = 3
	}

	year = y400*400 + y100*100 + y4*4 + y1 + 1
	n -= y1 * daysPerYear

	days := &daysToMonth365
	if y1 == 3 && (y4 != 24 || y100 == 3) {
		days = &daysToMonth366
	}

	m := (n >> 5) + 1
	for n >= days[m] {
		m++
	}
	return year, m, n - days[m-1] + 1
}

// Clock splits ticks into the time of day.
func Clock(ticks int64) (hour, minute, second int) {
	t := ticks % TicksPerDay
	return int(t / TicksPerHour), int(t / TicksPerMinute % 60), int(t / TicksPerSecond % 60)
}

func DayOfWeek(ticks int64) time.Weekday {
	return time.Weekday((ticks/TicksPerDay + 1) % 7)
}

// FromUnix converts seconds and nanoseconds since the Unix epoch to ticks.
// The result is not range checked.
func FromUnix(sec int64, nsec int64) int64 {
	return (sec+unixEpochSeconds)*TicksPerSecond + nsec/100
}

// ToUnix is the inverse of FromUnix.
func ToUnix(ticks int64) (sec int64, nsec int64) {
	return ticks/TicksPerSecond - unixEpochSeconds, (ticks % TicksPerSecond) * 100
}
