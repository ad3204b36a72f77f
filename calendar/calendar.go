package calendar

import "time"

// ID identifies a calendar system. The formatter switches on it for the
// handful of calendar-specific rendering rules.
type ID int

const (
	GregorianID ID = iota + 1
	JapaneseID
	HebrewID
)

func (id ID) String() string {
	switch id {
	case GregorianID:
		return "gregorian"
	case JapaneseID:
		return "japanese"
	case HebrewID:
		return "hebrew"
	default:
		return "unknown"
	}
}

// Calendar decomposes ticks into the fields of a particular calendar system.
// Implementations must be safe for concurrent use; the ones in this package
// are stateless.
type Calendar interface {
	ID() ID
	Era(ticks int64) int
	Year(ticks int64) int
	Month(ticks int64) int
	DayOfMonth(ticks int64) int
	DayOfWeek(ticks int64) time.Weekday
	IsLeapYear(year, era int) bool

	// ForceTwoDigitYears reports whether years never render with more than
	// two digits.
	ForceTwoDigitYears() bool
}

// Gregorian is the proleptic Gregorian calendar with a single era.
var Gregorian Calendar = gregorian{}

type gregorian struct{}

func (gregorian) ID() ID                             { return GregorianID }
func (gregorian) Era(int64) int                      { return 1 }
func (gregorian) DayOfWeek(ticks int64) time.Weekday { return DayOfWeek(ticks) }
func (gregorian) IsLeapYear(year, era int) bool      { return IsLeapYear(year) }
func (gregorian) ForceTwoDigitYears() bool           { return false }

func (gregorian) Year(ticks int64) int {
	y, _, _ := Date(ticks)
	return y
}

func (gregorian) Month(ticks int64) int {
	_, m, _ := Date(ticks)
	return m
}

func (gregorian) DayOfMonth(ticks int64) int {
	_, _, d := Date(ticks)
	return d
}
