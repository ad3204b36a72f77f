package calendar

import "time"

type era struct {
	start     int64 // ticks of the first day
	startYear int   // Gregorian year of the first day
}

// Eras are numbered from 1 (Meiji) in start order.
var japaneseEras = func() []era {
	dates := [][3]int{
		{1868, 9, 8},  // Meiji
		{1912, 7, 30}, // Taisho
		{1926, 12, 25},
		{1989, 1, 8},
		{2019, 5, 1}, // Reiwa
	}
	eras := make([]era, len(dates))
	for i, d := range dates {
		ticks, err := DateToTicks(d[0], d[1], d[2])
		if err != nil {
			panic(err)
		}
		eras[i] = era{start: ticks, startYear: d[0]}
	}
	return eras
}()

// Japanese is the Gregorian calendar with years counted from the start of
// each imperial era. Dates before the Meiji era are reported as Meiji years
// of zero or less.
var Japanese Calendar = japanese{}

type japanese struct{}

func (japanese) ID() ID                             { return JapaneseID }
func (japanese) DayOfWeek(ticks int64) time.Weekday { return DayOfWeek(ticks) }
func (japanese) ForceTwoDigitYears() bool           { return true }

func (japanese) Month(ticks int64) int      { return Gregorian.Month(ticks) }
func (japanese) DayOfMonth(ticks int64) int { return Gregorian.DayOfMonth(ticks) }

func (japanese) Era(ticks int64) int {
	for i := len(japaneseEras) - 1; i > 0; i-- {
		if ticks >= japaneseEras[i].start {
			return i + 1
		}
	}
	return 1
}

func (j japanese) Year(ticks int64) int {
	e := japaneseEras[j.Era(ticks)-1]
	return Gregorian.Year(ticks) - e.startYear + 1
}

func (japanese) IsLeapYear(year, eraNum int) bool {
	if eraNum < 1 || eraNum > len(japaneseEras) {
		eraNum = len(japaneseEras)
	}
	return IsLeapYear(japaneseEras[eraNum-1].startYear + year - 1)
}
