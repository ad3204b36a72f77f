package culture

import (
	"strings"

	"github.com/shabbyrobe/go-prim/calendar"
)

// NumberFormat holds the strings the integer codec needs.
type NumberFormat struct {
	NegativeSign     string
	PositiveSign     string
	DecimalSeparator string
	GroupSeparator   string

	// GroupSizes lists digit group sizes from the decimal point outwards; the
	// last size repeats. A final size of 0 means the remaining digits are not
	// grouped.
	GroupSizes []int

	// DecimalDigits is the default precision of the "N" format.
	DecimalDigits int
}

func (nf *NumberFormat) Clone() *NumberFormat {
	out := *nf
	out.GroupSizes = append([]int(nil), nf.GroupSizes...)
	return &out
}

// Fixed patterns. These never vary by culture.
const (
	RFC1123Pattern                   = "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'"
	SortableDateTimePattern          = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"
	UniversalSortableDateTimePattern = "yyyy'-'MM'-'dd HH':'mm':'ss'Z'"
	RoundtripPattern                 = "yyyy'-'MM'-'dd'T'HH':'mm':'ss.fffffffK"
	RoundtripPatternUnfixed          = "yyyy'-'MM'-'ddTHH':'mm':'ss zzz"
)

// DateTimeFormat holds the strings and patterns the date/time formatter
// needs. Month name slices have 13 entries; the 13th is only non-empty for
// calendars with a thirteenth month.
type DateTimeFormat struct {
	Calendar calendar.Calendar

	AMDesignator  string
	PMDesignator  string
	DateSeparator string
	TimeSeparator string

	DayNames            [7]string
	AbbreviatedDayNames [7]string

	MonthNames                    [13]string
	AbbreviatedMonthNames         [13]string
	MonthGenitiveNames            [13]string
	AbbreviatedMonthGenitiveNames [13]string
	LeapYearMonthNames            [13]string
	AbbreviatedLeapYearMonthNames [13]string

	// EraNames is indexed by era number minus one.
	EraNames []string

	ShortDatePattern    string
	LongDatePattern     string
	ShortTimePattern    string
	LongTimePattern     string
	FullDateTimePattern string
	MonthDayPattern     string
	YearMonthPattern    string

	// UseGenitiveMonth selects the genitive month names when a month name is
	// adjacent to a numeric day in the pattern.
	UseGenitiveMonth bool

	// FormatJapaneseFirstYearAsNumber disables rendering the first year of a
	// Japanese era as the era-start glyph.
	FormatJapaneseFirstYearAsNumber bool

	// gregorian is the culture's data before WithCalendar swapped in another
	// calendar.
	gregorian *DateTimeFormat
}

func (dtf *DateTimeFormat) Clone() *DateTimeFormat {
	out := *dtf
	out.EraNames = append([]string(nil), dtf.EraNames...)
	return &out
}

func (dtf *DateTimeFormat) GeneralShortTimePattern() string {
	return dtf.ShortDatePattern + " " + dtf.ShortTimePattern
}

func (dtf *DateTimeFormat) GeneralLongTimePattern() string {
	return dtf.ShortDatePattern + " " + dtf.LongTimePattern
}

// DateTimeOffsetPattern is the default pattern for offset values: the general
// long pattern with the offset appended unless the time pattern already
// mentions it.
func (dtf *DateTimeFormat) DateTimeOffsetPattern() string {
	if strings.IndexByte(dtf.LongTimePattern, 'z') >= 0 {
		return dtf.GeneralLongTimePattern()
	}
	return dtf.GeneralLongTimePattern() + " zzz"
}

// Gregorian returns the culture's Gregorian data: dtf itself if it already
// uses the Gregorian calendar, otherwise the data in effect before a
// calendar was selected.
func (dtf *DateTimeFormat) Gregorian() *DateTimeFormat {
	if dtf.Cal().ID() == calendar.GregorianID {
		return dtf
	}
	if dtf.gregorian != nil {
		return dtf.gregorian
	}
	out := dtf.Clone()
	out.Calendar = calendar.Gregorian
	return out
}

// Cal returns the active calendar, defaulting to Gregorian.
func (dtf *DateTimeFormat) Cal() calendar.Calendar {
	if dtf.Calendar == nil {
		return calendar.Gregorian
	}
	return dtf.Calendar
}

// EraName returns the name of era (1-based), or "" if unknown.
func (dtf *DateTimeFormat) EraName(era int) string {
	if era < 1 || era > len(dtf.EraNames) {
		return ""
	}
	return dtf.EraNames[era-1]
}

// MonthName returns the full or abbreviated name of month (1-based).
func (dtf *DateTimeFormat) MonthName(month int, abbreviated bool) string {
	if abbreviated {
		return dtf.AbbreviatedMonthNames[month-1]
	}
	return dtf.MonthNames[month-1]
}

// GenitiveMonthName falls back to the regular name when no genitive form is
// defined.
func (dtf *DateTimeFormat) GenitiveMonthName(month int, abbreviated bool) string {
	var name string
	if abbreviated {
		name = dtf.AbbreviatedMonthGenitiveNames[month-1]
	} else {
		name = dtf.MonthGenitiveNames[month-1]
	}
	if name == "" {
		return dtf.MonthName(month, abbreviated)
	}
	return name
}

// LeapYearMonthName falls back to the regular name when no leap-year form is
// defined.
func (dtf *DateTimeFormat) LeapYearMonthName(month int, abbreviated bool) string {
	var name string
	if abbreviated {
		name = dtf.AbbreviatedLeapYearMonthNames[month-1]
	} else {
		name = dtf.LeapYearMonthNames[month-1]
	}
	if name == "" {
		return dtf.MonthName(month, abbreviated)
	}
	return name
}

func (dtf *DateTimeFormat) DayName(day int, abbreviated bool) string {
	if abbreviated {
		return dtf.AbbreviatedDayNames[day]
	}
	return dtf.DayNames[day]
}
