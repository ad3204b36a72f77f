package culture

import (
	"github.com/shabbyrobe/go-prim/calendar"
	"golang.org/x/text/language"
)

var (
	englishDays       = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	englishDaysAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	englishMonths = [13]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December", ""}
	englishMonthsAbbrev = [13]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", ""}
)

// Invariant is culture-neutral data. It is used whenever a nil Provider is
// passed, and always for the RFC 1123, sortable and round-trip formats.
var Invariant = &Culture{
	tag: language.Und,
	nf: &NumberFormat{
		NegativeSign:     "-",
		PositiveSign:     "+",
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		GroupSizes:       []int{3},
		DecimalDigits:    2,
	},
	dtf: &DateTimeFormat{
		Calendar:              calendar.Gregorian,
		AMDesignator:          "AM",
		PMDesignator:          "PM",
		DateSeparator:         "/",
		TimeSeparator:         ":",
		DayNames:              englishDays,
		AbbreviatedDayNames:   englishDaysAbbrev,
		MonthNames:            englishMonths,
		AbbreviatedMonthNames: englishMonthsAbbrev,
		EraNames:              []string{"A.D."},
		ShortDatePattern:      "MM/dd/yyyy",
		LongDatePattern:       "dddd, dd MMMM yyyy",
		ShortTimePattern:      "HH:mm",
		LongTimePattern:       "HH:mm:ss",
		FullDateTimePattern:   "dddd, dd MMMM yyyy HH:mm:ss",
		MonthDayPattern:       "MMMM dd",
		YearMonthPattern:      "yyyy MMMM",
	},
}

var builtins = []*Culture{
	{
		tag:  language.AmericanEnglish,
		name: "en-US",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ".", GroupSeparator: ",",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "AM", PMDesignator: "PM",
			DateSeparator: "/", TimeSeparator: ":",
			DayNames: englishDays, AbbreviatedDayNames: englishDaysAbbrev,
			MonthNames: englishMonths, AbbreviatedMonthNames: englishMonthsAbbrev,
			EraNames:            []string{"A.D."},
			ShortDatePattern:    "M/d/yyyy",
			LongDatePattern:     "dddd, MMMM d, yyyy",
			ShortTimePattern:    "h:mm tt",
			LongTimePattern:     "h:mm:ss tt",
			FullDateTimePattern: "dddd, MMMM d, yyyy h:mm:ss tt",
			MonthDayPattern:     "MMMM d",
			YearMonthPattern:    "MMMM yyyy",
		},
	},

	{
		tag:  language.BritishEnglish,
		name: "en-GB",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ".", GroupSeparator: ",",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "am", PMDesignator: "pm",
			DateSeparator: "/", TimeSeparator: ":",
			DayNames: englishDays, AbbreviatedDayNames: englishDaysAbbrev,
			MonthNames: englishMonths, AbbreviatedMonthNames: englishMonthsAbbrev,
			EraNames:            []string{"AD"},
			ShortDatePattern:    "dd/MM/yyyy",
			LongDatePattern:     "dd MMMM yyyy",
			ShortTimePattern:    "HH:mm",
			LongTimePattern:     "HH:mm:ss",
			FullDateTimePattern: "dd MMMM yyyy HH:mm:ss",
			MonthDayPattern:     "d MMMM",
			YearMonthPattern:    "MMMM yyyy",
		},
	},

	{
		tag:  language.MustParse("fr-FR"),
		name: "fr-FR",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ",", GroupSeparator: " ",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "AM", PMDesignator: "PM",
			DateSeparator: "/", TimeSeparator: ":",
			DayNames:            [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			AbbreviatedDayNames: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
			MonthNames: [13]string{"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre", ""},
			AbbreviatedMonthNames: [13]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
				"juil.", "août", "sept.", "oct.", "nov.", "déc.", ""},
			EraNames:            []string{"ap. J.-C."},
			ShortDatePattern:    "dd/MM/yyyy",
			LongDatePattern:     "dddd d MMMM yyyy",
			ShortTimePattern:    "HH:mm",
			LongTimePattern:     "HH:mm:ss",
			FullDateTimePattern: "dddd d MMMM yyyy HH:mm:ss",
			MonthDayPattern:     "d MMMM",
			YearMonthPattern:    "MMMM yyyy",
		},
	},

	{
		tag:  language.MustParse("de-DE"),
		name: "de-DE",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ",", GroupSeparator: ".",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "AM", PMDesignator: "PM",
			DateSeparator: ".", TimeSeparator: ":",
			DayNames:            [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			AbbreviatedDayNames: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
			MonthNames: [13]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember", ""},
			AbbreviatedMonthNames: [13]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
				"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.", ""},
			EraNames:            []string{"n. Chr."},
			ShortDatePattern:    "dd.MM.yyyy",
			LongDatePattern:     "dddd, d. MMMM yyyy",
			ShortTimePattern:    "HH:mm",
			LongTimePattern:     "HH:mm:ss",
			FullDateTimePattern: "dddd, d. MMMM yyyy HH:mm:ss",
			MonthDayPattern:     "d. MMMM",
			YearMonthPattern:    "MMMM yyyy",
		},
	},

	{
		tag:  language.MustParse("ru-RU"),
		name: "ru-RU",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ",", GroupSeparator: " ",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "", PMDesignator: "",
			DateSeparator: ".", TimeSeparator: ":",
			DayNames:            [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
			AbbreviatedDayNames: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
			MonthNames: [13]string{"январь", "февраль", "март", "апрель", "май", "июнь",
				"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь", ""},
			AbbreviatedMonthNames: [13]string{"янв", "фев", "мар", "апр", "май", "июн",
				"июл", "авг", "сен", "окт", "ноя", "дек", ""},
			MonthGenitiveNames: [13]string{"января", "февраля", "марта", "апреля", "мая", "июня",
				"июля", "августа", "сентября", "октября", "ноября", "декабря", ""},
			AbbreviatedMonthGenitiveNames: [13]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
				"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.", ""},
			EraNames:            []string{"н. э."},
			ShortDatePattern:    "dd.MM.yyyy",
			LongDatePattern:     "d MMMM yyyy 'г.'",
			ShortTimePattern:    "H:mm",
			LongTimePattern:     "H:mm:ss",
			FullDateTimePattern: "d MMMM yyyy 'г.' H:mm:ss",
			MonthDayPattern:     "d MMMM",
			YearMonthPattern:    "MMMM yyyy",
			UseGenitiveMonth:    true,
		},
	},

	{
		tag:  language.MustParse("ja-JP"),
		name: "ja-JP",
		nf: &NumberFormat{
			NegativeSign: "-", PositiveSign: "+", DecimalSeparator: ".", GroupSeparator: ",",
			GroupSizes: []int{3}, DecimalDigits: 2,
		},
		dtf: &DateTimeFormat{
			Calendar:     calendar.Gregorian,
			AMDesignator: "午前", PMDesignator: "午後",
			DateSeparator: "/", TimeSeparator: ":",
			DayNames:            [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
			AbbreviatedDayNames: [7]string{"日", "月", "火", "水", "木", "金", "土"},
			MonthNames: [13]string{"1月", "2月", "3月", "4月", "5月", "6月",
				"7月", "8月", "9月", "10月", "11月", "12月", ""},
			AbbreviatedMonthNames: [13]string{"1月", "2月", "3月", "4月", "5月", "6月",
				"7月", "8月", "9月", "10月", "11月", "12月", ""},
			EraNames:            []string{"西暦"},
			ShortDatePattern:    "yyyy/MM/dd",
			LongDatePattern:     "yyyy年M月d日",
			ShortTimePattern:    "H:mm",
			LongTimePattern:     "H:mm:ss",
			FullDateTimePattern: "yyyy年M月d日 H:mm:ss",
			MonthDayPattern:     "M月d日",
			YearMonthPattern:    "yyyy年M月",
		},
	},
}

// calendarOverrides patch a culture's date/time data when a non-default
// calendar is selected with WithCalendar.
var calendarOverrides = map[calendarKey]func(dtf *DateTimeFormat){
	{"ja-JP", calendar.JapaneseID}: func(dtf *DateTimeFormat) {
		dtf.EraNames = []string{"明治", "大正", "昭和", "平成", "令和"}
		dtf.ShortDatePattern = "gg y/M/d"
		dtf.LongDatePattern = "ggy'年'M'月'd'日'"
		dtf.FullDateTimePattern = "ggy'年'M'月'd'日' H:mm:ss"
		dtf.YearMonthPattern = "ggy'年'M'月'"
	},
	{"", calendar.JapaneseID}: func(dtf *DateTimeFormat) {
		dtf.EraNames = []string{"Meiji", "Taisho", "Showa", "Heisei", "Reiwa"}
	},
}
