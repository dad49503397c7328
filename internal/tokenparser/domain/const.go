// Package domain defines the value types and fixed tables of the token mini-language:
// date anchors, adjustment units, month boundaries, date ranges and the character
// class pools used by dynamic string tokens.
package domain

import "time"

// Token delimiters and separators.
const (
	TokenOpen       = '['
	TokenClose      = ']'
	RangeSeparator  = "<->"
	LineSeparator   = "\r\n"
	LengthAll       = "ALL"
	LinesKeyword    = "LINES"
	SectionSplitter = '-'
)

// Anchor is the base date keyword of a full-form date token.
type Anchor string

const (
	AnchorToday     Anchor = "TODAY"
	AnchorTomorrow  Anchor = "TOMORROW"
	AnchorYesterday Anchor = "YESTERDAY"
)

// Anchors lists the supported anchors.
var Anchors = []Anchor{AnchorToday, AnchorTomorrow, AnchorYesterday}

// DayOffset returns the number of days the anchor lies from the evaluation day.
func (a Anchor) DayOffset() (int, bool) {
	switch a {
	case AnchorToday:
		return 0, true
	case AnchorTomorrow:
		return 1, true
	case AnchorYesterday:
		return -1, true
	default:
		return 0, false
	}
}

// DateUnit is the calendar unit of an adjustment.
type DateUnit string

const (
	UnitYear  DateUnit = "YEAR"
	UnitMonth DateUnit = "MONTH"
	UnitDay   DateUnit = "DAY"
)

// DateUnits lists the supported units.
var DateUnits = []DateUnit{UnitYear, UnitMonth, UnitDay}

// Validate reports whether the unit is supported.
func (u DateUnit) Validate() bool {
	switch u {
	case UnitYear, UnitMonth, UnitDay:
		return true
	default:
		return false
	}
}

// MonthEdge selects the first or last day of a month.
type MonthEdge string

const (
	EdgeStart MonthEdge = "START"
	EdgeEnd   MonthEdge = "END"
)

// monthIndex maps upper-case English month names to a 0-based index.
var monthIndex = map[string]int{
	"JANUARY":   0,
	"FEBRUARY":  1,
	"MARCH":     2,
	"APRIL":     3,
	"MAY":       4,
	"JUNE":      5,
	"JULY":      6,
	"AUGUST":    7,
	"SEPTEMBER": 8,
	"OCTOBER":   9,
	"NOVEMBER":  10,
	"DECEMBER":  11,
}

// MonthIndex returns the 0-based index of an upper-case month name.
func MonthIndex(name string) (int, bool) {
	idx, ok := monthIndex[name]
	return idx, ok
}

// MonthByName returns the time.Month for an upper-case month name.
func MonthByName(name string) (time.Month, bool) {
	idx, ok := MonthIndex(name)
	if !ok {
		return 0, false
	}
	return time.Month(idx + 1), true
}
