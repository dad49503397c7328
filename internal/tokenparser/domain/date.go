package domain

import "time"

// Dates are limited to the years DateLayout can write and read back.
const (
	MinYear = 0
	MaxYear = 9999
)

// MaxMagnitude is the largest magnitude per unit that can move a date anywhere
// within [MinYear, MaxYear] without overflowing calendar arithmetic.
var MaxMagnitude = map[DateUnit]int{
	UnitYear:  MaxYear - MinYear + 1,
	UnitMonth: (MaxYear - MinYear + 1) * 12,
	UnitDay:   (MaxYear - MinYear + 1) * 366,
}

// InSupportedRange reports whether t falls within [MinYear, MaxYear].
func InSupportedRange(t time.Time) bool {
	year := t.UTC().Year()
	return year >= MinYear && year <= MaxYear
}

// Adjustment is one signed, unit-tagged delta of a full-form date token.
type Adjustment struct {
	Sign      int
	Magnitude int
	Unit      DateUnit
}

// Delta returns the signed magnitude.
func (a Adjustment) Delta() int {
	return a.Sign * a.Magnitude
}

// Apply adds the adjustment to date using calendar arithmetic. Overflowing days
// are normalized into the following month, so the order of adjustments matters.
func (a Adjustment) Apply(date time.Time) time.Time {
	switch a.Unit {
	case UnitYear:
		return date.AddDate(a.Delta(), 0, 0)
	case UnitMonth:
		return date.AddDate(0, a.Delta(), 0)
	case UnitDay:
		return date.AddDate(0, 0, a.Delta())
	default:
		return date
	}
}

// FullDate is a parsed `[ANCHOR{+/-N UNIT}*]` token.
type FullDate struct {
	Anchor      Anchor
	Adjustments []Adjustment
}

// MonthBoundary is a parsed `[START|END-MONTH-YEAR]` token.
type MonthBoundary struct {
	Edge  MonthEdge
	Month time.Month
	Year  int
}

// Date resolves the boundary to UTC midnight of the first or last day of the month.
func (m MonthBoundary) Date() time.Time {
	if m.Edge == EdgeEnd {
		// Day 0 of the next month is the last day of this one.
		return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DateRange is the result of a `[<a><-><b>]` token. Start is not required to
// precede End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// MidnightUTC truncates t to 00:00:00.000 of its UTC calendar day.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateValue is the result of evaluating any date token: a single date, or a
// range when the token used the `<->` separator.
type DateValue struct {
	Date  time.Time
	Range *DateRange
}

// IsRange reports whether the value holds a range.
func (v DateValue) IsRange() bool {
	return v.Range != nil
}
