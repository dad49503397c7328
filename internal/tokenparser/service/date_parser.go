package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// DateParser evaluates full-form, month boundary and range date tokens.
type DateParser struct {
	now func() time.Time
}

// DateParserOption configures a DateParser.
type DateParserOption func(*DateParser)

// WithClock sets the clock anchors are resolved against.
func WithClock(now func() time.Time) DateParserOption {
	return func(p *DateParser) {
		if now != nil {
			p.now = now
		}
	}
}

// NewDateParser creates a DateParser that resolves anchors against time.Now unless
// another clock is supplied.
func NewDateParser(opts ...DateParserOption) *DateParser {
	p := &DateParser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsValidDateToken reports whether token is a bracketed full-form or month boundary token.
// Range tokens are not single date tokens and are rejected.
func (p *DateParser) IsValidDateToken(token string) bool {
	inner, ok := unwrapToken(token)
	if !ok {
		return false
	}
	if _, ok := matchFullDate(inner); ok {
		return true
	}
	_, ok = matchMonthBoundary(inner)
	return ok
}

// ParseDateToken evaluates a single date token into a UTC date.
func (p *DateParser) ParseDateToken(token string) (time.Time, error) {
	inner, ok := unwrapToken(token)
	if !ok {
		return time.Time{}, domain.NewParseError(token, "")
	}

	if m, ok := matchFullDate(inner); ok {
		return p.evaluateFullDate(token, m)
	}
	if m, ok := matchMonthBoundary(inner); ok {
		return p.evaluateMonthBoundary(token, m)
	}

	return time.Time{}, domain.NewParseError(token, "unrecognised date token")
}

// ParseDateRangeToken evaluates `[<a><-><b>]`. Each side goes through ParseDateToken
// on its own; Start is not required to precede End.
func (p *DateParser) ParseDateRangeToken(token string) (domain.DateRange, error) {
	inner, ok := unwrapToken(token)
	if !ok {
		return domain.DateRange{}, domain.NewParseError(token, "")
	}

	parts := strings.Split(inner, domain.RangeSeparator)
	if len(parts) != 2 {
		return domain.DateRange{}, domain.NewParseError(
			token,
			fmt.Sprintf("date range must have 2 parts, found %d", len(parts)),
		)
	}

	start, err := p.ParseDateToken(wrapToken(parts[0]))
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := p.ParseDateToken(wrapToken(parts[1]))
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.DateRange{Start: start, End: end}, nil
}

// Evaluate dispatches token to the full-form, month boundary or range evaluator,
// in that order. A token matching none of them is an error.
func (p *DateParser) Evaluate(token string) (domain.DateValue, error) {
	inner, ok := unwrapToken(token)
	if !ok {
		return domain.DateValue{}, domain.NewParseError(token, "")
	}

	if m, ok := matchFullDate(inner); ok {
		date, err := p.evaluateFullDate(token, m)
		return domain.DateValue{Date: date}, err
	}
	if m, ok := matchMonthBoundary(inner); ok {
		date, err := p.evaluateMonthBoundary(token, m)
		return domain.DateValue{Date: date}, err
	}
	if strings.Contains(inner, domain.RangeSeparator) {
		dateRange, err := p.ParseDateRangeToken(token)
		if err != nil {
			return domain.DateValue{}, err
		}
		return domain.DateValue{Date: dateRange.Start, Range: &dateRange}, nil
	}

	return domain.DateValue{}, domain.NewParseError(token, "unrecognised date token")
}

func (p *DateParser) evaluateFullDate(token string, m fullDateMatch) (time.Time, error) {
	full, err := toFullDate(token, m)
	if err != nil {
		return time.Time{}, err
	}

	offset, _ := full.Anchor.DayOffset()
	date := domain.MidnightUTC(p.now()).AddDate(0, 0, offset)
	if !domain.InSupportedRange(date) {
		return time.Time{}, domain.NewParseError(token, fmt.Sprintf("anchor %s is out of range", full.Anchor))
	}
	for i, adj := range full.Adjustments {
		date = adj.Apply(date)
		if !domain.InSupportedRange(date) {
			raw := m.adjustments[i]
			return time.Time{}, domain.NewParseError(
				token,
				fmt.Sprintf(
					"invalid adjustment value %c%s%s: date leaves years %04d-%04d",
					raw.sign, raw.magnitude, raw.unit, domain.MinYear, domain.MaxYear,
				),
			)
		}
	}
	return date, nil
}

func toFullDate(token string, m fullDateMatch) (domain.FullDate, error) {
	anchor := domain.Anchor(m.anchor)
	if _, ok := anchor.DayOffset(); !ok {
		return domain.FullDate{}, domain.NewParseError(token, fmt.Sprintf("unrecognised anchor %s", m.anchor))
	}

	full := domain.FullDate{Anchor: anchor, Adjustments: make([]domain.Adjustment, 0, len(m.adjustments))}
	for _, raw := range m.adjustments {
		unit := domain.DateUnit(raw.unit)
		if !unit.Validate() {
			return domain.FullDate{}, domain.NewParseError(token, fmt.Sprintf("unrecognised date unit %s", raw.unit))
		}

		magnitude, err := strconv.Atoi(raw.magnitude)
		if err != nil || magnitude > domain.MaxMagnitude[unit] {
			return domain.FullDate{}, domain.NewParseError(
				token,
				fmt.Sprintf("invalid adjustment value %s", raw.magnitude),
			)
		}

		sign := 1
		if raw.sign == '-' {
			sign = -1
		}
		full.Adjustments = append(full.Adjustments, domain.Adjustment{Sign: sign, Magnitude: magnitude, Unit: unit})
	}
	return full, nil
}

func (p *DateParser) evaluateMonthBoundary(token string, m monthBoundaryMatch) (time.Time, error) {
	month, ok := domain.MonthByName(m.month)
	if !ok {
		return time.Time{}, domain.NewParseError(token, fmt.Sprintf("unrecognised month %s", m.month))
	}

	year, err := strconv.Atoi(m.year)
	if err != nil || year < domain.MinYear || year > domain.MaxYear {
		return time.Time{}, domain.NewParseError(
			token,
			fmt.Sprintf("invalid year %s, expected %04d-%04d", m.year, domain.MinYear, domain.MaxYear),
		)
	}

	boundary := domain.MonthBoundary{Edge: domain.MonthEdge(m.edge), Month: month, Year: year}
	return boundary.Date(), nil
}
