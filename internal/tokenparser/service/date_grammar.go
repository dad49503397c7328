package service

import "github.com/allisson/tokenparser/internal/tokenparser/domain"

// rawAdjustment holds the captured text of one `{sign}{N}{UNIT}` section.
type rawAdjustment struct {
	sign      byte
	magnitude string
	unit      string
}

// fullDateMatch is the capture of `ANCHOR([+-]\d+(YEAR|MONTH|DAY))*`.
type fullDateMatch struct {
	anchor      string
	adjustments []rawAdjustment
}

// monthBoundaryMatch is the capture of `(START|END)-(\w+)-(\d{4,})`.
type monthBoundaryMatch struct {
	edge  string
	month string
	year  string
}

func anchorKeywords() []string {
	out := make([]string, 0, len(domain.Anchors))
	for _, a := range domain.Anchors {
		out = append(out, string(a))
	}
	return out
}

func unitKeywords() []string {
	out := make([]string, 0, len(domain.DateUnits))
	for _, u := range domain.DateUnits {
		out = append(out, string(u))
	}
	return out
}

// matchFullDate matches the whole inner content against the full-form grammar.
func matchFullDate(inner string) (fullDateMatch, bool) {
	s := newScanner(inner)

	anchor, ok := s.acceptAny(anchorKeywords()...)
	if !ok {
		return fullDateMatch{}, false
	}

	m := fullDateMatch{anchor: anchor}
	for !s.eof() {
		var adj rawAdjustment
		switch {
		case s.acceptByte('+'):
			adj.sign = '+'
		case s.acceptByte('-'):
			adj.sign = '-'
		default:
			return fullDateMatch{}, false
		}

		adj.magnitude = s.digits()
		if adj.magnitude == "" {
			return fullDateMatch{}, false
		}

		unit, ok := s.acceptAny(unitKeywords()...)
		if !ok {
			return fullDateMatch{}, false
		}
		adj.unit = unit
		m.adjustments = append(m.adjustments, adj)
	}

	return m, true
}

// matchMonthBoundary matches the whole inner content against the month boundary grammar.
func matchMonthBoundary(inner string) (monthBoundaryMatch, bool) {
	s := newScanner(inner)

	edge, ok := s.acceptAny(string(domain.EdgeStart), string(domain.EdgeEnd))
	if !ok || !s.acceptByte(domain.SectionSplitter) {
		return monthBoundaryMatch{}, false
	}

	month := s.word()
	if month == "" || !s.acceptByte(domain.SectionSplitter) {
		return monthBoundaryMatch{}, false
	}

	year := s.digits()
	if len(year) < 4 || !s.eof() {
		return monthBoundaryMatch{}, false
	}

	return monthBoundaryMatch{edge: edge, month: month, year: year}, true
}
