package service

import (
	"strings"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// dynamicStringMatch is the capture of `TYPE(-TYPE)*-LENGTH(-LINES-N)?`.
type dynamicStringMatch struct {
	types  []string
	length string
	lines  string
}

func isCharacterClass(section string) bool {
	for _, c := range domain.CharacterClasses {
		if section == string(c) {
			return true
		}
	}
	return false
}

func isDigits(section string) bool {
	if section == "" {
		return false
	}
	for i := 0; i < len(section); i++ {
		if !isDigit(section[i]) {
			return false
		}
	}
	return true
}

// matchDynamicString matches a whole bracketed token against the dynamic string grammar.
// Sections are hyphen separated; an empty section (leading, trailing or doubled
// hyphen) never matches.
func matchDynamicString(token string) (dynamicStringMatch, bool) {
	inner, ok := unwrapToken(token)
	if !ok {
		return dynamicStringMatch{}, false
	}

	sections := strings.Split(inner, string(domain.SectionSplitter))
	i := 0

	var m dynamicStringMatch
	for i < len(sections) && isCharacterClass(sections[i]) {
		m.types = append(m.types, sections[i])
		i++
	}
	if len(m.types) == 0 || i >= len(sections) {
		return dynamicStringMatch{}, false
	}

	if sections[i] != domain.LengthAll && !isDigits(sections[i]) {
		return dynamicStringMatch{}, false
	}
	m.length = sections[i]
	i++

	switch len(sections) - i {
	case 0:
		return m, true
	case 2:
		if sections[i] != domain.LinesKeyword || !isDigits(sections[i+1]) {
			return dynamicStringMatch{}, false
		}
		m.lines = sections[i+1]
		return m, true
	default:
		return dynamicStringMatch{}, false
	}
}
