package domain

import "strings"

// CharacterClass names a fixed character pool of dynamic string tokens.
type CharacterClass string

const (
	ClassAlpha       CharacterClass = "ALPHA"
	ClassNumeric     CharacterClass = "NUMERIC"
	ClassPunctuation CharacterClass = "PUNCTUATION"
	ClassSpecial     CharacterClass = "SPECIAL"
)

// Character pools. These are an external contract and must stay byte-exact.
const (
	AlphaChars       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	NumericChars     = "0123456789"
	PunctuationChars = ".,!?;:"
	SpecialChars     = "!@#$%^&*()_+[]{}|;:,.<>?"
)

// CharacterClasses lists the supported classes.
var CharacterClasses = []CharacterClass{ClassAlpha, ClassNumeric, ClassPunctuation, ClassSpecial}

// Chars returns the pool of the class, or "" for an unknown class.
func (c CharacterClass) Chars() string {
	switch c {
	case ClassAlpha:
		return AlphaChars
	case ClassNumeric:
		return NumericChars
	case ClassPunctuation:
		return PunctuationChars
	case ClassSpecial:
		return SpecialChars
	default:
		return ""
	}
}

// CharacterClassSpec is a parsed `[TYPES-LENGTH(-LINES-N)?]` token.
type CharacterClassSpec struct {
	Classes []CharacterClass
	// Length is the number of characters per line; zero when All is set.
	Length int
	// All emits the whole pool once per line.
	All   bool
	Lines int
}

// Pool concatenates the pools of the distinct classes in token order and drops
// characters already contributed by an earlier class.
func (s CharacterClassSpec) Pool() string {
	var b strings.Builder
	seen := make(map[rune]struct{})
	for _, class := range s.Classes {
		for _, r := range class.Chars() {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			b.WriteRune(r)
		}
	}
	return b.String()
}
