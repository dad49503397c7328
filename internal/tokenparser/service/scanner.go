package service

import (
	"strings"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// scanner is a forward-only cursor over the inner content of a token.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// accept consumes lit if the remaining input starts with it.
func (s *scanner) accept(lit string) bool {
	if strings.HasPrefix(s.src[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// acceptByte consumes b if it is the next byte.
func (s *scanner) acceptByte(b byte) bool {
	if !s.eof() && s.src[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

// acceptAny consumes the first of the candidates that matches.
func (s *scanner) acceptAny(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if s.accept(c) {
			return c, true
		}
	}
	return "", false
}

// digits consumes a run of ASCII digits.
func (s *scanner) digits() string {
	start := s.pos
	for !s.eof() && isDigit(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// word consumes a run of [A-Za-z0-9_].
func (s *scanner) word() string {
	start := s.pos
	for !s.eof() && isWordByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return isDigit(b) || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

// unwrapToken strips the surrounding brackets. ok is false when the token is not
// wrapped in a single pair of brackets or is empty inside.
func unwrapToken(token string) (inner string, ok bool) {
	if len(token) < 3 || token[0] != domain.TokenOpen || token[len(token)-1] != domain.TokenClose {
		return "", false
	}
	return token[1 : len(token)-1], true
}

func wrapToken(inner string) string {
	return string(domain.TokenOpen) + inner + string(domain.TokenClose)
}
