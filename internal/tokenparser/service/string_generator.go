package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// DefaultMaxOutputSize is the output cap of a generator built without WithMaxOutputSize.
const DefaultMaxOutputSize = 1 << 20

// StringGenerator evaluates `[TYPES-LENGTH(-LINES-N)?]` tokens into generated strings.
type StringGenerator struct {
	random        RandomSource
	maxOutputSize int
}

// StringGeneratorOption configures a StringGenerator.
type StringGeneratorOption func(*StringGenerator)

// WithRandomSource sets the source characters are drawn from.
func WithRandomSource(random RandomSource) StringGeneratorOption {
	return func(g *StringGenerator) {
		if random != nil {
			g.random = random
		}
	}
}

// WithMaxOutputSize caps the number of characters a token may generate across all
// lines, separators excluded. Zero or a negative value disables the cap.
func WithMaxOutputSize(size int) StringGeneratorOption {
	return func(g *StringGenerator) {
		g.maxOutputSize = size
	}
}

// NewStringGenerator creates a StringGenerator drawing from crypto/rand and capped at
// DefaultMaxOutputSize unless options say otherwise.
func NewStringGenerator(opts ...StringGeneratorOption) *StringGenerator {
	g := &StringGenerator{random: NewCryptoRandomSource(), maxOutputSize: DefaultMaxOutputSize}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsValidDynamicStringToken reports whether token matches the dynamic string grammar.
func (g *StringGenerator) IsValidDynamicStringToken(token string) bool {
	_, ok := matchDynamicString(token)
	return ok
}

// ParseCharacterClassSpec parses and validates token without generating anything.
func (g *StringGenerator) ParseCharacterClassSpec(token string) (domain.CharacterClassSpec, error) {
	m, ok := matchDynamicString(token)
	if !ok {
		return domain.CharacterClassSpec{}, domain.NewParseError(token, "")
	}

	spec := domain.CharacterClassSpec{Lines: 1}
	seen := make(map[domain.CharacterClass]struct{}, len(m.types))
	for _, t := range m.types {
		class := domain.CharacterClass(t)
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}
		spec.Classes = append(spec.Classes, class)
	}

	if m.length == domain.LengthAll {
		spec.All = true
	} else {
		length, err := strconv.Atoi(m.length)
		if err != nil || length <= 0 {
			return domain.CharacterClassSpec{}, domain.NewParseError(token, "Invalid length in token")
		}
		spec.Length = length
	}

	if m.lines != "" {
		lines, err := strconv.Atoi(m.lines)
		if err != nil || lines <= 0 {
			return domain.CharacterClassSpec{}, domain.NewParseError(token, "Invalid line count in token")
		}
		spec.Lines = lines
	}

	return spec, nil
}

// ParseDynamicStringToken generates the string described by token. Lines are
// generated independently and joined by CRLF without a trailing separator. With
// LENGTH=ALL each line is the whole deduplicated pool in pool order.
func (g *StringGenerator) ParseDynamicStringToken(token string) (string, error) {
	spec, err := g.ParseCharacterClassSpec(token)
	if err != nil {
		return "", err
	}

	pool := []rune(spec.Pool())
	if len(pool) == 0 {
		return "", domain.NewParseError(token, "No valid character types found in token")
	}

	lineLength := spec.Length
	if spec.All {
		lineLength = len(pool)
	}
	if g.maxOutputSize > 0 && lineLength > g.maxOutputSize/spec.Lines {
		return "", domain.NewParseError(
			token,
			fmt.Sprintf("generated string exceeds maximum size of %d characters", g.maxOutputSize),
		)
	}

	var b strings.Builder
	for line := 0; line < spec.Lines; line++ {
		if line > 0 {
			b.WriteString(domain.LineSeparator)
		}
		if spec.All {
			b.WriteString(string(pool))
			continue
		}
		if err := g.writeRandom(&b, pool, lineLength); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func (g *StringGenerator) writeRandom(b *strings.Builder, pool []rune, length int) error {
	for i := 0; i < length; i++ {
		idx, err := g.random.IntN(len(pool))
		if err != nil {
			return fmt.Errorf("failed to generate random character: %w", err)
		}
		b.WriteRune(pool[idx])
	}
	return nil
}
