package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

type cryptoRandomSource struct{}

// NewCryptoRandomSource returns a RandomSource backed by crypto/rand.
func NewCryptoRandomSource() RandomSource {
	return cryptoRandomSource{}
}

// IntN returns a uniform integer in [0, n).
func (cryptoRandomSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("n must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %w", err)
	}
	return int(v.Int64()), nil
}

type seededRandomSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededRandomSource returns a deterministic RandomSource. The same seed always
// yields the same sequence, which makes generated strings reproducible.
func NewSeededRandomSource(seed uint64) RandomSource {
	return &seededRandomSource{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a uniform integer in [0, n).
func (s *seededRandomSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("n must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}
