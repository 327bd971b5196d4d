// Package entropy provides dice-roll sources for the trading core. Every
// stochastic operation takes a Source so callers can reproduce exact
// sequences; true randomness via random.org is available for tables that
// want it, falling back to crypto/rand when the API is unavailable.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Source supplies the rolls the trading core consumes.
type Source interface {
	// D100 returns a uniform integer in [1,100].
	D100() int
	// Float returns a uniform float64 in [0,1).
	Float() float64
}

// Seeded is a deterministic Source over math/rand, for reproducible sessions
// and tests.
type Seeded struct {
	rng *mathrand.Rand
}

// NewSeeded creates a deterministic source from a seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (s *Seeded) D100() int      { return s.rng.Intn(100) + 1 }
func (s *Seeded) Float() float64 { return s.rng.Float64() }

// Crypto is a Source backed by crypto/rand. Zero value is ready to use.
type Crypto struct{}

func (Crypto) D100() int      { return int(cryptoRandFloat()*100) + 1 }
func (Crypto) Float() float64 { return cryptoRandFloat() }

// cryptoRandFloat generates a random float64 in [0,1) using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Scripted replays a fixed sequence of d100 rolls, then falls back to the
// last roll. Float is derived from the same sequence. Test helper.
type Scripted struct {
	Rolls []int
	next  int
}

func (s *Scripted) D100() int {
	if len(s.Rolls) == 0 {
		return 1
	}
	if s.next >= len(s.Rolls) {
		return s.Rolls[len(s.Rolls)-1]
	}
	roll := s.Rolls[s.next]
	s.next++
	return roll
}

func (s *Scripted) Float() float64 {
	return float64(s.D100()-1) / 100.0
}
