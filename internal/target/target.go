// internal/target/target.go
//
// Target selection for a guessing session.
// Responsibilities:
//   - Draw a hidden integer uniformly from an inclusive range.
//   - Offer a cryptographic source for real play and a seeded,
//     reseedable source for reproducible runs and tests.
//
// A reversed range (low > high) is a programming error; every Provider
// panics on it. Configuration is validated before a Provider is used.
package target

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	mrand "math/rand"
	"sync"
)

// Default bounds for a session.
const (
	DefaultLow  int64 = 1
	DefaultHigh int64 = 100
)

// Provider draws a target from [low, high].
type Provider interface {
	Draw(low, high int64) int64
}

// span returns the number of integers in [low, high] as a big.Int so that
// the full int64 range does not overflow.
func span(low, high int64) *big.Int {
	if low > high {
		panic(fmt.Sprintf("target: invalid range [%d, %d]", low, high))
	}
	n := new(big.Int).Sub(big.NewInt(high), big.NewInt(low))
	return n.Add(n, big.NewInt(1))
}

// offset adds k to low; k is known to be in [0, high-low].
func offset(low int64, k *big.Int) int64 {
	return new(big.Int).Add(big.NewInt(low), k).Int64()
}

// Random draws from crypto/rand.
type Random struct{}

// NewRandom returns a Provider backed by crypto/rand.
func NewRandom() Random { return Random{} }

func (Random) Draw(low, high int64) int64 {
	k, err := rand.Int(rand.Reader, span(low, high))
	if err != nil {
		panic(fmt.Sprintf("target: read entropy: %v", err))
	}
	return offset(low, k)
}

// Seeded draws from a math/rand generator. The same seed always produces
// the same sequence of targets; Reseed restarts the sequence.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded returns a Provider whose output is fully determined by seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Reseed resets the generator to seed.
func (s *Seeded) Reseed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = mrand.New(mrand.NewSource(seed))
}

func (s *Seeded) Draw(low, high int64) int64 {
	n := span(low, high)
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.IsInt64() {
		return low + s.rng.Int63n(n.Int64())
	}
	if !n.IsUint64() {
		// Full int64 range: every 64-bit pattern is a valid value.
		return int64(s.rng.Uint64())
	}
	// Span between 2^63 and 2^64-1: reject the biased tail, then wrap.
	un := n.Uint64()
	limit := math.MaxUint64 - math.MaxUint64%un
	for {
		if v := s.rng.Uint64(); v < limit {
			return int64(uint64(low) + v%un)
		}
	}
}

// Fixed always returns the same value. Used for scripted sessions.
type Fixed int64

func (f Fixed) Draw(low, high int64) int64 {
	span(low, high)
	return int64(f)
}
