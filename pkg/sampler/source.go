package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"

	"golang.org/x/exp/rand"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// cryptoSource reads from the operating system CSPRNG. Seed is a no-op.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("sampler: crypto/rand unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (cryptoSource) Seed(uint64) {}

// NewCryptoRand returns an unpredictable generator backed by crypto/rand. It is safe for concurrent use.
func NewCryptoRand() *rand.Rand {
	return rand.New(cryptoSource{})
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewSeededRand returns a deterministic generator for tests and reproducible runs.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}
