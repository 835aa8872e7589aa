package sigkit

import (
	"github.com/vaultsandbox/sigkit/internal/crypto"
)

// MaxUniformBound is the largest bound Uniform accepts, 2^53.
const MaxUniformBound = crypto.MaxUniformBound

// Sampler draws exactly uniform samples from a random byte source.
// It is safe for concurrent use if its source is.
type Sampler struct {
	s *crypto.Sampler
}

var defaultSampler = NewSampler()

// NewSampler creates a sampler. Without options it reads crypto/rand.
func NewSampler(opts ...SamplerOption) *Sampler {
	cfg := &samplerConfig{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Sampler{s: crypto.NewSampler(cfg.reader).WithMaxAttempts(cfg.maxAttempts)}
}

// Uniform returns an integer uniformly distributed in [0, n).
// n must be in [1, 2^53].
func (s *Sampler) Uniform(n uint64) (uint64, error) {
	v, err := s.s.Uniform(n)
	return v, wrapError("uniform", err)
}

// Uniform01 returns a uniform real in [0, 1] rounded to the nearest
// float64. Both 0 and 1 are possible but vanishingly rare.
func (s *Sampler) Uniform01() (float64, error) {
	v, err := s.s.Uniform01()
	return v, wrapError("uniform01", err)
}

// RandomInt returns an integer uniformly distributed in [lo, hi).
// Both bounds must lie in [-2^53, 2^53] and hi-lo must not exceed 2^53.
func (s *Sampler) RandomInt(lo, hi int64) (int64, error) {
	v, err := s.s.RandomInt(lo, hi)
	return v, wrapError("random int", err)
}

// Uniform draws from [0, n) using crypto/rand.
func Uniform(n uint64) (uint64, error) {
	return defaultSampler.Uniform(n)
}

// Uniform01 draws from [0, 1] using crypto/rand.
func Uniform01() (float64, error) {
	return defaultSampler.Uniform01()
}

// RandomInt draws from [lo, hi) using crypto/rand.
func RandomInt(lo, hi int64) (int64, error) {
	return defaultSampler.RandomInt(lo, hi)
}
