package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"math/bits"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// randReader is the random source used for seeds and the default sampler.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// exponentCeiling bounds the geometric exponent drawn by Uniform01.
// emin - 64 for binary64 is -1086; 1088 leaves a margin.
const exponentCeiling = 1088

func randSource(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// Sampler draws uniform samples from a random byte source.
// It is safe for concurrent use if its source is.
type Sampler struct {
	r           io.Reader
	maxAttempts int
}

// NewSampler returns a sampler reading from r. A nil r means the package
// random source.
func NewSampler(r io.Reader) *Sampler {
	return &Sampler{r: r, maxAttempts: DefaultMaxAttempts}
}

// WithMaxAttempts returns a copy of s that gives up after n rejected draws
// in Uniform. Values below 1 keep the current limit.
func (s *Sampler) WithMaxAttempts(n int) *Sampler {
	c := *s
	if n > 0 {
		c.maxAttempts = n
	}
	return &c
}

func (s *Sampler) source() io.Reader {
	if s.r != nil {
		return s.r
	}
	return randSource(randReader)
}

// Uniform returns an integer drawn uniformly from [0, n), 1 <= n <= 2^53.
func (s *Sampler) Uniform(n uint64) (uint64, error) {
	if n == 0 || n > MaxUniformBound {
		return 0, cryptoerr.Errorf(cryptoerr.ErrInvalidBound, "bound must be positive integer at most 2^53, got %d", n)
	}

	// Candidates below threshold would make the low residues more likely.
	threshold := uint64(MaxUniformBound) % n

	var b [7]byte
	for attempt := 0; attempt < s.attempts(); attempt++ {
		if _, err := io.ReadFull(s.source(), b[:]); err != nil {
			return 0, cryptoerr.Errorf(cryptoerr.ErrRandomSource, "read: %v", err)
		}
		l32 := uint64(binary.LittleEndian.Uint32(b[0:4]))
		h21 := uint64(b[4]) | uint64(b[5])<<8 | uint64(b[6]&0x1f)<<16
		x := h21<<32 | l32
		if x >= threshold {
			return x % n, nil
		}
	}

	return 0, cryptoerr.Errorf(cryptoerr.ErrRandomSource, "no sample accepted in %d attempts", s.attempts())
}

func (s *Sampler) attempts() int {
	if s.maxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return s.maxAttempts
}

// Uniform01 returns a float64 in [0, 1] distributed as a uniform real in
// [0, 1] rounded to the nearest float64.
func (s *Sampler) Uniform01() (float64, error) {
	// Draw an exponent with geometric distribution.
	e := 0
	x, err := s.uint32()
	if err != nil {
		return 0, err
	}
	for x == 0 {
		if e >= exponentCeiling {
			return 0, nil
		}
		e += 32
		if x, err = s.uint32(); err != nil {
			return 0, err
		}
	}
	e += bits.LeadingZeros32(x)

	// Draw a normal odd 64-bit significand. The odd low bit breaks
	// rounding ties, which otherwise occur only on a set of measure zero.
	hi, err := s.uint32()
	if err != nil {
		return 0, err
	}
	lo, err := s.uint32()
	if err != nil {
		return 0, err
	}
	sig := uint64(hi|0x80000000)<<32 | uint64(lo|1)

	// float64(sig) lies in [2^63, 2^64]; scale into [1/2, 1] and apply
	// the exponent.
	return math.Ldexp(float64(sig), -64-e), nil
}

func (s *Sampler) uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.source(), b[:]); err != nil {
		return 0, cryptoerr.Errorf(cryptoerr.ErrRandomSource, "read: %v", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// RandomInt returns an integer drawn uniformly from [lo, hi).
// Both bounds must lie in [-2^53, 2^53] and differ by at most 2^53.
func (s *Sampler) RandomInt(lo, hi int64) (int64, error) {
	return randomInt(lo, hi, s.Uniform)
}

func randomInt(lo, hi int64, uniform func(uint64) (uint64, error)) (int64, error) {
	const limit = int64(MaxUniformBound)
	if lo < -limit || hi > limit || lo >= hi {
		return 0, cryptoerr.Errorf(cryptoerr.ErrInvalidBound,
			"bounds must be ascending integers from -2^53 to 2^53, got [%d, %d)", lo, hi)
	}
	if hi-(lo+1) >= limit {
		return 0, cryptoerr.Errorf(cryptoerr.ErrInvalidBound,
			"bounds must not differ by more than 2^53, got [%d, %d)", lo, hi)
	}

	v, err := uniform(uint64(hi - lo))
	if err != nil {
		return 0, err
	}
	return lo + int64(v), nil
}
