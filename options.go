package sigkit

import (
	"io"
	"log/slog"
	"strings"

	"github.com/vaultsandbox/sigkit/internal/crypto"
	"github.com/vaultsandbox/sigkit/internal/passphrase"
)

// DefaultMaxAttempts is how many rejected draws Uniform tolerates before
// reporting a broken random source.
const DefaultMaxAttempts = crypto.DefaultMaxAttempts

// samplerConfig holds configuration for a sampler.
type samplerConfig struct {
	reader      io.Reader
	maxAttempts int
}

// passphraseConfig holds configuration for a passphrase encoder.
type passphraseConfig struct {
	bip39    passphrase.Codec
	niceware passphrase.Codec
}

// requestConfig holds configuration for request verification.
type requestConfig struct {
	logger          *slog.Logger
	requiredHeaders []string
}

// SamplerOption configures a Sampler.
type SamplerOption func(*samplerConfig)

// PassphraseOption configures a PassphraseEncoder.
type PassphraseOption func(*passphraseConfig)

// RequestOption configures VerifyRequest.
type RequestOption func(*requestConfig)

// WithRandReader sets the random byte source. Default: crypto/rand.Reader
func WithRandReader(r io.Reader) SamplerOption {
	return func(c *samplerConfig) {
		c.reader = r
	}
}

// WithMaxAttempts sets how many rejected draws Uniform tolerates.
// Values below 1 are ignored.
// Default: 1024
func WithMaxAttempts(n int) SamplerOption {
	return func(c *samplerConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithBip39Codec replaces the bip39 codec. Passing nil disables bip39.
func WithBip39Codec(codec PassphraseCodec) PassphraseOption {
	return func(c *passphraseConfig) {
		c.bip39 = codec
	}
}

// WithNicewareCodec sets the niceware codec. Without it, niceware phrases
// fail with ErrCodecUnavailable.
func WithNicewareCodec(codec PassphraseCodec) PassphraseOption {
	return func(c *passphraseConfig) {
		c.niceware = codec
	}
}

// WithLogger sets the logger that records rejected requests.
// Default: discard
func WithLogger(logger *slog.Logger) RequestOption {
	return func(c *requestConfig) {
		c.logger = logger
	}
}

// WithRequiredHeaders rejects descriptors that do not sign every one of
// names. Names are compared in lower case.
func WithRequiredHeaders(names ...string) RequestOption {
	return func(c *requestConfig) {
		for _, name := range names {
			c.requiredHeaders = append(c.requiredHeaders, strings.ToLower(name))
		}
	}
}
