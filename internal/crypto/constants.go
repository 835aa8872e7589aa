package crypto

import "github.com/cloudflare/circl/sign/ed25519"

const (
	// HashSize is the digest size in bytes of every supported hash.
	HashSize = 64
	// BlockSize is the block size in bytes of every supported hash.
	BlockSize = 128

	// MaxHKDFLength is the largest output HKDF can produce (RFC 5869).
	MaxHKDFLength = 255 * HashSize

	// DefaultSeedSize is the recommended seed size in bytes.
	DefaultSeedSize = 32
	// DefaultSaltSize is the recommended HKDF salt size in bytes.
	DefaultSaltSize = 64

	// SigningSeedSize is the size of an Ed25519 seed in bytes.
	SigningSeedSize = ed25519.SeedSize
	// SecretKeySize is the size of an expanded Ed25519 secret key in bytes
	// (seed followed by public key).
	SecretKeySize = ed25519.PrivateKeySize
	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the size of an Ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize

	// MaxUniformBound is the largest bound accepted by Sampler.Uniform.
	MaxUniformBound = 1 << 53

	// DefaultMaxAttempts caps rejection sampling in Sampler.Uniform.
	DefaultMaxAttempts = 1024
)

// AlgorithmEd25519 is the algorithm tag written into signature descriptors.
const AlgorithmEd25519 = "ed25519"

// hkdfSigningInfo is the HKDF info used for signing key derivation.
var hkdfSigningInfo = []byte{0x00}
