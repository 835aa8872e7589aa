package sigkit

import (
	"github.com/vaultsandbox/sigkit/internal/crypto"
)

// Sizes in bytes.
const (
	// DefaultSeedSize is the recommended seed size.
	DefaultSeedSize = crypto.DefaultSeedSize
	// DefaultSaltSize is the recommended salt size.
	DefaultSaltSize = crypto.DefaultSaltSize
	// SecretKeySize is the size of an expanded Ed25519 secret key.
	SecretKeySize = crypto.SecretKeySize
	// PublicKeySize is the size of an Ed25519 public key.
	PublicKeySize = crypto.PublicKeySize
	// SignatureSize is the size of a detached Ed25519 signature.
	SignatureSize = crypto.SignatureSize
	// MaxHKDFLength is the largest HKDF output, 255 hash blocks.
	MaxHKDFLength = crypto.MaxHKDFLength
)

// Hash is an unkeyed hash with a 64-byte digest and a 128-byte block.
type Hash = crypto.Hash

// Hashes accepted by HMACWith and HKDFWith.
var (
	SHA512     = crypto.HashSHA512
	BLAKE2b512 = crypto.HashBLAKE2b512
)

// Keypair is an Ed25519 signing keypair.
type Keypair struct {
	// SecretKey is the 64-byte expanded secret key: seed then public key.
	SecretKey []byte
	// PublicKey is the 32-byte public key.
	PublicKey []byte
}

func keypairFromInternal(kp *crypto.Keypair) *Keypair {
	return &Keypair{SecretKey: kp.SecretKey, PublicKey: kp.PublicKey}
}

func (k *Keypair) internal() *crypto.Keypair {
	return &crypto.Keypair{SecretKey: k.SecretKey, PublicKey: k.PublicKey}
}

// Sign returns the detached signature of message.
func (k *Keypair) Sign(message []byte) []byte {
	return k.internal().Sign(message)
}

// Verify reports whether sig is a valid signature of message.
func (k *Keypair) Verify(message, sig []byte) bool {
	return k.internal().Verify(message, sig)
}

// SecretKeyHex returns the secret key as hex.
func (k *Keypair) SecretKeyHex() string {
	return crypto.BytesToHex(k.SecretKey)
}

// PublicKeyHex returns the public key as hex.
func (k *Keypair) PublicKeyHex() string {
	return crypto.BytesToHex(k.PublicKey)
}

// HMAC returns HMAC-SHA512 of message under key.
func HMAC(message, key []byte) []byte {
	return crypto.HMAC(message, key)
}

// HMACWith returns the HMAC of message under key using h.
func HMACWith(h Hash, message, key []byte) []byte {
	return crypto.HMACWith(h, message, key)
}

// HKDF derives length bytes from ikm with HKDF-SHA512 (RFC 5869).
// An empty salt means 64 zero bytes. length must not exceed MaxHKDFLength.
func HKDF(ikm, info []byte, length int, salt []byte) ([]byte, error) {
	okm, err := crypto.HKDF(ikm, info, length, salt)
	return okm, wrapError("hkdf", err)
}

// HKDFWith is HKDF over h.
func HKDFWith(h Hash, ikm, info []byte, length int, salt []byte) ([]byte, error) {
	okm, err := crypto.HKDFWith(h, ikm, info, length, salt)
	return okm, wrapError("hkdf", err)
}

// GenerateSeed returns size bytes from crypto/rand.
func GenerateSeed(size int) ([]byte, error) {
	seed, err := crypto.GenerateSeed(size)
	return seed, wrapError("generate seed", err)
}

// DeriveKeypair derives an Ed25519 keypair from seed and an optional salt.
// The same seed and salt always give the same keypair.
func DeriveKeypair(seed, salt []byte) (*Keypair, error) {
	kp, err := crypto.DeriveSigningKeysFromSeed(seed, salt)
	if err != nil {
		return nil, wrapError("derive keypair", err)
	}
	return keypairFromInternal(kp), nil
}

// GenerateKeypair derives a keypair from a fresh random seed.
func GenerateKeypair() (*Keypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, wrapError("generate keypair", err)
	}
	return keypairFromInternal(kp), nil
}

// KeypairFromSecretKey rebuilds a keypair from a 64-byte secret key or its
// 32-byte seed, given as bytes or hex.
func KeypairFromSecretKey(secretKey any) (*Keypair, error) {
	kp, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, wrapError("keypair from secret key", err)
	}
	return keypairFromInternal(kp), nil
}

// KeyBytes returns the raw bytes of key material given as []byte, a hex
// string, or an Ed25519 key from crypto/ed25519 or circl. nil and empty
// values give nil without error.
func KeyBytes(v any) ([]byte, error) {
	b, err := crypto.KeyBytes(v)
	return b, wrapError("key bytes", err)
}

// BytesToHex encodes b as lowercase hex.
func BytesToHex(b []byte) string {
	return crypto.BytesToHex(b)
}

// HexToBytes decodes hex without a 0x prefix. Odd lengths are padded with a
// leading zero.
func HexToBytes(s string) ([]byte, error) {
	b, err := crypto.HexToBytes(s)
	return b, wrapError("hex to bytes", err)
}
