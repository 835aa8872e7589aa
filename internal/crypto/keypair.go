package crypto

import (
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// Keypair represents an Ed25519 signing keypair.
type Keypair struct {
	// SecretKey is the expanded secret key: seed followed by public key.
	SecretKey []byte
	// PublicKey is the raw public key.
	PublicKey []byte
}

// GenerateSeed returns size random bytes from the package random source.
func GenerateSeed(size int) ([]byte, error) {
	if size <= 0 {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength, "seed size must be positive, got %d", size)
	}
	return RandomBytes(size)
}

// RandomBytes reads n bytes from the package random source.
func RandomBytes(n int) ([]byte, error) {
	return readRandom(randSource(randReader), n)
}

// DeriveSigningKeysFromSeed derives an Ed25519 keypair from seed and an
// optional salt. The result depends only on its inputs.
func DeriveSigningKeysFromSeed(seed, salt []byte) (*Keypair, error) {
	if seed == nil {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidInputType, "seed must be a byte slice")
	}

	okm, err := HKDF(seed, hkdfSigningInfo, SigningSeedSize, salt)
	if err != nil {
		return nil, err
	}

	priv := ed25519.NewKeyFromSeed(okm)
	return newKeypair(priv), nil
}

// KeypairFromSecretKey reconstructs a keypair from a 64-byte secret key or
// a 32-byte seed. The public key is the last 32 bytes of the secret key.
func KeypairFromSecretKey(secretKey any) (*Keypair, error) {
	priv, err := SecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	if priv == nil {
		return nil, cryptoerr.ErrMissingKey
	}
	return newKeypair(priv), nil
}

// GenerateKeypair creates a keypair from a fresh DefaultSeedSize seed.
func GenerateKeypair() (*Keypair, error) {
	seed, err := GenerateSeed(DefaultSeedSize)
	if err != nil {
		return nil, err
	}
	return DeriveSigningKeysFromSeed(seed, nil)
}

func newKeypair(priv ed25519.PrivateKey) *Keypair {
	secret := make([]byte, SecretKeySize)
	copy(secret, priv)

	public := make([]byte, PublicKeySize)
	copy(public, priv[SigningSeedSize:])

	return &Keypair{SecretKey: secret, PublicKey: public}
}

// Sign returns the detached signature of message.
func (k *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(k.SecretKey), message)
}

// Verify reports whether sig is a valid signature of message under the
// keypair's public key.
func (k *Keypair) Verify(message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(k.PublicKey), message, sig)
}

// SecretKeyHex returns the secret key as hex.
func (k *Keypair) SecretKeyHex() string {
	return BytesToHex(k.SecretKey)
}

// PublicKeyHex returns the public key as hex.
func (k *Keypair) PublicKeyHex() string {
	return BytesToHex(k.PublicKey)
}

func readRandom(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, cryptoerr.Errorf(cryptoerr.ErrRandomSource, "read %d bytes: %v", n, err)
	}
	return b, nil
}
