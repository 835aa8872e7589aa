package crypto

import (
	stded25519 "crypto/ed25519"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// KeyBytes returns the raw bytes of key material given either as bytes or
// as a hex string. A nil or empty value yields nil with no error so callers
// can report their own missing-key error.
func KeyBytes(v any) ([]byte, error) {
	var b []byte
	switch k := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		b = k
	case ed25519.PrivateKey:
		b = k
	case ed25519.PublicKey:
		b = k
	case stded25519.PrivateKey:
		b = k
	case stded25519.PublicKey:
		b = k
	case string:
		decoded, err := HexToBytes(k)
		if err != nil {
			return nil, err
		}
		b = decoded
	default:
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidInputType,
			"key must be bytes or a hex string, got %T", v)
	}

	if len(b) == 0 {
		return nil, nil
	}
	return b, nil
}

// SecretKey converts key material to an expanded Ed25519 secret key.
// A 32-byte value is treated as the seed.
func SecretKey(v any) (ed25519.PrivateKey, error) {
	b, err := KeyBytes(v)
	if err != nil || b == nil {
		return nil, err
	}

	switch len(b) {
	case SecretKeySize:
		return ed25519.PrivateKey(b), nil
	case SigningSeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	default:
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength,
			"secret key must be %d or %d bytes, got %d", SecretKeySize, SigningSeedSize, len(b))
	}
}

// PublicKey converts key material to an Ed25519 public key.
func PublicKey(v any) (ed25519.PublicKey, error) {
	b, err := KeyBytes(v)
	if err != nil || b == nil {
		return nil, err
	}

	if len(b) != PublicKeySize {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength,
			"public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}
