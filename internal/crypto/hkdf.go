package crypto

import (
	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// HKDF derives length bytes of output keying material from ikm using
// HKDF-SHA-512 (RFC 5869). An empty salt is replaced by HashSize zero bytes.
func HKDF(ikm, info []byte, length int, salt []byte) ([]byte, error) {
	return HKDFWith(HashSHA512, ikm, info, length, salt)
}

// HKDFWith is HKDF over h.
func HKDFWith(h Hash, ikm, info []byte, length int, salt []byte) ([]byte, error) {
	if length < 0 || length > MaxHKDFLength {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength,
			"extract length %d outside [0, %d]", length, MaxHKDFLength)
	}

	prk := Extract(h, ikm, salt)
	return expand(h, prk, info, length), nil
}

// Extract returns the pseudorandom key for ikm and salt.
func Extract(h Hash, ikm, salt []byte) []byte {
	if len(salt) == 0 {
		salt = make([]byte, HashSize)
	}
	return HMACWith(h, ikm, salt)
}

// expand fills length bytes from prk, computing only the blocks needed.
func expand(h Hash, prk, info []byte, length int) []byte {
	okm := make([]byte, 0, length)
	var prev []byte
	input := make([]byte, 0, HashSize+len(info)+1)

	for counter := 1; len(okm) < length; counter++ {
		input = append(input[:0], prev...)
		input = append(input, info...)
		input = append(input, byte(counter))
		prev = HMACWith(h, input, prk)

		remaining := length - len(okm)
		if len(prev) > remaining {
			return append(okm, prev[:remaining]...)
		}
		okm = append(okm, prev...)
	}

	return okm
}
