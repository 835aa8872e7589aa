package httpsig

import (
	"strings"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/sigkit/internal/crypto"
	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// Sign signs every header in h, in order, with the Ed25519 secret key and
// returns the descriptor string. secretKey is anything crypto.SecretKey
// accepts.
func Sign(keyID string, secretKey any, h Headers) (string, error) {
	priv, err := crypto.SecretKey(secretKey)
	if err != nil {
		return "", err
	}
	if priv == nil {
		return "", cryptoerr.ErrMissingKey
	}
	if keyID == "" {
		return "", cryptoerr.ErrMissingKeyID
	}
	if len(h) == 0 {
		return "", cryptoerr.ErrMissingHeaders
	}

	names := h.Names()
	message := buildMessage(names, func(name string) string {
		v, _ := h.Get(name)
		return v
	})

	sig := ed25519.Sign(priv, message)

	d := Descriptor{
		KeyID:     keyID,
		Algorithm: crypto.AlgorithmEd25519,
		Headers:   names,
		Signature: crypto.ToBase64(sig),
	}
	return d.String(), nil
}

// buildMessage constructs the signed message: one "name: value" line per
// header, joined by newlines with no trailing newline.
func buildMessage(names []string, value func(string) string) []byte {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value(name))
	}
	return []byte(b.String())
}
