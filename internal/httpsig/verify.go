package httpsig

import (
	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/sigkit/internal/crypto"
	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// Result is the outcome of a verification. A signature mismatch is
// reported through Verified, not as an error.
type Result struct {
	Algorithm string
	Headers   []string
	KeyID     string
	Signature string
	Verified  bool
}

// Verify checks the descriptor in the signature header of h against the
// Ed25519 public key. The message is rebuilt from the header names the
// descriptor lists; a listed header absent from h fails verification.
func Verify(publicKey any, h Headers) (*Result, error) {
	pub, err := crypto.PublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, cryptoerr.ErrMissingPublicKey
	}

	raw, ok := h.Get(SignatureHeader)
	if !ok || raw == "" {
		return nil, cryptoerr.ErrMissingSignatureHeader
	}

	d, err := ParseDescriptor(raw)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.DecodeBase64(d.Signature)
	if err != nil {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMalformedDescriptor, "decode signature: %v", err)
	}

	return &Result{
		Algorithm: d.Algorithm,
		Headers:   d.Headers,
		KeyID:     d.KeyID,
		Signature: d.Signature,
		Verified:  verifyDetached(pub, d.Headers, h, sig),
	}, nil
}

func verifyDetached(pub ed25519.PublicKey, names []string, h Headers, sig []byte) bool {
	if len(sig) != crypto.SignatureSize {
		return false
	}

	missing := false
	message := buildMessage(names, func(name string) string {
		v, ok := h.Get(name)
		if !ok {
			missing = true
		}
		return v
	})
	if missing {
		return false
	}

	return ed25519.Verify(pub, message, sig)
}
