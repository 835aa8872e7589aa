package sigkit

import (
	"github.com/vaultsandbox/sigkit/internal/httpsig"
)

// SignatureHeader is the header name that carries a descriptor in a
// header map.
const SignatureHeader = httpsig.SignatureHeader

// Header is one named header with its values.
type Header = httpsig.Header

// Headers is an ordered header map. Signing follows insertion order and
// multiple values are joined with commas.
type Headers = httpsig.Headers

// Descriptor is a parsed signature descriptor.
type Descriptor = httpsig.Descriptor

// VerifyResult is the outcome of Verify. A signature mismatch sets
// Verified to false and is not an error.
type VerifyResult = httpsig.Result

// NewHeaders builds Headers from alternating names and values.
func NewHeaders(pairs ...string) Headers {
	return httpsig.NewHeaders(pairs...)
}

// Sign signs every header in headers with secretKey and returns the
// descriptor:
//
//	keyId="<id>",algorithm="ed25519",headers="<names>",signature="<base64>"
//
// secretKey may be bytes or hex, as for KeypairFromSecretKey.
func Sign(keyID string, secretKey any, headers Headers) (string, error) {
	desc, err := httpsig.Sign(keyID, secretKey, headers)
	return desc, wrapError("sign", err)
}

// Verify checks the descriptor in the "signature" entry of headers against
// publicKey. The headers the descriptor names are looked up in headers; a
// missing one fails verification.
func Verify(publicKey any, headers Headers) (*VerifyResult, error) {
	res, err := httpsig.Verify(publicKey, headers)
	if err != nil {
		return nil, wrapError("verify", err)
	}
	return res, nil
}

// ParseDescriptor parses a signature descriptor without verifying it.
func ParseDescriptor(s string) (*Descriptor, error) {
	d, err := httpsig.ParseDescriptor(s)
	if err != nil {
		return nil, wrapError("parse descriptor", err)
	}
	return d, nil
}

// VerificationError returns a *SignatureVerificationError when res did
// not verify, and nil otherwise.
func VerificationError(res *VerifyResult) error {
	if res == nil || res.Verified {
		return nil
	}
	return &SignatureVerificationError{KeyID: res.KeyID, Headers: res.Headers}
}
