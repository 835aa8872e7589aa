package httpsig

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vaultsandbox/sigkit/internal/crypto"
	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// SignatureHeader is the header carrying the descriptor.
const SignatureHeader = "signature"

// Descriptor fields as they appear on the wire.
const (
	fieldKeyID     = "keyId"
	fieldAlgorithm = "algorithm"
	fieldHeaders   = "headers"
	fieldSignature = "signature"
)

// Descriptor is a parsed signature descriptor.
type Descriptor struct {
	// KeyID lets the verifier look up the public key.
	KeyID string
	// Algorithm is always ed25519 for a valid descriptor.
	Algorithm string
	// Headers lists the signed header names in signing order.
	Headers []string
	// Signature is the standard base64 encoding of the detached signature.
	Signature string
}

// String renders the descriptor in its wire format:
//
//	keyId="<id>",algorithm="ed25519",headers="<names>",signature="<b64>"
func (d Descriptor) String() string {
	return fmt.Sprintf(`%s="%s",%s="%s",%s="%s",%s="%s"`,
		fieldKeyID, d.KeyID,
		fieldAlgorithm, d.Algorithm,
		fieldHeaders, strings.Join(d.Headers, " "),
		fieldSignature, d.Signature)
}

// ParseDescriptor parses a descriptor string. Parts are split on commas,
// each part at its first '=', and all double quotes are removed from the
// value. Empty values count as absent; a repeated field keeps its last
// value.
func ParseDescriptor(s string) (*Descriptor, error) {
	fields := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if value = strings.ReplaceAll(value, `"`, ""); value != "" {
			fields[key] = value
		}
	}

	algorithm := fields[fieldAlgorithm]
	if algorithm == "" {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMalformedDescriptor, "no algorithm was parsed")
	}
	if algorithm != crypto.AlgorithmEd25519 {
		return nil, cryptoerr.Errorf(cryptoerr.ErrUnsupportedAlgorithm, "got %q", algorithm)
	}

	d := &Descriptor{
		KeyID:     fields[fieldKeyID],
		Algorithm: algorithm,
		Signature: fields[fieldSignature],
	}
	if d.Signature == "" {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMalformedDescriptor, "no signature was parsed")
	}
	if d.KeyID == "" {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMalformedDescriptor, "no keyId was parsed")
	}
	names := fields[fieldHeaders]
	if names == "" {
		return nil, cryptoerr.Errorf(cryptoerr.ErrMalformedDescriptor, "no headers were parsed")
	}
	d.Headers = strings.Split(names, " ")

	return d, nil
}

// Missing returns the names in required that the descriptor does not sign.
// Names are compared without regard to case.
func (d *Descriptor) Missing(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !slices.ContainsFunc(d.Headers, func(h string) bool { return strings.EqualFold(h, name) }) {
			missing = append(missing, name)
		}
	}
	return missing
}
