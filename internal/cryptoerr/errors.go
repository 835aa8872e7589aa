// Package cryptoerr provides the error kinds shared by the sigkit packages.
package cryptoerr

import (
	"errors"
	"fmt"
)

// Error kinds for errors.Is() checks
var (
	// ErrInvalidInputType is returned when a value has the wrong shape,
	// for example a key given as an unsupported Go type.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrInvalidLength is returned when a length parameter or a buffer size
	// is out of range.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidBound is returned when a sampling bound is out of range.
	ErrInvalidBound = errors.New("invalid bound")

	// ErrInvalidFormat is returned when textual input cannot be decoded.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrMissingField is returned when a required value is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedAlgorithm is returned when a signature descriptor names
	// an algorithm other than ed25519.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm, use ed25519")

	// ErrUnrecognizedPhraseLength is returned when a passphrase has a word
	// count that matches no codec.
	ErrUnrecognizedPhraseLength = errors.New("unrecognized passphrase length")

	// ErrRandomSource is returned when the random source fails or keeps
	// producing rejected samples.
	ErrRandomSource = errors.New("random source failure")
)

// Specific errors. Each unwraps to one of the kinds above.
var (
	ErrMissingKey             = newKindError("secret key is required", ErrMissingField)
	ErrMissingKeyID           = newKindError("key id is required", ErrMissingField)
	ErrMissingHeaders         = newKindError("headers are required", ErrMissingField)
	ErrMissingPublicKey       = newKindError("public key is required", ErrMissingField)
	ErrMissingSignatureHeader = newKindError("header signature is required", ErrMissingField)
	ErrCodecUnavailable       = newKindError("passphrase codec is not configured", ErrMissingField)
	ErrMalformedDescriptor    = newKindError("malformed signature descriptor", ErrInvalidFormat)
)

// KindError is a specific error belonging to a broader error kind.
type KindError struct {
	Message string
	Kind    error
}

func newKindError(msg string, kind error) *KindError {
	return &KindError{Message: msg, Kind: kind}
}

func (e *KindError) Error() string {
	return e.Message
}

// Unwrap returns the error kind.
func (e *KindError) Unwrap() error {
	return e.Kind
}

// Errorf wraps err with a formatted detail message, keeping errors.Is()
// matching on err.
func Errorf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
