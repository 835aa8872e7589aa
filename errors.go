package sigkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// Error kinds for errors.Is() checks. Every error returned by this package
// matches exactly one kind.
var (
	// ErrInvalidInputType is returned when a value has an unsupported type.
	ErrInvalidInputType = cryptoerr.ErrInvalidInputType

	// ErrInvalidLength is returned when a length or buffer size is out of range.
	ErrInvalidLength = cryptoerr.ErrInvalidLength

	// ErrInvalidBound is returned when a sampling bound is out of range.
	ErrInvalidBound = cryptoerr.ErrInvalidBound

	// ErrInvalidFormat is returned when hex, base64, a phrase or a descriptor
	// cannot be decoded.
	ErrInvalidFormat = cryptoerr.ErrInvalidFormat

	// ErrMissingField is returned when a required value is absent.
	ErrMissingField = cryptoerr.ErrMissingField

	// ErrUnsupportedAlgorithm is returned when a descriptor names an
	// algorithm other than ed25519.
	ErrUnsupportedAlgorithm = cryptoerr.ErrUnsupportedAlgorithm

	// ErrUnrecognizedPhraseLength is returned when a passphrase is neither
	// 16 nor 24 words long.
	ErrUnrecognizedPhraseLength = cryptoerr.ErrUnrecognizedPhraseLength

	// ErrRandomSource is returned when the random source fails.
	ErrRandomSource = cryptoerr.ErrRandomSource
)

// Sentinel errors for errors.Is() checks. Each also matches its kind.
var (
	// ErrMissingKey is returned when no secret key is provided.
	ErrMissingKey = cryptoerr.ErrMissingKey

	// ErrMissingKeyID is returned when signing without a key id.
	ErrMissingKeyID = cryptoerr.ErrMissingKeyID

	// ErrMissingHeaders is returned when there is nothing to sign, or a
	// descriptor does not cover a required header.
	ErrMissingHeaders = cryptoerr.ErrMissingHeaders

	// ErrMissingPublicKey is returned when no public key is provided.
	ErrMissingPublicKey = cryptoerr.ErrMissingPublicKey

	// ErrMissingSignatureHeader is returned when verifying headers that
	// carry no signature descriptor.
	ErrMissingSignatureHeader = cryptoerr.ErrMissingSignatureHeader

	// ErrMalformedDescriptor is returned when a descriptor lacks a field or
	// its signature is not base64.
	ErrMalformedDescriptor = cryptoerr.ErrMalformedDescriptor

	// ErrCodecUnavailable is returned when a phrase needs a codec the
	// encoder was not given.
	ErrCodecUnavailable = cryptoerr.ErrCodecUnavailable

	// ErrSignatureInvalid is matched by SignatureVerificationError.
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// SigkitError is implemented by all errors this package returns.
type SigkitError interface {
	error
	SigkitError() // marker method
}

// Error records a failed operation and its cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// SigkitError implements the SigkitError interface.
func (e *Error) SigkitError() {}

// SignatureVerificationError reports a signature that did not verify.
// Verification itself succeeded; the signature does not match.
type SignatureVerificationError struct {
	KeyID   string
	Headers []string
}

func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("signature verification failed: key %q over headers [%s]",
		e.KeyID, strings.Join(e.Headers, " "))
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureVerificationError) Is(target error) bool {
	return target == ErrSignatureInvalid
}

// SigkitError implements the SigkitError interface.
func (e *SignatureVerificationError) SigkitError() {}

// wrapError attaches the public operation name to internal errors so that
// every returned error implements SigkitError.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(SigkitError); ok {
		return err
	}
	return &Error{Op: op, Err: err}
}
