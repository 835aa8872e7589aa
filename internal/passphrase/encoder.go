package passphrase

import (
	"strings"

	"github.com/vaultsandbox/sigkit/internal/crypto"
	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// Encoder converts secrets to phrases and 32-byte phrases back to
// secrets. A nil codec makes its kind unavailable.
type Encoder struct {
	Bip39    Codec
	Niceware Codec
}

// FromBytesOrHex encodes v, given as bytes or as hex without a 0x prefix,
// as a space-separated phrase. bip39 is used unless useNiceware is set.
func (e *Encoder) FromBytesOrHex(v any, useNiceware bool) (string, error) {
	b, err := crypto.KeyBytes(v)
	if err != nil {
		return "", err
	}

	codec, err := e.codec(useNiceware)
	if err != nil {
		return "", err
	}

	words, err := codec.BytesToWords(b)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// ToBytes32 decodes a 16-word niceware or 24-word bip39 phrase.
// Surrounding and repeated whitespace is ignored.
func (e *Encoder) ToBytes32(phrase string) ([]byte, error) {
	words := normalize(phrase)

	var useNiceware bool
	switch len(words) {
	case NicewareWordCount32:
		useNiceware = true
	case Bip39WordCount32:
	default:
		return nil, cryptoerr.Errorf(cryptoerr.ErrUnrecognizedPhraseLength,
			"input words length %d is not %d or %d", len(words), Bip39WordCount32, NicewareWordCount32)
	}

	codec, err := e.codec(useNiceware)
	if err != nil {
		return nil, err
	}
	return codec.WordsToBytes(words)
}

// ToHex32 is ToBytes32 with a hex result.
func (e *Encoder) ToHex32(phrase string) (string, error) {
	b, err := e.ToBytes32(phrase)
	if err != nil {
		return "", err
	}
	return crypto.BytesToHex(b), nil
}

func (e *Encoder) codec(useNiceware bool) (Codec, error) {
	if useNiceware {
		if e.Niceware == nil {
			return nil, cryptoerr.Errorf(cryptoerr.ErrCodecUnavailable, "niceware")
		}
		return e.Niceware, nil
	}
	if e.Bip39 == nil {
		return nil, cryptoerr.Errorf(cryptoerr.ErrCodecUnavailable, "bip39")
	}
	return e.Bip39, nil
}
