package sigkit

import (
	"github.com/vaultsandbox/sigkit/internal/passphrase"
)

// Word counts of 32-byte phrases.
const (
	NicewareWordCount32 = passphrase.NicewareWordCount32
	Bip39WordCount32    = passphrase.Bip39WordCount32
)

// PassphraseCodec converts between bytes and words.
type PassphraseCodec = passphrase.Codec

// NewBip39Codec returns the bip39 codec for the English word list.
func NewBip39Codec() PassphraseCodec {
	return passphrase.NewBip39Codec()
}

// NewNicewareCodec returns a niceware codec over wordlist, which must hold
// 65536 distinct words in niceware order.
func NewNicewareCodec(wordlist []string) (PassphraseCodec, error) {
	c, err := passphrase.NewNicewareCodec(wordlist)
	if err != nil {
		return nil, wrapError("niceware codec", err)
	}
	return c, nil
}

// PassphraseEncoder converts secrets to phrases and back.
type PassphraseEncoder struct {
	enc passphrase.Encoder
}

// NewPassphraseEncoder creates an encoder. bip39 is available by default;
// niceware needs WithNicewareCodec.
func NewPassphraseEncoder(opts ...PassphraseOption) *PassphraseEncoder {
	cfg := &passphraseConfig{bip39: passphrase.NewBip39Codec()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &PassphraseEncoder{enc: passphrase.Encoder{Bip39: cfg.bip39, Niceware: cfg.niceware}}
}

// FromBytesOrHex encodes v, bytes or hex without a 0x prefix, as a phrase.
// bip39 is used unless useNiceware is set.
func (p *PassphraseEncoder) FromBytesOrHex(v any, useNiceware bool) (string, error) {
	phrase, err := p.enc.FromBytesOrHex(v, useNiceware)
	return phrase, wrapError("passphrase from bytes", err)
}

// ToBytes32 decodes a 16-word niceware or 24-word bip39 phrase.
func (p *PassphraseEncoder) ToBytes32(phrase string) ([]byte, error) {
	b, err := p.enc.ToBytes32(phrase)
	return b, wrapError("passphrase to bytes", err)
}

// ToHex32 decodes a 16-word niceware or 24-word bip39 phrase to hex.
func (p *PassphraseEncoder) ToHex32(phrase string) (string, error) {
	h, err := p.enc.ToHex32(phrase)
	return h, wrapError("passphrase to hex", err)
}
