package passphrase

import (
	"strings"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// NicewareListSize is the number of words a niceware list must hold, one
// per 16-bit value.
const NicewareListSize = 1 << 16

// NicewareCodec encodes every two bytes as one word, big-endian.
type NicewareCodec struct {
	words []string
	index map[string]uint16
}

// NewNicewareCodec builds a codec over wordlist, which must hold
// NicewareListSize distinct words. Words are matched case-insensitively.
func NewNicewareCodec(wordlist []string) (*NicewareCodec, error) {
	if len(wordlist) != NicewareListSize {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength,
			"niceware list must have %d words, got %d", NicewareListSize, len(wordlist))
	}

	c := &NicewareCodec{
		words: make([]string, NicewareListSize),
		index: make(map[string]uint16, NicewareListSize),
	}
	for i, w := range wordlist {
		w = strings.ToLower(w)
		if _, dup := c.index[w]; dup {
			return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat, "duplicate niceware word %q", w)
		}
		c.words[i] = w
		c.index[w] = uint16(i)
	}
	return c, nil
}

func (c *NicewareCodec) BytesToWords(b []byte) ([]string, error) {
	if len(b)%2 != 0 {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength,
			"niceware needs an even number of bytes, got %d", len(b))
	}

	words := make([]string, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		words = append(words, c.words[uint16(b[i])<<8|uint16(b[i+1])])
	}
	return words, nil
}

func (c *NicewareCodec) WordsToBytes(words []string) ([]byte, error) {
	b := make([]byte, 0, 2*len(words))
	for _, w := range words {
		v, ok := c.index[strings.ToLower(w)]
		if !ok {
			return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat, "unknown niceware word %q", w)
		}
		b = append(b, byte(v>>8), byte(v))
	}
	return b, nil
}
