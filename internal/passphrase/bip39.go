package passphrase

import (
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

type bip39Codec struct{}

// NewBip39Codec returns a codec for the bip39 English word list.
// Entropy must be 16 to 32 bytes in steps of 4.
func NewBip39Codec() Codec {
	return bip39Codec{}
}

func (bip39Codec) BytesToWords(b []byte) ([]string, error) {
	mnemonic, err := bip39.NewMnemonic(b)
	if err != nil {
		if errors.Is(err, bip39.ErrEntropyLengthInvalid) {
			return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidLength, "bip39 entropy of %d bytes", len(b))
		}
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat, "bip39: %v", err)
	}
	return strings.Fields(mnemonic), nil
}

func (bip39Codec) WordsToBytes(words []string) ([]byte, error) {
	mnemonic := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat, "invalid bip39 mnemonic")
	}
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat, "bip39: %v", err)
	}
	return entropy, nil
}
