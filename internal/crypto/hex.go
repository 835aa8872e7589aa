package crypto

import (
	"encoding/hex"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

// BytesToHex encodes b as lowercase hex.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string without a 0x prefix. Odd-length input is
// left-padded with a zero nibble, so "1" decodes as 0x01.
func HexToBytes(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, cryptoerr.Errorf(cryptoerr.ErrInvalidFormat,
				"input must be hex without the 0x prefix (offset %d)", i)
		}
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	// Cannot fail after the digit check above.
	b, _ := hex.DecodeString(s)
	return b, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
