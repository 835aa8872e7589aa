package crypto

const (
	innerPad = 0x36
	outerPad = 0x5c
)

// HMAC computes HMAC-SHA-512 of message under key.
func HMAC(message, key []byte) []byte {
	return HMACWith(HashSHA512, message, key)
}

// HMACWith computes HMAC of message under key using h.
// Keys longer than BlockSize are hashed first.
func HMACWith(h Hash, message, key []byte) []byte {
	if len(key) > BlockSize {
		key = h.sum(key)
	}

	var pad [BlockSize]byte
	fillPad(&pad, innerPad, key)
	innerHash := h.sum(pad[:], message)

	fillPad(&pad, outerPad, key)
	return h.sum(pad[:], innerHash)
}

func fillPad(pad *[BlockSize]byte, c byte, key []byte) {
	for i := range pad {
		pad[i] = c
	}
	for i, b := range key {
		pad[i] ^= b
	}
}
