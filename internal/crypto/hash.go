package crypto

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Hash is an unkeyed hash function with a HashSize digest and a BlockSize
// block, the shape HMAC and HKDF are defined over here.
type Hash struct {
	// Name identifies the hash in errors and logs.
	Name string
	// New returns a fresh hash state.
	New func() hash.Hash
}

// HashSHA512 is SHA-512, the default hash.
var HashSHA512 = Hash{Name: "SHA-512", New: sha512.New}

// HashBLAKE2b512 is unkeyed BLAKE2b with a 64-byte digest.
var HashBLAKE2b512 = Hash{Name: "BLAKE2b-512", New: newBLAKE2b512}

func newBLAKE2b512() hash.Hash {
	// New512 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New512(nil)
	return h
}

// sum returns the digest of data.
func (h Hash) sum(data ...[]byte) []byte {
	d := h.New()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
