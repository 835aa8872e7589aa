// Package passphrase converts 32-byte secrets to and from word phrases.
//
// Two codecs are supported: bip39 (24 words for 32 bytes) and niceware
// (16 words for 32 bytes). Phrases are told apart by word count alone.
package passphrase

import "strings"

// Word counts that identify the codec of a 32-byte phrase.
const (
	NicewareWordCount32 = 16
	Bip39WordCount32    = 24
)

// Codec converts between bytes and words.
type Codec interface {
	BytesToWords(b []byte) ([]string, error)
	WordsToBytes(words []string) ([]byte, error)
}

// normalize trims the phrase and collapses whitespace runs to single
// spaces, returning the words.
func normalize(phrase string) []string {
	return strings.Fields(phrase)
}
