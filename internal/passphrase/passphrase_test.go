package passphrase

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vaultsandbox/sigkit/internal/cryptoerr"
)

func testWordlist() []string {
	words := make([]string, NicewareListSize)
	for i := range words {
		words[i] = fmt.Sprintf("w%04x", i)
	}
	return words
}

func testEncoder(t *testing.T) *Encoder {
	t.Helper()
	niceware, err := NewNicewareCodec(testWordlist())
	if err != nil {
		t.Fatalf("NewNicewareCodec() error = %v", err)
	}
	return &Encoder{Bip39: NewBip39Codec(), Niceware: niceware}
}

func repeatWords(word string, n int, last string) string {
	return strings.Repeat(word+" ", n) + last
}

func TestEncoder_FromBytesOrHex(t *testing.T) {
	e := testEncoder(t)

	tests := []struct {
		name        string
		input       any
		useNiceware bool
		want        string
	}{
		{"bip39 hex", strings.Repeat("00", 16), false, repeatWords("abandon", 11, "about")},
		{"bip39 zero bytes 32", make([]byte, 32), false, repeatWords("abandon", 23, "art")},
		{"bip39 bytes 16", bytes.Repeat([]byte{0xff}, 16), false, repeatWords("zoo", 11, "wrong")},
		{"bip39 bytes 32", bytes.Repeat([]byte{0xff}, 32), false, repeatWords("zoo", 23, "vote")},
		{"niceware hex", strings.Repeat("00", 16), true, repeatWords("w0000", 7, "w0000")},
		{"niceware bytes 32", bytes.Repeat([]byte{0xff}, 32), true, repeatWords("wffff", 15, "wffff")},
		{"niceware big-endian", []byte{0x01, 0x02}, true, "w0102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.FromBytesOrHex(tt.input, tt.useNiceware)
			if err != nil {
				t.Fatalf("FromBytesOrHex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FromBytesOrHex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncoder_FromBytesOrHex_Errors(t *testing.T) {
	e := testEncoder(t)

	tests := []struct {
		name        string
		input       any
		useNiceware bool
		wantErr     error
	}{
		{"bip39 short entropy", make([]byte, 8), false, cryptoerr.ErrInvalidLength},
		{"bip39 empty", nil, false, cryptoerr.ErrInvalidLength},
		{"niceware odd length", []byte{1, 2, 3}, true, cryptoerr.ErrInvalidLength},
		{"bad hex", "zz", false, cryptoerr.ErrInvalidFormat},
		{"wrong type", 12, false, cryptoerr.ErrInvalidInputType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.FromBytesOrHex(tt.input, tt.useNiceware)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromBytesOrHex() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoder_ToBytes32(t *testing.T) {
	e := testEncoder(t)
	ones := bytes.Repeat([]byte{0xff}, 32)

	tests := []struct {
		name   string
		phrase string
		want   []byte
	}{
		{"niceware zeros", repeatWords("w0000", 15, "w0000"), make([]byte, 32)},
		{"niceware ones with extra whitespace", " wffff  " + repeatWords("wffff", 14, "wffff") + "\n", ones},
		{"niceware upper case", strings.ToUpper(repeatWords("wffff", 15, "wffff")), ones},
		{"bip39 ones", repeatWords("zoo", 23, "vote"), ones},
		{"bip39 zeros", repeatWords("abandon", 23, "art"), make([]byte, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ToBytes32(tt.phrase)
			if err != nil {
				t.Fatalf("ToBytes32() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ToBytes32() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncoder_ToBytes32_Errors(t *testing.T) {
	e := testEncoder(t)

	tests := []struct {
		name    string
		phrase  string
		wantErr error
	}{
		{"12 words", repeatWords("zoo", 11, "wrong"), cryptoerr.ErrUnrecognizedPhraseLength},
		{"empty", "   ", cryptoerr.ErrUnrecognizedPhraseLength},
		{"bad checksum", repeatWords("zoo", 23, "zoo"), cryptoerr.ErrInvalidFormat},
		{"unknown niceware word", repeatWords("w0000", 15, "nope"), cryptoerr.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ToBytes32(tt.phrase)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToBytes32() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoder_ToHex32(t *testing.T) {
	e := testEncoder(t)

	got, err := e.ToHex32(repeatWords("zoo", 23, "vote"))
	if err != nil {
		t.Fatalf("ToHex32() error = %v", err)
	}
	if want := strings.Repeat("ff", 32); got != want {
		t.Errorf("ToHex32() = %s, want %s", got, want)
	}

	if _, err := e.ToHex32(repeatWords("abandon", 11, "about")); !errors.Is(err, cryptoerr.ErrUnrecognizedPhraseLength) {
		t.Errorf("ToHex32() error = %v, want ErrUnrecognizedPhraseLength", err)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	e := testEncoder(t)
	const hexSeed = "65f9e2ea89dd6a8d2333ab0b3808e011a757da60a95cd201a2e40df098f111d4"

	for _, useNiceware := range []bool{false, true} {
		t.Run(fmt.Sprintf("niceware=%v", useNiceware), func(t *testing.T) {
			phrase, err := e.FromBytesOrHex(hexSeed, useNiceware)
			if err != nil {
				t.Fatalf("FromBytesOrHex() error = %v", err)
			}
			got, err := e.ToHex32(phrase)
			if err != nil {
				t.Fatalf("ToHex32() error = %v", err)
			}
			if got != hexSeed {
				t.Errorf("ToHex32(FromBytesOrHex()) = %s, want %s", got, hexSeed)
			}
		})
	}
}

func TestEncoder_PhraseRoundTrip(t *testing.T) {
	e := testEncoder(t)
	const bipPhrase = "magic vacuum wide review love peace century egg burden clutch heart cycle " +
		"annual mixed pink awesome extra client cry brisk priority maple mountain jelly"

	b, err := e.ToBytes32(bipPhrase)
	if err != nil {
		t.Fatalf("ToBytes32() error = %v", err)
	}
	got, err := e.FromBytesOrHex(b, false)
	if err != nil {
		t.Fatalf("FromBytesOrHex() error = %v", err)
	}
	if got != bipPhrase {
		t.Errorf("FromBytesOrHex(ToBytes32()) = %q, want %q", got, bipPhrase)
	}
}

func TestEncoder_CodecUnavailable(t *testing.T) {
	e := &Encoder{Bip39: NewBip39Codec()}

	if _, err := e.FromBytesOrHex(make([]byte, 32), true); !errors.Is(err, cryptoerr.ErrCodecUnavailable) {
		t.Errorf("FromBytesOrHex() error = %v, want ErrCodecUnavailable", err)
	}
	if _, err := e.ToBytes32(repeatWords("a", 15, "a")); !errors.Is(err, cryptoerr.ErrCodecUnavailable) {
		t.Errorf("ToBytes32() error = %v, want ErrCodecUnavailable", err)
	}

	var empty Encoder
	if _, err := empty.ToBytes32(repeatWords("zoo", 23, "vote")); !errors.Is(err, cryptoerr.ErrCodecUnavailable) {
		t.Errorf("ToBytes32() error = %v, want ErrCodecUnavailable", err)
	}
}

func TestNewNicewareCodec_Errors(t *testing.T) {
	short := testWordlist()[:100]
	if _, err := NewNicewareCodec(short); !errors.Is(err, cryptoerr.ErrInvalidLength) {
		t.Errorf("NewNicewareCodec(short) error = %v, want ErrInvalidLength", err)
	}

	dup := testWordlist()
	dup[7] = strings.ToUpper(dup[3])
	if _, err := NewNicewareCodec(dup); !errors.Is(err, cryptoerr.ErrInvalidFormat) {
		t.Errorf("NewNicewareCodec(dup) error = %v, want ErrInvalidFormat", err)
	}
}
