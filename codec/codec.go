// Package codec implements the four wire encodings a public operation
// may be asked to produce or consume: raw, base16 (uppercase hex),
// hex (lowercase hex) and base64 (standard, padded). None of these
// carry library-specific semantics, so they are implemented directly
// against the standard library (encoding/hex, encoding/base64).
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/athanorlabs/ed25519x/errs"
)

// Encoding is one of the four wire encodings a public operation may
// be asked to produce or consume.
type Encoding int

const (
	// Raw passes bytes through unchanged.
	Raw Encoding = iota
	// Base16 is uppercase hexadecimal.
	Base16
	// Hex is lowercase hexadecimal.
	Hex
	// Base64 is standard, padded base64.
	Base64
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case Base16:
		return "base16"
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return "unknown"
	}
}

// Encode renders b in the given encoding.
func Encode(enc Encoding, b []byte) string {
	switch enc {
	case Raw:
		return string(b)
	case Base16:
		return strings.ToUpper(hex.EncodeToString(b))
	case Hex:
		return hex.EncodeToString(b)
	case Base64:
		return base64.StdEncoding.EncodeToString(b)
	default:
		panic(fmt.Sprintf("codec: unknown encoding %d", enc))
	}
}

// Decode parses s as the given encoding, failing with ErrDecodeError
// if s is not valid for that encoding.
func Decode(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case Raw:
		return []byte(s), nil
	case Base16, Hex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}
		return b, nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrDecodeError, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %d", errs.ErrDecodeError, enc)
	}
}

// DecodeExact decodes s as enc and requires the result be exactly
// wantLen bytes, failing with ErrDecodeError otherwise. This backs
// the 32/64-byte length checks for PrivateKey, PublicKey and
// Signature wire formats.
func DecodeExact(enc Encoding, s string, wantLen int) ([]byte, error) {
	b, err := Decode(enc, s)
	if err != nil {
		return nil, err
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrDecodeError, wantLen, len(b))
	}
	return b, nil
}
