package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}

	for _, enc := range []Encoding{Raw, Base16, Hex, Base64} {
		s := Encode(enc, data)
		got, err := Decode(enc, s)
		require.NoError(t, err, enc.String())
		require.Equal(t, data, got, enc.String())
	}
}

func TestBase16IsUppercase(t *testing.T) {
	s := Encode(Base16, []byte{0xab, 0xcd})
	require.Equal(t, "ABCD", s)
}

func TestHexIsLowercase(t *testing.T) {
	s := Encode(Hex, []byte{0xab, 0xcd})
	require.Equal(t, "abcd", s)
}

func TestDecodeInvalidHexFails(t *testing.T) {
	_, err := Decode(Hex, "not-hex!!")
	require.Error(t, err)
}

func TestDecodeInvalidBase64Fails(t *testing.T) {
	_, err := Decode(Base64, "not base64 at all!!")
	require.Error(t, err)
}

func TestDecodeExactEnforcesLength(t *testing.T) {
	s := Encode(Hex, make([]byte, 32))
	_, err := DecodeExact(Hex, s, 64)
	require.Error(t, err)

	got, err := DecodeExact(Hex, s, 32)
	require.NoError(t, err)
	require.Len(t, got, 32)
}

func TestEncodingString(t *testing.T) {
	require.Equal(t, "raw", Raw.String())
	require.Equal(t, "base16", Base16.String())
	require.Equal(t, "hex", Hex.String())
	require.Equal(t, "base64", Base64.String())
	require.Equal(t, "unknown", Encoding(99).String())
}
