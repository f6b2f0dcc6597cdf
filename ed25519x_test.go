package ed25519x

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyEncodedHexLength(t *testing.T) {
	s, err := GenerateKeyEncoded(Hex)
	require.NoError(t, err)
	require.Len(t, s, 64)
}

func TestGetPubkeyStructuredAndEncodedAgree(t *testing.T) {
	d, err := GenerateKey()
	require.NoError(t, err)

	pubStruct, err := GetPubkey(FromPrivateKey(d))
	require.NoError(t, err)

	encoded := Encode(Hex, d[:])
	pubEncoded, err := GetPubkey(FromEncodedPrivateKey(encoded, Hex))
	require.NoError(t, err)

	require.True(t, pubStruct.Equal(pubEncoded))
}

func TestSignVerifyStructured(t *testing.T) {
	d, err := GenerateKey()
	require.NoError(t, err)
	pub, err := GetPubkey(FromPrivateKey(d))
	require.NoError(t, err)

	message := []byte("orbit the sun")
	sig, err := Sign(message, FromPrivateKey(d))
	require.NoError(t, err)

	ok, err := Verify(FromSignature(sig), message, FromPublicKey(pub))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSignVerifyEncoded(t *testing.T) {
	d, err := GenerateKey()
	require.NoError(t, err)

	message := []byte("orbit the moon")
	sigHex, err := SignEncoded(message, FromPrivateKey(d), Base64)
	require.NoError(t, err)

	pubHex, err := GetPubkeyEncoded(FromPrivateKey(d), Base64)
	require.NoError(t, err)

	ok, err := Verify(
		FromEncodedSignature(sigHex, Base64),
		message,
		FromEncodedPublicKey(pubHex, Base64),
	)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyReturnsFalseWithoutErrorOnBadSignature(t *testing.T) {
	d, err := GenerateKey()
	require.NoError(t, err)
	pub, err := GetPubkey(FromPrivateKey(d))
	require.NoError(t, err)

	message := []byte("payload")
	sig, err := Sign(message, FromPrivateKey(d))
	require.NoError(t, err)

	ok, err := Verify(FromSignature(sig), []byte("tampered"), FromPublicKey(pub))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyReturnsErrorOnMalformedEncodedInput(t *testing.T) {
	d, err := GenerateKey()
	require.NoError(t, err)
	pub, err := GetPubkey(FromPrivateKey(d))
	require.NoError(t, err)

	_, err = Verify(FromEncodedSignature("not-hex", Hex), []byte("m"), FromPublicKey(pub))
	require.Error(t, err)

	_, err = Verify(FromEncodedSignature("aa", Hex), []byte("m"), FromPublicKey(pub))
	require.Error(t, err)
}

func TestGetSharedSecretCommutes(t *testing.T) {
	for i := 0; i < 32; i++ {
		dA, err := GenerateKey()
		require.NoError(t, err)
		dB, err := GenerateKey()
		require.NoError(t, err)

		pubA, err := GetPubkey(FromPrivateKey(dA))
		require.NoError(t, err)
		pubB, err := GetPubkey(FromPrivateKey(dB))
		require.NoError(t, err)

		sAB, err := GetSharedSecret(FromPrivateKey(dA), FromPublicKey(pubB))
		require.NoError(t, err)
		sBA, err := GetSharedSecret(FromPrivateKey(dB), FromPublicKey(pubA))
		require.NoError(t, err)

		require.Equal(t, sAB, sBA)
	}
}

func TestGetSharedSecretEncoded(t *testing.T) {
	dA, err := GenerateKey()
	require.NoError(t, err)
	dB, err := GenerateKey()
	require.NoError(t, err)
	pubB, err := GetPubkey(FromPrivateKey(dB))
	require.NoError(t, err)

	s, err := GetSharedSecretEncoded(FromPrivateKey(dA), FromPublicKey(pubB), Hex)
	require.NoError(t, err)
	require.Len(t, s, 64)
}

func TestGetParamsExposesCurveConstants(t *testing.T) {
	p := GetParams()
	require.NotNil(t, p.P)
	require.NotNil(t, p.G)
	require.NotNil(t, p.L)
}
