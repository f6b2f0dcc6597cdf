package scalar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(37)
	require.True(t, Sub(Add(a, b), b).Equal(a))
}

func TestMulInvert(t *testing.T) {
	a := FromUint64(12345)
	inv := Invert(a)
	require.True(t, Mul(a, inv).Equal(One()))
	require.True(t, Invert(Zero()).IsZero())
}

func TestNegate(t *testing.T) {
	a := FromUint64(9)
	require.True(t, Add(a, Negate(a)).IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	a := FromUint64(0xabcdef)
	b := a.Bytes()
	got, err := SetCanonicalBytes(b)
	require.NoError(t, err)
	require.True(t, got.Equal(a))
}

func TestSetCanonicalBytesRejectsOutOfRange(t *testing.T) {
	be := L.FillBytes(make([]byte, 32))
	var b [32]byte
	for i, v := range be {
		b[31-i] = v
	}
	_, err := SetCanonicalBytes(b)
	require.Error(t, err)
}

func TestReduceWideBytes(t *testing.T) {
	wide := make([]byte, 64)
	for i := range wide {
		wide[i] = 0xff
	}
	s := ReduceWideBytes(wide)
	require.True(t, s.n.Cmp(L) < 0)
}

func TestClamp(t *testing.T) {
	var k [32]byte
	for i := range k {
		k[i] = 0xff
	}
	c := Clamp(k)
	require.Zero(t, c[0]&0x07)
	require.Zero(t, c[31]&0x80)
	require.NotZero(t, c[31]&0x40)
}

func TestNormalize(t *testing.T) {
	require.NoError(t, Normalize(big.NewInt(5), L, false))
	require.NoError(t, Normalize(big.NewInt(0), L, false))
	require.Error(t, Normalize(big.NewInt(0), L, true))
	require.Error(t, Normalize(new(big.Int).Set(L), L, false))
}

func TestBitAndBitLen(t *testing.T) {
	a := FromUint64(0b1011)
	require.Equal(t, uint(1), a.Bit(0))
	require.Equal(t, uint(1), a.Bit(1))
	require.Equal(t, uint(0), a.Bit(2))
	require.Equal(t, uint(1), a.Bit(3))
	require.Equal(t, 4, a.BitLen())
}
