package edwards25519

import (
	"testing"

	"github.com/athanorlabs/ed25519x/field"
	"github.com/athanorlabs/ed25519x/scalar"
	"github.com/stretchr/testify/require"
)

func TestGeneratorOnCurve(t *testing.T) {
	g, err := Generator().ToAffine()
	require.NoError(t, err)

	x2 := field.Square(g.X)
	y2 := field.Square(g.Y)
	lhs := field.Sub(y2, x2)
	rhs := field.Add(field.One(), field.Mul(D, field.Mul(x2, y2)))
	require.True(t, lhs.Equal(rhs))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	g, err := Generator().ToAffine()
	require.NoError(t, err)

	b := g.Compress()
	got, err := Decompress(b)
	require.NoError(t, err)
	require.True(t, got.Equal(g))
}

func TestDecompressRejectsNonCanonicalY(t *testing.T) {
	// p little-endian: y = p is >= p and must be rejected.
	be := field.P.FillBytes(make([]byte, 32))
	var b [32]byte
	for i, v := range be {
		b[31-i] = v
	}
	_, err := Decompress(b)
	require.Error(t, err)
}

func TestNeutralIdentities(t *testing.T) {
	g := Generator()
	id := Identity()

	require.True(t, Eq(Add(g, id), g))
	require.True(t, Eq(Add(g, Negate(g)), id))
}

func TestMulByZeroOneTwo(t *testing.T) {
	g := Generator()

	zero, err := Mul(g, scalar.Zero())
	require.NoError(t, err)
	require.True(t, Eq(zero, Identity()))

	one, err := Mul(g, scalar.One())
	require.NoError(t, err)
	require.True(t, Eq(one, g))

	two, err := Mul(g, scalar.FromUint64(2))
	require.NoError(t, err)
	require.True(t, Eq(two, Double(g)))
}

func TestMulRangeCheckRejectsL(t *testing.T) {
	// Building a Scalar wrapping L itself is impossible via the public
	// API (FromBigInt reduces), so Mul cannot be handed one; instead
	// check that the Normalize call Mul makes (bound L, non-strict)
	// rejects a value >= L.
	err := scalar.Normalize(scalar.L, scalar.L, false)
	require.Error(t, err)
}

func TestAddCommutesWithScalarMul(t *testing.T) {
	g := Generator()
	three, err := Mul(g, scalar.FromUint64(3))
	require.NoError(t, err)

	twoPlusOne := Add(Double(g), g)
	require.True(t, Eq(three, twoPlusOne))
}

func TestFromAffineToAffineRoundTrip(t *testing.T) {
	g, err := Generator().ToAffine()
	require.NoError(t, err)

	ext := FromAffine(g)
	back, err := ext.ToAffine()
	require.NoError(t, err)
	require.True(t, back.Equal(g))
}
