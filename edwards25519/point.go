// Package edwards25519 implements the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19) used by Ed25519:
// affine points, extended projective coordinates, compression and
// the RFC 8032 point-decompression square root recovery.
package edwards25519

import (
	"math/big"

	"github.com/athanorlabs/ed25519x/errs"
	"github.com/athanorlabs/ed25519x/field"
	"github.com/athanorlabs/ed25519x/scalar"
)

// A is the curve coefficient a = -1.
var A = field.Negate(field.One())

// D is the curve coefficient d, aliased from package field for
// callers that only import edwards25519.
var D = field.D

// AffinePoint is a point (x, y) on the curve.
type AffinePoint struct {
	X, Y *field.Element
}

// NeutralAffine is the identity element (0, 1).
func NeutralAffine() *AffinePoint {
	return &AffinePoint{X: field.Zero(), Y: field.One()}
}

// Equal reports coordinate-wise equality.
func (p *AffinePoint) Equal(q *AffinePoint) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Negate returns the point with x negated.
func (p *AffinePoint) Negate() *AffinePoint {
	return &AffinePoint{X: field.Negate(p.X), Y: p.Y}
}

// Compress encodes the point as 32 little-endian bytes: y with the
// top bit of byte 31 replaced by the parity of x.
func (p *AffinePoint) Compress() [32]byte {
	b := p.Y.Bytes()
	if p.X.IsNegative() {
		b[31] |= 0x80
	} else {
		b[31] &= 0x7f
	}
	return b
}

// Decompress inverts Compress, recovering x via a square-root
// computation. It fails with ErrInvalidPoint if y >= p or if no valid
// x exists for the encoded y.
func Decompress(b [32]byte) (*AffinePoint, error) {
	sign := b[31]&0x80 != 0
	b[31] &= 0x7f

	if !field.IsCanonical(b) {
		return nil, errs.ErrInvalidPoint
	}
	y := field.SetBytes(b)

	x, err := recoverX(y)
	if err != nil {
		return nil, err
	}

	if x.IsNegative() != sign {
		x = field.Negate(x)
	}
	if x.IsNegative() != sign {
		// x == 0 with the "negative" bit set: no valid encoding.
		return nil, errs.ErrInvalidPoint
	}

	return &AffinePoint{X: x, Y: y}, nil
}

// recoverX solves x^2 = (y^2 - 1) / (d*y^2 + 1) mod p.
func recoverX(y *field.Element) (*field.Element, error) {
	y2 := field.Square(y)
	u := field.Sub(y2, field.One())
	v := field.Add(field.Mul(field.D, y2), field.One())

	v2 := field.Square(v)
	v3 := field.Mul(v2, v)
	v4 := field.Square(v2)
	v7 := field.Mul(v4, v3)

	uv7 := field.Mul(u, v7)
	pow, _ := field.Pow2_252_3(uv7)

	x := field.Mul(field.Mul(u, v3), pow)

	vx2 := field.Mul(v, field.Square(x))

	switch {
	case vx2.Equal(u):
		return x, nil
	case vx2.Equal(field.Negate(u)):
		return field.Mul(x, field.SqrtM1), nil
	default:
		// vx2 == -u*sqrt(-1) has no valid x for this y; reject like
		// any other mismatch.
		return nil, errs.ErrInvalidPoint
	}
}

// ExtendedPoint holds (X, Y, Z, T) with X/Z = x, Y/Z = y, T = XY/Z.
type ExtendedPoint struct {
	X, Y, Z, T *field.Element
}

// Identity returns the neutral element (0, 1, 1, 0).
func Identity() *ExtendedPoint {
	return &ExtendedPoint{X: field.Zero(), Y: field.One(), Z: field.One(), T: field.Zero()}
}

// Generator returns the RFC 8032 base point G.
func Generator() *ExtendedPoint {
	gx := field.FromBigInt(mustHex("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a"))
	gy := field.FromBigInt(mustHex("6666666666666666666666666666666666666666666666666666666666666658"))
	return FromAffine(&AffinePoint{X: gx, Y: gy})
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("edwards25519: invalid hex constant " + s)
	}
	return n
}

// FromAffine lifts an affine point into extended coordinates.
func FromAffine(p *AffinePoint) *ExtendedPoint {
	if p.X.IsZero() && p.Y.Equal(field.One()) {
		return Identity()
	}
	return &ExtendedPoint{
		X: p.X,
		Y: p.Y,
		Z: field.One(),
		T: field.Mul(p.X, p.Y),
	}
}

// ToAffine projects back to affine coordinates, failing with
// ErrInvalidPoint if Z has no inverse.
func (p *ExtendedPoint) ToAffine() (*AffinePoint, error) {
	zinv := field.Invert(p.Z)
	if !field.Mul(p.Z, zinv).Equal(field.One()) {
		return nil, errs.ErrInvalidPoint
	}
	return &AffinePoint{
		X: field.Mul(p.X, zinv),
		Y: field.Mul(p.Y, zinv),
	}, nil
}

// Compress projects to affine and compresses; see AffinePoint.Compress.
func (p *ExtendedPoint) Compress() ([32]byte, error) {
	a, err := p.ToAffine()
	if err != nil {
		return [32]byte{}, err
	}
	return a.Compress(), nil
}

// Add implements the twisted-Edwards addition law, falling back to
// Double(p1) whenever F = B - A is zero, i.e. X1*Y2 = X2*Y1. That
// holds when the inputs coincide, and also for distinct points with
// the same x/y ratio (for example the identity and (0, -1)), for
// which the result is Double(p1).
func Add(p1, p2 *ExtendedPoint) *ExtendedPoint {
	A := field.Mul(field.Sub(p1.Y, p1.X), field.Add(p2.Y, p2.X))
	B := field.Mul(field.Add(p1.Y, p1.X), field.Sub(p2.Y, p2.X))
	F := field.Sub(B, A)
	if F.IsZero() {
		return Double(p1)
	}

	C := field.Mul(field.FromUint64(2), field.Mul(p1.Z, p2.T))
	D := field.Mul(field.FromUint64(2), field.Mul(p1.T, p2.Z))

	E := field.Add(D, C)
	G := field.Add(B, A)
	H := field.Sub(D, C)

	return &ExtendedPoint{
		X: field.Mul(E, F),
		Y: field.Mul(G, H),
		T: field.Mul(E, H),
		Z: field.Mul(F, G),
	}
}

// Double implements the extended-coordinates point-doubling law.
func Double(p *ExtendedPoint) *ExtendedPoint {
	Asq := field.Square(p.X)
	Bsq := field.Square(p.Y)
	C := field.Mul(field.FromUint64(2), field.Square(p.Z))
	Dv := field.Mul(A, Asq)

	sum := field.Add(p.X, p.Y)
	E := field.Sub(field.Sub(field.Square(sum), Asq), Bsq)

	G := field.Add(Dv, Bsq)
	F := field.Sub(G, C)
	H := field.Sub(Dv, Bsq)

	return &ExtendedPoint{
		X: field.Mul(E, F),
		Y: field.Mul(G, H),
		T: field.Mul(E, H),
		Z: field.Mul(F, G),
	}
}

// Negate returns (-X, Y, Z, -T).
func Negate(p *ExtendedPoint) *ExtendedPoint {
	return &ExtendedPoint{X: field.Negate(p.X), Y: p.Y, Z: p.Z, T: field.Negate(p.T)}
}

// Sub returns p1 - p2.
func Sub(p1, p2 *ExtendedPoint) *ExtendedPoint {
	return Add(p1, Negate(p2))
}

// Eq reports projective equality: X1*Z2 = X2*Z1 and Y1*Z2 = Y2*Z1.
func Eq(p1, p2 *ExtendedPoint) bool {
	return field.Mul(p1.X, p2.Z).Equal(field.Mul(p2.X, p1.Z)) &&
		field.Mul(p1.Y, p2.Z).Equal(field.Mul(p2.Y, p1.Z))
}

// Mul computes [n]P by variable-time right-to-left double-and-add. It
// is NOT constant time; callers processing a secret scalar should use
// a constant-time path instead, such as the Montgomery ladder in
// package x25519.
func Mul(p *ExtendedPoint, n *scalar.Scalar) (*ExtendedPoint, error) {
	if err := scalar.Normalize(n.BigInt(), scalar.L, false); err != nil {
		return nil, err
	}

	acc := Identity()
	addend := p
	bits := n.BitLen()
	for i := 0; i < bits; i++ {
		if n.Bit(i) == 1 {
			acc = Add(acc, addend)
		}
		addend = Double(addend)
	}
	return acc, nil
}
