// Package x25519 implements the Curve25519 Diffie-Hellman function
// (RFC 7748) via the constant-time Montgomery ladder, birationally
// equivalent to the edwards25519 curve used for signing.
package x25519

import (
	"github.com/athanorlabs/ed25519x/errs"
	"github.com/athanorlabs/ed25519x/field"
	"github.com/athanorlabs/ed25519x/scalar"
)

// A24 is the Montgomery curve constant (486662 - 2) / 4 = 121665.
var A24 = field.FromUint64(121665)

// BasePoint is the canonical Curve25519 generator's u-coordinate, 9.
var BasePoint = [32]byte{9}

// Clamp applies the RFC 7748 scalar-clamping transform, delegating to
// package scalar so EdDSA secret expansion and X25519 share the exact
// same bit-twiddling.
func Clamp(k [32]byte) [32]byte {
	return scalar.Clamp(k)
}

// DecodeUCoordinate loads 32 little-endian bytes as a u-coordinate,
// masking the high bit of the last byte to zero before decoding.
func DecodeUCoordinate(b [32]byte) *field.Element {
	b[31] &= 0x7f
	return field.SetBytes(b)
}

// EncodeUCoordinate serializes a u-coordinate as 32 little-endian
// bytes.
func EncodeUCoordinate(u *field.Element) [32]byte {
	return u.Bytes()
}

// EdwardsYToU converts an edwards25519 y-coordinate to the
// birationally equivalent Montgomery u-coordinate:
// u = (1 + y) * (1 - y)^-1 mod p.
func EdwardsYToU(y *field.Element) *field.Element {
	one := field.One()
	num := field.Add(one, y)
	den := field.Invert(field.Sub(one, y))
	return field.Mul(num, den)
}

// cswap conditionally swaps a and b via the arithmetic form
// d = s*(a-b); a -= d; b += d, so the ladder never branches on the
// scalar bit.
func cswap(swap uint, a, b *field.Element) (*field.Element, *field.Element) {
	s := field.FromUint64(uint64(swap))
	d := field.Mul(s, field.Sub(a, b))
	na := field.Sub(a, d)
	nb := field.Add(b, d)
	return na, nb
}

func bit(k [32]byte, t int) uint {
	return uint((k[t/8] >> uint(t%8)) & 1)
}

// Ladder runs the Montgomery ladder with an already-clamped scalar k
// against u-coordinate u, returning the resulting u-coordinate. It
// fails with ErrInvalidKey when the output is the all-zero point,
// which happens only for low-order inputs.
func Ladder(k [32]byte, u *field.Element) (*field.Element, error) {
	x1 := u
	x2, z2 := field.One(), field.Zero()
	x3, z3 := u, field.One()
	var swap uint

	for t := 254; t >= 0; t-- {
		kt := bit(k, t)
		swap ^= kt
		x2, x3 = cswap(swap, x2, x3)
		z2, z3 = cswap(swap, z2, z3)
		swap = kt

		a := field.Add(x2, z2)
		b := field.Sub(x2, z2)
		c := field.Add(x3, z3)
		d := field.Sub(x3, z3)

		AA := field.Square(a)
		BB := field.Square(b)
		DA := field.Mul(d, a)
		CB := field.Mul(c, b)

		e := field.Sub(AA, BB)

		x2 = field.Mul(AA, BB)
		z2 = field.Mul(e, field.Add(AA, field.Mul(A24, e)))
		x3 = field.Square(field.Add(DA, CB))
		z3 = field.Mul(x1, field.Square(field.Sub(DA, CB)))
	}

	x2, x3 = cswap(swap, x2, x3)
	z2, z3 = cswap(swap, z2, z3)

	result := field.Mul(x2, field.Invert(z2))
	if result.IsZero() {
		return nil, errs.ErrInvalidKey
	}
	return result, nil
}

// X25519 runs the full X25519 function: clamp scalarBytes, decode
// uBytes, run the ladder, and encode the result.
func X25519(scalarBytes, uBytes [32]byte) ([32]byte, error) {
	k := Clamp(scalarBytes)
	u := DecodeUCoordinate(uBytes)
	result, err := Ladder(k, u)
	if err != nil {
		return [32]byte{}, err
	}
	return EncodeUCoordinate(result), nil
}
