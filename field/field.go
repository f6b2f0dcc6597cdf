// Package field implements arithmetic in the prime field GF(p) for
// p = 2^255 - 19, the base field of edwards25519 and Curve25519.
//
// Field elements are represented as reduced non-negative math/big
// integers in [0, p), trading peak throughput for a smaller surface
// for carry-propagation bugs than a handwritten limb representation.
package field

import "math/big"

// P is the field modulus 2^255 - 19.
var P = mustHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

// D is the twisted-Edwards curve parameter d = -121665/121666 mod P.
var D = &Element{n: mustHex("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3")}

// SqrtM1 is a square root of -1 mod P.
var SqrtM1 = &Element{n: mustHex("2b8324804fc1df0b2b4d00993dfbd7a72f431806ad2fe478c4ee1b274a0ea0b0")}

// pow2252m5 is the exponent (P-5)/8 used by Pow2_252_3.
var pow2252m5 = new(big.Int).Div(new(big.Int).Sub(P, big.NewInt(5)), big.NewInt(8))

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: invalid hex constant " + s)
	}
	return n
}

// Element is a field element, always kept reduced modulo P.
type Element struct {
	n *big.Int
}

// Zero returns the additive identity.
func Zero() *Element { return &Element{n: new(big.Int)} }

// One returns the multiplicative identity.
func One() *Element { return &Element{n: big.NewInt(1)} }

// FromBigInt reduces x modulo P and returns it as an Element. x is not
// mutated.
func FromBigInt(x *big.Int) *Element {
	return &Element{n: new(big.Int).Mod(x, P)}
}

// FromUint64 reduces a small non-negative integer modulo P.
func FromUint64(x uint64) *Element {
	return &Element{n: new(big.Int).Mod(new(big.Int).SetUint64(x), P)}
}

// SetBytes decodes 32 little-endian bytes into a field element,
// reducing modulo P. It does not require the input be canonical; use
// IsCanonical to check that separately where canonicity matters, such
// as point decompression.
func SetBytes(b [32]byte) *Element {
	be := reverse(b[:])
	return &Element{n: new(big.Int).Mod(new(big.Int).SetBytes(be), P)}
}

// IsCanonical reports whether the little-endian encoding b represents
// an integer strictly less than P, i.e. it is the unique canonical
// encoding of some field element.
func IsCanonical(b [32]byte) bool {
	be := reverse(b[:])
	n := new(big.Int).SetBytes(be)
	return n.Cmp(P) < 0
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Bytes serializes the element as 32 little-endian bytes. The high
// bit of byte 31 is always 0 because the element is < P < 2^255.
func (e *Element) Bytes() [32]byte {
	be := e.n.FillBytes(make([]byte, 32))
	var out [32]byte
	copy(out[:], reverse(be))
	return out
}

// BigInt returns a copy of the underlying integer in [0, P).
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.n)
}

// Equal reports whether e and other represent the same field element.
func (e *Element) Equal(other *Element) bool {
	return e.n.Cmp(other.n) == 0
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.n.Sign() == 0
}

// IsNegative reports the low bit of the canonical representative,
// used as the sign/parity bit when compressing a curve point.
func (e *Element) IsNegative() bool {
	return e.n.Bit(0) == 1
}

// Add returns e + f mod P.
func Add(e, f *Element) *Element {
	return &Element{n: new(big.Int).Mod(new(big.Int).Add(e.n, f.n), P)}
}

// Sub returns e - f mod P.
func Sub(e, f *Element) *Element {
	return &Element{n: new(big.Int).Mod(new(big.Int).Sub(e.n, f.n), P)}
}

// Mul returns e * f mod P.
func Mul(e, f *Element) *Element {
	return &Element{n: new(big.Int).Mod(new(big.Int).Mul(e.n, f.n), P)}
}

// Square returns e^2 mod P.
func Square(e *Element) *Element {
	return Mul(e, e)
}

// Negate returns -e mod P.
func Negate(e *Element) *Element {
	if e.IsZero() {
		return Zero()
	}
	return &Element{n: new(big.Int).Sub(P, e.n)}
}

// Pow2 computes e^(2^k) mod P by k successive squarings.
func Pow2(e *Element, k uint) *Element {
	r := &Element{n: new(big.Int).Set(e.n)}
	for i := uint(0); i < k; i++ {
		r = Square(r)
	}
	return r
}

// Pow2_252_3 computes the pair (e^((P-5)/8), e^2), the two values an
// inverse-square-root / x-recovery computation needs from a single
// exponentiation pass.
func Pow2_252_3(e *Element) (pow *Element, sq *Element) {
	pow = &Element{n: new(big.Int).Exp(e.n, pow2252m5, P)}
	sq = Square(e)
	return pow, sq
}

// Invert returns e^-1 mod P, with Invert(0) defined as 0. It follows
// an extended-Euclid-style recurrence, maintained here over math/big
// values rather than fixed-width limbs.
func Invert(e *Element) *Element {
	if e.IsZero() {
		return Zero()
	}

	one := big.NewInt(1)
	lm, hm := big.NewInt(1), big.NewInt(0)
	low := new(big.Int).Mod(e.n, P)
	high := new(big.Int).Set(P)

	for low.Cmp(one) > 0 {
		r := new(big.Int).Div(high, low)
		nm := new(big.Int).Sub(hm, new(big.Int).Mul(lm, r))
		newLow := new(big.Int).Sub(high, new(big.Int).Mul(r, low))
		hm, lm = lm, nm
		high, low = low, newLow
	}

	return &Element{n: new(big.Int).Mod(lm, P)}
}
