// Package scalar implements arithmetic modulo the group order L of
// edwards25519, L = 2^252 + 27742317777372353535851937790883648493.
package scalar

import (
	"math/big"

	"github.com/athanorlabs/ed25519x/errs"
)

// L is the order of the edwards25519 base point.
var L = mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("scalar: invalid hex constant " + s)
	}
	return n
}

// Scalar is a non-negative integer in [0, L), always kept reduced.
type Scalar struct {
	n *big.Int
}

// Zero returns the additive identity.
func Zero() *Scalar { return &Scalar{n: new(big.Int)} }

// One returns the multiplicative identity.
func One() *Scalar { return &Scalar{n: big.NewInt(1)} }

// FromUint64 reduces a small non-negative integer modulo L.
func FromUint64(x uint64) *Scalar {
	return &Scalar{n: new(big.Int).Mod(new(big.Int).SetUint64(x), L)}
}

// FromBigInt reduces x modulo L.
func FromBigInt(x *big.Int) *Scalar {
	return &Scalar{n: new(big.Int).Mod(x, L)}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// ReduceWideBytes decodes an arbitrary-length little-endian byte
// string (typically a 64-byte hash output) as an integer and reduces
// it modulo L, as EdDSA signing does when turning a hash output into
// a scalar.
func ReduceWideBytes(b []byte) *Scalar {
	be := reverse(b)
	return &Scalar{n: new(big.Int).Mod(new(big.Int).SetBytes(be), L)}
}

// SetCanonicalBytes decodes 32 little-endian bytes as a scalar,
// failing with ErrInvalidScalar if the value is not already reduced
// modulo L.
func SetCanonicalBytes(b [32]byte) (*Scalar, error) {
	be := reverse(b[:])
	n := new(big.Int).SetBytes(be)
	if n.Cmp(L) >= 0 {
		return nil, errs.ErrInvalidScalar
	}
	return &Scalar{n: n}, nil
}

// Bytes serializes the scalar as 32 little-endian bytes.
func (s *Scalar) Bytes() [32]byte {
	be := s.n.FillBytes(make([]byte, 32))
	var out [32]byte
	copy(out[:], reverse(be))
	return out
}

// BigInt returns a copy of the underlying integer in [0, L).
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.n)
}

// Equal reports whether s and other represent the same scalar.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.n.Cmp(other.n) == 0
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Add returns s + t mod L.
func Add(s, t *Scalar) *Scalar {
	return &Scalar{n: new(big.Int).Mod(new(big.Int).Add(s.n, t.n), L)}
}

// Sub returns s - t mod L.
func Sub(s, t *Scalar) *Scalar {
	return &Scalar{n: new(big.Int).Mod(new(big.Int).Sub(s.n, t.n), L)}
}

// Mul returns s * t mod L.
func Mul(s, t *Scalar) *Scalar {
	return &Scalar{n: new(big.Int).Mod(new(big.Int).Mul(s.n, t.n), L)}
}

// Negate returns -s mod L.
func Negate(s *Scalar) *Scalar {
	if s.IsZero() {
		return Zero()
	}
	return &Scalar{n: new(big.Int).Sub(L, s.n)}
}

// Invert returns s^-1 mod L. L is prime, so every nonzero scalar has
// an inverse; Invert(0) returns 0.
func Invert(s *Scalar) *Scalar {
	if s.IsZero() {
		return Zero()
	}
	return &Scalar{n: new(big.Int).ModInverse(s.n, L)}
}

// Normalize checks that n falls in the expected range for a decoded
// scalar: when strict, n must satisfy 0 < n < max; otherwise 0 <= n <
// max. It fails with ErrInvalidScalar outside that range.
func Normalize(n *big.Int, max *big.Int, strict bool) error {
	if n.Sign() < 0 || n.Cmp(max) >= 0 {
		return errs.ErrInvalidScalar
	}
	if strict && n.Sign() == 0 {
		return errs.ErrInvalidScalar
	}
	return nil
}

// Bit returns the value of bit i (0 = least significant) of the
// scalar's fixed-width non-negative integer representation.
func (s *Scalar) Bit(i int) uint {
	return s.n.Bit(i)
}

// BitLen returns the number of bits required to represent s.
func (s *Scalar) BitLen() int {
	return s.n.BitLen()
}

// Clamp applies the RFC 7748/8032 scalar-clamping transform on a copy
// of k: clear the low 3 bits, clear the top bit, and set bit 254.
// This produces a fixed-255-bit scalar with the cofactor cleared, the
// shared bit-twiddling used by both X25519 and EdDSA secret
// expansion.
func Clamp(k [32]byte) [32]byte {
	out := k
	out[0] &= 248
	out[31] &= 127
	out[31] |= 64
	return out
}
