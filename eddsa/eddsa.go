// Package eddsa implements RFC 8032 Ed25519 key generation, signing
// and verification, plus X25519 shared-secret derivation from an
// Ed25519 keypair.
package eddsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/athanorlabs/ed25519x/edwards25519"
	"github.com/athanorlabs/ed25519x/errs"
	"github.com/athanorlabs/ed25519x/field"
	"github.com/athanorlabs/ed25519x/scalar"
	"github.com/athanorlabs/ed25519x/x25519"
)

// SeedSize is the length in bytes of a private key seed.
const SeedSize = 32

// SignatureSize is the length in bytes of an encoded signature.
const SignatureSize = 64

// PrivateKey is an opaque 32-byte seed. Once produced it is
// immutable; owners are encouraged (not required) to zeroize it on
// destruction.
type PrivateKey [SeedSize]byte

// PublicKey holds the AffinePoint derived once from a PrivateKey.
type PublicKey struct {
	point *edwards25519.AffinePoint
}

// Point returns the underlying curve point.
func (pk *PublicKey) Point() *edwards25519.AffinePoint { return pk.point }

// Bytes returns the 32-byte compressed encoding of the public key.
func (pk *PublicKey) Bytes() [32]byte { return pk.point.Compress() }

// Equal reports whether two public keys encode the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// PublicKeyFromBytes decodes a compressed public key.
func PublicKeyFromBytes(b [32]byte) (*PublicKey, error) {
	p, err := edwards25519.Decompress(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: p}, nil
}

// Signature is the pair (R, s) produced by Sign.
type Signature struct {
	R *edwards25519.AffinePoint
	S *scalar.Scalar
}

// Bytes serializes the signature as compress(R) || s little-endian.
func (sig *Signature) Bytes() [64]byte {
	var out [64]byte
	r := sig.R.Compress()
	s := sig.S.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// ParseSignature decodes a 64-byte signature. Malformed input (a
// non-canonical/undecodable R, or s >= L) fails with
// ErrInvalidSignature, distinct from a well-formed signature that
// merely fails verification.
func ParseSignature(b [64]byte) (*Signature, error) {
	var rb [32]byte
	copy(rb[:], b[:32])
	R, err := edwards25519.Decompress(rb)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSignature, err)
	}

	var sb [32]byte
	copy(sb[:], b[32:])
	s, err := scalar.SetCanonicalBytes(sb)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSignature, err)
	}

	return &Signature{R: R, S: s}, nil
}

// Context binds an EdDSA instance to a hash function. Curve
// parameters and the bound hash are fixed for the lifetime of a
// Context; there is no runtime mutation.
type Context struct {
	hasher Hasher
}

// NewContext builds a Context bound to h. A nil h defaults to
// SHA512Hasher, matching RFC 8032.
func NewContext(h Hasher) *Context {
	if h == nil {
		h = SHA512Hasher{}
	}
	return &Context{hasher: h}
}

// defaultCtx is the process-wide default binding, SHA-512, set once
// at package initialization.
var defaultCtx = NewContext(SHA512Hasher{})

// Default returns the process-wide default Context (SHA-512).
func Default() *Context { return defaultCtx }

// GenerateKey draws a fresh 32-byte private key from rnd. A nil rnd
// uses crypto/rand.
func GenerateKey(rnd io.Reader) (PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var d PrivateKey
	if _, err := io.ReadFull(rnd, d[:]); err != nil {
		return PrivateKey{}, err
	}
	return d, nil
}

// expanded holds the intermediate values of RFC 8032 secret
// expansion.
type expanded struct {
	a      *scalar.Scalar
	prefix []byte
	head   [32]byte
	A      *edwards25519.AffinePoint
}

// expand performs RFC 8032 secret expansion: H(d) = head || prefix,
// a = decode_le(clamp(head)) mod L, A = [a]G.
func (c *Context) expand(d PrivateKey) (*expanded, error) {
	h := c.hasher.Hash(d[:])

	var head [32]byte
	copy(head[:], h[:32])
	prefix := append([]byte(nil), h[32:]...)

	clamped := scalar.Clamp(head)
	a := scalar.ReduceWideBytes(clamped[:])

	aG, err := edwards25519.Mul(edwards25519.Generator(), a)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}
	A, err := aG.ToAffine()
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	return &expanded{a: a, prefix: prefix, head: head, A: A}, nil
}

// Public derives the public key for d.
func (c *Context) Public(d PrivateKey) (*PublicKey, error) {
	exp, err := c.expand(d)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: exp.A}, nil
}

// Sign implements the RFC 8032 signing algorithm.
//
// The scalar multiplications below (a*G during expansion, r*G here)
// process secret scalars through the variable-time edwards25519.Mul.
// A deployment handling untrusted or high-value keys should upgrade
// this path to a constant-time scalar multiplier.
func (c *Context) Sign(message []byte, d PrivateKey) (*Signature, error) {
	exp, err := c.expand(d)
	if err != nil {
		return nil, err
	}

	rPreimage := append(append([]byte(nil), exp.prefix...), message...)
	rHash := c.hasher.Hash(rPreimage)
	r := scalar.ReduceWideBytes(rHash[:])

	rG, err := edwards25519.Mul(edwards25519.Generator(), r)
	if err != nil {
		return nil, fmt.Errorf("failed to compute R: %w", err)
	}
	R, err := rG.ToAffine()
	if err != nil {
		return nil, fmt.Errorf("failed to compute R: %w", err)
	}

	compressedR := R.Compress()
	compressedA := exp.A.Compress()
	kPreimage := append(append(append([]byte(nil), compressedR[:]...), compressedA[:]...), message...)
	kHash := c.hasher.Hash(kPreimage)
	k := scalar.ReduceWideBytes(kHash[:])

	s := scalar.Add(r, scalar.Mul(k, exp.a))

	return &Signature{R: R, S: s}, nil
}

// Verify implements the RFC 8032 verification algorithm: compute
// P = [8]*(R + [k]A - [s]G), accept iff P is the neutral element.
// sig is assumed already well-formed; callers verifying raw signature
// bytes should use ParseSignature first and treat its error as
// ErrInvalidSignature/ErrDecodeError.
func (c *Context) Verify(sig *Signature, message []byte, pub *PublicKey) bool {
	compressedR := sig.R.Compress()
	compressedA := pub.Bytes()
	kPreimage := append(append(append([]byte(nil), compressedR[:]...), compressedA[:]...), message...)
	kHash := c.hasher.Hash(kPreimage)
	k := scalar.ReduceWideBytes(kHash[:])

	Rext := edwards25519.FromAffine(sig.R)
	Aext := edwards25519.FromAffine(pub.point)

	kA, err := edwards25519.Mul(Aext, k)
	if err != nil {
		return false
	}
	sG, err := edwards25519.Mul(edwards25519.Generator(), sig.S)
	if err != nil {
		return false
	}

	combined := edwards25519.Sub(edwards25519.Add(Rext, kA), sG)

	eight := scalar.FromUint64(8)
	result, err := edwards25519.Mul(combined, eight)
	if err != nil {
		return false
	}

	return edwards25519.Eq(result, edwards25519.Identity())
}

// SharedSecret derives an X25519 shared secret from an Ed25519
// keypair: expand dSelf to obtain its clamped head, convert the
// peer's Edwards y-coordinate to a Montgomery u-coordinate, and run
// the ladder. It fails with ErrInvalidKey for a low-order peer key.
func (c *Context) SharedSecret(dSelf PrivateKey, peer *PublicKey) ([32]byte, error) {
	exp, err := c.expand(dSelf)
	if err != nil {
		return [32]byte{}, err
	}

	clamped := scalar.Clamp(exp.head)
	u := x25519.EdwardsYToU(peer.point.Y)

	result, err := x25519.Ladder(clamped, u)
	if err != nil {
		return [32]byte{}, err
	}
	return x25519.EncodeUCoordinate(result), nil
}

// Params exposes the compile-time curve constants.
type Params struct {
	P   *big.Int
	A   *field.Element
	D   *field.Element
	G   *edwards25519.AffinePoint
	L   *big.Int
	H   uint8
	A24 *field.Element
}

// GetParams returns the curve parameters.
func GetParams() Params {
	g, err := edwards25519.Generator().ToAffine()
	if err != nil {
		panic("eddsa: generator failed to project to affine coordinates")
	}
	return Params{
		P:   field.P,
		A:   edwards25519.A,
		D:   edwards25519.D,
		G:   g,
		L:   scalar.L,
		H:   8,
		A24: x25519.A24,
	}
}
