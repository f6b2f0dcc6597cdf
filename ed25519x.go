// Package ed25519x is the public façade: generate a private key,
// derive its public key, sign, verify, and compute an X25519 shared
// secret from an Ed25519 keypair. Every operation accepts either a
// structured argument (PrivateKey/PublicKey/Signature) or an encoded
// byte string with an explicit encoding tag, modeled as the
// tagged-variant Arg types below rather than by duck typing.
package ed25519x

import (
	"fmt"

	"github.com/athanorlabs/ed25519x/codec"
	"github.com/athanorlabs/ed25519x/eddsa"
	"github.com/athanorlabs/ed25519x/errs"
)

// Re-exported so callers of this package need not import eddsa
// directly for the common types.
type (
	PrivateKey = eddsa.PrivateKey
	PublicKey  = eddsa.PublicKey
	Signature  = eddsa.Signature
	Encoding   = codec.Encoding
	Params     = eddsa.Params
)

// Encoding tag values, re-exported from package codec.
const (
	Raw    = codec.Raw
	Base16 = codec.Base16
	Hex    = codec.Hex
	Base64 = codec.Base64
)

// Encode is re-exported from package codec so callers need not import
// it directly for the common encoding helpers.
var Encode = codec.Encode

type argKind int

const (
	kindStructured argKind = iota
	kindEncoded
)

// PrivateKeyArg is the tagged variant accepted wherever an operation
// takes either a PrivateKey or 32 encoded bytes.
type PrivateKeyArg struct {
	kind    argKind
	key     PrivateKey
	encoded string
	enc     Encoding
}

// FromPrivateKey wraps a structured PrivateKey.
func FromPrivateKey(k PrivateKey) PrivateKeyArg {
	return PrivateKeyArg{kind: kindStructured, key: k}
}

// FromEncodedPrivateKey wraps an encoded 32-byte private key.
func FromEncodedPrivateKey(s string, enc Encoding) PrivateKeyArg {
	return PrivateKeyArg{kind: kindEncoded, encoded: s, enc: enc}
}

func (a PrivateKeyArg) resolve() (PrivateKey, error) {
	switch a.kind {
	case kindStructured:
		return a.key, nil
	case kindEncoded:
		b, err := codec.DecodeExact(a.enc, a.encoded, eddsa.SeedSize)
		if err != nil {
			return PrivateKey{}, err
		}
		var pk PrivateKey
		copy(pk[:], b)
		return pk, nil
	default:
		return PrivateKey{}, fmt.Errorf("%w: unrecognized private key argument", errs.ErrDecodeError)
	}
}

// PublicKeyArg is the tagged variant accepted wherever an operation
// takes either a PublicKey or 32 encoded bytes.
type PublicKeyArg struct {
	kind    argKind
	key     *PublicKey
	encoded string
	enc     Encoding
}

// FromPublicKey wraps a structured PublicKey.
func FromPublicKey(k *PublicKey) PublicKeyArg {
	return PublicKeyArg{kind: kindStructured, key: k}
}

// FromEncodedPublicKey wraps a compressed, encoded 32-byte public key.
func FromEncodedPublicKey(s string, enc Encoding) PublicKeyArg {
	return PublicKeyArg{kind: kindEncoded, encoded: s, enc: enc}
}

func (a PublicKeyArg) resolve() (*PublicKey, error) {
	switch a.kind {
	case kindStructured:
		return a.key, nil
	case kindEncoded:
		b, err := codec.DecodeExact(a.enc, a.encoded, 32)
		if err != nil {
			return nil, err
		}
		var raw [32]byte
		copy(raw[:], b)
		return eddsa.PublicKeyFromBytes(raw)
	default:
		return nil, fmt.Errorf("%w: unrecognized public key argument", errs.ErrDecodeError)
	}
}

// SignatureArg is the tagged variant accepted wherever an operation
// takes either a Signature or 64 encoded bytes.
type SignatureArg struct {
	kind    argKind
	sig     *Signature
	encoded string
	enc     Encoding
}

// FromSignature wraps an already-parsed Signature.
func FromSignature(sig *Signature) SignatureArg {
	return SignatureArg{kind: kindStructured, sig: sig}
}

// FromEncodedSignature wraps a 64-byte encoded signature.
func FromEncodedSignature(s string, enc Encoding) SignatureArg {
	return SignatureArg{kind: kindEncoded, encoded: s, enc: enc}
}

func (a SignatureArg) resolve() (*Signature, error) {
	switch a.kind {
	case kindStructured:
		return a.sig, nil
	case kindEncoded:
		b, err := codec.DecodeExact(a.enc, a.encoded, eddsa.SignatureSize)
		if err != nil {
			return nil, err
		}
		var raw [64]byte
		copy(raw[:], b)
		return eddsa.ParseSignature(raw)
	default:
		return nil, fmt.Errorf("%w: unrecognized signature argument", errs.ErrDecodeError)
	}
}

// GenerateKey draws a fresh private key from crypto/rand.
func GenerateKey() (PrivateKey, error) {
	return eddsa.GenerateKey(nil)
}

// GenerateKeyEncoded draws a fresh private key and returns it encoded
// per enc.
func GenerateKeyEncoded(enc Encoding) (string, error) {
	k, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return codec.Encode(enc, k[:]), nil
}

// GetPubkey derives the public key for the given private key.
func GetPubkey(d PrivateKeyArg) (*PublicKey, error) {
	key, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return eddsa.Default().Public(key)
}

// GetPubkeyEncoded derives the public key and returns its compressed
// encoding per enc.
func GetPubkeyEncoded(d PrivateKeyArg, enc Encoding) (string, error) {
	pub, err := GetPubkey(d)
	if err != nil {
		return "", err
	}
	b := pub.Bytes()
	return codec.Encode(enc, b[:]), nil
}

// Sign produces a signature over message under the given private key.
func Sign(message []byte, d PrivateKeyArg) (*Signature, error) {
	key, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return eddsa.Default().Sign(message, key)
}

// SignEncoded signs message and returns the 64-byte signature encoded
// per enc.
func SignEncoded(message []byte, d PrivateKeyArg, enc Encoding) (string, error) {
	sig, err := Sign(message, d)
	if err != nil {
		return "", err
	}
	b := sig.Bytes()
	return codec.Encode(enc, b[:]), nil
}

// Verify checks sig over message against pub. It distinguishes three
// outcomes: (true, nil) — valid; (false, nil) — well-formed but
// invalid; (false, err) — sig or pub could not be parsed, where err
// wraps errs.ErrDecodeError (bad encoding or length),
// errs.ErrInvalidSignature (undecodable R or s >= L) or
// errs.ErrInvalidPoint (undecodable public key). A structured
// SignatureArg/PublicKeyArg is used as given and never fails to
// resolve; the error outcome comes from encoded arguments.
func Verify(sig SignatureArg, message []byte, pub PublicKeyArg) (bool, error) {
	s, err := sig.resolve()
	if err != nil {
		return false, err
	}
	p, err := pub.resolve()
	if err != nil {
		return false, err
	}
	return eddsa.Default().Verify(s, message, p), nil
}

// GetSharedSecret computes the X25519 shared secret between dSelf and
// the peer's Ed25519 public key.
func GetSharedSecret(dSelf PrivateKeyArg, peer PublicKeyArg) ([32]byte, error) {
	d, err := dSelf.resolve()
	if err != nil {
		return [32]byte{}, err
	}
	p, err := peer.resolve()
	if err != nil {
		return [32]byte{}, err
	}
	return eddsa.Default().SharedSecret(d, p)
}

// GetSharedSecretEncoded computes the shared secret and returns it
// encoded per enc.
func GetSharedSecretEncoded(dSelf PrivateKeyArg, peer PublicKeyArg, enc Encoding) (string, error) {
	secret, err := GetSharedSecret(dSelf, peer)
	if err != nil {
		return "", err
	}
	return codec.Encode(enc, secret[:]), nil
}

// GetParams returns the curve constants p, a, d, G, L, h.
func GetParams() Params {
	return eddsa.GetParams()
}
