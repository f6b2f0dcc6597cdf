package eddsa

import (
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// Hasher is the pluggable 64-byte hash binding used to derive R and
// the challenge scalar. Any type implementing Hash([]byte) [64]byte
// can back an EdDSA Context.
type Hasher interface {
	Hash(data []byte) [64]byte
}

// SHA512Hasher is the default hash binding, SHA-512 (RFC 8032).
type SHA512Hasher struct{}

// Hash implements Hasher.
func (SHA512Hasher) Hash(data []byte) [64]byte {
	return sha512.Sum512(data)
}

// SHA3Hasher is an alternate hash binding backed by SHA3-512, useful
// for callers who want a hash from a different construction than
// SHA-512 without touching the signing code.
type SHA3Hasher struct{}

// Hash implements Hasher.
func (SHA3Hasher) Hash(data []byte) [64]byte {
	return sha3.Sum512(data)
}
