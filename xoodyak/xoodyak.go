// Package xoodyak implements the Xoodyak lightweight hash and AEAD modes,
// the Cyclist duplex instantiated with the Xoodoo[12] permutation.
package xoodyak

import (
	"crypto/cipher"
	"hash"

	"github.com/sirupsen/logrus"

	"hop.computer/cyclist/cyclist"
	"hop.computer/cyclist/permutation"
)

const (
	// DefaultHashSize is the digest size Sum uses when no explicit length
	// is requested; Xoodyak has no fixed output length, but 32 bytes
	// (256-bit) matches its claimed security level.
	DefaultHashSize = 32

	// TagSize is the authentication tag length used by the AEAD mode.
	TagSize = 16
)

var hashRates = permutation.Rates{
	AbsorbRate:  16,
	SqueezeRate: 16,
}

var keyedRates = permutation.Rates{
	KeyedAbsorbRate: 44,
	KeyedSqueeze:    24,
	RatchetRate:     16,
	TagLen:          TagSize,
}

// Hash is a Xoodyak duplex object running in unkeyed mode, exposing a
// streaming hash.Hash interface plus an arbitrary-length Squeeze. Each Write
// is absorbed as its own domain-separated input, so the digest depends on
// how the input is split across Write calls.
type Hash struct {
	c    *cyclist.Cyclist
	size int
}

var _ hash.Hash = (*Hash)(nil)

// NewHash returns a Hash that produces DefaultHashSize-byte digests by default.
func NewHash() *Hash {
	return &Hash{c: cyclist.New(permutation.Xoodoo12, hashRates), size: DefaultHashSize}
}

// NewSize returns a Hash whose Sum produces size-byte digests.
func NewSize(size int) *Hash {
	return &Hash{c: cyclist.New(permutation.Xoodoo12, hashRates), size: size}
}

func (h *Hash) Write(p []byte) (int, error) {
	h.c.Absorb(p)
	return len(p), nil
}

// Sum appends the current digest to b without disturbing h, so writes may
// continue afterward.
func (h *Hash) Sum(b []byte) []byte {
	digest := h.Squeeze(h.size)
	return append(b, digest...)
}

// Squeeze returns n bytes of output without disturbing h.
func (h *Hash) Squeeze(n int) []byte {
	out := make([]byte, n)
	h.c.Clone().Squeeze(out)
	return out
}

func (h *Hash) Reset() {
	h.c = cyclist.New(permutation.Xoodoo12, hashRates)
}

func (h *Hash) Size() int { return h.size }

func (h *Hash) BlockSize() int { return hashRates.AbsorbRate }

// AEAD is a Xoodyak duplex object running in keyed mode, implementing
// crypto/cipher.AEAD on top of Cyclist's Seal/Open.
//
// Xoodyak's keyed mode is session-oriented rather than one-shot: freshness
// across Seal calls comes from the sequential duplex state (and, when the
// caller invokes Ratchet, forward secrecy against a later state
// compromise), not from a per-message nonce. NonceSize is therefore 0, and
// Seal/Open require an empty nonce; a fresh nonce belongs in the id or
// counter argument to NewAEAD, at construction time.
type AEAD struct {
	c *cyclist.Cyclist
}

var _ cipher.AEAD = (*AEAD)(nil)

// NewAEAD returns a Xoodyak AEAD keyed with key, identified by id, and
// optionally extended with a monotonic counter, per the Cyclist keyed
// constructor. It returns cyclist.ErrInvalidKey if key, id, and the
// implicit length byte exceed the keyed absorb rate.
func NewAEAD(key, id, counter []byte) (*AEAD, error) {
	c, err := cyclist.NewKeyed(permutation.Xoodoo12, keyedRates, key, id, counter)
	if err != nil {
		return nil, err
	}
	return &AEAD{c: c}, nil
}

func (a *AEAD) NonceSize() int { return 0 }

func (a *AEAD) Overhead() int { return a.c.TagLen() }

func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != 0 {
		panic("xoodyak: AEAD is session-oriented, Seal requires an empty nonce")
	}
	if len(additionalData) > 0 {
		a.c.Absorb(additionalData)
	}
	logrus.Debugf("xoodyak: sealing %d bytes with %d bytes of associated data", len(plaintext), len(additionalData))
	return a.c.Seal(dst, plaintext)
}

func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 0 {
		panic("xoodyak: AEAD is session-oriented, Open requires an empty nonce")
	}
	if len(additionalData) > 0 {
		a.c.Absorb(additionalData)
	}
	logrus.Debugf("xoodyak: opening %d bytes with %d bytes of associated data", len(ciphertext), len(additionalData))
	plaintext, err := a.c.Open(dst, ciphertext)
	if err != nil {
		logrus.Debug("xoodyak: tag mismatch")
	}
	return plaintext, err
}

// Ratchet irreversibly advances the AEAD's duplex state, so a later
// compromise of the state cannot recover the keystream of earlier messages.
func (a *AEAD) Ratchet() { a.c.Ratchet() }

// SqueezeKey derives n bytes of new key material from the current state,
// for out-of-band rekeying.
func (a *AEAD) SqueezeKey(n int) []byte {
	out := make([]byte, n)
	a.c.SqueezeKey(out)
	return out
}
