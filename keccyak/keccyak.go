// Package keccyak implements Keccyak, the Cyclist duplex instantiated with
// Keccak-p[1600] at various round counts rather than Xoodoo[12]. It is not
// a published Xoodyak-family configuration or a submitted NIST candidate;
// there is no official security analysis backing its round counts. It
// rounds out the permutation-generic duplex with the heavier, higher-rate
// Keccak-p[1600] permutation.
package keccyak

import (
	"crypto/cipher"
	"hash"

	"github.com/sirupsen/logrus"

	"hop.computer/cyclist/cyclist"
	"hop.computer/cyclist/permutation"
)

// variant bundles a Keccak-p[1600] round count with the hash-mode and
// keyed-mode rates the reference construction uses at that round count.
type variant struct {
	perm      permutation.Permutation
	hashRate  int
	keyed     permutation.Rates
}

// Max runs the full 24-round Keccak-f[1600], the heaviest and most
// conservative member of the family.
var Max = variant{
	perm:     permutation.KeccakF1600,
	hashRate: 72,
	keyed:    permutation.Rates{KeyedAbsorbRate: 192, KeyedSqueeze: 168, RatchetRate: 32, TagLen: 32},
}

// Keccyak256 runs 14 rounds ("M14"/MarsupilamiFourteen).
var Keccyak256 = variant{
	perm:     permutation.KeccakP1600_14,
	hashRate: 136,
	keyed:    permutation.Rates{KeyedAbsorbRate: 192, KeyedSqueeze: 168, RatchetRate: 32, TagLen: 32},
}

// Keccyak128 runs 12 rounds ("K12"/KangarooTwelve).
var Keccyak128 = variant{
	perm:     permutation.KeccakP1600_12,
	hashRate: 168,
	keyed:    permutation.Rates{KeyedAbsorbRate: 196, KeyedSqueeze: 176, RatchetRate: 16, TagLen: 16},
}

// Min runs 10 rounds ("KitTen"), reusing Keccyak128's rates.
var Min = variant{
	perm:     permutation.KeccakP1600_10,
	hashRate: 168,
	keyed:    permutation.Rates{KeyedAbsorbRate: 196, KeyedSqueeze: 176, RatchetRate: 16, TagLen: 16},
}

func (v variant) hashRates() permutation.Rates {
	return permutation.Rates{AbsorbRate: v.hashRate, SqueezeRate: v.hashRate}
}

// Hash is a Keccyak duplex object running in unkeyed mode.
type Hash struct {
	v    variant
	c    *cyclist.Cyclist
	size int
}

var _ hash.Hash = (*Hash)(nil)

func newHash(v variant, size int) *Hash {
	return &Hash{v: v, c: cyclist.New(v.perm, v.hashRates()), size: size}
}

// NewMaxHash, NewKeccyak256Hash, NewKeccyak128Hash, and NewMinHash return a
// Hash at the named variant's round count, producing size-byte digests.
func NewMaxHash(size int) *Hash        { return newHash(Max, size) }
func NewKeccyak256Hash(size int) *Hash { return newHash(Keccyak256, size) }
func NewKeccyak128Hash(size int) *Hash { return newHash(Keccyak128, size) }
func NewMinHash(size int) *Hash        { return newHash(Min, size) }

func (h *Hash) Write(p []byte) (int, error) {
	h.c.Absorb(p)
	return len(p), nil
}

// Sum appends the current digest to b without disturbing h.
func (h *Hash) Sum(b []byte) []byte {
	return append(b, h.Squeeze(h.size)...)
}

// Squeeze returns n bytes of output without disturbing h.
func (h *Hash) Squeeze(n int) []byte {
	out := make([]byte, n)
	h.c.Clone().Squeeze(out)
	return out
}

func (h *Hash) Reset()         { h.c = cyclist.New(h.v.perm, h.v.hashRates()) }
func (h *Hash) Size() int      { return h.size }
func (h *Hash) BlockSize() int { return h.v.hashRate }

// AEAD is a Keccyak duplex object running in keyed mode, implementing
// crypto/cipher.AEAD. As with Xoodyak's AEAD, it is session-oriented:
// NonceSize is 0 and freshness comes from the sequential duplex state (and
// Ratchet), not a per-message nonce.
type AEAD struct {
	c *cyclist.Cyclist
}

var _ cipher.AEAD = (*AEAD)(nil)

func newAEAD(v variant, key, id, counter []byte) (*AEAD, error) {
	c, err := cyclist.NewKeyed(v.perm, v.keyed, key, id, counter)
	if err != nil {
		return nil, err
	}
	return &AEAD{c: c}, nil
}

func NewMaxAEAD(key, id, counter []byte) (*AEAD, error) {
	return newAEAD(Max, key, id, counter)
}
func NewKeccyak256AEAD(key, id, counter []byte) (*AEAD, error) {
	return newAEAD(Keccyak256, key, id, counter)
}
func NewKeccyak128AEAD(key, id, counter []byte) (*AEAD, error) {
	return newAEAD(Keccyak128, key, id, counter)
}
func NewMinAEAD(key, id, counter []byte) (*AEAD, error) {
	return newAEAD(Min, key, id, counter)
}

func (a *AEAD) NonceSize() int { return 0 }
func (a *AEAD) Overhead() int  { return a.c.TagLen() }

func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != 0 {
		panic("keccyak: AEAD is session-oriented, Seal requires an empty nonce")
	}
	if len(additionalData) > 0 {
		a.c.Absorb(additionalData)
	}
	logrus.Debugf("keccyak: sealing %d bytes with %d bytes of associated data", len(plaintext), len(additionalData))
	return a.c.Seal(dst, plaintext)
}

func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 0 {
		panic("keccyak: AEAD is session-oriented, Open requires an empty nonce")
	}
	if len(additionalData) > 0 {
		a.c.Absorb(additionalData)
	}
	logrus.Debugf("keccyak: opening %d bytes with %d bytes of associated data", len(ciphertext), len(additionalData))
	plaintext, err := a.c.Open(dst, ciphertext)
	if err != nil {
		logrus.Debug("keccyak: tag mismatch")
	}
	return plaintext, err
}

// Ratchet irreversibly advances the AEAD's duplex state.
func (a *AEAD) Ratchet() { a.c.Ratchet() }

// SqueezeKey derives n bytes of new key material from the current state.
func (a *AEAD) SqueezeKey(n int) []byte {
	out := make([]byte, n)
	a.c.SqueezeKey(out)
	return out
}
