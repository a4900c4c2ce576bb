// Package cyclist contains an implementation of the Cyclist duplex
// function as defined in https://eprint.iacr.org/2018/767.pdf, generalised
// over the permutation package's Permutation interface so that it can be
// driven by Xoodoo, Keccak-p[1600] at any round count, or the generic
// reduced-width Keccak-p family. It is ported from the XKCP/Xoodyak
// reference construction. This package is experimental and unoptimized.
package cyclist

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	"hop.computer/cyclist/internal/zeroize"
	"hop.computer/cyclist/permutation"
)

// Phase is an enum used to represent the internal state of a Cyclist object.
type Phase int

// Cyclist has two phases: Up and Down. These are used internally by the
// permutation.
const (
	Up Phase = iota
	Down
)

// Mode is either Hash or Key.
type Mode int

// Known values of Mode.
const (
	Hash Mode = iota
	Key
)

// ErrInvalidKey is returned when a keyed Cyclist object is constructed with
// key material that does not fit in a single absorb block.
var ErrInvalidKey = errors.New("cyclist: key, id, and length byte exceed the keyed absorb rate")

// ErrTagMismatch is returned by Open when the computed authentication tag
// does not match the tag carried alongside the ciphertext.
var ErrTagMismatch = errors.New("cyclist: authentication tag mismatch")

// Cyclist is an implementation of the public interface for a Cyclist duplex
// object, parameterised over a permutation and its rates.
//
// Functions that are limited to Key or Hash mode will panic if called on an
// object in the wrong mode; this is a programming error, not a recoverable
// input failure, so no error value is returned for it.
type Cyclist struct {
	perm                        permutation.Permutation
	phase                       Phase
	mode                        Mode
	rAbsorb, rSqueeze, rRatchet int
	tagLen                      int
	s                           []byte
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// New returns a Cyclist object in unkeyed (hash) mode, driven by perm with
// the given rates.
func New(perm permutation.Permutation, rates permutation.Rates) *Cyclist {
	c := &Cyclist{perm: perm}
	c.initializeEmpty(rates)
	return c
}

// NewKeyed returns a Cyclist object in keyed mode, driven by perm with the
// given rates. id identifies the key (for example a session or
// counterparty identifier) and counter is an optional monotonic nonce
// extension absorbed at a one-byte rate, as in the reference construction.
// Either may be nil.
//
// It returns ErrInvalidKey if key, id, and the one-byte id-length field
// together exceed the keyed absorb rate.
func NewKeyed(perm permutation.Permutation, rates permutation.Rates, key, id, counter []byte) (*Cyclist, error) {
	c := &Cyclist{perm: perm}
	c.initializeEmpty(rates)
	if err := c.absorbKey(rates, key, id, counter); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cyclist) initializeEmpty(rates permutation.Rates) {
	c.phase = Up
	c.mode = Hash
	c.rAbsorb = rates.AbsorbRate
	c.rSqueeze = rates.SqueezeRate
	c.rRatchet = rates.RatchetRate
	c.tagLen = rates.TagLen
	c.s = make([]byte, c.perm.Width())
}

func (c *Cyclist) stateAddByte(b byte, offset int) {
	c.s[offset] ^= b
}

func (c *Cyclist) stateAddBytes(b []byte) {
	for i, v := range b {
		c.s[i] ^= v
	}
}

// stateCopyOut writes the first len(out) bytes of the state into out.
func (c *Cyclist) stateCopyOut(out []byte) {
	copy(out, c.s[:len(out)])
}

// stateCopyAndAddBytes writes the first len(in) bytes of the state XOR in
// into out.
func (c *Cyclist) stateCopyAndAddBytes(in, out []byte) {
	for i, v := range in {
		out[i] = c.s[i] ^ v
	}
}

func (c *Cyclist) f() {
	c.perm.Apply(c.s)
}

func (c *Cyclist) absorbAny(x []byte, r int, cd byte) {
	xLen := len(x)
	start := 0
	for {
		if c.phase != Up {
			c.up(nil, 0x00)
		}
		splitLen := min(xLen, r)
		c.down(x[start:start+splitLen], cd)
		cd = 0
		start += splitLen
		xLen -= splitLen
		if xLen == 0 {
			break
		}
	}
}

func (c *Cyclist) absorbKey(rates permutation.Rates, key, id, counter []byte) error {
	c.mode = Key
	c.rAbsorb = rates.KeyedAbsorbRate
	c.rSqueeze = rates.KeyedSqueeze
	c.rRatchet = rates.RatchetRate

	klen, idlen := len(key), len(id)
	if klen+idlen+1 > rates.KeyedAbsorbRate {
		return errors.Wrapf(ErrInvalidKey, "key=%d id=%d absorb-rate=%d", klen, idlen, rates.KeyedAbsorbRate)
	}
	kid := make([]byte, klen+idlen+1)
	copy(kid, key)
	copy(kid[klen:], id)
	kid[klen+idlen] = byte(idlen)
	c.absorbAny(kid, c.rAbsorb, 0x02)
	if len(counter) > 0 {
		c.absorbAny(counter, 1, 0x00)
	}
	return nil
}

func (c *Cyclist) crypt(out, in []byte, decrypt bool) {
	if len(in) == 0 {
		return
	}
	p := make([]byte, c.rSqueeze)
	cu := byte(0x80)
	ioLen := len(in)
	start := 0
	for {
		splitLen := min(ioLen, c.rSqueeze)
		end := start + splitLen
		if decrypt {
			c.up(nil, cu)
			c.stateCopyAndAddBytes(in[start:end], out[start:])
			c.down(out[start:end], 0x00)
		} else {
			copy(p[:splitLen], in[start:end])
			c.up(nil, cu)
			c.stateCopyAndAddBytes(in[start:end], out[start:])
			c.down(p[:splitLen], 0x00)
		}
		start += splitLen
		ioLen -= splitLen

		cu = 0x00
		if ioLen == 0 {
			break
		}
	}
}

func (c *Cyclist) squeezeAny(y []byte, cu byte) {
	yLen := len(y)
	upLen := min(yLen, c.rSqueeze)
	c.up(y[0:upLen], cu)
	start := upLen
	yLen -= upLen
	for yLen != 0 {
		c.down(nil, 0)
		upLen = min(yLen, c.rSqueeze)
		c.up(y[start:start+upLen], 0x00)
		start += upLen
		yLen -= upLen
	}
}

func (c *Cyclist) down(x []byte, cd byte) {
	c.stateAddBytes(x)
	c.stateAddByte(0x01, len(x))
	if c.mode == Hash {
		cd &= 0x01
	}
	c.stateAddByte(cd, c.perm.Width()-1)
	c.phase = Down
}

func (c *Cyclist) up(y []byte, cu byte) {
	if c.mode != Hash {
		c.stateAddByte(cu, c.perm.Width()-1)
	}
	c.f()
	c.phase = Up
	c.stateCopyOut(y)
}

// Absorb absorbs the entirety of x into the duplex state.
func (c *Cyclist) Absorb(x []byte) {
	c.absorbAny(x, c.rAbsorb, 0x03)
}

// Encrypt encrypts plaintext and writes to ciphertext. The output is the
// same length as the input. The ciphertext slice must already be allocated
// and must not alias plaintext.
func (c *Cyclist) Encrypt(ciphertext, plaintext []byte) {
	if c.mode != Key {
		panic("cyclist: encrypt requires keyed mode")
	}
	c.crypt(ciphertext, plaintext, false)
}

// Decrypt decrypts ciphertext to plaintext. The plaintext has the same
// length as the ciphertext. The plaintext slice must already be allocated
// and must not alias ciphertext. There is no authenticity tag checked here;
// use Seal/Open, or compare a Squeeze output, for authenticated use.
func (c *Cyclist) Decrypt(plaintext, ciphertext []byte) {
	if c.mode != Key {
		panic("cyclist: decrypt requires keyed mode")
	}
	c.crypt(plaintext, ciphertext, true)
}

// Squeeze outputs len(y) bytes.
func (c *Cyclist) Squeeze(y []byte) {
	c.squeezeAny(y, 0x40)
}

// SqueezeKey squeezes out len(y) bytes to be used as a new key. In keyed
// mode its output is domain-separated from Squeeze; in hash mode up adds no
// domain byte, so it yields the same bytes Squeeze would.
func (c *Cyclist) SqueezeKey(y []byte) {
	c.squeezeAny(y, 0x20)
}

// Ratchet irreversibly advances the duplex state so that a future state
// compromise cannot recover past outputs. It can only be called in keyed
// mode.
func (c *Cyclist) Ratchet() {
	if c.mode != Key {
		panic("cyclist: ratchet requires keyed mode")
	}
	y := make([]byte, c.rRatchet)
	c.squeezeAny(y, 0x10)
	c.absorbAny(y, c.rAbsorb, 0x00)
	zeroize.Bytes(y)
}

// Seal encrypts plaintext and appends an authentication tag, writing the
// result to dst (which may be nil) and returning the extended slice. It
// panics if called outside keyed mode.
func (c *Cyclist) Seal(dst, plaintext []byte) []byte {
	if c.mode != Key {
		panic("cyclist: seal requires keyed mode")
	}
	ret, ciphertext := sliceForAppend(dst, len(plaintext)+c.tagLen)
	c.Encrypt(ciphertext[:len(plaintext)], plaintext)
	c.Squeeze(ciphertext[len(plaintext):])
	return ret
}

// Open decrypts ciphertext, which must end with a tagLen-byte authentication
// tag, and verifies the tag in constant time. On success it returns the
// plaintext appended to dst. On failure it returns ErrTagMismatch and
// zeroizes the decrypted-but-unauthenticated plaintext before returning. It
// panics if called outside keyed mode.
func (c *Cyclist) Open(dst, ciphertext []byte) ([]byte, error) {
	if c.mode != Key {
		panic("cyclist: open requires keyed mode")
	}
	if len(ciphertext) < c.tagLen {
		return dst, errors.Wrapf(ErrTagMismatch, "ciphertext shorter than tag (%d < %d)", len(ciphertext), c.tagLen)
	}
	n := len(ciphertext) - c.tagLen
	ret, plaintext := sliceForAppend(dst, n)
	c.Decrypt(plaintext, ciphertext[:n])
	gotTag := make([]byte, c.tagLen)
	c.Squeeze(gotTag)
	if subtle.ConstantTimeCompare(gotTag, ciphertext[n:]) != 1 {
		zeroize.Bytes(plaintext)
		return dst, ErrTagMismatch
	}
	return ret, nil
}

// Zeroize clears the duplex state and the rate fields. The Cyclist object
// must not be used again afterward.
func (c *Cyclist) Zeroize() {
	zeroize.Bytes(c.s)
	c.rAbsorb, c.rSqueeze, c.rRatchet = 0, 0, 0
}

// TagLen returns the authentication tag length used by Seal and Open.
func (c *Cyclist) TagLen() int { return c.tagLen }

// Clone returns an independent copy of c. Squeezing or absorbing into the
// clone has no effect on c, and vice versa; this lets a façade expose a
// non-destructive Sum/Peek on top of the inherently stateful duplex.
func (c *Cyclist) Clone() *Cyclist {
	clone := *c
	clone.s = append([]byte(nil), c.s...)
	return &clone
}

func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

