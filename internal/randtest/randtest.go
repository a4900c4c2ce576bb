// Package randtest provides deterministic, seedable byte streams for
// property-based tests: streaming/one-shot equivalence, tamper-detection,
// and domain-separation checks that need many distinct but reproducible
// inputs rather than a single fixed vector.
package randtest

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
)

var ctrIV = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var ctrMask = [aes.BlockSize]byte{
	0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77,
	0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77,
}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. It returns a deterministic byte sequence based
// on the seed and the total number of bytes read so far; the size of
// individual Read calls does not matter. It cannot fail.
func (c *ctrReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += len(ctrMask) {
		chunk := p[i:]
		n := len(chunk)
		if n > len(ctrMask) {
			n = len(ctrMask)
		}
		c.stream.XORKeyStream(chunk[:n], ctrMask[:n])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// Reader returns a deterministic byte stream keyed by seed, built from AES
// in CTR mode over a static IV and a static mask. It is not suitable as a
// source of real randomness; it exists only to generate varied-but-
// reproducible test inputs.
func Reader(seed uint64) io.Reader {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(fmt.Sprintf("randtest: aes.NewCipher: %s", err))
	}
	return &ctrReader{stream: cipher.NewCTR(block, ctrIV[:])}
}

// Bytes returns n deterministic bytes keyed by seed.
func Bytes(seed uint64, n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader(seed), b); err != nil {
		panic(fmt.Sprintf("randtest: ReadFull: %s", err))
	}
	return b
}

// CoinFlipper flips a deterministic, seed-derived biased coin, used to
// decide between two test branches (e.g. "absorb" vs "squeeze" in a
// randomized transcript) reproducibly across runs.
type CoinFlipper struct {
	r    *ctrReader
	bits int
}

// NewCoinFlipper returns a CoinFlipper keyed by seed. bits controls the
// bias: Flip returns true only when the low `bits` bits of the next byte
// are all zero, so bits=0 always returns true and higher values make heads
// rarer.
func NewCoinFlipper(seed uint64, bits int) *CoinFlipper {
	if bits < 0 || bits > 7 {
		panic(fmt.Sprintf("randtest: bits must be in [0,7], got %d", bits))
	}
	r := Reader(seed).(*ctrReader)
	return &CoinFlipper{r: r, bits: bits}
}

// Flip flips the coin. True represents heads.
func (f *CoinFlipper) Flip() bool {
	var buf [1]byte
	if _, err := f.r.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("randtest: Read: %s", err))
	}
	mask := byte((1 << f.bits) - 1)
	return buf[0]&mask == 0
}
