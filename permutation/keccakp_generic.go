package permutation

import "math/bits"

// KeccakPGeneric is a lane-width-generic Keccak-p permutation, covering
// the smaller members of the Keccak-p family (b=200/400/800 bits, i.e.
// lane widths of 8/16/32 bits) that Keccyak does not standardise but
// which round out the permutation family. There is no published Cyclist
// parameterisation or test vector for these widths; this implementation
// is provided for completeness of the permutation abstraction and is
// exercised only by a test that checks Apply changes its input, not by
// known-answer tests.
//
// Only theta/rho's rotation amount and iota's round constants depend on
// lane width: rho offsets are the standard Keccak table reduced modulo
// the lane's bit width, and each round constant is truncated to the
// lane's low bits. The full round count is 12+2l for a lane of 2^l bits,
// and a reduced-round instance runs the last rounds of those. Pi and chi
// are lane-width agnostic.
type KeccakPGeneric struct {
	laneBits int
	rounds   int
}

// NewKeccakPGeneric returns a Keccak-p permutation with the given lane
// width in bits (8, 16, 32, or 64) and round count (at most 12+2l for a
// lane of 2^l bits), operating over a state of 25*laneBits/8 bytes.
func NewKeccakPGeneric(laneBits, rounds int) KeccakPGeneric {
	switch laneBits {
	case 8, 16, 32, 64:
	default:
		panic("permutation: keccak-p generic lane width must be 8, 16, 32, or 64 bits")
	}
	if rounds < 0 || rounds > 12+2*bits.TrailingZeros(uint(laneBits)) {
		panic("permutation: keccak-p generic round count out of range")
	}
	return KeccakPGeneric{laneBits: laneBits, rounds: rounds}
}

// KeccakP200 is Keccak-p[200,rounds]: 25 one-byte lanes.
func KeccakP200(rounds int) KeccakPGeneric { return NewKeccakPGeneric(8, rounds) }

// KeccakP400 is Keccak-p[400,rounds]: 25 two-byte lanes.
func KeccakP400(rounds int) KeccakPGeneric { return NewKeccakPGeneric(16, rounds) }

// KeccakP800 is Keccak-p[800,rounds]: 25 four-byte lanes.
func KeccakP800(rounds int) KeccakPGeneric { return NewKeccakPGeneric(32, rounds) }

func (k KeccakPGeneric) Width() int { return 25 * k.laneBits / 8 }

// keccakRhoOffsets is the standard Keccak rho rotation-offset table,
// indexed [x][y], reduced modulo the lane's bit width by Apply.
var keccakRhoOffsets = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

func (k KeccakPGeneric) Apply(state []byte) {
	w := k.Width()
	if len(state) != w {
		panic("permutation: keccak-p generic state size mismatch")
	}

	laneBytes := k.laneBits / 8
	mask := uint64(1)<<uint(k.laneBits) - 1
	if k.laneBits == 64 {
		mask = ^uint64(0)
	}

	var lanes [25]uint64
	for i := 0; i < 25; i++ {
		var v uint64
		for b := 0; b < laneBytes; b++ {
			v |= uint64(state[i*laneBytes+b]) << uint(8*b)
		}
		lanes[i] = v
	}

	rotl := func(x uint64, n uint) uint64 {
		n %= uint(k.laneBits)
		if n == 0 {
			return x & mask
		}
		return ((x << n) | (x >> (uint(k.laneBits) - n))) & mask
	}

	idx := func(x, y int) int { return x + 5*y }

	// Keccak-p[b,nr] runs rounds 12+2l-nr .. 12+2l-1 of the round schedule.
	fullRounds := 12 + 2*bits.TrailingZeros(uint(k.laneBits))
	for _, rc64 := range keccakRoundKeys[fullRounds-k.rounds : fullRounds] {
		rc := rc64 & mask

		// theta
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = lanes[idx(x, 0)] ^ lanes[idx(x, 1)] ^ lanes[idx(x, 2)] ^ lanes[idx(x, 3)] ^ lanes[idx(x, 4)]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				lanes[idx(x, y)] ^= d[x]
			}
		}

		// rho + pi
		var b [25]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				tx := y
				ty := (2*x + 3*y) % 5
				b[idx(tx, ty)] = rotl(lanes[idx(x, y)], keccakRhoOffsets[x][y])
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				lanes[idx(x, y)] = b[idx(x, y)] ^ ((^b[idx((x+1)%5, y)]) & b[idx((x+2)%5, y)] & mask)
			}
		}

		// iota
		lanes[0] ^= rc
	}

	for i := 0; i < 25; i++ {
		v := lanes[i]
		for b := 0; b < laneBytes; b++ {
			state[i*laneBytes+b] = byte(v >> uint(8*b))
		}
	}
}
