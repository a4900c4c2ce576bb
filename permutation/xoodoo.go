package permutation

import (
	"encoding/binary"
	"math/bits"
)

// xoodooWidth is the fixed state size of Xoodoo: 12 lanes of 4 bytes.
const xoodooWidth = 48

const xoodooMaxRounds = 12

// xoodooRoundKeys are the 12 round constants of Xoodoo, taken from the
// last R of them for a reduced-round variant.
var xoodooRoundKeys = [xoodooMaxRounds]uint32{
	0x00000058, 0x00000038, 0x000003C0, 0x000000D0, 0x00000120, 0x00000014,
	0x00000060, 0x0000002C, 0x00000380, 0x000000F0, 0x000001A0, 0x00000012,
}

// Xoodoo is the Xoodoo[rounds] permutation over a 48-byte state arranged
// as 12 little-endian 32-bit lanes. Xoodoo12 and Xoodoo6 are the two
// standard round counts; other values are accepted for experimentation
// but have no published security analysis.
type Xoodoo struct {
	rounds int
}

// NewXoodoo returns the Xoodoo permutation reduced to the given number
// of rounds, taken from the end of the standard 12-round schedule.
func NewXoodoo(rounds int) Xoodoo {
	if rounds < 0 || rounds > xoodooMaxRounds {
		panic("permutation: xoodoo round count out of range")
	}
	return Xoodoo{rounds: rounds}
}

// Xoodoo12 is the full, standard Xoodoo permutation used by Xoodyak.
var Xoodoo12 = NewXoodoo(12)

// Xoodoo6 is the reduced, 6-round Xoodoo variant.
var Xoodoo6 = NewXoodoo(6)

func (x Xoodoo) Width() int { return xoodooWidth }

func (x Xoodoo) Apply(state []byte) {
	if len(state) != xoodooWidth {
		panic("permutation: xoodoo state must be 48 bytes")
	}

	var st [12]uint32
	for i := range st {
		st[i] = binary.LittleEndian.Uint32(state[i*4:])
	}

	for _, rc := range xoodooRoundKeys[xoodooMaxRounds-x.rounds:] {
		p0 := st[0] ^ st[4] ^ st[8]
		p1 := st[1] ^ st[5] ^ st[9]
		p2 := st[2] ^ st[6] ^ st[10]
		p3 := st[3] ^ st[7] ^ st[11]

		e0 := bits.RotateLeft32(p3, 5) ^ bits.RotateLeft32(p3, 14)
		e1 := bits.RotateLeft32(p0, 5) ^ bits.RotateLeft32(p0, 14)
		e2 := bits.RotateLeft32(p1, 5) ^ bits.RotateLeft32(p1, 14)
		e3 := bits.RotateLeft32(p2, 5) ^ bits.RotateLeft32(p2, 14)

		tmp0 := e0 ^ st[0] ^ rc
		tmp1 := e1 ^ st[1]
		tmp2 := e2 ^ st[2]
		tmp3 := e3 ^ st[3]
		tmp4 := e3 ^ st[7]
		tmp5 := e0 ^ st[4]
		tmp6 := e1 ^ st[5]
		tmp7 := e2 ^ st[6]
		tmp8 := bits.RotateLeft32(e0^st[8], 11)
		tmp9 := bits.RotateLeft32(e1^st[9], 11)
		tmp10 := bits.RotateLeft32(e2^st[10], 11)
		tmp11 := bits.RotateLeft32(e3^st[11], 11)

		st[0] = tmp0 ^ (^tmp4 & tmp8)
		st[1] = tmp1 ^ (^tmp5 & tmp9)
		st[2] = tmp2 ^ (^tmp6 & tmp10)
		st[3] = tmp3 ^ (^tmp7 & tmp11)

		st[4] = bits.RotateLeft32(tmp4^(^tmp8&tmp0), 1)
		st[5] = bits.RotateLeft32(tmp5^(^tmp9&tmp1), 1)
		st[6] = bits.RotateLeft32(tmp6^(^tmp10&tmp2), 1)
		st[7] = bits.RotateLeft32(tmp7^(^tmp11&tmp3), 1)

		st[8] = bits.RotateLeft32((^tmp2&tmp6)^tmp10, 8)
		st[9] = bits.RotateLeft32((^tmp3&tmp7)^tmp11, 8)
		st[10] = bits.RotateLeft32((^tmp0&tmp4)^tmp8, 8)
		st[11] = bits.RotateLeft32((^tmp1&tmp5)^tmp9, 8)
	}

	for i := range st {
		binary.LittleEndian.PutUint32(state[i*4:], st[i])
	}
}
