package permutation

import (
	"encoding/binary"
	"math/bits"
)

const keccakP1600Width = 200

const keccakMaxRounds = 24

// keccakRoundKeys are the 24 round constants of Keccak-f[1600]; a
// reduced-round Keccak-p variant uses the last R of them.
var keccakRoundKeys = [keccakMaxRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// KeccakP1600 is the Keccak-p[1600,rounds] permutation over a 200-byte
// state arranged as 25 little-endian 64-bit lanes. rounds=24 is the full
// Keccak-f[1600] used by SHA-3; rounds=14 ("M14"), 12 ("K12") and 10
// ("Min"/KitTen) are the standard reduced-round variants used by Keccyak
// and the Kangaroo family of XOFs.
type KeccakP1600 struct {
	rounds int
}

func NewKeccakP1600(rounds int) KeccakP1600 {
	if rounds < 0 || rounds > keccakMaxRounds {
		panic("permutation: keccak-p[1600] round count out of range")
	}
	return KeccakP1600{rounds: rounds}
}

// KeccakF1600 is the full, 24-round Keccak-f[1600] permutation (as used
// by SHA-3 and SHAKE).
var KeccakF1600 = NewKeccakP1600(24)

// KeccakP1600_14 is the 14-round variant ("M14"/MarsupilamiFourteen).
var KeccakP1600_14 = NewKeccakP1600(14)

// KeccakP1600_12 is the 12-round variant ("K12"/KangarooTwelve).
var KeccakP1600_12 = NewKeccakP1600(12)

// KeccakP1600_10 is the 10-round variant ("Min"/KitTen).
var KeccakP1600_10 = NewKeccakP1600(10)

func (k KeccakP1600) Width() int { return keccakP1600Width }

func (k KeccakP1600) Apply(state []byte) {
	if len(state) != keccakP1600Width {
		panic("permutation: keccak-p[1600] state must be 200 bytes")
	}

	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	keccakP1600Permute(&lanes, k.rounds)

	for i := range lanes {
		binary.LittleEndian.PutUint64(state[i*8:], lanes[i])
	}
}

// keccakP1600Permute runs the standard theta/rho/pi/chi/iota round
// function of Keccak-f[1600], using the last `rounds` of the 24 round
// constants. Lanes are named by row letter (b,g,k,m,s) and column vowel
// (a,e,i,o,u), matching the XKCP reference naming: lanes[5*row+col].
func keccakP1600Permute(lanes *[25]uint64, rounds int) {
	rotl := bits.RotateLeft64

	aBa, aBe, aBi, aBo, aBu := lanes[0], lanes[1], lanes[2], lanes[3], lanes[4]
	aGa, aGe, aGi, aGo, aGu := lanes[5], lanes[6], lanes[7], lanes[8], lanes[9]
	aKa, aKe, aKi, aKo, aKu := lanes[10], lanes[11], lanes[12], lanes[13], lanes[14]
	aMa, aMe, aMi, aMo, aMu := lanes[15], lanes[16], lanes[17], lanes[18], lanes[19]
	aSa, aSe, aSi, aSo, aSu := lanes[20], lanes[21], lanes[22], lanes[23], lanes[24]

	for _, rc := range keccakRoundKeys[keccakMaxRounds-rounds:] {
		// theta
		cA := aBa ^ aGa ^ aKa ^ aMa ^ aSa
		cE := aBe ^ aGe ^ aKe ^ aMe ^ aSe
		cI := aBi ^ aGi ^ aKi ^ aMi ^ aSi
		cO := aBo ^ aGo ^ aKo ^ aMo ^ aSo
		cU := aBu ^ aGu ^ aKu ^ aMu ^ aSu

		dA := cU ^ rotl(cE, 1)
		dE := cA ^ rotl(cI, 1)
		dI := cE ^ rotl(cO, 1)
		dO := cI ^ rotl(cU, 1)
		dU := cO ^ rotl(cA, 1)

		aBa ^= dA
		aBe ^= dE
		aBi ^= dI
		aBo ^= dO
		aBu ^= dU
		aGa ^= dA
		aGe ^= dE
		aGi ^= dI
		aGo ^= dO
		aGu ^= dU
		aKa ^= dA
		aKe ^= dE
		aKi ^= dI
		aKo ^= dO
		aKu ^= dU
		aMa ^= dA
		aMe ^= dE
		aMi ^= dI
		aMo ^= dO
		aMu ^= dU
		aSa ^= dA
		aSe ^= dE
		aSi ^= dI
		aSo ^= dO
		aSu ^= dU

		// rho + pi
		bBa := aBa
		bBe := rotl(aGe, 44)
		bBi := rotl(aKi, 43)
		bBo := rotl(aMo, 21)
		bBu := rotl(aSu, 14)

		bGa := rotl(aBo, 28)
		bGe := rotl(aGu, 20)
		bGi := rotl(aKa, 3)
		bGo := rotl(aMe, 45)
		bGu := rotl(aSi, 61)

		bKa := rotl(aBe, 1)
		bKe := rotl(aGi, 6)
		bKi := rotl(aKo, 25)
		bKo := rotl(aMu, 8)
		bKu := rotl(aSa, 18)

		bMa := rotl(aBu, 27)
		bMe := rotl(aGa, 36)
		bMi := rotl(aKe, 10)
		bMo := rotl(aMi, 15)
		bMu := rotl(aSo, 56)

		bSa := rotl(aBi, 62)
		bSe := rotl(aGo, 55)
		bSi := rotl(aKu, 39)
		bSo := rotl(aMa, 41)
		bSu := rotl(aSe, 2)

		// chi
		aBa = bBa ^ (^bBe & bBi)
		aBe = bBe ^ (^bBi & bBo)
		aBi = bBi ^ (^bBo & bBu)
		aBo = bBo ^ (^bBu & bBa)
		aBu = bBu ^ (^bBa & bBe)

		aGa = bGa ^ (^bGe & bGi)
		aGe = bGe ^ (^bGi & bGo)
		aGi = bGi ^ (^bGo & bGu)
		aGo = bGo ^ (^bGu & bGa)
		aGu = bGu ^ (^bGa & bGe)

		aKa = bKa ^ (^bKe & bKi)
		aKe = bKe ^ (^bKi & bKo)
		aKi = bKi ^ (^bKo & bKu)
		aKo = bKo ^ (^bKu & bKa)
		aKu = bKu ^ (^bKa & bKe)

		aMa = bMa ^ (^bMe & bMi)
		aMe = bMe ^ (^bMi & bMo)
		aMi = bMi ^ (^bMo & bMu)
		aMo = bMo ^ (^bMu & bMa)
		aMu = bMu ^ (^bMa & bMe)

		aSa = bSa ^ (^bSe & bSi)
		aSe = bSe ^ (^bSi & bSo)
		aSi = bSi ^ (^bSo & bSu)
		aSo = bSo ^ (^bSu & bSa)
		aSu = bSu ^ (^bSa & bSe)

		// iota
		aBa ^= rc
	}

	lanes[0], lanes[1], lanes[2], lanes[3], lanes[4] = aBa, aBe, aBi, aBo, aBu
	lanes[5], lanes[6], lanes[7], lanes[8], lanes[9] = aGa, aGe, aGi, aGo, aGu
	lanes[10], lanes[11], lanes[12], lanes[13], lanes[14] = aKa, aKe, aKi, aKo, aKu
	lanes[15], lanes[16], lanes[17], lanes[18], lanes[19] = aMa, aMe, aMi, aMo, aMu
	lanes[20], lanes[21], lanes[22], lanes[23], lanes[24] = aSa, aSe, aSi, aSo, aSu
}
