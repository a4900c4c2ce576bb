package permutation

import "testing"

// vectors produced by XKCP rev 2a8d2311a830ab3037f8c7ef2511e5c7cc032127.

func TestKeccakF1600KAT(t *testing.T) {
	want := []byte{
		0xe7, 0xdd, 0xe1, 0x40, 0x79, 0x8f, 0x25, 0xf1, 0x8a, 0x47, 0xc0, 0x33, 0xf9, 0xcc,
		0xd5, 0x84, 0xee, 0xa9, 0x5a, 0xa6, 0x1e, 0x26, 0x98, 0xd5, 0x4d, 0x49, 0x80, 0x6f,
		0x30, 0x47, 0x15, 0xbd, 0x57, 0xd0, 0x53, 0x62, 0x05, 0x4e, 0x28, 0x8b, 0xd4, 0x6f,
		0x8e, 0x7f, 0x2d, 0xa4, 0x97, 0xff, 0xc4, 0x47, 0x46, 0xa4, 0xa0, 0xe5, 0xfe, 0x90,
		0x76, 0x2e, 0x19, 0xd6, 0x0c, 0xda, 0x5b, 0x8c, 0x9c, 0x05, 0x19, 0x1b, 0xf7, 0xa6,
		0x30, 0xad, 0x64, 0xfc, 0x8f, 0xd0, 0xb7, 0x5a, 0x93, 0x30, 0x35, 0xd6, 0x17, 0x23,
		0x3f, 0xa9, 0x5a, 0xeb, 0x03, 0x21, 0x71, 0x0d, 0x26, 0xe6, 0xa6, 0xa9, 0x5f, 0x55,
		0xcf, 0xdb, 0x16, 0x7c, 0xa5, 0x81, 0x26, 0xc8, 0x47, 0x03, 0xcd, 0x31, 0xb8, 0x43,
		0x9f, 0x56, 0xa5, 0x11, 0x1a, 0x2f, 0xf2, 0x01, 0x61, 0xae, 0xd9, 0x21, 0x5a, 0x63,
		0xe5, 0x05, 0xf2, 0x70, 0xc9, 0x8c, 0xf2, 0xfe, 0xbe, 0x64, 0x11, 0x66, 0xc4, 0x7b,
		0x95, 0x70, 0x36, 0x61, 0xcb, 0x0e, 0xd0, 0x4f, 0x55, 0x5a, 0x7c, 0xb8, 0xc8, 0x32,
		0xcf, 0x1c, 0x8a, 0xe8, 0x3e, 0x8c, 0x14, 0x26, 0x3a, 0xae, 0x22, 0x79, 0x0c, 0x94,
		0xe4, 0x09, 0xc5, 0xa2, 0x24, 0xf9, 0x41, 0x18, 0xc2, 0x65, 0x04, 0xe7, 0x26, 0x35,
		0xf5, 0x16, 0x3b, 0xa1, 0x30, 0x7f, 0xe9, 0x44, 0xf6, 0x75, 0x49, 0xa2, 0xec, 0x5c,
		0x7b, 0xff, 0xf1, 0xea,
	}
	state := make([]byte, 200)
	KeccakF1600.Apply(state)
	assertBytesEqual(t, "keccak-f[1600]", want, state)
}

func TestKeccakP1600_14KAT(t *testing.T) {
	want := []byte{
		0xf4, 0x39, 0xae, 0x25, 0x60, 0x5c, 0x05, 0x93, 0xa5, 0xf3, 0x72, 0x67, 0xc1, 0x77,
		0xba, 0xff, 0xea, 0x51, 0x5a, 0x55, 0xd5, 0x61, 0xed, 0x51, 0xcc, 0xf0, 0xe5, 0x5c,
		0x83, 0xd0, 0x58, 0x53, 0x3e, 0xfb, 0x72, 0xdf, 0x77, 0xac, 0x01, 0xae, 0x50, 0x9a,
		0x12, 0xac, 0x85, 0x7f, 0x76, 0xe0, 0x64, 0xf0, 0xd0, 0x9c, 0x50, 0x02, 0x0b, 0xce,
		0xca, 0x7f, 0xf5, 0xf6, 0x4b, 0xce, 0xcf, 0xf7, 0xe1, 0x16, 0x83, 0x90, 0xf1, 0xb1,
		0x81, 0xac, 0x53, 0x05, 0x59, 0x89, 0xa3, 0xf0, 0xeb, 0x4d, 0x03, 0x3b, 0x18, 0xfa,
		0xe8, 0x2c, 0x09, 0x86, 0xad, 0xc2, 0xd9, 0xa4, 0x44, 0x16, 0x59, 0x4e, 0xdd, 0xa0,
		0x1c, 0x26, 0x69, 0xa3, 0xb0, 0x2a, 0x96, 0x45, 0xa8, 0x1a, 0x10, 0x8c, 0x19, 0xd3,
		0xce, 0x10, 0x2c, 0x58, 0x4a, 0x47, 0x01, 0x61, 0x39, 0x0d, 0xe9, 0x3a, 0x62, 0x48,
		0x16, 0x86, 0xd6, 0x7a, 0x05, 0x09, 0x32, 0xe4, 0x65, 0xe4, 0x32, 0xe5, 0x1a, 0x19,
		0x81, 0xaa, 0xb6, 0x3b, 0xe2, 0xb7, 0xa6, 0x42, 0x55, 0x5e, 0x54, 0xe9, 0xbc, 0x78,
		0x3c, 0xa5, 0x72, 0xae, 0x31, 0x42, 0x94, 0x80, 0x81, 0x8d, 0x64, 0x26, 0x86, 0xa7,
		0x6e, 0xcd, 0xfc, 0x0c, 0xf6, 0x94, 0x55, 0x41, 0x88, 0x28, 0xc2, 0x11, 0xa3, 0x98,
		0xb0, 0xe0, 0xe8, 0xae, 0x31, 0xe1, 0x85, 0xd2, 0x17, 0x6f, 0x50, 0x11, 0x90, 0x99,
		0xe1, 0xd0, 0xf8, 0x43,
	}
	state := make([]byte, 200)
	KeccakP1600_14.Apply(state)
	assertBytesEqual(t, "keccak-p[1600,14]", want, state)
}

func TestKeccakP1600_12KAT(t *testing.T) {
	want := []byte{
		0x17, 0x86, 0xa7, 0xb9, 0x38, 0x54, 0x5e, 0x8e, 0x1e, 0xd0, 0x59, 0xf2, 0x50, 0x6a,
		0xcd, 0xd9, 0x35, 0x1f, 0xa9, 0x52, 0xc6, 0xe7, 0xb8, 0x87, 0xc5, 0xe0, 0xe4, 0xcd,
		0x67, 0xe0, 0x93, 0x10, 0x45, 0x5a, 0xd9, 0xf2, 0x90, 0xab, 0x33, 0xb0, 0x45, 0x1a,
		0xdd, 0xa8, 0x72, 0x2f, 0xa7, 0xe0, 0x9c, 0x2f, 0x67, 0x14, 0xaa, 0x80, 0x37, 0xc5,
		0x1d, 0x07, 0x51, 0x00, 0xf5, 0x47, 0xdd, 0x3e, 0xcc, 0x8a, 0x17, 0x0c, 0x31, 0x1d,
		0xa3, 0xb3, 0xa0, 0xaa, 0x57, 0x92, 0xa5, 0x86, 0xb5, 0x79, 0x9b, 0xf9, 0xb1, 0xb3,
		0x3d, 0x7c, 0x4a, 0xbc, 0x93, 0x67, 0x8a, 0xe6, 0x63, 0x40, 0x87, 0x68, 0x66, 0x25,
		0x0e, 0x2e, 0x33, 0x03, 0x6c, 0x5c, 0xda, 0x30, 0xf0, 0xb9, 0x02, 0x12, 0xaa, 0x9c,
		0x9f, 0x7a, 0xcf, 0x2b, 0x78, 0x9a, 0x3b, 0x5f, 0x23, 0x79, 0xae, 0x61, 0xe0, 0xc1,
		0x36, 0xe5, 0xec, 0x87, 0x3c, 0xb7, 0x18, 0xb6, 0xe9, 0x6d, 0xc2, 0x8a, 0x91, 0x70,
		0xf1, 0xd1, 0xbe, 0x2a, 0xb7, 0x24, 0xed, 0xda, 0x53, 0xbd, 0xab, 0x6a, 0x5a, 0xe1,
		0x2e, 0x2c, 0x6a, 0x41, 0xc1, 0xbf, 0xaf, 0x52, 0x09, 0xb9, 0x36, 0xe0, 0xcf, 0xc6,
		0xd7, 0x60, 0x70, 0xdc, 0x17, 0x36, 0x50, 0x45, 0xe4, 0x7a, 0x9f, 0xc2, 0xb2, 0x11,
		0x56, 0x62, 0x7a, 0x64, 0x30, 0x2c, 0xdb, 0x71, 0x36, 0xd4, 0x1c, 0xa0, 0x2c, 0x22,
		0x76, 0x0d, 0xfd, 0xcf,
	}
	state := make([]byte, 200)
	KeccakP1600_12.Apply(state)
	assertBytesEqual(t, "keccak-p[1600,12]", want, state)
}

func TestKeccakPGenericDiffusion(t *testing.T) {
	// No official test vectors exist for the reduced-width Keccak-p
	// variants; this only checks that the permutation is non-trivial
	// (its output differs from its input).
	for _, p := range []KeccakPGeneric{KeccakP200(18), KeccakP400(20), KeccakP800(22)} {
		state := make([]byte, p.Width())
		state[0] = 0x01
		before := append([]byte(nil), state...)
		p.Apply(state)
		equal := true
		for i := range state {
			if state[i] != before[i] {
				equal = false
				break
			}
		}
		if equal {
			t.Fatalf("keccak-p generic width=%d: permutation left state unchanged", p.Width())
		}
	}
}
