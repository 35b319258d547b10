package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeNibbleLegalCodesRoundtrip(t *testing.T) {
	for code, nibble := range gcr5to4 {
		if nibble < 0 {
			continue
		}
		got, ok := decodeNibble(code)
		assert.True(t, ok, "code %#x should decode cleanly", code)
		assert.Equal(t, nibble, got)
	}
}

func TestDecodeNibbleIllegalCodeFallsBackToNearest(t *testing.T) {
	// 0x08 is illegal (not in gcr5to4's legal set); its nearest legal
	// neighbour by Hamming distance is 0x09 (data 0x9), one bit away.
	nibble, ok := decodeNibble(0x08)
	assert.False(t, ok)
	want, legal := decodeNibble(0x09)
	assert.True(t, legal)
	assert.Equal(t, want, nibble)
}

func TestTimesAlphaDivByAlphaRoundtrip(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(a), divByAlpha(timesAlpha(byte(a))))
	}
}

func TestGCRECCDetectsSingleByteError(t *testing.T) {
	group := [7]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD}
	ecc := gcrECC(group)

	corrupted := group
	corrupted[3] ^= 0x10
	assert.NotEqual(t, ecc, gcrECC(corrupted))
}

// msWeight(i, x) is Ms[i] applied to x: the ECC-byte contribution a
// value x at data position i-1 makes. Folding it back in at the same
// position must cancel, since gcrECC's Horner recurrence is linear in
// each data byte over XOR.
func TestMsWeightCancelsWhenFoldedBackIntoECC(t *testing.T) {
	group := [7]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD}
	ecc := gcrECC(group)
	for i := 1; i <= 7; i++ {
		perturbed := group
		perturbed[i-1] ^= 0x2B
		gotECC := gcrECC(perturbed)
		assert.Equal(t, ecc^msWeight(i, 0x2B), gotECC, "position %d", i)
	}
}

func TestGCRTrackBytePositions(t *testing.T) {
	cases := []struct {
		track     int
		positions []int
		shift     uint
	}{
		{0, []int{0, 4}, 4},
		{1, []int{0, 4}, 0},
		{2, []int{1, 5}, 4},
		{3, []int{1, 5}, 0},
		{4, []int{2, 6}, 4},
		{5, []int{2, 6}, 0},
		{6, []int{3}, 4},
		{7, []int{3}, 0},
	}
	for _, c := range cases {
		positions, shift := gcrTrackBytePositions(c.track)
		assert.Equal(t, c.positions, positions, "track %d", c.track)
		assert.Equal(t, c.shift, shift, "track %d", c.track)
	}
}
