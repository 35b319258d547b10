package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracksFromBits(rows [][]byte) []*TrackState {
	tracks := make([]*TrackState, len(rows))
	for i, bits := range rows {
		tracks[i] = &TrackState{Index: i, Bits: bits, Faked: make([]bool, len(bits))}
	}
	return tracks
}

func TestAssembleBlockPacksMSBFirst(t *testing.T) {
	// 9 tracks (8 data + parity); one byte, 0xA5 = 1010_0101.
	want := byte(0xA5)
	rows := make([][]byte, 9)
	for k := 0; k < 8; k++ {
		bit := (want >> uint(7-k)) & 1
		rows[k] = []byte{bit}
	}
	rows[8] = []byte{0} // parity track, dropped for 9-track layout
	data, faked := AssembleBlock(tracksFromBits(rows), 1, false)
	require.Len(t, data, 1)
	assert.Equal(t, want, data[0])
	assert.Equal(t, uint32(0), faked)
}

func TestAssembleBlockAppendsParityForNarrowLayout(t *testing.T) {
	// 7 tracks (6 data + parity); appendParity puts the parity bit as the
	// high-order bit above the 6 data bits.
	rows := [][]byte{
		{1}, {0}, {1}, {1}, {0}, {0}, // data, MSB..LSB = 101100 = 0x2C
		{1}, // parity
	}
	data, _ := AssembleBlock(tracksFromBits(rows), 1, true)
	require.Len(t, data, 1)
	assert.Equal(t, byte(0b1_101100), data[0])
}

func TestAssembleBlockMarksFakedBits(t *testing.T) {
	rows := make([][]byte, 9)
	for k := 0; k < 9; k++ {
		rows[k] = []byte{0}
	}
	tracks := tracksFromBits(rows)
	tracks[3].Faked[0] = true
	_, faked := AssembleBlock(tracks, 1, false)
	assert.Equal(t, uint32(1<<3), faked)
}

func TestAssembleBlockEmptyInputs(t *testing.T) {
	data, faked := AssembleBlock(nil, 5, false)
	assert.Nil(t, data)
	assert.Equal(t, uint32(0), faked)

	data, _ = AssembleBlock(tracksFromBits([][]byte{{1}, {0}}), 0, false)
	assert.Nil(t, data)
}

func TestIsIBMLabelBlockRecognizesPrefixes(t *testing.T) {
	data := make([]byte, 80)
	copy(data, []byte{0xE5, 0xD6, 0xD3, 0xF1}) // VOL1
	assert.True(t, IsIBMLabelBlock(data))
}

func TestIsIBMLabelBlockRejectsWrongLength(t *testing.T) {
	data := make([]byte, 79)
	copy(data, []byte{0xE5, 0xD6, 0xD3, 0xF1})
	assert.False(t, IsIBMLabelBlock(data))
}

func TestIsIBMLabelBlockRejectsUnrecognizedPrefix(t *testing.T) {
	data := make([]byte, 80)
	copy(data, []byte{0x01, 0x02, 0x03, 0x04})
	assert.False(t, IsIBMLabelBlock(data))
}
