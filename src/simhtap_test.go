package readtape

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimhTapWriterWriteRecordEvenLength(t *testing.T) {
	var buf bytes.Buffer
	w := NewSimhTapWriter(&buf)
	require.NoError(t, w.WriteRecord([]byte{1, 2, 3, 4}, false))

	got := buf.Bytes()
	require.Len(t, got, 4+4+4)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(got[0:4]))
	assert.Equal(t, []byte{1, 2, 3, 4}, got[4:8])
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(got[8:12]))
}

func TestSimhTapWriterWriteRecordOddLengthPadded(t *testing.T) {
	var buf bytes.Buffer
	w := NewSimhTapWriter(&buf)
	require.NoError(t, w.WriteRecord([]byte{1, 2, 3}, false))

	got := buf.Bytes()
	// leading marker(4) + 3 data + 1 pad + trailing marker(4) = 12
	require.Len(t, got, 12)
	assert.Equal(t, byte(0), got[7])
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(got[8:12]))
}

func TestSimhTapWriterErrorFlagOnTrailerOnly(t *testing.T) {
	var buf bytes.Buffer
	w := NewSimhTapWriter(&buf)
	require.NoError(t, w.WriteRecord([]byte{1, 2}, true))

	got := buf.Bytes()
	lead := binary.LittleEndian.Uint32(got[0:4])
	trail := binary.LittleEndian.Uint32(got[6:10])
	assert.Equal(t, uint32(2), lead)
	assert.Equal(t, uint32(2)|simhErrFlag, trail)
}

func TestSimhTapWriterTapemarkAndEOM(t *testing.T) {
	var buf bytes.Buffer
	w := NewSimhTapWriter(&buf)
	require.NoError(t, w.WriteTapemark())
	require.NoError(t, w.WriteEndOfMedium())

	got := buf.Bytes()
	require.Len(t, got, 8)
	assert.Equal(t, uint32(simhTapMark), binary.LittleEndian.Uint32(got[0:4]))
	assert.Equal(t, uint32(simhEOM), binary.LittleEndian.Uint32(got[4:8]))
}

func TestWriteFromBlockResultDispatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewSimhTapWriter(&buf)

	require.NoError(t, w.WriteFromBlockResult(BlockResult{Kind: KindNoise}))
	assert.Empty(t, buf.Bytes())

	require.NoError(t, w.WriteFromBlockResult(BlockResult{Kind: KindTapemark}))
	assert.Len(t, buf.Bytes(), 4)

	buf.Reset()
	require.NoError(t, w.WriteFromBlockResult(BlockResult{Kind: KindBlock, Data: []byte{9, 9}, ErrCount: 1}))
	got := buf.Bytes()
	trail := binary.LittleEndian.Uint32(got[len(got)-4:])
	assert.NotZero(t, trail&simhErrFlag)
}
