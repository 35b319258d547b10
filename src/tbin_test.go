package readtape

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTbinFixture(t *testing.T, blocks [][][]float32, tdeltaNs uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewTbinWriter(&buf, TbinWriterConfig{
		Descr: "test fixture", Ntrks: len(blocks[0][0]), TdeltaNs: tdeltaNs, MaxVolts: 1.0, Mode: ModeNRZI,
	})
	require.NoError(t, err)
	tstart := uint64(0)
	for _, block := range blocks {
		require.NoError(t, w.StartBlock(tstart))
		for _, frame := range block {
			require.NoError(t, w.WriteSample(frame))
		}
		require.NoError(t, w.EndBlock())
		tstart += uint64(len(block)) * uint64(tdeltaNs)
	}
	return buf.Bytes()
}

func TestTbinRoundTripSingleBlock(t *testing.T) {
	block := [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	raw := writeTbinFixture(t, [][][]float32{block}, 1000)

	src, err := OpenTbin(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, src.NumHeads())

	var got [][]float32
	for {
		s, ok, err := src.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, s.V)
	}
	require.Len(t, got, len(block))
	for i, frame := range block {
		for k, v := range frame {
			assert.InDelta(t, v, got[i][k], 1e-3)
		}
	}
}

func TestTbinRoundTripMultipleBlocks(t *testing.T) {
	b1 := [][]float32{{0.1}, {0.2}}
	b2 := [][]float32{{0.3}, {0.4}, {0.5}}
	raw := writeTbinFixture(t, [][][]float32{b1, b2}, 500)

	src, err := OpenTbin(bytes.NewReader(raw))
	require.NoError(t, err)

	var got []float32
	for {
		s, ok, err := src.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, s.V[0])
	}
	require.Len(t, got, len(b1)+len(b2))
	assert.InDelta(t, 0.1, got[0], 1e-3)
	assert.InDelta(t, 0.5, got[4], 1e-3)
}

func TestTbinTimeWrittenRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	written := time.Date(2026, time.August, 1, 14, 30, 5, 0, time.Local)
	w, err := NewTbinWriter(&buf, TbinWriterConfig{
		Descr: "timed fixture", Ntrks: 1, TdeltaNs: 1000, MaxVolts: 1.0, Mode: ModePE, Written: written,
	})
	require.NoError(t, err)
	require.NoError(t, w.StartBlock(0))
	require.NoError(t, w.WriteSample([]float32{0.5}))
	require.NoError(t, w.EndBlock())

	src, err := OpenTbin(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, written.Equal(src.TimeWritten()))
	assert.Equal(t, "2026-08-01 14:30:05", FormatTapeTime(src.TimeWritten()))
}

func TestTbinTimeWrittenUnsetDecodesAsZero(t *testing.T) {
	raw := writeTbinFixture(t, [][][]float32{{{0.1}}}, 1000)
	src, err := OpenTbin(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.True(t, src.TimeWritten().IsZero())
}

func TestTbinSeekRestoresTimeCursor(t *testing.T) {
	block := [][]float32{{0.1}, {0.2}, {0.3}, {0.4}}
	raw := writeTbinFixture(t, [][][]float32{block}, 1000)

	src, err := OpenTbin(bytes.NewReader(raw))
	require.NoError(t, err)

	var positions []Position
	var times []float64
	for {
		pos := src.Position()
		s, ok, err := src.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		positions = append(positions, pos)
		times = append(times, s.T)
	}
	require.Len(t, positions, 4)

	// Rewind to the third sample and verify the replayed value and time
	// match what the first pass observed, exercising the fix that
	// recomputes tNow from the byte offset instead of leaving it at
	// wherever the previous Next() call left it.
	require.NoError(t, src.Seek(positions[2]))
	s, ok, err := src.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.3, s.V[0], 1e-3)
	assert.Equal(t, times[2], s.T)
}

func TestTbinSeekIntoEarlierBlock(t *testing.T) {
	b1 := [][]float32{{0.1}, {0.2}}
	b2 := [][]float32{{0.3}, {0.4}}
	raw := writeTbinFixture(t, [][][]float32{b1, b2}, 1000)

	src, err := OpenTbin(bytes.NewReader(raw))
	require.NoError(t, err)

	var positions []Position
	for {
		pos := src.Position()
		_, ok, err := src.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		positions = append(positions, pos)
	}
	require.Len(t, positions, 4)

	// Advance into the second block, then seek back into the first.
	require.NoError(t, src.Seek(positions[3]))
	require.NoError(t, src.Seek(positions[0]))
	s, ok, err := src.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.1, s.V[0], 1e-3)
}
