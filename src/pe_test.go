package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrunePostambleStopsAtFirstOneBit(t *testing.T) {
	tr := &TrackState{Bits: []byte{1, 0, 1, 0, 0, 0, 0, 0, 0, 0}}
	tr.Faked = make([]bool, len(tr.Bits))
	prunePostamble(tr)
	// Last 5 bits (all zero) are never touched; scanning back through the
	// remaining prefix [1,0,1,0,0] removes two zeros then the 1 and stops.
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0}, tr.Bits)
}

func TestPrunePostambleExhaustsPrefixWithoutAOneBit(t *testing.T) {
	tr := &TrackState{Bits: []byte{0, 0, 0, 1, 1, 1, 1, 1}}
	tr.Faked = make([]bool, len(tr.Bits))
	prunePostamble(tr)
	// The prefix before the last 5 bits is all zero, so every removal
	// candidate is a 0; the scan runs off the front without a 1 to stop on.
	assert.Equal(t, []byte{1, 1, 1, 1, 1}, tr.Bits)
}

func TestPrunePostambleNoopBelowIgnoreThreshold(t *testing.T) {
	tr := &TrackState{Bits: []byte{1, 0, 1}}
	tr.Faked = make([]bool, len(tr.Bits))
	prunePostamble(tr)
	assert.Equal(t, []byte{1, 0, 1}, tr.Bits)
}

func makePETapemarkTracks(highDatacount int) []*TrackState {
	tracks := make([]*TrackState, 9)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
	}
	highPeak := []int{0, 2, 5, 6, 7, 8}
	lowPeak := []int{1, 3, 4}
	for _, i := range highPeak {
		tracks[i].Peakcount = 100
		tracks[i].Datacount = highDatacount
	}
	for _, i := range lowPeak {
		tracks[i].Peakcount = 1
	}
	return tracks
}

func TestPEIsTapemarkRecognizesCanonicalPattern(t *testing.T) {
	tracks := makePETapemarkTracks(0)
	assert.True(t, peIsTapemark(tracks))
}

func TestPEIsTapemarkRejectsExcessDatacount(t *testing.T) {
	tracks := makePETapemarkTracks(3)
	assert.False(t, peIsTapemark(tracks))
}

func TestPEIsTapemarkRejectsTooFewTracks(t *testing.T) {
	assert.False(t, peIsTapemark(make([]*TrackState, 4)))
}

func TestPEIsTapemarkRejectsActiveLowPeakTrack(t *testing.T) {
	tracks := makePETapemarkTracks(0)
	tracks[1].Peakcount = 10
	assert.False(t, peIsTapemark(tracks))
}

// TestPEStateFinishAssemblesBlock drives Finish() directly off
// pre-populated per-track bit streams, bypassing OnEdge. Each track's
// bits end in a single 1 right before the 5-bit ignored tail, so
// prunePostamble removes exactly that sentinel from every track
// uniformly, leaving a known 2-bit-slot payload (= 2 output bytes)
// followed by 5 all-zero slots (= 5 zero bytes).
func TestPEStateFinishAssemblesBlock(t *testing.T) {
	ps := &Parmset{}
	// Per-track 2-bit payloads chosen so slot 0 assembles to 0xB4 and
	// slot 1 assembles to 0xD3 (track 0 is the MSB, track 7 the LSB).
	payloads := [][]byte{
		{1, 1}, {0, 1}, {1, 0}, {1, 1},
		{0, 0}, {1, 0}, {0, 1}, {0, 1},
		{0, 0}, // track 8: parity, unused by an appendParity=false assembly
	}
	tracks := make([]*TrackState, 9)
	for i, p := range payloads {
		bits := append(append([]byte{}, p...), 1, 0, 0, 0, 0, 0)
		tracks[i] = &TrackState{Index: i, Bits: bits, Faked: make([]bool, len(bits))}
	}
	s := NewPEState(ps, 1600, 50, tracks, false)

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, ModePE, r.Mode)
	require.Len(t, r.Data, 7)
	assert.Equal(t, []byte{0xB4, 0xD3, 0, 0, 0, 0, 0}, r.Data)
}

func TestPEStateFinishNoiseWhenATrackHasNoBits(t *testing.T) {
	ps := &Parmset{}
	tracks := make([]*TrackState, 9)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
	}
	s := NewPEState(ps, 1600, 50, tracks, false)
	r := s.Finish()
	assert.Equal(t, KindNoise, r.Kind)
}

func TestPEStateOnEdgeEmitsBitsAfterPreamble(t *testing.T) {
	ps := &Parmset{PEClkFactor: 1.4}
	tracks := []*TrackState{{Index: 0}}
	tracks[0].Clk = NewClkAvg(ps, 1600, 50)
	s := NewPEState(ps, 1600, 50, tracks, false)

	period := 1.0 / (1600 * 50)
	tm := 0.0
	// Preamble: PEMinPrebits clock-only transitions, one per cell.
	for i := 0; i < PEMinPrebits; i++ {
		s.OnEdge(0, tm)
		tm += period
	}
	require.False(t, s.pe[0].inPreamble)
	require.Equal(t, 0, len(tracks[0].Bits))

	// The first post-preamble edge is itself a cell boundary (delta since
	// the preamble's last tick is a full period, over the mid-cell
	// window), so it immediately closes the preamble's final cell as a
	// 0-bit (no mid-cell transition was pending).
	s.OnEdge(0, tm)
	require.Len(t, tracks[0].Bits, 1)
	assert.Equal(t, byte(0), tracks[0].Bits[0])

	// A mid-cell transition followed by the next boundary: a 1-bit.
	mid := tm + period/2
	s.OnEdge(0, mid)
	tm += period
	s.OnEdge(0, tm)
	require.Len(t, tracks[0].Bits, 2)
	assert.Equal(t, byte(1), tracks[0].Bits[1])
}
