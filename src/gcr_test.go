package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCROnEdgeInsertsZerosByDeltaThreshold(t *testing.T) {
	ps := &Parmset{GCROneZeroPt: 1.5, GCRTwoZeroPt: 2.5}
	tr := &TrackState{Index: 0}
	tr.Clk = NewClkAvg(ps, 1600, 50) // constant strategy, period P = 1/(1600*50)
	period := tr.Clk.Avg()
	require.Greater(t, period, 0.0)

	s := NewGCRState(ps, 1600, 50, []*TrackState{tr}, false)

	s.OnEdge(0, 0) // first peak only seeds the baseline, no bit emitted
	require.Empty(t, tr.Bits)

	tPrev := 0.0
	// delta == period: below the 1-zero threshold (1.5P) -> 0 zeros.
	s.OnEdge(0, tPrev+period)
	tPrev += period
	// delta just over 1.5P but under 2.5P -> 1 zero.
	s.OnEdge(0, tPrev+1.6*period)
	tPrev += 1.6 * period
	// delta over 2.5P -> 2 zeros.
	s.OnEdge(0, tPrev+2.6*period)

	assert.Equal(t, []byte{1, 0, 1, 0, 0, 1}, tr.Bits)
	assert.Equal(t, 6, tr.Datacount)
}

func TestGCRTwoZeroThresholdBoundary(t *testing.T) {
	ps := &Parmset{GCROneZeroPt: 1.5, GCRTwoZeroPt: 2.5}
	tr := &TrackState{Index: 0}
	tr.Clk = NewClkAvg(ps, 1600, 50)
	period := tr.Clk.Avg()

	s := NewGCRState(ps, 1600, 50, []*TrackState{tr}, false)
	s.OnEdge(0, 0)
	// A peak at exactly z2pt bit periods inserts exactly two zeros.
	s.OnEdge(0, 2.5*period)
	assert.Equal(t, []byte{0, 0, 1}, tr.Bits)
}

func TestGCRClassifyGroupAssemblesBytesAndAdvancesPhase(t *testing.T) {
	ps := &Parmset{}
	tracks := make([]*TrackState, 9)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
	}
	s := NewGCRState(ps, 1600, 50, tracks, false)
	require.Equal(t, gcrPreamble, s.phase)

	s.classifyGroup(0, gcrSync)
	require.Equal(t, gcrData, s.phase)

	// Legal 5-bit codes decoding to nibbles 0,1,2,3,4,6,7,8 across the 8
	// data tracks; track 0's code avoids the marker alphabet so it
	// contributes a data nibble rather than advancing the phase walk.
	codes := []int{0x19, 0x1B, 0x12, 0x13, 0x1D, 0x16, 0x17, 0x1A}
	for k, code := range codes {
		s.classifyGroup(k, code)
	}
	require.Equal(t, []byte{0x01, 0x23, 0x46, 0x78}, s.outBytes)
	assert.Equal(t, uint(0), s.pendingMask)

	// The parity track's own groups never contribute a nibble.
	s.classifyGroup(8, 5)
	assert.Equal(t, uint(0), s.pendingMask)
	require.Len(t, s.outBytes, 4)

	s.classifyGroup(0, gcrTerml1)
	assert.Equal(t, gcrResidual, s.phase)
}

func gcrFixtureTracks(n, bitsLen int) []*TrackState {
	tracks := make([]*TrackState, n)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i, Bits: make([]byte, bitsLen)}
	}
	return tracks
}

func TestGCRFinishNoiseWhenTooFewBits(t *testing.T) {
	s := NewGCRState(&Parmset{}, 1600, 50, gcrFixtureTracks(9, 5), false)
	r := s.Finish()
	assert.Equal(t, KindNoise, r.Kind)
}

func TestGCRFinishBadBlockOnTrackMismatch(t *testing.T) {
	tracks := gcrFixtureTracks(9, 20)
	tracks[3].Bits = make([]byte, 25) // mismatch of 5 > allowed 2
	s := NewGCRState(&Parmset{}, 1600, 50, tracks, false)
	r := s.Finish()
	assert.Equal(t, KindBadBlock, r.Kind)
	assert.Equal(t, 5, r.TrackMismatch)
}

func TestGCRFinishDetectsECCErrorWithoutCorrection(t *testing.T) {
	tracks := gcrFixtureTracks(9, 20)
	s := NewGCRState(&Parmset{}, 1600, 50, tracks, false)

	original := [7]byte{0x01, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}
	ecc := gcrECC(original)
	corrupted := original
	corrupted[0] ^= 0x02
	s.outBytes = append(append([]byte{}, corrupted[:]...), ecc)

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 1, r.ECCErrs)
	assert.Equal(t, 0, r.CorrectedBits)
	assert.Equal(t, corrupted[0], r.Data[0])
}

// trackWithLowAGC builds 8 data-track AGCs where trk has gain 0.5 and
// every other track has the default gain, so worstAGCTrack picks trk.
func trackWithLowAGC(tracks []*TrackState, trk int) {
	lowAGC := NewAGC(&Parmset{AGCAlpha: 1})
	for i := AGCStartBase; i <= AGCEndBase; i++ {
		lowAGC.AccumulateBaseline(1.0)
	}
	lowAGC.Update(2.0) // gain = vAvg/height = 0.5
	tracks[trk].AGC = lowAGC
	for k := 0; k < 8; k++ {
		if k != trk {
			tracks[k].AGC = NewAGC(&Parmset{})
		}
	}
}

// A single bad physical track corrupts every byte position it feeds
// (gcrTrackBytePositions) by the same nibble delta. Tracks 0-5 feed
// two byte positions within one 8-byte ECC window; correcting from
// only the ECC syndrome and the worst-AGC track, without knowing in
// advance which two bytes are wrong, is the spec's two-error-track
// correction (§4.7/§9).
func TestGCRFinishCorrectsTwoBytePositionsFromSingleBadTrack(t *testing.T) {
	tracks := gcrFixtureTracks(9, 20)
	trackWithLowAGC(tracks, 0) // track 0 -> positions {0,4}, high nibble

	s := NewGCRState(&Parmset{}, 1600, 50, tracks, true)

	original := [7]byte{0x01, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}
	ecc := gcrECC(original)
	corrupted := original
	corrupted[0] ^= 0x20
	corrupted[4] ^= 0x20
	s.outBytes = append(append([]byte{}, corrupted[:]...), ecc)

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 0, r.ECCErrs)
	assert.Equal(t, 1, r.CorrectedBits)
	assert.Equal(t, original[0], r.Data[0])
	assert.Equal(t, original[4], r.Data[4])
}

// Tracks 6 and 7 feed only a single data byte position (index 3); the
// other occurrence of their nibble pair within the window is the ECC
// byte itself, so correction touches just that one position.
func TestGCRFinishCorrectsSingleBytePositionForTrack6(t *testing.T) {
	tracks := gcrFixtureTracks(9, 20)
	trackWithLowAGC(tracks, 6) // track 6 -> position {3}, high nibble

	s := NewGCRState(&Parmset{}, 1600, 50, tracks, true)

	original := [7]byte{0x01, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}
	ecc := gcrECC(original)
	corrupted := original
	corrupted[3] ^= 0x30
	s.outBytes = append(append([]byte{}, corrupted[:]...), ecc)

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 0, r.ECCErrs)
	assert.Equal(t, 1, r.CorrectedBits)
	assert.Equal(t, original[3], r.Data[3])
}
