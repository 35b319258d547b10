package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wwFixture() *WhirlwindState {
	ps := &Parmset{} // constant clock strategy from bpi/ips
	tracks := make([]*TrackState, wwTrackCount)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
	}
	return NewWhirlwindState(ps, 100, 30, tracks, FluxAuto, true)
}

// wwDriveChar feeds one tape-character's worth of pulses: a clock pulse
// on both clock tracks, plus data pulses on the LSB/MSB pairs per the
// requested 2-bit value. neg inverts every edge direction, simulating a
// tape section recorded with the opposite flux polarity.
func wwDriveChar(s *WhirlwindState, t0 float64, ch byte, neg bool) {
	start, end := DirUp, DirDown
	if neg {
		start, end = end, start
	}
	p := s.period()
	lsb := ch&1 != 0
	msb := ch&2 != 0

	s.OnEdge(wwPrimaryClock, t0, start)
	s.OnEdge(wwAlternateClock, t0, start)
	if lsb {
		s.OnEdge(wwPrimaryLSB, t0+0.1*p, start)
		s.OnEdge(wwAlternateLSB, t0+0.1*p, start)
	}
	if msb {
		s.OnEdge(wwPrimaryMSB, t0+0.1*p, start)
		s.OnEdge(wwAlternateMSB, t0+0.1*p, start)
	}
	s.OnEdge(wwPrimaryClock, t0+0.6*p, end)
	s.OnEdge(wwAlternateClock, t0+0.6*p, end)
	if lsb {
		s.OnEdge(wwPrimaryLSB, t0+0.7*p, end)
		s.OnEdge(wwAlternateLSB, t0+0.7*p, end)
	}
	if msb {
		s.OnEdge(wwPrimaryMSB, t0+0.7*p, end)
		s.OnEdge(wwAlternateMSB, t0+0.7*p, end)
	}
}

func wwDriveBlock(s *WhirlwindState, t0 float64, chars []byte, neg bool) float64 {
	p := s.period()
	for i, ch := range chars {
		wwDriveChar(s, t0+float64(i)*p, ch, neg)
	}
	tEnd := t0 + float64(len(chars))*p
	s.Tick(tEnd + 2*p)
	return tEnd
}

func TestWhirlwindPacksFourCharactersPerByte(t *testing.T) {
	s := wwFixture()
	chars := []byte{2, 1, 3, 0, 1, 2, 3, 0}
	wwDriveBlock(s, 0, chars, false)
	require.True(t, s.Done())

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 8, r.MinBits)
	// Forward mode packs MSB-first: 0b10_01_11_00 then 0b01_10_11_00.
	assert.Equal(t, []byte{0x9C, 0x6C}, r.Data)
	assert.Equal(t, 0, r.WWBadLength)
	assert.Equal(t, 0, r.WWLeadingClock)
	assert.Equal(t, 0, r.WWMissingClock)
	assert.Equal(t, 0, r.WWMissingOnebit)
	assert.Equal(t, 0, r.WWSpeedErr)
	assert.Equal(t, 0, r.ErrCount)
}

func TestWhirlwindDiscardsSpuriousLeadingClock(t *testing.T) {
	s := wwFixture()
	chars := append([]byte{0}, []byte{2, 1, 3, 0, 1, 2, 3, 0}...) // 8n+1
	wwDriveBlock(s, 0, chars, false)
	require.True(t, s.Done())

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 1, r.WWLeadingClock)
	assert.Equal(t, 0, r.WWBadLength)
	assert.Equal(t, []byte{0x9C, 0x6C}, r.Data)
}

func TestWhirlwindFlagsBadLength(t *testing.T) {
	s := wwFixture()
	wwDriveBlock(s, 0, []byte{1, 2, 3, 0, 1, 2}, false) // 6 chars: not 8n or 8n+1
	require.True(t, s.Done())

	r := s.Finish()
	assert.Equal(t, 1, r.WWBadLength)
	assert.Greater(t, r.ErrCount, 0)
}

// Two blocks recorded with opposite flux polarity, separated by a long
// silence, must decode to identical bytes under auto polarity, with
// exactly one polarity change counted.
func TestWhirlwindAutoPolarityFlipMidTape(t *testing.T) {
	s := wwFixture()
	chars := []byte{2, 1, 3, 0, 1, 2, 3, 0}
	p := s.period()

	tEnd := wwDriveBlock(s, 0, chars, false)
	require.True(t, s.Done())
	r1 := s.Finish()
	require.Equal(t, KindBlock, r1.Kind)

	wwDriveBlock(s, tEnd+10*p, chars, true)
	require.True(t, s.Done())
	r2 := s.Finish()
	require.Equal(t, KindBlock, r2.Kind)

	assert.Equal(t, r1.Data, r2.Data)
	assert.Equal(t, 1, r2.WWFluxPolarityChanges)
}

func TestWhirlwindMissingAlternateOnebitCountsWarning(t *testing.T) {
	s := wwFixture()
	p := s.period()
	// One character whose LSB pulse exists only on the primary track.
	s.OnEdge(wwPrimaryClock, 0, DirUp)
	s.OnEdge(wwAlternateClock, 0, DirUp)
	s.OnEdge(wwPrimaryLSB, 0.1*p, DirUp)
	s.OnEdge(wwPrimaryClock, 0.6*p, DirDown)
	s.OnEdge(wwAlternateClock, 0.6*p, DirDown)
	s.Tick(0.6*p + 2*p)
	require.True(t, s.Done())

	r := s.Finish()
	assert.Equal(t, 1, r.WWMissingOnebit)
	assert.Greater(t, r.WarnCount, 0)
}

// A pulse end on an LSB track more than one bit interval after the last
// clock end is a block-mark; arriving while a block is still open, it is
// queued and re-arms the decoder for the next record.
func TestWhirlwindBlockmarkQueued(t *testing.T) {
	s := wwFixture()
	chars := []byte{1, 2, 3, 0, 1, 2, 3, 0}
	p := s.period()
	for i, ch := range chars {
		wwDriveChar(s, float64(i)*p, ch, false)
	}
	tLastClockEnd := float64(len(chars)-1)*p + 0.6*p

	s.OnEdge(wwPrimaryLSB, tLastClockEnd+1.5*p, DirDown)
	require.True(t, s.Done())

	r := s.Finish()
	require.Equal(t, KindBlock, r.Kind)
	assert.True(t, s.inBlock, "queued block-mark should re-open a block")
}
