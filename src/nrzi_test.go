package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nrziFixtureTracks builds 9 fresh NRZI tracks and a ClkAvg with a fixed
// (non-adjusting) bit period, so driving the state machine tick-by-tick
// is fully deterministic.
func nrziFixtureTracks(n int) ([]*TrackState, *ClkAvg) {
	tracks := make([]*TrackState, n)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
	}
	clk := NewClkAvg(&Parmset{}, 1600, 1) // constant strategy, period = 1/1600
	return tracks, clk
}

// driveNRZITick feeds one tick's worth of 9-bit data (MSB..LSB,P) into s
// by setting each track's peak-history fields directly (bypassing the
// edge detector) and calling Tick once the window has elapsed.
func driveNRZITick(s *NRZIState, tracks []*TrackState, bits byte, tStart float64, period float64) float64 {
	midTime := tStart + 0.5*period
	for k := 0; k < 8; k++ {
		bit := (bits >> uint(7-k)) & 1
		if bit == 1 {
			tracks[k].TLastPeak = midTime
			tracks[k].TPrevLastPeak = midTime - period // stale, out of window
		} else {
			tracks[k].TLastPeak = tStart - period // stale, out of window
			tracks[k].TPrevLastPeak = tStart - 2*period
		}
	}
	// Parity track (index 8): unused by AssembleBlock for a 9-track
	// layout, but must not coincide with any in-window time.
	tracks[8].TLastPeak = tStart - period
	tracks[8].TPrevLastPeak = tStart - 2*period

	tickTime := tStart + (1+0.5)*period + 1e-12
	s.Tick(tickTime)
	return tickTime
}

// oddParityMessage returns bytes whose data bits each have an odd number of
// set bits, since Finish checks parityOf(b) directly against the expected
// parity rather than against a physically received parity-track bit.
func oddParityMessage(n int) []byte {
	singleBit := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}
	msg := make([]byte, n)
	for i := range msg {
		msg[i] = singleBit[i%len(singleBit)]
	}
	return msg
}

func TestNRZIDecodesMessageWithValidCRCAndLRC(t *testing.T) {
	message := oddParityMessage(13)
	ps := &Parmset{NRZIMidbit: 0.5, PulseAdj: 0} // PulseAdj 0: tLastClock tracks "expected" exactly
	tracks, clk := nrziFixtureTracks(9)
	s := NewNRZIState(ps, 1600, 1, tracks, clk, ParityOdd, false)

	period := clk.Avg()
	require.Greater(t, period, 0.0)

	// Bootstrap the shared clock.
	s.OnEdge(0, 0)

	crc := byte(NRZICRC9(message) & 0xFF)
	lrc := NRZILRC(message, true, crc)
	trailing := make([]byte, 8)
	trailing[3] = crc
	trailing[7] = lrc

	full := append(append([]byte{}, message...), trailing...)

	tStart := 0.0
	for _, b := range full {
		driveNRZITick(s, tracks, b, tStart, period)
		tStart += period
	}

	r := s.Finish()
	assert.Equal(t, KindBlock, r.Kind)
	assert.Equal(t, 0, r.CRCErrs)
	assert.Equal(t, 0, r.LRCErrs)
	assert.Equal(t, 0, r.VParityErrs)
	require.Equal(t, message, r.Data)
}

func TestNRZITapemarkRecognized(t *testing.T) {
	ps := &Parmset{NRZIMidbit: 0.5}
	tracks, clk := nrziFixtureTracks(9)
	s := NewNRZIState(ps, 1600, 1, tracks, clk, ParityOdd, false)
	period := clk.Avg()
	s.OnEdge(0, 0)

	// 9-track tapemark: first and last byte 0x26, all bytes in between zero.
	data := make([]byte, 9)
	data[0] = 0x26
	data[8] = 0x26

	tStart := 0.0
	for _, b := range data {
		driveNRZITick(s, tracks, b, tStart, period)
		tStart += period
	}
	r := s.Finish()
	assert.Equal(t, KindTapemark, r.Kind)
}

func TestNRZIParityErrorDetected(t *testing.T) {
	ps := &Parmset{NRZIMidbit: 0.5}
	tracks, clk := nrziFixtureTracks(9)
	s := NewNRZIState(ps, 1600, 1, tracks, clk, ParityOdd, false)
	period := clk.Avg()
	s.OnEdge(0, 0)

	message := oddParityMessage(13)
	crc := byte(NRZICRC9(message) & 0xFF)
	lrc := NRZILRC(message, true, crc)
	trailing := make([]byte, 8)
	trailing[3] = crc
	trailing[7] = lrc
	full := append(append([]byte{}, message...), trailing...)
	// Flip a second bit in the first byte (0x01 -> 0x03): popcount goes
	// from 1 (odd) to 2 (even), so parityOf no longer matches ParityOdd.
	// CRC/LRC were computed on the uncorrupted message, so only
	// VParityErrs is expected to fire here.
	full[0] = 0x03

	tStart := 0.0
	for _, b := range full {
		driveNRZITick(s, tracks, b, tStart, period)
		tStart += period
	}
	r := s.Finish()
	assert.Equal(t, KindBlock, r.Kind)
	assert.Greater(t, r.VParityErrs, 0)
}
