package readtape

// PEState is the Phase Encoding state machine of §4.5. PE is
// self-clocking Manchester: each bit cell has a mandatory transition at
// the cell boundary (the "clock tick") and, for a 1-bit, an additional
// transition at the cell's midpoint (the "data" transition). One
// instance decodes all tracks of a block independently but in lockstep
// on the shared idle/end-of-block decision.
type PEState struct {
	ps     *Parmset
	tracks []*TrackState

	pe        []peTrack
	idleSince float64
	haveIdle  bool
	overrun   bool

	bitPeriodHint float64 // 1/(bpi*ips), used before any track's clock locks
	fakeBits      bool
}

type peTrack struct {
	inPreamble    bool
	preambleCount int
	boundaryT     float64
	haveBoundary  bool
	bitPending    bool // true once the mid-cell transition has been seen for the open cell
	lastAnyT      float64
	haveLastAny   bool
}

// NewPEState builds a PE decoder for ntracks tracks.
func NewPEState(ps *Parmset, bpi, ips float64, tracks []*TrackState, fakeBits bool) *PEState {
	s := &PEState{ps: ps, tracks: tracks, pe: make([]peTrack, len(tracks)), fakeBits: fakeBits}
	for i := range s.pe {
		s.pe[i].inPreamble = true
	}
	if bpi > 0 && ips > 0 {
		s.bitPeriodHint = 1.0 / (bpi * ips)
	}
	return s
}

func (s *PEState) clkWindow(k int) float64 {
	period := s.tracks[k].Clk.Avg()
	if period <= 0 {
		period = s.bitPeriodHint
	}
	return period / 2 * s.ps.PEClkFactor
}

// OnEdge processes one peak event on track k (direction is not load-
// bearing for bit value in this implementation; only timing is, per the
// mapping documented in DESIGN.md).
func (s *PEState) OnEdge(k int, t float64) {
	tr := s.tracks[k]
	pe := &s.pe[k]

	if pe.haveLastAny {
		tr.Clk.Adjust(t - pe.lastAnyT)
	}
	pe.lastAnyT = t
	tr.Idle = false

	if pe.inPreamble {
		// Peakcount itself is maintained by the edge detector; only the
		// preamble's own alternation count is tracked here.
		pe.preambleCount++
		if pe.preambleCount == 1 {
			tr.Bit1Up = true // polarity fixed by the first preamble transition
		}
		if pe.preambleCount >= PEMinPrebits {
			pe.inPreamble = false
			pe.haveBoundary = true
			pe.boundaryT = t
			pe.bitPending = false
		}
		return
	}

	if !pe.haveBoundary {
		pe.haveBoundary = true
		pe.boundaryT = t
		return
	}

	delta := t - pe.boundaryT
	window := s.clkWindow(k)

	if delta < window {
		// Mid-cell transition: this cell's bit is 1.
		pe.bitPending = true
		return
	}

	// This peak is the next cell boundary.
	bit := byte(0)
	if pe.bitPending {
		bit = 1
	}
	s.emitBit(k, bit, pe.boundaryT)
	pe.boundaryT = t
	pe.bitPending = false
}

func (s *PEState) emitBit(k int, bit byte, t float64) {
	tr := s.tracks[k]
	tr.Bits = append(tr.Bits, bit)
	tr.Faked = append(tr.Faked, false)
	tr.Datacount++
	tr.TLastBit = t
	tr.LastBitVal = int(bit)
	if tr.Datacount >= MAXBLOCK {
		s.overrun = true
	}
}

// Tick is called once per incoming sample to evaluate the cross-track
// idle timeout that ends a block (§4.5).
func (s *PEState) Tick(t float64) {
	allIdle := true
	for k, tr := range s.tracks {
		period := tr.Clk.Avg()
		if period <= 0 {
			period = s.bitPeriodHint
		}
		last := s.pe[k].lastAnyT
		if period > 0 && t-last > PEIdleFactor*period {
			if s.fakeBits && !s.pe[k].inPreamble && period > 0 {
				for t-tr.TLastBit > period && len(tr.Bits) > 0 {
					tr.Bits = append(tr.Bits, byte(tr.LastBitVal))
					tr.Faked = append(tr.Faked, true)
					tr.TLastBit += period
					tr.Datacount++
				}
			}
			tr.Idle = true
		} else {
			allIdle = false
		}
	}
	if allIdle {
		if !s.haveIdle {
			s.haveIdle = true
			s.idleSince = t
		}
	} else {
		s.haveIdle = false
	}
}

// Done reports whether the cross-track idle condition has been reached,
// or the block data buffer bound was hit.
func (s *PEState) Done() bool {
	return s.haveIdle || s.overrun
}

// Finish prunes the postamble from every track (§4.5), detects a
// tapemark, and assembles the BlockResult.
func (s *PEState) Finish() BlockResult {
	for k := range s.tracks {
		prunePostamble(s.tracks[k])
	}

	if peIsTapemark(s.tracks) {
		r := BlockResult{Kind: KindTapemark}
		r.Tally()
		return r
	}

	min, max := -1, 0
	for _, tr := range s.tracks {
		n := len(tr.Bits)
		if min == -1 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	if min <= 0 {
		r := BlockResult{Kind: KindNoise}
		r.Tally()
		return r
	}

	data, faked := AssembleBlock(s.tracks, min, false)

	r := BlockResult{
		Kind:          KindBlock,
		Mode:          ModePE,
		MinBits:       min,
		MaxBits:       max,
		Data:          data,
		FakedTracks:   faked,
		TrackMismatch: max - min,
		AvgBitSpacing: meanTrackPeriod(s.tracks, s.bitPeriodHint),
	}
	for _, tr := range s.tracks {
		if tr.AGC == nil {
			continue
		}
		lo, hi := tr.AGC.BlockMinMax()
		if r.AlltrkMinAGCGain == 0 || lo < r.AlltrkMinAGCGain {
			r.AlltrkMinAGCGain = lo
		}
		if hi > r.AlltrkMaxAGCGain {
			r.AlltrkMaxAGCGain = hi
		}
	}
	r.Tally()
	return r
}

// prunePostamble discards trailing postamble peaks from one track
// (§4.5): from the end, discard at most PE_MAX_POSTBITS bits, always
// skipping the last PE_IGNORE_POSTBITS, until a 1-bit is removed.
func prunePostamble(tr *TrackState) {
	n := len(tr.Bits)
	if n <= PEIgnorePostbits {
		return
	}
	limit := n - PEIgnorePostbits
	removed := 0
	for i := limit - 1; i >= 0 && removed < PEMaxPostbits; i-- {
		bit := tr.Bits[i]
		tr.Bits = append(tr.Bits[:i], tr.Bits[i+1:]...)
		tr.Faked = append(tr.Faked[:i], tr.Faked[i+1:]...)
		removed++
		if bit == 1 {
			break
		}
	}
}

// peIsTapemark implements the track-specific peak-count rule of §4.5.
// Track indices follow the canonical 9-track layout: P,0..7 with track
// index 8 as parity in this module's internal numbering (see
// block_assembler.go); the rule references tracks 0,2,5,6,7,P and 1,3,4.
func peIsTapemark(tracks []*TrackState) bool {
	if len(tracks) < 9 {
		return false
	}
	highPeak := []int{0, 2, 5, 6, 7, 8} // 8 == parity track in our layout
	lowPeak := []int{1, 3, 4}
	for _, i := range highPeak {
		if tracks[i].Peakcount <= 75 || tracks[i].Datacount > 2 {
			return false
		}
	}
	for _, i := range lowPeak {
		if tracks[i].Peakcount > 2 {
			return false
		}
	}
	return true
}
