package readtape

// TrackState holds all timing and voltage history for one magnetic head
// (§3). One instance exists per track for the duration of a block decode;
// the Retry Driver owns the array and reinitializes it between parmset
// attempts (except for Whirlwind, where peak history must persist across
// block boundaries — see §9 and RetryDriver).
type TrackState struct {
	Index int

	VNow, VPrev, VLastRaw float32

	// Moving-window peak detector ring buffer (§4.3.1).
	winV      [PeakWindowMax]float32
	winT      [PeakWindowMax]float64
	winLen    int // configured window size W for this block/parmset
	winCount  int
	winNext   int
	countdown int // samples remaining before another peak may be declared

	TTop, VTop             float64
	TBot, VBot             float64
	TLastPeak, VLastPeak   float64
	TPrevLastPeak          float64
	havePeak               bool

	// Zero-crossing detector pending state (§4.3.2).
	zcPendingUp, zcPendingDown bool
	zcExtreme                  float32
	zcExtremeT                 float64

	AGC *AGC
	Clk *ClkAvg // PE and GCR only; nil for NRZI (global) and Whirlwind when unused per-track.

	Datacount         int
	Peakcount         int
	ConsecutiveZeroes int

	Idle      bool
	Datablock bool

	// PE-only (§4.5).
	Bit1Up     bool
	ClkNext    bool
	TClkWindow float64
	TLastBit   float64
	LastBitVal int

	// Accumulated bits for this block, MSB-first emission order handled
	// by the block assembler.
	Bits []byte

	// Faked-bit mask, parallel to Bits: 1 where FAKE_BITS synthesized a
	// repeat because of an idle dropout (§4.5).
	Faked []bool
}

// ResetForBlock clears the per-block fields of a track but, per §9,
// leaves the caller free to preserve peak/AGC history when the mode
// requires it (Whirlwind). PE/NRZI/GCR retries call this with a fresh
// TrackState instead.
func (t *TrackState) ResetForBlock() {
	t.Datacount = 0
	t.Peakcount = 0
	t.ConsecutiveZeroes = 0
	t.Idle = false
	t.Datablock = false
	t.Bit1Up = false
	t.ClkNext = false
	t.TClkWindow = 0
	t.TLastBit = 0
	t.LastBitVal = 0
	t.Bits = t.Bits[:0]
	t.Faked = t.Faked[:0]
	t.havePeak = false
}

// recordPeak shifts the last/previous peak history and bumps the peak
// counter. Called by whichever edge detector declared the peak, so the
// NRZI zero check can consult TLastPeak/TPrevLastPeak regardless of
// which detector is in use.
func (t *TrackState) recordPeak(tm float64) {
	t.TPrevLastPeak = t.TLastPeak
	t.TLastPeak = tm
	t.havePeak = true
	t.Peakcount++
}

// pushWindowSample appends one (time, voltage) observation to the ring
// buffer, evicting the oldest once full. It returns true once the window
// has its first full load and min/max are valid.
//
// Per §9's documented quirk, the incremental new-minimum/new-maximum
// fast path is never taken here: every call that evicts a sample forces
// a full rescan of the window for min/max, reproducing the original
// decoder's observable (if accidental) behaviour rather than repairing it.
func (t *TrackState) pushWindowSample(v float32, tm float64) {
	t.winV[t.winNext] = v
	t.winT[t.winNext] = tm
	t.winNext = (t.winNext + 1) % t.winLen
	if t.winCount < t.winLen {
		t.winCount++
	}
}

func (t *TrackState) windowMinMax() (minV, maxV float32, minIdx, maxIdx int) {
	minV, maxV = t.winV[0], t.winV[0]
	minIdx, maxIdx = 0, 0
	for i := 1; i < t.winCount; i++ {
		if t.winV[i] < minV {
			minV = t.winV[i]
			minIdx = i
		}
		if t.winV[i] > maxV {
			maxV = t.winV[i]
			maxIdx = i
		}
	}
	return
}

// windowEdgeValues returns the voltages at the oldest (left) and newest
// (right) end of the window, used by the peak-declaration rule of
// §4.3.1.
func (t *TrackState) windowEdgeValues() (left, right float32) {
	leftIdx := t.winNext // oldest sample, about to be overwritten next
	if t.winCount < t.winLen {
		leftIdx = 0
	}
	rightIdx := (t.winNext - 1 + t.winLen) % t.winLen
	return t.winV[leftIdx], t.winV[rightIdx]
}
