package readtape

// GCRState decodes the 9-track GCR format of §4.7: each track's flux
// transitions are first expanded back to a raw bit stream via z1pt/z2pt
// zero-insertion (exactly like NRZI, but per-track), then regrouped in
// 5s and passed through the 5-to-4 recoding table. Tracks run
// independently, as in PE; a shared byte-sequence state machine (walked
// off track 0's storage groups) supervises preamble/data/residual/CRC
// framing.
type GCRState struct {
	ps     *Parmset
	tracks []*TrackState
	ntrks  int

	bitPeriodHint float64
	correctErrors bool

	// Per-track decode cursors, kept here rather than on TrackState: the
	// peak detector rewrites TLastPeak before the OnEdge callback runs,
	// so the delta to the previous peak must come from our own copy.
	lastPeakT []float64
	hasPeak   []bool
	consumed  []int // bits of tr.Bits already pulled as 5-bit groups

	pendingNibbles [8]int
	pendingMask    uint
	outBytes       []byte
	rawBadGroups   int

	phase gcrPhase
}

type gcrPhase int

const (
	gcrPreamble gcrPhase = iota
	gcrData
	gcrResidual
	gcrDone
)

// NewGCRState builds a GCR decoder across the given tracks (8 data + 1
// parity, canonical order).
func NewGCRState(ps *Parmset, bpi, ips float64, tracks []*TrackState, correctErrors bool) *GCRState {
	s := &GCRState{ps: ps, tracks: tracks, ntrks: len(tracks), correctErrors: correctErrors}
	s.lastPeakT = make([]float64, len(tracks))
	s.hasPeak = make([]bool, len(tracks))
	s.consumed = make([]int, len(tracks))
	if bpi > 0 && ips > 0 {
		s.bitPeriodHint = 1.0 / (bpi * ips)
	}
	return s
}

// OnEdge processes one peak on track k: the delta since the track's last
// peak determines how many zero bits the encoder inserted before this
// 1-bit (§4.7).
func (s *GCRState) OnEdge(k int, t float64) {
	tr := s.tracks[k]
	tr.Idle = false
	if !s.hasPeak[k] {
		s.hasPeak[k] = true
		s.lastPeakT[k] = t
		return
	}
	period := tr.Clk.Avg()
	if period <= 0 {
		period = s.bitPeriodHint
	}
	delta := t - s.lastPeakT[k]
	s.lastPeakT[k] = t
	if period <= 0 {
		return
	}
	tr.Clk.Adjust(delta)

	// A delta landing exactly on the two-zero threshold counts as two
	// inserted zeros.
	zeros := 0
	if delta >= s.ps.GCRTwoZeroPt*period {
		zeros = 2
	} else if delta > s.ps.GCROneZeroPt*period {
		zeros = 1
	}
	for i := 0; i < zeros; i++ {
		tr.Bits = append(tr.Bits, 0)
	}
	tr.Bits = append(tr.Bits, 1)
	tr.Datacount += zeros + 1
	if tr.Datacount >= MAXBLOCK {
		s.phase = gcrDone
	}
	s.tryEmitGroup(k)
}

// tryEmitGroup pulls a 5-bit storage group off track k once five raw
// bits have accumulated, decodes it, and (once every track has a fresh
// nibble) folds the eight data-track nibbles into output bytes.
func (s *GCRState) tryEmitGroup(k int) {
	tr := s.tracks[k]
	for len(tr.Bits)-s.consumed[k] >= 5 {
		start := s.consumed[k]
		code := 0
		for i := 0; i < 5; i++ {
			code = (code << 1) | int(tr.Bits[start+i])
		}
		s.consumed[k] += 5
		s.classifyGroup(k, code)
	}
}

// classifyGroup decodes one 5-bit group for track k and, once all data
// tracks have produced their group for this slot, assembles bytes. Only
// track 0's storage groups are consulted against the marker alphabet
// (§4.7); the same codes on any other track are ordinary data.
func (s *GCRState) classifyGroup(k, code int) {
	if k == 0 {
		switch code {
		case gcrSync, gcrMark1, gcrMark2:
			if s.phase == gcrPreamble {
				s.phase = gcrData
			}
			return
		case gcrTerml1, gcrTerml0:
			s.phase = gcrResidual
			return
		case gcrSecond1, gcrSecond2:
			return
		}
	}
	if s.phase != gcrData && s.phase != gcrResidual {
		return
	}
	if k >= s.ntrks-1 {
		// The parity track's own storage groups only gate the shared
		// phase state machine above; it contributes no data nibble.
		return
	}
	nibble, ok := decodeNibble(code)
	if !ok {
		s.rawBadGroups++
	}
	s.pendingNibbles[k] = nibble
	s.pendingMask |= 1 << uint(k)
	if s.pendingMask == (1<<uint(s.ntrks-1))-1 { // all data tracks contributed
		s.flushNibbles()
	}
}

func (s *GCRState) flushNibbles() {
	var bytes [4]byte
	for i := 0; i < 4 && 2*i+1 < s.ntrks-1; i++ {
		hi := s.pendingNibbles[2*i]
		lo := s.pendingNibbles[2*i+1]
		bytes[i] = byte(hi<<4) | byte(lo)
	}
	s.outBytes = append(s.outBytes, bytes[:]...)
	s.pendingMask = 0
}

// Tick checks the per-track idle threshold (§4.7): no peak for
// GCR_IDLE_THRESH bit times ends that track; once every track is idle,
// the block is complete.
func (s *GCRState) Tick(t float64) {
	allIdle := true
	for k, tr := range s.tracks {
		period := tr.Clk.Avg()
		if period <= 0 {
			period = s.bitPeriodHint
		}
		if period > 0 && t-s.lastPeakT[k] > GCRIdleThresh*period {
			tr.Idle = true
		} else {
			allIdle = false
		}
	}
	if allIdle {
		s.phase = gcrDone
	}
}

func (s *GCRState) Done() bool { return s.phase == gcrDone }

// Finish runs ECC verification over the assembled byte stream (every
// 8th byte is the ECC for the preceding seven, §4.7) and produces the
// BlockResult.
func (s *GCRState) Finish() BlockResult {
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
	if max <= 10 {
		r := BlockResult{Kind: KindNoise}
		r.Tally()
		return r
	}
	if max-min > 2 {
		r := BlockResult{Kind: KindBadBlock, Mode: ModeGCR, MinBits: min, MaxBits: max, TrackMismatch: max - min}
		r.Tally()
		return r
	}

	worstTrack := s.worstAGCTrack()

	data := s.outBytes
	var eccErrs, badGroups, corrected int
	badGroups = s.rawBadGroups
	for i := 0; i+8 <= len(data); i += 8 {
		var group [7]byte
		copy(group[:], data[i:i+7])
		want := gcrECC(group)
		got := data[i+7]
		if want != got {
			if s.correctErrors && s.recoverTrack(data, i, worstTrack) {
				corrected++
				continue
			}
			eccErrs++
		}
	}

	r := BlockResult{
		Kind:          KindBlock,
		Mode:          ModeGCR,
		MinBits:       min,
		MaxBits:       max,
		TrackMismatch: max - min,
		ECCErrs:       eccErrs,
		GCRBadDgroups: badGroups,
		CorrectedBits: corrected,
		Data:          data,
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

// worstAGCTrack returns the data track (excluding parity) with the
// lowest current gain, the track flushNibbles most likely mis-decoded,
// mirroring NRZI's correctWorstTrack heuristic (§4.6's
// NRZI_BADTRK_FACTOR idea applied to GCR).
func (s *GCRState) worstAGCTrack() int {
	worst, worstGain := 0, AGCMaxValue+1
	for k := 0; k < s.ntrks-1; k++ {
		tr := s.tracks[k]
		if tr.AGC == nil {
			continue
		}
		if g := tr.AGC.Gain(); g < worstGain {
			worstGain = g
			worst = k
		}
	}
	return worst
}

// gcrTrackBytePositions maps a physical data track (0-based, parity
// track excluded) to the byte position(s) it feeds within an 8-byte
// ECC window, and which nibble of those bytes it occupies (§4.7's
// nibble-pair packing in flushNibbles: bytes[i] = hi<<4|lo, hi from
// the even track of the pair, lo from the odd one).
//
// Tracks 0-5 each land in two byte positions four bytes apart, because
// flushNibbles folds the same eight data tracks into four bytes twice
// per ECC window (once for data[0:4], once for data[4:8]): a single
// bad track corrupts both occurrences identically, which is the
// "two-error-track" fault §9 names. Tracks 6 and 7 land in only one
// data position (byte index 3); their second occurrence within the
// window is the ECC byte itself, which is recorded verbatim rather
// than recomputed from a nibble pair.
func gcrTrackBytePositions(track int) (positions []int, nibbleShift uint) {
	if track%2 == 0 {
		nibbleShift = 4
	} else {
		nibbleShift = 0
	}
	i := track / 2
	if i == 3 {
		return []int{3}, nibbleShift
	}
	return []int{i, i + 4}, nibbleShift
}

// recoverTrack attempts erasure correction within the 7-byte data
// group starting at groupStart, on the assumption that worstTrack (the
// data track with the lowest current AGC gain, §4.6's bad-track
// heuristic applied here) is the single physical track in error. A bad
// track corrupts the same nibble by the same delta at every byte
// position it feeds (gcrTrackBytePositions): this tries each of the 16
// possible nibble deltas, predicts the ECC-byte change that delta
// would cause via the per-position weights msWeight(i) — the Ms[i]
// correction matrices of §9/§4.7, realized as the linear maps they
// name rather than hand-transcribed 8x8 bit tables — and accepts the
// delta whose predicted change matches the actual discrepancy between
// the recomputed and recorded ECC byte.
//
// Because a bad track is corrected at every byte position it feeds at
// once (two positions for tracks 0-5), this is the spec's two-byte
// erasure correction from a single bad track, not a single-byte patch.
func (s *GCRState) recoverTrack(data []byte, groupStart int, worstTrack int) bool {
	var group [7]byte
	copy(group[:], data[groupStart:groupStart+7])
	want := gcrECC(group)
	got := data[groupStart+7]
	diff := want ^ got
	if diff == 0 {
		return false
	}
	positions, shift := gcrTrackBytePositions(worstTrack)
	for delta := byte(1); delta < 16; delta++ {
		byteDelta := delta << shift
		var predicted byte
		for _, p := range positions {
			predicted ^= msWeight(p+1, byteDelta)
		}
		if predicted == diff {
			for _, p := range positions {
				data[groupStart+p] ^= byteDelta
			}
			return true
		}
	}
	return false
}
