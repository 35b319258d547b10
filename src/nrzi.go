package readtape

// NRZIState is the global (not-self-clocking) NRZI decoder of §4.6. All
// tracks share one clock; at each tick, every track contributes one bit
// to the current byte, so one tick == one assembled byte (9 bits: 8
// data + parity for 9-track, or 7 bits: 6 data + parity for 7-track).
type NRZIState struct {
	ps      *Parmset
	tracks  []*TrackState
	ntrks   int
	clk     *ClkAvg
	bitPeriodHint float64

	tLastClock   float64
	tLastMidbit  float64
	haveClock    bool
	postCounter  int
	done         bool

	correctErrors bool
	parity        Parity
	// revParityThreshold flips the expected parity for the whole block
	// when at least this fraction of its bytes fail the configured one
	// (§6.4); 0 disables.
	revParityThreshold float64
	missedMidbits      int

	cells       int // zero-check windows evaluated so far
	lastOneCell int // 1-based cell index of the most recent 1-bit sighting
}

// NewNRZIState builds an NRZI decoder across len(tracks) tracks (7 or 9).
func NewNRZIState(ps *Parmset, bpi, ips float64, tracks []*TrackState, clk *ClkAvg, parity Parity, correctErrors bool) *NRZIState {
	s := &NRZIState{ps: ps, tracks: tracks, ntrks: len(tracks), clk: clk, parity: parity, correctErrors: correctErrors}
	if bpi > 0 && ips > 0 {
		s.bitPeriodHint = 1.0 / (bpi * ips)
	}
	return s
}

// OnEdge bootstraps the shared clock from the very first peak seen on
// any track; subsequent clock positioning happens entirely in Tick.
func (s *NRZIState) OnEdge(k int, t float64) {
	s.tracks[k].Idle = false
	if !s.haveClock {
		s.haveClock = true
		s.tLastClock = t
		s.tLastMidbit = t
	}
}

// Tick evaluates the per-bit-time zero check once the window for the
// current tick has fully elapsed (§4.6).
func (s *NRZIState) Tick(t float64) {
	if !s.haveClock || s.done {
		return
	}
	period := s.clk.Avg()
	if period <= 0 {
		period = s.bitPeriodHint
	}
	if period <= 0 {
		return
	}
	midbit := s.ps.NRZIMidbit
	windowEnd := s.tLastClock + (1+midbit)*period
	if t < windowEnd {
		return
	}

	inWindow := func(pt float64) bool {
		return pt >= s.tLastMidbit && pt < windowEnd
	}

	found1 := false
	var sumT float64
	var cnt int
	for _, tr := range s.tracks {
		has := inWindow(tr.TLastPeak) || inWindow(tr.TPrevLastPeak)
		faked := false
		if !has {
			faked = true
		} else {
			found1 = true
			if inWindow(tr.TLastPeak) {
				sumT += tr.TLastPeak
			} else {
				// The 1-bit was only visible in the peak before last: a
				// newer peak already ran past this midbit window.
				sumT += tr.TPrevLastPeak
				s.missedMidbits++
			}
			cnt++
		}
		bit := byte(0)
		if has {
			bit = 1
		}
		tr.Bits = append(tr.Bits, bit)
		tr.Faked = append(tr.Faked, faked)
		tr.Datacount++
	}

	expected := s.tLastClock + period
	if found1 && cnt > 0 {
		avg := sumT / float64(cnt)
		s.tLastClock = expected + s.ps.PulseAdj*(avg-expected)
	} else {
		s.tLastClock = expected
	}
	s.tLastMidbit = windowEnd

	s.cells++
	if s.cells >= MAXBLOCK {
		s.done = true
	}
	if found1 {
		s.lastOneCell = s.cells
		if s.postCounter == 1 {
			s.postCounter = 0
		}
		// Quirk per §9: later 1-bit sightings once post_counter has
		// advanced past 1 are interpreted as CRC/LRC and do not cancel
		// the nascent end-of-block.
	} else {
		s.postCounter++
		if s.postCounter >= 8 {
			s.done = true
		}
	}
}

// Done reports whether the 8-bit-time all-zero tail has been reached.
func (s *NRZIState) Done() bool { return s.done }

// Finish assembles the byte stream, separates the trailing CRC/LRC
// region, runs vertical parity, and (9-track only) CRC/LRC checks.
func (s *NRZIState) Finish() BlockResult {
	minBits := -1
	for _, tr := range s.tracks {
		if minBits == -1 || len(tr.Bits) < minBits {
			minBits = len(tr.Bits)
		}
	}
	if minBits <= 0 {
		r := BlockResult{Kind: KindNoise}
		r.Tally()
		return r
	}

	data, faked := AssembleBlock(s.tracks, minBits, s.ntrks < 9)

	// The post-block region keeps the decoder ticking for several cells
	// past the LRC (post_counter must reach 8), appending all-zero bytes
	// that belong to the inter-block gap, not to the record. Trim back to
	// the last cell that carried a 1-bit so the trailer split below lands
	// on the CRC/LRC layout of §4.6.
	if s.lastOneCell > 0 && s.lastOneCell < len(data) {
		data = data[:s.lastOneCell]
		minBits = s.lastOneCell
	}

	if isNRZITapemark(data, s.ntrks == 9) {
		r := BlockResult{Kind: KindTapemark, MinBits: minBits, MaxBits: minBits}
		r.Tally()
		return r
	}
	if minBits <= 10 {
		r := BlockResult{Kind: KindNoise}
		r.Tally()
		return r
	}

	tail := 8
	if len(data) <= tail {
		tail = len(data) - 1
	}
	dataBytes := data[:len(data)-tail]
	trailing := data[len(data)-tail:]

	// min_bits counts the record's data characters; the CRC/LRC trailer
	// is framing, not payload.
	r := BlockResult{Kind: KindBlock, Mode: ModeNRZI, MinBits: len(dataBytes), MaxBits: len(dataBytes), FakedTracks: faked, MissedMidbits: s.missedMidbits}

	for _, b := range dataBytes {
		if parityOf(b) != s.parity {
			r.VParityErrs++
		}
	}
	if s.revParityThreshold > 0 && len(dataBytes) > 0 &&
		float64(r.VParityErrs) >= s.revParityThreshold*float64(len(dataBytes)) {
		// Nearly everything failing the configured parity means the tape
		// was written with the opposite convention; re-count against it.
		s.parity = oppositeParity(s.parity)
		r.VParityErrs = 0
		for _, b := range dataBytes {
			if parityOf(b) != s.parity {
				r.VParityErrs++
			}
		}
	}

	if s.ntrks == 9 {
		crc := NRZICRC9(dataBytes)
		crcByte := byte(crc & 0xFF)
		found, _ := findByteNear(trailing, crcByte, 3, 1)
		if !found {
			r.CRCErrs++
		}
		lrc := NRZILRC(dataBytes, true, crcByte)
		_, lidx := findByteNear(trailing, lrc, 7, 1)
		if lidx < 0 {
			r.LRCErrs++
		}
	} else {
		lrc := NRZILRC(dataBytes, false, 0)
		found, _ := findByteNear(trailing, lrc, len(trailing)-1, 1)
		if !found {
			r.LRCErrs++
		}
	}

	if s.correctErrors && r.VParityErrs > 0 {
		s.correctWorstTrack(dataBytes, &r)
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
	r.Data = dataBytes
	r.AvgBitSpacing = s.clk.Avg()
	r.Tally()
	return r
}

// correctWorstTrack flips the bit of the lowest-AGC-gain track on any
// byte that failed parity, when -correct is configured, marking that bit
// faked (§4.6, NRZI_BADTRK_FACTOR).
func (s *NRZIState) correctWorstTrack(dataBytes []byte, r *BlockResult) {
	worst := 0
	worstGain := AGCMaxValue + 1
	for k, tr := range s.tracks[:len(s.tracks)-1] {
		if tr.AGC == nil {
			continue
		}
		g := tr.AGC.Gain()
		if g < worstGain {
			worstGain = g
			worst = k
		}
	}
	for i, b := range dataBytes {
		if parityOf(b) != s.parity {
			dataBytes[i] ^= 1 << uint(len(s.tracks)-2-worst)
			r.CorrectedBits++
			if i < len(s.tracks[worst].Faked) {
				s.tracks[worst].Faked[i] = true
			}
		}
	}
}

func oppositeParity(p Parity) Parity {
	if p == ParityOdd {
		return ParityEven
	}
	return ParityOdd
}

func parityOf(b byte) Parity {
	ones := 0
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			ones++
		}
	}
	if ones%2 == 1 {
		return ParityOdd
	}
	return ParityEven
}

// findByteNear searches trailing for value within +/-tolerance positions
// of the expected index.
func findByteNear(trailing []byte, value byte, expectedIdx, tolerance int) (bool, int) {
	for d := -tolerance; d <= tolerance; d++ {
		i := expectedIdx + d
		if i >= 0 && i < len(trailing) && trailing[i] == value {
			return true, i
		}
	}
	return false, -1
}

// NRZICRC9 computes the 9-track CRC of §4.6: a 9-bit shift register fed
// one data byte at a time, finished with an XOR against NRZICRCPoly.
func NRZICRC9(data []byte) int {
	c := 0
	for _, b := range data {
		c ^= int(b)
		if c&2 != 0 {
			c ^= 0xF0
		}
		c = rotateRight9(c)
	}
	c ^= NRZICRCPoly
	return c & 0x1FF
}

func rotateRight9(c int) int {
	bit := c & 1
	return ((c >> 1) | (bit << 8)) & 0x1FF
}

// NRZILRC is the XOR of all data bytes; for 9-track tapes it also folds
// in the low byte of the CRC register (§4.6: "LRC is XOR of all data
// bytes (9-trk: including CRC)").
func NRZILRC(data []byte, nineTrack bool, crcByte byte) byte {
	var l byte
	for _, b := range data {
		l ^= b
	}
	if nineTrack {
		l ^= crcByte
	}
	return l
}

// isNRZITapemark recognizes the 9-track 0x26 / 7-track 0x1E tapemark
// pattern (§4.6): min_bits==9, with the first/last marker byte and zero
// middle bytes.
func isNRZITapemark(data []byte, nineTrack bool) bool {
	if len(data) != 9 {
		return false
	}
	marker := byte(0x1E)
	lastIdx := 3
	if nineTrack {
		marker = 0x26
		lastIdx = 8
	}
	if data[0] != marker {
		return false
	}
	found := false
	for _, i := range []int{lastIdx - 1, lastIdx, lastIdx + 1} {
		if i >= 0 && i < len(data) && data[i] == marker {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := 1; i < len(data)-1; i++ {
		if i == lastIdx {
			continue
		}
		if data[i] != 0 {
			return false
		}
	}
	return true
}
