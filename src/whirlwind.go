package readtape

// wwTrackRole names the six physical Whirlwind tracks; the Permuter maps
// head columns onto these via head_to_track, with unused heads routed
// to a discard slot (index -1, §4.2).
const (
	wwPrimaryClock = iota
	wwPrimaryLSB
	wwPrimaryMSB
	wwAlternateClock
	wwAlternateLSB
	wwAlternateMSB
	wwTrackCount
)

// WhirlwindState decodes the 6-track 100bpi format of §4.8. Unlike
// PE/NRZI/GCR, its peak and polarity history must persist across block
// boundaries (§9): the caller must not reinitialise this struct between
// retries of a single parmset, only between parmsets or at end of file.
type WhirlwindState struct {
	ps            *Parmset
	tracks        []*TrackState // length wwTrackCount
	bitPeriodHint float64
	clk           *ClkAvg

	polarity      FluxDirection
	configured    FluxDirection
	haveLastAny   bool
	tLastAny      float64
	polarityChanges int

	inBlock      bool
	tBlockStart  float64
	chars        []byte // 2-bit characters, packed one per byte (0..3)
	tLastClockEnd float64
	haveClockEnd bool

	pulseStart map[int]float64 // track -> time of most recent pulse start not yet consumed

	// Previous pulse-start time per clock track, for the clock estimate.
	// Kept here rather than on TrackState because the peak detector
	// rewrites TLastPeak before OnEdge runs; the delta must be computed
	// against the same track's prior start only (§4.8).
	lastClockStart [wwTrackCount]float64
	haveClockStart [wwTrackCount]bool

	blockmarkQueued bool
	tLastBlockmark  float64

	missingClock  int
	missingOnebit int

	done bool
	forward bool
}

// NewWhirlwindState builds a persistent Whirlwind decoder. tracks must
// have length wwTrackCount, in the role order above. Call Reset only
// between parmsets, never between blocks of the same parmset.
func NewWhirlwindState(ps *Parmset, bpi, ips float64, tracks []*TrackState, polarity FluxDirection, forward bool) *WhirlwindState {
	s := &WhirlwindState{ps: ps, tracks: tracks, configured: polarity, polarity: polarity, forward: forward}
	s.pulseStart = make(map[int]float64)
	s.clk = NewClkAvg(ps, bpi, ips)
	if bpi > 0 && ips > 0 {
		s.bitPeriodHint = 1.0 / (bpi * ips)
	}
	return s
}

// SetParmset swaps in a new parmset's tunables without disturbing the
// peak/polarity/block-mark history that must survive both retries and
// block boundaries (§9).
func (s *WhirlwindState) SetParmset(ps *Parmset) {
	s.ps = ps
}

func (s *WhirlwindState) period() float64 {
	p := s.clk.Avg()
	if p <= 0 {
		p = s.bitPeriodHint
	}
	return p
}

// OnEdge processes one flux transition (either pulse start or pulse end,
// determined by comparing dir against the resolved polarity) on the
// given Whirlwind track role.
func (s *WhirlwindState) OnEdge(k int, t float64, dir Direction) {
	s.resolvePolarity(t, dir)
	isStart := (dir == DirUp) == (s.polarity != FluxNeg)

	if isStart {
		s.onPulseStart(k, t)
	} else {
		s.onPulseEnd(k, t)
	}
	s.haveLastAny = true
	s.tLastAny = t
}

// resolvePolarity fixes polarity from the first peak after a long
// silence (§4.8); once fixed mid-tape changes are just counted.
func (s *WhirlwindState) resolvePolarity(t float64, dir Direction) {
	if s.configured != FluxAuto {
		return
	}
	period := s.period()
	silent := !s.haveLastAny || (period > 0 && t-s.tLastAny > WWPeaksFarBits*period)
	if silent {
		next := FluxPos
		if dir == DirDown {
			next = FluxNeg
		}
		if s.polarity != FluxAuto && s.polarity != next {
			s.polarityChanges++
		}
		s.polarity = next
	}
}

func (s *WhirlwindState) onPulseStart(k int, t float64) {
	if k != wwPrimaryClock && k != wwAlternateClock {
		s.pulseStart[k] = t
		return
	}
	if !s.inBlock {
		s.inBlock = true
		s.tBlockStart = t
		s.chars = s.chars[:0]
	}
	if s.haveClockStart[k] {
		s.clk.Adjust(t - s.lastClockStart[k])
	}
	s.haveClockStart[k] = true
	s.lastClockStart[k] = t
	s.pulseStart[k] = t
}

func (s *WhirlwindState) onPulseEnd(k int, t float64) {
	switch k {
	case wwPrimaryClock, wwAlternateClock:
		s.onClockPulseEnd(k, t)
	case wwPrimaryLSB, wwAlternateLSB:
		s.maybeBlockmark(k, t)
	}
}

// onClockPulseEnd is a true clock tick when far enough from the last one
// (§4.8); it samples the four data tracks for a pulse start within the
// last bit interval and assembles one 2-bit character.
func (s *WhirlwindState) onClockPulseEnd(k int, t float64) {
	period := s.period()
	if s.haveClockEnd && period > 0 && t-s.tLastClockEnd <= WWPeaksCloseBits*period {
		return // not a true tick, just the redundant primary/alternate echo
	}
	s.tLastClockEnd = t
	s.haveClockEnd = true

	haveBit := func(primary, alternate int) (bit byte) {
		pStart, pOK := s.pulseStart[primary]
		aStart, aOK := s.pulseStart[alternate]
		pIn := pOK && period > 0 && t-pStart <= period
		aIn := aOK && period > 0 && t-aStart <= period
		if pIn != aIn {
			s.missingOnebit++
		}
		if pIn || aIn {
			bit = 1
		}
		return bit
	}

	lsb := haveBit(wwPrimaryLSB, wwAlternateLSB)
	msb := haveBit(wwPrimaryMSB, wwAlternateMSB)

	pStart, pOK := s.pulseStart[wwPrimaryClock]
	aStart, aOK := s.pulseStart[wwAlternateClock]
	pIn := pOK && period > 0 && t-pStart <= period
	aIn := aOK && period > 0 && t-aStart <= period
	if pIn != aIn {
		s.missingClock++
	}

	ch := lsb | msb<<1
	s.chars = append(s.chars, ch)
}

// maybeBlockmark recognizes a pulse end on an LSB track arriving more
// than one bit interval after the last clock pulse end (§4.8).
func (s *WhirlwindState) maybeBlockmark(k int, t float64) {
	period := s.period()
	if !s.haveClockEnd || period <= 0 || t-s.tLastClockEnd <= period {
		return
	}
	if s.inBlock {
		s.blockmarkQueued = true
	}
	s.tLastBlockmark = t
	s.done = true
}

// Tick checks the clock-stop idle condition (§4.8). The comparison is
// floored at the block's own start time so a freshly opened block is not
// ended against the previous block's last clock end.
func (s *WhirlwindState) Tick(t float64) {
	period := s.period()
	last := s.tLastClockEnd
	if last < s.tBlockStart {
		last = s.tBlockStart
	}
	if s.inBlock && period > 0 && t-last > WWClkStopBits*period {
		s.done = true
	}
}

func (s *WhirlwindState) Done() bool { return s.done }

// Finish assembles the queued characters into bytes and runs the
// end-of-block checks of §4.8.
func (s *WhirlwindState) Finish() BlockResult {
	n := len(s.chars)
	var leading int
	if n%8 == 1 {
		s.chars = s.chars[1:]
		leading = 1
		n--
	}
	badLength := 0
	if n%8 != 0 {
		badLength = 1
	}

	data := make([]byte, n/4)
	for i := range data {
		var b byte
		for j := 0; j < 4; j++ {
			ch := s.chars[i*4+j]
			if s.forward {
				b = (b << 2) | ch // MSB-first
			} else {
				b |= ch << uint(2*j)
			}
		}
		data[i] = b
	}

	speedErr := 0
	if s.bitPeriodHint > 0 {
		actual := s.period()
		if actual > 0 {
			dev := (actual - s.bitPeriodHint) / s.bitPeriodHint
			if dev < 0 {
				dev = -dev
			}
			if dev > WWMaxClkVariation {
				speedErr = 1
			}
		}
	}

	r := BlockResult{
		Kind:                  KindBlock,
		Mode:                  ModeWhirlwind,
		MinBits:               n,
		MaxBits:               n,
		Data:                  data,
		WWMissingClock:        s.missingClock,
		WWMissingOnebit:       s.missingOnebit,
		WWLeadingClock:        leading,
		WWBadLength:           badLength,
		WWSpeedErr:            speedErr,
		WWFluxPolarityChanges: s.polarityChanges,
		AvgBitSpacing:         s.period(),
		TBlockStart:           s.tBlockStart,
	}
	r.Tally()

	s.inBlock = false
	s.done = false
	s.missingClock, s.missingOnebit = 0, 0
	if s.blockmarkQueued {
		s.blockmarkQueued = false
		s.inBlock = true
		s.tBlockStart = s.tLastBlockmark
		s.chars = s.chars[:0]
	}
	return r
}
