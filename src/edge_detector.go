package readtape

// EdgeEvent is a typed peak/zero-crossing event emitted by an edge
// detector for one track (§4.3): (track, time, direction).
type EdgeEvent struct {
	Track int
	T     float64
	Dir   Direction
}

// computeWindowSize derives W from the parmset and nominal density
// (§4.3.1): W = min(50, floor(pkww_bitfrac/(bpi*ips*dt))), floored at 8
// when bpi is unknown (density pre-pass not yet run) or the computed
// value would otherwise be degenerate.
func computeWindowSize(ps *Parmset, bpi, ips, dt float64) int {
	if bpi <= 0 || ips <= 0 || dt <= 0 {
		return 8
	}
	w := int(ps.PkwwBitfrac / (bpi * ips * dt))
	if w > PeakWindowMax {
		w = PeakWindowMax
	}
	if w < 8 {
		w = 8
	}
	return w
}

// PeakDetector implements the default moving-window peak detector of
// §4.3.1 for a single track. leftDistance is the post-peak cooldown, in
// samples; it is set to the window length, which is long enough that the
// declared peak has fully scrolled out of the ring buffer before another
// one can be considered.
type PeakDetector struct {
	ps           *Parmset
	leftDistance int
}

// NewPeakDetector builds a peak detector for one track using the given
// parmset. windowLen must match the TrackState's configured window
// length (TrackState.winLen), computed once via computeWindowSize.
func NewPeakDetector(ps *Parmset, windowLen int) *PeakDetector {
	return &PeakDetector{ps: ps, leftDistance: windowLen}
}

// Process feeds one preprocessed voltage sample for a track through the
// peak detector, invoking onUp/onDown with the refined peak time for
// each declared top/bottom peak.
func (d *PeakDetector) Process(t *TrackState, v float32, tm float64, onUp, onDown func(tm float64)) {
	t.VPrev = t.VNow
	t.VNow = v

	t.pushWindowSample(v, tm)

	if t.countdown > 0 {
		t.countdown--
		return
	}
	if t.winCount < t.winLen {
		return
	}

	minV, maxV, minIdx, maxIdx := t.windowMinMax()
	leftV, rightV := t.windowEdgeValues()

	gain := 1.0
	vAvg := 0.0
	if t.AGC != nil {
		gain = t.AGC.Gain()
		vAvg = t.AGC.VAvgHeight()
	}
	// Until the AGC baseline seeds v_avg_height, the parmset thresholds
	// are taken as absolute volts; afterwards they scale with the track's
	// observed amplitude and gain (§4.3.1).
	r := d.ps.PkwwRise
	minPeakRequired := d.ps.MinPeak
	if vAvg > 0 {
		r = d.ps.PkwwRise * vAvg / (PKWWPeakHeight * gain)
		minPeakRequired = d.ps.MinPeak * vAvg / (PKWWPeakHeight * gain)
	}

	topOK := float64(maxV-leftV) >= r && float64(maxV-rightV) >= r
	if topOK && d.ps.MinPeak > 0 {
		topOK = float64(maxV) > minPeakRequired
	}
	botOK := float64(leftV-minV) >= r && float64(rightV-minV) >= r
	if botOK && d.ps.MinPeak > 0 {
		botOK = float64(-minV) > minPeakRequired
	}

	switch {
	case topOK && botOK:
		// Whichever extremum is further from the window's mean wins;
		// this only happens on short, noisy windows.
		if float64(maxV) >= -float64(minV) {
			d.declare(t, maxIdx, tm, DirUp, onUp)
		} else {
			d.declare(t, minIdx, tm, DirDown, onDown)
		}
	case topOK:
		d.declare(t, maxIdx, tm, DirUp, onUp)
	case botOK:
		d.declare(t, minIdx, tm, DirDown, onDown)
	}
}

func (d *PeakDetector) declare(t *TrackState, peakIdx int, tm float64, dir Direction, cb func(float64)) {
	gain := 1.0
	if t.AGC != nil {
		gain = t.AGC.Gain()
	}
	refinedT := refinePeakTime(t, peakIdx, gain)

	t.recordPeak(refinedT)
	t.VLastPeak = float64(t.winV[peakIdx])

	heightPP := float64(t.winV[peakIdx])
	if dir == DirUp {
		heightPP -= float64(t.winV[oppositeExtremeIdx(t, peakIdx, false)])
	} else {
		heightPP = float64(t.winV[oppositeExtremeIdx(t, peakIdx, true)]) - heightPP
	}
	if t.AGC != nil {
		if !t.AGC.Seeded() && t.Peakcount >= AGCStartBase && t.Peakcount <= AGCEndBase {
			t.AGC.AccumulateBaseline(heightPP)
		} else if t.AGC.Seeded() {
			t.AGC.Update(heightPP)
		}
	}

	t.countdown = d.leftDistance
	cb(refinedT)
}

// oppositeExtremeIdx returns the index of the opposite extremum in the
// current window, used only to estimate a peak-to-peak height for AGC
// seeding/update.
func oppositeExtremeIdx(t *TrackState, _ int, wantMax bool) int {
	_, _, minIdx, maxIdx := t.windowMinMax()
	if wantMax {
		return maxIdx
	}
	return minIdx
}

// refinePeakTime locates the peak's neighbours in the ring buffer and,
// if exactly one is within PEAK_THRESHOLD/agc_gain of the peak value,
// shifts the reported time by +/- half a sample toward it (§4.3.1).
func refinePeakTime(t *TrackState, peakIdx int, gain float64) float64 {
	n := t.winLen
	prevIdx := (peakIdx - 1 + n) % n
	nextIdx := (peakIdx + 1) % n

	peakV := t.winV[peakIdx]
	thresh := float32(PeakThreshold / gain)

	prevClose := absF32(t.winV[prevIdx]-peakV) <= thresh
	nextClose := absF32(t.winV[nextIdx]-peakV) <= thresh

	dt := t.winT[nextIdx] - t.winT[peakIdx]
	if dt == 0 {
		// Fall back to the spacing on the other side if this track's
		// ring buffer wrapped such that next==peak (shouldn't normally
		// happen once the window is full).
		dt = t.winT[peakIdx] - t.winT[prevIdx]
	}
	half := 0.5 * absF64(dt)

	switch {
	case prevClose && !nextClose:
		return t.winT[peakIdx] - half
	case nextClose && !prevClose:
		return t.winT[peakIdx] + half
	default:
		return t.winT[peakIdx]
	}
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absF64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ZeroCrossDetector is the opt-in alternative of §4.3.2. It works on
// either the raw preprocessed voltage or the differentiator output; in
// the differentiated case, runs of exact-zero samples are collapsed into
// one event at their average timestamp.
type ZeroCrossDetector struct {
	differentiated bool

	lastSign    int
	extreme     float32
	swingStartT float64

	zeroSumT   float64
	zeroCount  int
}

// NewZeroCrossDetector builds a zero-crossing detector. differentiated
// selects the post-differentiator variant's zero-run averaging.
func NewZeroCrossDetector(differentiated bool) *ZeroCrossDetector {
	return &ZeroCrossDetector{differentiated: differentiated}
}

// Process feeds one preprocessed sample through the detector.
// bitPeriod is the current clock estimate, used to bound how long a
// crossing may take to follow its initiating swing (ZEROCROSS_SLOPE).
func (z *ZeroCrossDetector) Process(v float32, t, bitPeriod float64, onUp, onDown func(t float64)) {
	if z.differentiated && v == 0 {
		z.zeroSumT += t
		z.zeroCount++
		return
	}
	if z.differentiated && z.zeroCount > 0 {
		avgT := z.zeroSumT / float64(z.zeroCount)
		z.handleCrossing(avgT, bitPeriod, onUp, onDown)
		z.zeroSumT, z.zeroCount = 0, 0
	}

	sign := 0
	switch {
	case v > 0:
		sign = 1
	case v < 0:
		sign = -1
	}

	if sign != 0 && z.lastSign != 0 && sign != z.lastSign {
		z.handleCrossing(t, bitPeriod, onUp, onDown)
	}

	if z.lastSign == 0 || sign == z.lastSign {
		if absF32(v) > absF32(z.extreme) {
			z.extreme = v
		}
	} else {
		z.extreme = v
		z.swingStartT = t
	}
	if sign != 0 {
		z.lastSign = sign
	}
}

func (z *ZeroCrossDetector) handleCrossing(t, bitPeriod float64, onUp, onDown func(float64)) {
	defer func() { z.extreme = 0 }()
	if absF32(z.extreme) < ZerocrossPeak {
		return
	}
	if bitPeriod > 0 && (t-z.swingStartT) > ZerocrossSlope*bitPeriod {
		return
	}
	if z.extreme < 0 {
		onUp(t)
	} else {
		onDown(t)
	}
}
