package readtape

// ClkAvg is the clkavg_t of §3/§4.4: a moving estimate of the bit period,
// fed one observed bit-spacing (delta) at a time. Exactly one of the
// windowed, exponential, or constant strategies is active, selected by
// the owning Parmset.
type ClkAvg struct {
	window    []float64
	count     int // number of deltas seen since the last Force/reset
	next      int // circular insertion point
	sum       float64
	windowLen int

	alpha float64 // exponential weight, 0 < alpha <= 1; 0 means "not exponential"

	constant float64 // 1/(bpi*ips); 0 means "not constant-strategy"

	avg float64
}

// NewClkAvg builds a ClkAvg for the given parmset and nominal density.
// At most one of ps.ClkWindow/ps.ClkAlpha is expected to be set; if both
// are zero the estimator falls back to the constant strategy derived
// from bpi/ips.
func NewClkAvg(ps *Parmset, bpi, ips float64) *ClkAvg {
	c := &ClkAvg{}
	switch {
	case ps.ClkWindow > 0:
		n := ps.ClkWindow
		if n > ClkAvgWindowMax {
			n = ClkAvgWindowMax
		}
		c.window = make([]float64, n)
		c.windowLen = n
	case ps.ClkAlpha > 0:
		c.alpha = ps.ClkAlpha
	default:
		if bpi > 0 && ips > 0 {
			c.constant = 1.0 / (bpi * ips)
			c.avg = c.constant
		}
	}
	return c
}

// Adjust feeds one observed bit-spacing into the estimator.
func (c *ClkAvg) Adjust(delta float64) {
	if c.constant > 0 {
		return // constant strategy never adjusts
	}
	if c.windowLen > 0 {
		if c.count < c.windowLen {
			c.sum += delta
			c.window[c.next] = delta
			c.count++
		} else {
			old := c.window[c.next]
			c.window[c.next] = delta
			c.sum += delta - old
		}
		c.next = (c.next + 1) % c.windowLen
		c.avg = c.sum / float64(c.count)
		return
	}
	// Exponential.
	if c.avg == 0 {
		c.avg = delta
		return
	}
	c.avg = c.alpha*delta + (1-c.alpha)*c.avg
}

// Force overrides all history with a single value, used during GCR
// resync bursts (§4.4).
func (c *ClkAvg) Force(delta float64) {
	c.avg = delta
	if c.windowLen > 0 {
		c.count = 0
		c.sum = 0
		c.next = 0
	}
}

// Avg is the current bit-period estimate.
func (c *ClkAvg) Avg() float64 {
	return c.avg
}

// AGC is the per-track automatic gain control loop of §4.4. Exactly one
// of windowed/exponential is active per parmset; it is disabled entirely
// when the zero-crossing edge detector is in use.
type AGC struct {
	window    []float64
	count     int
	next      int
	windowLen int

	alpha float64

	vAvgHeight float64
	gain       float64

	blockMinGain float64
	blockMaxGain float64

	// Baseline accumulation before the first gain adjustment.
	baselineSum   float64
	baselineCount int
	seeded        bool
}

// NewAGC builds an AGC loop for the given parmset. gain starts at 1 and
// v_avg_height is seeded from the first AGCStartBase..AGCEndBase peaks
// (§4.4); until seeded, Gain() returns 1.
func NewAGC(ps *Parmset) *AGC {
	a := &AGC{gain: 1.0, blockMinGain: AGCMaxValue, blockMaxGain: 0}
	switch {
	case ps.AGCWindow > 0:
		n := ps.AGCWindow
		if n > AGCWindowMax {
			n = AGCWindowMax
		}
		a.window = make([]float64, n)
		a.windowLen = n
	case ps.AGCAlpha > 0:
		a.alpha = ps.AGCAlpha
	}
	return a
}

// AccumulateBaseline folds one peak-to-peak observation into the seeding
// baseline. Call this for peaks AGCStartBase..AGCEndBase (inclusive) of a
// track, before any gain update.
func (a *AGC) AccumulateBaseline(heightPP float64) {
	a.baselineSum += heightPP
	a.baselineCount++
	if a.baselineCount == AGCEndBase-AGCStartBase+1 {
		a.vAvgHeight = a.baselineSum / float64(a.baselineCount)
		if a.vAvgHeight <= 0 {
			a.vAvgHeight = heightPP
		}
		a.seeded = true
	}
}

// Seeded reports whether v_avg_height has been established.
func (a *AGC) Seeded() bool { return a.seeded }

// Update folds a newly measured peak-to-peak height into the gain
// estimate (§4.4), clamped to [0, AGCMaxValue].
func (a *AGC) Update(heightPP float64) {
	if !a.seeded || heightPP <= 0 {
		return
	}
	var newGain float64
	if a.windowLen > 0 {
		if a.count < a.windowLen {
			a.window[a.next] = heightPP
			a.count++
		} else {
			a.window[a.next] = heightPP
		}
		a.next = (a.next + 1) % a.windowLen
		minH := a.window[0]
		for i := 1; i < a.count; i++ {
			if a.window[i] < minH {
				minH = a.window[i]
			}
		}
		if minH <= 0 {
			return
		}
		newGain = a.vAvgHeight / minH
	} else if a.alpha > 0 {
		newGain = a.alpha*(a.vAvgHeight/heightPP) + (1-a.alpha)*a.gain
	} else {
		return
	}
	if newGain < 0 {
		newGain = 0
	}
	if newGain > AGCMaxValue {
		newGain = AGCMaxValue
	}
	a.gain = newGain
	if a.gain < a.blockMinGain {
		a.blockMinGain = a.gain
	}
	if a.gain > a.blockMaxGain {
		a.blockMaxGain = a.gain
	}
}

// Gain is the current gain multiplier.
func (a *AGC) Gain() float64 {
	if a.gain == 0 {
		return 1
	}
	return a.gain
}

// VAvgHeight is the seeded baseline peak-to-peak height.
func (a *AGC) VAvgHeight() float64 { return a.vAvgHeight }

// BlockMinMax returns, and resets, the per-block gain extremes (used to
// populate BlockResult.AlltrkMinAGCGain/AlltrkMaxAGCGain).
func (a *AGC) BlockMinMax() (min, max float64) {
	min, max = a.blockMinGain, a.blockMaxGain
	a.blockMinGain, a.blockMaxGain = AGCMaxValue, 0
	return
}
