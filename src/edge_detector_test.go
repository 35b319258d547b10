package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestComputeWindowSizeClampsToRange(t *testing.T) {
	ps := &Parmset{PkwwBitfrac: 0.7}
	assert.Equal(t, 8, computeWindowSize(ps, 0, 0, 0)) // density unknown
	w := computeWindowSize(ps, 1600, 50, 1e-7)
	assert.GreaterOrEqual(t, w, 8)
	assert.LessOrEqual(t, w, PeakWindowMax)
}

func TestComputeWindowSizeNeverDegenerate(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bpi := rapid.Float64Range(1, 20000).Draw(rt, "bpi")
		ips := rapid.Float64Range(1, 200).Draw(rt, "ips")
		dt := rapid.Float64Range(1e-9, 1e-5).Draw(rt, "dt")
		ps := &Parmset{PkwwBitfrac: rapid.Float64Range(0.1, 1.0).Draw(rt, "bitfrac")}
		w := computeWindowSize(ps, bpi, ips, dt)
		assert.GreaterOrEqual(rt, w, 8)
		assert.LessOrEqual(rt, w, PeakWindowMax)
	})
}

// seedAGC brings an AGC to the seeded state with the given baseline
// peak-to-peak height and default (1.0) gain, without exercising Update.
func seedAGC(ps *Parmset, vAvgHeight float64) *AGC {
	a := NewAGC(ps)
	for i := AGCStartBase; i <= AGCEndBase; i++ {
		a.AccumulateBaseline(vAvgHeight)
	}
	return a
}

func TestPeakDetectorDeclaresTopPeak(t *testing.T) {
	ps := &Parmset{PkwwRise: 0.5, MinPeak: 0}
	tr := &TrackState{winLen: 8}
	tr.AGC = seedAGC(ps, 2.0) // r = PkwwRise*vAvg/(PKWWPeakHeight*gain) = 0.5

	d := NewPeakDetector(ps, 8)
	values := []float32{0, 0, 0, 0, 1.0, 0, 0, 0}

	var upTimes []float64
	var downTimes []float64
	for i, v := range values {
		tm := float64(i)
		d.Process(tr, v, tm, func(t float64) { upTimes = append(upTimes, t) }, func(t float64) { downTimes = append(downTimes, t) })
	}

	require.Len(t, upTimes, 1)
	assert.Equal(t, 4.0, upTimes[0])
	assert.Empty(t, downTimes)
	assert.Equal(t, 1.0, tr.VLastPeak)
}

func TestPeakDetectorDeclaresBottomPeak(t *testing.T) {
	ps := &Parmset{PkwwRise: 0.5, MinPeak: 0}
	tr := &TrackState{winLen: 8}
	tr.AGC = seedAGC(ps, 2.0)

	d := NewPeakDetector(ps, 8)
	values := []float32{0, 0, 0, 0, -1.0, 0, 0, 0}

	var upTimes, downTimes []float64
	for i, v := range values {
		tm := float64(i)
		d.Process(tr, v, tm, func(t float64) { upTimes = append(upTimes, t) }, func(t float64) { downTimes = append(downTimes, t) })
	}

	require.Len(t, downTimes, 1)
	assert.Equal(t, 4.0, downTimes[0])
	assert.Empty(t, upTimes)
	assert.Equal(t, -1.0, tr.VLastPeak)
}

func TestPeakDetectorCountdownSuppressesImmediateRedeclare(t *testing.T) {
	ps := &Parmset{PkwwRise: 0.5, MinPeak: 0}
	tr := &TrackState{winLen: 8}
	tr.AGC = seedAGC(ps, 2.0)

	d := NewPeakDetector(ps, 8)
	// Two peaks back to back, closer together than the window's cooldown.
	values := []float32{0, 0, 0, 0, 1.0, 0, 0, 0, 0, 1.0, 0, 0}

	var upTimes []float64
	for i, v := range values {
		tm := float64(i)
		d.Process(tr, v, tm, func(t float64) { upTimes = append(upTimes, t) }, func(float64) {})
	}
	// The countdown (= windowLen = 8 samples) keeps the second peak at
	// index 9 from being declared until it has fully scrolled clear.
	assert.Len(t, upTimes, 1)
}

func TestZeroCrossDetectorBasicCrossing(t *testing.T) {
	z := NewZeroCrossDetector(false)
	var ups, downs []float64
	samples := []struct {
		v float32
		t float64
	}{
		{1.0, 0}, {1.0, 1}, {-1.0, 2}, {-1.0, 3},
	}
	for _, s := range samples {
		z.Process(s.v, s.t, 10.0, func(t float64) { ups = append(ups, t) }, func(t float64) { downs = append(downs, t) })
	}
	// A positive swing crossing zero at t=2 is a downward-going edge.
	require.Len(t, downs, 1)
	assert.Equal(t, 2.0, downs[0])
	assert.Empty(t, ups)
}

func TestZeroCrossDetectorIgnoresSmallSwing(t *testing.T) {
	z := NewZeroCrossDetector(false)
	var ups, downs []float64
	samples := []struct {
		v float32
		t float64
	}{
		{0.05, 0}, {0.05, 1}, {-0.05, 2}, {-0.05, 3},
	}
	for _, s := range samples {
		z.Process(s.v, s.t, 10.0, func(t float64) { ups = append(ups, t) }, func(t float64) { downs = append(downs, t) })
	}
	assert.Empty(t, ups)
	assert.Empty(t, downs)
}
