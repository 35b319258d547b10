package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensityEstimatorSnapsToStandardBPI(t *testing.T) {
	d := NewDensityEstimator(ModeNRZI, 50.0) // 50 ips
	// At 1600 bpi and 50 ips, the nominal bit period is 1/(1600*50)=12.5us.
	delta := 1.0 / (1600.0 * 50.0)
	for i := 0; i < EstdenCountNeeded; i++ {
		d.Observe(delta)
	}
	require.True(t, d.Done())
	bpi, ok := d.Estimate()
	require.True(t, ok)
	assert.Equal(t, 1600.0, bpi)
}

func TestDensityEstimatorPEHalvesCandidate(t *testing.T) {
	// PE's dominant short interval is a half-bit-cell transition, so the
	// estimator must double it back up before snapping.
	d := NewDensityEstimator(ModePE, 50.0)
	fullBitPeriod := 1.0 / (1600.0 * 50.0)
	halfPeriod := fullBitPeriod / 2
	for i := 0; i < EstdenCountNeeded; i++ {
		d.Observe(halfPeriod)
	}
	bpi, ok := d.Estimate()
	require.True(t, ok)
	assert.Equal(t, 1600.0, bpi)
}

func TestDensityEstimatorNoDataNotOK(t *testing.T) {
	d := NewDensityEstimator(ModeNRZI, 50.0)
	_, ok := d.Estimate()
	assert.False(t, ok)
}

func TestDensityEstimatorOffDensityFailsTolerance(t *testing.T) {
	d := NewDensityEstimator(ModeNRZI, 50.0)
	// A delta implying roughly 1000bpi, halfway between 800 and 1600,
	// should fail to snap within EstdenSnapTolerance of either.
	delta := 1.0 / (1000.0 * 50.0)
	for i := 0; i < EstdenCountNeeded; i++ {
		d.Observe(delta)
	}
	_, ok := d.Estimate()
	assert.False(t, ok)
}

func TestDeskewPassComputesRelativeSkew(t *testing.T) {
	dp := NewDeskewPass(3)
	// Track 0 leads by 0.0 bits, track 1 lags by 0.1 bits, track 2 lags by 0.2 bits.
	for i := 0; i < DeskewTransitionGoal; i++ {
		dp.Observe(0, 0.0)
		dp.Observe(1, 0.1)
		dp.Observe(2, 0.2)
	}
	assert.True(t, dp.Sufficient())
	skew, worstPct, _ := dp.Result(1000.0) // 1000 samples per bit
	// Track 2 is the most-delayed (latest), so it gets zero skew; track 0
	// needs the most compensating delay.
	assert.Equal(t, 0, skew[2])
	assert.Greater(t, skew[0], skew[1])
	assert.InDelta(t, 0.2, worstPct, 1e-9)
}

func TestDeskewPassSufficientAfterMaxBlocks(t *testing.T) {
	dp := NewDeskewPass(2)
	for i := 0; i < DeskewMaxBlocks; i++ {
		dp.BlockDone()
	}
	assert.True(t, dp.Sufficient())
}
