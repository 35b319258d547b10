package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClkAvgConstantStrategyNeverAdjusts(t *testing.T) {
	ps := &Parmset{}
	c := NewClkAvg(ps, 1600, 1.0)
	want := 1.0 / 1600
	assert.InDelta(t, want, c.Avg(), 1e-12)
	c.Adjust(0.5) // should be a no-op
	assert.InDelta(t, want, c.Avg(), 1e-12)
}

func TestClkAvgWindowedStrategyAverages(t *testing.T) {
	ps := &Parmset{ClkWindow: 3}
	c := NewClkAvg(ps, 0, 0)
	c.Adjust(1.0)
	c.Adjust(2.0)
	c.Adjust(3.0)
	assert.InDelta(t, 2.0, c.Avg(), 1e-12)
	// A fourth sample evicts the oldest (1.0), leaving (2,3,4)/3.
	c.Adjust(4.0)
	assert.InDelta(t, 3.0, c.Avg(), 1e-12)
}

func TestClkAvgWindowClampedToMax(t *testing.T) {
	ps := &Parmset{ClkWindow: ClkAvgWindowMax + 10}
	c := NewClkAvg(ps, 0, 0)
	assert.Equal(t, ClkAvgWindowMax, c.windowLen)
}

func TestClkAvgExponentialStrategy(t *testing.T) {
	ps := &Parmset{ClkAlpha: 0.5}
	c := NewClkAvg(ps, 0, 0)
	c.Adjust(2.0)
	assert.InDelta(t, 2.0, c.Avg(), 1e-12)
	c.Adjust(4.0)
	// avg = 0.5*4 + 0.5*2 = 3
	assert.InDelta(t, 3.0, c.Avg(), 1e-12)
}

func TestClkAvgForceOverridesHistory(t *testing.T) {
	ps := &Parmset{ClkWindow: 4}
	c := NewClkAvg(ps, 0, 0)
	c.Adjust(1.0)
	c.Adjust(1.0)
	c.Force(9.0)
	assert.InDelta(t, 9.0, c.Avg(), 1e-12)
	c.Adjust(1.0)
	// After Force, the window was cleared, so this is the only sample.
	assert.InDelta(t, 1.0, c.Avg(), 1e-12)
}

func TestAGCUnseededGainIsOne(t *testing.T) {
	ps := &Parmset{AGCWindow: 3}
	a := NewAGC(ps)
	assert.Equal(t, 1.0, a.Gain())
	a.Update(10.0) // ignored before seeding
	assert.Equal(t, 1.0, a.Gain())
}

func TestAGCSeedingAndWindowedGain(t *testing.T) {
	ps := &Parmset{AGCWindow: 2}
	a := NewAGC(ps)
	for i := AGCStartBase; i <= AGCEndBase; i++ {
		a.AccumulateBaseline(4.0)
	}
	assert.True(t, a.Seeded())
	assert.InDelta(t, 4.0, a.VAvgHeight(), 1e-9)

	a.Update(2.0) // window: [2.0], min=2.0, gain = 4/2 = 2
	assert.InDelta(t, 2.0, a.Gain(), 1e-9)
	a.Update(4.0) // window: [2.0, 4.0], min=2.0, gain stays 2
	assert.InDelta(t, 2.0, a.Gain(), 1e-9)
}

func TestAGCGainClampedToMax(t *testing.T) {
	ps := &Parmset{AGCAlpha: 1.0}
	a := NewAGC(ps)
	for i := AGCStartBase; i <= AGCEndBase; i++ {
		a.AccumulateBaseline(100.0)
	}
	a.Update(0.0001) // would want a huge gain; must clamp
	assert.LessOrEqual(t, a.Gain(), float64(AGCMaxValue))
}

func TestAGCBlockMinMaxResets(t *testing.T) {
	ps := &Parmset{AGCWindow: 2}
	a := NewAGC(ps)
	for i := AGCStartBase; i <= AGCEndBase; i++ {
		a.AccumulateBaseline(4.0)
	}
	a.Update(2.0)
	a.Update(8.0)
	lo, hi := a.BlockMinMax()
	assert.True(t, lo <= hi)
	lo2, hi2 := a.BlockMinMax()
	assert.Equal(t, float64(AGCMaxValue), lo2)
	assert.Equal(t, 0.0, hi2)
}
