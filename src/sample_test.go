package readtape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rampSource(n int, dt float64) *fakeSource {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{T: float64(i) * dt, V: []float32{float32(i)}}
	}
	return &fakeSource{samples: samples, dt: dt, nheads: 1}
}

func drainTimes(t *testing.T, src SampleSource) []float64 {
	t.Helper()
	var times []float64
	for {
		s, ok, err := src.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return times
		}
		times = append(times, s.T)
	}
}

func TestNewWindowedSourcePassthroughWhenUnconfigured(t *testing.T) {
	inner := rampSource(3, 1.0)
	src := NewWindowedSource(inner, &Config{Subsample: 1})
	assert.Same(t, SampleSource(inner), src)
}

func TestWindowedSourceSkipSamples(t *testing.T) {
	src := NewWindowedSource(rampSource(5, 1.0), &Config{Subsample: 1, SkipSamples: 2})
	assert.Equal(t, []float64{2, 3, 4}, drainTimes(t, src))
}

func TestWindowedSourceSubsampleKeepsEveryNth(t *testing.T) {
	src := NewWindowedSource(rampSource(6, 1.0), &Config{Subsample: 2})
	assert.Equal(t, []float64{1, 3, 5}, drainTimes(t, src))
	assert.Equal(t, 2.0, src.SampleDeltaT())
}

func TestWindowedSourceTimeWindow(t *testing.T) {
	src := NewWindowedSource(rampSource(10, 1.0), &Config{Subsample: 1, StartTime: 3, EndTime: 6})
	assert.Equal(t, []float64{3, 4, 5, 6}, drainTimes(t, src))
}

func TestWindowedSourceStopaft(t *testing.T) {
	src := NewWindowedSource(rampSource(10, 1.0), &Config{Subsample: 1, Stopaft: 4})
	assert.Equal(t, []float64{0, 1, 2, 3}, drainTimes(t, src))
}
