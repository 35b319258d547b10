package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSkewBufferZeroDelayPassesThrough(t *testing.T) {
	b := newSkewBuffer(0)
	assert.Equal(t, float32(5), b.push(5))
	assert.Equal(t, float32(9), b.push(9))
}

func TestSkewBufferDelaysByN(t *testing.T) {
	b := newSkewBuffer(3)
	// Before the buffer fills, samples pass straight through.
	assert.Equal(t, float32(1), b.push(1))
	assert.Equal(t, float32(2), b.push(2))
	assert.Equal(t, float32(3), b.push(3))
	// Once full, each push returns the sample from 3 pushes ago.
	assert.Equal(t, float32(1), b.push(4))
	assert.Equal(t, float32(2), b.push(5))
}

func TestSkewBufferDelayPreservesInputSequence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		delay := rapid.IntRange(0, 10).Draw(rt, "delay")
		n := rapid.IntRange(delay, delay+30).Draw(rt, "n")
		in := make([]float32, n)
		for i := range in {
			in[i] = float32(rapid.IntRange(-1000, 1000).Draw(rt, "v"))
		}
		b := newSkewBuffer(delay)
		var out []float32
		for _, v := range in {
			out = append(out, b.push(v))
		}
		// Every output beyond the initial fill equals the input delay
		// samples earlier; the first `delay` outputs are pass-through.
		for i := delay; i < n; i++ {
			assert.Equal(rt, in[i-delay], out[i])
		}
	})
}

func TestPermuterProcessRemapsAndDrops(t *testing.T) {
	cfg := &Config{HeadToTrack: []int{2, -1, 0}}
	tracks := []*TrackState{{}, {}, {}}
	p := NewPermuter(cfg, 0, 3, nil)

	s := Sample{V: []float32{1.0, 2.0, 3.0}}
	out := p.Process(s, tracks)

	// head0 -> track2, head1 dropped (-1), head2 -> track0.
	assert.Equal(t, float32(3.0), out[0])
	assert.Equal(t, float32(0), out[1])
	assert.Equal(t, float32(1.0), out[2])
}

func TestPermuterInvertFlipsPolarity(t *testing.T) {
	cfg := &Config{HeadToTrack: []int{0}, Invert: true}
	tracks := []*TrackState{{}}
	p := NewPermuter(cfg, 0, 1, nil)

	out := p.Process(Sample{V: []float32{5.0}}, tracks)
	assert.Equal(t, float32(-5.0), out[0])
}

func TestPermuterDifferentiateDeadband(t *testing.T) {
	cfg := &Config{HeadToTrack: []int{0}, Differentiate: true, BPI: 1600, IPS: 50}
	tracks := []*TrackState{{}}
	p := NewPermuter(cfg, 1e-6, 1, nil)

	out1 := p.Process(Sample{V: []float32{0.01}}, tracks)
	// First sample: delta = 0.01 - 0(VLastRaw) = 0.01, below the 0.05
	// dead-band, so the differentiated output is exactly zero.
	assert.Equal(t, float32(0), out1[0])
}
