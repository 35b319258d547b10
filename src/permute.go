package readtape

// skewBuffer is a per-track circular delay line implementing the skew
// compensation of §4.2: before it is full, samples pass straight
// through (so the first skew[track] samples of a file are approximate).
type skewBuffer struct {
	buf    []float32
	pos    int
	filled int
}

func newSkewBuffer(delay int) skewBuffer {
	if delay <= 0 {
		return skewBuffer{}
	}
	return skewBuffer{buf: make([]float32, delay)}
}

func (b *skewBuffer) push(v float32) float32 {
	if len(b.buf) == 0 {
		return v
	}
	if b.filled < len(b.buf) {
		b.filled++
		out := v
		b.buf[b.pos] = v
		b.pos = (b.pos + 1) % len(b.buf)
		return out
	}
	out := b.buf[b.pos]
	b.buf[b.pos] = v
	b.pos = (b.pos + 1) % len(b.buf)
	return out
}

// Permuter re-labels incoming head columns into canonical track order,
// applies per-track skew delay, optional polarity inversion, and the
// optional first-difference filter (§4.2).
type Permuter struct {
	headToTrack   []int
	invert        bool
	differentiate bool
	samplesPerBit float64

	skew []skewBuffer
}

// NewPermuter builds a Permuter from the configuration and the sample
// source's fixed inter-sample time. ntracks is cfg.NTracks; skew, when
// non-nil, gives each track's delay in samples (cfg.Skew, or the output
// of a deskew pre-pass).
func NewPermuter(cfg *Config, dt float64, ntracks int, skew []int) *Permuter {
	p := &Permuter{
		headToTrack:   cfg.HeadToTrack,
		invert:        cfg.Invert,
		differentiate: cfg.Differentiate,
		skew:          make([]skewBuffer, ntracks),
	}
	if cfg.BPI > 0 && cfg.IPS > 0 && dt > 0 {
		p.samplesPerBit = 1.0 / (cfg.BPI * cfg.IPS * dt)
	}
	for i := 0; i < ntracks; i++ {
		d := 0
		if i < len(skew) {
			d = skew[i]
		}
		p.skew[i] = newSkewBuffer(d)
	}
	return p
}

// SetSkew replaces the per-track skew delays (used after a deskew
// pre-pass computes them); any in-flight delay buffer content is
// discarded, matching a fresh-file restart of the skew compensation.
func (p *Permuter) SetSkew(skew []int) {
	for i := range p.skew {
		d := 0
		if i < len(skew) {
			d = skew[i]
		}
		p.skew[i] = newSkewBuffer(d)
	}
}

// Process converts one incoming Sample into preprocessed per-track
// voltages, in canonical track order, updating each TrackState's
// VLastRaw as required by the differentiator. Head columns mapped to a
// negative track index (Whirlwind's unused heads) are discarded.
func (p *Permuter) Process(s Sample, tracks []*TrackState) []float32 {
	out := make([]float32, len(tracks))
	for head, v := range s.V {
		if head >= len(p.headToTrack) {
			continue
		}
		trk := p.headToTrack[head]
		if trk < 0 || trk >= len(tracks) {
			continue
		}
		sv := p.skew[trk].push(v)
		if p.invert {
			sv = -sv
		}
		if p.differentiate {
			delta := sv - tracks[trk].VLastRaw
			if absF32(delta) < 0.05 {
				delta = 0
			}
			tracks[trk].VLastRaw = sv
			sv = delta * float32(0.4*p.samplesPerBit)
		} else {
			tracks[trk].VLastRaw = sv
		}
		out[trk] = sv
	}
	return out
}
