package readtape

import "context"

// Sample is one timestamped multi-track voltage frame (§3).
//
// Timestamps are strictly non-decreasing within a file, with constant
// delta-t. Voltages are in volts, one per physical head in head order
// (before the Head->Track Permuter relabels them).
type Sample struct {
	T float64
	V []float32
}

// Position is an opaque, restartable cursor into a SampleSource. Sources
// must make Position values cheap to copy and cheap to Seek back to,
// since the Retry Driver rewinds to a saved Position for every parmset
// it tries on a block (§4.10).
type Position = int64

// SampleSource is a lazy, monotone-in-time, position-addressable cursor
// over multi-track voltage frames (§4.1). The core never performs
// blocking I/O itself; it only calls Next/Position/Seek on a source
// supplied by the caller.
type SampleSource interface {
	// Next yields the next sample, or ok=false at end of stream. End of
	// stream is treated by the core as an implicit end-of-block on
	// whatever decode is in progress (§7, partial-failure semantics).
	Next(ctx context.Context) (s Sample, ok bool, err error)

	// Position returns a cursor that can later be passed to Seek to
	// replay the stream from exactly this point.
	Position() Position

	// Seek rewinds (or, in principle, advances) the cursor to a
	// previously observed Position. It must be exact.
	Seek(p Position) error

	// SampleDeltaT is the constant inter-sample time, in seconds.
	SampleDeltaT() float64

	// NumHeads is the number of voltage columns in each Sample, before
	// track permutation.
	NumHeads() int
}

// WindowedSource applies the source-windowing configuration (§6.4):
// skip_samples and start_time are consumed before the first yielded
// frame, subsample keeps every n-th frame thereafter, and end_time /
// stopaft turn the remainder of the stream into end-of-stream. Position
// and Seek delegate to the underlying source, so retry rewinds replay
// the same windowed view.
type WindowedSource struct {
	src SampleSource

	subsample   int
	skipSamples int
	stopaft     int64
	startTime   float64
	endTime     float64

	skipped bool
	yielded int64
	phase   int
}

// NewWindowedSource wraps src with cfg's windowing fields. A config with
// no windowing set returns src unchanged.
func NewWindowedSource(src SampleSource, cfg *Config) SampleSource {
	sub := cfg.Subsample
	if sub <= 0 {
		sub = 1
	}
	if sub == 1 && cfg.SkipSamples == 0 && cfg.Stopaft == 0 && cfg.StartTime == 0 && cfg.EndTime == 0 {
		return src
	}
	return &WindowedSource{
		src:         src,
		subsample:   sub,
		skipSamples: cfg.SkipSamples,
		stopaft:     cfg.Stopaft,
		startTime:   cfg.StartTime,
		endTime:     cfg.EndTime,
	}
}

func (w *WindowedSource) Next(ctx context.Context) (Sample, bool, error) {
	if w.stopaft > 0 && w.yielded >= w.stopaft {
		return Sample{}, false, nil
	}
	if !w.skipped {
		for i := 0; i < w.skipSamples; i++ {
			if _, ok, err := w.src.Next(ctx); err != nil || !ok {
				return Sample{}, false, err
			}
		}
		w.skipped = true
	}
	for {
		s, ok, err := w.src.Next(ctx)
		if err != nil || !ok {
			return Sample{}, false, err
		}
		if s.T < w.startTime {
			continue
		}
		if w.endTime != 0 && s.T > w.endTime {
			return Sample{}, false, nil
		}
		w.phase++
		if w.phase < w.subsample {
			continue
		}
		w.phase = 0
		w.yielded++
		return s, true, nil
	}
}

func (w *WindowedSource) Position() Position    { return w.src.Position() }
func (w *WindowedSource) Seek(p Position) error { return w.src.Seek(p) }
func (w *WindowedSource) SampleDeltaT() float64 {
	return w.src.SampleDeltaT() * float64(w.subsample)
}
func (w *WindowedSource) NumHeads() int { return w.src.NumHeads() }
