package readtape

import (
	"context"

	"github.com/charmbracelet/log"
)

// DecoderContext wires a Sample Source through the Permuter, per-track
// edge detectors, and one encoding state machine, producing BlockResults
// one block at a time. It is the "orchestrator" design note of §9.
type DecoderContext struct {
	cfg    *Config
	src    SampleSource
	mode   Mode
	ntrks  int
	dt     float64
	log    *log.Logger

	permuter *Permuter
	tracks   []*TrackState // persistent across retries only for Whirlwind

	useZeroCross bool

	// ww is long-lived for the whole file when mode == ModeWhirlwind:
	// its peak, polarity, and block-mark state must never be
	// reinitialised between retries or block boundaries (§9).
	ww *WhirlwindState
}

// NewDecoderContext builds a context over an already-opened sample
// source and validated configuration.
func NewDecoderContext(cfg *Config, src SampleSource, mode Mode) *DecoderContext {
	ntrks := cfg.NTracks
	if mode == ModeWhirlwind {
		ntrks = wwTrackCount
	}
	dc := &DecoderContext{
		cfg:          cfg,
		src:          src,
		mode:         mode,
		ntrks:        ntrks,
		dt:           src.SampleDeltaT(),
		log:          Logger.With("mode", mode.String()),
		useZeroCross: cfg.FindZeros,
	}
	dc.tracks = make([]*TrackState, ntrks)
	for i := range dc.tracks {
		dc.tracks[i] = &TrackState{Index: i}
	}
	dc.permuter = NewPermuter(cfg, dc.dt, ntrks, cfg.Skew)
	if mode == ModeWhirlwind {
		ps := &cfg.Parmsets[0]
		dc.ww = NewWhirlwindState(ps, cfg.BPI, cfg.IPS, dc.tracks, cfg.FluxDirection, !cfg.ReverseTape)
	}
	return dc
}

// RunPrePasses executes the density auto-detect and deskew auto-detect
// pre-passes (§4.9) over the source, ahead of the main per-block retry
// loop, then rewinds the source back to wherever it started. cfg.BPI
// == 0 triggers the density pass (it resolves cfg.BPI and fails fatally
// if no standard density is within tolerance, per §7); cfg.Deskew ==
// DeskewAuto triggers the deskew pass (it resolves cfg.Skew and applies
// it to dc.permuter). Either, both, or neither can fire depending on
// cfg; a config needing neither returns immediately without touching
// the source.
func (dc *DecoderContext) RunPrePasses(ctx context.Context) error {
	if dc.cfg.BPI != 0 && dc.cfg.Deskew != DeskewAuto {
		return nil
	}

	start := dc.src.Position()
	defer func() { _ = dc.src.Seek(start) }()

	if dc.cfg.BPI == 0 {
		bpi, err := dc.runDensityPrePass(ctx)
		if err != nil {
			return err
		}
		dc.log.Info("density pre-pass", "bpi", bpi)
		dc.cfg.BPI = bpi
		// The Permuter's differentiator scaling depends on bpi, which
		// was unknown (0) when NewDecoderContext first built it.
		dc.permuter = NewPermuter(dc.cfg, dc.dt, dc.ntrks, dc.cfg.Skew)
		if err := dc.src.Seek(start); err != nil {
			return err
		}
	}

	if dc.cfg.Deskew == DeskewAuto {
		skew, err := dc.runDeskewPrePass(ctx)
		if err != nil {
			return err
		}
		dc.cfg.Skew = skew
		dc.permuter.SetSkew(skew)
	}
	return nil
}

// prePassTracks builds a throwaway set of TrackState/PeakDetector pairs
// and a fresh Permuter for a pre-pass: pre-passes must never disturb
// dc.tracks or dc.permuter's skew buffers, since those belong to the
// main decode loop that runs after the pre-pass rewinds the source.
func (dc *DecoderContext) prePassTracks() ([]*TrackState, []*PeakDetector, *Permuter, int) {
	ps := &dc.cfg.Parmsets[0]
	windowLen := computeWindowSize(ps, dc.cfg.BPI, dc.cfg.IPS, dc.dt)
	tracks := make([]*TrackState, dc.ntrks)
	peaks := make([]*PeakDetector, dc.ntrks)
	for i := range tracks {
		tracks[i] = &TrackState{Index: i}
		tracks[i].ResetForBlock()
		tracks[i].winLen = windowLen
		peaks[i] = NewPeakDetector(ps, windowLen)
	}
	permuter := NewPermuter(dc.cfg, dc.dt, dc.ntrks, nil)
	return tracks, peaks, permuter, windowLen
}

// runDensityPrePass buckets inter-peak deltas across all tracks into a
// DensityEstimator until it has classified enough transitions, then
// snaps the result to a standard bpi.
func (dc *DecoderContext) runDensityPrePass(ctx context.Context) (float64, error) {
	tracks, peaks, permuter, _ := dc.prePassTracks()
	dens := NewDensityEstimator(dc.mode, dc.cfg.IPS)
	lastPeak := make([]float64, dc.ntrks)
	havePeak := make([]bool, dc.ntrks)

	for !dens.Done() {
		s, ok, err := dc.src.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		vs := permuter.Process(s, tracks)
		for k, v := range vs {
			k := k
			onEdge := func(t float64) {
				if havePeak[k] {
					dens.Observe(t - lastPeak[k])
				}
				lastPeak[k] = t
				havePeak[k] = true
			}
			peaks[k].Process(tracks[k], v, s.T, onEdge, onEdge)
		}
	}

	bpi, ok := dens.Estimate()
	if !ok {
		return 0, &FatalError{Reason: "density estimator could not snap to a standard bpi"}
	}
	return bpi, nil
}

// runDeskewPrePass tracks, for every non-reference track, each peak's
// offset (in bit periods) from the nearest peak on track 0, feeding it
// into a DeskewPass until it has enough observations, then converts
// the per-track mean offsets into integer-sample skew delays.
func (dc *DecoderContext) runDeskewPrePass(ctx context.Context) ([]int, error) {
	tracks, peaks, permuter, windowLen := dc.prePassTracks()
	ps := &dc.cfg.Parmsets[0]
	clk := make([]*ClkAvg, dc.ntrks)
	lastPeak := make([]float64, dc.ntrks)
	havePeak := make([]bool, dc.ntrks)
	for i := range clk {
		clk[i] = NewClkAvg(ps, dc.cfg.BPI, dc.cfg.IPS)
	}
	deskew := NewDeskewPass(dc.ntrks)

	samplesPerBit := 0.0
	if dc.cfg.BPI > 0 && dc.cfg.IPS > 0 && dc.dt > 0 {
		samplesPerBit = 1.0 / (dc.cfg.BPI * dc.cfg.IPS * dc.dt)
	}
	blockSamples := windowLen * 64
	if blockSamples <= 0 {
		blockSamples = 512
	}
	samplesThisBlock := 0

	refPeak, haveRef := 0.0, false
	for !deskew.Sufficient() {
		s, ok, err := dc.src.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		vs := permuter.Process(s, tracks)
		for k, v := range vs {
			k := k
			onEdge := func(t float64) {
				if k == 0 {
					refPeak, haveRef = t, true
				} else if haveRef {
					period := clk[k].Avg()
					if period <= 0 && dc.cfg.BPI > 0 && dc.cfg.IPS > 0 {
						period = 1.0 / (dc.cfg.BPI * dc.cfg.IPS)
					}
					if period > 0 {
						deskew.Observe(k, (t-refPeak)/period)
					}
				}
				if havePeak[k] {
					clk[k].Adjust(t - lastPeak[k])
				}
				lastPeak[k] = t
				havePeak[k] = true
			}
			peaks[k].Process(tracks[k], v, s.T, onEdge, onEdge)
		}
		samplesThisBlock++
		if samplesThisBlock >= blockSamples {
			deskew.BlockDone()
			samplesThisBlock = 0
		}
	}

	skew, worstPct, worstStddevPct := deskew.Result(samplesPerBit)
	for k, d := range skew {
		dc.log.Debug("deskew pre-pass", "track", k, "skew_samples", d)
	}
	if worstPct >= DeskewWarnPct {
		dc.log.Warn("deskew worst offset is large", "pct_of_bit", worstPct)
	}
	if worstStddevPct >= DeskewWarnStddevPct {
		dc.log.Warn("deskew offsets are noisy", "stddev_pct_of_bit", worstStddevPct)
	}
	return skew, nil
}

func (dc *DecoderContext) resetTracks(ps *Parmset) {
	if dc.mode == ModeWhirlwind {
		// Whirlwind's peak/polarity history must survive both retries
		// and block boundaries (§9); only the parmset tunables change.
		dc.ww.SetParmset(ps)
		return
	}
	for i, tr := range dc.tracks {
		*tr = TrackState{Index: i}
		tr.ResetForBlock()
		if !dc.useZeroCross {
			tr.AGC = NewAGC(ps)
		}
		if dc.mode == ModePE || dc.mode == ModeGCR {
			tr.Clk = NewClkAvg(ps, dc.cfg.BPI, dc.cfg.IPS)
		}
	}
}

// runOnce seeks to pos, replays the sample source under parmset ps,
// and runs it to end-of-block (or end-of-stream), returning the
// BlockResult and the source position immediately after the block.
func (dc *DecoderContext) runOnce(ctx context.Context, pos Position, ps *Parmset) (BlockResult, Position, error) {
	if err := dc.src.Seek(pos); err != nil {
		return BlockResult{}, pos, err
	}
	dc.resetTracks(ps)
	dc.permuter.SetSkew(dc.cfg.Skew)

	windowLen := computeWindowSize(ps, dc.cfg.BPI, dc.cfg.IPS, dc.dt)
	peaks := make([]*PeakDetector, dc.ntrks)
	zc := make([]*ZeroCrossDetector, dc.ntrks)
	for i, tr := range dc.tracks {
		if dc.useZeroCross {
			zc[i] = NewZeroCrossDetector(dc.cfg.Differentiate)
		} else {
			tr.winLen = windowLen
			peaks[i] = NewPeakDetector(ps, windowLen)
		}
	}

	global := newModeSession(dc, ps)

	bitPeriodHint := 0.0
	if dc.cfg.BPI > 0 && dc.cfg.IPS > 0 {
		bitPeriodHint = 1.0 / (dc.cfg.BPI * dc.cfg.IPS)
	}

	var tFirst float64
	haveFirst := false

	for {
		s, ok, err := dc.src.Next(ctx)
		if err != nil {
			return BlockResult{}, dc.src.Position(), err
		}
		if !ok {
			global.forceEnd()
			break
		}
		if !haveFirst {
			tFirst, haveFirst = s.T, true
		}
		vs := dc.permuter.Process(s, dc.tracks)
		for k, v := range vs {
			k := k
			onUp := func(t float64) { global.onEdge(k, t, DirUp) }
			onDown := func(t float64) { global.onEdge(k, t, DirDown) }
			if dc.useZeroCross {
				period := bitPeriodHint
				if dc.tracks[k].Clk != nil && dc.tracks[k].Clk.Avg() > 0 {
					period = dc.tracks[k].Clk.Avg()
				}
				// The zero-crossing detector carries no TrackState of its
				// own; record peak history here so the NRZI zero check
				// still sees TLastPeak/TPrevLastPeak.
				zc[k].Process(v, s.T, period,
					func(t float64) { dc.tracks[k].recordPeak(t); onUp(t) },
					func(t float64) { dc.tracks[k].recordPeak(t); onDown(t) })
			} else {
				peaks[k].Process(dc.tracks[k], v, s.T, onUp, onDown)
			}
		}
		global.tick(s.T)
		if global.done() {
			break
		}
	}
	result := global.finish()
	if result.TBlockStart == 0 {
		result.TBlockStart = tFirst
	}
	return result, dc.src.Position(), nil
}
