package readtape

import "context"

// RetryDriver owns the outer per-block loop of §4.10: for each candidate
// block it tries successive parmsets from the catalog, scoring each
// attempt, and commits the best one — replaying it if it wasn't the
// last parmset executed, so the emitted bytes reflect the chosen
// decoding rather than whatever ran last.
type RetryDriver struct {
	dc  *DecoderContext
	cfg *Config
}

func NewRetryDriver(cfg *Config, dc *DecoderContext) *RetryDriver {
	return &RetryDriver{dc: dc, cfg: cfg}
}

// DecodeNextBlock runs one block-decode cycle and reports whether the
// stream is exhausted (no progress was made, i.e. end of source).
func (rd *RetryDriver) DecodeNextBlock(ctx context.Context) (BlockResult, bool, error) {
	startPos := rd.dc.src.Position()

	// Whirlwind blocks are never retried: per-block reinitialisation of
	// peak/polarity state is forbidden (§9), and a retry would replay
	// peaks into the persistent WhirlwindState. A config with
	// multiple_tries off likewise gets exactly one attempt.
	if rd.dc.mode == ModeWhirlwind || !rd.cfg.MultipleTries {
		ps := &rd.cfg.Parmsets[0]
		result, endPos, err := rd.dc.runOnce(ctx, startPos, ps)
		if err != nil {
			return BlockResult{}, false, err
		}
		ps.Tried++
		ps.Chosen++
		rd.logAttempt(0, result)
		if err := rd.dc.src.Seek(endPos); err != nil {
			return BlockResult{}, false, err
		}
		return result, endPos == startPos, nil
	}

	results := make([]BlockResult, 0, len(rd.cfg.Parmsets))
	var endPositions []Position

	for idx := range rd.cfg.Parmsets {
		ps := &rd.cfg.Parmsets[idx]
		result, endPos, err := rd.dc.runOnce(ctx, startPos, ps)
		if err != nil {
			return BlockResult{}, false, err
		}
		ps.Tried++
		rd.logAttempt(idx, result)
		results = append(results, result)
		endPositions = append(endPositions, endPos)

		if isPerfect(result) || result.Kind == KindTapemark {
			ps.Chosen++
			if err := rd.dc.src.Seek(endPos); err != nil {
				return BlockResult{}, false, err
			}
			return result, endPos == startPos, nil
		}
		if result.Kind == KindNoise && rd.cfg.SkipNoise {
			ps.Chosen++
			if err := rd.dc.src.Seek(endPos); err != nil {
				return BlockResult{}, false, err
			}
			return result, endPos == startPos, nil
		}
	}

	if len(results) == 0 {
		return BlockResult{Kind: KindNone}, true, nil
	}

	best := pickBest(results)
	ps := &rd.cfg.Parmsets[best]
	ps.Chosen++

	if best != len(results)-1 {
		rd.dc.log.Debug("replaying chosen parmset", "parmset_idx", best, "t_blockstart", results[best].TBlockStart)
		result, endPos, err := rd.dc.runOnce(ctx, startPos, ps)
		if err != nil {
			return BlockResult{}, false, err
		}
		if err := rd.dc.src.Seek(endPos); err != nil {
			return BlockResult{}, false, err
		}
		return result, endPos == startPos, nil
	}

	if err := rd.dc.src.Seek(endPositions[best]); err != nil {
		return BlockResult{}, false, err
	}
	return results[best], endPositions[best] == startPos, nil
}

// logAttempt records one parmset's run against a block with the fields
// an operator needs to follow the retry loop.
func (rd *RetryDriver) logAttempt(idx int, r BlockResult) {
	rd.dc.log.Debug("parmset attempt",
		"parmset_idx", idx,
		"t_blockstart", r.TBlockStart,
		"kind", r.Kind.String(),
		"errors", r.ErrCount,
		"warnings", r.WarnCount)
}

func isPerfect(r BlockResult) bool {
	return r.Kind == KindBlock && r.ErrCount == 0 && r.WarnCount == 0
}

// pickBest implements the parmset preference order of §4.10, ties
// broken by catalog order (first match wins, since we scan in order).
func pickBest(results []BlockResult) int {
	for i, r := range results {
		if r.Kind == KindBlock && r.ErrCount == 0 {
			best := i
			for j := i + 1; j < len(results); j++ {
				if results[j].Kind == KindBlock && results[j].ErrCount == 0 && results[j].WarnCount < results[best].WarnCount {
					best = j
				}
			}
			return best
		}
	}
	for i, r := range results {
		if r.Kind == KindBlock {
			best := i
			for j := i + 1; j < len(results); j++ {
				if results[j].Kind == KindBlock && results[j].ErrCount < results[best].ErrCount {
					best = j
				}
			}
			return best
		}
	}
	for i, r := range results {
		if r.Kind == KindBadBlock {
			best := i
			for j := i + 1; j < len(results); j++ {
				if results[j].Kind == KindBadBlock && results[j].TrackMismatch < results[best].TrackMismatch {
					best = j
				}
			}
			return best
		}
	}
	for i, r := range results {
		if r.Kind == KindNoise {
			return i
		}
	}
	return 0
}
