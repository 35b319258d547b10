package readtape

// modeSession adapts the four mode-specific state machines (whose OnEdge
// signatures differ slightly, and whose Whirlwind variant needs
// direction) to one shape the DecoderContext drives uniformly.
type modeSession struct {
	pe *PEState
	nz *NRZIState
	gc *GCRState
	ww *WhirlwindState
}

func newModeSession(dc *DecoderContext, ps *Parmset) *modeSession {
	m := &modeSession{}
	switch dc.mode {
	case ModePE:
		m.pe = NewPEState(ps, dc.cfg.BPI, dc.cfg.IPS, dc.tracks, dc.cfg.FakeBits)
	case ModeNRZI:
		clk := NewClkAvg(ps, dc.cfg.BPI, dc.cfg.IPS)
		m.nz = NewNRZIState(ps, dc.cfg.BPI, dc.cfg.IPS, dc.tracks, clk, dc.cfg.Parity, dc.cfg.CorrectErrors)
		m.nz.revParityThreshold = dc.cfg.RevParityThreshold
	case ModeGCR:
		m.gc = NewGCRState(ps, dc.cfg.BPI, dc.cfg.IPS, dc.tracks, dc.cfg.CorrectErrors)
	case ModeWhirlwind:
		m.ww = dc.ww // long-lived; resetTracks already called SetParmset
	}
	return m
}

func (m *modeSession) onEdge(k int, t float64, dir Direction) {
	switch {
	case m.pe != nil:
		m.pe.OnEdge(k, t)
	case m.nz != nil:
		m.nz.OnEdge(k, t)
	case m.gc != nil:
		m.gc.OnEdge(k, t)
	case m.ww != nil:
		m.ww.OnEdge(k, t, dir)
	}
}

func (m *modeSession) tick(t float64) {
	switch {
	case m.pe != nil:
		m.pe.Tick(t)
	case m.nz != nil:
		m.nz.Tick(t)
	case m.gc != nil:
		m.gc.Tick(t)
	case m.ww != nil:
		m.ww.Tick(t)
	}
}

func (m *modeSession) done() bool {
	switch {
	case m.pe != nil:
		return m.pe.Done()
	case m.nz != nil:
		return m.nz.Done()
	case m.gc != nil:
		return m.gc.Done()
	case m.ww != nil:
		return m.ww.Done()
	}
	return true
}

func (m *modeSession) finish() BlockResult {
	switch {
	case m.pe != nil:
		return m.pe.Finish()
	case m.nz != nil:
		return m.nz.Finish()
	case m.gc != nil:
		return m.gc.Finish()
	case m.ww != nil:
		return m.ww.Finish()
	}
	return BlockResult{Kind: KindNone}
}

// forceEnd handles end-of-stream: treat it as an implicit end-of-block
// on whatever decode is in progress (§7).
func (m *modeSession) forceEnd() {
	switch {
	case m.pe != nil:
		m.pe.haveIdle = true
	case m.nz != nil:
		m.nz.done = true
	case m.gc != nil:
		m.gc.phase = gcrDone
	case m.ww != nil:
		m.ww.done = true
	}
}
