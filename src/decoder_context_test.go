package readtape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory SampleSource for exercising DecoderContext
// without a real tbin/csv file.
type fakeSource struct {
	samples []Sample
	pos     int64
	dt      float64
	nheads  int
}

func (f *fakeSource) Next(ctx context.Context) (Sample, bool, error) {
	if int(f.pos) >= len(f.samples) {
		return Sample{}, false, nil
	}
	s := f.samples[f.pos]
	f.pos++
	return s, true, nil
}

func (f *fakeSource) Position() Position    { return f.pos }
func (f *fakeSource) Seek(p Position) error { f.pos = p; return nil }
func (f *fakeSource) SampleDeltaT() float64 { return f.dt }
func (f *fakeSource) NumHeads() int         { return f.nheads }

func newTestConfig(t *testing.T, ntrks int) *Config {
	cfg := &Config{Mode: ModeNRZI, NTracks: ntrks, IPS: 50, Parmsets: DefaultParmsets(ModeNRZI)}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunPrePassesNoopWhenBPISetAndDeskewNotAuto(t *testing.T) {
	cfg := newTestConfig(t, 2)
	cfg.BPI = 1600
	cfg.Deskew = DeskewNone
	src := &fakeSource{dt: 1e-6, nheads: 2, samples: []Sample{{T: 0, V: []float32{0, 0}}}}
	dc := NewDecoderContext(cfg, src, cfg.Mode)

	err := dc.RunPrePasses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1600.0, cfg.BPI)
	assert.Equal(t, int64(0), src.Position())
}

func TestRunPrePassesDensityFatalOnEmptySource(t *testing.T) {
	cfg := newTestConfig(t, 2)
	cfg.BPI = 0
	src := &fakeSource{dt: 1e-6, nheads: 2}
	dc := NewDecoderContext(cfg, src, cfg.Mode)

	err := dc.RunPrePasses(context.Background())
	require.Error(t, err)
	var fatal *FatalError
	assert.ErrorAs(t, err, &fatal)
	assert.Equal(t, int64(0), src.Position())
}

func TestRunPrePassesDeskewOnEmptySourceSetsZeroSkew(t *testing.T) {
	cfg := newTestConfig(t, 3)
	cfg.BPI = 1600
	cfg.Deskew = DeskewAuto
	src := &fakeSource{dt: 1e-6, nheads: 3}
	dc := NewDecoderContext(cfg, src, cfg.Mode)

	err := dc.RunPrePasses(context.Background())
	require.NoError(t, err)
	require.Len(t, cfg.Skew, 3)
	for _, d := range cfg.Skew {
		assert.Equal(t, 0, d)
	}
	assert.Equal(t, int64(0), src.Position())
}
