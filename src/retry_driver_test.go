package readtape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPerfectRequiresCleanBlock(t *testing.T) {
	assert.True(t, isPerfect(BlockResult{Kind: KindBlock}))
	assert.False(t, isPerfect(BlockResult{Kind: KindBlock, ErrCount: 1}))
	assert.False(t, isPerfect(BlockResult{Kind: KindBlock, WarnCount: 1}))
	assert.False(t, isPerfect(BlockResult{Kind: KindNoise}))
}

func TestPickBestPrefersCleanestBlock(t *testing.T) {
	results := []BlockResult{
		{Kind: KindBlock, ErrCount: 1},
		{Kind: KindBlock, ErrCount: 0, WarnCount: 2},
		{Kind: KindBlock, ErrCount: 0, WarnCount: 0},
	}
	assert.Equal(t, 2, pickBest(results))
}

func TestPickBestTiesBreakToFirstInCatalogOrder(t *testing.T) {
	results := []BlockResult{
		{Kind: KindBlock, ErrCount: 0, WarnCount: 1},
		{Kind: KindBlock, ErrCount: 0, WarnCount: 1},
	}
	assert.Equal(t, 0, pickBest(results))
}

func TestPickBestFallsBackToFewestErrors(t *testing.T) {
	results := []BlockResult{
		{Kind: KindBlock, ErrCount: 3},
		{Kind: KindBlock, ErrCount: 1},
	}
	assert.Equal(t, 1, pickBest(results))
}

func TestPickBestFallsBackToBadBlockLeastMismatch(t *testing.T) {
	results := []BlockResult{
		{Kind: KindBadBlock, TrackMismatch: 5},
		{Kind: KindBadBlock, TrackMismatch: 2},
	}
	assert.Equal(t, 1, pickBest(results))
}

func TestPickBestFallsBackToNoise(t *testing.T) {
	results := []BlockResult{
		{Kind: KindNoise},
	}
	assert.Equal(t, 0, pickBest(results))
}

func TestPickBestEmptyDefaultsToZero(t *testing.T) {
	assert.Equal(t, 0, pickBest(nil))
}

// With multiple_tries off, an exhausted source gets exactly one attempt
// on parmset 0, which is both tried and chosen.
func TestDecodeNextBlockSingleTryOnExhaustedSource(t *testing.T) {
	cfg := newTestConfig(t, 2)
	cfg.BPI = 1600
	cfg.MultipleTries = false
	src := &fakeSource{dt: 1e-6, nheads: 2}
	dc := NewDecoderContext(cfg, src, cfg.Mode)
	rd := NewRetryDriver(cfg, dc)

	r, exhausted, err := rd.DecodeNextBlock(context.Background())
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Equal(t, KindNoise, r.Kind)
	assert.Equal(t, 1, cfg.Parmsets[0].Tried)
	assert.Equal(t, 1, cfg.Parmsets[0].Chosen)
	assert.Equal(t, 0, cfg.Parmsets[1].Tried)
}

// With multiple_tries on and skip_noise set, the first parmset's Noise
// result commits immediately without running the rest of the catalog.
func TestDecodeNextBlockSkipNoiseCommitsFirstParmset(t *testing.T) {
	cfg := newTestConfig(t, 2)
	cfg.BPI = 1600
	cfg.MultipleTries = true
	cfg.SkipNoise = true
	src := &fakeSource{dt: 1e-6, nheads: 2}
	dc := NewDecoderContext(cfg, src, cfg.Mode)
	rd := NewRetryDriver(cfg, dc)

	r, exhausted, err := rd.DecodeNextBlock(context.Background())
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Equal(t, KindNoise, r.Kind)
	assert.Equal(t, 1, cfg.Parmsets[0].Tried)
	assert.Equal(t, 1, cfg.Parmsets[0].Chosen)
	assert.Equal(t, 0, cfg.Parmsets[1].Tried)
}
