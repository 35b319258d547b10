package readtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParmsetsCatalogDecodes(t *testing.T) {
	for _, mode := range []Mode{ModePE, ModeNRZI, ModeGCR, ModeWhirlwind} {
		catalog := DefaultParmsets(mode)
		require.NotEmpty(t, catalog, mode.String())
		for _, ps := range catalog {
			assert.NotEmpty(t, ps.Name)
			// At most one clock strategy and one AGC strategy per entry.
			assert.False(t, ps.ClkWindow > 0 && ps.ClkAlpha > 0, ps.Name)
			assert.False(t, ps.AGCWindow > 0 && ps.AGCAlpha > 0, ps.Name)
		}
	}
}

func TestDefaultParmsetsUnknownModeNil(t *testing.T) {
	assert.Nil(t, DefaultParmsets(ModeUnknown))
}

// The catalog must hand out fresh copies, or one run's Tried/Chosen
// bookkeeping would leak into the next.
func TestDefaultParmsetsReturnsFreshCopies(t *testing.T) {
	a := DefaultParmsets(ModePE)
	a[0].Tried = 99
	b := DefaultParmsets(ModePE)
	assert.Equal(t, 0, b[0].Tried)
}
