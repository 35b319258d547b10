package readtape

import "gopkg.in/yaml.v3"

// Parmset is a named record of decoding tunables that the Retry Driver
// tries, in catalog order, against the same block (§3, §4.10).
//
// At most one of ClkWindow/ClkAlpha may be nonzero (clock-estimator
// strategy selector), and likewise at most one of AGCWindow/AGCAlpha.
type Parmset struct {
	Name string `yaml:"name"`

	// Clock estimator strategy: exactly zero or one of these is set.
	ClkWindow int     `yaml:"clk_window"` // 0..50, windowed strategy
	ClkAlpha  float64 `yaml:"clk_alpha"`  // 0 < alpha <= 1, exponential strategy

	// AGC strategy: exactly zero or one of these is set.
	AGCWindow int     `yaml:"agc_window"` // 0..10, windowed strategy
	AGCAlpha  float64 `yaml:"agc_alpha"`  // exponential strategy

	MinPeak      float64 `yaml:"min_peak"`       // minimum peak voltage, 0 disables
	PulseAdj     float64 `yaml:"pulse_adj"`      // pulse-shift compensation fraction
	PkwwBitfrac  float64 `yaml:"pkww_bitfrac"`   // peak window as a fraction of bit time
	PkwwRise     float64 `yaml:"pkww_rise"`      // rise threshold R numerator
	PEClkFactor  float64 `yaml:"pe_clk_factor"`  // PE clock-window widening factor
	NRZIMidbit   float64 `yaml:"nrzi_midbit"`    // NRZI mid-bit fraction into next cell
	GCROneZeroPt float64 `yaml:"gcr_one_zero_pt"` // z1pt: threshold, in bit periods, for one inserted zero
	GCRTwoZeroPt float64 `yaml:"gcr_two_zero_pt"` // z2pt: threshold, in bit periods, for a second inserted zero

	// Updated by the Retry Driver; read-only to everything else.
	Tried  int `yaml:"-"`
	Chosen int `yaml:"-"`
}

// defaultParmsetYAML is the factory catalog for each mode, shipped as
// embedded data the way the teacher ships tocalls.yaml. A .yaml config
// file's parmsets list uses the same per-entry schema.
const defaultParmsetYAML = `
PE:
  - name: pe-default
    clk_window: 6
    agc_window: 3
    pulse_adj: 0.5
    pkww_bitfrac: 0.7
    pkww_rise: 0.2
    pe_clk_factor: 1.4
  - name: pe-wide-window
    clk_window: 16
    agc_window: 6
    pulse_adj: 0.4
    pkww_bitfrac: 0.8
    pkww_rise: 0.3
    pe_clk_factor: 1.6
  - name: pe-tight-clock
    clk_alpha: 0.3
    agc_alpha: 0.3
    min_peak: 0.05
    pulse_adj: 0.6
    pkww_bitfrac: 0.6
    pkww_rise: 0.15
    pe_clk_factor: 1.2
NRZI:
  - name: nrzi-default
    clk_window: 8
    agc_window: 4
    pulse_adj: 0.3
    pkww_bitfrac: 0.7
    pkww_rise: 0.2
    nrzi_midbit: 0.5
  - name: nrzi-late-midbit
    clk_window: 8
    agc_window: 4
    pulse_adj: 0.3
    pkww_bitfrac: 0.7
    pkww_rise: 0.2
    nrzi_midbit: 0.7
  - name: nrzi-early-midbit
    clk_window: 8
    agc_window: 4
    pulse_adj: 0.3
    pkww_bitfrac: 0.7
    pkww_rise: 0.2
    nrzi_midbit: 0.3
GCR:
  - name: gcr-default
    clk_window: 10
    agc_window: 5
    pulse_adj: 0.3
    pkww_bitfrac: 0.5
    pkww_rise: 0.2
    gcr_one_zero_pt: 1.5
    gcr_two_zero_pt: 2.5
  - name: gcr-tight-zero
    clk_window: 10
    agc_window: 5
    pulse_adj: 0.3
    pkww_bitfrac: 0.5
    pkww_rise: 0.2
    gcr_one_zero_pt: 1.4
    gcr_two_zero_pt: 2.3
Whirlwind:
  - name: ww-default
    clk_window: 10
    pulse_adj: 0.3
    pkww_bitfrac: 0.7
    pkww_rise: 0.2
  - name: ww-slow-clock
    clk_alpha: 0.2
    pulse_adj: 0.2
    pkww_bitfrac: 0.8
    pkww_rise: 0.25
`

var defaultCatalogs map[string][]Parmset

func init() {
	if err := yaml.Unmarshal([]byte(defaultParmsetYAML), &defaultCatalogs); err != nil {
		panic("readtape: bad embedded parmset catalog: " + err.Error())
	}
}

// DefaultParmsets returns the fixed factory catalog shipped for a mode,
// decoded once at init from defaultParmsetYAML. Real deployments may
// override via Config.Parmsets. The returned slice is a fresh copy, so
// the Retry Driver's Tried/Chosen bookkeeping never leaks between runs.
func DefaultParmsets(mode Mode) []Parmset {
	catalog, ok := defaultCatalogs[mode.String()]
	if !ok {
		return nil
	}
	return append([]Parmset(nil), catalog...)
}
