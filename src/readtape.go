// Package readtape reconstructs the original digital byte stream from
// oscilloscope-style analog recordings of the read-head voltages of a
// multi-track magnetic tape.
//
// It supports Phase Encoding (PE), Non-Return-to-Zero Inverted (NRZI),
// Group Coded Recording (GCR), and the Whirlwind 6-track encoding. The
// package is the analog-to-symbol decoder core only: sample sources,
// container formats, and CLI/config plumbing live in sibling packages
// and in cmd/.
package readtape

import "gopkg.in/yaml.v3"

// Mode selects which per-encoding state machine decodes a track set.
type Mode int

const (
	ModeUnknown Mode = iota
	ModePE
	ModeNRZI
	ModeGCR
	ModeWhirlwind
)

func (m Mode) String() string {
	switch m {
	case ModePE:
		return "PE"
	case ModeNRZI:
		return "NRZI"
	case ModeGCR:
		return "GCR"
	case ModeWhirlwind:
		return "Whirlwind"
	default:
		return "unknown"
	}
}

// UnmarshalYAML accepts either the mode name or its numeric value, so a
// .yaml config can say `mode: NRZI` instead of the enum ordinal.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		switch s {
		case "PE":
			*m = ModePE
		case "NRZI":
			*m = ModeNRZI
		case "GCR":
			*m = ModeGCR
		case "Whirlwind":
			*m = ModeWhirlwind
		default:
			return &FatalError{Reason: "unrecognized mode " + s}
		}
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return err
	}
	*m = Mode(n)
	return nil
}

// Parity is the expected vertical parity of a decoded character.
type Parity int

const (
	ParityOdd Parity = iota
	ParityEven
)

// Direction is the sign of a detected flux transition.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Limits and tuning constants carried over verbatim from the specification.
const (
	// MAXBLOCK is the size, in 16-bit cells, of the block data buffer.
	MAXBLOCK = 131072

	// PeakWindowMax is the largest moving-window ring buffer size, in samples.
	PeakWindowMax = 50

	// ClkAvgWindowMax is the largest clock/AGC moving-window size.
	ClkAvgWindowMax = 50
	AGCWindowMax    = 10

	AGCMaxValue = 2.0

	// AGC baseline accumulation window, in peaks since track start.
	AGCStartBase = 5
	AGCEndBase   = 15

	// PKWW_PEAKHEIGHT normalizes the rise/min-peak thresholds against the
	// nominal gain-1 peak-to-peak height used when deriving a parmset.
	PKWWPeakHeight = 2.0

	// PeakThreshold is the voltage tolerance used for sub-sample peak time
	// refinement (§4.3.1).
	PeakThreshold = 0.05

	// ZerocrossPeak / ZerocrossSlope parameterize the zero-crossing detector.
	ZerocrossPeak  = 0.2
	ZerocrossSlope = 1.5

	// PE constants (§4.5).
	PEMinPrebits    = 70
	PEIdleFactor    = 2.5
	PEMaxPostbits   = 40
	PEIgnorePostbits = 5

	// NRZI constants (§4.6).
	NRZIBadTrkFactor  = 2.0
	NRZIMaxMismatch   = 10
	NRZICRCPoly       = 0x1AF

	// GCR constants (§4.7).
	GCRIdleThresh = 6.0

	// Whirlwind constants (§4.8).
	WWPeaksFarBits    = 2.0
	WWPeaksCloseBits  = 0.5
	WWClkStopBits     = 1.5
	WWMaxClkVariation = 0.10

	// Density estimator constants (§4.9).
	EstdenCountNeeded  = 9999
	EstdenBucketWidth  = 0.5e-6 // seconds
	EstdenBucketCount  = 240    // covers [0, 120us]
	EstdenMinFraction  = 0.05
	EstdenSnapTolerance = 0.20

	// Deskew pre-pass constants (§4.9).
	DeskewMaxBlocks       = 100
	DeskewTransitionGoal  = 1000
	DeskewWarnPct         = 0.10
	DeskewWarnStddevPct   = 0.03
)

// standardBPI is the snap-to set for the density estimator.
var standardBPI = []float64{200, 556, 800, 1600, 9042}
