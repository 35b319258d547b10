package readtape

// Config is the fully-populated decoder configuration the core consumes
// (§6.4). CLI parsing and .parm tokenization are external collaborators;
// this struct is what they are expected to produce. Field names follow
// the recognized-field list of §6.4 and double as YAML keys so a catalog
// or saved configuration can be round-tripped with gopkg.in/yaml.v3, the
// same library the teacher's deviceid.go uses for tocalls.yaml.
type Config struct {
	Mode Mode `yaml:"mode"`

	NTracks     int   `yaml:"n_tracks"`
	NHeads      int   `yaml:"n_heads"`
	HeadToTrack []int `yaml:"head_to_track"`

	BPI float64 `yaml:"bpi"` // 0 means "run the density pre-pass"
	IPS float64 `yaml:"ips"`

	Parity              Parity  `yaml:"parity"`
	RevParityThreshold  float64 `yaml:"revparity_threshold"`

	Invert        bool `yaml:"invert"`
	Differentiate bool `yaml:"differentiate"`
	FindZeros     bool `yaml:"find_zeros"`
	ReverseTape   bool `yaml:"reverse_tape"`

	FluxDirection FluxDirection `yaml:"flux_direction"` // Whirlwind only

	Subsample   int     `yaml:"subsample"`
	SkipSamples int     `yaml:"skip_samples"`
	Stopaft     int64   `yaml:"stopaft"`
	StartTime   float64 `yaml:"start_time"`
	EndTime     float64 `yaml:"end_time"`

	Deskew DeskewMode `yaml:"deskew"`
	Skew   []int      `yaml:"skew"` // used when Deskew == DeskewManual

	CorrectErrors  bool `yaml:"correct_errors"`
	MultipleTries  bool `yaml:"multiple_tries"`
	SkipNoise      bool `yaml:"skip_noise"`
	FakeBits       bool `yaml:"fake_bits"`

	Parmsets []Parmset `yaml:"parmsets"`
}

// FluxDirection selects or auto-detects Whirlwind flux polarity (§4.8).
type FluxDirection int

const (
	FluxAuto FluxDirection = iota
	FluxPos
	FluxNeg
)

// DeskewMode selects how per-track skew delays are determined (§4.9).
type DeskewMode int

const (
	DeskewNone DeskewMode = iota
	DeskewAuto
	DeskewManual
)

// Validate checks the configuration invariants that are fatal if violated
// (§7). It does not check parmset contents; RetryDriver does that lazily
// as it tries them.
func (c *Config) Validate() error {
	if c.StartTime != 0 || c.EndTime != 0 {
		if c.StartTime >= c.EndTime && c.EndTime != 0 {
			return &FatalError{Reason: "start_time >= end_time"}
		}
	}
	if len(c.Skew) > 0 && c.NTracks == 0 {
		return &FatalError{Reason: "skew given but n_tracks unset"}
	}
	if c.Subsample <= 0 {
		c.Subsample = 1
	}
	if c.NTracks == 0 {
		return &FatalError{Reason: "n_tracks unset"}
	}
	if len(c.HeadToTrack) == 0 {
		c.HeadToTrack = make([]int, c.NTracks)
		for i := range c.HeadToTrack {
			c.HeadToTrack[i] = i
		}
	}
	if len(c.Parmsets) == 0 {
		c.Parmsets = DefaultParmsets(c.Mode)
	}
	return nil
}
