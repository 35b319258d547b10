package readtape

import (
	"io"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML configuration document (§6.4) and validates
// it, defaulting NTracks for Whirlwind (which has a fixed six-track
// layout the spec doesn't ask the caller to spell out).
func LoadConfig(r io.Reader) (*Config, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return nil, &FatalError{Reason: "config: " + err.Error()}
	}
	if cfg.Mode == ModeWhirlwind && cfg.NTracks == 0 {
		cfg.NTracks = wwTrackCount
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
