package gassertconfig

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML layout read by [LoadFile]:
//
//	# gassert.toml
//	threshold = "info"
//	fatal = "warn"
type fileConfig struct {
	Threshold string `toml:"threshold"`
	Fatal     string `toml:"fatal"`
}

// LoadFile reads a TOML configuration from path.
//
// The threshold key is required.
// The fatal key is optional and defaults to Always.
// Unknown keys are rejected, as they usually indicate a typo.
func LoadFile(path string) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if !meta.IsDefined("threshold") || strings.TrimSpace(fc.Threshold) == "" {
		return Config{}, fmt.Errorf("%s: %w: missing threshold", path, ErrInvalidConfig)
	}

	cfg := Default()
	cfg.Threshold, err = ParseLevel(fc.Threshold)
	if err != nil {
		return Config{}, fmt.Errorf("%s: threshold: %w", path, err)
	}

	if meta.IsDefined("fatal") {
		cfg.FatalFloor, err = ParseLevel(fc.Fatal)
		if err != nil {
			return Config{}, fmt.Errorf("%s: fatal: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
