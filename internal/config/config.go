// Package config holds the small set of tunables an embedder can load
// to configure an Engine. It is not read by the cmd/sed-engine binary,
// which always runs with DefaultConfig — the external interface takes
// no flags, environment variables, or config files.
package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Config tunes the document buffer's growth and the history's
// diagnostics behavior.
type Config struct {
	// InitialHeadroom is the base offset a fresh Document starts with.
	InitialHeadroom int `toml:"initial_headroom"`
	// GrowthFactor is the multiplier applied to storage capacity each
	// time a write exceeds it.
	GrowthFactor float64 `toml:"growth_factor"`
	// MaxHistoryHint is advisory only: history retention is never
	// bounded or evicted. When greater than zero, the engine logs a
	// diagnostic once the combined past+future record count crosses it,
	// so an embedder can notice unbounded growth without the engine
	// itself ever refusing to record a mutation.
	MaxHistoryHint int `toml:"max_history_hint"`
	// StrictReplay enables a consistency check that a re-applied
	// Delete's freshly captured displaced lines match the ones
	// originally recorded for it.
	StrictReplay bool `toml:"strict_replay"`
}

// DefaultConfig returns the tunables cmd/sed-engine runs with.
func DefaultConfig() Config {
	return Config{
		InitialHeadroom: 16,
		GrowthFactor:    2.0,
		MaxHistoryHint:  0,
		StrictReplay:    false,
	}
}

// Load reads a TOML document from r into a Config seeded with
// DefaultConfig, so a partial document only overrides the fields it
// sets.
func Load(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}
