package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// checkOptions are the constraints feedctl applies to a record. Defaults
// come first, then the optional config file, then flags.
type checkOptions struct {
	FeedIDHex     string
	MaxAgeSeconds uint64
	RequireFull   bool
	MinSignatures uint8
}

func defaultCheckOptions() checkOptions {
	return checkOptions{
		MaxAgeSeconds: 60,
		RequireFull:   true,
	}
}

type fileConfig struct {
	FeedID        string `toml:"feed_id"`
	MaxAgeSeconds uint64 `toml:"max_age_seconds"`
	RequireFull   bool   `toml:"require_full"`
	MinSignatures uint8  `toml:"min_signatures"`
}

// loadCheckOptions layers a config file over the defaults. Only keys the
// file actually defines override.
func loadCheckOptions(path string) (checkOptions, error) {
	opts := defaultCheckOptions()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return checkOptions{}, fmt.Errorf("load check config: %w", err)
	}

	if meta.IsDefined("feed_id") {
		opts.FeedIDHex = strings.TrimSpace(raw.FeedID)
	}
	if meta.IsDefined("max_age_seconds") {
		opts.MaxAgeSeconds = raw.MaxAgeSeconds
	}
	if meta.IsDefined("require_full") {
		opts.RequireFull = raw.RequireFull
	}
	if meta.IsDefined("min_signatures") {
		opts.MinSignatures = raw.MinSignatures
	}

	return opts, nil
}
