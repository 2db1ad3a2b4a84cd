// Package config loads the feed registry shared by the feed tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/feedctl/internal/feed"
)

// WatchConfig configures the feedwatch daemon.
type WatchConfig struct {
	Addr    string       `toml:"addr"`
	DumpDir string       `toml:"dump_dir"`
	Feeds   []FeedConfig `toml:"feeds"`
}

// FeedConfig is one served feed and the constraints a price must satisfy to
// be usable.
type FeedConfig struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
	// MaxAgeSeconds bounds how long after its publish time a price stays
	// usable.
	MaxAgeSeconds uint64 `toml:"max_age_seconds"`
	// RequireFull demands the full signer quorum; otherwise MinSignatures
	// partial signatures are enough.
	RequireFull   bool  `toml:"require_full"`
	MinSignatures uint8 `toml:"min_signatures"`
}

// FeedID parses the configured hex id.
func (f FeedConfig) FeedID() (feed.FeedID, error) {
	return feed.FeedIDFromHex(f.ID)
}

// RequiredTrust is the trust threshold a served price must meet.
func (f FeedConfig) RequiredTrust() feed.TrustLevel {
	if f.RequireFull {
		return feed.FullTrust()
	}
	return feed.PartialTrust(f.MinSignatures)
}

// LoadWatchConfig reads and validates a feedwatch config file.
func LoadWatchConfig(path string) (WatchConfig, error) {
	var cfg WatchConfig
	if err := loadToml(path, &cfg); err != nil {
		return WatchConfig{}, err
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9400"
	}
	if err := ValidateWatchConfig(cfg); err != nil {
		return WatchConfig{}, err
	}
	return cfg, nil
}

// ValidateWatchConfig rejects configs that cannot serve: no feeds, unnamed
// or duplicate feeds, unparseable ids.
func ValidateWatchConfig(cfg WatchConfig) error {
	if cfg.DumpDir == "" {
		return errors.New("config: dump_dir is required")
	}
	if len(cfg.Feeds) == 0 {
		return errors.New("config: at least one feed is required")
	}
	names := make(map[string]struct{}, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		if f.Name == "" {
			return errors.New("config: every feed needs a name")
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("config: duplicate feed name %q", f.Name)
		}
		names[f.Name] = struct{}{}
		if _, err := f.FeedID(); err != nil {
			return fmt.Errorf("config: feed %q: %w", f.Name, err)
		}
	}
	return nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
