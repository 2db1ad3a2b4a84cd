package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/feedctl/internal/feed"
)

const solUsdFeedHex = "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedwatch.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWatchConfig(t *testing.T) {
	path := writeConfig(t, `
dump_dir = "dumps"

[[feeds]]
name = "sol-usd"
id = "`+solUsdFeedHex+`"
max_age_seconds = 30
require_full = true

[[feeds]]
name = "btc-usd"
id = "0xe62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43"
max_age_seconds = 60
min_signatures = 5
`)

	cfg, err := LoadWatchConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9400" {
		t.Fatalf("default addr: got %q", cfg.Addr)
	}
	if len(cfg.Feeds) != 2 {
		t.Fatalf("feeds: got %d", len(cfg.Feeds))
	}

	sol := cfg.Feeds[0]
	if sol.RequiredTrust() != feed.FullTrust() {
		t.Fatalf("sol trust: got %v", sol.RequiredTrust())
	}
	id, err := sol.FeedID()
	if err != nil {
		t.Fatalf("sol id: %v", err)
	}
	if id.String() != strings.TrimPrefix(solUsdFeedHex, "0x") {
		t.Fatalf("sol id mismatch: %s", id)
	}

	btc := cfg.Feeds[1]
	if btc.RequiredTrust() != feed.PartialTrust(5) {
		t.Fatalf("btc trust: got %v", btc.RequiredTrust())
	}
}

func TestLoadWatchConfigRejectsBadFiles(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no dump dir", `
[[feeds]]
name = "sol-usd"
id = "` + solUsdFeedHex + `"
`},
		{"no feeds", `dump_dir = "dumps"`},
		{"unnamed feed", `
dump_dir = "dumps"
[[feeds]]
id = "` + solUsdFeedHex + `"
`},
		{"duplicate name", `
dump_dir = "dumps"
[[feeds]]
name = "sol-usd"
id = "` + solUsdFeedHex + `"
[[feeds]]
name = "sol-usd"
id = "` + solUsdFeedHex + `"
`},
		{"bad id", `
dump_dir = "dumps"
[[feeds]]
name = "sol-usd"
id = "not-a-feed-id"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadWatchConfig(writeConfig(t, tc.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadWatchConfigMissingFile(t *testing.T) {
	if _, err := LoadWatchConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error")
	}
}
