// feedwatch loads price update account dumps from a directory and serves
// the latest validated price per configured feed over HTTP.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danmuck/feedctl/internal/account"
	"github.com/danmuck/feedctl/internal/config"
	"github.com/danmuck/feedctl/internal/feed"
	"github.com/danmuck/feedctl/internal/observability"
	"github.com/danmuck/feedctl/internal/server"
	"github.com/danmuck/feedctl/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "feedwatch.toml", "feedwatch config file")
		logLevel   = flag.String("log-level", "info", "trace|debug|info|warn|error")
	)
	flag.Parse()

	logger := observability.InitLogger("feedwatch", *logLevel)
	observability.RegisterMetrics()

	cfg, err := config.LoadWatchConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("config")
		os.Exit(1)
	}

	st := store.New()
	loaded, err := loadDumps(cfg.DumpDir, st, logger)
	if err != nil {
		logger.Error().Err(err).Msg("load dumps")
		os.Exit(1)
	}
	logger.Info().Int("records", loaded).Int("feeds", st.Len()).Msg("dumps loaded")

	srv, err := server.New(cfg, st, logger)
	if err != nil {
		logger.Error().Err(err).Msg("server")
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("serve")
		os.Exit(1)
	}
}

// loadDumps decodes every *.hex account dump under dir into the store.
// Dumps that are not price update records are counted and skipped, not
// fatal: a dump directory routinely holds other account shapes.
func loadDumps(dir string, st *store.Store, logger zerolog.Logger) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.hex"))
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, path := range paths {
		update, err := loadDump(path)
		if err != nil {
			observability.RecordRejected()
			logger.Warn().Err(err).Str("path", path).Msg("dump skipped")
			continue
		}
		observability.RecordDecoded(update.TrustLevel.String())
		if st.Put(update) {
			loaded++
			logger.Debug().
				Str("feed_id", update.Message.FeedID.String()).
				Uint64("posted_slot", update.PostedSlot).
				Str("trust", update.TrustLevel.String()).
				Msg("record loaded")
		}
	}
	return loaded, nil
}

func loadDump(path string) (update feed.PriceUpdate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed record: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return feed.PriceUpdate{}, err
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(string(data)), "0x"))
	if err != nil {
		return feed.PriceUpdate{}, fmt.Errorf("not valid hex: %w", err)
	}

	if !account.HasPriceUpdateDiscriminator(raw) {
		return feed.PriceUpdate{}, fmt.Errorf("not a price update account")
	}
	body, err := account.Body(raw)
	if err != nil {
		return feed.PriceUpdate{}, err
	}
	if len(body) < feed.MinUpdateLen {
		return feed.PriceUpdate{}, fmt.Errorf("record body too short: %d bytes", len(body))
	}
	return feed.DecodePriceUpdate(body), nil
}
