// feedctl decodes one price update account dump and reports whether its
// price is usable under the requested constraints.
//
// Usage:
//
//	feedctl -record dump.hex [-config check.toml] [-feed 0x<id>] \
//	        [-max-age 30] [-partial 5] [-now 1717782833]
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danmuck/feedctl/internal/account"
	"github.com/danmuck/feedctl/internal/feed"
	"github.com/danmuck/feedctl/internal/observability"
)

func main() {
	var (
		recordPath = flag.String("record", "", "path to a hex account dump")
		recordHex  = flag.String("hex", "", "literal hex account dump")
		configPath = flag.String("config", "", "optional check config file")
		feedHex    = flag.String("feed", "", "feed id to require, hex")
		maxAge     = flag.Uint64("max-age", 0, "maximum age in seconds")
		partial    = flag.Int("partial", -1, "accept partial trust with at least this many signatures")
		now        = flag.Int64("now", 0, "reference unix time, defaults to the wall clock")
		unchecked  = flag.Bool("unchecked", false, "skip the trust and age checks")
		logLevel   = flag.String("log-level", "info", "trace|debug|info|warn|error")
	)
	flag.Parse()

	logger := observability.InitLogger("feedctl", *logLevel)

	opts := defaultCheckOptions()
	if *configPath != "" {
		loaded, err := loadCheckOptions(*configPath)
		if err != nil {
			logger.Error().Err(err).Msg("config")
			os.Exit(1)
		}
		opts = loaded
	}
	if *feedHex != "" {
		opts.FeedIDHex = *feedHex
	}
	if *maxAge != 0 {
		opts.MaxAgeSeconds = *maxAge
	}
	if *partial >= 0 {
		opts.RequireFull = false
		opts.MinSignatures = uint8(*partial)
	}

	raw, err := readRecord(*recordPath, *recordHex)
	if err != nil {
		logger.Error().Err(err).Msg("read record")
		os.Exit(1)
	}

	body := raw
	if account.HasPriceUpdateDiscriminator(raw) {
		body, _ = account.Body(raw)
		logger.Debug().Str("discriminator", account.PriceUpdateDiscriminatorHex).Msg("stripped discriminator")
	}

	update, err := decodeRecord(body)
	if err != nil {
		logger.Error().Err(err).Msg("decode")
		os.Exit(1)
	}

	event := logger.Info().
		Str("trust", update.TrustLevel.String()).
		Str("feed_id", update.Message.FeedID.String()).
		Uint64("posted_slot", update.PostedSlot)
	if name, known := account.IdentityName(update.WriteAuthority); known {
		event = event.Str("write_authority", name)
	} else {
		event = event.Str("write_authority", hex.EncodeToString(update.WriteAuthority[:]))
	}
	event.Msg("decoded")

	price, err := queryPrice(&update, opts, *unchecked, *now)
	if err != nil {
		logger.Error().Err(err).Msg("price not usable")
		os.Exit(1)
	}

	logger.Info().
		Int64("price", price.Price).
		Uint64("conf", price.Conf).
		Int32("exponent", price.Exponent).
		Int64("publish_time", price.PublishTime).
		Str("scaled_price", decimal.NewFromInt(price.Price).Shift(price.Exponent).String()).
		Str("scaled_conf", decimal.NewFromUint64(price.Conf).Shift(price.Exponent).String()).
		Msg("price usable")
}

func readRecord(path, literal string) ([]byte, error) {
	switch {
	case path != "" && literal != "":
		return nil, fmt.Errorf("pass either -record or -hex, not both")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return decodeHexInput(string(data))
	case literal != "":
		return decodeHexInput(literal)
	default:
		return nil, fmt.Errorf("a record is required: -record or -hex")
	}
}

func decodeHexInput(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("record is not valid hex: %w", err)
	}
	return raw, nil
}

// decodeRecord turns the codec's contract panics into ordinary errors at the
// tool boundary, where the bytes really are untrusted input.
func decodeRecord(body []byte) (update feed.PriceUpdate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed record: %v", r)
		}
	}()
	if len(body) < feed.MinUpdateLen {
		return feed.PriceUpdate{}, fmt.Errorf("record body too short: %d bytes", len(body))
	}
	return feed.DecodePriceUpdate(body), nil
}

func queryPrice(update *feed.PriceUpdate, opts checkOptions, unchecked bool, now int64) (feed.Price, error) {
	var feedID *feed.FeedID
	if opts.FeedIDHex != "" {
		id, err := feed.FeedIDFromHex(opts.FeedIDHex)
		if err != nil {
			return feed.Price{}, err
		}
		feedID = &id
	}

	if unchecked {
		return update.PriceUnchecked(feedID)
	}

	if now == 0 {
		now = time.Now().Unix()
	}
	required := feed.FullTrust()
	if !opts.RequireFull {
		required = feed.PartialTrust(opts.MinSignatures)
	}
	return update.PriceNoOlderThanWithTrust(now, opts.MaxAgeSeconds, feedID, required)
}
