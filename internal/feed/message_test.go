package feed

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/feedctl/internal/wire"
)

// A price update account captured from mainnet
// (7UVimffxr9ow1uXYxsr4LHAcV58mLzhmwaeKvJ1pjLiE): 8-byte discriminator,
// 32-byte write authority, 1-byte trust tag (full), 84-byte message, 8-byte
// posted slot, one byte of padding.
const mainnetAccountHex = "22f123639d7ef4cd60314704340deddf371fd42472148f248e9d1a6d1a5eb2ac3acd8b7fd5d6b24301ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d107fc8e30300000049a7550100000000f8ffffff314963660000000030496366000000008cc427ed030000009b14030100000000dded1e100000000000"

const solUsdFeedHex = "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d"

// mainnetMessageBytes slices the 84-byte message region out of the account
// fixture: past the discriminator (8), the write authority (32) and the
// 1-byte full trust tag.
func mainnetMessageBytes() []byte {
	return wire.MustHex(mainnetAccountHex)[41 : 41+MessageLen]
}

func TestDecodePriceMessageMainnetVector(t *testing.T) {
	m := DecodePriceMessage(mainnetMessageBytes())

	if m.FeedID.String() != solUsdFeedHex {
		t.Fatalf("feed id mismatch: %s", m.FeedID)
	}
	if m.Price != 16706469648 {
		t.Fatalf("price: got %d", m.Price)
	}
	if m.Conf != 22390601 {
		t.Fatalf("conf: got %d", m.Conf)
	}
	if m.Exponent != -8 {
		t.Fatalf("exponent: got %d", m.Exponent)
	}
	if m.PublishTime != 1717782833 {
		t.Fatalf("publish time: got %d", m.PublishTime)
	}
	if m.PrevPublishTime != 1717782832 {
		t.Fatalf("prev publish time: got %d", m.PrevPublishTime)
	}
	if m.EmaPrice != 16863708300 {
		t.Fatalf("ema price: got %d", m.EmaPrice)
	}
	if m.EmaConf != 16979099 {
		t.Fatalf("ema conf: got %d", m.EmaConf)
	}
}

func TestPriceMessageEncodeRoundTrip(t *testing.T) {
	raw := mainnetMessageBytes()
	if got := DecodePriceMessage(raw).Encode(); !bytes.Equal(got, raw) {
		t.Fatalf("round trip mismatch:\n got  %x\n want %x", got, raw)
	}

	m := PriceMessage{
		Price:           -42,
		Conf:            9,
		Exponent:        -12,
		PublishTime:     1718111995,
		PrevPublishTime: 1718111995,
		EmaPrice:        -40,
		EmaConf:         11,
	}
	copy(m.FeedID[:], bytes.Repeat([]byte{0xab}, 32))
	if got := DecodePriceMessage(m.Encode()); got != m {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, m)
	}
}

func TestDecodePriceMessageWrongLengthPanics(t *testing.T) {
	mustPanic(t, func() { DecodePriceMessage(make([]byte, MessageLen-1)) })
	mustPanic(t, func() { DecodePriceMessage(make([]byte, MessageLen+1)) })
}

func TestFeedIDFromHex(t *testing.T) {
	want := DecodePriceMessage(mainnetMessageBytes()).FeedID

	id, err := FeedIDFromHex(solUsdFeedHex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != want {
		t.Fatalf("id mismatch: %s", id)
	}

	prefixed, err := FeedIDFromHex("0x" + solUsdFeedHex)
	if err != nil {
		t.Fatalf("parse with prefix: %v", err)
	}
	if prefixed != want {
		t.Fatalf("prefixed id mismatch: %s", prefixed)
	}
}

func TestFeedIDFromHexRejectsBadInput(t *testing.T) {
	if _, err := FeedIDFromHex("ef0d"); !errors.Is(err, ErrFeedIDMustBe32Bytes) {
		t.Fatalf("expected ErrFeedIDMustBe32Bytes, got %v", err)
	}
	if _, err := FeedIDFromHex("0x" + solUsdFeedHex + "00"); !errors.Is(err, ErrFeedIDMustBe32Bytes) {
		t.Fatalf("expected ErrFeedIDMustBe32Bytes, got %v", err)
	}
	bad := "zz" + solUsdFeedHex[2:]
	if _, err := FeedIDFromHex(bad); !errors.Is(err, ErrFeedIDNonHexCharacter) {
		t.Fatalf("expected ErrFeedIDNonHexCharacter, got %v", err)
	}
}
