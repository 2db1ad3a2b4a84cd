package feed

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/danmuck/feedctl/internal/wire"
)

// FeedID names the logical feed a message belongs to. Opaque, compared by
// byte equality only.
type FeedID [32]byte

// MessageLen is the exact width of an encoded PriceMessage.
const MessageLen = 84

// FeedIDFromHex parses a caller-supplied hex string, optionally 0x-prefixed,
// into a FeedID.
func FeedIDFromHex(s string) (FeedID, error) {
	s = strings.TrimPrefix(s, "0x")
	var id FeedID
	if len(s) != hex.EncodedLen(len(id)) {
		return FeedID{}, ErrFeedIDMustBe32Bytes
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return FeedID{}, ErrFeedIDNonHexCharacter
	}
	return id, nil
}

// String renders the id as lowercase hex without a prefix.
func (id FeedID) String() string {
	return hex.EncodeToString(id[:])
}

// PriceMessage is one decoded price message. The true price is
// (Price ± Conf) * 10^Exponent; scaling is left to the caller.
type PriceMessage struct {
	FeedID   FeedID
	Price    int64
	Conf     uint64
	Exponent int32
	// PublishTime is the update timestamp in unix seconds.
	PublishTime int64
	// PrevPublishTime may equal PublishTime when aggregation failed at the
	// posting slot; the pair is not strictly increasing.
	PrevPublishTime int64
	EmaPrice        int64
	EmaConf         uint64
}

// DecodePriceMessage reinterprets exactly MessageLen bytes, little-endian
// with no padding, as a PriceMessage. The record decoder sizes the region;
// any other length is a contract violation and panics.
func DecodePriceMessage(b []byte) PriceMessage {
	if len(b) != MessageLen {
		panic(fmt.Sprintf("feed: price message needs %d bytes, got %d", MessageLen, len(b)))
	}
	var m PriceMessage
	copy(m.FeedID[:], b[0:32])
	m.Price = wire.I64(b[32:40])
	m.Conf = wire.U64(b[40:48])
	m.Exponent = wire.I32(b[48:52])
	m.PublishTime = wire.I64(b[52:60])
	m.PrevPublishTime = wire.I64(b[60:68])
	m.EmaPrice = wire.I64(b[68:76])
	m.EmaConf = wire.U64(b[76:84])
	return m
}

// Encode is the inverse of DecodePriceMessage.
func (m PriceMessage) Encode() []byte {
	buf := make([]byte, MessageLen)
	copy(buf[0:32], m.FeedID[:])
	binary.LittleEndian.PutUint64(buf[32:40], uint64(m.Price))
	binary.LittleEndian.PutUint64(buf[40:48], m.Conf)
	binary.LittleEndian.PutUint32(buf[48:52], uint32(m.Exponent))
	binary.LittleEndian.PutUint64(buf[52:60], uint64(m.PublishTime))
	binary.LittleEndian.PutUint64(buf[60:68], uint64(m.PrevPublishTime))
	binary.LittleEndian.PutUint64(buf[68:76], uint64(m.EmaPrice))
	binary.LittleEndian.PutUint64(buf[76:84], m.EmaConf)
	return buf
}
