package feed

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/danmuck/feedctl/internal/wire"
)

// MinUpdateLen is the smallest encoded PriceUpdate: write authority, 1-byte
// trust tag, message, posted slot. A Partial trust tag adds one byte.
const MinUpdateLen = 32 + 1 + MessageLen + 8

// PriceUpdate is one decoded price update record.
type PriceUpdate struct {
	// WriteAuthority is the 32-byte identity that posted the record. Opaque
	// here: copied out of the buffer, never interpreted.
	WriteAuthority [32]byte
	TrustLevel     TrustLevel
	Message        PriceMessage
	// PostedSlot is the ledger position the record was posted at. An opaque
	// ordinal, not a timestamp.
	PostedSlot uint64
}

// Price is the public projection of a usable update.
type Price struct {
	Price       int64
	Conf        uint64
	Exponent    int32
	PublishTime int64
}

// DecodePriceUpdate decodes an update record from b. The trust tag's first
// byte, at offset 32, decides whether the tag region is 1 or 2 bytes wide
// and therefore where every later field sits, so it is resolved before any
// later offset is computed. Bytes past the record (reserved padding in the
// account format) are ignored. A buffer too short to hold the record panics:
// the caller is expected to have located a complete record body.
func DecodePriceUpdate(b []byte) PriceUpdate {
	if len(b) < MinUpdateLen {
		panic(fmt.Sprintf("feed: price update needs at least %d bytes, got %d", MinUpdateLen, len(b)))
	}

	var u PriceUpdate
	copy(u.WriteAuthority[:], b[0:32])

	width := 1
	if b[32] != tagFull {
		width = 2
	}
	if len(b) < 32+width+MessageLen+8 {
		panic(fmt.Sprintf("feed: price update needs %d bytes, got %d", 32+width+MessageLen+8, len(b)))
	}
	u.TrustLevel, width = DecodeTrustLevel(b[32 : 32+width])

	offset := 32 + width
	u.Message = DecodePriceMessage(b[offset : offset+MessageLen])
	offset += MessageLen
	u.PostedSlot = wire.U64(b[offset : offset+8])
	return u
}

// Encode is the inverse of DecodePriceUpdate, without trailing padding.
func (u PriceUpdate) Encode() []byte {
	buf := make([]byte, 0, 32+u.TrustLevel.Width()+MessageLen+8)
	buf = append(buf, u.WriteAuthority[:]...)
	buf = append(buf, u.TrustLevel.Encode()...)
	buf = append(buf, u.Message.Encode()...)
	var slot [8]byte
	binary.LittleEndian.PutUint64(slot[:], u.PostedSlot)
	return append(buf, slot[:]...)
}

// PriceUnchecked projects the public price fields, checking only that the
// record belongs to feedID when one is given. A nil feedID skips the
// identity check entirely.
//
// It does not check how recent the update is or how much verification backs
// it; used alone it lets stale or under-verified prices through.
func (u *PriceUpdate) PriceUnchecked(feedID *FeedID) (Price, error) {
	if feedID != nil && u.Message.FeedID != *feedID {
		return Price{}, ErrMismatchedFeedID
	}
	return Price{
		Price:       u.Message.Price,
		Conf:        u.Message.Conf,
		Exponent:    u.Message.Exponent,
		PublishTime: u.Message.PublishTime,
	}, nil
}

// PriceNoOlderThanWithTrust returns the price if the record carries at least
// the required trust level, matches feedID (nil skips the check), and was
// published no more than maxAge seconds before now. The trust check runs
// first, before the identity check. The age bound is inclusive: a publish
// time plus maxAge equal to now still passes.
func (u *PriceUpdate) PriceNoOlderThanWithTrust(now int64, maxAge uint64, feedID *FeedID, required TrustLevel) (Price, error) {
	if !u.TrustLevel.Gte(required) {
		return Price{}, ErrInsufficientVerificationLevel
	}
	price, err := u.PriceUnchecked(feedID)
	if err != nil {
		return Price{}, err
	}
	if saturatingAddAge(price.PublishTime, maxAge) < now {
		return Price{}, ErrPriceTooOld
	}
	return price, nil
}

// PriceNoOlderThan is PriceNoOlderThanWithTrust requiring full trust.
func (u *PriceUpdate) PriceNoOlderThan(now int64, maxAge uint64, feedID *FeedID) (Price, error) {
	return u.PriceNoOlderThanWithTrust(now, maxAge, feedID, FullTrust())
}

// saturatingAddAge computes publishTime + maxAge, clamping at the int64
// ceiling instead of wrapping on a large maxAge.
func saturatingAddAge(publishTime int64, maxAge uint64) int64 {
	if maxAge > math.MaxInt64 {
		return math.MaxInt64
	}
	sum := publishTime + int64(maxAge)
	if sum < publishTime {
		return math.MaxInt64
	}
	return sum
}
