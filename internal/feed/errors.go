package feed

import "errors"

var (
	ErrPriceTooOld                   = errors.New("feed: price update age exceeds the requested maximum age")
	ErrMismatchedFeedID              = errors.New("feed: price update does not match the requested feed id")
	ErrInsufficientVerificationLevel = errors.New("feed: price update has a lower verification level than the one requested")
	ErrFeedIDMustBe32Bytes           = errors.New("feed: feed id must be 32 bytes, 64 hex characters or 66 with a 0x prefix")
	ErrFeedIDNonHexCharacter         = errors.New("feed: feed id contains non-hex characters")
)
