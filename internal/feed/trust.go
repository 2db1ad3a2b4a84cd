package feed

import "fmt"

// Tag bytes for an encoded trust level.
const (
	tagPartial byte = 0x00
	tagFull    byte = 0x01
)

// TrustLevel records how much of the upstream signer quorum backs an update:
// the full two-thirds quorum, or only NumSignatures checked signatures.
// Acting on a partially verified update lowers the number of signers that
// would have to collude to forge a price.
type TrustLevel struct {
	Full bool
	// NumSignatures is meaningful only when Full is false.
	NumSignatures uint8
}

func FullTrust() TrustLevel { return TrustLevel{Full: true} }

func PartialTrust(numSignatures uint8) TrustLevel {
	return TrustLevel{NumSignatures: numSignatures}
}

// Gte reports whether t is at least as trusted as other. Full exceeds every
// Partial; between two Partial values the larger signature count wins. Used
// for threshold checks, never for sorting.
func (t TrustLevel) Gte(other TrustLevel) bool {
	if t.Full {
		return true
	}
	if other.Full {
		return false
	}
	return t.NumSignatures >= other.NumSignatures
}

// Width is the encoded width of t: 1 byte for Full, 2 for Partial.
func (t TrustLevel) Width() int {
	if t.Full {
		return 1
	}
	return 2
}

// Encode renders t in its wire form.
func (t TrustLevel) Encode() []byte {
	if t.Full {
		return []byte{tagFull}
	}
	return []byte{tagPartial, t.NumSignatures}
}

func (t TrustLevel) String() string {
	if t.Full {
		return "full"
	}
	return fmt.Sprintf("partial(%d)", t.NumSignatures)
}

// DecodeTrustLevel decodes a 1- or 2-byte trust tag and returns the level
// together with the width it consumed. Downstream offset arithmetic must use
// the returned width, not re-derive it. A Full tag consumes one byte and
// ignores any second byte supplied; a Partial tag needs its signature-count
// byte. The tag space has exactly two variants: an unknown tag byte, a
// Partial tag sliced one byte short, or any other width is a contract
// violation and panics.
func DecodeTrustLevel(b []byte) (TrustLevel, int) {
	if len(b) != 1 && len(b) != 2 {
		panic(fmt.Sprintf("feed: trust level needs 1 or 2 bytes, got %d", len(b)))
	}
	switch b[0] {
	case tagFull:
		return FullTrust(), 1
	case tagPartial:
		if len(b) < 2 {
			panic("feed: partial trust level missing its signature count byte")
		}
		return PartialTrust(b[1]), 2
	default:
		panic(fmt.Sprintf("feed: unknown trust level tag 0x%02x", b[0]))
	}
}
