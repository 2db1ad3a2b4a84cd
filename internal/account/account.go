// Package account owns the on-chain envelope around a price update record:
// the leading format discriminator and the well-known program identities
// of the deployment the records come from.
//
// Ownership boundary:
// - discriminator constants and stripping
// - identity labeling for tool output
//
// The record decoders in internal/feed never look at any of this; checking
// the discriminator is the caller's call.
package account

import (
	"bytes"
	"errors"
)

// DiscriminatorLen is the width of the leading account format discriminator.
const DiscriminatorLen = 8

// PriceUpdateDiscriminator identifies price update accounts on mainnet.
var PriceUpdateDiscriminator = [DiscriminatorLen]byte{0x22, 0xF1, 0x23, 0x63, 0x9D, 0x7E, 0xF4, 0xCD}

// PriceUpdateDiscriminatorHex is PriceUpdateDiscriminator as a hex string.
const PriceUpdateDiscriminatorHex = "22f123639d7ef4cd"

// MessageAccountPrefixHex is the shorter discriminator prefix shared by the
// bare price message account shape.
const MessageAccountPrefixHex = "22f12363"

var ErrShortAccount = errors.New("account: data shorter than the discriminator")

// Body strips the leading discriminator and returns the record body, ready
// for feed.DecodePriceUpdate. It does not verify the discriminator value.
func Body(data []byte) ([]byte, error) {
	if len(data) < DiscriminatorLen {
		return nil, ErrShortAccount
	}
	return data[DiscriminatorLen:], nil
}

// HasPriceUpdateDiscriminator reports whether data begins with the price
// update account discriminator.
func HasPriceUpdateDiscriminator(data []byte) bool {
	return len(data) >= DiscriminatorLen &&
		bytes.Equal(data[:DiscriminatorLen], PriceUpdateDiscriminator[:])
}
