package account

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/feedctl/internal/wire"
)

func TestBodyStripsDiscriminator(t *testing.T) {
	data := append(wire.MustHex(PriceUpdateDiscriminatorHex), 0xaa, 0xbb)
	body, err := Body(data)
	if err != nil {
		t.Fatalf("body: %v", err)
	}
	if !bytes.Equal(body, []byte{0xaa, 0xbb}) {
		t.Fatalf("body mismatch: % x", body)
	}
}

func TestBodyShortAccount(t *testing.T) {
	if _, err := Body([]byte{0x22, 0xf1}); !errors.Is(err, ErrShortAccount) {
		t.Fatalf("expected ErrShortAccount, got %v", err)
	}
}

func TestHasPriceUpdateDiscriminator(t *testing.T) {
	if !HasPriceUpdateDiscriminator(wire.MustHex(PriceUpdateDiscriminatorHex)) {
		t.Fatalf("mainnet discriminator not recognized")
	}
	if HasPriceUpdateDiscriminator(wire.MustHex("22f1236300000000")) {
		t.Fatalf("message prefix must not match the update discriminator")
	}
	if HasPriceUpdateDiscriminator(nil) {
		t.Fatalf("empty data must not match")
	}
}

func TestIdentityName(t *testing.T) {
	name, ok := IdentityName(PythnetOracleProgram)
	if !ok || name != "pythnet-oracle-program" {
		t.Fatalf("identity name: got %q ok=%v", name, ok)
	}
	if _, ok := IdentityName([32]byte{1}); ok {
		t.Fatalf("unknown identity must not be labeled")
	}
}
