package bip32

import (
	"testing"

	"github.com/btc-keyforge/keyforge/internal/bip39"
)

func TestMasterKeyZeroVector(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	seed := bip39.SeedFromMnemonic(mnemonic, "")

	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	xprv, err := master.SerializeExtendedPrivate()
	if err != nil {
		t.Fatalf("SerializeExtendedPrivate: %v", err)
	}
	want := "xprv9s21ZrQH143K4VHfAaPWRTm4aoHAZhJHunsZZTQptR82FSTZRjBGXBP8kQKHrUVUE8vMM2Z3h7UoG9x9XCt9FHQ1t1nHU7zQDqrEszAg28q"
	if xprv != want {
		t.Fatalf("master xprv = %s, want %s", xprv, want)
	}
}

func TestNormalChildPrivatePublicAgree(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	seed := bip39.SeedFromMnemonic(mnemonic, "")
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	for _, idx := range []uint32{0, 1, 5, 100} {
		viaPrivate, err := master.NewChildKey(idx)
		if err != nil {
			t.Fatalf("NewChildKey(%d): %v", idx, err)
		}
		viaPublic, err := master.NewPublicChildKey(idx)
		if err != nil {
			t.Fatalf("NewPublicChildKey(%d): %v", idx, err)
		}
		if viaPrivate.Public != viaPublic.Public {
			t.Fatalf("index %d: private-derived pubkey %x != public-derived pubkey %x",
				idx, viaPrivate.Public, viaPublic.Public)
		}
	}
}

func TestHardenedChildRequiresPrivateKey(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	seed := bip39.SeedFromMnemonic(mnemonic, "")
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	hardened, err := master.NewChildKey(HardenedOffset)
	if err != nil {
		t.Fatalf("NewChildKey(hardened): %v", err)
	}

	publicOnly := &Key{Public: hardened.Public, ChainCode: hardened.ChainCode}
	if _, err := publicOnly.NewChildKey(HardenedOffset); err != ErrHardenedFromPublic {
		t.Fatalf("got err %v, want ErrHardenedFromPublic", err)
	}
	if _, err := publicOnly.NewPublicChildKey(HardenedOffset); err != ErrHardenedFromPublic {
		t.Fatalf("got err %v, want ErrHardenedFromPublic", err)
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	seed := bip39.SeedFromMnemonic(mnemonic, "")
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	child, err := master.NewChildKey(0)
	if err != nil {
		t.Fatalf("NewChildKey: %v", err)
	}
	if child.ParentFingerprint != master.Fingerprint() {
		t.Fatalf("child.ParentFingerprint = %x, want %x", child.ParentFingerprint, master.Fingerprint())
	}
}
