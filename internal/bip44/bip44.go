// Package bip44 expands a master key into the receiving-address wallets
// described by BIP-44 (m/44'/0'/0'/0/i) and BIP-84 (m/84'/0'/0'/0/i),
// covering legacy P2PKH and native SegWit P2WPKH wallets respectively.
package bip44

import (
	"github.com/btc-keyforge/keyforge/internal/bip32"
)

const (
	hardened = bip32.HardenedOffset

	purposeBIP44 = 44
	purposeBIP84 = 84

	coinTypeBitcoin = 0
	account         = 0
	chainExternal   = 0
)

// Address pairs a derived key with its index on the external chain.
type Address struct {
	Index uint32
	Key   *bip32.Key
}

// DeriveAccountKey walks m/purpose'/coinType'/account'/chain from master,
// the hardened prefix shared by both BIP-44 and BIP-84.
func DeriveAccountKey(master *bip32.Key, purpose uint32) (*bip32.Key, error) {
	k, err := master.NewChildKey(purpose + hardened)
	if err != nil {
		return nil, err
	}
	k, err = k.NewChildKey(coinTypeBitcoin + hardened)
	if err != nil {
		return nil, err
	}
	k, err = k.NewChildKey(account + hardened)
	if err != nil {
		return nil, err
	}
	return k.NewChildKey(chainExternal)
}

// DeriveReceivingWallet expands the external chain key into count
// sequential receiving addresses m/.../0/0 .. m/.../0/(count-1).
func DeriveReceivingWallet(externalChainKey *bip32.Key, count uint32) ([]Address, error) {
	addrs := make([]Address, 0, count)
	for i := uint32(0); i < count; i++ {
		child, err := externalChainKey.NewChildKey(i)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, Address{Index: i, Key: child})
	}
	return addrs, nil
}

// BIP44Wallet derives the first count legacy (P2PKH) receiving addresses
// along m/44'/0'/0'/0/i.
func BIP44Wallet(master *bip32.Key, count uint32) ([]Address, error) {
	externalChain, err := DeriveAccountKey(master, purposeBIP44)
	if err != nil {
		return nil, err
	}
	return DeriveReceivingWallet(externalChain, count)
}

// BIP84Wallet derives the first count native SegWit (P2WPKH) receiving
// addresses along m/84'/0'/0'/0/i.
func BIP84Wallet(master *bip32.Key, count uint32) ([]Address, error) {
	externalChain, err := DeriveAccountKey(master, purposeBIP84)
	if err != nil {
		return nil, err
	}
	return DeriveReceivingWallet(externalChain, count)
}
