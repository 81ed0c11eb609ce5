package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btc-keyforge/keyforge/internal/addrcodec"
	"github.com/btc-keyforge/keyforge/internal/basecodec"
	"github.com/btc-keyforge/keyforge/internal/bigint"
	"github.com/btc-keyforge/keyforge/internal/bip32"
	"github.com/btc-keyforge/keyforge/internal/bip39"
	"github.com/btc-keyforge/keyforge/internal/bip44"
	"github.com/btc-keyforge/keyforge/internal/hash"
	"github.com/btc-keyforge/keyforge/internal/secp256k1"
	"github.com/btc-keyforge/keyforge/internal/ui"
)

const version = "0.1"

func main() {
	ui.ClearScreen()
	ui.PrintWelcomeBanner(version)

	for {
		ui.PrintMainMenu()
		choice := ui.ReadLine("")
		fmt.Println()

		switch strings.ToLower(choice) {
		case "1":
			masterKeysMenu()
		case "2":
			childKeysMenu()
		case "3":
			baseConverterMenu()
		case "4":
			functionsMenu()
		case "q", "quit", "exit":
			return
		default:
			ui.PrintError("unknown choice: %s", choice)
		}
	}
}

// masterKeysMenu implements the Master keys top-level choice: entropy in,
// mnemonic/seed/master key/full BIP44+BIP84 wallets out.
func masterKeysMenu() {
	ui.PrintSectionHeader("MASTER KEYS")

	entropyHex, err := ui.ReadHex("32 bytes of entropy as hex (empty for random): ")
	if err != nil {
		ui.PrintError("%v", err)
		return
	}

	var entropy []byte
	if entropyHex == "" {
		entropy = make([]byte, 32)
		if _, err := rand.Read(entropy); err != nil {
			ui.PrintError("failed to generate random entropy: %v", err)
			return
		}
	} else {
		entropy, err = hex.DecodeString(entropyHex)
		if err != nil || len(entropy) != 32 {
			ui.PrintError("entropy must be exactly 32 bytes (64 hex characters)")
			return
		}
	}

	mnemonic, err := bip39.EntropyToMnemonic(entropy)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	passphrase := ui.ReadPassphrase("BIP-39 passphrase (optional, hidden): ")

	seed := bip39.SeedFromMnemonic(mnemonic, passphrase)

	master, err := bip32.NewMasterKey(seed)
	for err == bip32.ErrInvalidPrivateKey {
		ui.PrintError("derived master key out of range, retrying with fresh entropy")
		if _, rerr := rand.Read(entropy); rerr != nil {
			ui.PrintError("failed to generate random entropy: %v", rerr)
			return
		}
		mnemonic, _ = bip39.EntropyToMnemonic(entropy)
		seed = bip39.SeedFromMnemonic(mnemonic, passphrase)
		master, err = bip32.NewMasterKey(seed)
	}
	if err != nil {
		ui.PrintError("%v", err)
		return
	}

	checksum := entropyChecksumByte(entropy)
	ui.PrintLabel("Entropy", hex.EncodeToString(entropy))
	ui.PrintLabel("Checksum byte", fmt.Sprintf("%02x", checksum))
	ui.PrintLabel("Mnemonic", mnemonic)
	ui.PrintLabel("Seed", hex.EncodeToString(seed))
	ui.PrintLabel("Master private key", hex.EncodeToString(master.Private.BytesBigEndianPadded(32)))
	ui.PrintLabel("Master chain code", hex.EncodeToString(master.ChainCode[:]))

	xprv, err := master.SerializeExtendedPrivate()
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintLabel("Master xprv", xprv)

	printWallet(master, "BIP-44 (m/44'/0'/0'/0/i, P2PKH)", bip44.BIP44Wallet, func(k *bip32.Key) (string, error) {
		return addrcodec.EncodeP2PKH(k.Public[:]), nil
	})
	printWallet(master, "BIP-84 (m/84'/0'/0'/0/i, P2WPKH)", bip44.BIP84Wallet, func(k *bip32.Key) (string, error) {
		return addrcodec.EncodeP2WPKH(k.Public[:], "bc")
	})
}

func printWallet(master *bip32.Key, title string, derive func(*bip32.Key, uint32) ([]bip44.Address, error), encode func(*bip32.Key) (string, error)) {
	wallet, err := derive(master, 20)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintSectionHeader(title)
	for _, a := range wallet {
		addr, err := encode(a.Key)
		if err != nil {
			ui.PrintError("%v", err)
			continue
		}
		ui.PrintLabel(fmt.Sprintf("  [%d]", a.Index), addr)
	}
}

// childKeysMenu implements the Child keys top-level choice.
func childKeysMenu() {
	ui.PrintSectionHeader("CHILD KEYS")
	fmt.Printf("    %s[1]%s Normal child\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[2]%s Hardened child\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[3]%s Public-only child\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[4]%s Full HD path\n", ui.ColorCyan, ui.ColorReset)
	choice := ui.ReadLine("\n    → ")
	fmt.Println()

	parent, isPublicOnly, ok := readParentKey()
	if !ok {
		return
	}

	switch choice {
	case "1":
		idx, ok := ui.ReadUint32("child index (non-hardened): ")
		if !ok {
			ui.PrintError("index required")
			return
		}
		child, err := parent.NewChildKey(idx)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		printChildKey(child)
	case "2":
		if isPublicOnly {
			ui.PrintError("%v", bip32.ErrHardenedFromPublic)
			return
		}
		idx, ok := ui.ReadUint32("child index (0..2^31-1): ")
		if !ok {
			ui.PrintError("index required")
			return
		}
		child, err := parent.NewChildKey(idx + bip32.HardenedOffset)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		printChildKey(child)
	case "3":
		idx, ok := ui.ReadUint32("child index (non-hardened): ")
		if !ok {
			ui.PrintError("index required")
			return
		}
		child, err := parent.NewPublicChildKey(idx)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		printChildKey(child)
	case "4":
		path := ui.ReadLine("HD path (e.g. 44'/0'/0'/0/0): ")
		child, err := walkPath(parent, path)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		printChildKey(child)
	default:
		ui.PrintError("unknown choice: %s", choice)
	}
}

// readParentKey asks for the parent node to derive from: either a private
// key plus chain code (full derivation available) or a public key plus
// chain code (non-hardened derivation only).
func readParentKey() (key *bip32.Key, isPublicOnly bool, ok bool) {
	chainCodeHex := ui.ReadLine("parent chain code (32 bytes hex): ")
	chainCode, err := hex.DecodeString(chainCodeHex)
	if err != nil || len(chainCode) != 32 {
		ui.PrintError("chain code must be exactly 32 bytes (64 hex characters)")
		return nil, false, false
	}

	privHex := ui.ReadLine("parent private key (32 bytes hex, empty if public-only): ")
	if privHex != "" {
		privBytes, err := hex.DecodeString(privHex)
		if err != nil || len(privBytes) != 32 {
			ui.PrintError("private key must be exactly 32 bytes (64 hex characters)")
			return nil, false, false
		}
		priv := bigint.FromBytesBigEndian(privBytes)
		point := secp256k1.ScalarMul(priv, secp256k1.G)
		k := &bip32.Key{Private: &priv, Public: secp256k1.Compress(point)}
		copy(k.ChainCode[:], chainCode)
		return k, false, true
	}

	pubHex := ui.ReadLine("parent public key (33 bytes hex): ")
	pubBytes, err := hex.DecodeString(pubHex)
	if err != nil || len(pubBytes) != 33 {
		ui.PrintError("public key must be exactly 33 bytes (66 hex characters)")
		return nil, false, false
	}
	k := &bip32.Key{}
	copy(k.Public[:], pubBytes)
	copy(k.ChainCode[:], chainCode)
	return k, true, true
}

func walkPath(key *bip32.Key, path string) (*bip32.Key, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	cur := key
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		hardened := strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H")
		numStr := strings.TrimRight(seg, "'hH")
		n, err := strconv.ParseUint(numStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", seg, err)
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.HardenedOffset
		}
		cur, err = cur.NewChildKey(idx)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func printChildKey(k *bip32.Key) {
	ui.PrintLabel("Depth", fmt.Sprintf("%d", k.Depth))
	ui.PrintLabel("Child index", fmt.Sprintf("%d", k.ChildIndex))
	if k.Private != nil {
		ui.PrintLabel("Private key", hex.EncodeToString(k.Private.BytesBigEndianPadded(32)))
		if xprv, err := k.SerializeExtendedPrivate(); err == nil {
			ui.PrintLabel("xprv", xprv)
		}
	}
	ui.PrintLabel("Public key", hex.EncodeToString(k.Public[:]))
	if xpub, err := k.SerializeExtendedPublic(); err == nil {
		ui.PrintLabel("xpub", xpub)
	}
	ui.PrintLabel("P2PKH address", addrcodec.EncodeP2PKH(k.Public[:]))
	if addr, err := addrcodec.EncodeP2WPKH(k.Public[:], "bc"); err == nil {
		ui.PrintLabel("P2WPKH address", addr)
	}
}

// baseConverterMenu implements the Base converter top-level choice.
func baseConverterMenu() {
	ui.PrintSectionHeader("BASE CONVERTER")
	number := ui.ReadLine("number: ")
	srcBase, err := ui.ReadBase("source base (2-64): ")
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	alphabet, err := basecodec.AlphabetForBase(srcBase)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	value, err := basecodec.Decode(number, srcBase, alphabet)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}

	for base := 2; base <= 64; base++ {
		dstAlphabet, err := basecodec.AlphabetForBase(base)
		if err != nil {
			continue
		}
		rendered, err := basecodec.Encode(value, base, dstAlphabet)
		if err != nil {
			continue
		}
		ui.PrintLabel(fmt.Sprintf("base %2d", base), rendered)
	}
}

// functionsMenu implements the Functions top-level choice.
func functionsMenu() {
	ui.PrintSectionHeader("FUNCTIONS")
	fmt.Printf("    %s[1]%s Public key → address\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[2]%s Validate mnemonic checksum\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[3]%s WIF ↔ private key\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[4]%s secp256k1 point arithmetic\n", ui.ColorCyan, ui.ColorReset)
	choice := ui.ReadLine("\n    → ")
	fmt.Println()

	switch choice {
	case "1":
		pubHex := ui.ReadLine("compressed public key (33 bytes hex): ")
		pub, err := hex.DecodeString(pubHex)
		if err != nil || len(pub) != 33 {
			ui.PrintError("public key must be exactly 33 bytes (66 hex characters)")
			return
		}
		ui.PrintLabel("P2PKH", addrcodec.EncodeP2PKH(pub))
		if addr, err := addrcodec.EncodeP2WPKH(pub, "bc"); err == nil {
			ui.PrintLabel("P2WPKH", addr)
		}
	case "2":
		mnemonic := ui.ReadLine("mnemonic (24 words): ")
		entropy, valid, err := bip39.MnemonicToEntropy(mnemonic)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		ui.PrintLabel("Entropy", hex.EncodeToString(entropy))
		words := strings.Fields(mnemonic)
		lastIdx, _ := bip39.IndexOf(words[len(words)-1])
		ui.PrintLabel("Asserted checksum byte", fmt.Sprintf("%02x", byte(lastIdx)))
		ui.PrintLabel("Recomputed checksum byte", fmt.Sprintf("%02x", entropyChecksumByte(entropy)))
		if valid {
			ui.PrintSuccess("checksum valid")
		} else {
			ui.PrintError("checksum invalid")
		}
	case "3":
		wifOrHex := ui.ReadLine("WIF string, or 32-byte private key hex to encode: ")
		if priv, compressed, err := addrcodec.DecodeWIF(wifOrHex); err == nil {
			ui.PrintLabel("Private key", hex.EncodeToString(priv))
			ui.PrintLabel("Compressed", fmt.Sprintf("%v", compressed))
			return
		}
		priv, err := hex.DecodeString(wifOrHex)
		if err != nil || len(priv) != 32 {
			ui.PrintError("not a valid WIF string or 32-byte private key hex")
			return
		}
		compressed := ui.Confirm("compressed")
		wif, err := addrcodec.EncodeWIF(priv, compressed)
		if err != nil {
			ui.PrintError("%v", err)
			return
		}
		ui.PrintLabel("WIF", wif)
	case "4":
		secpMenu()
	default:
		ui.PrintError("unknown choice: %s", choice)
	}
}

func secpMenu() {
	fmt.Printf("    %s[1]%s Add two points\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[2]%s Double a point\n", ui.ColorCyan, ui.ColorReset)
	fmt.Printf("    %s[3]%s Scalar multiply a point by a scalar\n", ui.ColorCyan, ui.ColorReset)
	choice := ui.ReadLine("\n    → ")
	fmt.Println()

	switch choice {
	case "1":
		p, ok := readPoint("first point")
		if !ok {
			return
		}
		q, ok := readPoint("second point")
		if !ok {
			return
		}
		printPoint(secp256k1.Add(p, q))
	case "2":
		p, ok := readPoint("point")
		if !ok {
			return
		}
		printPoint(secp256k1.Double(p))
	case "3":
		p, ok := readPoint("point")
		if !ok {
			return
		}
		scalarHex := ui.ReadLine("scalar (hex): ")
		scalarBytes, err := hex.DecodeString(scalarHex)
		if err != nil {
			ui.PrintError("invalid scalar hex")
			return
		}
		scalar := bigint.FromBytesBigEndian(scalarBytes)
		printPoint(secp256k1.ScalarMul(scalar, p))
	default:
		ui.PrintError("unknown choice: %s", choice)
	}
}

func readPoint(label string) (secp256k1.Point, bool) {
	xHex := ui.ReadLine(label + " x (hex, empty for generator G): ")
	if xHex == "" {
		return secp256k1.G, true
	}
	yHex := ui.ReadLine(label + " y (hex): ")
	xBytes, errX := hex.DecodeString(xHex)
	yBytes, errY := hex.DecodeString(yHex)
	if errX != nil || errY != nil {
		ui.PrintError("invalid point coordinates")
		return secp256k1.Point{}, false
	}
	p := secp256k1.Point{X: bigint.FromBytesBigEndian(xBytes), Y: bigint.FromBytesBigEndian(yBytes)}
	if !secp256k1.OnCurve(p) {
		ui.PrintError("point is not on the curve")
		return secp256k1.Point{}, false
	}
	return p, true
}

func printPoint(p secp256k1.Point) {
	if p.IsInfinity() {
		ui.PrintLabel("Result", "point at infinity")
		return
	}
	ui.PrintLabel("x", hex.EncodeToString(p.X.BytesBigEndian()))
	ui.PrintLabel("y", hex.EncodeToString(p.Y.BytesBigEndian()))
	ui.PrintLabel("compressed", hex.EncodeToString(secp256k1.Compress(p)[:]))
}

// entropyChecksumByte recomputes the BIP-39 checksum byte shown to the user
// alongside the raw entropy; EntropyToMnemonic already embeds it in the
// mnemonic's word indices.
func entropyChecksumByte(entropy []byte) byte {
	sum := hash.SHA256(entropy)
	return sum[0]
}
