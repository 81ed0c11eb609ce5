package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/ripemd160"
)

func TestSHA256Vectors(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		got := SHA256([]byte(c.msg))
		if hex.EncodeToString(got[:]) != c.want {
			t.Fatalf("SHA256(%q) = %x, want %s", c.msg, got, c.want)
		}
	}
}

func TestSHA256AgainstStdlib(t *testing.T) {
	msgs := []string{"", "abc", "the quick brown fox jumps over the lazy dog", string(make([]byte, 200))}
	for _, m := range msgs {
		got := SHA256([]byte(m))
		want := sha256.Sum256([]byte(m))
		if got != want {
			t.Fatalf("SHA256(%q) = %x, want %x", m, got, want)
		}
	}
}

func TestSHA512AgainstStdlib(t *testing.T) {
	msgs := []string{"", "abc", "the quick brown fox jumps over the lazy dog", string(make([]byte, 300))}
	for _, m := range msgs {
		got := SHA512([]byte(m))
		want := sha512.Sum512([]byte(m))
		if got != want {
			t.Fatalf("SHA512(%q) = %x, want %x", m, got, want)
		}
	}
}

func TestRIPEMD160AgainstXCrypto(t *testing.T) {
	msgs := []string{"", "abc", "message digest", "the quick brown fox jumps over the lazy dog"}
	for _, m := range msgs {
		got := RIPEMD160([]byte(m))

		h := ripemd160.New()
		h.Write([]byte(m))
		want := h.Sum(nil)

		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Fatalf("RIPEMD160(%q) = %x, want %x", m, got, want)
		}
	}
}

func TestRIPEMD160EmptyVector(t *testing.T) {
	got := RIPEMD160(nil)
	want := "9c1185a5c5e9fc54612808977ee8f548b2258d31"[:40]
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("RIPEMD160(\"\") = %x, want %s", got, want)
	}
}

func TestHMACSHA512AgainstStdlib(t *testing.T) {
	keys := [][]byte{[]byte("key"), make([]byte, 200), []byte("")}
	msgs := [][]byte{[]byte("The quick brown fox jumps over the lazy dog"), []byte(""), []byte("mnemonic")}

	for _, k := range keys {
		for _, m := range msgs {
			got := HMACSHA512(k, m)

			mac := hmac.New(sha512.New, k)
			mac.Write(m)
			want := mac.Sum(nil)

			if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
				t.Fatalf("HMACSHA512(%x,%x) = %x, want %x", k, m, got, want)
			}
		}
	}
}

func TestPBKDF2KnownLength(t *testing.T) {
	out := PBKDF2HMACSHA512([]byte("password"), []byte("mnemonicsalt"), 2048, 64)
	if len(out) != 64 {
		t.Fatalf("PBKDF2HMACSHA512 returned %d bytes, want 64", len(out))
	}

	out2 := PBKDF2HMACSHA512([]byte("password"), []byte("mnemonicsalt"), 2048, 64)
	if hex.EncodeToString(out) != hex.EncodeToString(out2) {
		t.Fatal("PBKDF2HMACSHA512 is not deterministic")
	}

	diff := PBKDF2HMACSHA512([]byte("password2"), []byte("mnemonicsalt"), 2048, 64)
	if hex.EncodeToString(out) == hex.EncodeToString(diff) {
		t.Fatal("PBKDF2HMACSHA512 produced identical output for different passwords")
	}
}
