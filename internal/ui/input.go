package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Reader wraps a buffered stdin reader shared by every prompt helper.
var Reader = bufio.NewReader(os.Stdin)

// ReadLine reads one line from stdin and trims surrounding whitespace.
func ReadLine(prompt string) string {
	fmt.Printf("    %s%s%s", ColorCyan, prompt, ColorReset)
	line, _ := Reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadHex prompts for a hex string, returning empty when the line is blank
// so the caller can substitute a random value.
func ReadHex(prompt string) (string, error) {
	s := ReadLine(prompt)
	if s == "" {
		return "", nil
	}
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if !isValidHex(s) {
		return "", fmt.Errorf("invalid hex string")
	}
	return s, nil
}

// ReadPassphrase reads a passphrase without echoing it to the terminal.
// It falls back to a plain line read when stdin is not a terminal (e.g.
// when input is piped), since term.ReadPassword requires a TTY.
func ReadPassphrase(prompt string) string {
	fmt.Printf("    %s%s%s", ColorCyan, prompt, ColorReset)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	line, _ := Reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadUint32 reads a decimal integer in [0, 2^32). A malformed line prints
// an error and returns ok=false; it does not re-prompt. An empty line
// returns ok=false so callers can treat it as "use the default".
func ReadUint32(prompt string) (value uint32, ok bool) {
	s := ReadLine(prompt)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		PrintError("not a valid non-negative integer: %s", s)
		return 0, false
	}
	return uint32(v), true
}

// ReadBase reads a base in [2, 64].
func ReadBase(prompt string) (int, error) {
	s := ReadLine(prompt)
	base, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a valid integer: %s", s)
	}
	if base < 2 || base > 64 {
		return 0, fmt.Errorf("base must be in [2, 64], got %d", base)
	}
	return base, nil
}

// Confirm asks a yes/no question, defaulting to no on empty input.
func Confirm(prompt string) bool {
	s := strings.ToLower(ReadLine(prompt + " [y/N]: "))
	return s == "y" || s == "yes"
}

// isValidHex reports whether s contains only hex digits.
func isValidHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
