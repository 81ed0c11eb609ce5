// Package ui implements the terminal presentation layer for the keyforge
// driver: colored banners, menu text, and line-buffered input including
// masked passphrase entry. Nothing in this package touches the
// cryptographic core; it only formats and reads.
package ui

import "fmt"

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// ClearScreen clears the terminal.
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}

// PrintWelcomeBanner shows the welcome screen.
func PrintWelcomeBanner(version string) {
	fmt.Println()
	fmt.Printf("%s%s", ColorCyan, ColorBold)
	fmt.Println("  ╔══════════════════════════════════════════════════════════╗")
	fmt.Println("  ║  ██╗  ██╗███████╗██╗   ██╗███████╗ ██████╗ ██████╗  ██████╗ ║")
	fmt.Println("  ║  ██║ ██╔╝██╔════╝╚██╗ ██╔╝██╔════╝██╔═══██╗██╔══██╗██╔════╝ ║")
	fmt.Println("  ║  █████╔╝ █████╗   ╚████╔╝ █████╗  ██║   ██║██████╔╝██║  ███╗║")
	fmt.Println("  ║  ██╔═██╗ ██╔══╝    ╚██╔╝  ██╔══╝  ██║   ██║██╔══██╗██║   ██║║")
	fmt.Println("  ║  ██║  ██╗███████╗   ██║   ██║     ╚██████╔╝██║  ██║╚██████╔╝║")
	fmt.Println("  ║  ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ║")
	fmt.Println("  ╠══════════════════════════════════════════════════════════╣")
	fmt.Printf("  ║%s     Bitcoin HD wallet toolkit %s• v%s%s                        ║\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Println("  ╚══════════════════════════════════════════════════════════╝")
	fmt.Print(ColorReset)
	fmt.Println()
}

// PrintMainMenu shows the four top-level choices.
func PrintMainMenu() {
	fmt.Printf("    %s🔑 MAIN MENU%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Printf("    %s[1]%s Master keys\n", ColorCyan, ColorReset)
	fmt.Printf("    %s[2]%s Child keys\n", ColorCyan, ColorReset)
	fmt.Printf("    %s[3]%s Base converter\n", ColorCyan, ColorReset)
	fmt.Printf("    %s[4]%s Functions\n", ColorCyan, ColorReset)
	fmt.Printf("    %s[Q]%s Quit\n", ColorCyan, ColorReset)
	fmt.Printf("\n    %s→%s ", ColorGreen, ColorReset)
}

// PrintSectionHeader prints a menu-section title.
func PrintSectionHeader(title string) {
	fmt.Printf("\n    %s%s%s%s\n", ColorPurple, ColorBold, title, ColorReset)
}

// PrintLabel prints a "label: value" line.
func PrintLabel(label, value string) {
	fmt.Printf("    %s%s%s: %s%s%s\n", ColorCyan, label, ColorReset, ColorGreen, value, ColorReset)
}

// PrintError prints a message in the error color.
func PrintError(format string, args ...any) {
	fmt.Printf("    %s⚠ %s%s\n", ColorRed, fmt.Sprintf(format, args...), ColorReset)
}

// PrintSuccess prints a message in the success color.
func PrintSuccess(format string, args ...any) {
	fmt.Printf("    %s✓ %s%s\n", ColorGreen, fmt.Sprintf(format, args...), ColorReset)
}

// ClearLine clears the current line.
func ClearLine() {
	fmt.Print("\r                                                                                              \r")
}

// WaitForExit waits for the user to press Enter before exiting.
func WaitForExit() {
	fmt.Printf("\n    %sPress Enter to exit...%s", ColorDim, ColorReset)
	var input string
	fmt.Scanln(&input)
}
