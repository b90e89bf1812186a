package terminal

import (
	"os"
	"strings"
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// NO_COLOR wins over everything (https://no-color.org)
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeMono
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// Terminal-specific env vars set by known true color emulators
	for _, v := range []string{
		"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	if term == "dumb" || term == "" {
		return ColorModeMono
	}

	return ColorMode256
}
