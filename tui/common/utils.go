package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to at most width display cells, appending an
// ellipsis when anything was cut. Styled input is measured without its
// escape sequences.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return ansi.Truncate(s, width-1, "") + "…"
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
