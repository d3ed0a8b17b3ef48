package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate truncates s to maxWidth, appending "…" if truncated.
// ANSI-aware: escape codes are not counted toward visual width and
// will not be broken by the truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Fit truncates or pads s so it occupies exactly width cells.
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// PadRight pads s with spaces to exactly width. If s is wider, returns s unchanged.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Indent prefixes s with depth levels of two-space indentation.
func Indent(s string, depth int) string {
	if depth <= 0 {
		return s
	}
	return strings.Repeat("  ", depth) + s
}

// Plain strips ANSI escape sequences.
func Plain(s string) string {
	return ansi.Strip(s)
}
