package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// visibleWidth measures the on-screen width of a string, ignoring ANSI
// escape sequences.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if visibleWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func centerContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	padded := make([]string, 0, maxInt(height, len(lines)))

	topPad := maxInt((height-len(lines))/2, 0)
	for i := 0; i < topPad; i++ {
		padded = append(padded, "")
	}
	for _, line := range lines {
		gap := maxInt((width-visibleWidth(line))/2, 0)
		padded = append(padded, strings.Repeat(" ", gap)+line)
	}
	for len(padded) < height {
		padded = append(padded, "")
	}
	return strings.Join(padded, "\n")
}

// roundingUnit picks a display granularity so short requests keep
// sub-millisecond detail and long ones stay readable.
func roundingUnit(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return time.Microsecond
	}
	if d < time.Second {
		return time.Millisecond / 10
	}
	return time.Millisecond * 10
}
