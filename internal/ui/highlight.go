package ui

import (
	"strings"

	"github.com/alecthomas/chroma/quick"
)

const highlightStyle = "dracula"

// highlightJSON renders the document with terminal colors, falling back to
// the plain text when the highlighter rejects it.
func highlightJSON(text string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, text, "json", "terminal256", highlightStyle); err != nil {
		return text
	}
	return buf.String()
}
