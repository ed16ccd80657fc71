package formatter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownStyle is the glamour style used for chat replies. Tests and
// non-interactive output switch it to "notty".
var MarkdownStyle = "dark"

// RenderMarkdown renders md for a terminal of the given width. When the
// renderer fails the raw text is returned.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(MarkdownStyle),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
