package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/tailquest/internal/utilities"
	"github.com/charmbracelet/lipgloss"
)

var dashedBorder = lipgloss.Border{
	Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
}

// PreviewStyle approximates CSS declarations with a lipgloss style.
// One rem is one row vertically and two columns horizontally.
// maxWidth bounds percentage widths.
func PreviewStyle(decls []utilities.Declaration, maxWidth int) lipgloss.Style {
	st := lipgloss.NewStyle()
	var (
		borderWidth float64
		borderStyle = "solid"
		rounded     bool
		borderColor string
		flex        bool
		justify     string
		alignItems  string
	)

	for _, d := range decls {
		v := d.Value
		switch d.Property {
		case "background-color":
			st = st.Background(lipgloss.Color(v))
		case "color":
			st = st.Foreground(lipgloss.Color(v))
		case "font-weight":
			if n, err := strconv.Atoi(v); err == nil && n >= 600 {
				st = st.Bold(true)
			}
		case "font-style":
			st = st.Italic(v == "italic")
		case "text-decoration-line":
			st = st.Underline(v == "underline")
		case "text-align":
			st = st.Align(horizontal(v))
		case "padding":
			st = st.Padding(rows(v), cols(v))
		case "padding-top":
			st = st.PaddingTop(rows(v))
		case "padding-bottom":
			st = st.PaddingBottom(rows(v))
		case "padding-left":
			st = st.PaddingLeft(cols(v))
		case "padding-right":
			st = st.PaddingRight(cols(v))
		case "margin":
			st = st.Margin(rows(v), cols(v))
		case "margin-top":
			st = st.MarginTop(rows(v))
		case "margin-bottom":
			st = st.MarginBottom(rows(v))
		case "margin-left":
			st = st.MarginLeft(cols(v))
		case "margin-right":
			st = st.MarginRight(cols(v))
		case "border-width":
			borderWidth = rem(v)
		case "border-style":
			borderStyle = v
		case "border-color":
			borderColor = v
		case "border-radius":
			rounded = rem(v) > 0
		case "width":
			if v == "100%" || v == "100vw" {
				st = st.Width(maxWidth)
			} else if w := cols(v); w > 0 {
				st = st.Width(min(w, maxWidth))
			}
		case "height":
			if h := rows(v); h > 0 {
				st = st.Height(h)
			}
		case "display":
			flex = v == "flex" || v == "inline-flex"
		case "justify-content":
			justify = v
		case "align-items":
			alignItems = v
		}
	}

	if borderWidth > 0 && borderStyle != "none" {
		b := lipgloss.NormalBorder()
		switch {
		case borderStyle == "dashed" || borderStyle == "dotted":
			b = dashedBorder
		case borderWidth >= 0.25 || borderStyle == "double":
			b = lipgloss.ThickBorder()
			if borderStyle == "double" {
				b = lipgloss.DoubleBorder()
			}
		case rounded:
			b = lipgloss.RoundedBorder()
		}
		st = st.Border(b)
		if borderColor != "" {
			st = st.BorderForeground(lipgloss.Color(borderColor))
		}
	}
	if flex {
		if justify != "" {
			st = st.Align(horizontal(justify))
		}
		if alignItems == "center" {
			st = st.AlignVertical(lipgloss.Center)
		}
	}
	return st
}

// RenderPreview draws content styled by a class list, listing classes the
// sheet does not know.
func RenderPreview(sheet *utilities.Sheet, content, classList string, maxWidth int) string {
	if content == "" {
		content = "Preview"
	}
	if sheet == nil {
		return content
	}
	decls, unknown := sheet.Resolve(classList)
	out := PreviewStyle(decls, maxWidth).Render(content)
	if len(unknown) > 0 {
		out += "\n" + StyleYellow.Render("unknown: "+strings.Join(unknown, " "))
	}
	return out
}

func horizontal(v string) lipgloss.Position {
	switch v {
	case "center", "space-around", "space-evenly":
		return lipgloss.Center
	case "right", "flex-end", "end":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// rem converts a CSS length to rem. Unknown units count as zero.
func rem(v string) float64 {
	v = strings.TrimSpace(v)
	switch {
	case strings.HasSuffix(v, "rem"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(v, "rem"), 64)
		return f
	case strings.HasSuffix(v, "px"):
		f, _ := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		return f / 16
	}
	return 0
}

func rows(v string) int { return int(math.Round(rem(v))) }
func cols(v string) int { return int(math.Round(rem(v) * 2)) }
