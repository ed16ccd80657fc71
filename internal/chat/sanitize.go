package chat

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// droppedElements are removed together with their content.
var droppedElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Frame:    true,
	atom.Frameset: true,
	atom.Object:   true,
	atom.Embed:    true,
}

// voidDropped have no content to skip.
var voidDropped = map[atom.Atom]bool{
	atom.Embed: true,
	atom.Frame: true,
}

// allowedElements are kept without attributes. Anchors are handled apart.
var allowedElements = map[atom.Atom]bool{
	atom.B: true, atom.Strong: true, atom.I: true, atom.Em: true,
	atom.Code: true, atom.Pre: true, atom.Br: true, atom.P: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.Blockquote: true,
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

// Sanitize strips markup from a webhook reply down to a small safe subset.
// Markdown syntax in plain text passes through untouched.
func Sanitize(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	var skip atom.Atom
	depth := 0
	var anchors []bool

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return b.String()
			}
			break
		}
		tok := z.Token()

		if depth > 0 {
			switch {
			case tt == html.StartTagToken && tok.DataAtom == skip:
				depth++
			case tt == html.EndTagToken && tok.DataAtom == skip:
				depth--
			}
			continue
		}

		switch tt {
		case html.TextToken:
			textEscaper.WriteString(&b, tok.Data)
		case html.StartTagToken, html.SelfClosingTagToken:
			switch {
			case droppedElements[tok.DataAtom]:
				if tt == html.StartTagToken && !voidDropped[tok.DataAtom] {
					skip = tok.DataAtom
					depth = 1
				}
			case tok.DataAtom == atom.A:
				if tt == html.SelfClosingTagToken {
					break
				}
				href, ok := safeHref(tok.Attr)
				if ok {
					b.WriteString(`<a href="`)
					b.WriteString(html.EscapeString(href))
					b.WriteString(`">`)
				}
				anchors = append(anchors, ok)
			case allowedElements[tok.DataAtom]:
				b.WriteString("<" + tok.DataAtom.String() + ">")
			}
		case html.EndTagToken:
			switch {
			case tok.DataAtom == atom.A:
				if n := len(anchors); n > 0 {
					if anchors[n-1] {
						b.WriteString("</a>")
					}
					anchors = anchors[:n-1]
				}
			case allowedElements[tok.DataAtom] && tok.DataAtom != atom.Br:
				b.WriteString("</" + tok.DataAtom.String() + ">")
			}
		}
	}
	return b.String()
}

func safeHref(attrs []html.Attribute) (string, bool) {
	for _, a := range attrs {
		if a.Namespace != "" || a.Key != "href" {
			continue
		}
		u, err := url.Parse(strings.TrimSpace(a.Val))
		if err != nil {
			return "", false
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", false
		}
		return u.String(), true
	}
	return "", false
}
