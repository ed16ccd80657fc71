// Package utilities maps utility class names to the CSS declarations they
// stand for, so previews can show what a class list actually does.
package utilities

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

//go:embed utilities.css
var defaultSheet []byte

// Declaration is one property: value pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Sheet is a parsed set of single-class rules.
type Sheet struct {
	rules map[string][]Declaration
	order []string
}

var (
	defaultOnce sync.Once
	defaultErr  error
	defaultSh   *Sheet
)

// Default returns the embedded utility sheet, parsed once.
func Default() (*Sheet, error) {
	defaultOnce.Do(func() {
		defaultSh, defaultErr = Parse(defaultSheet)
	})
	return defaultSh, defaultErr
}

// Parse reads a stylesheet made of `.class { ... }` rules. Rules with any
// other selector shape and all at-rules are skipped.
func Parse(data []byte) (*Sheet, error) {
	sh := &Sheet{rules: map[string][]Declaration{}}
	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parsing utility sheet: %w", err)
			}
			return sh, nil
		case css.BeginAtRuleGrammar:
			skipBlock(p)
		case css.BeginRulesetGrammar:
			class, ok := classSelector(data, p.Values())
			decls := parseDeclarations(p)
			if !ok {
				continue
			}
			if _, seen := sh.rules[class]; !seen {
				sh.order = append(sh.order, class)
			}
			sh.rules[class] = append(sh.rules[class], decls...)
		}
	}
}

// classSelector accepts exactly one simple class selector.
func classSelector(data []byte, values []css.Token) (string, bool) {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	sel := strings.TrimSpace(sb.String())
	if !strings.HasPrefix(sel, ".") || strings.ContainsAny(sel[1:], " ,.:>+~[#") {
		return "", false
	}
	return sel[1:], len(sel) > 1
}

func parseDeclarations(p *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar:
			if v := joinValue(p.Values()); v != "" {
				decls = append(decls, Declaration{Property: strings.ToLower(string(data)), Value: v})
			}
		}
	}
}

func joinValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func skipBlock(p *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// Lookup returns the declarations for class.
func (s *Sheet) Lookup(class string) ([]Declaration, bool) {
	decls, ok := s.rules[class]
	if !ok {
		return nil, false
	}
	return append([]Declaration(nil), decls...), true
}

// Has reports whether class is defined.
func (s *Sheet) Has(class string) bool {
	_, ok := s.rules[class]
	return ok
}

// Classes returns every defined class in sheet order.
func (s *Sheet) Classes() []string {
	return append([]string(nil), s.order...)
}

// Resolve expands a space separated class list. Later declarations of the
// same property replace earlier ones in place. Unknown classes are returned
// separately in input order.
func (s *Sheet) Resolve(classList string) ([]Declaration, []string) {
	var (
		decls   []Declaration
		unknown []string
		index   = map[string]int{}
	)
	for _, class := range strings.Fields(classList) {
		found, ok := s.rules[class]
		if !ok {
			unknown = append(unknown, class)
			continue
		}
		for _, d := range found {
			if i, dup := index[d.Property]; dup {
				decls[i] = d
				continue
			}
			index[d.Property] = len(decls)
			decls = append(decls, d)
		}
	}
	return decls, unknown
}
