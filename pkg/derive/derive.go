// Package derive implements the derive resolver of spec component G: a
// lightweight scan that collects the set of sibling file stems named by
// "@derive" declarations, in first-seen order with duplicates folded.
package derive

import (
	"strings"

	"github.com/dmoose/rsml/pkg/token"
)

// Collect scans src for every "@derive" declaration and returns the
// unquoted, ordered-unique set of derived file stems it names. Both the
// bare single-string form ("@derive \"a\"") and the parenthesized list
// form ("@derive(\"a\", \"b\")") are accepted (supplement 10); the
// resolver never inspects properties or attributes.
func Collect(src string) []string {
	l := token.New(src)
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for {
		tok := l.Next()
		if tok.Kind == token.EOF {
			return out
		}
		if tok.Kind != token.KwDerive {
			continue
		}
		next := l.Next()
		if next.Kind == token.StringSingle {
			add(unquote(next.Slice))
			continue
		}
		if next.Kind != token.LParen {
			continue
		}
		depth := 1
		for depth > 0 {
			t := l.Next()
			switch t.Kind {
			case token.EOF:
				depth = 0
			case token.LParen:
				depth++
			case token.RParen:
				depth--
			case token.StringSingle:
				add(unquote(t.Slice))
			}
		}
	}
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimPrefix(s, `'`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSuffix(s, `'`)
	return s
}

// Filename normalizes a derived stem to its on-disk filename, adding the
// ".rsml" extension if the caller hasn't already supplied one (§6.2).
func Filename(stem string) string {
	if strings.HasSuffix(stem, ".rsml") {
		return stem
	}
	return stem + ".rsml"
}
