package selector

import (
	"testing"

	"github.com/dmoose/rsml/pkg/token"
)

func tok(k token.Kind, s string) token.Token { return token.Token{Kind: k, Slice: s} }

func TestBuilderDescendantSpacing(t *testing.T) {
	var b Builder
	b.Append(tok(token.Text, "Frame"))
	b.Append(tok(token.ScopeToChildren, ">"))
	b.Append(tok(token.Text, "Button"))
	if got := b.String(); got != "Frame > Button" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilderStateGluesNoSpace(t *testing.T) {
	var b Builder
	b.Append(tok(token.Text, "Button"))
	b.Append(tok(token.StateOrEnumOrColon, ":"))
	b.Append(tok(token.Text, "Hover"))
	if got := b.String(); got != "Button:Hover" {
		t.Fatalf("got %q", got)
	}
}

func TestBuilderCommaVerbatim(t *testing.T) {
	var b Builder
	b.Append(tok(token.Text, "Frame"))
	b.Append(tok(token.Comma, ","))
	b.Append(tok(token.Text, "Button"))
	if got := b.String(); got != "Frame, Button" {
		t.Fatalf("got %q", got)
	}
}
