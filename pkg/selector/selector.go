// Package selector builds up CSS-like selector text from a token stream.
package selector

import (
	"strings"

	"github.com/dmoose/rsml/pkg/token"
)

// Builder incrementally accumulates selector text, inserting spacing the
// way a human would type a descendant/child/compound selector.
type Builder struct {
	sb   strings.Builder
	prev token.Kind
	any  bool
}

// Append adds the slice of tok to the selector, inserting a single space
// before it when the previous token was a combinator, a bare identifier,
// or a comma, unless the incoming token is itself a comma or a state/enum
// identifier (":Hover" glues to its subject with no space).
func (b *Builder) Append(tok token.Token) {
	if b.any && b.needsSpace(tok.Kind) {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(tok.Slice)
	b.prev = tok.Kind
	b.any = true
}

func (b *Builder) needsSpace(next token.Kind) bool {
	switch b.prev {
	case token.ScopeToDescendants, token.ScopeToChildren, token.Text, token.Comma:
		// fallthrough into the not-suppressed check below
	default:
		return false
	}
	switch next {
	case token.Comma, token.StateOrEnumOrColon:
		return false
	}
	return true
}

// String returns the accumulated selector text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Empty reports whether any token has been appended.
func (b *Builder) Empty() bool {
	return !b.any
}
