// Package macro implements the macro subsystem of spec component F: a
// definition-pass collector that pre-lexes macro bodies and records
// argument "holes", and an expansion-pass token iterator that splices a
// call's argument tokens into those holes.
package macro

import (
	"strings"

	"github.com/dmoose/rsml/pkg/token"
)

// TokenPair is a single pre-lexed (kind, slice) pair. Macros own their
// token pairs independent of the source buffer they were collected from
// (the slice is copied, not a reference into the original source), so a
// macro body survives across files.
type TokenPair struct {
	Kind  token.Kind
	Slice string
}

// Macro is a pre-lexed body plus the positions within it where an
// argument's tokens are spliced in.
type Macro struct {
	Params     []string
	TokenPairs []TokenPair
	ArgPlaces  map[int][]int // token-pair insertion index -> argument indices, in order
}

// Group is the (name, arity) -> Macro table (spec's MacroGroup).
// Overloading is by arity; later definitions of the same (name, arity)
// override earlier ones.
type Group struct {
	byName map[string]map[int]*Macro
}

// NewGroup returns an empty macro group.
func NewGroup() *Group {
	return &Group{byName: make(map[string]map[int]*Macro)}
}

// Clone performs a structural copy so a shared built-in macro group can be
// handed to each parse without risking cross-parse mutation (§5).
func (g *Group) Clone() *Group {
	out := NewGroup()
	for name, byArity := range g.byName {
		out.byName[name] = make(map[int]*Macro, len(byArity))
		for arity, m := range byArity {
			out.byName[name][arity] = m
		}
	}
	return out
}

// Insert stores m under (name, len(m.Params)), overriding any existing
// definition at that arity.
func (g *Group) Insert(name string, m *Macro) {
	byArity, ok := g.byName[name]
	if !ok {
		byArity = make(map[int]*Macro)
		g.byName[name] = byArity
	}
	byArity[len(m.Params)] = m
}

// Lookup returns the macro registered for (name, arity), or nil.
func (g *Group) Lookup(name string, arity int) *Macro {
	byArity, ok := g.byName[name]
	if !ok {
		return nil
	}
	return byArity[arity]
}

// Merge copies every (name, arity) entry of other into g, overriding
// existing entries — used to fold a derived file's macros into the
// importing file's group (§6, later definitions override earlier).
func (g *Group) Merge(other *Group) {
	for name, byArity := range other.byName {
		dst, ok := g.byName[name]
		if !ok {
			dst = make(map[int]*Macro)
			g.byName[name] = dst
		}
		for arity, m := range byArity {
			dst[arity] = m
		}
	}
}

// Collect scans src for "@macro name(p1, p2, ...) { body }" declarations
// and inserts each into the Group. It is a thin wrapper over the main
// tokenizer: a declaration's body tokens are collected by brace-balancing
// and converted into the macro's token pairs and hole positions
// (§4.F's definition pass).
func Collect(src string, into *Group) {
	l := token.New(src)
	for {
		tok := l.Next()
		if tok.Kind == token.EOF {
			return
		}
		if tok.Kind != token.KwMacro {
			continue
		}
		name := l.Next()
		if name.Kind != token.Text {
			continue
		}
		if l.Next().Kind != token.LParen {
			continue
		}
		var params []string
		for {
			p := l.Next()
			if p.Kind == token.RParen {
				break
			}
			if p.Kind == token.Text {
				params = append(params, p.Slice)
				continue
			}
			if p.Kind == token.Comma || p.Kind == token.EOF {
				if p.Kind == token.EOF {
					break
				}
				continue
			}
		}
		if l.Next().Kind != token.LBrace {
			continue
		}
		body := captureBalancedBody(l)
		m := buildMacro(params, body)
		into.Insert(name.Slice, m)
	}
}

// captureBalancedBody consumes tokens from l until the brace that opened
// the macro body is closed, returning the tokens inside (not including
// the closing brace). Unterminated bodies run to end-of-source, matching
// the documented non-fatal lex-error policy.
func captureBalancedBody(l *token.Lexer) []token.Token {
	depth := 1
	var body []token.Token
	for {
		t := l.Next()
		if t.Kind == token.EOF {
			return body
		}
		if t.Kind == token.LBrace {
			depth++
		}
		if t.Kind == token.RBrace {
			depth--
			if depth == 0 {
				return body
			}
		}
		body = append(body, t)
	}
}

// buildMacro converts a raw body token stream into a Macro: a "$name"
// pair where name matches a declared param becomes a hole (recorded in
// ArgPlaces, contributing no token pair of its own); "$x" for an
// undeclared x degrades to a literal Nil token (supplement 11).
func buildMacro(params []string, body []token.Token) *Macro {
	paramIndex := make(map[string]int, len(params))
	for i, p := range params {
		paramIndex[p] = i
	}
	m := &Macro{Params: params, ArgPlaces: make(map[int][]int)}
	for i := 0; i < len(body); i++ {
		t := body[i]
		if t.Kind == token.Dollar && i+1 < len(body) && body[i+1].Kind == token.Text {
			name := body[i+1].Slice
			if idx, ok := paramIndex[name]; ok {
				pos := len(m.TokenPairs)
				m.ArgPlaces[pos] = append(m.ArgPlaces[pos], idx)
				i++
				continue
			}
			m.TokenPairs = append(m.TokenPairs, TokenPair{Kind: token.Nil, Slice: "nil"})
			i++
			continue
		}
		m.TokenPairs = append(m.TokenPairs, TokenPair{Kind: t.Kind, Slice: strings.Clone(t.Slice)})
	}
	return m
}
