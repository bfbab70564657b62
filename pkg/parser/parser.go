// Package parser implements the main RSML parser of spec component H: a
// state machine over scopes, properties, and attributes that pulls
// tokens from the lexer (or, while a macro call is expanding, from the
// macro injection stack) and reduces every value through pkg/value's
// arithmetic engine.
package parser

import (
	"strconv"
	"strings"

	"github.com/dmoose/rsml/pkg/macro"
	"github.com/dmoose/rsml/pkg/selector"
	"github.com/dmoose/rsml/pkg/token"
	"github.com/dmoose/rsml/pkg/tree"
	"github.com/dmoose/rsml/pkg/value"
)

type macroKey struct {
	name  string
	arity int
}

// Parser owns the lexer, the macro injection stack, the active-macro
// recursion guard, and the tree arena exclusively for one parse (§5: no
// operation may suspend, nothing is shared across parses by reference).
type Parser struct {
	lex *token.Lexer

	stack        []*macro.Iterator
	activeMacros []macroKey
	macros       *macro.Group

	buf []token.Token

	tree          *tree.Group
	currentNode   int // -1 means the root scope
	parentStack   []int
	selBuilder    selector.Builder
}

// Parse runs the full pipeline over src with the given (already merged)
// macro group and returns the resulting tree (§6's external output).
func Parse(src string, macros *macro.Group) *tree.Group {
	p := &Parser{
		lex:         token.New(src),
		macros:      macros,
		tree:        tree.NewGroup(),
		currentNode: -1,
	}
	for p.cur().Kind != token.EOF {
		if !p.step() {
			p.advance() // force-advance guarantee: termination on unrecognized input
		}
	}
	return p.tree
}

// pullOne draws exactly one token from the top of the injection stack,
// falling through to the underlying lexer once the stack is empty
// (§4.F). Exhausted iterators pop themselves and their recursion-guard
// entry together (supplement 6).
func (p *Parser) pullOne() token.Token {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if tok, ok := top.Next(); ok {
			return tok
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.activeMacros = p.activeMacros[:len(p.activeMacros)-1]
	}
	return p.lex.Next()
}

func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.pullOne())
	}
}

func (p *Parser) cur() token.Token  { p.fill(0); return p.buf[0] }
func (p *Parser) peek(n int) token.Token { p.fill(n); return p.buf[n] }

func (p *Parser) advance() token.Token {
	t := p.cur()
	p.buf = p.buf[1:]
	return t
}

func (p *Parser) consumeDelim() {
	if c := p.cur(); c.Kind == token.Semicolon || c.Kind == token.Comma {
		p.advance()
	}
}

func (p *Parser) skipBalancedBraces() {
	if p.cur().Kind != token.LBrace {
		return
	}
	depth := 1
	p.advance()
	for depth > 0 && p.cur().Kind != token.EOF {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
}

func coerceInt32(v value.Value) int32 {
	switch n := v.(type) {
	case value.Number:
		return int32(n)
	case value.Int64:
		return int32(n)
	}
	return 0
}

func coerceString(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}
	return ""
}

func (p *Parser) nodeOrNil() *tree.Node {
	if p.currentNode == -1 {
		return nil
	}
	return p.tree.Get(p.currentNode)
}

// setProperty discards root-level assignments: RootTreeNode has no
// properties field (§3).
func (p *Parser) setProperty(name string, v value.Value) {
	if n := p.nodeOrNil(); n != nil {
		n.Properties[name] = v
	}
}

func (p *Parser) setAttribute(name string, v value.Value) {
	if n := p.nodeOrNil(); n != nil {
		n.Attributes[name] = v
		return
	}
	p.tree.Root().Attributes[name] = v
}

func (p *Parser) setStaticAttribute(name string, v value.Value) {
	if n := p.nodeOrNil(); n != nil {
		n.StaticAttributes[name] = v
		return
	}
	p.tree.Root().StaticAttributes[name] = v
}

// lookupStaticAttribute walks up from the current node through ancestors
// (and finally the root) looking for name, yielding None on a full miss
// (§4.H).
func (p *Parser) lookupStaticAttribute(name string) value.Value {
	if p.currentNode != -1 {
		for _, n := range p.tree.Ancestors(p.currentNode) {
			if v, ok := n.StaticAttributes[name]; ok {
				return v
			}
		}
	}
	if v, ok := p.tree.Root().StaticAttributes[name]; ok {
		return v
	}
	return value.None{}
}

func unquoteSingle(slice string) string {
	if len(slice) >= 2 {
		return unescapeString(slice[1 : len(slice)-1])
	}
	return slice
}

func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unquoteMulti strips a Lua-style long-bracket "[=*[ ... ]=*]" wrapper
// and, matching the original's Luau-mimicking behavior, drops a single
// leading newline immediately after the opening bracket.
func unquoteMulti(slice string) string {
	i := 1
	for i < len(slice) && slice[i] == '=' {
		i++
	}
	i++ // second '['
	level := i - 2
	closer := "]" + strings.Repeat("=", level) + "]"
	body := slice[i:]
	body = strings.TrimSuffix(body, closer)
	if strings.HasPrefix(body, "\n") {
		body = body[1:]
	} else if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	}
	return body
}

func numberLiteral(slice string) float64 {
	cleaned := strings.ReplaceAll(slice, "_", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
