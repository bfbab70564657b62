package parser

import (
	"github.com/dmoose/rsml/pkg/enumdb"
	"github.com/dmoose/rsml/pkg/macro"
	"github.com/dmoose/rsml/pkg/selector"
	"github.com/dmoose/rsml/pkg/token"
	"github.com/dmoose/rsml/pkg/tree"
	"github.com/dmoose/rsml/pkg/value"
)

// step dispatches the current token through a fixed ordered handler
// list: macro call, attribute, static-attribute, property, "{", "}",
// "@priority", "@name", "@derive" (skipped), "@util" (skipped), "@macro"
// (skipped), and last the selector-token handler, which takes whatever
// identifier-like token the earlier handlers left. It returns false when
// nothing matched, at which point Parse force-advances one token.
func (p *Parser) step() bool {
	if p.tryExpandMacroCall() {
		return true
	}
	if p.tryAttribute() {
		return true
	}
	if p.tryStaticAttribute() {
		return true
	}
	if p.tryProperty() {
		return true
	}
	if p.tryScopeOpen() {
		return true
	}
	if p.tryScopeClose() {
		return true
	}
	if p.tryPriority() {
		return true
	}
	if p.tryName() {
		return true
	}
	if p.tryDerive() {
		return true
	}
	if p.tryUtil() {
		return true
	}
	if p.tryMacroDecl() {
		return true
	}
	return p.trySelectorToken()
}

// tryExpandMacroCall recognizes "IDENT ! (" and, if it resolves against
// the macro group at the called arity and isn't already expanding
// (recursion guard, §4.F / P6), pushes an Iterator onto the injection
// stack. An unresolved call or a recursive self-call still consumes its
// "name!(args)" text but yields no tokens (supplement: silent no-op).
func (p *Parser) tryExpandMacroCall() bool {
	if p.cur().Kind != token.Text || p.peek(1).Kind != token.Bang || p.peek(2).Kind != token.LParen {
		return false
	}
	name := p.advance().Slice
	p.advance() // '!'
	p.advance() // '('
	args := p.captureMacroArgs()

	key := macroKey{name: name, arity: len(args)}
	for _, active := range p.activeMacros {
		if active == key {
			return true
		}
	}
	m := p.macros.Lookup(name, len(args))
	if m == nil {
		return true
	}
	p.stack = append(p.stack, macro.NewIterator(m, args))
	p.activeMacros = append(p.activeMacros, key)
	return true
}

// captureMacroArgs reads raw tokens up to the matching ")" (already past
// the opening paren), splitting on top-level commas, without interpreting
// them as an expression — they are spliced into the macro body verbatim
// at expansion time.
func (p *Parser) captureMacroArgs() [][]macro.TokenPair {
	// "name!()" is a zero-argument call, not a one-argument call with an
	// empty argument — checked before the general loop since every other
	// branch below only runs once at least one token or comma is seen.
	if p.cur().Kind == token.RParen {
		p.advance()
		return nil
	}
	var args [][]macro.TokenPair
	var cur []macro.TokenPair
	depth := 0
	for {
		t := p.cur()
		if t.Kind == token.EOF {
			if cur != nil {
				args = append(args, cur)
			}
			return args
		}
		switch t.Kind {
		case token.LParen, token.LBrace:
			depth++
			cur = append(cur, macro.TokenPair{Kind: t.Kind, Slice: t.Slice})
			p.advance()
		case token.RParen:
			if depth == 0 {
				p.advance()
				args = append(args, cur)
				return args
			}
			depth--
			cur = append(cur, macro.TokenPair{Kind: t.Kind, Slice: t.Slice})
			p.advance()
		case token.RBrace:
			depth--
			cur = append(cur, macro.TokenPair{Kind: t.Kind, Slice: t.Slice})
			p.advance()
		case token.Comma:
			if depth == 0 {
				p.advance()
				args = append(args, cur)
				cur = nil
				continue
			}
			cur = append(cur, macro.TokenPair{Kind: t.Kind, Slice: t.Slice})
			p.advance()
		default:
			cur = append(cur, macro.TokenPair{Kind: t.Kind, Slice: t.Slice})
			p.advance()
		}
	}
}

// tryAttribute recognizes "$ IDENT = expr terminator" (§4.H).
func (p *Parser) tryAttribute() bool {
	if p.cur().Kind != token.Dollar || p.peek(1).Kind != token.Text || p.peek(2).Kind != token.Equals {
		return false
	}
	p.advance() // '$'
	name := p.advance().Slice
	p.advance() // '='
	v := p.parseExpr()
	p.consumeDelim()
	p.setAttribute(name, v)
	return true
}

// tryStaticAttribute recognizes "% IDENT = expr terminator". Both percent
// token kinds are accepted here: whichever one the lexer produced, a
// following "IDENT =" makes this position unambiguous (§4.H, P9).
func (p *Parser) tryStaticAttribute() bool {
	if (p.cur().Kind != token.OpMod && p.cur().Kind != token.ScaleOrOpMod) ||
		p.peek(1).Kind != token.Text || p.peek(2).Kind != token.Equals {
		return false
	}
	p.advance() // '%'
	name := p.advance().Slice
	p.advance() // '='
	v := p.parseExpr()
	p.consumeDelim()
	p.setStaticAttribute(name, v)
	return true
}

// tryProperty recognizes "IDENT = expr terminator". A bare IDENT not
// followed by "=" falls through to selector accumulation instead.
func (p *Parser) tryProperty() bool {
	if p.cur().Kind != token.Text || p.peek(1).Kind != token.Equals {
		return false
	}
	name := p.advance().Slice
	p.advance() // '='
	v := p.parseExpr()
	p.consumeDelim()
	if sh, ok := v.(value.IncompleteEnumShorthand); ok {
		v = enumdb.ResolveShorthand(name, sh.Name)
	}
	p.setProperty(name, v)
	return true
}

// tryScopeOpen recognizes "{", finalizing the accumulated selector text
// into a new child node of the current scope.
func (p *Parser) tryScopeOpen() bool {
	if p.cur().Kind != token.LBrace {
		return false
	}
	p.advance()
	var parent tree.ParentRef
	if p.currentNode == -1 {
		parent = tree.RootParent
	} else {
		parent = tree.NodeParent(p.currentNode)
	}
	idx := p.tree.Push(parent)
	n := p.tree.Get(idx)
	if !p.selBuilder.Empty() {
		n.Selector = p.selBuilder.String()
		n.HasSelector = true
	}
	p.selBuilder = selector.Builder{}
	p.parentStack = append(p.parentStack, p.currentNode)
	p.currentNode = idx
	return true
}

// tryScopeClose recognizes "}". A stray close at the root is silently
// ignored (Open Question resolved: non-fatal, matching every other
// malformed-input case in §7).
func (p *Parser) tryScopeClose() bool {
	if p.cur().Kind != token.RBrace {
		return false
	}
	p.advance()
	if len(p.parentStack) == 0 {
		return true
	}
	last := len(p.parentStack) - 1
	p.currentNode = p.parentStack[last]
	p.parentStack = p.parentStack[:last]
	return true
}

func (p *Parser) tryPriority() bool {
	if p.cur().Kind != token.KwPriority {
		return false
	}
	p.advance()
	v := p.parseExpr()
	p.consumeDelim()
	if n := p.nodeOrNil(); n != nil {
		n.Priority = coerceInt32(v)
		n.HasPriority = true
	}
	return true
}

func (p *Parser) tryName() bool {
	if p.cur().Kind != token.KwName {
		return false
	}
	p.advance()
	v := p.parseExpr()
	p.consumeDelim()
	if n := p.nodeOrNil(); n != nil {
		n.Name = coerceString(v)
		n.HasName = true
	}
	return true
}

// tryDerive skips an in-body "@derive" declaration: the file-level
// derive resolver already ran over the whole source before parsing began
// (§6.3), so the main parser just discards the expression.
func (p *Parser) tryDerive() bool {
	if p.cur().Kind != token.KwDerive {
		return false
	}
	p.advance()
	p.parseExpr()
	p.consumeDelim()
	return true
}

// tryUtil skips an "@util IDENT { ... }" block wholesale: util blocks
// carry no semantics for this parser (§4.H, supplement 5).
func (p *Parser) tryUtil() bool {
	if p.cur().Kind != token.KwUtil {
		return false
	}
	p.advance()
	if p.cur().Kind == token.Text {
		p.advance()
	}
	p.skipBalancedBraces()
	return true
}

// tryMacroDecl skips an in-body "@macro name(params) { body }"
// declaration: the definition pass already collected it before parsing
// began, so re-encountering it here is a pure no-op.
func (p *Parser) tryMacroDecl() bool {
	if p.cur().Kind != token.KwMacro {
		return false
	}
	p.advance()
	if p.cur().Kind == token.Text {
		p.advance()
	}
	if p.cur().Kind == token.LParen {
		depth := 1
		p.advance()
		for depth > 0 && p.cur().Kind != token.EOF {
			switch p.advance().Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
			}
		}
	}
	p.skipBalancedBraces()
	return true
}

// trySelectorToken appends one token to the in-progress selector text.
// It is the last handler in the dispatch order and, since it only
// recognizes tokens that plausibly belong in a selector, still falls
// through to Parse's force-advance guarantee on truly unrecognized
// input.
func (p *Parser) trySelectorToken() bool {
	switch p.cur().Kind {
	case token.Text, token.Comma, token.ScopeToChildren, token.ScopeToDescendants,
		token.StateOrEnumOrColon, token.PseudoClass:
		p.selBuilder.Append(p.advance())
		return true
	}
	return false
}
