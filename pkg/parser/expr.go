package parser

import (
	"github.com/dmoose/rsml/pkg/enumdb"
	"github.com/dmoose/rsml/pkg/palette"
	"github.com/dmoose/rsml/pkg/token"
	"github.com/dmoose/rsml/pkg/tuple"
	"github.com/dmoose/rsml/pkg/value"
)

func opFromKind(k token.Kind) (value.Op, bool) {
	switch k {
	case token.OpPow:
		return value.OpPow, true
	case token.OpDiv:
		return value.OpDiv, true
	case token.OpFloorDiv:
		return value.OpFloorDiv, true
	case token.OpMod, token.ScaleOrOpMod:
		return value.OpMod, true
	case token.OpMult:
		return value.OpMult, true
	case token.OpAdd:
		return value.OpAdd, true
	case token.OpSub:
		return value.OpSub, true
	}
	return 0, false
}

// isAtomStart reports whether the current lookahead can begin an atom,
// without consuming anything.
func (p *Parser) isAtomStart() bool {
	tok := p.cur()
	switch tok.Kind {
	case token.StringSingle, token.StringMulti, token.Number, token.HexColor,
		token.PaletteRef, token.AssetURI, token.ContentURI, token.Bool, token.Nil,
		token.Dollar, token.LParen:
		return true
	case token.OpMod, token.ScaleOrOpMod:
		return p.peek(1).Kind == token.Text
	case token.StateOrEnumOrColon:
		return p.peek(1).Kind == token.Text
	case token.Text:
		if tok.Slice == "Enum" && p.peek(1).Kind == token.Dot {
			return true
		}
		if p.peek(1).Kind == token.LParen {
			return true
		}
		if p.peek(1).Kind == token.Bang && p.peek(2).Kind == token.LParen {
			return true
		}
	}
	return false
}

// parseExpr parses a full arithmetic expression, stopping at the first
// token that can neither continue as an operator nor start an atom
// (§4.D's DatatypeGroup accumulation, driven to reduction at the end).
func (p *Parser) parseExpr() value.Value {
	var g value.Group
	expectAtom := true
	for {
		for p.tryExpandMacroCall() {
		}
		tok := p.cur()
		if expectAtom {
			if op, ok := opFromKind(tok.Kind); ok && (tok.Kind == token.OpAdd || tok.Kind == token.OpSub) {
				p.advance()
				g.PushOp(op)
				continue
			}
			if !p.isAtomStart() {
				break
			}
			g.PushValue(p.parseAtom())
			expectAtom = false
			continue
		}
		if op, ok := opFromKind(tok.Kind); ok {
			p.advance()
			g.PushOp(op)
			expectAtom = true
			continue
		}
		break
	}
	return g.Reduce()
}

// parseAtom consumes and returns a single atom. The caller must have
// already confirmed isAtomStart(); unrecognized input degrades to None
// rather than panicking, preserving the force-advance guarantee.
func (p *Parser) parseAtom() value.Value {
	for p.tryExpandMacroCall() {
	}
	tok := p.cur()
	switch tok.Kind {
	case token.StringSingle:
		p.advance()
		return value.String(unquoteSingle(tok.Slice))
	case token.StringMulti:
		p.advance()
		return value.String(unquoteMulti(tok.Slice))
	case token.Number:
		return p.parseNumberAtom()
	case token.HexColor:
		p.advance()
		return value.ParseHexColor3u8(tok.Slice)
	case token.PaletteRef:
		p.advance()
		return p.resolvePalette(tok.Slice)
	case token.AssetURI:
		p.advance()
		return value.Content{URI: tok.Slice}
	case token.ContentURI:
		p.advance()
		return value.Content{URI: "rbxassetid://" + afterScheme(tok.Slice)}
	case token.Bool:
		p.advance()
		return value.Bool(tok.Slice == "true")
	case token.Nil:
		p.advance()
		return value.None{}
	case token.Dollar:
		p.advance()
		if p.cur().Kind == token.Text {
			name := p.advance().Slice
			return value.String(name)
		}
		return value.None{}
	case token.OpMod, token.ScaleOrOpMod:
		p.advance()
		if p.cur().Kind == token.Text {
			name := p.advance().Slice
			return p.lookupStaticAttribute(name)
		}
		return value.None{}
	case token.StateOrEnumOrColon:
		p.advance()
		if p.cur().Kind == token.Text {
			name := p.advance().Slice
			return value.IncompleteEnumShorthand{Name: name}
		}
		return value.None{}
	case token.LParen:
		p.advance()
		return p.parseTupleBody("", false)
	case token.Text:
		if tok.Slice == "Enum" && p.peek(1).Kind == token.Dot {
			return p.parseEnumRef()
		}
		if p.peek(1).Kind == token.LParen {
			name := p.advance().Slice
			p.advance() // LParen
			return p.parseTupleBody(name, true)
		}
		p.advance()
		return value.None{}
	default:
		p.advance()
		return value.None{}
	}
}

func afterScheme(slice string) string {
	for i := 0; i+2 < len(slice); i++ {
		if slice[i] == ':' && slice[i+1] == '/' && slice[i+2] == '/' {
			return slice[i+3:]
		}
	}
	return slice
}

// parseNumberAtom consumes a Number and, if the next token is "px"
// (whitespace between them allowed) or a glued "%" suffix, folds it into a
// UDim (§4.H).
func (p *Parser) parseNumberAtom() value.Value {
	tok := p.advance()
	n := numberLiteral(tok.Slice)
	switch p.cur().Kind {
	case token.OffsetPx:
		p.advance()
		return value.UDim{Offset: int32(n)}
	case token.ScaleOrOpMod:
		p.advance()
		return value.UDim{Scale: n / 100}
	}
	return value.Number(n)
}

// parseEnumRef consumes "Enum" "." IDENT "." IDENT and resolves it
// against the enum database.
func (p *Parser) parseEnumRef() value.Value {
	p.advance() // "Enum"
	if p.cur().Kind != token.Dot {
		return value.None{}
	}
	p.advance()
	if p.cur().Kind != token.Text {
		return value.None{}
	}
	enumName := p.advance().Slice
	if p.cur().Kind != token.Dot {
		return value.None{}
	}
	p.advance()
	if p.cur().Kind != token.Text {
		return value.None{}
	}
	memberName := p.advance().Slice
	return enumdb.Lookup(enumName, memberName)
}

// resolvePalette dispatches a "tw:X", "css:X", "skin:X", or "bc:X"
// literal to the preset palette tables (§4.G / supplement palette
// lookup, case-insensitive per P8).
func (p *Parser) resolvePalette(slice string) value.Value {
	colon := -1
	for i := 0; i < len(slice); i++ {
		if slice[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		return value.None{}
	}
	prefix := asciiLower(slice[:colon])
	rest := slice[colon+1:]
	name := rest
	for i := 0; i < len(rest); i++ {
		if rest[i] == ':' {
			name = rest[:i]
			break
		}
	}
	switch prefix {
	case "tw":
		return oklabOrNone(palette.LookupTw(name))
	case "css":
		return oklabOrNone(palette.LookupCSS(name))
	case "skin":
		return oklabOrNone(palette.LookupSkin(name))
	case "bc":
		return palette.LookupBrickColor(name)
	}
	return value.None{}
}

func oklabOrNone(c value.Oklab, ok bool) value.Value {
	if !ok {
		return value.None{}
	}
	return c
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

// parseTupleBody consumes items up to the matching ")" (the opening "("
// has already been consumed by the caller) and resolves them through the
// tuple annotation dispatcher (§4.E).
func (p *Parser) parseTupleBody(name string, named bool) value.Value {
	var items []value.Value
	for p.cur().Kind != token.RParen && p.cur().Kind != token.EOF {
		items = append(items, p.parseExpr())
		if c := p.cur().Kind; c == token.Comma || c == token.Semicolon {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind == token.RParen {
		p.advance()
	}
	t := tuple.Tuple{Name: name, HasName: named, Items: items}
	return t.Resolve()
}
