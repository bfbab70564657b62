// Package token defines the RSML token kinds and a longest-match lexer.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota

	// comments are consumed internally and never surfaced to callers, but
	// the lexer still needs kinds for them while scanning.
	commentMulti
	commentSingle

	StringMulti
	StringSingle

	OpFloorDiv
	OpDiv
	OpMod
	ScaleOrOpMod // bare '%', disambiguated by the parser
	OpPow
	OpMult
	OpAdd
	OpSub

	KwPriority
	KwDerive
	KwName
	KwMacro
	KwUtil

	PseudoClass         // ::
	StateOrEnumOrColon  // :
	ScopeToDescendants  // >>
	ScopeToChildren     // >

	OffsetPx // any "px" word; the parser folds it into a preceding Number

	PaletteRef // tw:X(:N)?, bc:X, css:X, skin:X

	HexColor
	Number

	AssetURI
	ContentURI

	Bool
	Nil

	Dollar       // $
	PercentSign  // '%' immediately before an identifier in attribute position ("%attr")
	At           // @
	Bang         // ! (macro call marker, glued to identifier)
	LParen
	RParen
	LBrace
	RBrace
	Comma
	Semicolon
	Equals
	Dot

	Text
)

var kindNames = map[Kind]string{
	EOF:                "EOF",
	commentMulti:       "CommentMulti",
	commentSingle:      "CommentSingle",
	StringMulti:        "StringMulti",
	StringSingle:       "StringSingle",
	OpFloorDiv:         "OpFloorDiv",
	OpDiv:              "OpDiv",
	OpMod:              "OpMod",
	ScaleOrOpMod:       "ScaleOrOpMod",
	OpPow:              "OpPow",
	OpMult:             "OpMult",
	OpAdd:              "OpAdd",
	OpSub:              "OpSub",
	KwPriority:         "KwPriority",
	KwDerive:           "KwDerive",
	KwName:             "KwName",
	KwMacro:            "KwMacro",
	KwUtil:             "KwUtil",
	PseudoClass:        "PseudoClass",
	StateOrEnumOrColon: "StateOrEnumOrColon",
	ScopeToDescendants: "ScopeToDescendants",
	ScopeToChildren:    "ScopeToChildren",
	OffsetPx:           "OffsetPx",
	PaletteRef:         "PaletteRef",
	HexColor:           "HexColor",
	Number:             "Number",
	AssetURI:           "AssetURI",
	ContentURI:         "ContentURI",
	Bool:               "Bool",
	Nil:                "Nil",
	Dollar:             "Dollar",
	PercentSign:        "PercentSign",
	At:                 "At",
	Bang:               "Bang",
	LParen:             "LParen",
	RParen:             "RParen",
	LBrace:             "LBrace",
	RBrace:             "RBrace",
	Comma:              "Comma",
	Semicolon:          "Semicolon",
	Equals:             "Equals",
	Dot:                "Dot",
	Text:               "Text",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a classified slice of the source. Tokens are disposable: the
// Slice references the source buffer by byte-range, never copies it.
type Token struct {
	Kind  Kind
	Slice string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Slice)
}
