package token

import "testing"

func collect(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		t := l.Next()
		if t.Kind == EOF {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	toks := collect(`Frame { Size = UDim2(1, 0, 0, 40); }`)
	want := []Kind{Text, LBrace, Text, Equals, Text, LParen, Number, Comma, Number, Comma, Number, Comma, Number, RParen, Semicolon, RBrace}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerFloorDivBeatsDiv(t *testing.T) {
	toks := collect(`10 // 3`)
	if len(toks) != 3 || toks[1].Kind != OpFloorDiv {
		t.Fatalf("expected OpFloorDiv, got %v", toks)
	}
	toks = collect(`10 / 3`)
	if len(toks) != 3 || toks[1].Kind != OpDiv {
		t.Fatalf("expected OpDiv, got %v", toks)
	}
}

func TestLexerPercentDisambiguation(t *testing.T) {
	toks := collect(`50%`)
	if len(toks) != 2 || toks[1].Kind != ScaleOrOpMod {
		t.Fatalf("adjacent %% should be ScaleOrOpMod, got %v", toks)
	}
	toks = collect(`5 % 2`)
	if len(toks) != 3 || toks[1].Kind != OpMod {
		t.Fatalf("whitespace-prefixed %% should be OpMod, got %v", toks)
	}
}

func TestLexerPxSuffix(t *testing.T) {
	toks := collect(`40px`)
	if len(toks) != 2 || toks[0].Kind != Number || toks[1].Kind != OffsetPx {
		t.Fatalf("expected Number, OffsetPx got %v", toks)
	}
}

func TestLexerAtKeywords(t *testing.T) {
	toks := collect(`@priority @derive @name @macro @util @bogus`)
	want := []Kind{KwPriority, KwDerive, KwName, KwMacro, KwUtil, At, Text}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerComments(t *testing.T) {
	toks := collect("-- line comment\nFrame {}")
	if len(toks) != 3 || toks[0].Kind != Text {
		t.Fatalf("comment should be stripped, got %v", toks)
	}

	toks = collect("--[[ multi\nline ]] Frame {}")
	if len(toks) != 3 || toks[0].Kind != Text {
		t.Fatalf("long comment should be stripped, got %v", toks)
	}

	toks = collect("--[==[ with ]] inside ]==] Frame {}")
	if len(toks) != 3 || toks[0].Kind != Text {
		t.Fatalf("leveled long comment should be stripped, got %v", toks)
	}
}

func TestLexerLongString(t *testing.T) {
	toks := collect("[[hello world]]")
	if len(toks) != 1 || toks[0].Kind != StringMulti {
		t.Fatalf("expected single StringMulti, got %v", toks)
	}
}

func TestLexerPalette(t *testing.T) {
	for _, src := range []string{"tw:red-500", "tw:red-500:2", "bc:Bright_red", "css:tomato", "skin:light"} {
		toks := collect(src)
		if len(toks) != 1 || toks[0].Kind != PaletteRef {
			t.Fatalf("%q: expected single PaletteRef, got %v", src, toks)
		}
	}
}

func TestLexerHexColor(t *testing.T) {
	toks := collect(`#ff8800`)
	if len(toks) != 1 || toks[0].Kind != HexColor || toks[0].Slice != "#ff8800" {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerAssetAndContentURI(t *testing.T) {
	toks := collect(`rbxassetid://123456`)
	if len(toks) != 1 || toks[0].Kind != AssetURI {
		t.Fatalf("got %v", toks)
	}
	toks = collect(`contentid://123456`)
	if len(toks) != 1 || toks[0].Kind != ContentURI {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerBoolAndNil(t *testing.T) {
	toks := collect(`true false nil`)
	want := []Kind{Bool, Bool, Nil}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerMacroCallMarker(t *testing.T) {
	toks := collect(`pad!(8)`)
	want := []Kind{Text, Bang, LParen, Number, RParen}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}
