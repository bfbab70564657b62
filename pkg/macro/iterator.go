package macro

import "github.com/dmoose/rsml/pkg/token"

// Iterator walks a Macro's pre-lexed token pairs linearly, splicing in a
// call's captured argument tokens whenever the cursor passes a hole
// (§4.F's expansion pass). Holes are non-nesting: spliced argument
// tokens are never themselves re-scanned for macro calls.
type Iterator struct {
	m    *Macro
	args [][]TokenPair

	pos         int   // index into m.TokenPairs
	holeDone    bool  // whether the hole (if any) at pos has already been loaded
	pendingHole []int // remaining arg indices queued at the current position
	argCursor   int   // index into the current hole's argument tokens
	inHoleArgs  []TokenPair
}

// NewIterator returns an Iterator over m, with args[i] the pre-lexed
// token stream captured for parameter i at the call site.
func NewIterator(m *Macro, args [][]TokenPair) *Iterator {
	return &Iterator{m: m, args: args}
}

// Next returns the next token in the expansion, or ok=false when
// exhausted.
func (it *Iterator) Next() (token.Token, bool) {
	for {
		if it.inHoleArgs != nil {
			if it.argCursor < len(it.inHoleArgs) {
				tp := it.inHoleArgs[it.argCursor]
				it.argCursor++
				return token.Token{Kind: tp.Kind, Slice: tp.Slice}, true
			}
			it.inHoleArgs = nil
			it.argCursor = 0
		}

		if len(it.pendingHole) == 0 && !it.holeDone {
			if holes, isHole := it.m.ArgPlaces[it.pos]; isHole && len(holes) > 0 {
				it.pendingHole = append([]int(nil), holes...)
			}
			it.holeDone = true
		}
		if len(it.pendingHole) > 0 {
			argIdx := it.pendingHole[0]
			it.pendingHole = it.pendingHole[1:]
			if argIdx >= 0 && argIdx < len(it.args) {
				it.inHoleArgs = it.args[argIdx]
				it.argCursor = 0
			}
			continue
		}

		if it.pos >= len(it.m.TokenPairs) {
			return token.Token{}, false
		}

		tp := it.m.TokenPairs[it.pos]
		it.pos++
		it.holeDone = false
		return token.Token{Kind: tp.Kind, Slice: tp.Slice}, true
	}
}
