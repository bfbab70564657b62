package value

import "testing"

func numVal(t *testing.T, v Value) float64 {
	t.Helper()
	n, ok := v.(Number)
	if !ok {
		t.Fatalf("expected Number, got %T (%v)", v, v)
	}
	return float64(n)
}

// P3: a + b * c ^ d == a + (b * (c ^ d))
func TestReducePrecedence(t *testing.T) {
	var g Group
	g.PushValue(Number(2))
	g.PushOp(OpAdd)
	g.PushValue(Number(3))
	g.PushOp(OpMult)
	g.PushValue(Number(4))
	g.PushOp(OpPow)
	g.PushValue(Number(2))
	got := numVal(t, g.Reduce())
	want := 2 + 3*16.0
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

// P4: -x == 0-x; --x == x; -+x == -x
func TestUnarySign(t *testing.T) {
	cases := []struct {
		build func(g *Group)
		want  float64
	}{
		{func(g *Group) { g.PushOp(OpSub); g.PushValue(Number(5)) }, -5},
		{func(g *Group) { g.PushOp(OpSub); g.PushOp(OpSub); g.PushValue(Number(5)) }, 5},
		{func(g *Group) { g.PushOp(OpSub); g.PushOp(OpAdd); g.PushValue(Number(5)) }, -5},
	}
	for i, c := range cases {
		var g Group
		c.build(&g)
		got := numVal(t, g.Reduce())
		if got != c.want {
			t.Errorf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

// "a * -b" should parse as a * (0 - b).
func TestMixedUnaryAfterHigherPrecedenceOp(t *testing.T) {
	var g Group
	g.PushValue(Number(2))
	g.PushOp(OpMult)
	g.PushOp(OpSub)
	g.PushValue(Number(3))
	got := numVal(t, g.Reduce())
	if got != -6 {
		t.Fatalf("got %v want -6", got)
	}
}

// P2: subtraction is left-associative.
func TestLeftAssociativeSubtraction(t *testing.T) {
	var g Group
	g.PushValue(Number(10))
	g.PushOp(OpSub)
	g.PushValue(Number(3))
	g.PushOp(OpSub)
	g.PushValue(Number(2))
	got := numVal(t, g.Reduce())
	if got != 5 {
		t.Fatalf("got %v want 5", got)
	}
}

func TestDivideByZeroReturnsLeftOperand(t *testing.T) {
	var g Group
	g.PushValue(Number(7))
	g.PushOp(OpDiv)
	g.PushValue(Number(0))
	got := numVal(t, g.Reduce())
	if got != 7 {
		t.Fatalf("got %v want 7", got)
	}
}

func TestNumberMinusUDimFlipsOffsetSign(t *testing.T) {
	result := Apply(Number(1), OpSub, UDim{Scale: 0.2, Offset: 10})
	u, ok := result.(UDim)
	if !ok {
		t.Fatalf("expected UDim, got %T", result)
	}
	if u.Scale != 0.8 || u.Offset != -10 {
		t.Fatalf("got %+v", u)
	}
}

func TestEmptyGroupReducesToNone(t *testing.T) {
	var g Group
	if _, ok := g.Reduce().(None); !ok {
		t.Fatalf("expected None for empty group")
	}
}
