package parser

import (
	"testing"

	"github.com/dmoose/rsml/pkg/macro"
	"github.com/dmoose/rsml/pkg/tree"
	"github.com/dmoose/rsml/pkg/value"
)

func parse(src string) *parseResult {
	macros := macro.NewGroup()
	macro.Collect(src, macros)
	g := Parse(src, macros)
	return &parseResult{g}
}

type parseResult struct {
	t *tree.Group
}

func onlyChild(r *parseResult) int { return r.t.Root().ChildRules[0] }

// TestScenarioS1BasicRuleAndColor covers S1: a simple rule with a UDim2
// property and a hex color property.
func TestScenarioS1BasicRuleAndColor(t *testing.T) {
	r := parse(`Frame { Size = UDim2(1,0,0,40); BackgroundColor3 = #ff8800; }`)
	idx := onlyChild(r)
	n := r.t.Get(idx)
	if n.Selector != "Frame" {
		t.Fatalf("selector = %q", n.Selector)
	}
	size, ok := n.Properties["Size"].(value.UDim2)
	if !ok {
		t.Fatalf("Size not UDim2: %#v", n.Properties["Size"])
	}
	if size.X != (value.UDim{Scale: 1, Offset: 0}) || size.Y != (value.UDim{Scale: 0, Offset: 40}) {
		t.Fatalf("Size = %#v", size)
	}
	c, ok := n.Properties["BackgroundColor3"].(value.Color3u8)
	if !ok || c.R != 0xff || c.G != 0x88 || c.B != 0x00 {
		t.Fatalf("BackgroundColor3 = %#v", n.Properties["BackgroundColor3"])
	}
}

// TestScenarioS2PercentMinusPxUDim2 covers S2: a UDim2 built from two
// "scale - offset" expressions.
func TestScenarioS2PercentMinusPxUDim2(t *testing.T) {
	r := parse(`Frame { Position = UDim2(50% - 10px, 50% - 10px); }`)
	n := r.t.Get(onlyChild(r))
	pos, ok := n.Properties["Position"].(value.UDim2)
	if !ok {
		t.Fatalf("Position not UDim2: %#v", n.Properties["Position"])
	}
	want := value.UDim{Scale: 0.5, Offset: -10}
	if pos.X != want || pos.Y != want {
		t.Fatalf("Position = %#v", pos)
	}
}

// TestScenarioS3MacroExpansion covers S3: a one-parameter macro expanded
// as a bare statement inside a rule body.
func TestScenarioS3MacroExpansion(t *testing.T) {
	src := `
@macro pad(n) { PaddingTop = $n px; }
Frame {
  pad!(8);
}`
	r := parse(src)
	n := r.t.Get(onlyChild(r))
	got, ok := n.Properties["PaddingTop"].(value.UDim)
	if !ok || got != (value.UDim{Offset: 8}) {
		t.Fatalf("PaddingTop = %#v", n.Properties["PaddingTop"])
	}
}

// TestScenarioS4LerpColor covers S4: lerp() between two rgb() colors at
// t=0.5, within a ±1 channel tolerance of 127 or 128 (the arithmetic
// midpoint 127.5 rounded either way).
func TestScenarioS4LerpColor(t *testing.T) {
	r := parse(`Frame { BackgroundColor3 = lerp(rgb(0,0,0), rgb(255,255,255), 0.5); }`)
	n := r.t.Get(onlyChild(r))
	c, ok := n.Properties["BackgroundColor3"].(value.Color3u8)
	if !ok {
		t.Fatalf("not Color3u8: %#v", n.Properties["BackgroundColor3"])
	}
	within := func(v uint8) bool { return v >= 126 && v <= 129 }
	if !within(c.R) || !within(c.G) || !within(c.B) {
		t.Fatalf("lerp midpoint = %#v", c)
	}
}

// TestScenarioS5ExplicitColorseqKeypoints covers S5: a colorseq() call
// with three explicit (time, color) keypoints.
func TestScenarioS5ExplicitColorseqKeypoints(t *testing.T) {
	src := `Frame { Gradient = colorseq((0, rgb(255,0,0)), (0.5, rgb(0,255,0)), (1, rgb(0,0,255))); }`
	r := parse(src)
	n := r.t.Get(onlyChild(r))
	seq, ok := n.Properties["Gradient"].(value.ColorSequence)
	if !ok {
		t.Fatalf("not ColorSequence: %#v", n.Properties["Gradient"])
	}
	if len(seq.Keypoints) != 3 {
		t.Fatalf("got %d keypoints, want 3", len(seq.Keypoints))
	}
	if seq.Keypoints[0].Time != 0 || seq.Keypoints[2].Time != 1 {
		t.Fatalf("boundary times: %#v", seq.Keypoints)
	}
}

// TestScenarioS6RecursiveMacroYieldsNothing covers S6: a macro that calls
// itself at the same arity must be caught by the recursion guard and
// contribute no tokens, leaving the enclosing rule's properties
// untouched by it.
func TestScenarioS6RecursiveMacroYieldsNothing(t *testing.T) {
	src := `
@macro rec(x) { rec!($x) }
Frame {
  rec!(1);
  Real = 5;
}`
	r := parse(src)
	n := r.t.Get(onlyChild(r))
	if len(n.Properties) != 1 {
		t.Fatalf("expected only Real to be set, got %#v", n.Properties)
	}
	if _, ok := n.Properties["Real"]; !ok {
		t.Fatalf("expected Real to be set")
	}
}

// TestZeroArityMacroCall exercises a macro declared and called with no
// arguments: "name!()" must resolve at arity 0, not arity 1 with an empty
// argument.
func TestZeroArityMacroCall(t *testing.T) {
	src := `
@macro center() { Centered = true; }
Frame {
  center!();
}`
	r := parse(src)
	n := r.t.Get(onlyChild(r))
	got, ok := n.Properties["Centered"].(value.Bool)
	if !ok || !bool(got) {
		t.Fatalf("Centered = %#v", n.Properties["Centered"])
	}
}

// TestPropertyIdempotentReparse covers P1: parsing the same source twice
// yields structurally identical trees.
func TestPropertyIdempotentReparse(t *testing.T) {
	src := `Frame { Size = UDim2(1,0,0,40); Inner { Visible = true; } }`
	a := parse(src)
	b := parse(src)
	if a.t.Len() != b.t.Len() {
		t.Fatalf("node counts differ: %d vs %d", a.t.Len(), b.t.Len())
	}
	for i := 0; i < a.t.Len(); i++ {
		na, nb := a.t.Get(i), b.t.Get(i)
		if na.Selector != nb.Selector || len(na.Properties) != len(nb.Properties) {
			t.Fatalf("node %d differs", i)
		}
	}
}

// TestTreeInvariantsParentChildLinkage covers P7: every child index
// appears in exactly one parent's ChildRules, and ancestry walks
// terminate at the root.
func TestTreeInvariantsParentChildLinkage(t *testing.T) {
	r := parse(`Frame { Inner { Deep { X = 1; } } }`)
	if r.t.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", r.t.Len())
	}
	if rc := r.t.Root().ChildRules; len(rc) != 1 || rc[0] != 0 {
		t.Fatalf("root ChildRules = %v, want [0]", rc)
	}
	for i := 0; i < 2; i++ {
		if cr := r.t.Get(i).ChildRules; len(cr) != 1 || cr[0] != i+1 {
			t.Fatalf("node %d ChildRules = %v, want [%d]", i, cr, i+1)
		}
	}
	deepIdx := 2
	anc := r.t.Ancestors(deepIdx)
	if len(anc) != 3 {
		t.Fatalf("expected 3 ancestors (self+2), got %d", len(anc))
	}
}

// TestPaletteLookupCaseInsensitive covers P8: palette references resolve
// the same regardless of case.
func TestPaletteLookupCaseInsensitive(t *testing.T) {
	r1 := parse(`Frame { C = css:Tomato; }`)
	r2 := parse(`Frame { C = css:TOMATO; }`)
	n1 := r1.t.Get(onlyChild(r1))
	n2 := r2.t.Get(onlyChild(r2))
	if n1.Properties["C"] != n2.Properties["C"] {
		t.Fatalf("case-insensitive palette lookup mismatch: %#v vs %#v", n1.Properties["C"], n2.Properties["C"])
	}
}

// TestPercentVsModuloDisambiguation covers P9: a glued "%" after a number
// is a UDim scale suffix, while a whitespace-surrounded "%" is modulo.
func TestPercentVsModuloDisambiguation(t *testing.T) {
	r := parse(`Frame { Scale = 50%; Remainder = 10 % 3; }`)
	n := r.t.Get(onlyChild(r))
	if got, ok := n.Properties["Scale"].(value.UDim); !ok || got != (value.UDim{Scale: 0.5}) {
		t.Fatalf("Scale = %#v", n.Properties["Scale"])
	}
	if got, ok := n.Properties["Remainder"].(value.Number); !ok || got != 1 {
		t.Fatalf("Remainder = %#v", n.Properties["Remainder"])
	}
}

// TestStaticAttributeInheritance exercises "%attr" resolution through
// ancestor scopes (§4.H).
func TestStaticAttributeInheritance(t *testing.T) {
	src := `
%theme = 1;
Frame {
  Inner {
    Flag = %theme;
  }
}`
	r := parse(src)
	outer := r.t.Get(onlyChild(r))
	inner := r.t.Get(outer.ChildRules[0])
	if got, ok := inner.Properties["Flag"].(value.Number); !ok || got != 1 {
		t.Fatalf("Flag = %#v", inner.Properties["Flag"])
	}
}

// TestStrayClosingBraceAtRootIsIgnored exercises the Open Question
// resolution: an extra "}" with no matching scope is silently ignored.
func TestStrayClosingBraceAtRootIsIgnored(t *testing.T) {
	r := parse(`}}} Frame { X = 1; }`)
	if r.t.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", r.t.Len())
	}
}
