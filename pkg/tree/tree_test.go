package tree

import "testing"

func TestPushLinksParentChildRules(t *testing.T) {
	g := NewGroup()
	a := g.Push(RootParent)
	b := g.Push(NodeParent(a))

	if len(g.Root().ChildRules) != 1 || g.Root().ChildRules[0] != a {
		t.Fatalf("root child rules = %v", g.Root().ChildRules)
	}
	parentNode := g.Get(a)
	if len(parentNode.ChildRules) != 1 || parentNode.ChildRules[0] != b {
		t.Fatalf("parent child rules = %v", parentNode.ChildRules)
	}
}

func TestTakeRemovesSlot(t *testing.T) {
	g := NewGroup()
	a := g.Push(RootParent)
	g.Take(a)
	if g.Get(a) != nil {
		t.Fatalf("expected nil after Take")
	}
}

func TestAncestorsWalksToRoot(t *testing.T) {
	g := NewGroup()
	a := g.Push(RootParent)
	b := g.Push(NodeParent(a))
	c := g.Push(NodeParent(b))

	anc := g.Ancestors(c)
	if len(anc) != 3 {
		t.Fatalf("expected 3 ancestors (self+2), got %d", len(anc))
	}
}
