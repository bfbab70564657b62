// Package tree implements the arena-backed tree builder of spec
// component I: a Root plus indexed Nodes, addressed only by integer
// index, never by pointer.
package tree

import "github.com/dmoose/rsml/pkg/value"

// ParentRef identifies a node's parent: either the Root or another Node
// by index.
type ParentRef struct {
	IsRoot bool
	Index  int
}

// RootParent is the canonical root parent reference.
var RootParent = ParentRef{IsRoot: true}

func NodeParent(index int) ParentRef { return ParentRef{Index: index} }

// Node is a non-root scope: a selector rule with properties, attributes,
// and child scopes.
type Node struct {
	Selector         string
	HasSelector      bool
	Name             string
	HasName          bool
	Priority         int32
	HasPriority      bool
	Parent           ParentRef
	ChildRules       []int
	Properties       map[string]value.Value
	Attributes       map[string]value.Value
	StaticAttributes map[string]value.Value
}

func newNode(parent ParentRef) *Node {
	return &Node{
		Parent:           parent,
		Properties:       make(map[string]value.Value),
		Attributes:       make(map[string]value.Value),
		StaticAttributes: make(map[string]value.Value),
	}
}

// Root is the arena's root: the same bag-of-attributes shape as Node but
// narrower (no selector, priority, name, or properties — spec §3).
type Root struct {
	ChildRules       []int
	Attributes       map[string]value.Value
	StaticAttributes map[string]value.Value
}

func newRoot() *Root {
	return &Root{
		Attributes:       make(map[string]value.Value),
		StaticAttributes: make(map[string]value.Value),
	}
}

// Group is the arena: a Root plus a slice of optional Nodes. Slots are
// never compacted, so indices remain stable across Take.
type Group struct {
	root  *Root
	nodes []*Node
}

// NewGroup returns an empty arena.
func NewGroup() *Group {
	return &Group{root: newRoot()}
}

// Root returns the arena's root node.
func (g *Group) Root() *Root { return g.root }

// Push appends a new Node under parent and returns its index. The new
// index is appended to parent's ChildRules.
func (g *Group) Push(parent ParentRef) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, newNode(parent))
	if parent.IsRoot {
		g.root.ChildRules = append(g.root.ChildRules, idx)
	} else if p := g.Get(parent.Index); p != nil {
		p.ChildRules = append(p.ChildRules, idx)
	}
	return idx
}

// Get returns the node at index, or nil if the slot is empty or out of
// range.
func (g *Group) Get(index int) *Node {
	if index < 0 || index >= len(g.nodes) {
		return nil
	}
	return g.nodes[index]
}

// Take destructively removes and returns the node at index.
func (g *Group) Take(index int) *Node {
	n := g.Get(index)
	if n != nil {
		g.nodes[index] = nil
	}
	return n
}

// Len returns the number of slots in the arena (including emptied ones).
func (g *Group) Len() int { return len(g.nodes) }

// Ancestors walks from index up through parents to the root, yielding
// each Node along the way (not including the root itself).
func (g *Group) Ancestors(index int) []*Node {
	var out []*Node
	cur := g.Get(index)
	for cur != nil {
		out = append(out, cur)
		if cur.Parent.IsRoot {
			break
		}
		cur = g.Get(cur.Parent.Index)
	}
	return out
}
