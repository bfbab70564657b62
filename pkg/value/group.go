package value

// Group is the linear value/operator sequence the parser accumulates
// while reading an expression (spec's DatatypeGroup, §4.D).
type Group struct {
	items []Value
}

func isAddSub(op Op) bool { return op == OpAdd || op == OpSub }

// mergeSign folds two adjacent Add/Sub operators into one: "-+"->"-",
// "--"->"+", anything else the right operand wins.
func mergeSign(a, b Op) Op {
	switch {
	case a == OpSub && b == OpSub:
		return OpAdd
	case a == OpSub && b == OpAdd:
		return OpSub
	case a == OpAdd && b == OpSub:
		return OpSub
	case a == OpAdd && b == OpAdd:
		return OpAdd
	default:
		return b
	}
}

// PushValue appends a value to the group.
func (g *Group) PushValue(v Value) {
	g.items = append(g.items, v)
}

// PushOp appends an operator. An Add/Sub pushed directly after another
// Add/Sub is merged into it (mergeSign); any other operator pair is kept
// as two slots, and in "a * -b" the Sub left in unary position is folded
// into its right-hand value once reduction runs (§4.D's "operator
// merging rule").
func (g *Group) PushOp(op Op) {
	if n := len(g.items); n > 0 {
		if prev, ok := g.items[n-1].(Operator); ok && isAddSub(prev.Op) && isAddSub(op) {
			g.items[n-1] = Operator{Op: mergeSign(prev.Op, op)}
			return
		}
	}
	g.items = append(g.items, Operator{Op: op})
}

// Empty reports whether no value or operator has been pushed yet.
func (g *Group) Empty() bool { return len(g.items) == 0 }

// Reduce runs the two-phase reduction of §4.D and returns the single
// remaining value, or None if the group was empty.
func (g *Group) Reduce() Value {
	items := append([]Value(nil), g.items...)
	items = foldUnary(items)
	items = reduceTier(items, OpPow)
	items = reduceTier(items, OpDiv, OpFloorDiv, OpMod, OpMult)
	items = reduceTier(items, OpAdd, OpSub)
	if len(items) == 0 {
		return None{}
	}
	return items[0]
}

// foldUnary implements Phase 1: merge consecutive Add/Sub operators, then
// absorb any Add/Sub operator at index 0 or directly preceded by another
// operator (unary position) into its right-hand value.
func foldUnary(items []Value) []Value {
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(items); i++ {
			o1, ok1 := items[i].(Operator)
			o2, ok2 := items[i+1].(Operator)
			if ok1 && ok2 && isAddSub(o1.Op) && isAddSub(o2.Op) {
				merged := Operator{Op: mergeSign(o1.Op, o2.Op)}
				items = spliceOne(items, i, i+1, merged)
				changed = true
				break
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(items); i++ {
			op, ok := items[i].(Operator)
			if !ok || !isAddSub(op.Op) {
				continue
			}
			atUnaryPosition := i == 0
			if i > 0 {
				if _, isOp := items[i-1].(Operator); isOp {
					atUnaryPosition = true
				}
			}
			if !atUnaryPosition || i+1 >= len(items) {
				continue
			}
			right := items[i+1]
			var result Value
			if op.Op == OpSub {
				result = Apply(Number(0), OpSub, right)
			} else {
				result = right
			}
			items = spliceOne(items, i, i+1, result)
			changed = true
			break
		}
	}
	return items
}

// reduceTier repeatedly finds the leftmost operator matching one of ops
// and reduces it against its neighbours (0 if a neighbour is missing).
func reduceTier(items []Value, ops ...Op) []Value {
	matches := func(o Op) bool {
		for _, want := range ops {
			if o == want {
				return true
			}
		}
		return false
	}
	for {
		idx := -1
		for i, it := range items {
			if o, ok := it.(Operator); ok && matches(o.Op) {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		var left, right Value = Number(0), Number(0)
		lo, hi := idx, idx
		if idx-1 >= 0 {
			left = items[idx-1]
			lo = idx - 1
		}
		if idx+1 < len(items) {
			right = items[idx+1]
			hi = idx + 1
		}
		result := Apply(left, items[idx].(Operator).Op, right)
		items = spliceOne(items, lo, hi, result)
	}
	return items
}

// spliceOne replaces items[lo:hi+1] with a single value.
func spliceOne(items []Value, lo, hi int, v Value) []Value {
	out := make([]Value, 0, len(items)-(hi-lo))
	out = append(out, items[:lo]...)
	out = append(out, v)
	out = append(out, items[hi+1:]...)
	return out
}
