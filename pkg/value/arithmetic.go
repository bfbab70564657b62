package value

import "math"

// applyFloat implements the scalar op table, with the div-by-zero and
// mod-by-zero fallback of §4.C: the left operand survives unchanged.
func applyFloat(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMult:
		return a * b
	case OpPow:
		return math.Pow(a, b)
	case OpDiv:
		if b == 0 {
			return a
		}
		return a / b
	case OpFloorDiv:
		if b == 0 {
			return a
		}
		return math.Floor(a / b)
	case OpMod:
		if b == 0 {
			return a
		}
		return math.Mod(a, b)
	}
	return a
}

func numberOf(v Value) (float64, bool) {
	switch n := v.(type) {
	case Number:
		return float64(n), true
	case Int64:
		return float64(n), true
	}
	return 0, false
}

// Apply implements the pairwise dispatch table of §4.C. On any
// combination it doesn't recognize, the left operand is returned
// unchanged (the documented type-mismatch fallback).
func Apply(left Value, op Op, right Value) Value {
	if ln, ok := numberOf(left); ok {
		if rn, ok := numberOf(right); ok {
			return Number(applyFloat(op, ln, rn))
		}
		return applyNumberRight(ln, op, right)
	}

	switch l := left.(type) {
	case UDim:
		switch r := right.(type) {
		case UDim:
			return UDim{Scale: applyFloat(op, l.Scale, r.Scale), Offset: int32(applyFloat(op, float64(l.Offset), float64(r.Offset)))}
		}
		if rn, ok := numberOf(right); ok {
			return applyUDimNumber(l, op, rn)
		}
	case UDim2:
		if r, ok := right.(UDim2); ok {
			return UDim2{
				X: Apply(l.X, op, r.X).(UDim),
				Y: Apply(l.Y, op, r.Y).(UDim),
			}
		}
		if rn, ok := numberOf(right); ok {
			return UDim2{X: applyUDimNumber(l.X, op, rn), Y: applyUDimNumber(l.Y, op, rn)}
		}
	case Vector2:
		if r, ok := right.(Vector2); ok {
			return Vector2{X: applyFloat(op, l.X, r.X), Y: applyFloat(op, l.Y, r.Y)}
		}
		if rn, ok := numberOf(right); ok {
			return Vector2{X: applyFloat(op, l.X, rn), Y: applyFloat(op, l.Y, rn)}
		}
	case Vector2int16:
		switch r := right.(type) {
		case Vector2int16:
			return Vector2int16{X: int16(applyFloat(op, float64(l.X), float64(r.X))), Y: int16(applyFloat(op, float64(l.Y), float64(r.Y)))}
		case Vector2:
			return Vector2{X: applyFloat(op, float64(l.X), r.X), Y: applyFloat(op, float64(l.Y), r.Y)}
		}
		if rn, ok := numberOf(right); ok {
			return Vector2int16{X: int16(applyFloat(op, float64(l.X), rn)), Y: int16(applyFloat(op, float64(l.Y), rn))}
		}
	case Vector3:
		if r, ok := right.(Vector3); ok {
			return Vector3{X: applyFloat(op, l.X, r.X), Y: applyFloat(op, l.Y, r.Y), Z: applyFloat(op, l.Z, r.Z)}
		}
		if rn, ok := numberOf(right); ok {
			return Vector3{X: applyFloat(op, l.X, rn), Y: applyFloat(op, l.Y, rn), Z: applyFloat(op, l.Z, rn)}
		}
	case Vector3int16:
		switch r := right.(type) {
		case Vector3int16:
			return Vector3int16{
				X: int16(applyFloat(op, float64(l.X), float64(r.X))),
				Y: int16(applyFloat(op, float64(l.Y), float64(r.Y))),
				Z: int16(applyFloat(op, float64(l.Z), float64(r.Z))),
			}
		case Vector3:
			return Vector3{X: applyFloat(op, float64(l.X), r.X), Y: applyFloat(op, float64(l.Y), r.Y), Z: applyFloat(op, float64(l.Z), r.Z)}
		}
		if rn, ok := numberOf(right); ok {
			return Vector3int16{
				X: int16(applyFloat(op, float64(l.X), rn)),
				Y: int16(applyFloat(op, float64(l.Y), rn)),
				Z: int16(applyFloat(op, float64(l.Z), rn)),
			}
		}
	case Rect:
		if r, ok := right.(Rect); ok {
			return Rect{
				Min: Apply(l.Min, op, r.Min).(Vector2),
				Max: Apply(l.Max, op, r.Max).(Vector2),
			}
		}
		if rn, ok := numberOf(right); ok {
			return Rect{
				Min: Vector2{X: applyFloat(op, l.Min.X, rn), Y: applyFloat(op, l.Min.Y, rn)},
				Max: Vector2{X: applyFloat(op, l.Max.X, rn), Y: applyFloat(op, l.Max.Y, rn)},
			}
		}
	case CFrame:
		if r, ok := right.(CFrame); ok {
			return CFrame{
				Position: Apply(l.Position, op, r.Position).(Vector3),
				Right:    Apply(l.Right, op, r.Right).(Vector3),
				Up:       Apply(l.Up, op, r.Up).(Vector3),
				Back:     Apply(l.Back, op, r.Back).(Vector3),
			}
		}
	case Color3:
		if r, ok := right.(Color3); ok {
			return Color3{R: applyFloat(op, l.R, r.R), G: applyFloat(op, l.G, r.G), B: applyFloat(op, l.B, r.B)}
		}
		if rn, ok := numberOf(right); ok {
			return Color3{R: applyFloat(op, l.R, rn), G: applyFloat(op, l.G, rn), B: applyFloat(op, l.B, rn)}
		}
	case Color3u8:
		if r, ok := right.(Color3u8); ok {
			return Apply(l.ToColor3(), op, r.ToColor3()).(Color3).ToColor3u8()
		}
		if rn, ok := numberOf(right); ok {
			return Apply(l.ToColor3(), op, Number(rn)).(Color3).ToColor3u8()
		}
	}
	return left
}

// applyNumberRight handles "number ∘ X" where X is not itself a number.
// A number is treated as a UDim scale against a UDim, with the documented
// exception that "number − UDim" flips the offset's sign rather than
// performing a naive elementwise subtraction.
func applyNumberRight(ln float64, op Op, right Value) Value {
	switch r := right.(type) {
	case UDim:
		if op == OpSub {
			return UDim{Scale: applyFloat(OpSub, ln, r.Scale), Offset: -r.Offset}
		}
		return UDim{Scale: applyFloat(op, ln, r.Scale), Offset: r.Offset}
	case UDim2:
		return UDim2{
			X: applyNumberRight(ln, op, r.X).(UDim),
			Y: applyNumberRight(ln, op, r.Y).(UDim),
		}
	case Vector2:
		return Vector2{X: applyFloat(op, ln, r.X), Y: applyFloat(op, ln, r.Y)}
	case Vector2int16:
		return Vector2int16{X: int16(applyFloat(op, ln, float64(r.X))), Y: int16(applyFloat(op, ln, float64(r.Y)))}
	case Vector3:
		return Vector3{X: applyFloat(op, ln, r.X), Y: applyFloat(op, ln, r.Y), Z: applyFloat(op, ln, r.Z)}
	case Vector3int16:
		return Vector3int16{
			X: int16(applyFloat(op, ln, float64(r.X))),
			Y: int16(applyFloat(op, ln, float64(r.Y))),
			Z: int16(applyFloat(op, ln, float64(r.Z))),
		}
	case Rect:
		return Rect{
			Min: Vector2{X: applyFloat(op, ln, r.Min.X), Y: applyFloat(op, ln, r.Min.Y)},
			Max: Vector2{X: applyFloat(op, ln, r.Max.X), Y: applyFloat(op, ln, r.Max.Y)},
		}
	case Color3:
		return Color3{R: applyFloat(op, ln, r.R), G: applyFloat(op, ln, r.G), B: applyFloat(op, ln, r.B)}
	}
	return Number(ln)
}

// applyUDimNumber handles "UDim ∘ number", the mirror of
// applyNumberRight with no sign-flip special case (that only applies to
// "number − UDim", not "UDim − number").
func applyUDimNumber(l UDim, op Op, rn float64) UDim {
	return UDim{Scale: applyFloat(op, l.Scale, rn), Offset: int32(applyFloat(op, float64(l.Offset), rn))}
}
