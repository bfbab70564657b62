package tuple

import (
	"math"

	"github.com/dmoose/rsml/pkg/value"
)

type roundFn func(float64) float64

func roundFloor(f float64) float64   { return math.Floor(f) }
func roundCeil(f float64) float64    { return math.Ceil(f) }
func roundNearest(f float64) float64 { return math.Round(f) }
func roundAbs(f float64) float64     { return math.Abs(f) }

// roundingAnnotation builds an elementwise floor/ceil/round/abs annotation
// over every numeric-bearing Value kind §4.E names. Unsupported types are
// returned unchanged (fallback shared with lerp).
func roundingAnnotation(fn roundFn) annotationFunc {
	return func(args []value.Value) value.Value {
		v, ok := at(args, 0)
		if !ok {
			return value.None{}
		}
		return applyRounding(v, fn)
	}
}

func applyRounding(v value.Value, fn roundFn) value.Value {
	switch x := v.(type) {
	case value.Number:
		return value.Number(fn(float64(x)))
	case value.UDim:
		return value.UDim{Scale: fn(x.Scale), Offset: int32(fn(float64(x.Offset)))}
	case value.UDim2:
		return value.UDim2{
			X: applyRounding(x.X, fn).(value.UDim),
			Y: applyRounding(x.Y, fn).(value.UDim),
		}
	case value.Vector2:
		return value.Vector2{X: fn(x.X), Y: fn(x.Y)}
	case value.Vector2int16:
		return x
	case value.Vector3:
		return value.Vector3{X: fn(x.X), Y: fn(x.Y), Z: fn(x.Z)}
	case value.Vector3int16:
		return x
	case value.Rect:
		return value.Rect{
			Min: applyRounding(x.Min, fn).(value.Vector2),
			Max: applyRounding(x.Max, fn).(value.Vector2),
		}
	case value.CFrame:
		return value.CFrame{
			Position: applyRounding(x.Position, fn).(value.Vector3),
			Right:    applyRounding(x.Right, fn).(value.Vector3),
			Up:       applyRounding(x.Up, fn).(value.Vector3),
			Back:     applyRounding(x.Back, fn).(value.Vector3),
		}
	case value.Color3:
		return value.Color3{R: fn(x.R), G: fn(x.G), B: fn(x.B)}
	}
	return v
}
