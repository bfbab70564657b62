// Package tuple implements the tuple + annotation dispatcher of spec
// component E: coercing a positional argument list into one of the
// engine's ~25 constructor types.
package tuple

import (
	"strconv"
	"strings"

	"github.com/dmoose/rsml/pkg/palette"
	"github.com/dmoose/rsml/pkg/value"
)

// Tuple is a positional argument list associated with a "( ... )" form.
// Unnamed tuples coerce to TupleData/None/single-item; named tuples whose
// name matches an entry in the annotation table are run through it.
type Tuple struct {
	Name    string
	HasName bool
	Items   []value.Value
}

// Resolve converts t into a single Value per §4.E's rules.
func (t *Tuple) Resolve() value.Value {
	if t.HasName {
		if fn, ok := annotations[strings.ToLower(t.Name)]; ok {
			return fn(t.Items)
		}
	}
	switch len(t.Items) {
	case 0:
		return value.None{}
	case 1:
		return t.Items[0]
	default:
		return value.TupleData(t.Items)
	}
}

type annotationFunc func(args []value.Value) value.Value

var annotations map[string]annotationFunc

func init() {
	annotations = map[string]annotationFunc{
		"udim":       udimAnnotation,
		"udim2":      udim2Annotation,
		"vec2":       vec2Annotation,
		"vec2i16":    vec2int16Annotation,
		"vec3":       vec3Annotation,
		"vec3i16":    vec3int16Annotation,
		"rect":       rectAnnotation,
		"cframe":     cframeAnnotation,
		"color3":     color3Annotation,
		"rgb":        rgbAnnotation,
		"oklab":      oklabAnnotation,
		"oklch":      oklchAnnotation,
		"brickcolor": brickcolorAnnotation,
		"colorseq":   colorseqAnnotation,
		"numseq":     numseqAnnotation,
		"numrange":   numrangeAnnotation,
		"font":       fontAnnotation,
		"content":    contentAnnotation,
		"lerp":       lerpAnnotation,
		"floor":      roundingAnnotation(roundFloor),
		"ceil":       roundingAnnotation(roundCeil),
		"round":      roundingAnnotation(roundNearest),
		"abs":        roundingAnnotation(roundAbs),
	}
}

func at(items []value.Value, i int) (value.Value, bool) {
	if i < 0 || i >= len(items) {
		return nil, false
	}
	return items[i], true
}

func asNumber(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Number:
		return float64(n), true
	case value.Int64:
		return float64(n), true
	}
	return 0, false
}

func numberOrZero(items []value.Value, i int) float64 {
	v, ok := at(items, i)
	if !ok {
		return 0
	}
	n, _ := asNumber(v)
	return n
}

// asUDim coerces a number to an offset-only UDim, passing a UDim through
// unchanged.
func asUDim(v value.Value) (value.UDim, bool) {
	switch u := v.(type) {
	case value.UDim:
		return u, true
	case value.Number:
		return value.UDim{Offset: int32(u)}, true
	case value.Int64:
		return value.UDim{Offset: int32(u)}, true
	}
	return value.UDim{}, false
}

func asVector2(v value.Value) (value.Vector2, bool) {
	switch x := v.(type) {
	case value.Vector2:
		return x, true
	case value.Number:
		return value.Vector2{X: float64(x), Y: float64(x)}, true
	}
	return value.Vector2{}, false
}

func asVector3(v value.Value) (value.Vector3, bool) {
	switch x := v.(type) {
	case value.Vector3:
		return x, true
	case value.Number:
		return value.Vector3{X: float64(x), Y: float64(x), Z: float64(x)}, true
	}
	return value.Vector3{}, false
}

// asColor3 converts any of the color-bearing Value kinds to a Color3.
func asColor3(v value.Value) (value.Color3, bool) {
	switch c := v.(type) {
	case value.Color3:
		return c, true
	case value.Color3u8:
		return c.ToColor3(), true
	case value.Oklab:
		return c.ToColor3(), true
	case value.Oklch:
		return c.ToColor3(), true
	case value.BrickColor:
		return c.Color.ToColor3(), true
	}
	return value.Color3{}, false
}

func udimAnnotation(args []value.Value) value.Value {
	s := numberOrZero(args, 0)
	if len(args) < 2 {
		return value.UDim{Scale: s, Offset: int32(s * 100)}
	}
	return value.UDim{Scale: s, Offset: int32(numberOrZero(args, 1))}
}

func udim2Annotation(args []value.Value) value.Value {
	if len(args) >= 4 {
		return value.UDim2{
			X: value.UDim{Scale: numberOrZero(args, 0), Offset: int32(numberOrZero(args, 1))},
			Y: value.UDim{Scale: numberOrZero(args, 2), Offset: int32(numberOrZero(args, 3))},
		}
	}
	var x, y value.UDim
	if v, ok := at(args, 0); ok {
		x, _ = asUDim(v)
	}
	if v, ok := at(args, 1); ok {
		y, _ = asUDim(v)
	} else {
		y = x
	}
	return value.UDim2{X: x, Y: y}
}

func vec2Annotation(args []value.Value) value.Value {
	x := numberOrZero(args, 0)
	y := x
	if len(args) > 1 {
		y = numberOrZero(args, 1)
	}
	return value.Vector2{X: x, Y: y}
}

func vec2int16Annotation(args []value.Value) value.Value {
	v := vec2Annotation(args).(value.Vector2)
	return value.Vector2int16{X: int16(v.X), Y: int16(v.Y)}
}

func vec3Annotation(args []value.Value) value.Value {
	x := numberOrZero(args, 0)
	y, z := x, x
	if len(args) > 1 {
		y = numberOrZero(args, 1)
		z = y
	}
	if len(args) > 2 {
		z = numberOrZero(args, 2)
	}
	return value.Vector3{X: x, Y: y, Z: z}
}

func vec3int16Annotation(args []value.Value) value.Value {
	v := vec3Annotation(args).(value.Vector3)
	return value.Vector3int16{X: int16(v.X), Y: int16(v.Y), Z: int16(v.Z)}
}

func rectAnnotation(args []value.Value) value.Value {
	if len(args) >= 4 {
		minV := value.Vector2{X: numberOrZero(args, 0), Y: numberOrZero(args, 1)}
		maxV := value.Vector2{X: numberOrZero(args, 2), Y: numberOrZero(args, 3)}
		return value.Rect{Min: minV, Max: maxV}
	}
	var minV, maxV value.Vector2
	if v, ok := at(args, 0); ok {
		minV, _ = asVector2(v)
	}
	if v, ok := at(args, 1); ok {
		maxV, _ = asVector2(v)
	} else {
		maxV = minV
	}
	return value.Rect{Min: minV, Max: maxV}
}

// cframeAnnotation accepts either (position, rightRow, upRow, backRow) as
// Vector3s, or 12 bare scalars, with missing rows inheriting the previous
// row's value (§4.E).
func cframeAnnotation(args []value.Value) value.Value {
	if len(args) >= 12 {
		row := func(i int) value.Vector3 {
			return value.Vector3{X: numberOrZero(args, i), Y: numberOrZero(args, i+1), Z: numberOrZero(args, i+2)}
		}
		return value.CFrame{Position: row(0), Right: row(3), Up: row(6), Back: row(9)}
	}
	rows := make([]value.Vector3, 4)
	for i := range rows {
		if v, ok := at(args, i); ok {
			rows[i], _ = asVector3(v)
		} else if i > 0 {
			rows[i] = rows[i-1]
		}
	}
	return value.CFrame{Position: rows[0], Right: rows[1], Up: rows[2], Back: rows[3]}
}

func color3Annotation(args []value.Value) value.Value {
	if len(args) == 1 {
		if c, ok := asColor3(args[0]); ok {
			return c
		}
	}
	return value.Color3{R: numberOrZero(args, 0), G: numberOrZero(args, 1), B: numberOrZero(args, 2)}
}

func rgbAnnotation(args []value.Value) value.Value {
	if len(args) == 1 {
		if c, ok := asColor3(args[0]); ok {
			return c.ToColor3u8()
		}
	}
	clampByte := func(f float64) uint8 {
		if f < 0 {
			return 0
		}
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return value.Color3u8{
		R: clampByte(numberOrZero(args, 0)),
		G: clampByte(numberOrZero(args, 1)),
		B: clampByte(numberOrZero(args, 2)),
	}
}

// remapAxis maps a UDim's scale from [-1,1] to [-0.4,0.4] — the
// convention oklab()/oklch() use so a percentage literal like "50%" can
// address the a/b/C axes (supplement 4.E).
func remapAxis(v value.Value) float64 {
	if u, ok := v.(value.UDim); ok {
		t := (u.Scale + 1) / 2
		return -0.4 + t*0.8
	}
	n, _ := asNumber(v)
	return n
}

func oklabAnnotation(args []value.Value) value.Value {
	if len(args) == 1 {
		if c, ok := asColor3(args[0]); ok {
			return c.ToOklab()
		}
	}
	l := numberOrZero(args, 0)
	var a, b float64
	if v, ok := at(args, 1); ok {
		a = remapAxis(v)
	}
	if v, ok := at(args, 2); ok {
		b = remapAxis(v)
	}
	return value.Oklab{L: l, A: a, B: b}
}

func oklchAnnotation(args []value.Value) value.Value {
	if len(args) == 1 {
		if c, ok := asColor3(args[0]); ok {
			return c.ToOklch()
		}
	}
	l := numberOrZero(args, 0)
	var c, h float64
	if v, ok := at(args, 1); ok {
		c = remapAxis(v)
	}
	if v, ok := at(args, 2); ok {
		h, _ = asNumber(v)
		if u, ok := v.(value.UDim); ok {
			h = u.Scale * 360
		}
	}
	return value.Oklch{L: l, C: c, H: h}
}

func brickcolorAnnotation(args []value.Value) value.Value {
	name := ""
	if v, ok := at(args, 0); ok {
		if s, ok := v.(value.String); ok {
			name = string(s)
		}
	}
	return palette.LookupBrickColor(name)
}

func numrangeAnnotation(args []value.Value) value.Value {
	min := numberOrZero(args, 0)
	max := min
	if len(args) > 1 {
		max = numberOrZero(args, 1)
	}
	return value.NumberRange{Min: min, Max: max}
}

var fontWeightNames = map[string]bool{
	"thin": true, "extralight": true, "light": true, "regular": true,
	"medium": true, "semibold": true, "bold": true, "extrabold": true, "heavy": true,
}

// fontWeightFromNumber maps CSS numeric weights (100-900) to the named
// FontWeight enum, per SPEC_FULL.md supplement 9.
func fontWeightFromNumber(n float64) string {
	switch {
	case n <= 150:
		return "Thin"
	case n <= 250:
		return "ExtraLight"
	case n <= 350:
		return "Light"
	case n <= 450:
		return "Regular"
	case n <= 550:
		return "Medium"
	case n <= 650:
		return "SemiBold"
	case n <= 750:
		return "Bold"
	case n <= 850:
		return "ExtraBold"
	default:
		return "Heavy"
	}
}

// defaultFontFamily is the asset used when font() omits its first
// argument, matching original_source's font annotation default.
const defaultFontFamily = "rbxasset://fonts/families/SourceSansPro.json"

func fontAnnotation(args []value.Value) value.Value {
	family := defaultFontFamily
	if v, ok := at(args, 0); ok {
		switch f := v.(type) {
		case value.String:
			family = string(f)
			if !strings.Contains(family, "://") {
				family = "rbxasset://fonts/families/" + family + ".json"
			}
		case value.Number:
			family = "rbxassetid://" + strconv.FormatInt(int64(f), 10)
		case value.Int64:
			family = "rbxassetid://" + strconv.FormatInt(int64(f), 10)
		}
	}
	weight := "Regular"
	if v, ok := at(args, 1); ok {
		switch w := v.(type) {
		case value.Number:
			weight = fontWeightFromNumber(float64(w))
		case value.Int64:
			weight = fontWeightFromNumber(float64(w))
		case value.String:
			candidate := capitalize(string(w))
			if fontWeightNames[strings.ToLower(string(w))] {
				weight = candidate
			}
		case value.IncompleteEnumShorthand:
			candidate := capitalize(w.Name)
			if fontWeightNames[strings.ToLower(w.Name)] {
				weight = candidate
			}
		}
	}
	style := "Normal"
	if v, ok := at(args, 2); ok {
		switch s := v.(type) {
		case value.String:
			if strings.EqualFold(string(s), "italic") {
				style = "Italic"
			}
		case value.IncompleteEnumShorthand:
			if strings.EqualFold(s.Name, "italic") {
				style = "Italic"
			}
		}
	}
	return value.Font{Family: family, Weight: weight, Style: style}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func contentAnnotation(args []value.Value) value.Value {
	v, ok := at(args, 0)
	if !ok {
		return value.Content{}
	}
	switch c := v.(type) {
	case value.Number:
		return value.Content{URI: "rbxassetid://" + strconv.FormatInt(int64(c), 10)}
	case value.Int64:
		return value.Content{URI: "rbxassetid://" + strconv.FormatInt(int64(c), 10)}
	case value.String:
		return value.Content{URI: string(c)}
	}
	return value.Content{}
}

// lerpAnnotation linearly interpolates two like-typed values by t. A
// mismatch (including unsupported types) leaves the left operand
// unchanged, matching the rounding/lerp annotations' documented fallback.
func lerpAnnotation(args []value.Value) value.Value {
	a, aok := at(args, 0)
	b, bok := at(args, 1)
	t := 0.5
	if v, ok := at(args, 2); ok {
		if n, ok := asNumber(v); ok {
			t = n
		}
	}
	if !aok || !bok {
		if aok {
			return a
		}
		return value.None{}
	}
	if al, ok := a.(value.Oklch); ok {
		if bl, ok2 := coerceToOklch(b); ok2 {
			return value.Oklch{
				L: al.L + (bl.L-al.L)*t,
				C: al.C + (bl.C-al.C)*t,
				H: al.H + (bl.H-al.H)*t,
			}
		}
	}
	if al, ok := a.(value.Oklab); ok {
		if bl, ok2 := coerceToOklab(b); ok2 {
			return value.Oklab{
				L: al.L + (bl.L-al.L)*t,
				A: al.A + (bl.A-al.A)*t,
				B: al.B + (bl.B-al.B)*t,
			}
		}
	}
	if a.Kind() != b.Kind() {
		return a
	}
	left := value.Apply(a, value.OpMult, value.Number(1-t))
	right := value.Apply(b, value.OpMult, value.Number(t))
	if left.Kind() != a.Kind() || right.Kind() != b.Kind() {
		return a
	}
	return value.Apply(left, value.OpAdd, right)
}

func coerceToOklch(v value.Value) (value.Oklch, bool) {
	switch c := v.(type) {
	case value.Oklch:
		return c, true
	case value.Oklab:
		return c.ToOklch(), true
	case value.Color3:
		return c.ToOklch(), true
	case value.Color3u8:
		return c.ToColor3().ToOklch(), true
	}
	return value.Oklch{}, false
}

func coerceToOklab(v value.Value) (value.Oklab, bool) {
	switch c := v.(type) {
	case value.Oklab:
		return c, true
	case value.Oklch:
		return c.ToOklab(), true
	case value.Color3:
		return c.ToOklab(), true
	case value.Color3u8:
		return c.ToColor3().ToOklab(), true
	}
	return value.Oklab{}, false
}
