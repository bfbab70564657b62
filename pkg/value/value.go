// Package value implements RSML's typed value model: the tagged Datatype
// sum of spec §3, its pairwise arithmetic (§4.C) and precedence-climbing
// reduction (§4.D).
package value

// Kind tags the concrete Go type behind a Value.
type Kind int

const (
	KindNone Kind = iota
	KindOperator
	KindTupleData
	KindIncompleteEnumShorthand
	KindOklab
	KindOklch

	KindNumber // spec's "Float32"
	KindUDim
	KindUDim2
	KindRect
	KindVector2
	KindVector2int16
	KindVector3
	KindVector3int16
	KindCFrame
	KindColor3
	KindColor3u8
	KindBrickColor
	KindFont
	KindContent
	KindEnumItem
	KindNumberRange
	KindString
	KindColorSequence
	KindNumberSequence
	KindBool
	KindInt64
)

// Value is any member of the Datatype sum. Concrete types are plain
// structs; there are no pointers and no shared mutable state.
type Value interface {
	Kind() Kind
}

// None is the absence variant, distinct from a zero-length TupleData.
type None struct{}

func (None) Kind() Kind { return KindNone }

// Op is one of the seven arithmetic operators.
type Op int

const (
	OpPow Op = iota
	OpDiv
	OpFloorDiv
	OpMod
	OpMult
	OpAdd
	OpSub
)

// Operator is a placeholder Value occupying a slot in a Group before
// reduction; it must never appear in a fully-reduced result (invariant 3).
type Operator struct{ Op Op }

func (Operator) Kind() Kind { return KindOperator }

// TupleData is an ordered, unnamed positional list (2+ items after tuple
// close with no matching annotation).
type TupleData []Value

func (TupleData) Kind() Kind { return KindTupleData }

// IncompleteEnumShorthand is a ":Name" whose enum type isn't known yet.
type IncompleteEnumShorthand struct{ Name string }

func (IncompleteEnumShorthand) Kind() Kind { return KindIncompleteEnumShorthand }

// Number is spec's Float32 variant, carried at float64 precision internally.
type Number float64

func (Number) Kind() Kind { return KindNumber }

// UDim is a (scale, offset) pair.
type UDim struct {
	Scale  float64
	Offset int32
}

func (UDim) Kind() Kind { return KindUDim }

// UDim2 is a pair of UDims, one per axis.
type UDim2 struct {
	X, Y UDim
}

func (UDim2) Kind() Kind { return KindUDim2 }

type Vector2 struct{ X, Y float64 }

func (Vector2) Kind() Kind { return KindVector2 }

type Vector2int16 struct{ X, Y int16 }

func (Vector2int16) Kind() Kind { return KindVector2int16 }

type Vector3 struct{ X, Y, Z float64 }

func (Vector3) Kind() Kind { return KindVector3 }

type Vector3int16 struct{ X, Y, Z int16 }

func (Vector3int16) Kind() Kind { return KindVector3int16 }

// Rect is an axis-aligned box given by two Vector2 corners.
type Rect struct{ Min, Max Vector2 }

func (Rect) Kind() Kind { return KindRect }

// CFrame is a position plus a 3x3 orientation matrix, stored row-wise as
// the engine convention (RightVector, UpVector, -LookVector).
type CFrame struct {
	Position                Vector3
	Right, Up, Back         Vector3
}

func (CFrame) Kind() Kind { return KindCFrame }

// Color3 holds normalized [0,1] channels.
type Color3 struct{ R, G, B float64 }

func (Color3) Kind() Kind { return KindColor3 }

// Color3u8 holds 0-255 integer channels, the literal form most RSML
// sources author colors in (hex, rgb()).
type Color3u8 struct{ R, G, B uint8 }

func (Color3u8) Kind() Kind { return KindColor3u8 }

type BrickColor struct {
	Name  string
	Color Color3u8
}

func (BrickColor) Kind() Kind { return KindBrickColor }

type Font struct {
	Family string // already normalized to an rbxasset:// family URI, or passed through
	Weight string // canonical FontWeight name, e.g. "Regular", "Bold"
	Style  string // "Normal" or "Italic"
}

func (Font) Kind() Kind { return KindFont }

type Content struct{ URI string }

func (Content) Kind() Kind { return KindContent }

type EnumItem struct {
	EnumName string
	Name     string
	Value    int32
}

func (EnumItem) Kind() Kind { return KindEnumItem }

type NumberRange struct{ Min, Max float64 }

func (NumberRange) Kind() Kind { return KindNumberRange }

type String string

func (String) Kind() Kind { return KindString }

type ColorSequenceKeypoint struct {
	Time  float64
	Value Color3
}

type ColorSequence struct{ Keypoints []ColorSequenceKeypoint }

func (ColorSequence) Kind() Kind { return KindColorSequence }

type NumberSequenceKeypoint struct {
	Time     float64
	Value    float64
	Envelope float64
}

type NumberSequence struct{ Keypoints []NumberSequenceKeypoint }

func (NumberSequence) Kind() Kind { return KindNumberSequence }

type Bool bool

func (Bool) Kind() Kind { return KindBool }

type Int64 int64

func (Int64) Kind() Kind { return KindInt64 }

// Oklab is a perceptually-uniform color carrier, kept distinct from
// Color3 until an annotation or arithmetic operation forces conversion.
type Oklab struct{ L, A, B float64 }

func (Oklab) Kind() Kind { return KindOklab }

// Oklch is Oklab in cylindrical (lightness, chroma, hue) form.
type Oklch struct{ L, C, H float64 }

func (Oklch) Kind() Kind { return KindOklch }
