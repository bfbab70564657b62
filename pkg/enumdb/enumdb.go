// Package enumdb stands in for the target engine's reflection database: a
// small table of known enums and their named members, plus the shorthand
// rebind table used to resolve ":Name" against a property's declared type.
package enumdb

import (
	"strings"

	"github.com/dmoose/rsml/pkg/value"
)

// members maps an enum name to its member names, in declaration order
// (the order becomes the member's integer Value).
var members = map[string][]string{
	"UIFlexMode":          {"None", "Fill", "Custom"},
	"UIFlexAlignment":     {"None", "Fill", "SpaceAround", "SpaceBetween", "SpaceEvenly"},
	"FontWeight":          {"Thin", "ExtraLight", "Light", "Regular", "Medium", "SemiBold", "Bold", "ExtraBold", "Heavy"},
	"FontStyle":           {"Normal", "Italic"},
	"HorizontalAlignment": {"Left", "Center", "Right"},
	"VerticalAlignment":   {"Top", "Center", "Bottom"},
	"TextXAlignment":      {"Left", "Center", "Right"},
	"TextYAlignment":      {"Top", "Center", "Bottom"},
	"ScaleType":           {"Stretch", "Slice", "Tile", "Fit", "Crop"},
	"SortOrder":           {"Name", "LayoutOrder"},
	"FillDirection":       {"Horizontal", "Vertical"},
	"AutomaticSize":       {"None", "X", "Y", "XY"},
	"ZIndexBehavior":      {"Sibling", "Global"},
	"BorderMode":          {"Outline", "Middle", "Inset"},
}

// shorthandRebinds maps a property key that doesn't name its enum
// directly to the enum a ":Name" shorthand assigned under that key
// resolves against (original_source's SHORTHAND_REBINDS).
var shorthandRebinds = map[string]string{
	"FlexMode":       "UIFlexMode",
	"HorizontalFlex": "UIFlexAlignment",
	"VerticalFlex":   "UIFlexAlignment",
}

// Lookup resolves "Enum.<enumName>.<memberName>" to an EnumItem, or
// value.None{} if either the enum or the member is unknown.
func Lookup(enumName, memberName string) value.Value {
	names, ok := members[enumName]
	if !ok {
		return value.None{}
	}
	for i, n := range names {
		if n == memberName {
			return value.EnumItem{EnumName: enumName, Name: memberName, Value: int32(i)}
		}
	}
	return value.None{}
}

// ResolveShorthand resolves a ":Name" shorthand given the property key it
// was assigned to. propertyKey is first looked up in the rebind table;
// failing that, propertyKey itself is tried as an enum name. Unknown
// combinations yield value.None{}.
func ResolveShorthand(propertyKey, memberName string) value.Value {
	enumName := propertyKey
	if rebind, ok := shorthandRebinds[propertyKey]; ok {
		enumName = rebind
	}
	if v := Lookup(enumName, memberName); v.Kind() != value.KindNone {
		return v
	}
	// Fall back to a case-insensitive enum name match, since property keys
	// and enum names don't always share exact casing.
	lower := strings.ToLower(enumName)
	for name := range members {
		if strings.ToLower(name) == lower {
			return Lookup(name, memberName)
		}
	}
	return value.None{}
}
