package rsml

import (
	"github.com/dmoose/rsml/pkg/tree"
	"github.com/dmoose/rsml/pkg/value"
)

// Tree and Node give the arena-indexed tree.Group a JSON-friendly shape:
// values are flattened to plain Go data (numbers, strings, nested maps)
// since value.Value is a closed interface with no JSON tags of its own,
// matching the teacher's Dictionary.Root (a plain map) being the thing
// that actually gets encoded (pkg/tokens/loader.go's WriteJSON in the
// teacher repo this was grounded on).
type Tree struct {
	Root  RootDump `json:"root"`
	Nodes []Node   `json:"nodes"`
}

type RootDump struct {
	Attributes       map[string]any `json:"attributes"`
	StaticAttributes map[string]any `json:"staticAttributes"`
	ChildRules       []int          `json:"childRules"`
}

type Node struct {
	Selector         string         `json:"selector,omitempty"`
	Name             string         `json:"name,omitempty"`
	Priority         *int32         `json:"priority,omitempty"`
	Parent           any            `json:"parent"`
	ChildRules       []int          `json:"childRules"`
	Properties       map[string]any `json:"properties"`
	Attributes       map[string]any `json:"attributes"`
	StaticAttributes map[string]any `json:"staticAttributes"`
}

func dumpValueMap(m map[string]value.Value) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = dumpValue(v)
	}
	return out
}

func dumpParent(p tree.ParentRef) any {
	if p.IsRoot {
		return "root"
	}
	return p.Index
}

// dumpValue converts a value.Value into plain JSON-marshalable data.
func dumpValue(v value.Value) any {
	switch x := v.(type) {
	case value.None:
		return nil
	case value.Number:
		return float64(x)
	case value.Int64:
		return int64(x)
	case value.Bool:
		return bool(x)
	case value.String:
		return string(x)
	case value.UDim:
		return map[string]any{"scale": x.Scale, "offset": x.Offset}
	case value.UDim2:
		return map[string]any{"x": dumpValue(x.X), "y": dumpValue(x.Y)}
	case value.Vector2:
		return map[string]any{"x": x.X, "y": x.Y}
	case value.Vector2int16:
		return map[string]any{"x": x.X, "y": x.Y}
	case value.Vector3:
		return map[string]any{"x": x.X, "y": x.Y, "z": x.Z}
	case value.Vector3int16:
		return map[string]any{"x": x.X, "y": x.Y, "z": x.Z}
	case value.Rect:
		return map[string]any{"min": dumpValue(x.Min), "max": dumpValue(x.Max)}
	case value.CFrame:
		return map[string]any{
			"position": dumpValue(x.Position),
			"right":    dumpValue(x.Right),
			"up":       dumpValue(x.Up),
			"back":     dumpValue(x.Back),
		}
	case value.Color3:
		return map[string]any{"r": x.R, "g": x.G, "b": x.B}
	case value.Color3u8:
		return map[string]any{"r": x.R, "g": x.G, "b": x.B}
	case value.BrickColor:
		return map[string]any{"name": x.Name, "color": dumpValue(x.Color)}
	case value.Font:
		return map[string]any{"family": x.Family, "weight": x.Weight, "style": x.Style}
	case value.Content:
		return map[string]any{"uri": x.URI}
	case value.EnumItem:
		return map[string]any{"enum": x.EnumName, "name": x.Name, "value": x.Value}
	case value.NumberRange:
		return map[string]any{"min": x.Min, "max": x.Max}
	case value.ColorSequence:
		kps := make([]any, len(x.Keypoints))
		for i, kp := range x.Keypoints {
			kps[i] = map[string]any{"time": kp.Time, "value": dumpValue(kp.Value)}
		}
		return kps
	case value.NumberSequence:
		kps := make([]any, len(x.Keypoints))
		for i, kp := range x.Keypoints {
			kps[i] = map[string]any{"time": kp.Time, "value": kp.Value, "envelope": kp.Envelope}
		}
		return kps
	case value.Oklab:
		return map[string]any{"l": x.L, "a": x.A, "b": x.B}
	case value.Oklch:
		return map[string]any{"l": x.L, "c": x.C, "h": x.H}
	case value.TupleData:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = dumpValue(item)
		}
		return out
	case value.IncompleteEnumShorthand:
		return map[string]any{"shorthand": x.Name}
	}
	return nil
}

// Dump converts g into its JSON-friendly Tree shape.
func Dump(g *tree.Group) Tree {
	root := g.Root()
	out := Tree{
		Root: RootDump{
			Attributes:       dumpValueMap(root.Attributes),
			StaticAttributes: dumpValueMap(root.StaticAttributes),
			ChildRules:       root.ChildRules,
		},
	}
	for i := 0; i < g.Len(); i++ {
		n := g.Get(i)
		if n == nil {
			out.Nodes = append(out.Nodes, Node{})
			continue
		}
		dn := Node{
			Selector:         n.Selector,
			Name:             n.Name,
			Parent:           dumpParent(n.Parent),
			ChildRules:       n.ChildRules,
			Properties:       dumpValueMap(n.Properties),
			Attributes:       dumpValueMap(n.Attributes),
			StaticAttributes: dumpValueMap(n.StaticAttributes),
		}
		if n.HasPriority {
			p := n.Priority
			dn.Priority = &p
		}
		out.Nodes = append(out.Nodes, dn)
	}
	return out
}
