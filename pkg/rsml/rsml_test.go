package rsml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmoose/rsml/pkg/value"
)

func TestLoadResolvesDeriveMacros(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "theme.rsml")
	if err := os.WriteFile(base, []byte(`@macro accent(n) { Tint = $n; }`), 0o644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "main.rsml")
	src := `
@derive "theme"
Frame {
  accent!(7);
}`
	if err := os.WriteFile(main, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(main)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	idx := g.Root().ChildRules[0]
	n := g.Get(idx)
	got, ok := n.Properties["Tint"].(value.Number)
	if !ok || got != 7 {
		t.Fatalf("Tint = %#v", n.Properties["Tint"])
	}
}

func TestLoadSkipsUnreadableDerive(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.rsml")
	src := `
@derive "missing"
Frame { X = 1; }`
	if err := os.WriteFile(main, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(main)
	if err != nil {
		t.Fatalf("LoadFile should not fail on an unreadable derive: %v", err)
	}
	if g.Root().ChildRules == nil {
		t.Fatalf("expected the main file to still parse")
	}
}

func TestLoadSeedsBuiltinMacros(t *testing.T) {
	g, err := Load(`Frame { center!(); }`, ".")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	idx := g.Root().ChildRules[0]
	n := g.Get(idx)
	if _, ok := n.Properties["HorizontalAlignment"]; !ok {
		t.Fatalf("expected built-in center!() macro to set HorizontalAlignment, got %#v", n.Properties)
	}
}

func TestDumpProducesJSONFriendlyTree(t *testing.T) {
	g, err := Load(`Frame { Size = UDim2(1,0,0,40); }`, ".")
	if err != nil {
		t.Fatal(err)
	}
	tr := Dump(g)
	if len(tr.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(tr.Nodes))
	}
	size, ok := tr.Nodes[0].Properties["Size"].(map[string]any)
	if !ok {
		t.Fatalf("Size not dumped as a map: %#v", tr.Nodes[0].Properties["Size"])
	}
	if _, ok := size["x"]; !ok {
		t.Fatalf("Size missing x axis: %#v", size)
	}
}
