package derive

import (
	"reflect"
	"testing"
)

func TestCollectBareString(t *testing.T) {
	got := Collect(`@derive "base";`)
	want := []string{"base"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCollectParenthesizedList(t *testing.T) {
	got := Collect(`@derive("a", "b", "c");`)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCollectDedupesPreservingFirstSeenOrder(t *testing.T) {
	got := Collect(`@derive "a"; @derive "b"; @derive "a";`)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilenameAddsExtensionOnlyWhenMissing(t *testing.T) {
	if Filename("base") != "base.rsml" {
		t.Fatalf("got %q", Filename("base"))
	}
	if Filename("base.rsml") != "base.rsml" {
		t.Fatalf("got %q", Filename("base.rsml"))
	}
}
