package ptree

import (
	"errors"
	"strings"
	"testing"

	"github.com/ptree-go/ptree/tree"
)

func TestDiff(t *testing.T) {
	a := map[string]any{"a": 1, "b": []any{2, 3}}
	b := map[string]any{"a": 1, "b": []any{2, 30}}
	ds, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 {
		t.Fatalf("got %d diffs, want 1: %v", len(ds), ds)
	}
	d := ds[0]
	if d.Path() != "$.b[1]" {
		t.Errorf("path %q", d.Path())
	}
	if d.From != 3 || d.To != 30 {
		t.Errorf("from %v to %v", d.From, d.To)
	}
}

func TestDiffEqual(t *testing.T) {
	a := map[string]any{"a": 1}
	ds, err := Diff(a, map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 0 {
		t.Errorf("got %v", ds)
	}
}

func TestDiffIncongruent(t *testing.T) {
	_, err := Diff([]any{1}, []any{1, 2})
	if !errors.Is(err, tree.ErrStructure) {
		t.Errorf("got %v, want ErrStructure", err)
	}
}

func TestDiffStringPatch(t *testing.T) {
	a := map[string]any{"msg": "hello world"}
	b := map[string]any{"msg": "hello there"}
	ds, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 {
		t.Fatalf("got %d diffs", len(ds))
	}
	if ds[0].Patch == "" {
		t.Errorf("string leaves should carry a textual patch")
	}
	if !strings.Contains(ds[0].String(), "$.msg") {
		t.Errorf("diff line %q", ds[0].String())
	}
}
