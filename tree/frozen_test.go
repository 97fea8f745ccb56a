package tree

import (
	"errors"
	"testing"
)

func TestFreezeIdempotent(t *testing.T) {
	f := Freeze(42)
	if g := Freeze(f); g != f {
		t.Errorf("freezing a frozen value should be a no-op")
	}
	if f.Unwrap() != 42 {
		t.Errorf("unwrap: %v", f.Unwrap())
	}
}

func TestFrozenIsLeaf(t *testing.T) {
	in := map[string]any{"a": Freeze([]any{1, 2}), "b": 3}
	leaves, def, err := Flatten(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2; frozen subtrees must not decompose", len(leaves))
	}
	frozen := def.FrozenLeaves()
	if !frozen[0] || frozen[1] {
		t.Errorf("frozen flags %v", frozen)
	}
}

func TestUnfreeze(t *testing.T) {
	v, err := Unfreeze(Freeze("x"))
	if err != nil {
		t.Fatal(err)
	}
	if v != "x" {
		t.Errorf("unfroze %v", v)
	}
	_, err = Unfreeze("x")
	if !errors.Is(err, ErrNotFrozen) {
		t.Errorf("got %v, want ErrNotFrozen", err)
	}
}

func TestFrozenEqual(t *testing.T) {
	if !Freeze([]any{1}).Equal(Freeze([]any{1})) {
		t.Errorf("frozen equality should compare contents")
	}
	if Freeze(1).Equal(Freeze(2)) {
		t.Errorf("distinct contents compared equal")
	}
	if Freeze(1).Equal(nil) {
		t.Errorf("nil compared equal")
	}
}

func TestFrozenString(t *testing.T) {
	if s := Freeze(5).String(); s != "#5" {
		t.Errorf("got %q", s)
	}
}
