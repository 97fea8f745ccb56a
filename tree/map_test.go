package tree

import (
	"errors"
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	in := map[string]any{"a": 1, "b": []any{2, 3}}
	v, err := Map(func(x any) (any, error) { return x.(int) * 10, nil }, in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 10, "b": []any{20, 30}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("mapped %#v, want %#v", v, want)
	}
}

func TestMapSkipsFrozen(t *testing.T) {
	in := []any{1, Freeze(2), 3}
	v, err := Map(func(x any) (any, error) { return x.(int) + 1, nil }, in)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if got[0] != 2 || got[2] != 4 {
		t.Errorf("mapped %#v", got)
	}
	f, ok := got[1].(*Frozen)
	if !ok || f.Unwrap() != 2 {
		t.Errorf("frozen leaf touched: %#v", got[1])
	}
}

func TestMap2(t *testing.T) {
	a := []any{1, 2, 3}
	b := []any{10, 20, 30}
	v, err := Map2(func(x, y any) (any, error) { return x.(int) + y.(int), nil }, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []any{11, 22, 33}) {
		t.Errorf("mapped %#v", v)
	}
}

func TestMap2Incongruent(t *testing.T) {
	_, err := Map2(func(x, y any) (any, error) { return x, nil }, []any{1, 2}, []any{1})
	if !errors.Is(err, ErrStructure) {
		t.Errorf("got %v, want ErrStructure", err)
	}
}

func TestMap2Frozen(t *testing.T) {
	a := []any{1, Freeze(2)}
	b := []any{10, 20}
	v, err := Map2(func(x, y any) (any, error) { return x.(int) + y.(int), nil }, a, b)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if got[0] != 11 {
		t.Errorf("leaf 0: %v", got[0])
	}
	if f, ok := got[1].(*Frozen); !ok || f.Unwrap() != 2 {
		t.Errorf("frozen position should keep a's leaf, got %#v", got[1])
	}
}
