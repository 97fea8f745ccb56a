package ptree

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ptree-go/ptree/tree"
)

func addAll(args ...any) (any, error) {
	sum := 0
	for _, a := range args {
		n, ok := a.(int)
		if !ok {
			return nil, fmt.Errorf("want int, got %T", a)
		}
		sum += n
	}
	return sum, nil
}

func TestBCMapScalars(t *testing.T) {
	f := BCMap(addAll)
	v, err := f(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Errorf("got %v", v)
	}
}

func TestBCMapBroadcast(t *testing.T) {
	f := BCMap(addAll)
	v, err := f([]any{1, 2}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []any{11, 12}) {
		t.Errorf("got %#v", v)
	}
}

func TestBCMapTrees(t *testing.T) {
	f := BCMap(addAll)
	v, err := f([]any{1, 2}, []any{10, 20}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []any{111, 122}) {
		t.Errorf("got %#v", v)
	}
}

func TestBCMapIncongruent(t *testing.T) {
	f := BCMap(addAll)
	_, err := f([]any{1, 2}, []any{1})
	if err == nil {
		t.Errorf("expected congruence error")
	}
}

func TestBCMapFrozen(t *testing.T) {
	f := BCMap(addAll)
	v, err := f([]any{1, tree.Freeze(2)}, 10)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if got[0] != 11 {
		t.Errorf("leaf 0: %v", got[0])
	}
	fz, ok := got[1].(*tree.Frozen)
	if !ok || fz.Unwrap() != 2 {
		t.Errorf("frozen position changed: %#v", got[1])
	}
}
