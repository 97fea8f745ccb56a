package trace

import (
	"errors"
	"reflect"
	"testing"
)

type pair struct {
	A, B int
}

type pairRule struct{}

func (pairRule) Trace(v any) ([]Child, error) {
	p := v.(pair)
	return []Child{
		{Name: "A", Index: 0, Value: p.A},
		{Name: "B", Index: 1, Value: p.B},
	}, nil
}

func (pairRule) Build(proto any, children []any) (any, error) {
	return pair{A: children[0].(int), B: children[1].(int)}, nil
}

type otherRule struct{}

func (otherRule) Trace(v any) ([]Child, error)                { return nil, nil }
func (otherRule) Build(proto any, children []any) (any, error) { return proto, nil }

func TestRegisterConflict(t *testing.T) {
	typ := reflect.TypeOf(pair{})
	if err := Register(typ, pairRule{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(typ, pairRule{}); err != nil {
		t.Errorf("re-registering the same rule: %v", err)
	}
	err := Register(typ, otherRule{})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("conflicting register: got %v, want ErrConflict", err)
	}
	if err := Register(typ, otherRule{}, Override()); err != nil {
		t.Errorf("override register: %v", err)
	}
	if err := Register(typ, pairRule{}, Override()); err != nil {
		t.Fatalf("restore register: %v", err)
	}
}

func TestRegisterKindBuiltin(t *testing.T) {
	err := RegisterKind(reflect.Slice, otherRule{})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("overwriting built-in kind: got %v, want ErrConflict", err)
	}
}

func TestLookup(t *testing.T) {
	if Lookup(reflect.TypeOf([]int{})) == nil {
		t.Errorf("no rule for slices")
	}
	if Lookup(reflect.TypeOf([2]string{})) == nil {
		t.Errorf("no rule for arrays")
	}
	if Lookup(reflect.TypeOf(map[string]int{})) == nil {
		t.Errorf("no rule for maps")
	}
	if r := Lookup(reflect.TypeOf(42)); r != nil {
		t.Errorf("int should be an opaque leaf, got %T", r)
	}
	if r := Lookup(nil); r != nil {
		t.Errorf("nil type should have no rule, got %T", r)
	}
}

type selfTraced struct{}

func (selfTraced) TraceRule() Rule { return otherRule{} }

func TestForPrefersTraceable(t *testing.T) {
	if _, ok := For(selfTraced{}).(otherRule); !ok {
		t.Errorf("For ignored the value's own rule")
	}
	if For(nil) != nil {
		t.Errorf("For(nil) should be nil")
	}
}
