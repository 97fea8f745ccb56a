package ptree

import (
	"reflect"
	"testing"

	"github.com/ptree-go/ptree/class"
	"github.com/ptree-go/ptree/tree"
)

type binOpTest struct {
	name string
	op   func(a, b any) (any, error)
	a, b any
	res  any
	err  bool
}

var binOpTests = []binOpTest{
	{
		name: "add scalars",
		op:   Add,
		a:    1, b: 2,
		res: 3,
	},
	{
		name: "add trees",
		op:   Add,
		a:    []any{1, 2}, b: []any{10, 20},
		res: []any{11, 22},
	},
	{
		name: "broadcast scalar",
		op:   Add,
		a:    []any{1, 2}, b: 10,
		res: []any{11, 12},
	},
	{
		name: "mixed int float",
		op:   Add,
		a:    []any{1, 2.5}, b: 1,
		res: []any{2, 3.5},
	},
	{
		name: "string concat",
		op:   Add,
		a:    []any{"a", "b"}, b: "!",
		res: []any{"a!", "b!"},
	},
	{
		name: "sub",
		op:   Sub,
		a:    []any{5}, b: []any{3},
		res: []any{2},
	},
	{
		name: "mul",
		op:   Mul,
		a:    []any{3}, b: 4,
		res: []any{12},
	},
	{
		name: "div",
		op:   Div,
		a:    []any{8.0}, b: 2.0,
		res: []any{4.0},
	},
	{
		name: "div by zero",
		op:   Div,
		a:    []any{8}, b: 0,
		err:  true,
	},
	{
		name: "eq mask",
		op:   Eq,
		a:    []any{1, 2, 3}, b: 2,
		res: []any{false, true, false},
	},
	{
		name: "ne mask",
		op:   Ne,
		a:    []any{1, 2}, b: 2,
		res: []any{true, false},
	},
	{
		name: "gt mask",
		op:   Gt,
		a:    []any{1, 5}, b: 3,
		res: []any{false, true},
	},
	{
		name: "le mask",
		op:   Le,
		a:    []any{1, 5}, b: 3,
		res: []any{true, false},
	},
	{
		name: "string compare",
		op:   Lt,
		a:    []any{"a", "c"}, b: "b",
		res: []any{true, false},
	},
	{
		name: "and",
		op:   And,
		a:    []any{true, true}, b: []any{true, false},
		res: []any{true, false},
	},
	{
		name: "or",
		op:   Or,
		a:    []any{false, false}, b: []any{true, false},
		res: []any{true, false},
	},
	{
		name: "incongruent trees",
		op:   Add,
		a:    []any{1, 2}, b: []any{1},
		err:  true,
	},
	{
		name: "type mismatch",
		op:   Add,
		a:    []any{1}, b: "x",
		err:  true,
	},
}

func TestBinaryOps(t *testing.T) {
	for _, tc := range binOpTests {
		v, err := tc.op(tc.a, tc.b)
		if tc.err {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tc.name, v)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(v, tc.res) {
			t.Errorf("%s: got %#v, want %#v", tc.name, v, tc.res)
		}
	}
}

func TestNeg(t *testing.T) {
	v, err := Neg([]any{1, -2.5})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []any{-1, 2.5}) {
		t.Errorf("got %#v", v)
	}
}

func TestNot(t *testing.T) {
	v, err := Not([]any{true, false})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, []any{false, true}) {
		t.Errorf("got %#v", v)
	}
}

func TestOpsFrozenIdentity(t *testing.T) {
	in := []any{1, tree.Freeze(2)}
	v, err := Add(in, 10)
	if err != nil {
		t.Fatal(err)
	}
	got := v.([]any)
	if got[0] != 11 {
		t.Errorf("leaf 0: %v", got[0])
	}
	f, ok := got[1].(*tree.Frozen)
	if !ok || f.Unwrap() != 2 {
		t.Errorf("frozen leaf changed: %#v", got[1])
	}
}

func TestOpsFrozenScalar(t *testing.T) {
	f := tree.Freeze(2)
	v, err := Add(f, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != f {
		t.Errorf("frozen scalar should be identity, got %#v", v)
	}
}

func TestOpsLeafwiseGate(t *testing.T) {
	plain := class.MustNew("Plain", []class.Field{{Name: "a", Default: 1}})
	if _, err := Add(plain.MustNew(nil), 1); err == nil {
		t.Errorf("leafwise op on a non-leafwise class should fail")
	}

	vec := class.MustNew("Vec", []class.Field{{Name: "a", Default: 1}}, class.Leafwise())
	v, err := Add(vec.MustNew(nil), 1)
	if err != nil {
		t.Fatal(err)
	}
	o := v.(*class.Object)
	if o.MustGet("a") != 2 {
		t.Errorf("a = %v", o.MustGet("a"))
	}
}
