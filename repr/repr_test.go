package repr

import (
	"testing"

	"github.com/ptree-go/ptree/class"
	"github.com/ptree-go/ptree/tree"
)

type reprTest struct {
	name string
	in   any
	opts []Option
	res  string
}

var reprTests = []reprTest{
	{
		name: "scalar",
		in:   42,
		res:  "42",
	},
	{
		name: "string quoted",
		in:   "x",
		res:  `"x"`,
	},
	{
		name: "slice",
		in:   []any{1, 2},
		res:  "[1, 2]",
	},
	{
		name: "map sorted",
		in:   map[string]any{"b": 2, "a": 1},
		res:  "{a=1, b=2}",
	},
	{
		name: "nested",
		in:   map[string]any{"a": []any{1, 2}},
		res:  "{a=[1, 2]}",
	},
	{
		name: "frozen",
		in:   []any{tree.Freeze(1)},
		res:  "[#1]",
	},
	{
		name: "depth limited",
		in:   map[string]any{"a": []any{1, 2}},
		opts: []Option{MaxDepth(1)},
		res:  "{a=...}",
	},
	{
		name: "short leaves",
		in:   []any{"this string is well over forty characters long"},
		opts: []Option{Short(true)},
		res:  `["this string is well over forty chara...]`,
	},
}

func TestRepr(t *testing.T) {
	for _, tc := range reprTests {
		if got := Repr(tc.in, tc.opts...); got != tc.res {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.res)
		}
	}
}

func TestReprObject(t *testing.T) {
	c := class.MustNew("Point", []class.Field{
		{Name: "x", Default: 1},
		{Name: "secret", Default: 2, NoRepr: true},
	})
	o := c.MustNew(nil)
	if got := Repr(o); got != "Point(x=1)" {
		t.Errorf("got %q", got)
	}
}
