// Package tree flattens arbitrary nested values into an ordered leaf
// sequence plus a reconstructible skeleton, and rebuilds values from
// a skeleton and new leaves. Decomposition is driven by the trace
// registry; unregistered types are opaque leaves.
package tree

import (
	"reflect"

	"github.com/ptree-go/ptree/trace"
)

type NodeKind int

const (
	LeafNode NodeKind = iota
	CompositeNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "Leaf"
	case CompositeNode:
		return "Composite"
	}
	return "<unknown kind>"
}

// Step is one hop of a leaf trace: the name (field or key, "" for
// positional children) and index under which a child was reached.
type Step struct {
	Name  string
	Index int
}

// Def is the structural residue of a flattened value. Together with a
// leaf sequence of matching length it reconstructs the value.
type Def struct {
	Kind NodeKind
	Type reflect.Type

	// Frozen marks a leaf holding a *Frozen wrapper.
	Frozen bool

	Rule     trace.Rule
	Proto    any
	Children []*Def
	Steps    []Step
	Metas    []any

	leaves int
}

// NumLeaves returns the number of leaves the subtree contributes.
func (d *Def) NumLeaves() int {
	return d.leaves
}

// Congruent reports whether two skeletons have the same shape: the
// same kinds, child counts and steps at every level. Leaf types are
// not compared, so a boolean mask built over a tree is congruent to
// it.
func (d *Def) Congruent(o *Def) bool {
	if d.Kind != o.Kind {
		return false
	}
	if d.Kind == LeafNode {
		return true
	}
	if len(d.Children) != len(o.Children) {
		return false
	}
	for i := range d.Children {
		if d.Steps[i] != o.Steps[i] {
			return false
		}
		if !d.Children[i].Congruent(o.Children[i]) {
			return false
		}
	}
	return true
}

// LeafTraces returns, for each leaf in flatten order, the steps from
// the root to that leaf.
func (d *Def) LeafTraces() [][]Step {
	res := make([][]Step, 0, d.leaves)
	var walk func(d *Def, prefix []Step)
	walk = func(d *Def, prefix []Step) {
		if d.Kind == LeafNode {
			t := make([]Step, len(prefix))
			copy(t, prefix)
			res = append(res, t)
			return
		}
		for i, c := range d.Children {
			walk(c, append(prefix, d.Steps[i]))
		}
	}
	walk(d, nil)
	return res
}

// FrozenLeaves reports, per leaf in flatten order, whether the leaf
// is a frozen wrapper.
func (d *Def) FrozenLeaves() []bool {
	res := make([]bool, 0, d.leaves)
	var walk func(d *Def)
	walk = func(d *Def) {
		if d.Kind == LeafNode {
			res = append(res, d.Frozen)
			return
		}
		for _, c := range d.Children {
			walk(c)
		}
	}
	walk(d)
	return res
}
