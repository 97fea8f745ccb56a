package tree

import (
	"fmt"
	"reflect"

	"github.com/ptree-go/ptree/debug"
	"github.com/ptree-go/ptree/trace"
)

type flattenConfig struct {
	isLeaf func(any) bool
}

type Option func(*flattenConfig)

// IsLeaf stops decomposition at values the predicate accepts.
func IsLeaf(f func(any) bool) Option {
	return func(c *flattenConfig) { c.isLeaf = f }
}

// Flatten decomposes a value into its leaves, in deterministic trace
// order, and the skeleton needed to rebuild it. Cyclic values fail
// with ErrCycle.
func Flatten(v any, opts ...Option) ([]any, *Def, error) {
	cfg := &flattenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	fl := &flattener{cfg: cfg, active: map[nodeID]bool{}}
	def, err := fl.walk(v)
	if err != nil {
		return nil, nil, err
	}
	return fl.leaves, def, nil
}

type nodeID struct {
	ptr uintptr
	typ reflect.Type
}

type flattener struct {
	cfg    *flattenConfig
	leaves []any
	active map[nodeID]bool
}

func (fl *flattener) walk(v any) (*Def, error) {
	if fl.cfg.isLeaf != nil && fl.cfg.isLeaf(v) {
		return fl.leaf(v, false), nil
	}
	if _, ok := v.(*Frozen); ok {
		return fl.leaf(v, true), nil
	}
	rule := trace.For(v)
	if rule == nil {
		return fl.leaf(v, false), nil
	}
	id, tracked := identity(v)
	if tracked {
		if fl.active[id] {
			return nil, fmt.Errorf("%w: revisited %T", ErrCycle, v)
		}
		fl.active[id] = true
		defer delete(fl.active, id)
	}
	children, err := rule.Trace(v)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return fl.leaf(v, false), nil
	}
	if debug.Flatten() {
		debug.Logf("flatten %T -> %d children\n", v, len(children))
	}
	d := &Def{
		Kind:     CompositeNode,
		Type:     reflect.TypeOf(v),
		Rule:     rule,
		Proto:    v,
		Children: make([]*Def, len(children)),
		Steps:    make([]Step, len(children)),
		Metas:    make([]any, len(children)),
	}
	for i, c := range children {
		cd, err := fl.walk(c.Value)
		if err != nil {
			return nil, err
		}
		d.Children[i] = cd
		d.Steps[i] = Step{Name: c.Name, Index: c.Index}
		d.Metas[i] = c.Meta
		d.leaves += cd.leaves
	}
	return d, nil
}

func (fl *flattener) leaf(v any, frozen bool) *Def {
	fl.leaves = append(fl.leaves, v)
	return &Def{
		Kind:   LeafNode,
		Type:   reflect.TypeOf(v),
		Frozen: frozen,
		leaves: 1,
	}
}

// identity yields a revisit-detection key for pointer-like values.
// Values without a stable address cannot participate in cycles.
func identity(v any) (nodeID, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return nodeID{}, false
		}
		return nodeID{ptr: rv.Pointer(), typ: rv.Type()}, true
	}
	return nodeID{}, false
}

// Unflatten rebuilds a value from a skeleton and a leaf sequence of
// matching length.
func Unflatten(d *Def, leaves []any) (any, error) {
	if d == nil {
		return nil, fmt.Errorf("unflatten: nil skeleton")
	}
	if len(leaves) != d.leaves {
		return nil, fmt.Errorf("%w: skeleton wants %d leaves, got %d", ErrStructure, d.leaves, len(leaves))
	}
	pos := 0
	v, err := build(d, leaves, &pos)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func build(d *Def, leaves []any, pos *int) (any, error) {
	if d.Kind == LeafNode {
		v := leaves[*pos]
		*pos++
		return v, nil
	}
	children := make([]any, len(d.Children))
	for i, c := range d.Children {
		cv, err := build(c, leaves, pos)
		if err != nil {
			return nil, err
		}
		children[i] = cv
	}
	return d.Rule.Build(d.Proto, children)
}

// Leaves returns the leaf sequence of a value.
func Leaves(v any, opts ...Option) ([]any, error) {
	leaves, _, err := Flatten(v, opts...)
	return leaves, err
}

// Copy round-trips a value through flatten/unflatten.
func Copy(v any) (any, error) {
	leaves, def, err := Flatten(v)
	if err != nil {
		return nil, err
	}
	return Unflatten(def, leaves)
}
