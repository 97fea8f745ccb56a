package class

import (
	"fmt"

	"github.com/ptree-go/ptree/trace"
)

// Objects are self-tracing: non-static fields are children in
// declaration order, static fields ride in the skeleton prototype.

type objectRule struct {
	class *Class
}

func (o *Object) TraceRule() trace.Rule {
	return objectRule{class: o.class}
}

// ReprName and ReprChildren drive rendered output: the class name
// labels the node and NoRepr fields are hidden.
func (o *Object) ReprName() string { return o.class.name }

func (o *Object) ReprChildren() []trace.Child {
	var res []trace.Child
	for i, f := range o.class.fields {
		if f.NoRepr {
			continue
		}
		res = append(res, trace.Child{
			Name:  f.Name,
			Index: len(res),
			Value: o.values[i],
		})
	}
	return res
}

func (r objectRule) Trace(v any) ([]trace.Child, error) {
	o, ok := v.(*Object)
	if !ok || o.class != r.class {
		return nil, fmt.Errorf("rule for class %s got %T", r.class.name, v)
	}
	var res []trace.Child
	for i, f := range r.class.fields {
		if f.Static {
			continue
		}
		res = append(res, trace.Child{
			Name:  f.Name,
			Index: len(res),
			Value: o.values[i],
		})
	}
	return res, nil
}

// Build reconstructs a sealed instance from new child values.
// Callbacks do not rerun here: unflattening restores or rewrites
// structure, it does not construct new user input, and mask trees
// legitimately replace leaves with booleans.
func (r objectRule) Build(proto any, children []any) (any, error) {
	o, ok := proto.(*Object)
	if !ok || o.class != r.class {
		return nil, fmt.Errorf("rule for class %s got %T", r.class.name, proto)
	}
	res := &Object{class: o.class, values: make([]any, len(o.values))}
	ci := 0
	for i, f := range r.class.fields {
		if f.Static {
			res.values[i] = o.values[i]
			continue
		}
		if ci >= len(children) {
			return nil, fmt.Errorf("class %s: too few children to rebuild", r.class.name)
		}
		res.values[i] = children[ci]
		ci++
	}
	if ci != len(children) {
		return nil, fmt.Errorf("class %s: %d extra children", r.class.name, len(children)-ci)
	}
	res.sealed = true
	return res, nil
}
