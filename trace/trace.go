// Package trace maps Go types to rules that decompose values into
// their immediate children and rebuild them from new children. The
// flatten/unflatten engine consults this registry at every node.
package trace

import "reflect"

// Child describes one immediate child of a composite value. Name is
// the field or key under which the child was reached ("" for purely
// positional children), Index its position in the rule's declared
// order, and Meta any rule-specific data needed to rebuild the node
// (for maps, the original key).
type Child struct {
	Name  string
	Index int
	Meta  any
	Value any
}

// Rule decomposes values of a registered type and rebuilds them.
//
// Trace returns the immediate children in a stable, deterministic
// order. Build reconstructs a value equivalent to proto with the
// children replaced; proto is the original node recorded in the
// skeleton. Build must accept children whose types differ from the
// originals (mask construction replaces leaves with booleans) and may
// fall back to a generic container in that case.
type Rule interface {
	Trace(v any) ([]Child, error)
	Build(proto any, children []any) (any, error)
}

// Traceable values carry their own rule. The engine consults this
// before the registry.
type Traceable interface {
	TraceRule() Rule
}

// For resolves the rule for a value: Traceable first, then the
// registry. A nil result means the value is an opaque leaf.
func For(v any) Rule {
	if v == nil {
		return nil
	}
	if t, ok := v.(Traceable); ok {
		return t.TraceRule()
	}
	return Lookup(reflect.TypeOf(v))
}
