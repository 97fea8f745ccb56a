package class

import (
	"fmt"
	"strings"

	"github.com/ptree-go/ptree/tree"
)

// Args carries constructor arguments by field name or alias.
type Args map[string]any

// Object is an instance of a synthesized class. Once construction
// completes the object is sealed: Set fails with ErrImmutable and new
// values are only reachable through functional updates.
type Object struct {
	class  *Class
	values []any
	sealed bool
}

// New constructs a sealed instance. Values resolve per field as
// provided argument, then default, then a fresh factory call; every
// value runs the field's callbacks in order. No instance escapes a
// failed construction.
func (c *Class) New(args Args) (*Object, error) {
	for name := range args {
		i, ok := c.fieldIndex(name)
		if !ok {
			return nil, fmt.Errorf("class %s: %w: %q", c.name, ErrNoField, name)
		}
		if c.fields[i].NoInit {
			return nil, fmt.Errorf("class %s: field %q is not settable: %w", c.name, c.fields[i].Name, ErrNoField)
		}
	}
	o := &Object{class: c, values: make([]any, len(c.fields))}
	for i, f := range c.fields {
		v, provided := lookupArg(args, f)
		switch {
		case provided && f.NoInit:
			// unreachable; args were checked above
		case !provided && f.Default != nil:
			v = f.Default
		case !provided && f.Factory != nil:
			v = f.Factory()
		case !provided:
			return nil, fmt.Errorf("class %s: %w: field %q requires a value", c.name, ErrValidation, f.Name)
		}
		v, err := runCallbacks(f, v)
		if err != nil {
			return nil, err
		}
		o.values[i] = v
	}
	o.sealed = true
	return o, nil
}

// MustNew is New, panicking on error.
func (c *Class) MustNew(args Args) *Object {
	o, err := c.New(args)
	if err != nil {
		panic(err)
	}
	return o
}

func lookupArg(args Args, f Field) (any, bool) {
	if v, ok := args[f.Name]; ok {
		return v, true
	}
	if f.Alias != "" {
		if v, ok := args[f.Alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func runCallbacks(f Field, v any) (any, error) {
	for _, cb := range f.Callbacks {
		nv, err := cb(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w: %w", f.Name, ErrValidation, err)
		}
		v = nv
	}
	return v, nil
}

func (o *Object) Class() *Class {
	return o.class
}

func (o *Object) Sealed() bool {
	return o.sealed
}

// Get returns a field value by name or alias.
func (o *Object) Get(name string) (any, error) {
	i, ok := o.class.fieldIndex(name)
	if !ok {
		return nil, fmt.Errorf("class %s: %w: %q", o.class.name, ErrNoField, name)
	}
	return o.values[i], nil
}

// MustGet is Get, panicking on unknown fields.
func (o *Object) MustGet(name string) any {
	v, err := o.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set assigns a field on an unsealed instance, running the field's
// callbacks. Sealed instances always fail with ErrImmutable.
func (o *Object) Set(name string, v any) error {
	if o.sealed {
		return fmt.Errorf("class %s: %w: use At(obj, %q).Set(...) for an out-of-place update", o.class.name, ErrImmutable, name)
	}
	i, ok := o.class.fieldIndex(name)
	if !ok {
		return fmt.Errorf("class %s: %w: %q", o.class.name, ErrNoField, name)
	}
	nv, err := runCallbacks(o.class.fields[i], v)
	if err != nil {
		return err
	}
	o.values[i] = nv
	return nil
}

// Call runs a method as a functional update: the method executes
// against an unsealed staging copy, its full final field state is
// captured, and a new sealed instance is returned alongside the
// method's result. The receiver is never mutated.
func (o *Object) Call(name string, args ...any) (any, *Object, error) {
	return o.CallAt(nil, name, args...)
}

// CallAt is Call addressed at a nested object: path names descend
// through object-valued fields before the method is resolved. The
// returned instance is a new sealed root reflecting the staged
// mutations, however deep they occurred.
func (o *Object) CallAt(path []string, name string, args ...any) (any, *Object, error) {
	staging := o.cloneUnsealed()
	target := staging
	for _, p := range path {
		v, err := target.Get(p)
		if err != nil {
			return nil, nil, err
		}
		nested, ok := v.(*Object)
		if !ok {
			return nil, nil, fmt.Errorf("class %s: field %q is not an object", target.class.name, p)
		}
		target = nested
	}
	m, ok := target.class.methods[name]
	if !ok {
		return nil, nil, fmt.Errorf("class %s: %w: no method %q", target.class.name, ErrNoField, name)
	}
	ret, err := m(target, args...)
	staging.sealAll()
	if err != nil {
		return nil, nil, err
	}
	return ret, staging, nil
}

// cloneUnsealed deep-copies the object, unsealing it and any nested
// objects so a method can mutate staged state.
func (o *Object) cloneUnsealed() *Object {
	res := &Object{class: o.class, values: make([]any, len(o.values))}
	for i, v := range o.values {
		if nested, ok := v.(*Object); ok {
			res.values[i] = nested.cloneUnsealed()
			continue
		}
		res.values[i] = v
	}
	return res
}

func (o *Object) sealAll() {
	o.sealed = true
	for _, v := range o.values {
		if nested, ok := v.(*Object); ok {
			nested.sealAll()
		}
	}
}

// Equal compares class identity and compare-eligible fields,
// structure then value.
func (o *Object) Equal(other *Object) bool {
	if other == nil || o.class != other.class {
		return false
	}
	for i, f := range o.class.fields {
		if f.NoCompare {
			continue
		}
		if !tree.Equal(o.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// Hash hashes the class name and compare-eligible fields. Objects
// equal under Equal hash equal.
func (o *Object) Hash() (uint64, error) {
	eligible := []any{o.class.name}
	for i, f := range o.class.fields {
		if f.NoCompare {
			continue
		}
		eligible = append(eligible, o.values[i])
	}
	return tree.Hash(eligible)
}

// String renders a single-level representation; nested objects render
// recursively through their own String.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteString(o.class.name)
	b.WriteByte('(')
	first := true
	for i, f := range o.class.fields {
		if f.NoRepr {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%v", f.Name, o.values[i])
	}
	b.WriteByte(')')
	return b.String()
}
