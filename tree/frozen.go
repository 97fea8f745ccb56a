package tree

import (
	"fmt"
	"reflect"
)

// Frozen wraps a value so the engine treats it as an opaque leaf.
// Frozen leaves carry their wrapped value through tree operations
// unchanged and are excluded from leafwise arithmetic.
type Frozen struct {
	value any
}

// Freeze wraps a value. Freezing a frozen value is a no-op.
func Freeze(v any) *Frozen {
	if f, ok := v.(*Frozen); ok {
		return f
	}
	return &Frozen{value: v}
}

// Unwrap returns the wrapped value.
func (f *Frozen) Unwrap() any {
	return f.value
}

func (f *Frozen) String() string {
	return fmt.Sprintf("#%v", f.value)
}

// Equal compares wrapped contents.
func (f *Frozen) Equal(o *Frozen) bool {
	if o == nil {
		return false
	}
	return reflect.DeepEqual(f.value, o.value)
}

// Unfreeze unwraps a frozen value, failing on anything else. Use
// IsFrozen to guard bulk operations over mixed leaves.
func Unfreeze(v any) (any, error) {
	f, ok := v.(*Frozen)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotFrozen, v)
	}
	return f.value, nil
}

func IsFrozen(v any) bool {
	_, ok := v.(*Frozen)
	return ok
}
