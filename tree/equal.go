package tree

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
)

// Equal reports structural-then-value equality: congruent skeletons
// and equal leaves. Frozen leaves compare by wrapped contents.
func Equal(a, b any) bool {
	aLeaves, aDef, err := Flatten(a)
	if err != nil {
		return false
	}
	bLeaves, bDef, err := Flatten(b)
	if err != nil {
		return false
	}
	if !aDef.Congruent(bDef) {
		return false
	}
	for i := range aLeaves {
		if !LeafEqual(aLeaves[i], bLeaves[i]) {
			return false
		}
	}
	return true
}

// LeafEqual compares two leaf values, unwrapping frozen wrappers.
func LeafEqual(a, b any) bool {
	af, aOK := a.(*Frozen)
	bf, bOK := b.(*Frozen)
	if aOK != bOK {
		return false
	}
	if aOK {
		return af.Equal(bf)
	}
	return reflect.DeepEqual(a, b)
}

// Hash hashes the skeleton and leaves of a value with fnv-1a. Values
// equal under Equal hash equal.
func Hash(v any) (uint64, error) {
	leaves, def, err := Flatten(v)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	hashDef(h, def)
	for _, leaf := range leaves {
		if f, ok := leaf.(*Frozen); ok {
			fmt.Fprintf(h, "#%v;", f.Unwrap())
			continue
		}
		fmt.Fprintf(h, "%v;", leaf)
	}
	return h.Sum64(), nil
}

func hashDef(h io.Writer, d *Def) {
	if d.Kind == LeafNode {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	for i, c := range d.Children {
		fmt.Fprintf(h, "%s/%d:", d.Steps[i].Name, d.Steps[i].Index)
		hashDef(h, c)
	}
}
