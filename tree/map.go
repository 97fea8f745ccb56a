package tree

import "fmt"

// Map applies f to every non-frozen leaf of v and rebuilds. Frozen
// leaves pass through unchanged.
func Map(f func(any) (any, error), v any, opts ...Option) (any, error) {
	leaves, def, err := Flatten(v, opts...)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(leaves))
	for i, leaf := range leaves {
		if IsFrozen(leaf) {
			res[i] = leaf
			continue
		}
		nv, err := f(leaf)
		if err != nil {
			return nil, err
		}
		res[i] = nv
	}
	return Unflatten(def, res)
}

// Map2 applies f pairwise over the leaves of two congruent trees and
// rebuilds with a's skeleton. A leaf frozen on either side passes
// a's leaf through unchanged.
func Map2(f func(a, b any) (any, error), a, b any, opts ...Option) (any, error) {
	aLeaves, aDef, err := Flatten(a, opts...)
	if err != nil {
		return nil, err
	}
	bLeaves, bDef, err := Flatten(b, opts...)
	if err != nil {
		return nil, err
	}
	if !aDef.Congruent(bDef) {
		return nil, fmt.Errorf("%w: trees are not congruent", ErrStructure)
	}
	res := make([]any, len(aLeaves))
	for i := range aLeaves {
		if IsFrozen(aLeaves[i]) || IsFrozen(bLeaves[i]) {
			res[i] = aLeaves[i]
			continue
		}
		nv, err := f(aLeaves[i], bLeaves[i])
		if err != nil {
			return nil, err
		}
		res[i] = nv
	}
	return Unflatten(aDef, res)
}
