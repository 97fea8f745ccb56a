package ptree

import (
	"fmt"

	"github.com/ptree-go/ptree/tree"
)

// BCMap wraps a leaf function into one accepting a mixture of
// tree-shaped and scalar arguments. The first tree-shaped argument
// fixes the result shape; further tree-shaped arguments must be
// congruent to it and map position-wise, scalars broadcast across
// every leaf. Positions frozen in any tree argument pass the shape
// tree's leaf through untouched.
func BCMap(f func(args ...any) (any, error)) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		flats := make([][]any, len(args))
		var (
			def      *tree.Def
			shapeIdx = -1
		)
		for i, a := range args {
			leaves, d, err := tree.Flatten(a)
			if err != nil {
				return nil, err
			}
			if d.Kind != tree.CompositeNode {
				continue
			}
			if def == nil {
				def, shapeIdx = d, i
			} else if !def.Congruent(d) {
				return nil, fmt.Errorf("%w: argument %d is not congruent to argument %d", tree.ErrStructure, i, shapeIdx)
			}
			flats[i] = leaves
		}
		if def == nil {
			return f(args...)
		}
		n := def.NumLeaves()
		out := make([]any, n)
		callArgs := make([]any, len(args))
		for k := 0; k < n; k++ {
			frozen := false
			for i, a := range args {
				if flats[i] == nil {
					callArgs[i] = a
					continue
				}
				callArgs[i] = flats[i][k]
				if tree.IsFrozen(flats[i][k]) {
					frozen = true
				}
			}
			if frozen {
				out[k] = flats[shapeIdx][k]
				continue
			}
			v, err := f(callArgs...)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return tree.Unflatten(def, out)
	}
}
