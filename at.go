package ptree

import (
	"fmt"

	"github.com/ptree-go/ptree/class"
	"github.com/ptree-go/ptree/debug"
	"github.com/ptree-go/ptree/tree"
)

// Index addresses a subset of a tree's leaves. It accumulates path
// specifications with At and resolves them with Get, Set, Apply or
// Call; every outcome is a new value, the root is never mutated.
//
// Spec kinds:
//   - string: leaves reachable under that name at any traced level;
//     chaining restricts descent below the match.
//   - int: leaves whose next step has that structural position.
//   - All: every leaf (the ellipsis).
//   - a congruent tree with boolean leaves: mask selection.
type Index struct {
	root  any
	specs []any
}

// At starts (or extends) a path over root.
func At(root any, specs ...any) *Index {
	return &Index{root: root, specs: specs}
}

// At appends a path specification, returning a new accumulating
// index.
func (ix *Index) At(spec any) *Index {
	specs := make([]any, 0, len(ix.specs)+1)
	specs = append(specs, ix.specs...)
	specs = append(specs, spec)
	return &Index{root: ix.root, specs: specs}
}

type resolution struct {
	leaves  []any
	def     *tree.Def
	frozen  []bool
	matched []bool
}

func (ix *Index) resolve() (*resolution, error) {
	leaves, def, err := tree.Flatten(ix.root)
	if err != nil {
		return nil, err
	}
	if def.Kind != tree.CompositeNode {
		return nil, fmt.Errorf("%w: %T", ErrNotTree, ix.root)
	}
	traces := def.LeafTraces()
	matched := make([]bool, len(leaves))
	for i := range matched {
		matched[i] = true
	}
	depth := make([]int, len(leaves))
	for _, spec := range ix.specs {
		switch s := spec.(type) {
		case allSpec:
			// every leaf stays matched
		case string:
			found := false
			for i := range leaves {
				if !matched[i] {
					continue
				}
				j := findName(traces[i], depth[i], s)
				if j < 0 {
					matched[i] = false
					continue
				}
				depth[i] = j + 1
				found = true
			}
			if !found {
				return nil, fmt.Errorf("%w: %q in %s", ErrNoAttr, s, FormatPath(ix.specs))
			}
		case int:
			for i := range leaves {
				if !matched[i] {
					continue
				}
				if depth[i] >= len(traces[i]) || traces[i][depth[i]].Index != s {
					matched[i] = false
					continue
				}
				depth[i]++
			}
		default:
			if err := applyMask(spec, def, leaves, matched); err != nil {
				return nil, err
			}
		}
	}
	if debug.Match() {
		n := 0
		for _, m := range matched {
			if m {
				n++
			}
		}
		debug.Logf("at %s matched %d/%d leaves\n", FormatPath(ix.specs), n, len(leaves))
	}
	return &resolution{
		leaves:  leaves,
		def:     def,
		frozen:  def.FrozenLeaves(),
		matched: matched,
	}, nil
}

func findName(trace []tree.Step, from int, name string) int {
	for j := from; j < len(trace); j++ {
		if trace[j].Name == name {
			return j
		}
	}
	return -1
}

func applyMask(mask any, def *tree.Def, leaves []any, matched []bool) error {
	mLeaves, mDef, err := tree.Flatten(mask)
	if err != nil {
		return err
	}
	if !def.Congruent(mDef) {
		return fmt.Errorf("%w: mask is not congruent to the target", tree.ErrStructure)
	}
	for i := range leaves {
		if !matched[i] {
			continue
		}
		mv := mLeaves[i]
		if f, ok := mv.(*tree.Frozen); ok {
			// frozen mask leaves select nothing unless they wrap true
			b, ok := f.Unwrap().(bool)
			if !ok || !b {
				matched[i] = false
			}
			continue
		}
		b, ok := mv.(bool)
		if !ok {
			return fmt.Errorf("%w: mask leaf %d is %T, want bool", tree.ErrStructure, i, mLeaves[i])
		}
		if !b {
			matched[i] = false
		}
	}
	return nil
}

// Get returns a congruent copy keeping matched leaves; unmatched
// leaves become absent (nil, or the zero value in strictly typed
// containers).
func (ix *Index) Get() (any, error) {
	res, err := ix.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(res.leaves))
	for i, leaf := range res.leaves {
		if res.matched[i] {
			out[i] = leaf
		}
	}
	return tree.Unflatten(res.def, out)
}

// Set returns a congruent copy with matched leaves replaced by v.
// Frozen leaves pass through unchanged.
func (ix *Index) Set(v any) (any, error) {
	return ix.Apply(func(any) (any, error) { return v, nil })
}

// Apply returns a congruent copy with f applied to the matched
// leaves. Frozen leaves pass through unchanged.
func (ix *Index) Apply(f func(any) (any, error)) (any, error) {
	res, err := ix.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(res.leaves))
	for i, leaf := range res.leaves {
		if !res.matched[i] || res.frozen[i] {
			out[i] = leaf
			continue
		}
		nv, err := f(leaf)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	if debug.Patch() {
		debug.Logf("at %s rebuilt %d leaves\n", FormatPath(ix.specs), len(out))
	}
	return tree.Unflatten(res.def, out)
}

// Call treats the last path spec as a method name on a class object
// (earlier specs address nested objects) and runs it as a functional
// update: the method executes on an unsealed staging copy and a new
// sealed root is returned with the method's result.
func (ix *Index) Call(args ...any) (any, *class.Object, error) {
	obj, ok := ix.root.(*class.Object)
	if !ok {
		return nil, nil, fmt.Errorf("%w: method call requires a class object root, got %T", ErrNotTree, ix.root)
	}
	if len(ix.specs) == 0 {
		return nil, nil, fmt.Errorf("%w: method call requires a named path", ErrNoAttr)
	}
	names := make([]string, len(ix.specs))
	for i, s := range ix.specs {
		name, ok := s.(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: method call paths are names, got %T", ErrNoAttr, s)
		}
		names[i] = name
	}
	return obj.CallAt(names[:len(names)-1], names[len(names)-1], args...)
}
