package ptree

import (
	"fmt"

	"github.com/ptree-go/ptree/class"
	"github.com/ptree-go/ptree/tree"
)

// Leafwise operators distribute over tree leaves: tree-with-tree
// needs congruence, tree-with-scalar broadcasts. Comparisons yield
// boolean mask trees suitable for At. Class objects must opt into
// leafwise mode; frozen leaves act as identity.

func Add(a, b any) (any, error) { return binaryOp(a, b, addLeaf) }
func Sub(a, b any) (any, error) { return binaryOp(a, b, subLeaf) }
func Mul(a, b any) (any, error) { return binaryOp(a, b, mulLeaf) }
func Div(a, b any) (any, error) { return binaryOp(a, b, divLeaf) }
func And(a, b any) (any, error) { return binaryOp(a, b, boolLeaf("and", func(x, y bool) bool { return x && y })) }
func Or(a, b any) (any, error) {
	return binaryOp(a, b, boolLeaf("or", func(x, y bool) bool { return x || y }))
}

func Eq(a, b any) (any, error) {
	return binaryOp(a, b, func(x, y any) (any, error) { return tree.LeafEqual(x, y), nil })
}
func Ne(a, b any) (any, error) {
	return binaryOp(a, b, func(x, y any) (any, error) { return !tree.LeafEqual(x, y), nil })
}
func Lt(a, b any) (any, error) { return binaryOp(a, b, cmpLeaf("<", func(c int) bool { return c < 0 })) }
func Le(a, b any) (any, error) {
	return binaryOp(a, b, cmpLeaf("<=", func(c int) bool { return c <= 0 }))
}
func Gt(a, b any) (any, error) { return binaryOp(a, b, cmpLeaf(">", func(c int) bool { return c > 0 })) }
func Ge(a, b any) (any, error) {
	return binaryOp(a, b, cmpLeaf(">=", func(c int) bool { return c >= 0 }))
}

// Neg negates numeric leaves.
func Neg(a any) (any, error) { return unaryOp(a, negLeaf) }

// Not inverts boolean leaves; handy for flipping masks.
func Not(a any) (any, error) { return unaryOp(a, notLeaf) }

func binaryOp(a, b any, f func(x, y any) (any, error)) (any, error) {
	if err := leafwiseOK(a); err != nil {
		return nil, err
	}
	if err := leafwiseOK(b); err != nil {
		return nil, err
	}
	aTree, err := isTree(a)
	if err != nil {
		return nil, err
	}
	bTree, err := isTree(b)
	if err != nil {
		return nil, err
	}
	switch {
	case aTree && bTree:
		return tree.Map2(f, a, b)
	case aTree:
		return tree.Map(func(x any) (any, error) { return f(x, b) }, a)
	case bTree:
		return tree.Map(func(y any) (any, error) { return f(a, y) }, b)
	default:
		if tree.IsFrozen(a) {
			return a, nil
		}
		if tree.IsFrozen(b) {
			return b, nil
		}
		return f(a, b)
	}
}

func unaryOp(a any, f func(x any) (any, error)) (any, error) {
	if err := leafwiseOK(a); err != nil {
		return nil, err
	}
	aTree, err := isTree(a)
	if err != nil {
		return nil, err
	}
	if aTree {
		return tree.Map(f, a)
	}
	if tree.IsFrozen(a) {
		return a, nil
	}
	return f(a)
}

func leafwiseOK(v any) error {
	o, ok := v.(*class.Object)
	if !ok {
		return nil
	}
	if !o.Class().Leafwise() {
		return fmt.Errorf("class %s does not opt into leafwise operators", o.Class().Name())
	}
	return nil
}

func isTree(v any) (bool, error) {
	_, d, err := tree.Flatten(v)
	if err != nil {
		return false, err
	}
	return d.Kind == tree.CompositeNode, nil
}

func addLeaf(x, y any) (any, error) {
	if xs, ok := x.(string); ok {
		ys, ok := y.(string)
		if !ok {
			return nil, fmt.Errorf("cannot add %T to string", y)
		}
		return xs + ys, nil
	}
	return numBinary("+", x, y,
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) (float64, error) { return a + b, nil })
}

func subLeaf(x, y any) (any, error) {
	return numBinary("-", x, y,
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) (float64, error) { return a - b, nil })
}

func mulLeaf(x, y any) (any, error) {
	return numBinary("*", x, y,
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) (float64, error) { return a * b, nil })
}

func divLeaf(x, y any) (any, error) {
	return numBinary("/", x, y,
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, fmt.Errorf("integer division by zero")
			}
			return a / b, nil
		},
		func(a, b float64) (float64, error) { return a / b, nil })
}

func negLeaf(x any) (any, error) {
	if xi, ok := x.(int); ok {
		return -xi, nil
	}
	if xi, ok := asInt(x); ok {
		return -xi, nil
	}
	if xf, ok := asFloat(x); ok {
		return -xf, nil
	}
	return nil, fmt.Errorf("cannot negate %T", x)
}

func notLeaf(x any) (any, error) {
	b, ok := x.(bool)
	if !ok {
		return nil, fmt.Errorf("cannot invert %T", x)
	}
	return !b, nil
}

func boolLeaf(name string, f func(x, y bool) bool) func(x, y any) (any, error) {
	return func(x, y any) (any, error) {
		xb, xok := x.(bool)
		yb, yok := y.(bool)
		if !xok || !yok {
			return nil, fmt.Errorf("%s requires bool leaves, got %T and %T", name, x, y)
		}
		return f(xb, yb), nil
	}
}

func cmpLeaf(name string, f func(c int) bool) func(x, y any) (any, error) {
	return func(x, y any) (any, error) {
		if xs, ok := x.(string); ok {
			ys, ok := y.(string)
			if !ok {
				return nil, fmt.Errorf("cannot compare string %s %T", name, y)
			}
			switch {
			case xs < ys:
				return f(-1), nil
			case xs > ys:
				return f(1), nil
			default:
				return f(0), nil
			}
		}
		xf, xok := asFloat(x)
		yf, yok := asFloat(y)
		if !xok || !yok {
			return nil, fmt.Errorf("cannot compare %T %s %T", x, name, y)
		}
		switch {
		case xf < yf:
			return f(-1), nil
		case xf > yf:
			return f(1), nil
		default:
			return f(0), nil
		}
	}
}

// numBinary applies an integer op when both operands are integer
// kinds (preserving plain int for int operands) and a float op
// otherwise.
func numBinary(name string, x, y any, fi func(a, b int64) (int64, error), ff func(a, b float64) (float64, error)) (any, error) {
	if xi, ok := x.(int); ok {
		if yi, ok := y.(int); ok {
			r, err := fi(int64(xi), int64(yi))
			return int(r), err
		}
	}
	xi, xIsInt := asInt(x)
	yi, yIsInt := asInt(y)
	if xIsInt && yIsInt {
		return fi(xi, yi)
	}
	xf, xok := asFloat(x)
	yf, yok := asFloat(y)
	if !xok || !yok {
		return nil, fmt.Errorf("cannot apply %s to %T and %T", name, x, y)
	}
	return ff(xf, yf)
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
