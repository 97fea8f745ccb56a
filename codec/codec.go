// Package codec moves tree values in and out of YAML/JSON documents
// and expresses leaf-level differences as RFC 6902 patches.
package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ptree-go/ptree/trace"
	"github.com/ptree-go/ptree/tree"
)

// Load parses a YAML or JSON document into a normalized tree:
// map[string]any, []any and scalar leaves.
func Load(d []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, vv := range x {
			res[k] = normalize(vv)
		}
		return res
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, vv := range x {
			res[fmt.Sprint(k)] = normalize(vv)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, vv := range x {
			res[i] = normalize(vv)
		}
		return res
	case uint64:
		return int(x)
	case int64:
		return int(x)
	default:
		return v
	}
}

// Save marshals a tree value to YAML, decomposing composites through
// the registry: named children become mappings, positional children
// sequences, frozen leaves unwrap.
func Save(v any) ([]byte, error) {
	p, err := Plain(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(p)
}

// Plain converts a tree value into plain containers suitable for any
// marshaler.
func Plain(v any) (any, error) {
	if f, ok := v.(*tree.Frozen); ok {
		return Plain(f.Unwrap())
	}
	rule := trace.For(v)
	if rule == nil {
		return v, nil
	}
	children, err := rule.Trace(v)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return v, nil
	}
	named := true
	for _, c := range children {
		if c.Name == "" {
			named = false
			break
		}
	}
	if named {
		res := make(map[string]any, len(children))
		for _, c := range children {
			cv, err := Plain(c.Value)
			if err != nil {
				return nil, err
			}
			res[c.Name] = cv
		}
		return res, nil
	}
	res := make([]any, len(children))
	for i, c := range children {
		cv, err := Plain(c.Value)
		if err != nil {
			return nil, err
		}
		res[i] = cv
	}
	return res, nil
}
