package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/ptree-go/ptree/tree"
)

// Pointer renders a leaf trace as an RFC 6901 JSON pointer.
func Pointer(steps []tree.Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteByte('/')
		if s.Name != "" {
			b.WriteString(escapePointer(s.Name))
			continue
		}
		fmt.Fprintf(&b, "%d", s.Index)
	}
	return b.String()
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// DiffPatch expresses the differing leaves of two congruent trees as
// an RFC 6902 patch of replace operations against a's document form.
func DiffPatch(a, b any) ([]byte, error) {
	aLeaves, aDef, err := tree.Flatten(a)
	if err != nil {
		return nil, err
	}
	bLeaves, bDef, err := tree.Flatten(b)
	if err != nil {
		return nil, err
	}
	if !aDef.Congruent(bDef) {
		return nil, fmt.Errorf("%w: trees are not congruent", tree.ErrStructure)
	}
	traces := aDef.LeafTraces()
	ops := []patchOp{}
	for i := range aLeaves {
		if tree.LeafEqual(aLeaves[i], bLeaves[i]) {
			continue
		}
		v, err := Plain(bLeaves[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, patchOp{Op: "replace", Path: Pointer(traces[i]), Value: v})
	}
	return json.Marshal(ops)
}

// ApplyPatch applies an RFC 6902 patch to a JSON document.
func ApplyPatch(doc, patch []byte) ([]byte, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// JSON marshals a tree value to its JSON document form.
func JSON(v any) ([]byte, error) {
	p, err := Plain(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}
