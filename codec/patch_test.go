package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptree-go/ptree/tree"
)

func TestPointer(t *testing.T) {
	steps := []tree.Step{{Name: "a", Index: 0}, {Index: 2}, {Name: "x/y", Index: 0}}
	assert.Equal(t, "/a/2/x~1y", Pointer(steps))
}

func TestDiffPatchApply(t *testing.T) {
	a := map[string]any{"a": 1, "b": []any{2, 3}}
	b := map[string]any{"a": 1, "b": []any{2, 30}}

	p, err := DiffPatch(a, b)
	require.NoError(t, err)

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(p, &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0]["op"])
	assert.Equal(t, "/b/1", ops[0]["path"])

	doc, err := JSON(a)
	require.NoError(t, err)
	patched, err := ApplyPatch(doc, p)
	require.NoError(t, err)

	v, err := Load(patched)
	require.NoError(t, err)
	assert.Equal(t, b, v)
}

func TestDiffPatchEmpty(t *testing.T) {
	a := map[string]any{"a": 1}
	p, err := DiffPatch(a, map[string]any{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(p))
}

func TestDiffPatchIncongruent(t *testing.T) {
	_, err := DiffPatch([]any{1}, []any{1, 2})
	assert.ErrorIs(t, err, tree.ErrStructure)
}
