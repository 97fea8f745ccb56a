package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptree-go/ptree/tree"
)

func TestLoad(t *testing.T) {
	v, err := Load([]byte("a: 1\nb:\n  - 2.5\n  - x\n"))
	require.NoError(t, err)
	want := map[string]any{"a": 1, "b": []any{2.5, "x"}}
	assert.Equal(t, want, v)
}

func TestLoadJSON(t *testing.T) {
	v, err := Load([]byte(`{"a": [1, 2], "b": true}`))
	require.NoError(t, err)
	want := map[string]any{"a": []any{1, 2}, "b": true}
	assert.Equal(t, want, v)
}

func TestSaveRoundTrip(t *testing.T) {
	in := map[string]any{"a": 1, "b": []any{2, 3}, "c": "x"}
	d, err := Save(in)
	require.NoError(t, err)
	v, err := Load(d)
	require.NoError(t, err)
	assert.Equal(t, in, v)
}

func TestSaveFrozen(t *testing.T) {
	d, err := Save(map[string]any{"a": tree.Freeze(1)})
	require.NoError(t, err)
	v, err := Load(d)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, v, "frozen wrappers unwrap in documents")
}

func TestPlainTypedContainers(t *testing.T) {
	v, err := Plain(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, v)

	v, err = Plain([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, v)
}

func TestPlainScalar(t *testing.T) {
	v, err := Plain(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
