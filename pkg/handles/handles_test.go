package handles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/datakit/pkg/errors"
)

func TestMemory(t *testing.T) {
	t.Run("load before save fails", func(t *testing.T) {
		h := NewMemory()
		_, err := h.Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("save then load", func(t *testing.T) {
		h := NewMemory()
		require.NoError(t, h.Save(42))

		got, err := h.Load()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("seeded", func(t *testing.T) {
		h := NewMemoryFrom("hello")
		got, err := h.Load()
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("nil is a valid value", func(t *testing.T) {
		h := NewMemory()
		require.NoError(t, h.Save(nil))

		got, err := h.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("describe", func(t *testing.T) {
		h := NewMemory()
		assert.Equal(t, true, h.Describe()["empty"])

		require.NoError(t, h.Save(42))
		desc := h.Describe()
		assert.Equal(t, false, desc["empty"])
		assert.Equal(t, "int", desc["data_type"])
	})
}

func TestYAML(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.yaml")
		h := NewYAML(path)

		in := map[string]any{"name": "weather", "unit": "celsius"}
		require.NoError(t, h.Save(in))

		got, err := h.Load()
		require.NoError(t, err)

		out, ok := got.(map[string]any)
		require.True(t, ok, "expected a decoded mapping, got %T", got)
		assert.Equal(t, "weather", out["name"])
		assert.Equal(t, "celsius", out["unit"])
	})

	t.Run("load missing file", func(t *testing.T) {
		h := NewYAML(filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := h.Load()
		require.Error(t, err)

		var he *errors.HandleError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, "load", he.Operation)
	})

	t.Run("describe", func(t *testing.T) {
		h := NewYAML("/tmp/data.yaml")
		desc := h.Describe()
		assert.Equal(t, "yaml", desc["type"])
		assert.Equal(t, "/tmp/data.yaml", desc["path"])
	})
}

func TestJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		h := NewJSON(path)

		in := map[string]any{"name": "weather", "reading": 23.5}
		require.NoError(t, h.Save(in))

		got, err := h.Load()
		require.NoError(t, err)

		out, ok := got.(map[string]any)
		require.True(t, ok, "expected a decoded object, got %T", got)
		assert.Equal(t, "weather", out["name"])
		assert.Equal(t, 23.5, out["reading"])
	})

	t.Run("load malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, writeFile(t, path, "{not json"))

		h := NewJSON(path)
		_, err := h.Load()
		require.Error(t, err)

		var he *errors.HandleError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, "load", he.Operation)
		assert.Equal(t, path, he.Resource)
	})

	t.Run("describe", func(t *testing.T) {
		h := NewJSON("/tmp/data.json")
		desc := h.Describe()
		assert.Equal(t, "json", desc["type"])
		assert.Equal(t, "/tmp/data.json", desc["path"])
	})
}

func writeFile(t *testing.T, path, content string) error {
	t.Helper()
	return os.WriteFile(path, []byte(content), filePermissions)
}
