package vars

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/testutil"
)

func TestParseExtraVars(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		vars, err := ParseExtraVars(`{"name": "gitrev", "count": 3, "nested": {"ok": true}}`)

		require.NoError(t, err)
		assert.Equal(t, "gitrev", vars["name"])
		assert.Equal(t, json.Number("3"), vars["count"])
		assert.Equal(t, map[string]any{"ok": true}, vars["nested"])
	})

	t.Run("empty object", func(t *testing.T) {
		vars, err := ParseExtraVars(`{}`)

		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("numbers keep their text", func(t *testing.T) {
		vars, err := ParseExtraVars(`{"big": 12345678901234567890, "f": 1.50}`)

		require.NoError(t, err)
		assert.Equal(t, "12345678901234567890", vars["big"].(json.Number).String())
		assert.Equal(t, "1.50", vars["f"].(json.Number).String())
	})
}

func TestParseExtraVarsRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"array", `[1,2,3]`, "got array"},
		{"boolean", `true`, "got boolean"},
		{"string", `"hello"`, "got string"},
		{"number", `42`, "got number"},
		{"null", `null`, "got null"},
		{"malformed", `{"a": }`, "malformed JSON"},
		{"trailing data", `{"a": 1} {"b": 2}`, "unexpected data"},
		{"empty", `   `, "empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars, err := ParseExtraVars(tt.input)

			require.Error(t, err)
			assert.Nil(t, vars)
			assert.True(t, errors.Is(err, oerrors.ErrExtraVars))

			var varsErr *oerrors.ExtraVarsError
			require.True(t, errors.As(err, &varsErr))
			assert.Equal(t, InlineSource, varsErr.Source)
			assert.Contains(t, varsErr.Reason, tt.reason)
		})
	}
}

func TestLoadExtraVarsFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "vars.yaml", "product: gitrev\nrelease:\n  channel: stable\n")

		vars, err := LoadExtraVarsFile(path)

		require.NoError(t, err)
		assert.Equal(t, "gitrev", vars["product"])
		assert.Equal(t, map[string]any{"channel": "stable"}, vars["release"])
	})

	t.Run("json", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "vars.json", `{"product": "gitrev"}`)

		vars, err := LoadExtraVarsFile(path)

		require.NoError(t, err)
		assert.Equal(t, "gitrev", vars["product"])
	})

	t.Run("yaml list is rejected", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "list.yaml", "- a\n- b\n")

		_, err := LoadExtraVarsFile(path)

		var varsErr *oerrors.ExtraVarsError
		require.True(t, errors.As(err, &varsErr))
		assert.Equal(t, path, varsErr.Source)
		assert.Contains(t, varsErr.Reason, "got array")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadExtraVarsFile(filepath.Join(dir, "absent.yaml"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrExtraVars))
	})
}

func TestMergeExtraVars(t *testing.T) {
	base := map[string]any{"a": "file", "b": "file"}
	overlay := map[string]any{"b": "inline", "c": "inline"}

	merged := MergeExtraVars(base, overlay)

	assert.Equal(t, map[string]any{"a": "file", "b": "inline", "c": "inline"}, merged)
	assert.Equal(t, "file", base["b"])
}
