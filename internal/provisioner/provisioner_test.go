package provisioner

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacogips/packer-inject/internal/template"
)

var saltMasterless = map[string]any{
	"type":               "salt-masterless",
	"local_state_tree":   "../../salt/recipe",
	"local_pillar_roots": "../../salt/pillar",
	"minion_config":      "../../salt/etc/minion",
}

func TestBuiltins(t *testing.T) {
	got := Builtins()
	assert.Equal(t, map[string]map[string]any{SaltMasterless: saltMasterless}, got)

	// Returned maps are copies
	got[SaltMasterless]["type"] = "changed"
	assert.Equal(t, "salt-masterless", Builtins()[SaltMasterless]["type"])
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"salt-masterless"}, Names())
}

func TestResolve(t *testing.T) {
	t.Run("built-in template", func(t *testing.T) {
		got, err := Resolve(ResolveOptions{TemplateName: SaltMasterless})
		require.NoError(t, err)
		assert.Equal(t, saltMasterless, got)
	})

	t.Run("unknown template lists valid names", func(t *testing.T) {
		_, err := Resolve(ResolveOptions{TemplateName: "unknown-name"})

		var provErr *ProvisionerError
		require.True(t, errors.As(err, &provErr))
		assert.Equal(t, UnknownProvisionerTemplate, provErr.Type)
		assert.Contains(t, err.Error(), `"unknown-name"`)
		assert.Contains(t, err.Error(), "valid templates: salt-masterless)")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prov.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"type": "ansible", "playbook_file": "site.yml"}`), 0644))

		got, err := Resolve(ResolveOptions{File: path})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"type": "ansible", "playbook_file": "site.yml"}, got)
	})

	t.Run("file takes precedence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prov.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"type": "file"}`), 0644))

		got, err := Resolve(ResolveOptions{File: path, TemplateName: "unknown-name"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"type": "file"}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.json")

		_, err := Resolve(ResolveOptions{File: path})
		var provErr *ProvisionerError
		require.True(t, errors.As(err, &provErr))
		assert.Equal(t, LoadFailed, provErr.Type)

		var tmplErr *template.TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Equal(t, template.NotFound, tmplErr.Type)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("nothing selected", func(t *testing.T) {
		_, err := Resolve(ResolveOptions{})
		var provErr *ProvisionerError
		require.True(t, errors.As(err, &provErr))
		assert.Equal(t, NoProvisioner, provErr.Type)
	})
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, ""))

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]map[string]any{"salt-masterless": saltMasterless}, got)
}
