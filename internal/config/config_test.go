package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "\t", c.Indent)
	assert.Equal(t, "!ERROR!", c.ErrorMarker)
	require.NotNil(t, c.UpperInstance)
	assert.True(t, *c.UpperInstance)
	assert.Equal(t, []string{".v", ".sv", ".vh", ".svh"}, c.Extensions)
	assert.NotEmpty(t, c.IndexPath)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "indent: \"    \"\nupper_instance: false\nextensions: [V, sv]\nindex_path: /tmp/x.db\nunknown: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "    ", c.Indent)
	assert.Equal(t, "!ERROR!", c.ErrorMarker)
	assert.False(t, *c.UpperInstance)
	assert.Equal(t, []string{".v", ".sv"}, c.Extensions)
	assert.Equal(t, "/tmp/x.db", c.IndexPath)

	opts := c.RenderOptions()
	assert.Equal(t, "    ", opts.Indent)
	assert.False(t, opts.UpperInstance)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indent: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c := Default()
	c.Indent = "  "
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/vinst.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/vinst.yaml", p)
}

func TestIsSource(t *testing.T) {
	c := Default()
	assert.True(t, c.IsSource("rtl/top.V"))
	assert.True(t, c.IsSource("pkg.svh"))
	assert.False(t, c.IsSource("notes.txt"))
}
