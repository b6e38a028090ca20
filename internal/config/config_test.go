package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.Package)
	assert.Equal(t, "zz_jasonify.go", cfg.Output)
	assert.True(t, cfg.Accessors)
	assert.True(t, cfg.Methods)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jasonify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: ./example
types: [Order, Address]
accessors: false
external:
  geo.Point: geo.Point
imports:
  geo: example.com/maps/geo
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./example", cfg.Package)
	assert.Equal(t, "zz_jasonify.go", cfg.Output)
	assert.Equal(t, []string{"Order", "Address"}, cfg.Types)
	assert.False(t, cfg.Accessors)
	assert.True(t, cfg.Methods)
	assert.Equal(t, map[string]string{"geo.Point": "geo.Point"}, cfg.External)
	assert.Equal(t, map[string]string{"geo": "example.com/maps/geo"}, cfg.Imports)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("packages: ./x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packages")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Output = ""
	cfg.Log.Level = "verbose"
	cfg.Log.Format = "xml"
	cfg.Imports = map[string]string{"geo": ""}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}
