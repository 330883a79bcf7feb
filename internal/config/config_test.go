package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage_path: data/tuthub.yaml
storage_format: yaml
http_server:
  address: 0.0.0.0:9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "data/tuthub.yaml", cfg.StoragePath)
	assert.Equal(t, FormatYAML, cfg.StorageFormat)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: dev\nstorage_path: tuthub.db\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatSQLite, cfg.StorageFormat)
	assert.Equal(t, "localhost:8082", cfg.HTTPServer.Addr)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_FORMAT", "yaml")

	cfg, err := Load(writeConfig(t, "env: dev\nstorage_path: tuthub.db\nstorage_format: sqlite\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.StorageFormat)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"missing storage path": "env: dev\n",
		"unknown env":          "env: qa\nstorage_path: tuthub.db\n",
		"unknown format":       "env: dev\nstorage_path: tuthub.db\nstorage_format: csv\n",
		"bad address":          "env: dev\nstorage_path: tuthub.db\nhttp_server:\n  address: nowhere\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestResolvePath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	_, err := ResolvePath("")
	assert.Error(t, err)

	path, err := ResolvePath("config/local.yaml")
	require.NoError(t, err)
	assert.Equal(t, "config/local.yaml", path)

	t.Setenv("CONFIG_PATH", "/etc/tuthub.yaml")
	path, err = ResolvePath("config/local.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/tuthub.yaml", path)
}
