package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoforge/compositor/asset"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promoforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
brand: Acme
output:
  dir: /tmp/out
  encoding: jpeg
redis:
  enabled: true
  addr: redis.internal:6379
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Brand)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep their defaults")

	enc, err := cfg.OutputEncoding()
	require.NoError(t, err)
	assert.Equal(t, asset.JPEG, enc)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestOutputEncodingUnknown(t *testing.T) {
	cfg := Default()
	cfg.Output.Encoding = "webp"
	_, err := cfg.OutputEncoding()
	require.Error(t, err)
}
