package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithNoPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.DIS.Port)
	assert.Equal(t, 3001, cfg.CDIS.Port)
	assert.Equal(t, 1024, cfg.ChannelCapacity)
	assert.Equal(t, PolicyPassthrough, cfg.UnknownPolicy)
}

func TestLoadConfigRejectsIdenticalEndpoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	contents := "dis:\n  address: 0.0.0.0\n  port: 3000\ncdis:\n  address: 0.0.0.0\n  port: 3000\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadConfigMissingFileIsFatal(t *testing.T) {
	_, err := LoadConfig("/nonexistent/gateway-config.yaml")
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
