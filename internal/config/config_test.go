package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chtemp moves the test into an empty directory so a developer's .env
// file cannot leak into assertions.
func chtemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chtemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Library.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	chtemp(t)
	t.Setenv("CFS_LIBRARY", "/opt/ced/libCFS64c.so")
	t.Setenv("CFS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/ced/libCFS64c.so", cfg.Library.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}
