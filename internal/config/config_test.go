package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	viper.Reset()
	Init()

	assert.Equal(t, OutputText, viper.GetString("output"))
	assert.True(t, viper.GetBool("color"))
	assert.False(t, viper.GetBool("verbose"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, OutputText, cfg.Output)
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()
	Init()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.False(t, cfg.Color)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidOutput(t *testing.T) {
	assert.True(t, ValidOutput(OutputText))
	assert.True(t, ValidOutput(OutputJSON))
	assert.True(t, ValidOutput(OutputYAML))
	assert.False(t, ValidOutput("xml"))
}
