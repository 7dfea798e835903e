package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ledgerskema"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:      "warn",
		LogFormat:     "console",
		Lang:          "en",
		DuplicateKeys: "error",
		MaxDepth:      32,
		Output:        "text",
	}, c)
	assert.Equal(t, ledgerskema.DefaultDecodeOpt(), c.DecodeOpt())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledgerskema.yaml")
	require.NoError(t, os.WriteFile(file, []byte("lang: ja\nduplicate-keys: warn\nmax-depth: 8\n"), 0o600))
	t.Setenv("LEDGERSKEMA_LOG_LEVEL", "debug")

	c, err := Load(New(file))
	require.NoError(t, err)
	assert.Equal(t, "ja", c.Lang)
	assert.Equal(t, "debug", c.LogLevel)

	opt := c.DecodeOpt()
	assert.Equal(t, ledgerskema.Warn, opt.Strictness.OnDuplicateKey)
	assert.Equal(t, 8, opt.MaxDepth)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledgerskema.yaml")
	require.NoError(t, os.WriteFile(file, []byte("lang: fr\n"), 0o600))

	_, err := Load(New(file))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	_, err = Load(New(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)
}
