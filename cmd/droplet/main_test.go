package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/droplet/internal/config"
)

const sampleConfig = `
version = "v1"
providers = ["textlog", "httpserver"]

[server]
port = 9090

[provider.textlog]
level = "error"
`

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "droplet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), sampleConfig)

		cfg, got, err := loadConfig(env(map[string]string{configEnvVar: path}))
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"textlog", "httpserver"}, cfg.Providers)
	})

	t.Run("from working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, sampleConfig)
		t.Chdir(dir)

		cfg, got, err := loadConfig(env(nil))
		require.NoError(t, err)
		assert.Equal(t, defaultConfigFile, got)
		assert.Equal(t, 9090, cfg.Server.Port)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, got, err := loadConfig(env(nil))
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("missing file from environment", func(t *testing.T) {
		_, _, err := loadConfig(env(map[string]string{configEnvVar: "/nonexistent/droplet.toml"}))
		require.ErrorIs(t, err, config.ErrFailedToLoadConfig)
	})
}

func TestRun(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		t.Chdir(t.TempDir())
		out := &bytes.Buffer{}

		require.NoError(t, run(t.Context(), []string{"droplet", "version"}, out, env(nil)))
		assert.Equal(t, Version+"\n", out.String())
	})

	t.Run("providers from config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), sampleConfig)
		out := &bytes.Buffer{}

		err := run(t.Context(), []string{"droplet", "providers"}, out, env(map[string]string{configEnvVar: path}))
		require.NoError(t, err)
		assert.Contains(t, out.String(), "TextLogProvider [running]")
		assert.Contains(t, out.String(), "HTTPServerProvider [running]")
	})

	t.Run("unknown provider", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `providers = ["redis"]`)

		err := run(t.Context(), []string{"droplet", "version"}, &bytes.Buffer{}, env(map[string]string{configEnvVar: path}))
		require.ErrorIs(t, err, config.ErrUnknownProvider)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, t.TempDir(), sampleConfig)

	t.Run("summary", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(t.Context(), []string{"droplet", "validate", path}, out, env(nil)))
		assert.Contains(t, out.String(), "is valid")
		assert.Contains(t, out.String(), "- Listen: 0.0.0.0:9090")
		assert.Contains(t, out.String(), "- Providers: textlog, httpserver")
	})

	t.Run("tree", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(t.Context(), []string{"droplet", "validate", "--tree", path}, out, env(nil)))
		assert.Contains(t, out.String(), "Droplet Config (v1)")
		assert.Contains(t, out.String(), "level: error")
	})

	t.Run("missing argument", func(t *testing.T) {
		err := run(t.Context(), []string{"droplet", "validate"}, &bytes.Buffer{}, env(nil))
		require.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		bad := writeConfig(t, t.TempDir(), `providers = ["redis"]`)
		err := run(t.Context(), []string{"droplet", "lint", bad}, &bytes.Buffer{}, env(nil))
		require.ErrorIs(t, err, config.ErrUnknownProvider)
	})
}
