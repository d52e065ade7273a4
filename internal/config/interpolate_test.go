package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/droplet/internal/config/loader"
	"github.com/atlanticdynamic/droplet/internal/interpolation"
)

func TestNewConfigFromBytes_EnvExpansion(t *testing.T) {
	t.Setenv("DROPLET_TEST_HOST", "127.0.0.1")
	t.Setenv("DROPLET_TEST_LOG_DIR", "/var/log/droplet")

	data := []byte(`
version = "v1"
providers = ["jsonlog"]

[server]
host = "${DROPLET_TEST_HOST}"
port = 9000
read_timeout = "${DROPLET_TEST_READ_TIMEOUT:5s}"

[logging]
level = "${DROPLET_TEST_LEVEL:debug}"

[provider.jsonlog]
output = "${DROPLET_TEST_LOG_DIR}/json.log"
`)

	cfg, err := NewConfigFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "5s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, "/var/log/droplet/json.log", cfg.ProviderSection("jsonlog").String("output", ""))
}

func TestNewConfigFromBytes_UndefinedVariable(t *testing.T) {
	t.Parallel()
	data := []byte(`
[server]
host = "${DROPLET_TEST_SURELY_UNSET_HOST}"
`)
	_, err := NewConfigFromBytes(data)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFailedToLoadConfig)
	require.ErrorIs(t, err, interpolation.ErrUndefinedVariable)
	assert.Contains(t, err.Error(), "server.host")
}

func TestExpandDocument(t *testing.T) {
	t.Parallel()
	lookup := func(name string) (string, bool) {
		if name == "NAME" {
			return "jsonlog", true
		}
		return "", false
	}

	t.Run("nil document", func(t *testing.T) {
		require.NoError(t, expandDocument(nil, lookup))
	})

	t.Run("provider list and sections", func(t *testing.T) {
		doc := mustDocument(t, `
providers = ["${NAME}"]

[provider.textlog]
output = "${MISSING}"
`)
		err := expandDocument(doc, lookup)
		require.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), "provider.textlog.output")
		assert.Equal(t, []string{"jsonlog"}, doc.Providers)
	})
}

func mustDocument(t *testing.T, data string) *loader.Document {
	t.Helper()
	doc, err := loader.NewTomlLoader([]byte(data)).Load()
	require.NoError(t, err)
	return doc
}
