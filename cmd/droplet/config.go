package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/atlanticdynamic/droplet/internal/config"
)

const (
	configEnvVar      = "DROPLET_CONFIG"
	defaultConfigFile = "droplet.toml"

	// level of the bootstrap logger used until the droplet's handler is set
	logLevelEnvVar = "DROPLET_LOG_LEVEL"
)

// loadConfig reads the file named by $DROPLET_CONFIG, or droplet.toml in
// the working directory when it exists. Without either, defaults are used
// and the returned path is empty.
func loadConfig(getenv func(string) string) (*config.Config, string, error) {
	path := getenv(configEnvVar)
	if path == "" {
		_, err := os.Stat(defaultConfigFile)
		switch {
		case err == nil:
			path = defaultConfigFile
		case errors.Is(err, fs.ErrNotExist):
			return config.Default(), "", nil
		default:
			return nil, "", fmt.Errorf("failed to check %s: %w", defaultConfigFile, err)
		}
	}

	cfg, err := config.NewConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
