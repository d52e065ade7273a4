// Package config holds the droplet's domain configuration: server settings,
// logging, the ordered provider list and the free-form per-provider sections.
package config

import (
	"maps"
	"net"
	"strconv"
	"time"
)

// VersionLatest is the only supported config version
const VersionLatest = "v1"

// Defaults applied when the config source omits a value
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8080
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 5 * time.Second
)

// Config is the droplet configuration
type Config struct {
	Version   string
	Providers []string
	Server    Server
	Logging   Logging

	// sections holds the [provider.<name>] tables
	sections map[string]Section
}

// Server holds the settings handed to the installed server factory
type Server struct {
	Host         string
	Port         int
	ReadTimeout  Duration
	WriteTimeout Duration
	IdleTimeout  Duration
	DrainTimeout Duration
}

// Address returns host:port
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Default returns a config populated with defaults and no providers
func Default() *Config {
	return &Config{
		Version: VersionLatest,
		Server: Server{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  FromDuration(DefaultReadTimeout),
			WriteTimeout: FromDuration(DefaultWriteTimeout),
			IdleTimeout:  FromDuration(DefaultIdleTimeout),
			DrainTimeout: FromDuration(DefaultDrainTimeout),
		},
		Logging: Logging{
			Format: LogFormatText,
			Level:  LogLevelInfo,
		},
		sections: map[string]Section{},
	}
}

// ProviderSection returns the [provider.<name>] table. A missing table
// yields an empty Section, never nil.
func (c *Config) ProviderSection(name string) Section {
	if c == nil || c.sections == nil {
		return Section{}
	}
	if s, ok := c.sections[name]; ok {
		return s
	}
	return Section{}
}

// SetProviderSection replaces the [provider.<name>] table.
func (c *Config) SetProviderSection(name string, s Section) {
	if c.sections == nil {
		c.sections = map[string]Section{}
	}
	c.sections[name] = maps.Clone(s)
}

// ProviderSectionNames returns the names of all provider tables
func (c *Config) ProviderSectionNames() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	return names
}
