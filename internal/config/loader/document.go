package loader

// Document is the raw shape of a configuration file. Pointer fields are nil
// when the key is absent so that defaults can be applied afterwards.
type Document struct {
	Version   *string                   `toml:"version"`
	Providers []string                  `toml:"providers"`
	Server    *ServerDocument           `toml:"server"`
	Logging   *LoggingDocument          `toml:"logging"`
	Provider  map[string]map[string]any `toml:"provider"`
}

// ServerDocument is the [server] table.
type ServerDocument struct {
	Host         *string `toml:"host"`
	Port         *int    `toml:"port"`
	ReadTimeout  *string `toml:"read_timeout"`
	WriteTimeout *string `toml:"write_timeout"`
	IdleTimeout  *string `toml:"idle_timeout"`
	DrainTimeout *string `toml:"drain_timeout"`
}

// LoggingDocument is the [logging] table.
type LoggingDocument struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
	Output *string `toml:"output"`
}
