package config

import (
	"fmt"
	"slices"

	"github.com/atlanticdynamic/droplet/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.RootTree(fmt.Sprintf("Droplet Config (%s)", cfg.Version))

	serverTree := fancy.BranchNode("Server", cfg.Server.Address())
	serverTree.Child(fmt.Sprintf("ReadTimeout: %s", cfg.Server.ReadTimeout))
	serverTree.Child(fmt.Sprintf("WriteTimeout: %s", cfg.Server.WriteTimeout))
	serverTree.Child(fmt.Sprintf("IdleTimeout: %s", cfg.Server.IdleTimeout))
	serverTree.Child(fmt.Sprintf("DrainTimeout: %s", cfg.Server.DrainTimeout))
	t.Child(serverTree)

	loggingTree := fancy.BranchNode("Logging", "")
	loggingTree.Child(fmt.Sprintf("Format: %s", cfg.Logging.Format))
	loggingTree.Child(fmt.Sprintf("Level: %s", cfg.Logging.Level))
	if cfg.Logging.Output != "" {
		loggingTree.Child(fmt.Sprintf("Output: %s", cfg.Logging.Output))
	}
	t.Child(loggingTree)

	providersTree := fancy.BranchNode("Providers", fmt.Sprintf("(%d)", len(cfg.Providers)))
	for _, name := range cfg.Providers {
		node := fancy.Tree().Root(fancy.ProviderText(name))
		section := cfg.ProviderSection(name)
		keys := make([]string, 0, len(section))
		for k := range section {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			node.Child(fmt.Sprintf("%s: %v", k, section[k]))
		}
		providersTree.Child(node)
	}
	t.Child(providersTree)

	return t.String()
}
