package config

import "fmt"

// PluginConfig stores the type name of a provider plugin and its raw
// configuration data. Each plugin decodes the raw map into its own concrete
// configuration struct.
type PluginConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Validate checks mandatory fields.
func (c PluginConfig) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("type is required")
	}
	return nil
}
