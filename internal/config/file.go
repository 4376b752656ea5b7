package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile decodes the TOML file at path into cfg. Keys that do not map
// to a Config field are rejected so typos fail loudly instead of being
// silently ignored.
func LoadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return nil
}
