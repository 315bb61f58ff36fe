package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config is the optional weftgen.yaml next to the scanned package.
type Config struct {
	// Include restricts generation to the listed type names. Empty means
	// every exported struct with Set* methods.
	Include []string `yaml:"include"`

	// Exclude drops type names from generation.
	Exclude []string `yaml:"exclude"`

	// Keywords overrides the convention-derived element keyword per type
	// name.
	Keywords map[string]string `yaml:"keywords"`

	// Inherits declares inheritance links the scanner cannot infer,
	// type name to parent keyword.
	Inherits map[string]string `yaml:"inherits"`
}

// loadConfig reads path when it exists; a missing file is an empty
// config, matching how optional tool configs usually behave.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// wants reports whether a type name survives the include/exclude filters.
func (c *Config) wants(typeName string) bool {
	for _, x := range c.Exclude {
		if x == typeName {
			return false
		}
	}
	if len(c.Include) == 0 {
		return true
	}
	for _, i := range c.Include {
		if i == typeName {
			return true
		}
	}
	return false
}

// modulePath resolves the module path governing dir by walking up to the
// nearest go.mod.
func modulePath(dir string) (string, error) {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return "", fmt.Errorf("no module path in %s/go.mod", dir)
			}
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod above %s", dir)
		}
		dir = parent
	}
}
