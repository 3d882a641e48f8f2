// Package config loads arrlang's optional .arrlang.yaml project file: the
// default array backend (overridable by the --backend flag) and a float
// print precision setting.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the merged set of settings an .arrlang.yaml file can carry.
type Config struct {
	// Backend selects the array engine: "dense" (default) or "nested".
	Backend string `yaml:"backend"`
	// FloatPrecision holds the file's floatPrecision setting (0 when
	// absent). It is loaded only: value printing does not read it and
	// always uses Go's shortest round-trip float representation.
	FloatPrecision int `yaml:"floatPrecision"`
}

// Default returns the configuration used when no .arrlang.yaml is present.
func Default() Config {
	return Config{Backend: "dense", FloatPrecision: 0}
}

// Load reads and parses the YAML file at path. A missing file is not an
// error: Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Backend == "" {
		cfg.Backend = "dense"
	}
	return cfg, nil
}
