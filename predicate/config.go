package predicate

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// Config is the on-disk shape of a vocabulary document:
//
//	predicates:
//	  isNotEmpty: truthy
//	  isEmpty: falsy
//	indicators:
//	  hasData: data
type Config struct {
	Predicates map[string]Polarity `yaml:"predicates"`
	Indicators map[string]string   `yaml:"indicators"`
}

// Registry materializes the config into a lookup registry.
func (c Config) Registry() *Registry {
	return New(c.Predicates, c.Indicators)
}

// FromYAML parses a vocabulary document and builds a registry from it.
func FromYAML(data []byte) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse guard vocabulary: %w", err)
	}

	return cfg.Registry(), nil
}

// Default returns the built-in vocabulary.
func Default() *Registry {
	r, err := FromYAML(defaultConfig)
	if err != nil {
		// The embedded document is fixed at build time.
		panic(fmt.Errorf("load built-in guard vocabulary: %w", err))
	}

	return r
}
