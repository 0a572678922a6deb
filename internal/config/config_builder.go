package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

// configBuilder collects config layers in priority order. Layer errors are
// joined and reported once by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the layers; a field set by an earlier layer is never
// overwritten by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) add(source string, layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}

	b.configs = append(b.configs, layer)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	return b.add("env", layer, parseEnv(layer))
}

// withFlags parses args, usually os.Args[1:].
func (b *configBuilder) withFlags(args []string) *configBuilder {
	layer, err := parseFlags(filepath.Base(os.Args[0]), args)
	return b.add("flags", layer, err)
}

// withJSON loads the file named by the highest priority layer that names
// one. Without a path it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			jsonCfg, err := parseJSON(layer.JSONFilePath)
			return b.add("json "+layer.JSONFilePath, jsonCfg, err)
		}
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaultConfig(), nil)
}
