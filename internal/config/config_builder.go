package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withFiles loads the config files named by the last source that lists any,
// and appends their merged bundle tree as one more layer.
func (b *configBuilder) withFiles() *configBuilder {
	if b.err != nil {
		return b
	}

	var paths []string
	rootKey := DefaultRootKey
	for _, cfg := range b.configs {
		if len(cfg.ConfigFilePaths) > 0 {
			paths = cfg.ConfigFilePaths
		}
		if cfg.App.RootKey != "" {
			rootKey = cfg.App.RootKey
		}
	}

	if len(paths) == 0 {
		return b
	}

	tree, err := loadFiles(paths, rootKey)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &StructuredConfig{SDK: tree})
	return b
}
