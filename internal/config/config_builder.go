package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 3),
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

// withDotEnv loads path into the process environment if the file exists.
// Variables already set in the environment are not overwritten.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if _, err := os.Stat(path); err != nil {
		return b
	}

	if err := godotenv.Load(path); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}
	return b
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

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON parses the JSON file named by the last config that sets
// JSONFilePath. It is a no-op when no source names a file.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
