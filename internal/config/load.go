package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/paths"
)

const envPrefix = "SCAFFOLDKIT_"

// Load reads configuration from configDir (highest precedence last):
//
//  1. Built-in defaults
//  2. {configDir}/config.yaml, when it exists
//  3. Environment variables (SCAFFOLDKIT_ prefix)
//
// Env names are matched against the known keys so that underscores inside
// a key survive:
//
//	SCAFFOLDKIT_ORGANIZATION_ID -> organization_id
//	SCAFFOLDKIT_LOG_LEVEL       -> log.level
func Load(configDir string) (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to apply default "+key, err)
		}
	}

	var loaded string
	if configDir != "" {
		path := filepath.Join(configDir, paths.ConfigFile)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.WrapWithDetails(errors.EInvalidConfig, "failed to load config file: "+err.Error(), err,
					map[string]string{"path": path})
			}
			loaded = path
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			// Unknown variables (SCAFFOLDKIT_CONFIG_DIR) are dropped.
			return "", nil
		},
	}), nil); err != nil {
		return nil, errors.Wrap(errors.EInvalidConfig, "failed to load environment: "+err.Error(), err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.EInvalidConfig, "failed to decode config: "+err.Error(), err)
	}
	cfg.File = loaded

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// buildEnvLookup maps env-style keys ("log_level") to koanf keys ("log.level").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
