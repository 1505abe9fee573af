package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "VITALOG_"

// Load builds the configuration by layering defaults, an optional YAML
// file, then VITALOG_* environment variables. The file path comes from
// VITALOG_CONFIG; otherwise ~/.vitalog/config.yaml is used if present.
func Load() (*Config, error) {
	k := koanf.New(".")

	cfg := New()

	path := os.Getenv("VITALOG_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey maps VITALOG_LLM_MODEL to llm.model and VITALOG_WEIGHTS_MSK to
// weights.msk; top-level keys keep their underscores (data_dir, store).
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	switch {
	case s == "config":
		return "" // consumed above, not a config key
	case strings.HasPrefix(s, "llm_"):
		return "llm." + strings.TrimPrefix(s, "llm_")
	case strings.HasPrefix(s, "weights_"):
		return "weights." + strings.TrimPrefix(s, "weights_")
	}
	return s
}
