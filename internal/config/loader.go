package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file relative to the working directory, merges it
// with defaults, applies environment overrides and validates the result.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom is Load with an explicit project directory.
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// LoadFile loads an explicit config file instead of running discovery.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	override, err := loadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	merge(&cfg, override)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// discoverConfigPath returns the first existing config file, or "" when
// running on defaults only.
func discoverConfigPath(dir string) string {
	candidates := []string{
		filepath.Join(dir, "treetop.yaml"),
		filepath.Join(dir, "treetop.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "treetop", "config.yaml"),
			filepath.Join(home, ".config", "treetop", "config.toml"),
		)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFromFile decodes a YAML or TOML file, picked by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	return &cfg, nil
}

// merge overlays override onto base. Strings override when non-empty,
// *bool fields when non-nil, and trees merge per key and per flag.
func merge(base *Config, override *Config) {
	if override.Trees != nil {
		if base.Trees == nil {
			base.Trees = make(map[string]TreeConfig)
		}
		for name, t := range override.Trees {
			cur := base.Trees[name]
			if t.VisibleOverride != nil {
				cur.VisibleOverride = t.VisibleOverride
			}
			if t.ShowChildMessages != nil {
				cur.ShowChildMessages = t.ShowChildMessages
			}
			base.Trees[name] = cur
		}
	}

	if override.UI.LeafDisplay != "" {
		base.UI.LeafDisplay = override.UI.LeafDisplay
	}
	if override.UI.OverrideTarget != "" {
		base.UI.OverrideTarget = override.UI.OverrideTarget
	}
	if override.UI.Mouse != nil {
		base.UI.Mouse = override.UI.Mouse
	}

	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}

	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
}

// applyEnvOverrides applies TREETOP_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TREETOP_LEAF_DISPLAY"); v != "" {
		cfg.UI.LeafDisplay = v
	}
	if v := os.Getenv("TREETOP_OVERRIDE_TARGET"); v != "" {
		cfg.UI.OverrideTarget = v
	}
	if v := os.Getenv("TREETOP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TREETOP_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TREETOP_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.Mouse = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: TREETOP_MOUSE=%q is not a valid boolean, ignoring\n", v)
		}
	}
}
