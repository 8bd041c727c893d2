package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// userConfigRel is the config file location relative to the XDG config dirs.
const userConfigRel = "flappyfish/fish.yaml"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/fish.yaml"

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/flappyfish/fish.yaml ->
// ./configs/fish.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only a few keys.
func Load(customPath string) (FishConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localConfigPath); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return Embedded(), nil
}

// Embedded returns the embedded default configuration.
func Embedded() FishConfig {
	cfg := DefaultFishConfig()
	if err := yaml.Unmarshal(defaultFishYAML, &cfg); err != nil {
		return DefaultFishConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML over the default configuration.
func Parse(data []byte) (FishConfig, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FishConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// loadFile reads and parses one config file.
func loadFile(path string) (FishConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FishConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the first existing user config file, or empty.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(userConfigRel)
	if err != nil {
		return ""
	}
	return path
}
