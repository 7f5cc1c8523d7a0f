package configuration

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration/util"
)

const defaultConfigDir = "internal/static"

func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return defaultConfigDir
}

func Load() (*Config, error) {
	cfg, err := loadBaseConfig()
	if err != nil {
		return nil, err
	}

	if err := loadProfileConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadBaseConfig() (*Config, error) {
	baseConfig, err := util.LoadAndExpandYaml(configDir(), "application")
	if err != nil {
		slog.Error("Error loading base config", "Error", err.Error())
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal([]byte(baseConfig), &cfg); err != nil {
		slog.Error("Error parsing base config", "Error", err.Error())
		return nil, err
	}

	return &cfg, nil
}

func loadProfileConfig(cfg *Config) error {
	if cfg.Application.Profile == "" {
		return nil
	}

	profileConfig, err := util.LoadAndExpandYaml(configDir(), fmt.Sprintf("application-%s", cfg.Application.Profile))
	if err != nil {
		slog.Error("Error loading profile config", "Error", err.Error())
		return err
	}

	if err := yaml.Unmarshal([]byte(profileConfig), cfg); err != nil {
		slog.Error("Error parsing profile config", "Error", err.Error())
		return err
	}

	return nil
}
