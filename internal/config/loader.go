package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads the configuration shared by the server and tripctl: the YAML
// file named by CONFIG_PATH (or ./config.yaml), then environment variables,
// then env-default tags. Environment wins over the file.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(pathEnv))
}

// LoadFrom is Load with an explicit path. An empty path means the default
// location, which may be absent; containers usually ship without a file and
// set DATABASE_DSN and AUTH_JWT_SECRET directly.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// read fills cfg from the file at path, or from the environment alone when
// no path was given and the default file is missing. A path given
// explicitly must exist.
func read(path string, cfg *Config) error {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}

	return nil
}
