package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are tried in order when LoadAppConfig gets no explicit path
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads and validates the application configuration.
// The first readable path wins; with no paths DefaultPaths are tried and a
// missing file leaves the defaults in place.
func LoadAppConfig(paths ...string) error {
	explicit := len(paths) > 0
	if !explicit {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			Config = Default()
			return nil
		}
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes, validates and defaults a YAML configuration document
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.GTFS.AgencyID == "" {
		cfg.GTFS.AgencyID = "PATH"
	}
	if cfg.Bulletin.URL == "" {
		cfg.Bulletin.URL = DefaultBulletinURL
	}
	if cfg.Bulletin.TimeoutMS == 0 {
		cfg.Bulletin.TimeoutMS = 10000
	}
	if cfg.Bulletin.ReadIntervalMS == 0 {
		cfg.Bulletin.ReadIntervalMS = 60000
	}
	if cfg.Bulletin.MaxRetries == 0 {
		cfg.Bulletin.MaxRetries = 3
	}
	if cfg.Bulletin.RequestsPerMinute == 0 {
		cfg.Bulletin.RequestsPerMinute = 30
	}
	if cfg.Feed.Format == "" {
		cfg.Feed.Format = "pb"
	}
	if cfg.Feed.Language == "" {
		cfg.Feed.Language = "en"
	}
}
