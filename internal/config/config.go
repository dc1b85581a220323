// Package config loads the plugin configuration.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LEVELBORDER_MAIN_WORLD
const EnvPrefix = "LEVELBORDER"

//go:embed config.yml
var defaultConfig []byte

// Storage backends
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatDev  = "dev"
)

// Config is the complete plugin configuration
type Config struct {
	DataFolder     string          `mapstructure:"data_folder"`
	WorldContainer string          `mapstructure:"world_container"`
	MainWorld      string          `mapstructure:"main_world"`
	Border         BorderConfig    `mapstructure:"border"`
	SpawnTree      SpawnTreeConfig `mapstructure:"spawn_tree"`
	Storage        StorageConfig   `mapstructure:"storage"`
	Events         EventsConfig    `mapstructure:"events"`
	API            APIConfig       `mapstructure:"api"`
	Logging        LoggingConfig   `mapstructure:"logging"`
}

type BorderConfig struct {
	MinRadius           int           `mapstructure:"min_radius"`
	ChangeDuration      time.Duration `mapstructure:"change_duration"`
	PersistentDataDelay time.Duration `mapstructure:"persistent_data_delay"`
}

type SpawnTreeConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	HeightOffset int  `mapstructure:"height_offset"`
}

type StorageConfig struct {
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

type EventsConfig struct {
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	Topic        string   `mapstructure:"topic"`
}

type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LoggingConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

// Default returns the embedded default configuration, ignoring the
// environment
func Default() Config {
	cfg, err := load("", false)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults, merges the file at path over them and
// applies environment overrides. A missing file is created with the
// defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	return load(path, true)
}

func load(path string, env bool) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if env {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := v.ReadConfig(bytes.NewBuffer(defaultConfig)); err != nil {
		return Config{}, fmt.Errorf("read default config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			if err := writeDefault(path); err != nil {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings
func (c Config) Validate() error {
	switch c.Storage.Type {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	switch c.Logging.Format {
	case LogFormatJSON, LogFormatDev:
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.MainWorld == "" {
		return errors.New("main_world must not be empty")
	}
	return nil
}

func writeDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
