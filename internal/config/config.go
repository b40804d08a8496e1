package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SPACEX_DATASET_PATH.
const EnvPrefix = "SPACEX"

// Config is the full application configuration.
type Config struct {
	Host    string        `mapstructure:"host"`
	Port    string        `mapstructure:"port"`
	GinMode string        `mapstructure:"gin_mode"`
	Log     LogConfig     `mapstructure:"log"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Charts  ChartsConfig  `mapstructure:"charts"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

type ChartsConfig struct {
	// ScatterSiteFilter restricts the scatter chart to the selected site.
	// When false the site selection only changes the title.
	ScatterSiteFilter bool `mapstructure:"scatter_site_filter"`
	Width             int  `mapstructure:"width"`
	Height            int  `mapstructure:"height"`
}

// Addr joins host and port for net/http.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8050")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("dataset.path", "spacex_launch_dash.csv")
	v.SetDefault("charts.scatter_site_filter", true)
	v.SetDefault("charts.width", 640)
	v.SetDefault("charts.height", 420)
}

// Load reads config.yml from the given directories (default "configs"),
// then applies SPACEX_* environment overrides. A missing config file is not
// an error; a malformed one is.
func Load(dirs ...string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return errors.New("dataset.path must not be empty")
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts size must be positive, got %dx%d", c.Charts.Width, c.Charts.Height)
	}
	return nil
}

// loadDotEnv loads .env into the process environment if it exists.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
