package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AppName        = "tictactoe-solver"
	configFileName = "config.yml"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
}

type Redis struct {
	Disabled  bool          `yaml:"disabled" env:"REDIS_DISABLED"`
	Host      string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ReportTTL time.Duration `yaml:"report-ttl" env:"REDIS_REPORT_TTL" env-default:"24h"`
}

// Load - reads the config file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

// ResolvePath - picks the config file: ./config.yml first, then the XDG config directory.
// An empty result means no file was found.
func ResolvePath(baseDir string) string {
	local := filepath.Join(baseDir, configFileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	path, err := xdg.SearchConfigFile(filepath.Join(AppName, configFileName))
	if err != nil {
		return ""
	}

	return path
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

var ErrInvalidLogLevel = errors.New("invalid log level")

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
}
