package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	log "github.com/sirupsen/logrus"

	"github.com/birdpay/go-moneybird-epcqr/moneybird"
)

type Config struct {
	API    APIConfig    `koanf:"api"`
	Scan   ScanConfig   `koanf:"scan"`
	Logger LoggerConfig `koanf:"logger"`
}

type APIConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type ScanConfig struct {
	CredentialsFile string        `koanf:"credentials_file" validate:"required"`
	OutputDir       string        `koanf:"output_dir" validate:"required"`
	Watch           bool          `koanf:"watch"`
	WatchDebounce   time.Duration `koanf:"watch_debounce" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// Load reads configuration from MONEYBIRD_-prefixed environment variables
// on top of the built-in defaults ("__" in a variable name nests a key,
// e.g. MONEYBIRD_SCAN__CREDENTIALS_FILE).
func Load() (*Config, error) {

	k := koanf.New(".")

	defaults := confmap.Provider(map[string]interface{}{
		"api.base_url":          string(moneybird.Prod),
		"api.timeout":           15 * time.Second,
		"scan.credentials_file": "moneybird-keys",
		"scan.output_dir":       ".",
		"scan.watch_debounce":   time.Second,
		"logger.level":          "info",
	}, ".")

	if err := k.Load(defaults, nil); err != nil {
		return nil, err
	}

	err := k.Load(env.Provider("MONEYBIRD_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "MONEYBIRD_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		log.Errorf("failed to load environment variables: %v", err)
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		log.Errorf("could not unmarshal config: %v", err)
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Errorf("config validation failed: %v", err)
		return nil, err
	}

	return cfg, nil
}
