package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every process setting variable.
const EnvPrefix = "WEALTHMAP_"

// Settings are process-level options read from the environment. Command
// line flags take precedence over them.
type Settings struct {
	ConfigFile string `env:"CONFIG"`
	Format     string `env:"FORMAT" envDefault:"console"`
	OutputDir  string `env:"OUTPUT_DIR"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	Debug      bool   `env:"DEBUG"`
}

// LoadSettings reads Settings from WEALTHMAP_* variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv loads target from prefixed environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
