package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Required on purpose: there is no
	// compiled-in default to fall back to.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`

	// ConfigFile is the path of the persisted machine/user document.
	ConfigFile string `env:"CONFIG_FILE, default=config.json"`

	// WOLBroadcastAddr is where magic packets are sent.
	WOLBroadcastAddr string `env:"WOL_BROADCAST_ADDR, default=255.255.255.255:9"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
