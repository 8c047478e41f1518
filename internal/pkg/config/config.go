package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL,    default=http://localhost:8080/api"`
	Env            string        `env:"ENV,             default=development"`
	LogLevel       string        `env:"LOG_LEVEL,       default=info"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,    default=15s"`
	CredentialPath string        `env:"CREDENTIAL_PATH"`

	Stub StubConfig
}

// StubConfig configures the development stub server (cmd/devstub).
type StubConfig struct {
	Port      string        `env:"STUB_PORT,       default=8080"`
	JWTSecret string        `env:"STUB_JWT_SECRET, default=devstub-secret"`
	TokenTTL  time.Duration `env:"STUB_TOKEN_TTL,  default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
