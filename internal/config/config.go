package config

import (
	"github.com/caarlos0/env/v11"

	"adrewards/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields
// are populated from environment variables using the caarlos0/env
// library; nested structs declare an envPrefix so their fields are
// parsed with that prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). Used only
	// for log context.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures token issuance and password hashing (AUTH_ prefix).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Redis configures the optional Redis client used for login rate
	// limiting (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables into a Config.
// Fields keep their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
