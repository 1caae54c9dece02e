package configs

// Redis configures the optional Redis client. When Enabled is false the
// service runs without it and redis-backed features degrade to no-ops.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"127.0.0.1:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// Prefix namespaces every key written by this service.
	Prefix string `env:"PREFIX" envDefault:"adrewards"`
}
