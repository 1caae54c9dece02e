package configs

import "time"

// Auth configures token issuance and password hashing. Secret signs
// HS256 bearer tokens and must be overridden outside development.
type Auth struct {
	Secret      string `env:"SECRET" envDefault:"change-me-in-production"`
	ExpireHours int    `env:"EXPIRE_HOURS" envDefault:"24"`
	// BcryptCost is passed to bcrypt.GenerateFromPassword. Zero selects
	// the library default.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"0"`

	// Login rate limit: at most MaxAttempts logins per email+IP within
	// WindowSeconds. Enforced only when Redis is enabled.
	LoginWindowSeconds int `env:"LOGIN_WINDOW_SECONDS" envDefault:"300"`
	LoginMaxAttempts   int `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
}

// TokenTTL returns the configured token lifetime.
func (c Auth) TokenTTL() time.Duration {
	hours := c.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
