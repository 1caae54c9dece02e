package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Host is the interface the server binds to. Empty means all
	// interfaces.
	Host string `env:"HOST" envDefault:""`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
