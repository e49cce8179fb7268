package config

import "time"

type HTTP struct {
	Address         string        `env:"ADDRESS,expand" envDefault:":3001"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,expand" envDefault:"10s"`
	CORS            CORS          `envPrefix:"CORS_"`
	RateLimit       RateLimit     `envPrefix:"RATE_LIMIT_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envSeparator:"," envDefault:"*"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"100ms"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"20"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"1h"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
}
