package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,       default=3000"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// StoreDriver selects the repository implementation: memory (default,
	// process-lifetime data seeded with fixtures) or mongo.
	StoreDriver string `env:"STORE_DRIVER, default=memory"`

	// RateLimit is the per-IP request budget per minute. 0 disables limiting.
	RateLimit float64 `env:"RATE_LIMIT, default=100"`
	// BodyLimit caps request body size, using Echo's human-readable format.
	BodyLimit string `env:"BODY_LIMIT, default=10M"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog_api"`
}

// RedisConfig is optional: an empty Addr means no Redis connection is made and
// the readiness probe runs without a dependency check.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsProduction reports whether the service runs with ENV=production, which
// suppresses internal error details in responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
