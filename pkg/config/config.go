package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment driven setting of the application.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Bucket   BucketConfig
	DDragon  DDragonConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string `env:"API_PORT" envDefault:"8080"`
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	URL            string `env:"DATABASE_URL"`
	Name           string `env:"DATABASE_NAME" envDefault:"riftview"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// BucketConfig holds the S3 compatible bucket used for the scheduler logs.
type BucketConfig struct {
	Region       string `env:"BUCKET_REGION"`
	Endpoint     string `env:"BUCKET_ENDPOINT"`
	AccessKey    string `env:"BUCKET_ACCESS_KEY"`
	AccessSecret string `env:"BUCKET_ACCESS_SECRET"`
	LogBucket    string `env:"BUCKET_LOGS"`
}

// DDragonConfig holds the static data CDN settings.
type DDragonConfig struct {
	// Last resort version used when the versions endpoint can't be reached
	// and no cached version exists.
	DefaultVersion string   `env:"DDRAGON_DEFAULT_VERSION" envDefault:"15.9.1"`
	Languages      []string `env:"DDRAGON_LANGUAGES" envSeparator:"," envDefault:"en_US"`
}

// Load reads the .env file when running outside Docker and parses the environment.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		// Missing .env is fine, the environment may be set by other means.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse the environment: %w", err)
	}

	return cfg, nil
}
