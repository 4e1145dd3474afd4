package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	RATE_LIMITER_MEMORY = "memory"
	RATE_LIMITER_REDIS  = "redis"
)

type Config struct {
	IsTestMode    bool   `env:"TEST_MODE" envDefault:"false"`
	Secret        string `env:"SECRET,notEmpty"`
	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`
	Port          uint16 `env:"PORT" envDefault:"8080"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	RateLimiter string `env:"RATE_LIMITER" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	LoginCodeTTL      time.Duration `env:"LOGIN_CODE_TTL" envDefault:"10m"`
	SessionMaxAgeDays int           `env:"SESSION_MAX_AGE_DAYS" envDefault:"30"`
	CleanupSchedule   string        `env:"CLEANUP_SCHEDULE" envDefault:"@every 5m"`
	MigrationsPath    string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	DBConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`

	AwsRegion                 string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey              string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey              string `env:"AWS_SECRET_KEY"`
	AwsEmailSender            string `env:"AWS_EMAIL_SENDER"`
	AwsEmailLoginCodeTemplate string `env:"AWS_EMAIL_LOGIN_CODE_TEMPLATE"`
}

// IsEmailEnabled reports whether enough SES settings are present to send email.
func (c *Config) IsEmailEnabled() bool {
	return c.AwsAccessKey != "" && c.AwsSecretKey != "" && c.AwsEmailSender != "" && c.AwsEmailLoginCodeTemplate != ""
}

func (c *Config) Validate() error {
	switch c.RateLimiter {
	case RATE_LIMITER_MEMORY:
	case RATE_LIMITER_REDIS:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must be set when RATE_LIMITER is %q", RATE_LIMITER_REDIS)
		}
	default:
		return fmt.Errorf("invalid RATE_LIMITER value %q", c.RateLimiter)
	}
	if c.LoginCodeTTL <= 0 {
		return fmt.Errorf("LOGIN_CODE_TTL must be positive")
	}
	if c.SessionMaxAgeDays <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE_DAYS must be positive")
	}
	return nil
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
