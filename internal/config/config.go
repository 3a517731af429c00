package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the whole environment surface of the service. Balance allotments
// live here rather than as literals: the base grant has changed between
// policy revisions (12/3 before, 15/4 now).
type Config struct {
	Port         string        `envconfig:"PORT" default:"3000"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	VacationAllotment     int `envconfig:"VACATION_ALLOTMENT" default:"15"`
	CompensatoryAllotment int `envconfig:"COMPENSATORY_ALLOTMENT" default:"4"`

	// MockSeed drives the deterministic demo fixture generator.
	MockSeed int64 `envconfig:"MOCK_SEED" default:"42"`

	RateLimitPerSecond float64 `envconfig:"RATE_LIMIT_PER_SECOND" default:"20"`
	RateLimitBurst     int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
