package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		TokenSecret string
		TokenTTL    duration
	}
	Trending struct {
		Days int
	}
}

// duration lets TOML carry values like "72h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// TokenTTL returns the configured token lifetime, defaulting to 72h.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTL.Duration == 0 {
		return 72 * time.Hour
	}
	return c.Auth.TokenTTL.Duration
}

// TrendingDays returns the configured trending window, defaulting to 7.
func (c *Config) TrendingDays() int {
	if c.Trending.Days == 0 {
		return 7
	}
	return c.Trending.Days
}
