package publica

import (
	"time"

	"github.com/publica-dev/publica/internal/db"
)

// Config carries the knobs the domain layer needs beyond the store.
type Config struct {
	TokenSecret  string
	TokenTTL     time.Duration
	TrendingDays int
}

// Manager owns the content-publishing use cases over the repository.
type Manager struct {
	db  *db.Repository
	cfg Config
	now Clock
}

func NewManager(repo *db.Repository, cfg Config) *Manager {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 72 * time.Hour
	}
	if cfg.TrendingDays == 0 {
		cfg.TrendingDays = 7
	}

	return &Manager{
		db:  repo,
		cfg: cfg,
		now: time.Now,
	}
}
