package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/publica-dev/publica/config"
	"github.com/publica-dev/publica/internal/db"
	"github.com/publica-dev/publica/internal/publica"
	"github.com/publica-dev/publica/internal/rest"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := publica.NewManager(database, publica.Config{
		TokenSecret:  cfg.Auth.TokenSecret,
		TokenTTL:     cfg.TokenTTL(),
		TrendingDays: cfg.TrendingDays(),
	})
	handler := rest.NewHandler(manager, logger, rest.NewMetrics())

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	a.Logger.Info("service listening", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
