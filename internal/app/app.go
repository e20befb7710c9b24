package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/api-blog/internal/config"
	handler "github.com/MKhiriev/api-blog/internal/handler/http"
	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/server"
	"github.com/MKhiriev/api-blog/internal/service"
	"github.com/MKhiriev/api-blog/internal/store"
	"github.com/MKhiriev/api-blog/models"
)

// App is a fully wired blog API instance.
type App struct {
	storages *store.Storages
	services *service.Services
	router   http.Handler
	server   server.Server

	logger *logger.Logger
}

// New connects to storage, applies migrations and builds the services and
// routes described by cfg. The returned App owns the database connection;
// call Close when done.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services := service.NewServices(storages, cfg.App, buildInfo, log)
	router := handler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		router:   router,
		server:   srv,
		logger:   log,
	}, nil
}

// Handler returns the routed HTTP handler without starting a listener.
func (a *App) Handler() http.Handler {
	return a.router
}

// Services exposes the service layer for tooling such as blogadmin.
func (a *App) Services() *service.Services {
	return a.services
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.server.RunServer(ctx)
}

// Close releases the database connection.
func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("error closing storages")
		return err
	}
	return nil
}
