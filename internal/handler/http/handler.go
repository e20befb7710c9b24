package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/service"
)

type Handler struct {
	services *service.Services

	// registry holds the request metrics exposed on /metrics.
	registry *prometheus.Registry
	metrics  *requestMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		registry: registry,
		metrics:  newRequestMetrics(registry),
		logger:   logger,
	}
}
