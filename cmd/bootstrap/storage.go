package bootstrap

import (
	"log/slog"
	"net/http"

	"pickup-scheduler/internal/infra/graph"
	"pickup-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewGraphClient,
	),
)

func NewGraphClient(cfg config.GraphConfig, logger *slog.Logger) (*graph.Client, error) {
	base := &http.Client{Timeout: cfg.Timeout}
	return graph.NewClient(cfg, base, logger.With("component", "graph"))
}
