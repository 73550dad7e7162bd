package repository

import (
	"context"
	"log/slog"

	"pickup-scheduler/internal/domain/order"
	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/infra/sheet"
	"pickup-scheduler/internal/pkg/config"
)

type OrderRepository struct {
	store  FileStore
	path   string
	logger *slog.Logger
}

func NewOrderRepository(store FileStore, cfg config.Config, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		store:  store,
		path:   cfg.Files.OrdersPath,
		logger: logger,
	}
}

// Load reads the ready-orders workbook; the header row may sit below a title block.
func (r *OrderRepository) Load(ctx context.Context) (order.Catalog, error) {
	data, err := r.store.Fetch(ctx, r.path)
	if err != nil {
		return nil, err
	}

	table, err := sheet.Decode(r.path, data, sheet.DecodeOptions{HeaderMarker: order.ColumnOrderNumber})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindMalformed, "failed to parse orders file", err)
	}

	catalog := make(order.Catalog, 0, len(table.Rows))
	for _, rec := range table.Rows {
		o := order.FromRecord(rec)
		if o.IsReady() {
			catalog = append(catalog, o)
		}
	}
	return catalog, nil
}
