package queries

import (
	"context"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/ports"
	"retailops/internal/metrics"

	"github.com/rs/zerolog"
)

// GetStockQueryHandler serves ledger listings and single item levels.
type GetStockQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	cache      ports.StockCache
	logger     zerolog.Logger
}

// NewGetStockQueryHandler builds the handler. cache may be nil, in which case
// every level is read from storage.
func NewGetStockQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	cache ports.StockCache,
	logger zerolog.Logger,
) GetStockQueryHandler {
	return GetStockQueryHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With().Str("query", "stock").Logger(),
	}
}

func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) ([]StockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().StockRepository()

	var (
		items []*inventory.StockItem
		err   error
	)
	if query.LowOnly() {
		items, err = repo.LowStock(ctx, query.Threshold())
	} else {
		items, err = repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	response := make([]StockItemResponse, 0, len(items))
	for _, s := range items {
		response = append(response, stockItemResponse(s))
	}
	return response, nil
}

// HandleLevel returns errs.ObjectNotFoundError for an item never stocked. A
// cache failure falls back to storage.
func (h GetStockQueryHandler) HandleLevel(ctx context.Context, query GetStockLevelQuery) (StockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return StockItemResponse{}, err
	}

	if h.cache != nil {
		quantity, ok, err := h.cache.Get(ctx, query.Item())
		switch {
		case err != nil:
			h.logger.Warn().Err(err).Str("item", query.Item().String()).Msg("stock cache read failed")
		case ok:
			metrics.StockCacheHitsTotal.Inc()
			return StockItemResponse{
				Item:     query.Item().String(),
				Quantity: quantity,
				Low:      quantity <= inventory.DefaultLowStockThreshold,
			}, nil
		}
		metrics.StockCacheMissesTotal.Inc()
	}

	s, err := h.uowFactory.Create().StockRepository().Get(ctx, query.Item())
	if err != nil {
		return StockItemResponse{}, err
	}

	// A writer may commit and refresh before this fill lands; the cache keeps
	// whichever carries the newer version.
	if h.cache != nil {
		if err = h.cache.Set(ctx, s.Item(), s.Quantity(), s.Version()); err != nil {
			h.logger.Warn().Err(err).Str("item", s.Item().String()).Msg("stock cache fill failed")
		}
	}
	return stockItemResponse(s), nil
}
