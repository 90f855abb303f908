package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/ports"

	"github.com/rs/zerolog"
)

// AdjustStockCommandHandler applies a manual edit under the per-item lock and
// returns the resulting quantity.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
	cache      ports.StockCache
	logger     zerolog.Logger
}

// NewAdjustStockCommandHandler builds the handler. cache may be nil.
func NewAdjustStockCommandHandler(
	uowFactory StockUoWFactory,
	cache ports.StockCache,
	logger zerolog.Logger,
) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With().Str("command", "adjust_stock").Logger(),
	}
}

func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (quantity int, err error) {
	defer func() { observe("adjust_stock", err) }()

	if err = cmd.Validate(); err != nil {
		return 0, err
	}

	if err = cmd.Actor().Can(access.AdjustInventory); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StockRepository()

	stock, err := repo.GetForUpdate(ctx, cmd.Item())
	if err != nil {
		return 0, err
	}

	quantity = stock.Adjust(cmd.Delta())

	if err = repo.Save(ctx, stock); err != nil {
		return 0, err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, stock)

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	refreshStockCache(ctx, h.cache, h.logger, stock)

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("item", cmd.Item().String()).
		Int("delta", cmd.Delta()).
		Int("quantity", quantity).
		Msg("stock adjusted")
	return quantity, nil
}
