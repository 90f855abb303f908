package commands

import (
	"context"
	"errors"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/ports"
	"retailops/internal/metrics"
	"retailops/internal/pkg/errs"

	"github.com/rs/zerolog"
)

type eventSource interface {
	DrainEvents() []audit.Event
}

// recordAudit appends every event drained from sources. The audit log is best
// effort: a failed append is logged and counted but never fails the command.
func recordAudit(ctx context.Context, repo ports.AuditLogRepository, logger zerolog.Logger, sources ...eventSource) {
	for _, source := range sources {
		for _, event := range source.DrainEvents() {
			entry, err := audit.NewEntry(event)
			if err == nil {
				err = repo.Append(ctx, entry)
			}
			if err != nil {
				metrics.AuditAppendFailuresTotal.Inc()
				logger.Error().Err(err).Str("message", event.Message()).Msg("audit append failed")
			}
		}
	}
}

// refreshStockCache mirrors committed quantities into the cache. Writes carry
// the row version, so a refresh that finishes after a newer one is dropped by
// the cache. A nil cache is allowed; failures only cost a stale read until the
// next write.
func refreshStockCache(ctx context.Context, cache ports.StockCache, logger zerolog.Logger, items ...*inventory.StockItem) {
	if cache == nil {
		return
	}
	for _, item := range items {
		if err := cache.Set(ctx, item.Item(), item.Quantity(), item.Version()); err != nil {
			logger.Warn().Err(err).Str("item", item.Item().String()).Msg("stock cache refresh failed")
		}
	}
}

// observe counts a finished command by outcome.
func observe(command string, err error) {
	switch {
	case err == nil:
		metrics.ObserveCommand(command, metrics.OutcomeOK)
	case errors.Is(err, errs.ErrUnauthorized):
		metrics.ObserveCommand(command, metrics.OutcomeDenied)
	default:
		metrics.ObserveCommand(command, metrics.OutcomeFailed)
	}
}
