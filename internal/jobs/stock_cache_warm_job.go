package jobs

import (
	"context"

	"retailops/internal/core/application/usecases/queries"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// StockCacheWarmJob copies every ledger quantity into the stock cache so
// level reads hit after a cache restart or eviction.
type StockCacheWarmJob struct {
	handler  queries.GetStockQueryHandler
	cache    ports.StockCache
	schedule string
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewStockCacheWarmJob(
	handler queries.GetStockQueryHandler,
	cache ports.StockCache,
	schedule string,
	logger zerolog.Logger,
) *StockCacheWarmJob {
	return &StockCacheWarmJob{
		handler:  handler,
		cache:    cache,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "stock_cache_warm_job").Logger(),
	}
}

// Start warms the cache once, then on every tick.
func (j *StockCacheWarmJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.Run(context.Background())
	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("stock cache warm job started")
	return nil
}

// Run returns the number of items offered to the cache. Each write carries the
// row version read, so a warm pass racing a stock edit never rolls the cache
// back to the older quantity.
func (j *StockCacheWarmJob) Run(ctx context.Context) int {
	items, err := j.handler.Handle(ctx, queries.NewGetStockQuery())
	if err != nil {
		j.logger.Error().Err(err).Msg("read stock for cache warm")
		return 0
	}

	warmed := 0
	for _, item := range items {
		name, err := kernel.NewItemName(item.Item)
		if err != nil {
			continue
		}
		if err := j.cache.Set(ctx, name, item.Quantity, item.Version); err != nil {
			j.logger.Warn().Err(err).Str("item", item.Item).Msg("cache warm failed")
			return warmed
		}
		warmed++
	}
	return warmed
}

func (j *StockCacheWarmJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("stock cache warm job stopped")
}
