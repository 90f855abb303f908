package jobs

import (
	"context"

	"retailops/internal/core/application/usecases/queries"
	"retailops/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// LowStockJob periodically counts items at or below the threshold, publishes
// the count as a gauge and warns about each one.
type LowStockJob struct {
	handler   queries.GetStockQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    zerolog.Logger
}

// NewLowStockJob creates the job. schedule is a six field cron expression.
func NewLowStockJob(
	handler queries.GetStockQueryHandler,
	threshold int,
	schedule string,
	logger zerolog.Logger,
) *LowStockJob {
	return &LowStockJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With().Str("component", "low_stock_job").Logger(),
	}
}

// Start schedules the scan.
func (j *LowStockJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Int("threshold", j.threshold).Msg("low stock job started")
	return nil
}

// Run performs one scan and returns how many items are low.
func (j *LowStockJob) Run(ctx context.Context) int {
	query, err := queries.NewGetLowStockQuery(j.threshold)
	if err != nil {
		j.logger.Error().Err(err).Msg("low stock query rejected")
		return 0
	}

	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error().Err(err).Msg("low stock scan failed")
		return 0
	}

	metrics.LowStockItems.Set(float64(len(items)))
	for _, item := range items {
		j.logger.Warn().Str("item", item.Item).Int("quantity", item.Quantity).Msg("stock is low")
	}
	return len(items)
}

// Stop waits for a running scan to finish.
func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("low stock job stopped")
}
