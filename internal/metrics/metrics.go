// Package metrics holds the process-wide Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for CommandsTotal.
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeFailed = "failed"
)

var (
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retailops_commands_total",
			Help: "Mutating commands handled, by command and outcome",
		},
		[]string{"command", "outcome"},
	)

	AuditAppendFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "retailops_audit_append_failures_total",
			Help: "Audit entries that could not be stored; the business operation still committed",
		},
	)

	LowStockItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "retailops_low_stock_items",
			Help: "Inventory items at or below the low stock threshold at the last scan",
		},
	)

	StockCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "retailops_stock_cache_hits_total",
			Help: "Stock level reads served from the cache",
		},
	)

	StockCacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "retailops_stock_cache_misses_total",
			Help: "Stock level reads that fell back to the database",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "retailops_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers every collector with the default registry. Call it once
// from main.
func Register() {
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(AuditAppendFailuresTotal)
	prometheus.MustRegister(LowStockItems)
	prometheus.MustRegister(StockCacheHitsTotal)
	prometheus.MustRegister(StockCacheMissesTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}

// ObserveCommand counts one handled command.
func ObserveCommand(command, outcome string) {
	CommandsTotal.WithLabelValues(command, outcome).Inc()
}
