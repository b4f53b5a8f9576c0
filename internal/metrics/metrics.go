package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarcalc_generations_total",
			Help: "Total dataset generations triggered",
		},
		[]string{"season"},
	)

	RecordsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solarcalc_records_generated_total",
			Help: "Total daily records synthesized",
		},
	)

	CSVDownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarcalc_csv_downloads_total",
			Help: "Total CSV exports served",
		},
		[]string{"season"},
	)

	ChartRendersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solarcalc_chart_renders_total",
			Help: "Total PNG chart renders",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solarcalc_active_sessions",
			Help: "Browser sessions currently held in memory",
		},
	)
)
