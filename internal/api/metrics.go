package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "malama_calculations_total",
		Help: "Impact calculations served.",
	})

	calculationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "malama_calculation_errors_total",
		Help: "Impact calculations rejected for invalid parameters.",
	})

	overallScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "malama_overall_score",
		Help:    "Distribution of overall sustainability scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
)
