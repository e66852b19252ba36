package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ocaval_validation_duration_seconds",
			Help:    "Time taken to run a complete data set validation",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocaval_validations_total",
			Help: "Total number of validation runs",
		},
		[]string{"status"}, // pass, fail or error
	)

	validationFindings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ocaval_validation_findings",
			Help: "Number of findings in the last validation run",
		},
	)
)
