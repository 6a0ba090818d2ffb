package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sif_reports_submitted_total",
		Help: "Reports submitted, by category.",
	}, []string{"category"})

	ReportsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sif_reports_resolved_total",
		Help: "Reports resolved or dismissed, by action taken.",
	}, []string{"action"})

	BlocksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sif_blocks_created_total",
		Help: "User blocks created.",
	})

	// PendingReports backs the moderator-facing queue badge.
	PendingReports = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sif_reports_pending",
		Help: "Reports currently in the pending state.",
	})
)
