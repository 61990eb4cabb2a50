// Package metrics defines and registers all custom Prometheus metrics for
// the tool catalog API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// --- Proposal lifecycle metrics ---

// ProposalsCreatedTotal counts newly submitted proposals.
var ProposalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proposals_created_total",
		Help:      "Total number of tool proposals submitted.",
	},
)

// ProposalsResolvedTotal counts terminal proposal transitions.
// Label:
//   - outcome: "accepted", "refused", or "expired"
var ProposalsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proposals_resolved_total",
		Help:      "Total number of proposals resolved, by terminal outcome.",
	},
	[]string{"outcome"},
)

// --- Notification metrics ---

// NotificationsCreatedTotal counts persisted notification records.
// Label:
//   - type: the notification type tag (e.g. "new_proposal", "reminder")
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications recorded, by type.",
	},
	[]string{"type"},
)

// --- Scheduler metrics ---

// SchedulerRunsTotal counts scheduled job executions.
// Labels:
//   - job: "purge_expired" or "remind_pending"
//   - result: "ok", "error", or "skipped" (lock held elsewhere)
var SchedulerRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_runs_total",
		Help:      "Total number of scheduled maintenance runs, by job and result.",
	},
	[]string{"job", "result"},
)

// SchedulerRunDuration measures how long a scheduled job takes end-to-end.
// Label:
//   - job: "purge_expired" or "remind_pending"
var SchedulerRunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scheduler_run_duration_seconds",
		Help:      "Duration of scheduled maintenance runs.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"job"},
)
