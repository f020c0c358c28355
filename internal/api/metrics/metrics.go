// Package metrics defines and registers the custom Prometheus metrics of the
// dashboard API. It is the single source of truth for metric names, labels
// and help strings. All metrics register with the default registry on init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected as unauthenticated.
// Label:
//   - reason: "missing_header", "malformed_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected before identity was established.",
	},
	[]string{"reason"},
)

// AuthorizationDeniedTotal counts role-table denials.
// Label:
//   - operation: the policy operation, e.g. "project:create"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests denied by the role table.",
	},
	[]string{"operation"},
)

// ── Summary metrics ───────────────────────────────────────────────────────────

// SummaryDuration measures how long a summary takes to assemble.
// Label:
//   - view: "dashboard" or "project"
var SummaryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_duration_seconds",
		Help:      "Duration of summary aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"view"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks entries waiting in each dispatcher worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending per worker.",
	},
	[]string{"worker_id"},
)

var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Audit entries dropped because a worker queue was full.",
	},
)

var AuditWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_errors_total",
		Help:      "Audit entries that failed to persist.",
	},
)
