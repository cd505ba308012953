// Package metrics defines and registers all custom Prometheus metrics for
// the dogbook API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dogbook"

// OperationsTotal counts resolved GraphQL operations.
// Labels:
//   - operation: schema field name (e.g. "createDog", "dogBreeds")
//   - outcome: "ok" or "error"
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operations_total",
		Help:      "Total number of GraphQL operations resolved, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// OperationErrorsTotal counts operation failures by error code.
// Label:
//   - code: extensions code (e.g. "BAD_USER_INPUT", "UNAUTHORIZED")
var OperationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operation_errors_total",
		Help:      "Total number of failed GraphQL operations, by error code.",
	},
	[]string{"code"},
)

// OperationDuration measures end-to-end resolver latency per operation.
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "graphql_operation_duration_seconds",
		Help:      "Duration of GraphQL operation resolution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created user accounts.
// Label:
//   - role: role assigned to the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created, by assigned role.",
	},
	[]string{"role"},
)
