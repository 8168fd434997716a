// Package metrics defines the custom Prometheus metrics for the catalog API.
// It is the single source of truth for metric names, labels, and help strings.
// Registration happens at import time via promauto; per-route HTTP metrics are
// added separately by the echoprometheus middleware in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ResourceMutationsTotal counts successful write operations per resource.
// Labels:
//   - resource: "user" or "product"
//   - operation: "create", "update", or "delete"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of successful create/update/delete operations, by resource.",
	},
	[]string{"resource", "operation"},
)

// ValidationFailuresTotal counts payloads rejected by business validation
// (missing fields, duplicate email, non-positive price).
// Label:
//   - resource: "user" or "product"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by payload validation, by resource.",
	},
	[]string{"resource"},
)

// NotFoundTotal counts lookups for ids or categories that matched nothing.
// Label:
//   - resource: "user" or "product"
var NotFoundTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "not_found_total",
		Help:      "Total number of lookups that resolved to no record, by resource.",
	},
	[]string{"resource"},
)
