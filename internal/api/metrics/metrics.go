// Package metrics defines and registers all custom Prometheus metrics for
// the minifeed service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "minifeed"

// ── Remote store metrics ──────────────────────────────────────────────────────

// StoreRequestsTotal counts requests issued to the remote REST store.
// Labels:
//   - method: HTTP verb ("GET", "POST", "PUT", "DELETE")
//   - resource: top-level collection ("users" or "posts")
//   - code: HTTP status returned by the store, or "error" on transport failure
var StoreRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_requests_total",
		Help:      "Total number of requests issued to the remote store.",
	},
	[]string{"method", "resource", "code"},
)

// StoreRequestDuration measures remote store request latency.
var StoreRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_request_duration_seconds",
		Help:      "Duration of remote store requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "resource"},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// FeedsComposedTotal counts feed compositions.
// Labels:
//   - kind: "popular" or "followed"
//   - result: "ok" or "degraded" (empty feed returned after a failure)
var FeedsComposedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feeds_composed_total",
		Help:      "Total number of feed compositions, by kind and result.",
	},
	[]string{"kind", "result"},
)

// FeedCacheTotal counts popular-feed cache lookups.
// Label:
//   - result: "hit" or "miss"
var FeedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_cache_total",
		Help:      "Total number of popular-feed cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Bookmark metrics ──────────────────────────────────────────────────────────

// BookmarkTogglesTotal counts bookmark toggle attempts.
// Label:
//   - result: "bookmarked", "removed", "rejected", or "failed"
var BookmarkTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_toggles_total",
		Help:      "Total number of bookmark toggle attempts, by result.",
	},
	[]string{"result"},
)

// BookmarkCompensationsTotal counts compensating post writes issued after a
// failed user-side bookmark write.
// Label:
//   - result: "ok" (post reverted) or "failed" (resources left inconsistent)
var BookmarkCompensationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_compensations_total",
		Help:      "Total number of compensating bookmark writes, by result.",
	},
	[]string{"result"},
)

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchQueriesTotal counts search operations that reached the store.
// Label:
//   - resource: "posts" or "users"
var SearchQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total number of search operations issued against the store.",
	},
	[]string{"resource"},
)
