package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arogya_queries_total",
		Help: "The total number of inbound queries by classified intent",
	}, []string{"intent"})

	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arogya_resolutions_total",
		Help: "The total number of resolved replies by resolution source",
	}, []string{"source"})

	FeedFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arogya_feed_failures_total",
		Help: "The total number of failed data feed fetches by feed",
	}, []string{"feed"})

	TranslationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arogya_translation_failures_total",
		Help: "The total number of failed translation calls by direction",
	}, []string{"direction"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arogya_llm_request_duration_seconds",
		Help:    "Duration of AI completion requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})

	BroadcastSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arogya_broadcast_sends_total",
		Help: "The total number of broadcast delivery attempts by status",
	}, []string{"status"})

	BroadcastRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arogya_broadcast_run_duration_seconds",
		Help:    "Duration in seconds of a full broadcast cycle",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 900},
	})

	SubscribersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arogya_subscribers_registered_total",
		Help: "The total number of successful subscriber registrations",
	})
)
