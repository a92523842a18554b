package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Advisor Prometheus metrics.
var (
	ForwardCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forward_candidates",
			Help:      "Number of forward-search candidates per request",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"stage"}, // "built" / "returned"
	)

	InverseResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inverse_resolutions_total",
			Help:      "Inverse-search material resolutions",
		},
		[]string{"result"}, // "matched" / "fallback"
	)

	ChatRepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_replies_total",
			Help:      "Chat replies by matched intent",
		},
		[]string{"intent"},
	)
)

var registerAdvisorOnce sync.Once

// RegisterAdvisorMetrics registers the advisor metrics on the default registry.
// Safe to call more than once.
func RegisterAdvisorMetrics() {
	registerAdvisorOnce.Do(func() {
		prometheus.MustRegister(ForwardCandidates)
		prometheus.MustRegister(InverseResolutionsTotal)
		prometheus.MustRegister(ChatRepliesTotal)
	})
}
