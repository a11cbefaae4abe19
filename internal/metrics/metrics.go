package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/screenmap/screenmap/internal"
)

const (
	ns  string = "screenmap"
	sub string = "api"
)

var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Subsystem: sub,
		Name:      "request_duration",
		Help:      "Duration of all requests from when it is received by the middleware stack until its returned upstream",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 50, 75, 100},
	}, []string{"path", "code", "superset", "method"})

	PayloadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Subsystem: sub,
		Name:      "response_payload_bytes",
		Help:      "Bytes returned upstream as a result of API requests",
		Buckets:   []float64{150, 500, 1000, 2500, 5000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"path", "code", "superset", "method"})

	ResolveOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: "resolver",
		Name:      "outcomes_total",
		Help:      "Boundary feature names resolved while rendering maps, by how they matched",
	}, []string{"style", "match"})
)

// ObserveMatch counts one resolved (or unresolved) boundary name.
func ObserveMatch(style string, kind internal.MatchKind) {
	ResolveOutcomes.With(prometheus.Labels{"style": style, "match": string(kind)}).Inc()
}
