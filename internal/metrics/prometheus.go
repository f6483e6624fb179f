package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wm_governance_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	DemoRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wm_governance_demo_runs_total",
			Help: "Demo invocations by demo and outcome",
		},
		[]string{"demo", "outcome"},
	)

	DemoRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wm_governance_demo_run_duration_seconds",
			Help:    "Round-trip time of demo backend calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"demo"},
	)

	DemoStaleResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wm_governance_demo_stale_responses_total",
			Help: "Demo responses discarded because the session moved on before they arrived",
		},
		[]string{"demo"},
	)

	DemoActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wm_governance_demo_active_sessions",
			Help: "Open demo sessions",
		},
	)

	SummaryCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wm_governance_summary_cache_total",
			Help: "Governance summary cache lookups by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(DemoRunsTotal)
		prometheus.MustRegister(DemoRunDuration)
		prometheus.MustRegister(DemoStaleResponses)
		prometheus.MustRegister(DemoActiveSessions)
		prometheus.MustRegister(SummaryCacheHits)
	})
}

func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
