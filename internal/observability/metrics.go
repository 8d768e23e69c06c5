package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	treeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "tree",
			Name:      "ops_total",
			Help:      "Total tree mutations by operation and outcome.",
		},
		[]string{"scene", "op", "outcome"},
	)
	treeNodes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scenectl",
			Subsystem: "tree",
			Name:      "nodes",
			Help:      "Current node count per hosted scene.",
		},
		[]string{"scene"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"app", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scenectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(treeOps, treeNodes, httpRequests, httpDuration)
	})
}

// RecordTreeOp counts one tree mutation.
func RecordTreeOp(scene, op string, err error) {
	RegisterMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	treeOps.WithLabelValues(scene, op, outcome).Inc()
}

// SetTreeSize publishes the current node count of a hosted scene.
func SetTreeSize(scene string, size int) {
	RegisterMetrics()
	treeNodes.WithLabelValues(scene).Set(float64(size))
}

// RecordHTTPRequest counts and times one HTTP request.
func RecordHTTPRequest(app, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(app, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(app, method, path, statusLabel).Observe(duration.Seconds())
}
