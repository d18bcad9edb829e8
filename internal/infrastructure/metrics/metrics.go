package metrics

import (
	"net/http"
	"strconv"
	"time"

	"painting_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "painting_crm"

// Recorder owns the service's prometheus collectors.
type Recorder struct {
	gatherer       prometheus.Gatherer
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	reportDuration *prometheus.HistogramVec
	reportFailures *prometheus.CounterVec
}

var _ interfaces.IReportObserver = (*Recorder)(nil)

// NewRecorder registers the collectors on reg. Pass prometheus.NewRegistry()
// in tests to keep them isolated from the default registry.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	r := &Recorder{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kpi",
			Name:      "report_duration_seconds",
			Help:      "Time to fetch and compute a KPI report, by period.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"period"}),
		reportFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kpi",
			Name:      "report_failures_total",
			Help:      "KPI reports that failed, by period.",
		}, []string{"period"}),
	}

	for _, c := range []prometheus.Collector{r.httpRequests, r.httpDuration, r.reportDuration, r.reportFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveReport(period string, elapsed time.Duration, err error) {
	r.reportDuration.WithLabelValues(period).Observe(elapsed.Seconds())
	if err != nil {
		r.reportFailures.WithLabelValues(period).Inc()
	}
}

// Middleware records every request under its route template, or "unmatched"
// for 404s, so label cardinality stays bounded.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
