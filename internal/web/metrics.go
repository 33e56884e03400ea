package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors. Each Server registers its own so
// several can live in one process.
type metrics struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	answers  *prometheus.CounterVec
	draws    *prometheus.CounterVec
	created  prometheus.Counter
}

func newMetrics(liveSessions func() int) *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsmanual_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dsmanual_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsmanual_quiz_answers_total",
			Help: "Submitted quiz answers by result.",
		}, []string{"result"}),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dsmanual_draws_total",
			Help: "Cards and questions drawn, by mode.",
		}, []string{"mode"}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dsmanual_sessions_created_total",
			Help: "Sessions created.",
		}),
	}

	m.reg.MustRegister(
		m.requests, m.duration, m.answers, m.draws, m.created,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "dsmanual_sessions_live",
			Help: "Sessions currently held in memory.",
		}, func() float64 { return float64(liveSessions()) }),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// instrument records the count and latency of every request.
func (m *metrics) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) answered(correct bool) {
	if correct {
		m.answers.WithLabelValues("correct").Inc()
	} else {
		m.answers.WithLabelValues("incorrect").Inc()
	}
}

func (m *metrics) drew(mode string) {
	m.draws.WithLabelValues(mode).Inc()
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}
