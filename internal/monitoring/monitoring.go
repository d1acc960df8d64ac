package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's collectors and the registry serving them.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	SignupSuccess   prometheus.Counter
	LoginSuccess    prometheus.Counter
	LoginFailure    *prometheus.CounterVec
	TweetsPosted    prometheus.Counter
	TweetsDeleted   prometheus.Counter
	Follows         *prometheus.CounterVec
	Likes           *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		SignupSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signup_success_total",
			Help: "Total successful signups",
		}),
		LoginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "login_success_total",
			Help: "Total successful login attempts",
		}),
		LoginFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_failure_total",
			Help: "Total failed login attempts",
		}, []string{"reason"}),
		TweetsPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweets_posted_total",
			Help: "Total tweets successfully posted",
		}),
		TweetsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweets_deleted_total",
			Help: "Total tweets deleted by their authors",
		}),
		Follows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "follow_actions_total",
			Help: "Follow and unfollow requests by outcome",
		}, []string{"action", "outcome"}),
		Likes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "like_actions_total",
			Help: "Like and unlike requests by outcome",
		}, []string{"action", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.SignupSuccess,
		m.LoginSuccess,
		m.LoginFailure,
		m.TweetsPosted,
		m.TweetsDeleted,
		m.Follows,
		m.Likes,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request timing and status code per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
