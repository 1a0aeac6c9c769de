package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "scenefeed"

const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultSkip  = "skipped"
)

type Metrics struct {
	registry *prometheus.Registry

	FeedLoads    *prometheus.CounterVec
	SeedRuns     *prometheus.CounterVec
	FollowEvents prometheus.Counter
	SaveToggles  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		FeedLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_loads_total",
			Help:      "Feed tab loads by tab and result.",
		}, []string{"tab", "result"}),
		SeedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_runs_total",
			Help:      "Seeding operations by operation and result.",
		}, []string{"operation", "result"}),
		FollowEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "follow_events_total",
			Help:      "Follow status changes handled by viewer sessions.",
		}),
		SaveToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_toggles_total",
			Help:      "Saved-item toggles by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.FeedLoads, m.SeedRuns, m.FollowEvents, m.SaveToggles)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

var Module = fx.Provide(New)
