package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Panel event labels.
const (
	eventSelect   = "select"
	eventCollapse = "collapse"
	eventTheme    = "theme"
	eventHover    = "hover"
	eventExternal = "external"
)

// metrics counts panel events. Each server owns its registry so tests can
// create servers freely.
type metrics struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "growthnav_panel_events_total",
			Help: "Panel interactions handled, by event.",
		}, []string{"event"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "growthnav_panel_failures_total",
			Help: "Panel interactions that could not be fulfilled, by event.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.events, m.failures)
	return m
}

func (m *metrics) observe(event string, err error) {
	m.events.WithLabelValues(event).Inc()
	if err != nil {
		m.failures.WithLabelValues(event).Inc()
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
