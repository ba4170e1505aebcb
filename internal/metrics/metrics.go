// Package metrics exposes fetch and action counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "botdash"

// Collectors owns a private registry so tests and multiple instances do not
// collide on the default one.
type Collectors struct {
	registry *prometheus.Registry

	fetchTotal     *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	actionTotal    *prometheus.CounterVec
	actionDuration *prometheus.HistogramVec
}

// New registers the dashboard collectors plus the Go runtime collectors.
func New() *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Resource fetches by resource and result (ok, error, stale).",
		}, []string{"resource", "result"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Resource fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		actionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_total",
			Help:      "Operator actions by action and outcome (success, rejected, error).",
		}, []string{"action", "outcome"}),
		actionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Operator action latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}
	c.registry.MustRegister(
		c.fetchTotal, c.fetchDuration, c.actionTotal, c.actionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveFetch records one settled fetch.
func (c *Collectors) ObserveFetch(resource, result string, d time.Duration) {
	c.fetchTotal.WithLabelValues(resource, result).Inc()
	c.fetchDuration.WithLabelValues(resource).Observe(d.Seconds())
}

// ObserveAction records one settled action.
func (c *Collectors) ObserveAction(kind, outcome string, d time.Duration) {
	c.actionTotal.WithLabelValues(kind, outcome).Inc()
	c.actionDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Handler serves the registry.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collectors) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("metrics listener started", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
