// Package metrics exports container layout activity as Prometheus metrics.
// A Collector is a ui.Observer; hand it to containers with ui.WithObserver.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hubastard/flexbox/engine/geom"
)

const namespace = "flexbox"

type Collector struct {
	registry *prometheus.Registry

	passes   *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	children *prometheus.GaugeVec
	width    *prometheus.GaugeVec
	height   *prometheus.GaugeVec
	resizes  *prometheus.CounterVec
}

// New registers the layout metrics on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_passes_total",
			Help:      "Layout passes run, by container.",
		}, []string{"container"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_skipped_total",
			Help:      "Ticks that found nothing to lay out, by container.",
		}, []string{"container"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_pass_duration_seconds",
			Help:      "Wall time of one layout pass.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}, []string{"container"}),
		children: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_children",
			Help:      "Children positioned by the last pass.",
		}, []string{"container"}),
		width: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_width",
			Help:      "Current container width in pixels.",
		}, []string{"container"}),
		height: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_height",
			Help:      "Current container height in pixels.",
		}, []string{"container"}),
		resizes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resize_events_total",
			Help:      "Drag steps that changed a container's bounds.",
		}, []string{"container"}),
	}
	c.registry.MustRegister(c.passes, c.skipped, c.duration, c.children, c.width, c.height, c.resizes)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) LayoutPass(container string, children int, bounds geom.Vec2, took time.Duration) {
	c.passes.WithLabelValues(container).Inc()
	c.duration.WithLabelValues(container).Observe(took.Seconds())
	c.children.WithLabelValues(container).Set(float64(children))
	c.setSize(container, bounds)
}

func (c *Collector) LayoutSkipped(container string) {
	c.skipped.WithLabelValues(container).Inc()
}

func (c *Collector) Resized(container string, size geom.Vec2) {
	c.resizes.WithLabelValues(container).Inc()
	c.setSize(container, size)
}

func (c *Collector) setSize(container string, size geom.Vec2) {
	c.width.WithLabelValues(container).Set(float64(size.X))
	c.height.WithLabelValues(container).Set(float64(size.Y))
}
