package observability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "pyregraph"

// Prometheus implements every hook interface on top of a private
// Prometheus registry. Register installs it as the global hooks;
// WriteToTextfile dumps the collected metrics for node_exporter's textfile
// collector.
type Prometheus struct {
	registry *prometheus.Registry

	resolveTotal    *prometheus.CounterVec
	resolveDuration *prometheus.HistogramVec

	buildTotal    *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	graphNodes    *prometheus.GaugeVec
	graphEdges    *prometheus.GaugeVec

	renderTotal    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec

	cacheEvents        *prometheus.CounterVec
	cacheSnapshotBytes *prometheus.GaugeVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpErrors   *prometheus.CounterVec
}

// NewPrometheus creates the collectors on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Prometheus{
		registry: reg,

		resolveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "resolve",
			Name:      "total",
			Help:      "Card resolutions by source and result",
		}, []string{"source", "result"}),
		resolveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "resolve",
			Name:      "duration_seconds",
			Help:      "Card resolution latency in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),

		buildTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "build",
			Name:      "total",
			Help:      "Pod graph builds by policy and result",
		}, []string{"policy", "result"}),
		buildDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Time to ingest a decklist and fold it into a graph",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		}, []string{"policy"}),
		graphNodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "nodes",
			Help:      "Nodes in the last built graph",
		}, []string{"policy"}),
		graphEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "edges",
			Help:      "Edges in the last built graph",
		}, []string{"policy"}),

		renderTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "render",
			Name:      "total",
			Help:      "Render runs by format set and result",
		}, []string{"formats", "result"}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Render latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"formats"}),

		cacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Cache hits, misses and writes",
		}, []string{"key_type", "event"}),
		cacheSnapshotBytes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "snapshot_bytes",
			Help:      "Size of the last saved cache snapshot",
		}, []string{"key_type"}),

		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Outgoing HTTP responses by host and status code",
		}, []string{"method", "host", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Outgoing HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "host"}),
		httpErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Outgoing HTTP requests that failed without a response",
		}, []string{"method", "host"}),
	}
}

// Registry returns the registry holding the collectors.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Register installs p as the pipeline, cache, and HTTP hooks.
func (p *Prometheus) Register() {
	SetPipelineHooks(p)
	SetCacheHooks(p)
	SetHTTPHooks(p)
}

// WriteToTextfile writes the current metric values in the Prometheus text
// format. The file is written to a temporary name and renamed into place.
func (p *Prometheus) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *Prometheus) OnResolveComplete(_ context.Context, source string, d time.Duration, err error) {
	p.resolveTotal.WithLabelValues(source, result(err)).Inc()
	p.resolveDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (p *Prometheus) OnBuildStart(context.Context, string) {}

func (p *Prometheus) OnBuildComplete(_ context.Context, policy string, nodes, edges int, d time.Duration, err error) {
	p.buildTotal.WithLabelValues(policy, result(err)).Inc()
	p.buildDuration.WithLabelValues(policy).Observe(d.Seconds())
	if err == nil {
		p.graphNodes.WithLabelValues(policy).Set(float64(nodes))
		p.graphEdges.WithLabelValues(policy).Set(float64(edges))
	}
}

func (p *Prometheus) OnRenderStart(context.Context, []string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	label := strings.Join(formats, ",")
	p.renderTotal.WithLabelValues(label, result(err)).Inc()
	p.renderDuration.WithLabelValues(label).Observe(d.Seconds())
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheEvents.WithLabelValues(keyType, "set").Inc()
	p.cacheSnapshotBytes.WithLabelValues(keyType).Set(float64(size))
}

func (p *Prometheus) OnRequest(context.Context, string, string, string) {}

func (p *Prometheus) OnResponse(_ context.Context, method, host, _ string, code int, d time.Duration) {
	p.httpRequests.WithLabelValues(method, host, strconv.Itoa(code)).Inc()
	p.httpDuration.WithLabelValues(method, host).Observe(d.Seconds())
}

func (p *Prometheus) OnError(_ context.Context, method, host, _ string, _ error) {
	p.httpErrors.WithLabelValues(method, host).Inc()
}

var (
	_ PipelineHooks = (*Prometheus)(nil)
	_ CacheHooks    = (*Prometheus)(nil)
	_ HTTPHooks     = (*Prometheus)(nil)
)
