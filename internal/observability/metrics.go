package observability

import (
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
)

// Metrics holds the process-wide counters exported on /metrics. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	promptBuilds      *CounterVec
	promptInvocations *CounterVec
	invokeLatency     *HistogramVec
	registryQueries   *CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init creates the metrics set once when enabled; it returns nil otherwise.
func Init(log *logger.Logger, enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = newMetrics()
		if log != nil {
			log.Info("Observability metrics enabled")
		}
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("ci_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"ci_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:       NewGauge("ci_api_inflight_requests", "In-flight API requests."),
		promptBuilds:      NewCounterVec("ci_prompt_builds_total", "Prompt payloads built by module/mode/status.", []string{"module", "mode", "status"}),
		promptInvocations: NewCounterVec("ci_prompt_invocations_total", "AI invocations by module/status.", []string{"module", "status"}),
		invokeLatency: NewHistogramVec(
			"ci_prompt_invocation_duration_seconds",
			"AI invocation latency in seconds by module/status.",
			[]string{"module", "status"},
			[]float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		),
		registryQueries: NewCounterVec("ci_registry_queries_total", "Prompt registry queries by operation.", []string{"op"}),
	}
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, _ *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, c := range []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.promptBuilds, m.promptInvocations, m.invokeLatency, m.registryQueries,
	} {
		if err := c.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	s := strconv.Itoa(status)
	m.apiRequests.Inc(method, route, s)
	m.apiLatency.Observe(dur.Seconds(), method, route, s)
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncPromptBuild(module, mode, status string) {
	if m == nil {
		return
	}
	m.promptBuilds.Inc(module, mode, status)
}

func (m *Metrics) ObserveInvocation(module, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.promptInvocations.Inc(module, status)
	m.invokeLatency.Observe(dur.Seconds(), module, status)
}

func (m *Metrics) IncRegistryQuery(op string) {
	if m == nil {
		return
	}
	m.registryQueries.Inc(op)
}
