// Package metrics holds the Prometheus collectors for the newsdesk service.
// Every recording method is safe to call on a nil *Metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsdesk"

// LLM call purposes.
const (
	PurposeGenerate = "generate"
	PurposeScore    = "score"
)

// Outcomes shared by several collectors.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
	OutcomeEmpty   = "empty"
)

// Refresh outcomes.
const (
	RefreshKept      = "kept"
	RefreshRefreshed = "refreshed"
	RefreshSkipped   = "skipped"
	RefreshFailed    = "failed"
)

// Metrics groups every collector the service records.
type Metrics struct {
	LLMCalls         *prometheus.CounterVec
	LLMLatency       *prometheus.HistogramVec
	UpdatesGenerated *prometheus.CounterVec
	RefreshTopics    *prometheus.CounterVec
	RefreshRuns      prometheus.Counter
	VotingActions    *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPLatency      *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		LLMCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Generative service calls by purpose and outcome",
		}, []string{"purpose", "outcome"}),
		LLMLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Generative service call latency in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"purpose"}),
		UpdatesGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "updates_total",
			Help:      "Updates generated by trigger",
		}, []string{"trigger"}),
		RefreshTopics: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "topics_total",
			Help:      "Topics visited by the refresh loop by outcome",
		}, []string{"outcome"}),
		RefreshRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "runs_total",
			Help:      "Completed refresh passes",
		}),
		VotingActions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voting",
			Name:      "actions_total",
			Help:      "Voting actions by kind and outcome",
		}, []string{"action", "outcome"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status code",
		}, []string{"method", "code"}),
		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Feed cache lookups by result",
		}, []string{"result"}),
	}
}

// ObserveLLMCall records one generative service call.
func (m *Metrics) ObserveLLMCall(purpose, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.LLMCalls.WithLabelValues(purpose, outcome).Inc()
	m.LLMLatency.WithLabelValues(purpose).Observe(d.Seconds())
}

// UpdateGenerated counts a persisted update; trigger is "submit", "refresh" or "promotion".
func (m *Metrics) UpdateGenerated(trigger string) {
	if m == nil {
		return
	}
	m.UpdatesGenerated.WithLabelValues(trigger).Inc()
}

// RefreshTopic records the outcome for one topic of a refresh pass.
func (m *Metrics) RefreshTopic(outcome string) {
	if m == nil {
		return
	}
	m.RefreshTopics.WithLabelValues(outcome).Inc()
}

// RefreshRun counts a finished refresh pass.
func (m *Metrics) RefreshRun() {
	if m == nil {
		return
	}
	m.RefreshRuns.Inc()
}

// VotingAction records a propose/vote/consolidate attempt; outcome is an
// error kind or OutcomeSuccess.
func (m *Metrics) VotingAction(action, outcome string) {
	if m == nil {
		return
	}
	m.VotingActions.WithLabelValues(action, outcome).Inc()
}

// HTTPRequest records one served request.
func (m *Metrics) HTTPRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method).Observe(d.Seconds())
}

// CacheLookup records a feed cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
