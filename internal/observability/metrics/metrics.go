package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for conversational flows.
type ChatMetrics struct {
	messagesTotal      *prometheus.CounterVec
	classifierFailures *prometheus.CounterVec
	turnLatency        *prometheus.HistogramVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "almassist",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total processed chat turns by route",
		}, []string{"route"}),
		classifierFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "almassist",
			Subsystem: "chat",
			Name:      "classifier_failures_total",
			Help:      "Total intent classifier failures",
		}, []string{"kind"}),
		turnLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "almassist",
			Subsystem: "chat",
			Name:      "turn_latency_seconds",
			Help:      "Latency of full chat turn processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.classifierFailures, m.turnLatency)
	return m
}

// ObserveMessage counts one processed turn. route names the branch that
// produced the reply (onboarding, greeting, farewell, menu, classifier,
// responder, fallback).
func (m *ChatMetrics) ObserveMessage(route string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(route).Inc()
}

func (m *ChatMetrics) ObserveClassifierFailure(kind string) {
	if m == nil {
		return
	}
	m.classifierFailures.WithLabelValues(kind).Inc()
}

func (m *ChatMetrics) ObserveTurnLatency(route string, seconds float64) {
	if m == nil {
		return
	}
	m.turnLatency.WithLabelValues(route).Observe(seconds)
}
