package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GroupOrderMetrics records outcomes and latency for group order operations.
type GroupOrderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	size     *prometheus.HistogramVec
}

// NewGroupOrderMetrics registers the group order metrics on the provided registerer.
func NewGroupOrderMetrics(reg prometheus.Registerer) *GroupOrderMetrics {
	if reg == nil {
		return &GroupOrderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "group_order_operation_duration_seconds",
		Help:    "Duration of group order operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "group_order_operation_success",
		Help: "Successful group order operations.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "group_order_operation_failure",
		Help: "Failed group order operations.",
	}, []string{"operation"})
	size := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "group_order_participants",
		Help:    "Participant count observed when a group order closes.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure, size)
	return &GroupOrderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		size:     size,
	}
}

// ObserveDuration records the duration for the named operation.
func (g *GroupOrderMetrics) ObserveDuration(operation string, duration time.Duration) {
	if g == nil || g.duration == nil {
		return
	}
	g.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (g *GroupOrderMetrics) IncSuccess(operation string) {
	if g == nil || g.success == nil {
		return
	}
	g.success.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (g *GroupOrderMetrics) IncFailure(operation string) {
	if g == nil || g.failure == nil {
		return
	}
	g.failure.WithLabelValues(normalizeLabel(operation)).Inc()
}

// ObserveParticipants records how many participants a group order had.
func (g *GroupOrderMetrics) ObserveParticipants(operation string, count int) {
	if g == nil || g.size == nil {
		return
	}
	g.size.WithLabelValues(normalizeLabel(operation)).Observe(float64(count))
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
