package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestGroupOrderMetricsRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGroupOrderMetrics(reg)

	m.IncSuccess("join")
	m.IncSuccess("join")
	m.IncFailure("close")
	m.ObserveDuration("create", 120*time.Millisecond)
	m.ObserveParticipants("close", 3)

	require.Equal(t, float64(2), testutil.ToFloat64(m.success.WithLabelValues("join")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.failure.WithLabelValues("close")))
}

func TestGroupOrderMetricsNilSafe(t *testing.T) {
	var m *GroupOrderMetrics
	require.NotPanics(t, func() {
		m.IncSuccess("join")
		m.IncFailure("join")
		m.ObserveDuration("join", time.Second)
		m.ObserveParticipants("join", 1)
	})

	empty := NewGroupOrderMetrics(nil)
	require.NotPanics(t, func() { empty.IncSuccess("join") })
}

func TestNormalizeLabel(t *testing.T) {
	require.Equal(t, "unknown", normalizeLabel(""))
	require.Equal(t, "close", normalizeLabel("close"))
}
