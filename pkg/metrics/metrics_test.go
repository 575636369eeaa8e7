package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/bookings", "200", time.Millisecond)
		m.ObserveDBQuery("query", nil, time.Millisecond)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.IncBookingAdmission(AdmissionAdmitted)
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("barber", reg)

	m.IncBookingAdmission(AdmissionAdmitted)
	m.IncBookingAdmission(AdmissionAdmitted)
	m.IncBookingAdmission(AdmissionConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingAdmissions.WithLabelValues(AdmissionAdmitted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingAdmissions.WithLabelValues(AdmissionConflict)))

	m.ObserveHTTPRequest("POST", "/bookings", "201", 10*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/bookings", "201")))

	m.ObserveDBQuery("exec", errors.New("boom"), time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(m.dbQueryDuration))

	m.SetDBPoolStats(5, 2, 3, 7)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
}
