package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func TestRequestID_GeneratesUUID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	r.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "req-42", seen)
}

func TestRecovery_RespondsInternalError(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(logger.NewWithWriter(&buf, zerolog.InfoLevel))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"внутренняя ошибка сервера"}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic recovered: boom")
}

func TestLogging_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	h := RequestID(Logging(logger.NewWithWriter(&buf, zerolog.InfoLevel))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})))

	r := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	r.Header.Set(RequestIDHeader, "req-7")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Contains(t, buf.String(), "POST /bookings - 409")
	assert.Contains(t, buf.String(), "request_id=req-7")
}

type recordedObservation struct {
	method, route, status string
}

type fakeMetrics struct {
	observed []recordedObservation
}

func (f *fakeMetrics) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	f.observed = append(f.observed, recordedObservation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector))
	router.HandleFunc("/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/17", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/18", nil))

	require.Len(t, collector.observed, 2)
	assert.Equal(t, recordedObservation{http.MethodGet, "/bookings/{id}", "404"}, collector.observed[0])
	assert.Equal(t, collector.observed[0], collector.observed[1])
}
