package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/mrvrecords/pkg/metrics"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/items/{id}", "404"))
	for _, p := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	after := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/items/{id}", "404"))

	assert.Equal(t, 2.0, after-before)
}

func TestRecordOperationOutcome(t *testing.T) {
	ok := metrics.RecordOperations.WithLabelValues("uom", "delete", "success")
	failed := metrics.RecordOperations.WithLabelValues("uom", "delete", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	metrics.RecordOperation("uom", "delete", nil)
	metrics.RecordOperation("uom", "delete", errors.New("in use"))

	assert.Equal(t, 1.0, testutil.ToFloat64(ok)-okBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(failed)-failedBefore)
}

func TestHandlerServesRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	metrics.Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mrvrecords_http_requests_in_flight")
}
