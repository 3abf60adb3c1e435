package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSaved(t *testing.T) {
	before := testutil.ToFloat64(WeaponConfigsSaved.WithLabelValues("ct"))
	RecordSaved(3)
	RecordSaved(3)
	assert.Equal(t, before+2, testutil.ToFloat64(WeaponConfigsSaved.WithLabelValues("ct")))
}

func TestRecordValidationFailure(t *testing.T) {
	before := testutil.ToFloat64(WeaponValidationFailures.WithLabelValues(OperationSave))
	RecordValidationFailure(OperationSave)
	assert.Equal(t, before+1, testutil.ToFloat64(WeaponValidationFailures.WithLabelValues(OperationSave)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{steamId}/weapons", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/players/{steamId}/weapons"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	req := httptest.NewRequest(http.MethodGet, "/players/76561198000000001/weapons", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418")))
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200")))
}
