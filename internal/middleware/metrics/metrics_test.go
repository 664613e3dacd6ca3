package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/threads/{thread}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/threads/42", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	got := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/threads/{thread}", "404"))
	assert.Equal(t, float64(1), got)

	// the raw URL must never become a label
	raw := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/threads/42", "404"))
	assert.Zero(t, raw)
}

func TestMiddlewareDefaultsStatusTo200(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	got := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/probe", "200"))
	assert.Equal(t, float64(1), got)
}
