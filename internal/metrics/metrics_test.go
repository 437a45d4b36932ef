package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	m := New("test")

	m.RecordRequest(http.MethodGet, "/transactions/{id}", http.StatusOK, 10*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/transactions/{id}", http.StatusOK, 20*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/transactions/{id}", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/transactions/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/transactions/{id}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestCounters(t *testing.T) {
	m := New("")

	m.RecordAuthFailure("expired")
	m.RecordRateLimitHit("/auth/login")
	m.RecordRateLimitHit("/auth/login")
	m.SetBuildInfo("1.0.0", "abc", "2026-01-01")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authFailures.WithLabelValues("expired")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rateLimitHits.WithLabelValues("/auth/login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.buildInfo.WithLabelValues("1.0.0", "abc", "2026-01-01")))
}

func TestHandler(t *testing.T) {
	m := New("test")
	m.RecordRequest(http.MethodPost, "/auth/login", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `test_http_requests_total{method="POST",route="/auth/login",status="200"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRouteHolder(t *testing.T) {
	assert.Equal(t, UnmatchedRoute, RouteFromContext(context.Background()))

	// no holder: SetRoute is a no-op
	SetRoute(context.Background(), "/x")

	ctx := WithRouteHolder(context.Background())
	assert.Equal(t, UnmatchedRoute, RouteFromContext(ctx))

	SetRoute(ctx, "/categories/{id}/subcategories")
	assert.Equal(t, "/categories/{id}/subcategories", RouteFromContext(ctx))
}
