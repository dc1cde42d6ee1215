package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doulovera/proyx-app/pkg/httputil"
	"github.com/doulovera/proyx-app/pkg/logger"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func limited(rps float64, burst int) (http.Handler, *visitorStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)}
	store := newVisitorStore(rps, burst, visitorTTL)
	store.now = clock.now
	h := rateLimit(store, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return h, store, clock
}

func hit(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BurstThenRejects(t *testing.T) {
	h, _, _ := limited(1, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code, "request %d", i+1)
	}

	rec := hit(h, "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var body httputil.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, CodeRateLimited, body.Error.Code)
}

func TestRateLimit_Refills(t *testing.T) {
	h, _, clock := limited(1, 1)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1234").Code)

	clock.advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
}

func TestRateLimit_IndependentPerIP(t *testing.T) {
	h, _, _ := limited(1, 1)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:5678").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1234").Code)
}

func TestRateLimit_SweepsIdleVisitors(t *testing.T) {
	h, store, clock := limited(1, 1)

	hit(h, "10.0.0.1:1234")
	hit(h, "10.0.0.2:1234")
	assert.Equal(t, 2, store.len())

	clock.advance(visitorTTL + time.Second)
	hit(h, "10.0.0.3:1234")
	assert.Equal(t, 1, store.len())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "192.168.1.5:4000", "192.168.1.5"},
		{"remote without port", nil, "192.168.1.5", "192.168.1.5"},
		{"forwarded first hop", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.1:1", "203.0.113.9"},
		{"forwarded garbage", map[string]string{"X-Forwarded-For": "nope"}, "10.0.0.1:1", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:1", "198.51.100.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
