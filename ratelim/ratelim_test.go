package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	var ok, limited int
	for i := 0; i < 30; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler(rec, req, nil)

		switch rec.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	assert.GreaterOrEqual(t, ok, 10, "burst should pass")
	assert.Greater(t, limited, 0, "requests past the burst should be limited")
}

func TestLimitKeyIgnoresEphemeralPort(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// drain the bucket from one port
	for i := 0; i < 30; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler(rec, req, nil)
	}

	// a new connection from the same host must share the drained bucket
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	handler(rec, req, nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// drain the first IP's bucket
	for i := 0; i < 30; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler(rec, req, nil)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
