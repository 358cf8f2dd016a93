package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"

	t.Run("Valid Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		mw := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/slot/spin", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		mw := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/slot/spin", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		mw := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/slot/spin", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Public Paths Bypass Auth", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		mw := AuthMiddleware(apiKey, nil, detector)(okHandler())

		for _, path := range []string{"/healthz", "/readyz", "/metrics", "/events", "/swagger/index.html"} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			mw.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "path %s should bypass auth", path)
		}
	})

	t.Run("Empty Key Disables Auth", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		mw := AuthMiddleware("", nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/slot/spin", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := RateLimitMiddleware(nil, detector)(okHandler())

	var lastCode int
	for i := 0; i < RequestRateLimit+1; i++ {
		req := httptest.NewRequest("GET", "/api/v1/slot/state", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// Other IPs are unaffected
	req := httptest.NewRequest("GET", "/api/v1/slot/state", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestExtractIP(t *testing.T) {
	t.Run("Direct Connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.10:54321"

		assert.Equal(t, "192.168.1.10", extractIP(req, nil))
	})

	t.Run("Forwarded Header Ignored From Untrusted Peer", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.10:54321"
		req.Header.Set(HeaderForwardedFor, "1.2.3.4")

		assert.Equal(t, "192.168.1.10", extractIP(req, nil))
	})

	t.Run("Forwarded Header Honored From Trusted Proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.10:54321"
		req.Header.Set(HeaderForwardedFor, "1.2.3.4, 5.6.7.8")

		assert.Equal(t, "5.6.7.8", extractIP(req, []string{"192.168.1.10"}))
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	read := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mw := RequestSizeLimitMiddleware(8)(read)

	t.Run("Under Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("small"))
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Over Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
