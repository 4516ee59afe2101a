package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-while/go-bonita/internal/config"
)

// newTestServer builds a server on the default config for recorder tests
func newTestServer() *WebServer {
	return NewServer(config.NewDefaultWebConfig())
}

// doRequest runs a request through the router and returns the recorder
func doRequest(s *WebServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.Router.ServeHTTP(w, req)
	return w
}

func TestPingRoute(t *testing.T) {
	s := newTestServer()

	w := doRequest(s, http.MethodGet, "/ping")
	if w.Code != http.StatusOK {
		t.Errorf("GET /ping: expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "pong" {
		t.Errorf("GET /ping: expected body %q, got %q", "pong", w.Body.String())
	}
}

func TestRobotsTxt(t *testing.T) {
	s := newTestServer()

	w := doRequest(s, http.MethodGet, "/robots.txt")
	if w.Code != http.StatusOK {
		t.Errorf("GET /robots.txt: expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "User-agent: *\nDisallow:\n" {
		t.Errorf("GET /robots.txt: unexpected body %q", w.Body.String())
	}
}

func TestFaviconNotFound(t *testing.T) {
	s := newTestServer()

	w := doRequest(s, http.MethodGet, "/favicon.ico")
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /favicon.ico: expected status 404, got %d", w.Code)
	}
}

func TestUnmatchedRoutes(t *testing.T) {
	s := newTestServer()

	// No custom not-found behavior: unmatched paths and methods get
	// Gin's default 404.
	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/admin"},
		{http.MethodGet, "/api/v1/stats"},
		{http.MethodPost, "/"},
		{http.MethodDelete, "/"},
	}

	for _, tc := range testCases {
		w := doRequest(s, tc.method, tc.path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected status 404, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer()

	w := doRequest(s, http.MethodGet, "/")

	headers := []struct {
		name     string
		expected string
	}{
		{"X-Frame-Options", "DENY"},
		{"X-Content-Type-Options", "nosniff"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
	}

	for _, h := range headers {
		if got := w.Header().Get(h.name); got != h.expected {
			t.Errorf("Header %s: expected %q, got %q", h.name, h.expected, got)
		}
	}
}

func TestStartRequiresCertWithSSL(t *testing.T) {
	cfg := config.NewDefaultWebConfig()
	cfg.SSL = true

	s := NewServer(cfg)
	if err := s.Start(); err == nil {
		t.Error("Start with SSL but no cert/key: expected error, got nil")
	}
}
