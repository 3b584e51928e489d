package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWithBodyLimit(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), WithBodyLimit(16))

	small := httptest.NewRequest(http.MethodPost, "http://example.com", strings.NewReader("short body"))
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, small)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200 for body under limit, got %d", rw.Code)
	}

	big := httptest.NewRequest(http.MethodPost, "http://example.com", strings.NewReader(strings.Repeat("x", 64)))
	rwBig := httptest.NewRecorder()
	h.ServeHTTP(rwBig, big)
	if rwBig.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversize body, got %d", rwBig.Code)
	}
}

func TestWithTimeout(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusOK)
		case <-r.Context().Done():
		}
	}), WithTimeout(20*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if rw.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from timeout handler, got %d", rw.Code)
	}

	fast := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), WithTimeout(1*time.Second))
	rwFast := httptest.NewRecorder()
	fast.ServeHTTP(rwFast, httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	if rwFast.Code != http.StatusOK {
		t.Fatalf("expected 200 under timeout, got %d", rwFast.Code)
	}
}
