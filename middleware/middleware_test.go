package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "first forwarded-for entry",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2"},
			want:    "203.0.113.7",
		},
		{
			name:    "single forwarded-for entry",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:    "203.0.113.7",
		},
		{
			name:    "forwarded-for with spaces",
			headers: map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "real-ip fallback",
			headers: map[string]string{"X-Real-IP": "198.51.100.3"},
			want:    "198.51.100.3",
		},
		{
			name:    "forwarded-for wins over real-ip",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.3"},
			want:    "203.0.113.7",
		},
		{
			name: "sentinel when no headers",
			want: UnknownIP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPRateLimiter(t *testing.T) {
	// 60/min with burst 2: two immediate requests pass, third is denied
	l := NewIPRateLimiter(60, 2)

	if !l.Allow("1.1.1.1") || !l.Allow("1.1.1.1") {
		t.Fatal("Burst requests should be allowed")
	}
	if l.Allow("1.1.1.1") {
		t.Error("Request over burst should be denied")
	}
	// Other clients have their own bucket
	if !l.Allow("2.2.2.2") {
		t.Error("Different IP should not share the bucket")
	}
}

func TestWithRateLimitResponds429(t *testing.T) {
	l := NewIPRateLimiter(60, 1)
	handler := WithRateLimit(l, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/vote", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")

	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("First request should pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the next handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/campaigns", nil)
	req.Header.Set("Origin", "https://example.com")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}
