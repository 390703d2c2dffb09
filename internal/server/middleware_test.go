package server

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"assigns when absent", "", false},
		{"propagates caller id", "trace-7f3a", true},
		{"replaces oversized id", strings.Repeat("x", 200), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := RequestIDMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = RequestID(r.Context())
			}))

			req := httptest.NewRequest("GET", "/api/v1/appearance", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set("X-Request-ID", tc.incoming)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			if got != seen {
				t.Errorf("header %q and context %q differ", got, seen)
			}
			if tc.keep {
				if got != tc.incoming {
					t.Errorf("X-Request-ID = %q, want %q", got, tc.incoming)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated id %q is not a UUID: %v", got, err)
			}
		})
	}
}

func TestRequestID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", http.NoBody)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("RequestID = %q, want empty", id)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	SecurityHeadersMiddleware(okHandler(http.StatusOK)).ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	csp := w.Header().Get("Content-Security-Policy")
	for _, directive := range []string{"default-src 'self'", "connect-src 'self'", "frame-ancestors 'none'"} {
		if !strings.Contains(csp, directive) {
			t.Errorf("CSP %q missing %q", csp, directive)
		}
	}
}

func TestVersionHeaderMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	VersionHeaderMiddleware(okHandler(http.StatusOK)).ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))

	if v := w.Header().Get("X-Authdeck-Version"); v == "" {
		t.Error("missing X-Authdeck-Version header")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("session map corrupted")
	})
	h := Chain(panicky, RequestIDMiddleware, RecoveryMiddleware(zap.New(core)))

	req := httptest.NewRequest("PUT", "/api/v1/appearance/theme/preset", http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if strings.Contains(w.Body.String(), "session map corrupted") {
		t.Error("panic value leaked into the response")
	}

	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d panic entries, want 1", len(entries))
	}
	if rid := entries[0].ContextMap()["request_id"]; rid != w.Header().Get("X-Request-ID") {
		t.Errorf("logged request_id = %v, want %q", rid, w.Header().Get("X-Request-ID"))
	}
}

func TestRecoveryMiddleware_RepanicsOnAbort(t *testing.T) {
	h := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", http.NoBody))
}

func TestChain_Order(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name+">")
				next.ServeHTTP(w, r)
				trace = append(trace, "<"+name)
			})
		}
	}
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
	})

	Chain(inner, mark("outer"), mark("inner")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", http.NoBody))

	want := []string{"outer>", "inner>", "handler", "<inner", "<outer"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}
