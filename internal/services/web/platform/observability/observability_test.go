package observability

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveLogged(t *testing.T, h http.Handler, req *http.Request, fields ...Field) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var buffer bytes.Buffer
	logged := RequestLogger(log.New(&buffer, "", 0), fields...)(h)
	rr := httptest.NewRecorder()
	logged.ServeHTTP(rr, req)
	return rr, buffer.String()
}

func TestRequestLoggerLogsCartMutation(t *testing.T) {
	t.Parallel()

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/products")
		w.WriteHeader(http.StatusFound)
	})
	req := httptest.NewRequest(http.MethodPost, "/products/cart", strings.NewReader("product=1"))
	req.Header.Set("X-Request-ID", "req-123")

	rr, line := serveLogged(t, h, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	for _, marker := range []string{"http request method=POST", "path=/products/cart", "status=302", "bytes=0", "request_id=req-123"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, line)
		}
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	rr, line := serveLogged(t, h, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	for _, marker := range []string{"method=GET", "path=/up", "status=200", "bytes=2", "latency=", "request_id=-"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, line)
		}
	}
}

func TestRequestLoggerAppendsFields(t *testing.T) {
	t.Parallel()

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "dh_visitor", Value: "3f2c9a10-aaaa"})

	_, line := serveLogged(t, h, req,
		Field{Key: "area", Value: func(*http.Request) string { return "admin" }},
		Field{Key: "visitor", Value: func(r *http.Request) string {
			c, err := r.Cookie("dh_visitor")
			if err != nil {
				return ""
			}
			return c.Value[:8]
		}},
		Field{Key: "note", Value: func(*http.Request) string { return "sale  ended\n" }},
		Field{Key: "empty", Value: func(*http.Request) string { return " " }},
		Field{Key: "", Value: func(*http.Request) string { return "dropped" }},
		Field{Key: "nil"},
	)
	if !strings.HasSuffix(strings.TrimSpace(line), "area=admin visitor=3f2c9a10 note=sale_ended empty=-") {
		t.Fatalf("unexpected field suffix: %q", line)
	}
	if strings.Contains(line, "dropped") || strings.Contains(line, "nil=") {
		t.Fatalf("incomplete fields were logged: %q", line)
	}
}
