// Package observability provides request logging middleware.
package observability

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Field adds a key=value pair to each request log line. Value runs after
// the handler, on the request the handler received.
type Field struct {
	Key   string
	Value func(*http.Request) string
}

// RequestLogger logs one line per request with method, path, status,
// bytes, latency and request id, followed by any extra fields.
func RequestLogger(logger *log.Logger, fields ...Field) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			var line strings.Builder
			fmt.Fprintf(&line,
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method, r.URL.Path, status, rec.bytes, time.Since(started).Round(time.Microsecond), logValue(r.Header.Get("X-Request-ID")),
			)
			for _, field := range fields {
				if field.Key == "" || field.Value == nil {
					continue
				}
				fmt.Fprintf(&line, " %s=%s", field.Key, logValue(field.Value(r)))
			}
			logger.Print(line.String())
		})
	}
}

// logValue keeps a value on one token of the log line.
func logValue(raw string) string {
	value := strings.Join(strings.Fields(raw), "_")
	if value == "" {
		return "-"
	}
	return value
}
