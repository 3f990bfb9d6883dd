package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/transaction-dashboard/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com seu ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
			}).Debug("http: request started")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("http: request completed in %s", formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("http: slow request %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics de handler em 500 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("http: panic while handling request")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("http: panic stack trace")
					}

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
