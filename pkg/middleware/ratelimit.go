package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit aplica um token bucket global: um token a cada interval, até burst
func RateLimit(interval time.Duration, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Every(interval), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("http: rate limit exceeded")

				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "too many requests", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
