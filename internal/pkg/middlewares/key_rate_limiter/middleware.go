package key_rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fitbox/pkg/logger"
)

// Middleware ограничивает частоту запросов по IP клиента через общий
// Redis-счётчик. При недоступном Redis пропускаем запрос: деградация
// лимитера не должна ронять выдачу.
func Middleware(log handlerLogger, limitPerWindow int, limiter KeyLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("rate limit check failed, passing request through")
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				handlerPath := r.URL.Path
				route := mux.CurrentRoute(r)
				if route != nil {
					if template, err := route.GetPathTemplate(); err == nil {
						handlerPath = template
					}
				}

				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("route", handlerPath),
					logger.NewField("client_ip", key),
				).Warn("per-client rate limit exceeded")

				KeyRateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitPerWindow))
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)

				_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
				if err != nil {
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("failed to write rate limit response")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
