package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"foodorder/internal/pkg/response"
)

// Middleware отвечает 503 на новые запросы после начала остановки, пока in-flight запросы дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					_ = response.Write(w, response.Error(http.StatusServiceUnavailable, "Service is shutting down", nil))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
