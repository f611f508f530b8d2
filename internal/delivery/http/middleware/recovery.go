package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"devevents/internal/delivery/http/helpers"
)

// Recovery turns a panicking handler into a 500 response and logs the stack.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path,
				"method", r.Method,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
