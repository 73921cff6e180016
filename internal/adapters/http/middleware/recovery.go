package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged stack trace and a generic 500
// problem response. When the handler had already started its response,
// nothing more is written. http.ErrAbortHandler is re-panicked so net/http
// can abort the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				if !sr.wrote() {
					dto.WriteProblem(sr, r, http.StatusInternalServerError, dto.MsgInternal)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
