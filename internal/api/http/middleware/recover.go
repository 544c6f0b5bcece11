package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	notesv1 "notes-api/pkg/api/notes/v1"
)

// Recover перехватывает panic в хэндлерах и отвечает 500
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// http.ErrAbortHandler используется net/http для обрыва соединения
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "panic in handler",
				"request_id", RequestIDFromContext(r.Context()),
				"panic", rec,
				"stack", string(debug.Stack()))
			writeError(w, http.StatusInternalServerError, notesv1.ErrorDetails{
				Detail:            "internal error",
				InternalErrorCode: notesv1.ErrorCodeInternal,
			})
		}()
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, details notesv1.ErrorDetails) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(details)
}
