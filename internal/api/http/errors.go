package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"notes-api/internal/model"
	"notes-api/internal/repository"
	notesv1 "notes-api/pkg/api/notes/v1"
)

// handleError конвертирует внутренние ошибки в HTTP статусы с детализацией.
// noteID равен 0, если запрос не ссылался на конкретную заметку.
func handleError(w http.ResponseWriter, r *http.Request, err error, noteID int64) {
	status, details := errorResponse(err, noteID)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err)
	}
	writeJSON(w, status, details)
}

func errorResponse(err error, noteID int64) (int, notesv1.ErrorDetails) {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return http.StatusNotFound, notesv1.ErrorDetails{
			Detail:            "Note not found",
			Reason:            fmt.Sprintf("Note with ID %d was searched but not found", noteID),
			InternalErrorCode: notesv1.ErrorCodeNoteNotFound,
			NoteId:            noteID,
		}
	}

	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		details := notesv1.ErrorDetails{
			Detail:            vErr.Error(),
			Reason:            fmt.Sprintf("Validation failed: %s", vErr.Error()),
			InternalErrorCode: notesv1.ErrorCodeValidation,
			NoteId:            noteID,
		}
		if vErr.Field != "" {
			details.Reason = fmt.Sprintf("Field %q validation failed: %s", vErr.Field, vErr.Message)
		}
		return http.StatusUnprocessableEntity, details
	}

	// Все остальные ошибки - Internal, подробности только в логе
	return http.StatusInternalServerError, notesv1.ErrorDetails{
		Detail:            "internal error",
		InternalErrorCode: notesv1.ErrorCodeInternal,
	}
}
