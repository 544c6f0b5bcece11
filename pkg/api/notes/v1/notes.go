// Package notesv1 описывает JSON-контракт HTTP API заметок (версия 1).
package notesv1

import (
	"embed"
	"time"
)

// SwaggerSpecs содержит OpenAPI документ API
//
//go:embed notes.openapi.json
var SwaggerSpecs embed.FS

// SpecFile имя OpenAPI документа внутри SwaggerSpecs
const SpecFile = "notes.openapi.json"

// Коды ошибок, возвращаемые в поле internal_error_code
const (
	ErrorCodeNoteNotFound = "NOTE_NOT_FOUND"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeRateLimited  = "RATE_LIMITED"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

// Note представление заметки в API
type Note struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest тело запроса POST /notes
type CreateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UpdateNoteRequest тело запроса PUT /notes/{id}; отсутствующие поля не меняются
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ErrorDetails тело ответа с ошибкой
type ErrorDetails struct {
	Detail            string `json:"detail"`
	Reason            string `json:"reason,omitempty"`
	InternalErrorCode string `json:"internal_error_code"`
	NoteId            int64  `json:"note_id,omitempty"`
}

// HealthResponse ответ GET /
type HealthResponse struct {
	Message string `json:"message"`
}
