package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"notes-api/internal/converter"
	"notes-api/internal/model"
	svc "notes-api/internal/service"
	notesv1 "notes-api/pkg/api/notes/v1"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// Handler реализует REST API для заметок
type Handler struct {
	noteService svc.NoteService
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(noteService svc.NoteService) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// Register регистрирует маршруты API на mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /notes", h.ListNotes)
	mux.HandleFunc("POST /notes", h.CreateNote)
	mux.HandleFunc("GET /notes/{id}", h.GetNote)
	mux.HandleFunc("PUT /notes/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", h.DeleteNote)
	mux.HandleFunc("GET /search", h.SearchNotes)
}

// Health отвечает на проверку состояния сервиса
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notesv1.HealthResponse{Message: "Healthy"})
}

// ListNotes возвращает все заметки, новые первыми
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelsToAPI(notes))
}

// GetNote возвращает заметку по её ID
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err, id)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req notesv1.CreateNoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, err, 0)
		return
	}
	if req.Title == nil {
		handleError(w, r, model.NewValidationError("title", "field required"), 0)
		return
	}
	if req.Content == nil {
		handleError(w, r, model.NewValidationError("content", "field required"), 0)
		return
	}

	note, err := h.noteService.Create(r.Context(), *req.Title, *req.Content)
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/notes/%d", note.ID))
	writeJSON(w, http.StatusCreated, converter.ModelToAPI(note))
}

// UpdateNote частично обновляет заметку
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	var req notesv1.UpdateNoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, err, id)
		return
	}

	note, err := h.noteService.Update(r.Context(), id, converter.UpdateRequestToPatch(req))
	if err != nil {
		handleError(w, r, err, id)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

// DeleteNote удаляет заметку по ID
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchNotes ищет заметки по параметру query
func (h *Handler) SearchNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleError(w, r, err, 0)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelsToAPI(notes))
}

func noteIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, model.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

// decodeBody читает JSON тело запроса; пустое тело и мусор в конце считаются ошибкой
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("body", "field required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return model.NewValidationError("body", "is too large")
		}
		return model.NewValidationError("body", "must be a valid JSON object")
	}
	if dec.More() {
		return model.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
