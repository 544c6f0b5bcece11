package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/model"
	"notes-api/internal/repository"
	notesv1 "notes-api/pkg/api/notes/v1"
)

// mockNoteService - мок сервиса для тестирования handler
type mockNoteService struct {
	createFunc func(ctx context.Context, title, content string) (model.Note, error)
	getFunc    func(ctx context.Context, id int64) (model.Note, error)
	listFunc   func(ctx context.Context) ([]model.Note, error)
	updateFunc func(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error)
	deleteFunc func(ctx context.Context, id int64) error
	searchFunc func(ctx context.Context, query string) ([]model.Note, error)
}

func (m *mockNoteService) Create(ctx context.Context, title, content string) (model.Note, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, title, content)
	}
	return model.Note{}, nil
}

func (m *mockNoteService) Get(ctx context.Context, id int64) (model.Note, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return model.Note{}, nil
}

func (m *mockNoteService) List(ctx context.Context) ([]model.Note, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockNoteService) Update(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return model.Note{}, nil
}

func (m *mockNoteService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNoteService) Search(ctx context.Context, query string) ([]model.Note, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func serve(t *testing.T, svc *mockNoteService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	NewHandler(svc).Register(mux)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) notesv1.ErrorDetails {
	t.Helper()
	var details notesv1.ErrorDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details), "body: %s", rec.Body.String())
	return details
}

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestHealth(t *testing.T) {
	rec := serve(t, &mockNoteService{}, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Healthy"}`, rec.Body.String())
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	// Arrange
	svc := &mockNoteService{
		listFunc: func(ctx context.Context) ([]model.Note, error) {
			return nil, nil
		},
	}

	// Act
	rec := serve(t, svc, http.MethodGet, "/notes", "")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListNotes_KeepsServiceOrder(t *testing.T) {
	svc := &mockNoteService{
		listFunc: func(ctx context.Context) ([]model.Note, error) {
			return []model.Note{{ID: 3, Title: "C"}, {ID: 1, Title: "A"}}, nil
		},
	}

	rec := serve(t, svc, http.MethodGet, "/notes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var notes []notesv1.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, int64(3), notes[0].Id)
	assert.Equal(t, int64(1), notes[1].Id)
}

func TestGetNote_Success(t *testing.T) {
	// Arrange
	svc := &mockNoteService{
		getFunc: func(ctx context.Context, id int64) (model.Note, error) {
			return model.Note{ID: id, Title: "Test Title", Content: "Test Content", CreatedAt: fixedTime, UpdatedAt: fixedTime}, nil
		},
	}

	// Act
	rec := serve(t, svc, http.MethodGet, "/notes/12", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 12,
		"title": "Test Title",
		"content": "Test Content",
		"created_at": "2024-03-01T10:00:00Z",
		"updated_at": "2024-03-01T10:00:00Z"
	}`, rec.Body.String())
}

func TestGetNote_NotFoundWithDetails(t *testing.T) {
	// Arrange
	svc := &mockNoteService{
		getFunc: func(ctx context.Context, id int64) (model.Note, error) {
			return model.Note{}, repository.ErrNoteNotFound
		},
	}

	// Act
	rec := serve(t, svc, http.MethodGet, "/notes/404", "")

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
	details := decodeError(t, rec)
	assert.Equal(t, "Note not found", details.Detail)
	assert.Equal(t, notesv1.ErrorCodeNoteNotFound, details.InternalErrorCode)
	assert.Contains(t, details.Reason, "was searched but not found")
	assert.Equal(t, int64(404), details.NoteId)
}

func TestGetNote_InvalidID(t *testing.T) {
	called := false
	svc := &mockNoteService{
		getFunc: func(ctx context.Context, id int64) (model.Note, error) {
			called = true
			return model.Note{}, nil
		},
	}

	rec := serve(t, svc, http.MethodGet, "/notes/abc", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, notesv1.ErrorCodeValidation, decodeError(t, rec).InternalErrorCode)
	assert.False(t, called, "Expected service not to be called")
}

func TestCreateNote_Success(t *testing.T) {
	// Arrange
	var gotTitle, gotContent string
	svc := &mockNoteService{
		createFunc: func(ctx context.Context, title, content string) (model.Note, error) {
			gotTitle, gotContent = title, content
			return model.Note{ID: 1, Title: title, Content: content, CreatedAt: fixedTime, UpdatedAt: fixedTime}, nil
		},
	}

	// Act
	rec := serve(t, svc, http.MethodPost, "/notes", `{"title":"Welcome","content":"Hi"}`)

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Welcome", gotTitle)
	assert.Equal(t, "Hi", gotContent)
	assert.Equal(t, "/notes/1", rec.Header().Get("Location"))

	var note notesv1.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, int64(1), note.Id)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestCreateNote_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"content":"Hi"}`},
		{name: "missing content", body: `{"title":"Welcome"}`},
		{name: "null title", body: `{"title":null,"content":"Hi"}`},
		{name: "invalid json", body: `{"title":`},
		{name: "empty body", body: ""},
		{name: "array body", body: `[]`},
		{name: "trailing data", body: `{"title":"a","content":"b"} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockNoteService{
				createFunc: func(ctx context.Context, title, content string) (model.Note, error) {
					t.Fatal("service must not be called")
					return model.Note{}, nil
				},
			}

			rec := serve(t, svc, http.MethodPost, "/notes", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, notesv1.ErrorCodeValidation, decodeError(t, rec).InternalErrorCode)
		})
	}
}

func TestCreateNote_ServiceValidationError(t *testing.T) {
	svc := &mockNoteService{
		createFunc: func(ctx context.Context, title, content string) (model.Note, error) {
			return model.Note{}, model.NewValidationError("title", "cannot be empty")
		},
	}

	rec := serve(t, svc, http.MethodPost, "/notes", `{"title":"","content":"Hi"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := decodeError(t, rec)
	assert.Equal(t, "title cannot be empty", details.Detail)
	assert.Contains(t, details.Reason, `"title"`)
}

func TestUpdateNote_PartialPatch(t *testing.T) {
	// Arrange
	var gotPatch model.NotePatch
	svc := &mockNoteService{
		updateFunc: func(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error) {
			gotPatch = patch
			return model.Note{ID: id, Title: "Welcome", Content: *patch.Content, CreatedAt: fixedTime, UpdatedAt: fixedTime.Add(time.Minute)}, nil
		},
	}

	// Act
	rec := serve(t, svc, http.MethodPut, "/notes/1", `{"content":"Edited"}`)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotPatch.Title, "Expected title to be absent from patch")
	require.NotNil(t, gotPatch.Content)
	assert.Equal(t, "Edited", *gotPatch.Content)

	var note notesv1.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "Welcome", note.Title)
	assert.Equal(t, "Edited", note.Content)
}

func TestUpdateNote_NotFound(t *testing.T) {
	svc := &mockNoteService{
		updateFunc: func(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error) {
			return model.Note{}, repository.ErrNoteNotFound
		},
	}

	rec := serve(t, svc, http.MethodPut, "/notes/9", `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(9), decodeError(t, rec).NoteId)
}

func TestDeleteNote_NoContent(t *testing.T) {
	var deleted int64
	svc := &mockNoteService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}

	rec := serve(t, svc, http.MethodDelete, "/notes/2", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(2), deleted)
}

func TestDeleteNote_NotFound(t *testing.T) {
	svc := &mockNoteService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return repository.ErrNoteNotFound
		},
	}

	rec := serve(t, svc, http.MethodDelete, "/notes/2", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchNotes_PassesQuery(t *testing.T) {
	var gotQuery string
	svc := &mockNoteService{
		searchFunc: func(ctx context.Context, query string) ([]model.Note, error) {
			gotQuery = query
			return []model.Note{}, nil
		},
	}

	rec := serve(t, svc, http.MethodGet, "/search?query=hello%20world", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, "hello world", gotQuery)
}

func TestSearchNotes_ValidationError(t *testing.T) {
	svc := &mockNoteService{
		searchFunc: func(ctx context.Context, query string) ([]model.Note, error) {
			return nil, model.NewValidationError("query", "must contain at least 1 character")
		},
	}

	rec := serve(t, svc, http.MethodGet, "/search", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleError_InternalError(t *testing.T) {
	svc := &mockNoteService{
		listFunc: func(ctx context.Context) ([]model.Note, error) {
			return nil, errors.New("some internal error")
		},
	}

	rec := serve(t, svc, http.MethodGet, "/notes", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	details := decodeError(t, rec)
	assert.Equal(t, notesv1.ErrorCodeInternal, details.InternalErrorCode)
	assert.NotContains(t, rec.Body.String(), "some internal error", "Expected internal details to stay in logs")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, &mockNoteService{}, http.MethodPatch, "/notes/1", `{}`)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
