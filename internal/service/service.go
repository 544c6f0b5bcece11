package service

import (
	"context"

	"notes-api/internal/model"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// Create создает новую заметку с указанными title и content
	Create(ctx context.Context, title, content string) (model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, id int64) (model.Note, error)

	// List возвращает все заметки, новые первыми
	List(ctx context.Context) ([]model.Note, error)

	// Update частично обновляет заметку с указанным ID
	Update(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, id int64) error

	// Search ищет заметки по подстроке
	Search(ctx context.Context, query string) ([]model.Note, error)
}
