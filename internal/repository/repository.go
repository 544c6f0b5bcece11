package repository

import (
	"context"
	"errors"

	"notes-api/internal/model"
)

// ErrNoteNotFound возвращается, когда заметка с указанным ID отсутствует
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository интерфейс для работы с заметками в хранилище
type NoteRepository interface {
	// Create создает новую заметку и присваивает ей следующий ID
	Create(ctx context.Context, title, content string) (model.Note, error)

	// GetByID возвращает заметку по её ID
	GetByID(ctx context.Context, id int64) (model.Note, error)

	// List возвращает снимок всех заметок
	List(ctx context.Context) ([]model.Note, error)

	// Update применяет patch к заметке и возвращает обновленную заметку
	Update(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, id int64) error

	// Search ищет заметки по подстроке в заголовке или содержании без учета регистра
	Search(ctx context.Context, query string) ([]model.Note, error)

	// Seed заполняет пустое хранилище примерами и возвращает число добавленных заметок
	Seed(ctx context.Context) (int, error)
}
