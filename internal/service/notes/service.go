package notes

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"notes-api/internal/model"
	"notes-api/internal/repository"
	svc "notes-api/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(noteRepository repository.NoteRepository) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
	}
}

// Create создает новую заметку с указанными title и content
func (s *service) Create(ctx context.Context, title, content string) (model.Note, error) {
	// Значения сохраняются как есть
	if title == "" {
		return model.Note{}, model.NewValidationError("title", "cannot be empty")
	}
	if content == "" {
		return model.Note{}, model.NewValidationError("content", "cannot be empty")
	}

	note, err := s.noteRepository.Create(ctx, title, content)
	if err != nil {
		return model.Note{}, fmt.Errorf("noteRepository.Create: %w", err)
	}

	return note, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id int64) (model.Note, error) {
	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, fmt.Errorf("noteRepository.GetByID: %w", err)
	}

	return note, nil
}

// List возвращает список всех заметок, отсортированный по CreatedAt (новые первыми)
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("noteRepository.List: %w", err)
	}

	// При одинаковом времени создания выше заметка с большим ID
	slices.SortStableFunc(notes, func(a, b model.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return notes, nil
}

// Update обновляет только переданные поля заметки, пустая строка тоже считается значением
func (s *service) Update(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error) {
	note, err := s.noteRepository.Update(ctx, id, patch)
	if err != nil {
		return model.Note{}, fmt.Errorf("noteRepository.Update: %w", err)
	}

	return note, nil
}

// Delete удаляет заметку по ID
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("noteRepository.Delete: %w", err)
	}

	return nil
}

// Search возвращает заметки, содержащие query; порядок результата не меняется
func (s *service) Search(ctx context.Context, query string) ([]model.Note, error) {
	if query == "" {
		return nil, model.NewValidationError("query", "must contain at least 1 character")
	}

	notes, err := s.noteRepository.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("noteRepository.Search: %w", err)
	}

	return notes, nil
}
