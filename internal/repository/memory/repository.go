package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"notes-api/internal/model"
	"notes-api/internal/repository"
)

var _ repository.NoteRepository = (*repo)(nil)

// sampleNotes добавляются в пустое хранилище при старте
var sampleNotes = []struct {
	Title   string
	Content string
}{
	{Title: "Welcome", Content: "This is your first note—edit or delete it!"},
	{Title: "Kavia Notes App", Content: "Modern notes, fast editing, and instant search."},
}

// Option настраивает in-memory репозиторий
type Option func(*repo)

// WithClock подменяет источник текущего времени (используется в тестах)
func WithClock(now func() time.Time) Option {
	return func(r *repo) {
		r.now = now
	}
}

// Все операции выполняются под одним mutex: чтение и запись
// никогда не пересекаются, частично примененное изменение не видно.
type repo struct {
	mu     sync.Mutex
	notes  map[int64]model.Note
	nextID int64
	now    func() time.Time
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map
func NewRepository(opts ...Option) repository.NoteRepository {
	r := &repo{
		notes:  make(map[int64]model.Note),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create создает новую заметку со следующим по счету ID
func (r *repo) Create(ctx context.Context, title, content string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(title, content), nil
}

// insert вызывается только под r.mu
func (r *repo) insert(title, content string) model.Note {
	now := r.now()
	note := model.Note{
		ID:        r.nextID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// ID не переиспользуются даже после удаления
	r.nextID++
	r.notes[note.ID] = note

	return note
}

// GetByID возвращает заметку по её ID
func (r *repo) GetByID(ctx context.Context, id int64) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return note, nil
}

// List возвращает копию всех заметок в порядке возрастания ID
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot(func(model.Note) bool { return true }), nil
}

// Update применяет patch к заметке; UpdatedAt обновляется всегда
func (r *repo) Update(ctx context.Context, id int64, patch model.NotePatch) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.notes[id]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	updated := patch.Apply(existing)
	updated.UpdatedAt = r.now()
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		updated.UpdatedAt = updated.CreatedAt
	}
	r.notes[id] = updated

	return updated, nil
}

// Delete удаляет заметку по ID
func (r *repo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[id]; !exists {
		return repository.ErrNoteNotFound
	}

	delete(r.notes, id)

	return nil
}

// Search возвращает заметки, у которых title или content содержит query
func (r *repo) Search(ctx context.Context, query string) ([]model.Note, error) {
	needle := strings.ToLower(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot(func(n model.Note) bool {
		return strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle)
	}), nil
}

// Seed добавляет примеры заметок, только если хранилище пустое
func (r *repo) Seed(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notes) > 0 {
		return 0, nil
	}
	for _, sample := range sampleNotes {
		r.insert(sample.Title, sample.Content)
	}

	return len(sampleNotes), nil
}

// snapshot вызывается только под r.mu.
// Всегда возвращает не-nil слайс, чтобы пустой результат сериализовался как [].
func (r *repo) snapshot(match func(model.Note) bool) []model.Note {
	notes := make([]model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		if match(note) {
			notes = append(notes, note)
		}
	}
	slices.SortFunc(notes, func(a, b model.Note) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return notes
}
