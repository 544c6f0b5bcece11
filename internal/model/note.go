package model

import (
	"fmt"
	"time"
)

// Note представляет заметку (доменная модель)
type Note struct {
	ID        int64     // Порядковый номер заметки, начиная с 1
	Title     string    // Заголовок заметки
	Content   string    // Содержание заметки
	CreatedAt time.Time // Дата создания
	UpdatedAt time.Time // Дата последнего обновления
}

// NotePatch описывает частичное обновление заметки.
// nil означает, что поле остается без изменений.
type NotePatch struct {
	Title   *string
	Content *string
}

// Apply применяет patch к копии заметки и возвращает результат
func (p NotePatch) Apply(note Note) Note {
	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.Content != nil {
		note.Content = *p.Content
	}
	return note
}

// ValidationError возвращается, когда входные данные не прошли проверку
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError создает ошибку валидации для поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}
