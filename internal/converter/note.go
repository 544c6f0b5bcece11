package converter

import (
	"notes-api/internal/model"
	notesv1 "notes-api/pkg/api/notes/v1"
)

// ModelToAPI конвертирует domain модель Note в представление API
func ModelToAPI(note model.Note) notesv1.Note {
	return notesv1.Note{
		Id:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.UTC(),
		UpdatedAt: note.UpdatedAt.UTC(),
	}
}

// ModelsToAPI конвертирует слайс domain моделей; nil превращается в пустой слайс
func ModelsToAPI(notes []model.Note) []notesv1.Note {
	apiNotes := make([]notesv1.Note, len(notes))
	for i, note := range notes {
		apiNotes[i] = ModelToAPI(note)
	}

	return apiNotes
}

// UpdateRequestToPatch конвертирует тело запроса обновления в patch
func UpdateRequestToPatch(req notesv1.UpdateNoteRequest) model.NotePatch {
	return model.NotePatch{
		Title:   req.Title,
		Content: req.Content,
	}
}
