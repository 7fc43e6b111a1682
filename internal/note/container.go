package note

import "gorm.io/gorm"

type NoteContainer struct {
	Repo    NoteRepository
	Service NoteService
	Handler *Handler
}

func NewNoteContainer(db *gorm.DB) *NoteContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &NoteContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
