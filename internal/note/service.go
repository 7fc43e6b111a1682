package note

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quillnote/quillnote-api/internal/config"
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrForbidden     = errors.New("note belongs to another user")
	ErrTitleRequired = errors.New("title is required")
)

type ListResult struct {
	Notes []*Note `json:"notes"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
}

type NoteService interface {
	CreateNote(ctx context.Context, userID string, n *Note) (*Note, error)
	GetNote(ctx context.Context, userID, noteID string) (*Note, error)
	ListNotes(ctx context.Context, userID string, page int, keyword string) (*ListResult, error)
	UpdateNote(ctx context.Context, userID, noteID string, update *Note) (*Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	SetAIData(ctx context.Context, userID, noteID string, data []byte) error
}

type noteService struct {
	repo NoteRepository
}

func NewService(repo NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) CreateNote(ctx context.Context, userID string, n *Note) (*Note, error) {
	log := config.WithContext(ctx)

	if n.Title == "" {
		return nil, ErrTitleRequired
	}

	n.ID = uuid.New()
	n.UserID = uuid.MustParse(userID)
	if n.Folder == "" {
		n.Folder = "General"
	}

	encrypted, err := config.Encrypt(n.Content)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt note content")
		return nil, err
	}
	n.Content = encrypted

	if err := s.repo.Create(n); err != nil {
		log.WithError(err).Error("Failed to create note")
		return nil, err
	}

	log.WithField("note_id", n.ID.String()).Info("Note created")
	return s.withPlainContent(n)
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID string) (*Note, error) {
	n, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	return s.withPlainContent(n)
}

func (s *noteService) ListNotes(ctx context.Context, userID string, page int, keyword string) (*ListResult, error) {
	log := config.WithContext(ctx)

	if page < 1 {
		page = 1
	}

	notes, total, err := s.repo.ListByUser(userID, page, keyword)
	if err != nil {
		log.WithError(err).Error("Failed to list notes")
		return nil, err
	}

	for _, n := range notes {
		if _, err := s.withPlainContent(n); err != nil {
			return nil, err
		}
	}

	return &ListResult{Notes: notes, Total: total, Page: page}, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID string, update *Note) (*Note, error) {
	log := config.WithContext(ctx)

	n, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if update.Title != "" {
		n.Title = update.Title
	}
	if update.Content != "" {
		encrypted, err := config.Encrypt(update.Content)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt note content")
			return nil, err
		}
		n.Content = encrypted
	}
	if update.Folder != "" {
		n.Folder = update.Folder
	}
	if update.Tags != nil {
		n.Tags = update.Tags
	}
	n.IsFavorite = update.IsFavorite

	if err := s.repo.Update(n); err != nil {
		log.WithError(err).Error("Failed to update note")
		return nil, err
	}

	return s.withPlainContent(n)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := config.WithContext(ctx)

	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return err
	}

	if err := s.repo.Delete(noteID); err != nil {
		log.WithError(err).Error("Failed to delete note")
		return err
	}

	log.WithField("note_id", noteID).Info("Note deleted")
	return nil
}

func (s *noteService) SetAIData(ctx context.Context, userID, noteID string, data []byte) error {
	n, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return err
	}
	n.AIData = data
	return s.repo.Update(n)
}

// ownedNote loads the note and enforces that it belongs to userID.
func (s *noteService) ownedNote(ctx context.Context, userID, noteID string) (*Note, error) {
	log := config.WithContext(ctx)

	n, err := s.repo.GetByID(noteID)
	if err != nil {
		log.WithError(err).Error("Failed to load note")
		return nil, err
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}
	if n.UserID.String() != userID {
		log.WithField("note_id", noteID).Warn("Note access denied")
		return nil, ErrForbidden
	}
	return n, nil
}

func (s *noteService) withPlainContent(n *Note) (*Note, error) {
	plain, err := config.Decrypt(n.Content)
	if err != nil {
		return nil, err
	}
	n.Content = plain
	return n, nil
}
