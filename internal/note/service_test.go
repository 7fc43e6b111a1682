package note

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	notes map[string]*Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*Note)}
}

func (f *fakeNoteRepo) Create(n *Note) error {
	clone := *n
	f.notes[n.ID.String()] = &clone
	return nil
}

func (f *fakeNoteRepo) GetByID(id string) (*Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, nil
	}
	clone := *n
	return &clone, nil
}

func (f *fakeNoteRepo) ListByUser(userID string, page int, keyword string) ([]*Note, int64, error) {
	var out []*Note
	for _, n := range f.notes {
		if n.UserID.String() != userID {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(n.Title), strings.ToLower(keyword)) {
			continue
		}
		clone := *n
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakeNoteRepo) Update(n *Note) error {
	clone := *n
	f.notes[n.ID.String()] = &clone
	return nil
}

func (f *fakeNoteRepo) Delete(id string) error {
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) ListMeta(userID string) ([]*Note, error) {
	var out []*Note
	for _, n := range f.notes {
		if n.UserID.String() == userID {
			clone := *n
			clone.Content = ""
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) CountByUser(userID string) (int64, error) {
	var total int64
	for _, n := range f.notes {
		if n.UserID.String() == userID {
			total++
		}
	}
	return total, nil
}

func TestNoteService_CreateAndGet(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewService(repo)
	userID := uuid.NewString()

	created, err := svc.CreateNote(context.Background(), userID, &Note{
		Title:   "Cell biology",
		Content: "Mitochondria produce ATP.",
	})
	require.NoError(t, err)
	assert.Equal(t, "General", created.Folder)
	assert.Equal(t, "Mitochondria produce ATP.", created.Content)

	got, err := svc.GetNote(context.Background(), userID, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Cell biology", got.Title)
}

func TestNoteService_RejectsEmptyTitle(t *testing.T) {
	svc := NewService(newFakeNoteRepo())

	_, err := svc.CreateNote(context.Background(), uuid.NewString(), &Note{Content: "body"})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestNoteService_OwnershipEnforced(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewService(repo)
	owner := uuid.NewString()
	intruder := uuid.NewString()

	created, err := svc.CreateNote(context.Background(), owner, &Note{Title: "Private"})
	require.NoError(t, err)

	_, err = svc.GetNote(context.Background(), intruder, created.ID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteNote(context.Background(), intruder, created.ID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetNote(context.Background(), owner, uuid.NewString())
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_UpdateKeepsUnsetFields(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewService(repo)
	userID := uuid.NewString()

	created, err := svc.CreateNote(context.Background(), userID, &Note{
		Title:   "Original",
		Content: "first draft",
		Folder:  "School",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(context.Background(), userID, created.ID.String(), &Note{
		Content:    "second draft",
		IsFavorite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "School", updated.Folder)
	assert.Equal(t, "second draft", updated.Content)
	assert.True(t, updated.IsFavorite)
}
