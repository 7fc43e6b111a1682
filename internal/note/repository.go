package note

import (
	"errors"

	"gorm.io/gorm"
)

const pageSize = 20

type NoteRepository interface {
	Create(n *Note) error
	GetByID(id string) (*Note, error)
	ListByUser(userID string, page int, keyword string) ([]*Note, int64, error)
	Update(n *Note) error
	Delete(id string) error
	CountByUser(userID string) (int64, error)
	ListMeta(userID string) ([]*Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(n *Note) error {
	return r.db.Create(n).Error
}

func (r *noteRepository) GetByID(id string) (*Note, error) {
	var n Note
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) ListByUser(userID string, page int, keyword string) ([]*Note, int64, error) {
	if page < 1 {
		page = 1
	}

	q := r.db.Model(&Note{}).Where("user_id = ?", userID)
	if keyword != "" {
		q = q.Where("title ILIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []*Note
	if err := q.
		Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&notes).Error; err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (r *noteRepository) Update(n *Note) error {
	return r.db.Save(n).Error
}

func (r *noteRepository) Delete(id string) error {
	return r.db.Delete(&Note{}, "id = ?", id).Error
}

func (r *noteRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&Note{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

// ListMeta loads only the lightweight fields needed for activity charts,
// skipping the encrypted content column entirely.
func (r *noteRepository) ListMeta(userID string) ([]*Note, error) {
	var notes []*Note
	if err := r.db.
		Select("id", "user_id", "tags", "folder", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
