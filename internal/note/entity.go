package note

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Note struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string         `gorm:"type:text;not null" json:"title"`
	Content    string         `gorm:"type:text" json:"content"`
	Tags       datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Folder     string         `gorm:"type:text;not null;default:'General'" json:"folder"`
	IsFavorite bool           `gorm:"not null;default:false" json:"is_favorite"`
	AIData     datatypes.JSON `gorm:"type:jsonb" json:"ai_data,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
