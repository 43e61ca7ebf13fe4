package models

import (
	"time"

	"gorm.io/gorm"
)

// PracticeVideo is a recorded practice lesson stored in object storage.
// Playback goes through short-lived presigned URLs, never a public bucket.
type PracticeVideo struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CourseID    uint           `gorm:"not null;index" json:"course_id"`
	Course      *Course        `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title" validate:"required,max=200"`
	Description string         `gorm:"type:text;default:null" json:"description"`
	ObjectKey   string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	DurationSec int            `gorm:"default:0" json:"duration_sec"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
