package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is a weekly lesson slot assigning a student and mentor to a
// course at a fixed weekday and time.
type Schedule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CourseID  uint           `gorm:"not null;index" json:"course_id"`
	Course    *Course        `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	MentorID  uint           `gorm:"not null;index" json:"mentor_id"`
	Mentor    *Mentor        `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DayOfWeek int            `gorm:"not null" json:"day_of_week" validate:"min=0,max=6"`
	StartTime string         `gorm:"type:varchar(5);not null" json:"start_time"` // "15:00"
	EndTime   string         `gorm:"type:varchar(5);not null" json:"end_time"`   // "16:00"
	Room      string         `gorm:"type:varchar(50);default:null" json:"room"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
