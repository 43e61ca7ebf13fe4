package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CourseStatusOpen   = "open"
	CourseStatusClosed = "closed"
)

// Course is an offered music course. Fees are stored in the smallest
// currency unit.
type Course struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=3,max=150"`
	Description     string         `gorm:"type:text;default:null" json:"description"`
	Instrument      string         `gorm:"type:varchar(100);not null" json:"instrument" validate:"required"`
	MentorID        uint           `gorm:"not null;index" json:"mentor_id" validate:"required"`
	Mentor          *Mentor        `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	MonthlyFee      int64          `gorm:"not null" json:"monthly_fee" validate:"gt=0"`
	RegistrationFee int64          `gorm:"not null" json:"registration_fee" validate:"gte=0"`
	Status          string         `gorm:"type:varchar(20);not null;default:'open'" json:"status" validate:"oneof=open closed"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Course) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsOpen reports whether the course accepts new enrollments.
func (c *Course) IsOpen() bool {
	return c.Status == CourseStatusOpen
}
