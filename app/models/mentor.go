package models

import (
	"time"

	"gorm.io/gorm"
)

// Mentor is an instructor teaching one or more courses.
type Mentor struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=3,max=150"`
	Email      string         `gorm:"type:varchar(200);uniqueIndex" json:"email" validate:"required,email"`
	Phone      string         `gorm:"type:varchar(30);default:null" json:"phone"`
	Instrument string         `gorm:"type:varchar(100);not null" json:"instrument" validate:"required"`
	Bio        string         `gorm:"type:text;default:null" json:"bio"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
