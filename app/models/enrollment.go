package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentStatusPendingPayment = "pending_payment"
	EnrollmentStatusActive         = "active"
	EnrollmentStatusInactive       = "inactive"
)

// Enrollment links a student to a course. It starts as pending_payment and
// becomes active once the registration bill settles; only the billing
// reconciler flips that status.
type Enrollment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index:idx_enrollments_user_course,priority:1" json:"user_id"`
	User       *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID   uint           `gorm:"not null;index:idx_enrollments_user_course,priority:2" json:"course_id"`
	Course     *Course        `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Status     string         `gorm:"type:varchar(30);not null;default:'pending_payment';index" json:"status"`
	EnrolledAt time.Time      `gorm:"not null" json:"enrolled_at"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsActive reports whether the enrollment is billable.
func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentStatusActive
}
