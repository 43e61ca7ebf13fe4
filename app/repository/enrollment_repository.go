package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// enrollmentRepository implements EnrollmentRepository interface
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository instance
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create creates a new enrollment in the database
func (r *enrollmentRepository) Create(enrollment *models.Enrollment) error {
	if err := r.db.Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment by its ID
func (r *enrollmentRepository) GetByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.Preload("Course").First(&enrollment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get enrollment by ID %d: %w", id, err)
	}
	return &enrollment, nil
}

// GetByUserID retrieves all enrollments for a user
func (r *enrollmentRepository) GetByUserID(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Preload("Course").Preload("Course.Mentor").
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments for user %d: %w", userID, err)
	}
	return enrollments, nil
}

// GetByCourseID retrieves all enrollments for a course
func (r *enrollmentRepository) GetByCourseID(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Preload("User").
		Where("course_id = ?", courseID).
		Order("enrolled_at DESC").Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments for course %d: %w", courseID, err)
	}
	return enrollments, nil
}

// HasOpenEnrollment reports whether the user already has an active or
// pending enrollment in the course. Used to reject duplicate enrollments.
func (r *enrollmentRepository) HasOpenEnrollment(userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status IN ?",
			userID, courseID,
			[]string{models.EnrollmentStatusActive, models.EnrollmentStatusPendingPayment}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment for user %d course %d: %w", userID, courseID, err)
	}
	return count > 0, nil
}

// Update updates an existing enrollment
func (r *enrollmentRepository) Update(enrollment *models.Enrollment) error {
	if err := r.db.Save(enrollment).Error; err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	return nil
}

// List retrieves enrollments with pagination
func (r *enrollmentRepository) List(offset, limit int) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Preload("User").Preload("Course").
		Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
