package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// courseRepository implements CourseRepository interface
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create creates a new course in the database
func (r *courseRepository) Create(course *models.Course) error {
	if err := r.db.Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by its ID, including the assigned mentor
func (r *courseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Mentor").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get course by ID %d: %w", id, err)
	}
	return &course, nil
}

// GetAll retrieves all courses
func (r *courseRepository) GetAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Preload("Mentor").Order("name ASC").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetOpen retrieves only courses that accept new enrollments
func (r *courseRepository) GetOpen() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Preload("Mentor").
		Where("status = ?", models.CourseStatusOpen).
		Order("name ASC").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open courses: %w", err)
	}
	return courses, nil
}

// Update updates an existing course
func (r *courseRepository) Update(course *models.Course) error {
	if err := r.db.Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// Delete soft-deletes a course by ID
func (r *courseRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Course{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete course %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of courses
func (r *courseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Course{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}
