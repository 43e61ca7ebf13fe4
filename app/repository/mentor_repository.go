package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// mentorRepository implements MentorRepository interface
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository instance
func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &mentorRepository{db: db}
}

// Create creates a new mentor in the database
func (r *mentorRepository) Create(mentor *models.Mentor) error {
	if err := r.db.Create(mentor).Error; err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

// GetByID retrieves a mentor by their ID
func (r *mentorRepository) GetByID(id uint) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.First(&mentor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mentor with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get mentor by ID %d: %w", id, err)
	}
	return &mentor, nil
}

// GetAll retrieves all mentors
func (r *mentorRepository) GetAll() ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := r.db.Order("name ASC").Find(&mentors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

// Update updates an existing mentor
func (r *mentorRepository) Update(mentor *models.Mentor) error {
	if err := r.db.Save(mentor).Error; err != nil {
		return fmt.Errorf("failed to update mentor: %w", err)
	}
	return nil
}

// Delete soft-deletes a mentor by ID
func (r *mentorRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Mentor{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete mentor %d: %w", id, err)
	}
	return nil
}
