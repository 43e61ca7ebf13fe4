package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// scheduleRepository implements ScheduleRepository interface
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository instance
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Create creates a new lesson slot in the database
func (r *scheduleRepository) Create(schedule *models.Schedule) error {
	if err := r.db.Create(schedule).Error; err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// GetByID retrieves a lesson slot by its ID
func (r *scheduleRepository) GetByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Preload("Course").Preload("Mentor").First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get schedule by ID %d: %w", id, err)
	}
	return &schedule, nil
}

// GetByUserID retrieves the weekly lesson slots for a student
func (r *scheduleRepository) GetByUserID(userID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Course").Preload("Mentor").
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for user %d: %w", userID, err)
	}
	return schedules, nil
}

// GetByCourseID retrieves all lesson slots for a course
func (r *scheduleRepository) GetByCourseID(courseID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("User").Preload("Mentor").
		Where("course_id = ?", courseID).
		Order("day_of_week ASC, start_time ASC").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for course %d: %w", courseID, err)
	}
	return schedules, nil
}

// GetByMentorID retrieves all lesson slots taught by a mentor
func (r *scheduleRepository) GetByMentorID(mentorID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("User").Preload("Course").
		Where("mentor_id = ?", mentorID).
		Order("day_of_week ASC, start_time ASC").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for mentor %d: %w", mentorID, err)
	}
	return schedules, nil
}

// Update updates an existing lesson slot
func (r *scheduleRepository) Update(schedule *models.Schedule) error {
	if err := r.db.Save(schedule).Error; err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return nil
}

// Delete removes a lesson slot by ID
func (r *scheduleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Schedule{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete schedule %d: %w", id, err)
	}
	return nil
}
