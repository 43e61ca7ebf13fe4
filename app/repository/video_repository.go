package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// videoRepository implements PracticeVideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewPracticeVideoRepository creates a new practice-video repository instance
func NewPracticeVideoRepository(db *gorm.DB) PracticeVideoRepository {
	return &videoRepository{db: db}
}

// Create stores metadata for an uploaded practice video
func (r *videoRepository) Create(video *models.PracticeVideo) error {
	if err := r.db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create practice video: %w", err)
	}
	return nil
}

// GetByID retrieves a practice video by its ID
func (r *videoRepository) GetByID(id uint) (*models.PracticeVideo, error) {
	var video models.PracticeVideo
	err := r.db.First(&video, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("practice video with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get practice video by ID %d: %w", id, err)
	}
	return &video, nil
}

// GetByCourseID retrieves all practice videos for a course, newest first
func (r *videoRepository) GetByCourseID(courseID uint) ([]models.PracticeVideo, error) {
	var videos []models.PracticeVideo
	err := r.db.Where("course_id = ?", courseID).
		Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list practice videos for course %d: %w", courseID, err)
	}
	return videos, nil
}

// Update updates practice-video metadata
func (r *videoRepository) Update(video *models.PracticeVideo) error {
	if err := r.db.Save(video).Error; err != nil {
		return fmt.Errorf("failed to update practice video: %w", err)
	}
	return nil
}

// Delete removes practice-video metadata by ID
func (r *videoRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.PracticeVideo{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete practice video %d: %w", id, err)
	}
	return nil
}
