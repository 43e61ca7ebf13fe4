package repository

import (
	"errors"
	"fmt"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// billRepository implements BillRepository interface
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// GetByID retrieves a bill by its ID
func (r *billRepository) GetByID(id string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.Preload("Course").Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bill %s not found", id)
		}
		return nil, fmt.Errorf("failed to get bill %s: %w", id, err)
	}
	return &bill, nil
}

// GetByUserID retrieves all bills for a user, newest first
func (r *billRepository) GetByUserID(userID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for user %d: %w", userID, err)
	}
	return bills, nil
}

// GetByStatus retrieves bills filtered by status with pagination
func (r *billRepository) GetByStatus(status string, offset, limit int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Preload("User").Preload("Course").
		Where("status = ?", status).
		Offset(offset).Limit(limit).
		Order("due_date ASC").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bills with status %s: %w", status, err)
	}
	return bills, nil
}

// List retrieves bills with pagination
func (r *billRepository) List(offset, limit int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Preload("User").Preload("Course").
		Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// Count returns the total number of bills
func (r *billRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count bills: %w", err)
	}
	return count, nil
}

// Create creates a new bill in the database
func (r *billRepository) Create(bill *models.Bill) error {
	if err := r.db.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}
