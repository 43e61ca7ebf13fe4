package billing

import (
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the billing service. The
// conditional updates (ApplyLateFee, MarkPaid) return whether a row changed
// so callers can tell an applied transition from an already-applied one.
type Repository interface {
	ListActiveEnrollments() ([]models.Enrollment, error)
	GetCourse(id uint) (*models.Course, error)
	GetUser(id uint) (*models.User, error)

	MonthlyBillExists(userID, courseID uint, month string) (bool, error)
	CreateBill(bill *models.Bill) error
	GetBill(id string) (*models.Bill, error)

	ListOverdueCandidates(now time.Time) ([]models.Bill, error)
	ListOverdueWithoutFee() ([]models.Bill, error)
	ApplyLateFee(billID string, fee int64, markOverdue bool) (bool, error)

	SaveTransactionRef(billID, token, orderID string) error
	MarkPaid(billID, method, transactionID string, paidAt time.Time) (bool, error)
	ClearTransactionRef(billID string) error

	ActivatePendingEnrollments(userID, courseID uint) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListActiveEnrollments() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("status = ?", models.EnrollmentStatusActive).Find(&enrollments).Error
	return enrollments, err
}

func (r *gormRepository) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *gormRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) MonthlyBillExists(userID, courseID uint, month string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).
		Where("user_id = ? AND course_id = ? AND type = ? AND month = ?",
			userID, courseID, models.BillTypeMonthly, month).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

func (r *gormRepository) GetBill(id string) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.Where("id = ?", id).First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *gormRepository) ListOverdueCandidates(now time.Time) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("status = ? AND due_date < ? AND late_fee = 0", models.BillStatusUnpaid, now).
		Find(&bills).Error
	return bills, err
}

func (r *gormRepository) ListOverdueWithoutFee() ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("status = ? AND late_fee = 0", models.BillStatusOverdue).
		Find(&bills).Error
	return bills, err
}

// ApplyLateFee charges the flat fee and optionally flips the status to
// overdue in a single UPDATE. The late_fee = 0 guard makes re-runs no-ops,
// so status and fee can never diverge.
func (r *gormRepository) ApplyLateFee(billID string, fee int64, markOverdue bool) (bool, error) {
	updates := map[string]interface{}{
		"late_fee": fee,
		"amount":   gorm.Expr("amount + ?", fee),
	}
	if markOverdue {
		updates["status"] = models.BillStatusOverdue
	}
	tx := r.db.Model(&models.Bill{}).
		Where("id = ? AND late_fee = 0", billID).
		Updates(updates)
	return tx.RowsAffected > 0, tx.Error
}

func (r *gormRepository) SaveTransactionRef(billID, token, orderID string) error {
	return r.db.Model(&models.Bill{}).
		Where("id = ?", billID).
		Updates(map[string]interface{}{
			"snap_token":       token,
			"gateway_order_id": orderID,
		}).Error
}

// MarkPaid records the settlement. The status guard keeps paid terminal and
// makes racing status polls converge on one write.
func (r *gormRepository) MarkPaid(billID, method, transactionID string, paidAt time.Time) (bool, error) {
	tx := r.db.Model(&models.Bill{}).
		Where("id = ? AND status <> ?", billID, models.BillStatusPaid).
		Updates(map[string]interface{}{
			"status":                 models.BillStatusPaid,
			"payment_date":           paidAt,
			"payment_method":         method,
			"gateway_transaction_id": transactionID,
		})
	return tx.RowsAffected > 0, tx.Error
}

// ClearTransactionRef detaches an abandoned gateway transaction so a new one
// can be created. The bill status itself is untouched.
func (r *gormRepository) ClearTransactionRef(billID string) error {
	return r.db.Model(&models.Bill{}).
		Where("id = ?", billID).
		Updates(map[string]interface{}{
			"snap_token":       "",
			"gateway_order_id": "",
		}).Error
}

// ActivatePendingEnrollments flips exactly the pending_payment enrollments
// for the pair to active; already-active rows are left alone.
func (r *gormRepository) ActivatePendingEnrollments(userID, courseID uint) (int64, error) {
	tx := r.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?",
			userID, courseID, models.EnrollmentStatusPendingPayment).
		Update("status", models.EnrollmentStatusActive)
	return tx.RowsAffected, tx.Error
}
