package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BillTypeRegistration = "registration"
	BillTypeMonthly      = "monthly"
)

const (
	BillStatusUnpaid  = "unpaid"
	BillStatusOverdue = "overdue"
	BillStatusPaid    = "paid"
)

// Bill is money owed by a student, either a one-time registration fee or a
// monthly course fee. The primary key doubles as the gateway order id so a
// gateway transaction can always be traced back to its bill.
//
// Monthly bills are unique per (user, course, month); the composite unique
// index backs the generator's existence check. Amounts are in the smallest
// currency unit.
type Bill struct {
	ID                   string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID               uint       `gorm:"not null;index:ux_bills_user_course_type_month,unique,priority:1" json:"user_id"`
	User                 *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID             *uint      `gorm:"index:ux_bills_user_course_type_month,unique,priority:2" json:"course_id,omitempty"`
	Course               *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Type                 string     `gorm:"type:varchar(20);not null;index:ux_bills_user_course_type_month,unique,priority:3" json:"type"`
	Amount               int64      `gorm:"not null" json:"amount"`
	LateFee              int64      `gorm:"not null;default:0" json:"late_fee"`
	Month                string     `gorm:"type:varchar(30);not null;index:ux_bills_user_course_type_month,unique,priority:4" json:"month"`
	DueDate              time.Time  `gorm:"not null;index:idx_bills_status_due,priority:2" json:"due_date"`
	Status               string     `gorm:"type:varchar(20);not null;default:'unpaid';index:idx_bills_status_due,priority:1" json:"status"`
	PaymentDate          *time.Time `gorm:"type:timestamp;default:null" json:"payment_date,omitempty"`
	PaymentMethod        string     `gorm:"type:varchar(50);default:null" json:"payment_method,omitempty"`
	SnapToken            string     `gorm:"type:varchar(100);default:null" json:"-"`
	GatewayOrderID       string     `gorm:"type:varchar(50);default:null;index" json:"-"`
	GatewayTransactionID string     `gorm:"type:varchar(50);default:null" json:"-"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewMonthlyBill builds an unpaid monthly bill for one enrollment and period.
func NewMonthlyBill(userID, courseID uint, amount int64, month string, dueDate time.Time) *Bill {
	cid := courseID
	return &Bill{
		ID:       uuid.NewString(),
		UserID:   userID,
		CourseID: &cid,
		Type:     BillTypeMonthly,
		Amount:   amount,
		Month:    month,
		DueDate:  dueDate,
		Status:   BillStatusUnpaid,
	}
}

// NewRegistrationBill builds the one-time bill created alongside an enrollment.
func NewRegistrationBill(userID, courseID uint, amount int64, month string, dueDate time.Time) *Bill {
	cid := courseID
	return &Bill{
		ID:       uuid.NewString(),
		UserID:   userID,
		CourseID: &cid,
		Type:     BillTypeRegistration,
		Amount:   amount,
		Month:    month,
		DueDate:  dueDate,
		Status:   BillStatusUnpaid,
	}
}

// IsPaid reports whether the bill reached its terminal state.
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// HasOpenTransaction reports whether a gateway transaction is attached and
// still usable for payment.
func (b *Bill) HasOpenTransaction() bool {
	return b.SnapToken != "" && !b.IsPaid()
}
