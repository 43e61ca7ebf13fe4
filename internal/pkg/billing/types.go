package billing

import (
	"errors"
	"time"
)

// Sentinel errors for the reconciler operations. Controllers map these to
// HTTP statuses; everything else is treated as an internal failure.
var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill is already paid")
)

// Reconciler result statuses. unpaid/overdue/paid mirror the bill row,
// pending and expired describe the gateway transaction.
const (
	StatusUnpaid  = "unpaid"
	StatusOverdue = "overdue"
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusExpired = "expired"
)

// GenerateResult summarizes one monthly generation run. Failed items carry
// their errors in Errors; a partial run is safe to retry because generation
// is idempotent per (user, course, month).
type GenerateResult struct {
	Period  string  `json:"period"`
	Created int     `json:"created"`
	Skipped int     `json:"skipped"`
	Failed  int     `json:"failed"`
	Errors  []error `json:"-"`
}

// SweepResult summarizes one overdue sweep. Each bill is processed
// independently; failures never abort the sweep.
type SweepResult struct {
	Updated int     `json:"updated"`
	Failed  int     `json:"failed"`
	Errors  []error `json:"-"`
}

// TransactionResult is returned when a hosted-payment transaction exists for
// a bill, freshly created or reused.
type TransactionResult struct {
	Token   string `json:"token"`
	OrderID string `json:"order_id"`
}

// StatusResult is the reconciler's answer to a status poll. RawStatus holds
// the gateway's transaction_status verbatim when the outcome is pending.
type StatusResult struct {
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	RawStatus     string     `json:"transaction_status,omitempty"`
}
