package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/env"
	"gorm.io/gorm"
)

// Service owns the billing lifecycle: monthly bill generation, overdue
// late-fee sweeping, and payment reconciliation against the gateway.
// Generation and sweeping are batch operations with per-bill isolation;
// a failed item is counted and reported, never aborts the run, and every
// operation is idempotent so partial runs are safe to retry.
type Service struct {
	repo         Repository
	gateway      Gateway
	callbackBase string
}

// NewService creates a billing service from injected collaborators.
// callbackBase is the public base URL the gateway redirects to after payment.
func NewService(repo Repository, gateway Gateway, callbackBase string) *Service {
	return &Service{
		repo:         repo,
		gateway:      gateway,
		callbackBase: strings.TrimRight(callbackBase, "/"),
	}
}

// NewServiceFromDB creates a billing service from a GORM DB handle, with the
// gateway and callback URL configured from the environment.
func NewServiceFromDB(db *gorm.DB, gateway Gateway) *Service {
	return NewService(NewRepository(db), gateway, env.GetEnv("PUBLIC_DOMAIN", ""))
}

// GenerateMonthlyBills creates one unpaid monthly bill per active enrollment
// for the period containing now. Enrollments joined in the current month are
// skipped (their registration bill covers it), as are enrollments that
// already have a bill for the period. Re-running for the same period creates
// no duplicates.
func (s *Service) GenerateMonthlyBills(now time.Time) (*GenerateResult, error) {
	period := PeriodLabel(now)
	dueDate := PeriodDueDate(now)

	enrollments, err := s.repo.ListActiveEnrollments()
	if err != nil {
		return nil, fmt.Errorf("list active enrollments: %w", err)
	}

	result := &GenerateResult{Period: period}
	courses := make(map[uint]*models.Course)

	for _, e := range enrollments {
		if SameMonth(e.EnrolledAt, now) {
			result.Skipped++
			continue
		}

		exists, err := s.repo.MonthlyBillExists(e.UserID, e.CourseID, period)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("enrollment %d: %w", e.ID, err))
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		course, ok := courses[e.CourseID]
		if !ok {
			course, err = s.repo.GetCourse(e.CourseID)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Errorf("enrollment %d: course %d: %w", e.ID, e.CourseID, err))
				continue
			}
			courses[e.CourseID] = course
		}

		bill := models.NewMonthlyBill(e.UserID, e.CourseID, course.MonthlyFee, period, dueDate)
		if err := s.repo.CreateBill(bill); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("enrollment %d: create bill: %w", e.ID, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

// SweepOverdue applies a one-time flat late fee to unpaid bills past their
// due date and marks them overdue. A second pass repairs bills that are
// already overdue but never got a fee. Both passes are guarded by
// late_fee = 0, so a bill is charged at most once no matter how often the
// sweep runs.
func (s *Service) SweepOverdue(now time.Time, lateFee int64) (*SweepResult, error) {
	if lateFee <= 0 {
		return nil, errors.New("late fee must be positive")
	}

	result := &SweepResult{}

	candidates, err := s.repo.ListOverdueCandidates(now)
	if err != nil {
		return nil, fmt.Errorf("list overdue candidates: %w", err)
	}
	for _, bill := range candidates {
		changed, err := s.repo.ApplyLateFee(bill.ID, lateFee, true)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("bill %s: %w", bill.ID, err))
			continue
		}
		if changed {
			result.Updated++
		}
	}

	// Repair pass: overdue bills that never received a fee.
	missed, err := s.repo.ListOverdueWithoutFee()
	if err != nil {
		return result, fmt.Errorf("list overdue without fee: %w", err)
	}
	for _, bill := range missed {
		changed, err := s.repo.ApplyLateFee(bill.ID, lateFee, false)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("bill %s: %w", bill.ID, err))
			continue
		}
		if changed {
			result.Updated++
		}
	}

	return result, nil
}

// CreateTransaction opens a hosted-payment transaction for a bill. An
// existing token is returned unchanged so a bill never has two live gateway
// transactions; the bill id is used as the gateway order id.
func (s *Service) CreateTransaction(ctx context.Context, billID string) (*TransactionResult, error) {
	bill, err := s.repo.GetBill(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	if bill.IsPaid() {
		return nil, ErrBillAlreadyPaid
	}
	if bill.SnapToken != "" {
		return &TransactionResult{Token: bill.SnapToken, OrderID: bill.GatewayOrderID}, nil
	}

	user, err := s.repo.GetUser(bill.UserID)
	if err != nil {
		return nil, fmt.Errorf("load bill owner: %w", err)
	}

	callbackURL := ""
	if s.callbackBase != "" {
		callbackURL = s.callbackBase + "/bills/" + bill.ID
	}

	resp, err := s.gateway.CreateTransaction(ctx, CreateTransactionRequest{
		OrderID:      bill.ID,
		GrossAmount:  bill.Amount,
		CustomerName: user.Name,
		Email:        user.Email,
		ItemName:     billItemName(bill),
		CallbackURL:  callbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway create transaction: %w", err)
	}

	if err := s.repo.SaveTransactionRef(bill.ID, resp.Token, bill.ID); err != nil {
		return nil, err
	}

	return &TransactionResult{Token: resp.Token, OrderID: bill.ID}, nil
}

// CheckStatus reconciles a bill against the gateway. A paid bill answers
// locally without a gateway call, re-running the idempotent enrollment
// activation in case an earlier poll settled the bill but lost the
// activation write. Settlement marks the bill paid and
// activates the pending enrollments for its (user, course) pair; a terminal
// gateway failure clears the transaction so a fresh one can be created; a
// gateway outage degrades to the last known local status.
func (s *Service) CheckStatus(ctx context.Context, billID string) (*StatusResult, error) {
	bill, err := s.repo.GetBill(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	if bill.IsPaid() {
		// Re-run the activation so a crash between the paid write and the
		// enrollment write is repaired by the next poll. The update only
		// touches pending_payment rows, so settled polls are no-ops.
		if bill.CourseID != nil {
			if _, err := s.repo.ActivatePendingEnrollments(bill.UserID, *bill.CourseID); err != nil {
				return nil, err
			}
		}
		return &StatusResult{
			Status:        StatusPaid,
			PaymentMethod: bill.PaymentMethod,
			PaymentDate:   bill.PaymentDate,
		}, nil
	}

	if bill.GatewayOrderID == "" {
		return &StatusResult{Status: bill.Status}, nil
	}

	st, err := s.gateway.GetTransactionStatus(ctx, bill.GatewayOrderID)
	if err != nil {
		// The gateway is treated as unreliable: report the last known
		// local state instead of failing the poll.
		log.Printf("billing: gateway status lookup for bill %s failed: %v", bill.ID, err)
		return &StatusResult{Status: bill.Status}, nil
	}

	switch TransactionOutcome(st.TransactionStatus, st.FraudStatus) {
	case OutcomePaid:
		paidAt := time.Now()
		if _, err := s.repo.MarkPaid(bill.ID, st.PaymentType, st.TransactionID, paidAt); err != nil {
			return nil, err
		}
		if bill.CourseID != nil {
			if _, err := s.repo.ActivatePendingEnrollments(bill.UserID, *bill.CourseID); err != nil {
				return nil, err
			}
		}
		return &StatusResult{
			Status:        StatusPaid,
			PaymentMethod: st.PaymentType,
			PaymentDate:   &paidAt,
		}, nil

	case OutcomeExpired:
		if err := s.repo.ClearTransactionRef(bill.ID); err != nil {
			return nil, err
		}
		return &StatusResult{Status: StatusExpired, RawStatus: st.TransactionStatus}, nil

	default:
		return &StatusResult{Status: StatusPending, RawStatus: st.TransactionStatus}, nil
	}
}

func billItemName(bill *models.Bill) string {
	if bill.Type == models.BillTypeRegistration {
		return "Biaya pendaftaran"
	}
	return "Iuran bulanan " + bill.Month
}
