package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository with the same conditional-update
// semantics as the GORM implementation.
type fakeRepo struct {
	enrollments []models.Enrollment
	courses     map[uint]*models.Course
	users       map[uint]*models.User
	bills       map[string]*models.Bill

	failCreateForUser map[uint]bool
	activateErr       error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		courses:           make(map[uint]*models.Course),
		users:             make(map[uint]*models.User),
		bills:             make(map[string]*models.Bill),
		failCreateForUser: make(map[uint]bool),
	}
}

func (r *fakeRepo) ListActiveEnrollments() ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range r.enrollments {
		if e.Status == models.EnrollmentStatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetCourse(id uint) (*models.Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetUser(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) MonthlyBillExists(userID, courseID uint, month string) (bool, error) {
	for _, b := range r.bills {
		if b.UserID == userID && b.CourseID != nil && *b.CourseID == courseID &&
			b.Type == models.BillTypeMonthly && b.Month == month {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateBill(bill *models.Bill) error {
	if r.failCreateForUser[bill.UserID] {
		return errors.New("write refused")
	}
	copied := *bill
	r.bills[bill.ID] = &copied
	return nil
}

func (r *fakeRepo) GetBill(id string) (*models.Bill, error) {
	if b, ok := r.bills[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListOverdueCandidates(now time.Time) ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range r.bills {
		if b.Status == models.BillStatusUnpaid && b.DueDate.Before(now) && b.LateFee == 0 {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOverdueWithoutFee() ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range r.bills {
		if b.Status == models.BillStatusOverdue && b.LateFee == 0 {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ApplyLateFee(billID string, fee int64, markOverdue bool) (bool, error) {
	b, ok := r.bills[billID]
	if !ok || b.LateFee != 0 {
		return false, nil
	}
	b.LateFee = fee
	b.Amount += fee
	if markOverdue {
		b.Status = models.BillStatusOverdue
	}
	return true, nil
}

func (r *fakeRepo) SaveTransactionRef(billID, token, orderID string) error {
	b, ok := r.bills[billID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.SnapToken = token
	b.GatewayOrderID = orderID
	return nil
}

func (r *fakeRepo) MarkPaid(billID, method, transactionID string, paidAt time.Time) (bool, error) {
	b, ok := r.bills[billID]
	if !ok || b.Status == models.BillStatusPaid {
		return false, nil
	}
	b.Status = models.BillStatusPaid
	b.PaymentDate = &paidAt
	b.PaymentMethod = method
	b.GatewayTransactionID = transactionID
	return true, nil
}

func (r *fakeRepo) ClearTransactionRef(billID string) error {
	b, ok := r.bills[billID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.SnapToken = ""
	b.GatewayOrderID = ""
	return nil
}

func (r *fakeRepo) ActivatePendingEnrollments(userID, courseID uint) (int64, error) {
	if r.activateErr != nil {
		err := r.activateErr
		r.activateErr = nil
		return 0, err
	}
	var n int64
	for i := range r.enrollments {
		e := &r.enrollments[i]
		if e.UserID == userID && e.CourseID == courseID && e.Status == models.EnrollmentStatusPendingPayment {
			e.Status = models.EnrollmentStatusActive
			n++
		}
	}
	return n, nil
}

type fakeGateway struct {
	createResp *CreateTransactionResponse
	createErr  error
	status     *TransactionStatus
	statusErr  error

	createCalls int
	statusCalls int
}

func (g *fakeGateway) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*CreateTransactionResponse, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResp, nil
}

func (g *fakeGateway) GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error) {
	g.statusCalls++
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	return g.status, nil
}

func newTestService(repo *fakeRepo, gw *fakeGateway) *Service {
	return NewService(repo, gw, "https://nadamusik.example")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateMonthlyBills(t *testing.T) {
	repo := newFakeRepo()
	repo.courses[1] = &models.Course{ID: 1, Name: "Piano Dasar", MonthlyFee: 350000}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.January, 15)},
	}
	svc := newTestService(repo, &fakeGateway{})

	now := date(2024, time.March, 1)
	result, err := svc.GenerateMonthlyBills(now)
	require.NoError(t, err)

	assert.Equal(t, "Maret 2024", result.Period)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, repo.bills, 1)
	for _, bill := range repo.bills {
		assert.Equal(t, models.BillTypeMonthly, bill.Type)
		assert.Equal(t, "Maret 2024", bill.Month)
		assert.Equal(t, int64(350000), bill.Amount)
		assert.Equal(t, int64(0), bill.LateFee)
		assert.Equal(t, models.BillStatusUnpaid, bill.Status)
		assert.True(t, bill.DueDate.Equal(date(2024, time.March, 10)))
	}
}

func TestGenerateMonthlyBillsIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.courses[1] = &models.Course{ID: 1, MonthlyFee: 350000}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.January, 15)},
		{ID: 2, UserID: 11, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.February, 2)},
	}
	svc := newTestService(repo, &fakeGateway{})

	now := date(2024, time.March, 1)
	first, err := svc.GenerateMonthlyBills(now)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := svc.GenerateMonthlyBills(now)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, repo.bills, 2)
}

func TestGenerateMonthlyBillsSkipsJoinMonth(t *testing.T) {
	repo := newFakeRepo()
	repo.courses[1] = &models.Course{ID: 1, MonthlyFee: 350000}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.March, 5)},
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.GenerateMonthlyBills(date(2024, time.March, 20))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, repo.bills)
}

func TestGenerateMonthlyBillsIgnoresInactiveEnrollments(t *testing.T) {
	repo := newFakeRepo()
	repo.courses[1] = &models.Course{ID: 1, MonthlyFee: 350000}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusPendingPayment, EnrolledAt: date(2024, time.January, 15)},
		{ID: 2, UserID: 11, CourseID: 1, Status: models.EnrollmentStatusInactive, EnrolledAt: date(2024, time.January, 15)},
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.GenerateMonthlyBills(date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Empty(t, repo.bills)
}

func TestGenerateMonthlyBillsIsolatesItemFailures(t *testing.T) {
	repo := newFakeRepo()
	repo.courses[1] = &models.Course{ID: 1, MonthlyFee: 350000}
	repo.failCreateForUser[10] = true
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.January, 15)},
		{ID: 2, UserID: 11, CourseID: 1, Status: models.EnrollmentStatusActive, EnrolledAt: date(2024, time.January, 15)},
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.GenerateMonthlyBills(date(2024, time.March, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)

	// The failed item is retryable: fixing the fault and re-running fills
	// the gap without duplicating the successful bill.
	repo.failCreateForUser = map[uint]bool{}
	retry, err := svc.GenerateMonthlyBills(date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, retry.Created)
	assert.Len(t, repo.bills, 2)
}

func TestSweepOverdue(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Type: models.BillTypeMonthly,
		Amount: 350000, Status: models.BillStatusUnpaid,
		DueDate: date(2024, time.March, 5),
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.SweepOverdue(date(2024, time.March, 10), 5000)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	bill := repo.bills["b1"]
	assert.Equal(t, models.BillStatusOverdue, bill.Status)
	assert.Equal(t, int64(5000), bill.LateFee)
	assert.Equal(t, int64(355000), bill.Amount)
}

func TestSweepOverdueAppliesFeeOnce(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Type: models.BillTypeMonthly,
		Amount: 350000, Status: models.BillStatusUnpaid,
		DueDate: date(2024, time.March, 5),
	}
	svc := newTestService(repo, &fakeGateway{})

	now := date(2024, time.March, 10)
	_, err := svc.SweepOverdue(now, 5000)
	require.NoError(t, err)

	second, err := svc.SweepOverdue(now, 5000)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Updated)

	bill := repo.bills["b1"]
	assert.Equal(t, int64(5000), bill.LateFee)
	assert.Equal(t, int64(355000), bill.Amount)
}

func TestSweepOverdueRepairsFeelessOverdueBills(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Type: models.BillTypeMonthly,
		Amount: 350000, Status: models.BillStatusOverdue,
		DueDate: date(2024, time.February, 10),
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.SweepOverdue(date(2024, time.March, 10), 5000)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	bill := repo.bills["b1"]
	assert.Equal(t, models.BillStatusOverdue, bill.Status)
	assert.Equal(t, int64(5000), bill.LateFee)
	assert.Equal(t, int64(355000), bill.Amount)
}

func TestSweepOverdueLeavesPaidAndFutureBillsAlone(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["paid"] = &models.Bill{
		ID: "paid", UserID: 10, Amount: 350000,
		Status: models.BillStatusPaid, DueDate: date(2024, time.March, 5),
	}
	repo.bills["future"] = &models.Bill{
		ID: "future", UserID: 10, Amount: 350000,
		Status: models.BillStatusUnpaid, DueDate: date(2024, time.March, 25),
	}
	svc := newTestService(repo, &fakeGateway{})

	result, err := svc.SweepOverdue(date(2024, time.March, 10), 5000)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, models.BillStatusPaid, repo.bills["paid"].Status)
	assert.Equal(t, models.BillStatusUnpaid, repo.bills["future"].Status)
}

func TestSweepOverdueRejectsNonPositiveFee(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeGateway{})
	_, err := svc.SweepOverdue(date(2024, time.March, 10), 0)
	require.Error(t, err)
}

func TestCreateTransaction(t *testing.T) {
	repo := newFakeRepo()
	cid := uint(1)
	repo.users[10] = &models.User{ID: 10, Name: "Budi", Email: "budi@example.com"}
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, CourseID: &cid, Type: models.BillTypeMonthly,
		Amount: 350000, Month: "Maret 2024", Status: models.BillStatusUnpaid,
	}
	gw := &fakeGateway{createResp: &CreateTransactionResponse{Token: "tok-1"}}
	svc := newTestService(repo, gw)

	result, err := svc.CreateTransaction(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, "b1", result.OrderID)

	bill := repo.bills["b1"]
	assert.Equal(t, "tok-1", bill.SnapToken)
	assert.Equal(t, "b1", bill.GatewayOrderID)
}

func TestCreateTransactionReusesExistingToken(t *testing.T) {
	repo := newFakeRepo()
	repo.users[10] = &models.User{ID: 10, Name: "Budi", Email: "budi@example.com"}
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusUnpaid,
		Amount: 350000, SnapToken: "tok-existing", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{createResp: &CreateTransactionResponse{Token: "tok-new"}}
	svc := newTestService(repo, gw)

	result, err := svc.CreateTransaction(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "tok-existing", result.Token)
	assert.Equal(t, 0, gw.createCalls)
}

func TestCreateTransactionErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["paid"] = &models.Bill{ID: "paid", UserID: 10, Status: models.BillStatusPaid}
	svc := newTestService(repo, &fakeGateway{})

	_, err := svc.CreateTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)

	_, err = svc.CreateTransaction(context.Background(), "paid")
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
}

func TestCreateTransactionGatewayFailureLeavesBillUntouched(t *testing.T) {
	repo := newFakeRepo()
	repo.users[10] = &models.User{ID: 10, Name: "Budi", Email: "budi@example.com"}
	repo.bills["b1"] = &models.Bill{ID: "b1", UserID: 10, Status: models.BillStatusUnpaid, Amount: 350000}
	gw := &fakeGateway{createErr: errors.New("gateway unreachable")}
	svc := newTestService(repo, gw)

	_, err := svc.CreateTransaction(context.Background(), "b1")
	require.Error(t, err)
	assert.Empty(t, repo.bills["b1"].SnapToken)
}

func TestCheckStatusSettlementMarksPaidAndActivatesEnrollment(t *testing.T) {
	repo := newFakeRepo()
	cid := uint(1)
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, CourseID: &cid, Status: models.BillStatusUnpaid,
		Amount: 350000, SnapToken: "tok", GatewayOrderID: "b1",
	}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusPendingPayment},
		{ID: 2, UserID: 10, CourseID: 2, Status: models.EnrollmentStatusPendingPayment},
		{ID: 3, UserID: 11, CourseID: 1, Status: models.EnrollmentStatusActive},
	}
	gw := &fakeGateway{status: &TransactionStatus{
		OrderID: "b1", TransactionID: "tx-9",
		TransactionStatus: "settlement", PaymentType: "gopay",
	}}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, result.Status)
	assert.Equal(t, "gopay", result.PaymentMethod)
	require.NotNil(t, result.PaymentDate)

	bill := repo.bills["b1"]
	assert.Equal(t, models.BillStatusPaid, bill.Status)
	assert.Equal(t, "gopay", bill.PaymentMethod)
	assert.Equal(t, "tx-9", bill.GatewayTransactionID)

	// Only the pending enrollment for this (user, course) pair flips.
	assert.Equal(t, models.EnrollmentStatusActive, repo.enrollments[0].Status)
	assert.Equal(t, models.EnrollmentStatusPendingPayment, repo.enrollments[1].Status)
	assert.Equal(t, models.EnrollmentStatusActive, repo.enrollments[2].Status)
}

func TestCheckStatusRetriesActivationAfterPaidWrite(t *testing.T) {
	repo := newFakeRepo()
	cid := uint(1)
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, CourseID: &cid, Status: models.BillStatusUnpaid,
		Amount: 350000, SnapToken: "tok", GatewayOrderID: "b1",
	}
	repo.enrollments = []models.Enrollment{
		{ID: 1, UserID: 10, CourseID: 1, Status: models.EnrollmentStatusPendingPayment},
	}
	repo.activateErr = errors.New("store unavailable")
	gw := &fakeGateway{status: &TransactionStatus{
		OrderID: "b1", TransactionID: "tx-9",
		TransactionStatus: "settlement", PaymentType: "gopay",
	}}
	svc := newTestService(repo, gw)

	// First poll settles the bill but loses the enrollment write.
	_, err := svc.CheckStatus(context.Background(), "b1")
	require.Error(t, err)
	assert.Equal(t, models.BillStatusPaid, repo.bills["b1"].Status)
	assert.Equal(t, models.EnrollmentStatusPendingPayment, repo.enrollments[0].Status)

	// Once the store recovers the next poll repairs the enrollment without
	// another gateway call.
	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, result.Status)
	assert.Equal(t, models.EnrollmentStatusActive, repo.enrollments[0].Status)
	assert.Equal(t, 1, gw.statusCalls)
}

func TestCheckStatusCaptureWithFraudAcceptIsPaid(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusUnpaid,
		SnapToken: "tok", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{status: &TransactionStatus{
		TransactionStatus: "capture", FraudStatus: "accept", PaymentType: "credit_card",
	}}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, result.Status)
	assert.Equal(t, "credit_card", result.PaymentMethod)
}

func TestCheckStatusPaidBillSkipsGateway(t *testing.T) {
	repo := newFakeRepo()
	paidAt := date(2024, time.March, 8)
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusPaid,
		PaymentMethod: "gopay", PaymentDate: &paidAt,
		SnapToken: "tok", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{status: &TransactionStatus{TransactionStatus: "expire"}}
	svc := newTestService(repo, gw)

	for i := 0; i < 3; i++ {
		result, err := svc.CheckStatus(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, result.Status)
		assert.Equal(t, "gopay", result.PaymentMethod)
	}
	assert.Equal(t, 0, gw.statusCalls)
}

func TestCheckStatusExpireClearsTransactionOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusOverdue,
		Amount: 355000, LateFee: 5000, SnapToken: "tok", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{status: &TransactionStatus{TransactionStatus: "expire"}}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, result.Status)

	bill := repo.bills["b1"]
	assert.Empty(t, bill.SnapToken)
	assert.Empty(t, bill.GatewayOrderID)
	// Status stays where the sweeper left it; the bill is payable again.
	assert.Equal(t, models.BillStatusOverdue, bill.Status)

	// A fresh transaction can now be created.
	repo.users[10] = &models.User{ID: 10, Name: "Budi", Email: "budi@example.com"}
	gw.createResp = &CreateTransactionResponse{Token: "tok-2"}
	tr, err := svc.CreateTransaction(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tr.Token)
}

func TestCheckStatusPendingReturnsRawStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusUnpaid,
		SnapToken: "tok", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{status: &TransactionStatus{TransactionStatus: "bank_transfer_pending"}}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, result.Status)
	assert.Equal(t, "bank_transfer_pending", result.RawStatus)
	assert.Equal(t, models.BillStatusUnpaid, repo.bills["b1"].Status)
}

func TestCheckStatusGatewayErrorFallsBackToLocalStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{
		ID: "b1", UserID: 10, Status: models.BillStatusOverdue,
		SnapToken: "tok", GatewayOrderID: "b1",
	}
	gw := &fakeGateway{statusErr: errors.New("timeout")}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusOverdue, result.Status)
}

func TestCheckStatusWithoutTransactionReturnsLocalStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.bills["b1"] = &models.Bill{ID: "b1", UserID: 10, Status: models.BillStatusUnpaid}
	gw := &fakeGateway{}
	svc := newTestService(repo, gw)

	result, err := svc.CheckStatus(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusUnpaid, result.Status)
	assert.Equal(t, 0, gw.statusCalls)
}

func TestCheckStatusNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeGateway{})
	_, err := svc.CheckStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBillNotFound)
}
