package controllers

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/billing"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/database"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/env"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	billingSvc     *billing.Service
	billingSvcOnce sync.Once
)

// billingService lazily builds the billing service against the global DB and
// the gateway configured from the environment.
func billingService() *billing.Service {
	billingSvcOnce.Do(func() {
		billingSvc = billing.NewServiceFromDB(database.GetDB(), billing.NewSnapClientFromEnv())
	})
	return billingSvc
}

// HandleListMyBills returns the logged-in student's bills, newest first.
func HandleListMyBills(c *fiber.Ctx) error {
	bills, err := repository.GetGlobalRepositories().Bill.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("list bills: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load bills")
	}
	return c.JSON(fiber.Map{"bills": bills})
}

// HandleGetMyBill returns a single bill owned by the logged-in student.
func HandleGetMyBill(c *fiber.Ctx) error {
	bill, err := repository.GetGlobalRepositories().Bill.GetByID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "bill not found")
	}
	if bill.UserID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "bill not found")
	}
	return c.JSON(bill)
}

// HandlePayBill opens (or reuses) a hosted-payment transaction for one of the
// student's bills and returns the payment token.
func HandlePayBill(c *fiber.Ctx) error {
	billID := c.Params("id")

	bill, err := repository.GetGlobalRepositories().Bill.GetByID(billID)
	if err != nil || bill.UserID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "bill not found")
	}

	result, err := billingService().CreateTransaction(c.Context(), billID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrBillNotFound):
			return jsonError(c, fiber.StatusNotFound, "bill not found")
		case errors.Is(err, billing.ErrBillAlreadyPaid):
			return jsonError(c, fiber.StatusConflict, "bill is already paid")
		default:
			log.Errorf("create transaction for bill %s: %v", billID, err)
			return jsonError(c, fiber.StatusBadGateway, "payment gateway unavailable")
		}
	}
	return c.JSON(result)
}

// HandleBillStatus reconciles a bill against the payment gateway and returns
// its current status.
func HandleBillStatus(c *fiber.Ctx) error {
	billID := c.Params("id")

	bill, err := repository.GetGlobalRepositories().Bill.GetByID(billID)
	if err != nil || bill.UserID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusNotFound, "bill not found")
	}

	result, err := billingService().CheckStatus(c.Context(), billID)
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			return jsonError(c, fiber.StatusNotFound, "bill not found")
		}
		log.Errorf("check status for bill %s: %v", billID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not check bill status")
	}
	return c.JSON(result)
}

// HandleAdminGenerateBills triggers monthly bill generation for the period
// containing now (admin only). The trigger is external; the endpoint itself
// holds no schedule.
func HandleAdminGenerateBills(c *fiber.Ctx) error {
	result, err := billingService().GenerateMonthlyBills(time.Now())
	if err != nil {
		log.Errorf("generate monthly bills: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "bill generation failed")
	}
	for _, e := range result.Errors {
		log.Warnf("generate monthly bills: %v", e)
	}
	return c.JSON(result)
}

// HandleAdminSweepOverdue applies the flat late fee to unpaid bills past due
// (admin only). The fee comes from BILLING_LATE_FEE.
func HandleAdminSweepOverdue(c *fiber.Ctx) error {
	lateFee, err := strconv.ParseInt(env.GetEnv("BILLING_LATE_FEE", "5000"), 10, 64)
	if err != nil || lateFee <= 0 {
		return jsonError(c, fiber.StatusInternalServerError, "invalid late fee configuration")
	}

	result, err := billingService().SweepOverdue(time.Now(), lateFee)
	if err != nil {
		log.Errorf("sweep overdue bills: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "overdue sweep failed")
	}
	for _, e := range result.Errors {
		log.Warnf("sweep overdue bills: %v", e)
	}
	return c.JSON(result)
}

// HandleAdminListBills returns bills with pagination and an optional status
// filter (admin only).
func HandleAdminListBills(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)
	status := c.Query("status")

	billRepo := repository.GetGlobalRepositories().Bill

	var err error
	var bills interface{}
	if status != "" {
		bills, err = billRepo.GetByStatus(status, offset, limit)
	} else {
		bills, err = billRepo.List(offset, limit)
	}
	if err != nil {
		log.Errorf("list bills: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load bills")
	}

	total, err := billRepo.Count()
	if err != nil {
		log.Errorf("count bills: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load bills")
	}

	return c.JSON(fiber.Map{"bills": bills, "total": total})
}
