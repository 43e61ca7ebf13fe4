package billing

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/env"
)

const (
	defaultSnapBaseURL    = "https://app.sandbox.midtrans.com/snap/v1"
	defaultGatewayAPIBase = "https://api.sandbox.midtrans.com/v2"
)

// Gateway is the payment-gateway contract the reconciler depends on. The
// order id is always the bill id, so one lookup resolves a transaction back
// to its bill.
type Gateway interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*CreateTransactionResponse, error)
	GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error)
}

// CreateTransactionRequest describes one hosted-payment-page transaction.
type CreateTransactionRequest struct {
	OrderID      string
	GrossAmount  int64
	CustomerName string
	Email        string
	ItemName     string
	CallbackURL  string
}

// CreateTransactionResponse carries the token the client needs to open the
// hosted payment page.
type CreateTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// TransactionStatus is the gateway's view of one transaction.
type TransactionStatus struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}

// SnapClient talks to a Midtrans-style Snap gateway: transaction creation
// against the Snap base URL, status lookups against the core API.
type SnapClient struct {
	ServerKey string

	SnapBaseURL string
	APIBaseURL  string

	HTTPClient *http.Client
}

func NewSnapClientFromEnv() *SnapClient {
	return &SnapClient{
		ServerKey:   strings.TrimSpace(env.GetEnv("PAYMENT_SERVER_KEY", "")),
		SnapBaseURL: strings.TrimSpace(env.GetEnv("PAYMENT_SNAP_BASE_URL", defaultSnapBaseURL)),
		APIBaseURL:  strings.TrimSpace(env.GetEnv("PAYMENT_API_BASE_URL", defaultGatewayAPIBase)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *SnapClient) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.ServerKey+":"))
}

// CreateTransaction requests a hosted payment page for the given order.
func (c *SnapClient) CreateTransaction(ctx context.Context, in CreateTransactionRequest) (*CreateTransactionResponse, error) {
	if strings.TrimSpace(c.ServerKey) == "" {
		return nil, errors.New("PAYMENT_SERVER_KEY is not configured")
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return nil, errors.New("order id is required")
	}
	if in.GrossAmount <= 0 {
		return nil, errors.New("gross amount must be positive")
	}

	payload := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     in.OrderID,
			"gross_amount": in.GrossAmount,
		},
		"customer_details": map[string]interface{}{
			"first_name": in.CustomerName,
			"email":      in.Email,
		},
		"item_details": []map[string]interface{}{
			{
				"id":       in.OrderID,
				"name":     in.ItemName,
				"price":    in.GrossAmount,
				"quantity": 1,
			},
		},
	}
	if in.CallbackURL != "" {
		payload["callbacks"] = map[string]interface{}{"finish": in.CallbackURL}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.SnapBaseURL, "/") + "/transactions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway transaction create failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var out CreateTransactionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, errors.New("gateway returned empty transaction token")
	}
	return &out, nil
}

// GetTransactionStatus queries the gateway for the current state of an order.
func (c *SnapClient) GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error) {
	if strings.TrimSpace(c.ServerKey) == "" {
		return nil, errors.New("PAYMENT_SERVER_KEY is not configured")
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, errors.New("order id is required")
	}

	url := fmt.Sprintf("%s/%s/status", strings.TrimRight(c.APIBaseURL, "/"), orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway status lookup failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out TransactionStatus
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.TransactionStatus) == "" {
		return nil, errors.New("gateway status response missing transaction_status")
	}
	return &out, nil
}

// Transaction outcomes as seen by the reconciler.
const (
	OutcomePaid    = "paid"
	OutcomeExpired = "expired"
	OutcomePending = "pending"
)

// TransactionOutcome folds the gateway's transaction_status/fraud_status pair
// into the three states the reconciler acts on. settlement always pays;
// capture pays only when fraud screening accepted it; cancel, deny and
// expire abandon the transaction; everything else is still in flight.
func TransactionOutcome(transactionStatus, fraudStatus string) string {
	switch strings.ToLower(strings.TrimSpace(transactionStatus)) {
	case "settlement":
		return OutcomePaid
	case "capture":
		if strings.EqualFold(strings.TrimSpace(fraudStatus), "accept") {
			return OutcomePaid
		}
		return OutcomePending
	case "cancel", "deny", "expire":
		return OutcomeExpired
	default:
		return OutcomePending
	}
}
