package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTransactionOutcome(t *testing.T) {
	tests := []struct {
		status string
		fraud  string
		want   string
	}{
		{status: "settlement", fraud: "", want: OutcomePaid},
		{status: "capture", fraud: "accept", want: OutcomePaid},
		{status: "capture", fraud: "challenge", want: OutcomePending},
		{status: "cancel", fraud: "", want: OutcomeExpired},
		{status: "deny", fraud: "", want: OutcomeExpired},
		{status: "expire", fraud: "", want: OutcomeExpired},
		{status: "pending", fraud: "", want: OutcomePending},
		{status: "authorize", fraud: "", want: OutcomePending},
		{status: "SETTLEMENT", fraud: "", want: OutcomePaid},
	}

	for _, tt := range tests {
		if got := TransactionOutcome(tt.status, tt.fraud); got != tt.want {
			t.Fatalf("TransactionOutcome(%q, %q) = %q, want %q", tt.status, tt.fraud, got, tt.want)
		}
	}
}

func TestSnapClientCreateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transactions" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); !strings.HasPrefix(auth, "Basic ") {
			t.Fatalf("expected basic auth header, got %q", auth)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		details := payload["transaction_details"].(map[string]interface{})
		if details["order_id"] != "bill-123" {
			t.Fatalf("unexpected order_id: %v", details["order_id"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token":        "snap-token-abc",
			"redirect_url": "https://gateway.example/pay/snap-token-abc",
		})
	}))
	defer srv.Close()

	client := &SnapClient{
		ServerKey:   "sk-test",
		SnapBaseURL: srv.URL,
		HTTPClient:  srv.Client(),
	}

	resp, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{
		OrderID:      "bill-123",
		GrossAmount:  350000,
		CustomerName: "Budi",
		Email:        "budi@example.com",
		ItemName:     "Iuran bulanan Maret 2024",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if resp.Token != "snap-token-abc" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestSnapClientCreateTransactionValidation(t *testing.T) {
	client := &SnapClient{ServerKey: "sk-test", HTTPClient: http.DefaultClient}

	if _, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{GrossAmount: 100}); err == nil {
		t.Fatalf("expected error for missing order id")
	}
	if _, err := client.CreateTransaction(context.Background(), CreateTransactionRequest{OrderID: "x"}); err == nil {
		t.Fatalf("expected error for non-positive amount")
	}

	unconfigured := &SnapClient{HTTPClient: http.DefaultClient}
	if _, err := unconfigured.CreateTransaction(context.Background(), CreateTransactionRequest{OrderID: "x", GrossAmount: 1}); err == nil {
		t.Fatalf("expected error for missing server key")
	}
}

func TestSnapClientGetTransactionStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bill-123/status" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"order_id":           "bill-123",
			"transaction_id":     "tx-9",
			"transaction_status": "settlement",
			"payment_type":       "bank_transfer",
		})
	}))
	defer srv.Close()

	client := &SnapClient{
		ServerKey:  "sk-test",
		APIBaseURL: srv.URL,
		HTTPClient: srv.Client(),
	}

	st, err := client.GetTransactionStatus(context.Background(), "bill-123")
	if err != nil {
		t.Fatalf("GetTransactionStatus: %v", err)
	}
	if st.TransactionStatus != "settlement" || st.PaymentType != "bank_transfer" || st.TransactionID != "tx-9" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestSnapClientGetTransactionStatusHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_code":"404"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := &SnapClient{
		ServerKey:  "sk-test",
		APIBaseURL: srv.URL,
		HTTPClient: srv.Client(),
	}

	if _, err := client.GetTransactionStatus(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}
