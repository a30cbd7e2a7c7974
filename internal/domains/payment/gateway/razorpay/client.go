package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/payment/gateway"
)

var decimalHundred = decimal.NewFromInt(100)

// =====================================================
// RAZORPAY CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Razorpay client
func NewClient(config *Config) (gateway.Gateway, error) {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// CreateIntent creates a gateway-side order and returns its handle.
func (c *Client) CreateIntent(ctx context.Context, req gateway.IntentRequest) (*gateway.Intent, error) {
	// Razorpay wants the amount in the smallest currency unit.
	amountMinor := req.Amount.Mul(decimalHundred).IntPart()

	requestBody := map[string]interface{}{
		"amount":   amountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    req.Notes,
	}

	bodyJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.OrdersEndpoint(), bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Razorpay API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		}
		_ = json.Unmarshal(bodyBytes, &apiErr)
		return nil, fmt.Errorf("Razorpay API error (%d): %s", resp.StatusCode, apiErr.Error.Description)
	}

	var respData struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(bodyBytes, &respData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if respData.ID == "" {
		return nil, fmt.Errorf("order id not found in response")
	}

	return &gateway.Intent{
		ID:       respData.ID,
		Amount:   req.Amount,
		Currency: respData.Currency,
	}, nil
}

// VerifySignature verifies a Razorpay checkout/webhook signature.
func (c *Client) VerifySignature(intentID, paymentID, signature string) bool {
	return VerifySignature(intentID, paymentID, signature, c.config.KeySecret)
}

// KeyID exposes the public key for client-side checkout initialization.
func (c *Client) KeyID() string {
	return c.config.KeyID
}
