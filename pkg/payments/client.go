// Package payments wraps the external payment gateway used by the deferred
// checkout path. The flow is initiate (get a redirect URL), then verify
// (server-to-server status lookup); the callback redirect itself is never
// trusted.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Gateway status values returned by the verify lookup. Anything other than
// StatusCompleted or StatusPending is terminal.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusExpired   = "Expired"
	StatusCanceled  = "User canceled"
	StatusRefunded  = "Refunded"
)

// InitiateRequest is what we send the gateway when starting a payment.
// Amount is cents.
type InitiateRequest struct {
	PurchaseOrderId   string `json:"purchase_order_id"`
	PurchaseOrderName string `json:"purchase_order_name"`
	Amount            int64  `json:"amount"`
	ReturnUrl         string `json:"return_url"`
	WebsiteUrl        string `json:"website_url"`
}

// InitiateResponse carries the gateway transaction reference and the URL the
// buyer is redirected to.
type InitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentUrl string `json:"payment_url"`
}

// VerifyResponse is the gateway's answer to a status lookup.
type VerifyResponse struct {
	Pidx        string `json:"pidx"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
}

// Client defines the gateway operations the storefront depends on.
type Client interface {
	// Initiate registers a payment with the gateway and returns the
	// transaction reference plus the redirect URL.
	Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error)

	// Verify looks up the authoritative status of a payment by its pidx.
	Verify(ctx context.Context, pidx string) (*VerifyResponse, error)
}

// HTTPClient is the production Client backed by the gateway's REST API.
type HTTPClient struct {
	BaseURL    string
	SecretKey  string
	HttpClient *http.Client
}

// NewHTTPClient creates a gateway client with a sane request timeout.
func NewHTTPClient(baseURL, secretKey string) *HTTPClient {
	return &HTTPClient{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Make sure we conform to the interface
var _ Client = (*HTTPClient)(nil)

// Initiate registers the payment and returns the redirect URL.
func (c *HTTPClient) Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error) {
	var resp InitiateResponse
	if err := c.post(ctx, "/api/payment/initiate/", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}
	if resp.Pidx == "" || resp.PaymentUrl == "" {
		return nil, fmt.Errorf("gateway returned an incomplete initiate response")
	}
	return &resp, nil
}

// Verify looks up the payment status by pidx.
func (c *HTTPClient) Verify(ctx context.Context, pidx string) (*VerifyResponse, error) {
	body := map[string]string{"pidx": pidx}
	var resp VerifyResponse
	if err := c.post(ctx, "/api/payment/verify/", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.SecretKey)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
