package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"workbook-auth/app/port"
)

// Config holds payment processor client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is a thin REST client for the payment processor. It implements
// port.PaymentClient and contains no membership logic; composing the calls
// into a verdict is the adapter's job.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a payment processor client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("payment processor base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("payment processor API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type customerList struct {
	Data []port.PaymentCustomer `json:"data"`
}

type artifactList struct {
	Data []paymentArtifact `json:"data"`
}

type paymentArtifact struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount"`
	Created     int64  `json:"created"`
}

// ListCustomersByEmail implements port.PaymentClient.
func (c *Client) ListCustomersByEmail(ctx context.Context, email string) ([]port.PaymentCustomer, error) {
	var out customerList
	query := url.Values{"email": {email}}
	if err := c.get(ctx, "/v1/customers", query, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListActiveSubscriptions implements port.PaymentClient.
func (c *Client) ListActiveSubscriptions(ctx context.Context, customerID string) ([]port.PaymentArtifact, error) {
	query := url.Values{"customer": {customerID}, "status": {"active"}}
	return c.listArtifacts(ctx, "/v1/subscriptions", query)
}

// ListSucceededPayments implements port.PaymentClient.
func (c *Client) ListSucceededPayments(ctx context.Context, customerID string) ([]port.PaymentArtifact, error) {
	query := url.Values{"customer": {customerID}, "status": {"succeeded"}}
	return c.listArtifacts(ctx, "/v1/payment_intents", query)
}

// ListPaidInvoices implements port.PaymentClient.
func (c *Client) ListPaidInvoices(ctx context.Context, customerID string) ([]port.PaymentArtifact, error) {
	query := url.Values{"customer": {customerID}, "status": {"paid"}}
	return c.listArtifacts(ctx, "/v1/invoices", query)
}

func (c *Client) listArtifacts(ctx context.Context, path string, query url.Values) ([]port.PaymentArtifact, error) {
	var out artifactList
	if err := c.get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	artifacts := make([]port.PaymentArtifact, 0, len(out.Data))
	for _, a := range out.Data {
		artifacts = append(artifacts, port.PaymentArtifact{
			ID:          a.ID,
			AmountCents: a.AmountCents,
			Created:     a.Created,
		})
	}
	return artifacts, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call payment processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("payment processor returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payment processor response: %w", err)
	}
	return nil
}
