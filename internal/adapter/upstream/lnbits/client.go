// Package lnbits is the read-only client for the upstream wallet API. It
// only ever issues GET requests; nothing in this package can move funds.
package lnbits

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/observability"
	"ln-sentinel/pkg/apperror"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.WalletClient against the LNbits HTTP API.
// Authentication is per request via the X-Api-Key header; the key selects
// the wallet, so one client serves every configured wallet.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	metrics    *observability.Metrics
	log        zerolog.Logger
}

// NewClient creates an upstream client. metrics may be nil.
func NewClient(baseURL string, httpClient HTTPClient, metrics *observability.Metrics, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    metrics,
		log:        log,
	}
}

// walletResponse is the /api/v1/wallet body. Balance is in milli-units.
type walletResponse struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// paymentRecord is one /api/v1/payments entry. CreatedAt is kept raw because
// upstream versions disagree on its type (string layouts or a numeric epoch).
// Extra is the open-ended metadata bag a donation link writes into.
type paymentRecord struct {
	PaymentHash string          `json:"payment_hash"`
	Amount      int64           `json:"amount"`
	Memo        string          `json:"memo"`
	Status      string          `json:"status"`
	CreatedAt   json.RawMessage `json:"created_at"`
	Time        json.RawMessage `json:"time"`
	Extra       map[string]any  `json:"extra"`
}

// payLinkRecord is one /lnurlp/api/v1/links entry.
type payLinkRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Username    string `json:"username"`
	LNURL       string `json:"lnurl"`
}

// Balance fetches the wallet balance in milli-units.
func (c *Client) Balance(ctx context.Context, apiKey string) (int64, error) {
	var body walletResponse
	if err := c.get(ctx, apiKey, "/api/v1/wallet", "wallet", &body); err != nil {
		return 0, err
	}
	return body.Balance, nil
}

// Payments fetches the wallet's payment records, pending included.
func (c *Client) Payments(ctx context.Context, apiKey string) ([]domain.Payment, error) {
	var records []paymentRecord
	if err := c.get(ctx, apiKey, "/api/v1/payments", "payments", &records); err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(records))
	for _, r := range records {
		payments = append(payments, r.toDomain())
	}
	return payments, nil
}

// PayLink resolves one donation link from the pay-link extension listing.
func (c *Client) PayLink(ctx context.Context, apiKey, linkID string) (*domain.PayLink, error) {
	var records []payLinkRecord
	if err := c.get(ctx, apiKey, "/lnurlp/api/v1/links", "pay_links", &records); err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == linkID {
			return &domain.PayLink{
				ID:          r.ID,
				Description: r.Description,
				Username:    r.Username,
				LNURL:       r.LNURL,
			}, nil
		}
	}
	return nil, apperror.ErrPayLinkNotFound(linkID)
}

// get issues one authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, apiKey, path, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return apperror.ErrUpstreamUnreachable(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("upstream request failed")
		return apperror.ErrUpstreamStatus(endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrUpstreamDecode(endpoint, err)
	}
	return nil
}

// toDomain converts one wire record, decoding donation metadata exactly once
// at this boundary. Status defaults to completed when absent, matching the
// upstream's own convention.
func (r paymentRecord) toDomain() domain.Payment {
	status := domain.PaymentStatus(r.Status)
	if r.Status == "" {
		status = domain.PaymentStatusCompleted
	}

	created := rawTimestamp(r.CreatedAt)
	if created == "" {
		created = rawTimestamp(r.Time)
	}

	return domain.Payment{
		Identifier: r.PaymentHash,
		AmountMsat: r.Amount,
		Memo:       r.Memo,
		Status:     status,
		CreatedAt:  created,
		Donation:   decodeDonation(r.Extra),
	}
}

// rawTimestamp flattens a JSON string or number into its textual form.
func rawTimestamp(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// decodeDonation extracts the donation-link marker from the metadata bag.
// The bag has no schema: the link-level amount may be numeric or a numeric
// string, and anything unparseable yields a nil amount so the caller falls
// back to the payment amount.
func decodeDonation(extra map[string]any) *domain.DonationMetadata {
	if extra == nil {
		return nil
	}
	linkID, ok := extra["link"].(string)
	if !ok || linkID == "" {
		return nil
	}

	meta := &domain.DonationMetadata{LinkID: linkID}
	if comment, ok := extra["comment"].(string); ok {
		meta.Comment = comment
	} else if parts, ok := extra["comment"].([]any); ok && len(parts) > 0 {
		if first, ok := parts[0].(string); ok {
			meta.Comment = first
		}
	}

	switch v := extra["extra"].(type) {
	case float64:
		msat := int64(v)
		meta.AmountMsat = &msat
	case string:
		var n json.Number = json.Number(v)
		if i, err := n.Int64(); err == nil {
			meta.AmountMsat = &i
		}
	}
	return meta
}
