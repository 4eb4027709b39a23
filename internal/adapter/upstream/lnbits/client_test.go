package lnbits

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/pkg/apperror"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, http.DefaultClient, nil, zerolog.Nop())
}

func TestBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/wallet", r.URL.Path)
		assert.Equal(t, "ro-key", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{"name": "Main Wallet", "balance": 21000}`))
	}))
	defer server.Close()

	balance, err := newTestClient(server.URL).Balance(context.Background(), "ro-key")
	require.NoError(t, err)
	assert.Equal(t, int64(21000), balance)
}

func TestBalance_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Balance(context.Background(), "bad-key")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_001", appErr.Code)
}

func TestBalance_UpstreamUnreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Balance(context.Background(), "key")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_002", appErr.Code)
}

func TestBalance_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Balance(context.Background(), "key")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_003", appErr.Code)
}

func TestPayments_DecodesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments", r.URL.Path)
		w.Write([]byte(`[
			{
				"payment_hash": "hash-1",
				"amount": 21000,
				"memo": "coffee",
				"status": "completed",
				"created_at": "2026-08-29T10:00:00"
			},
			{
				"payment_hash": "hash-2",
				"amount": -5000,
				"memo": "refund",
				"status": "pending",
				"time": 1756450800
			},
			{
				"payment_hash": "hash-3",
				"amount": 10000
			}
		]`))
	}))
	defer server.Close()

	payments, err := newTestClient(server.URL).Payments(context.Background(), "key")
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, "hash-1", payments[0].Identifier)
	assert.Equal(t, int64(21000), payments[0].AmountMsat)
	assert.Equal(t, domain.PaymentStatusCompleted, payments[0].Status)
	assert.Equal(t, "2026-08-29T10:00:00", payments[0].CreatedAt)

	assert.Equal(t, domain.PaymentStatusPending, payments[1].Status)
	assert.Equal(t, "1756450800", payments[1].CreatedAt, "numeric epoch flattened to text")

	assert.Equal(t, domain.PaymentStatusCompleted, payments[2].Status, "absent status defaults to completed")
	assert.Empty(t, payments[2].CreatedAt)
}

func TestPayments_DonationMetadataDecodedOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{
				"payment_hash": "don-1",
				"amount": 10000,
				"extra": {"link": "link-1", "comment": "keep going", "extra": 5000}
			},
			{
				"payment_hash": "don-2",
				"amount": 10000,
				"extra": {"link": "link-1", "comment": ["first", "second"], "extra": "7000"}
			},
			{
				"payment_hash": "don-3",
				"amount": 10000,
				"extra": {"link": "link-1", "extra": "not-a-number"}
			},
			{
				"payment_hash": "plain",
				"amount": 10000,
				"extra": {"tag": "something-else"}
			}
		]`))
	}))
	defer server.Close()

	payments, err := newTestClient(server.URL).Payments(context.Background(), "key")
	require.NoError(t, err)
	require.Len(t, payments, 4)

	first := payments[0].Donation
	require.NotNil(t, first)
	assert.Equal(t, "link-1", first.LinkID)
	assert.Equal(t, "keep going", first.Comment)
	require.NotNil(t, first.AmountMsat)
	assert.Equal(t, int64(5000), *first.AmountMsat)

	second := payments[1].Donation
	require.NotNil(t, second)
	assert.Equal(t, "first", second.Comment, "list-form comment keeps the first entry")
	require.NotNil(t, second.AmountMsat)
	assert.Equal(t, int64(7000), *second.AmountMsat)

	third := payments[2].Donation
	require.NotNil(t, third)
	assert.Nil(t, third.AmountMsat, "non-numeric amount falls back to nil")

	assert.Nil(t, payments[3].Donation, "no link marker means no donation")
}

func TestPayLink_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lnurlp/api/v1/links", r.URL.Path)
		w.Write([]byte(`[
			{"id": "other", "description": "tips", "username": "bob", "lnurl": "lnurl-b"},
			{"id": "link-1", "description": "donations", "username": "alice", "lnurl": "lnurl-a"}
		]`))
	}))
	defer server.Close()

	link, err := newTestClient(server.URL).PayLink(context.Background(), "key", "link-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", link.Username)
	assert.Equal(t, "lnurl-a", link.LNURL)
	assert.Equal(t, "alice@example.com", link.LightningAddress("example.com"))
}

func TestPayLink_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).PayLink(context.Background(), "key", "missing")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_004", appErr.Code)
}

type failingHTTPClient struct{}

func (failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestPayments_TransportError(t *testing.T) {
	client := NewClient("http://example.invalid", failingHTTPClient{}, nil, zerolog.Nop())

	_, err := client.Payments(context.Background(), "key")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_002", appErr.Code)
}
