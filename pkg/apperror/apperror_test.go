package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("DON_001", "Donation not found", http.StatusNotFound),
			expected: "[DON_001] Donation not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "ledger store failure", http.StatusInternalServerError, fmt.Errorf("disk full")),
			expected: "[SYS_001] ledger store failure: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_002", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("REQ_003", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestUpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UpstreamStatus", ErrUpstreamStatus("payments", 503), "UPS_001", http.StatusBadGateway},
		{"UpstreamUnreachable", ErrUpstreamUnreachable("wallet", fmt.Errorf("timeout")), "UPS_002", http.StatusBadGateway},
		{"UpstreamDecode", ErrUpstreamDecode("payments", fmt.Errorf("bad json")), "UPS_003", http.StatusBadGateway},
		{"PayLinkNotFound", ErrPayLinkNotFound("abc123"), "UPS_004", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDonationErrors(t *testing.T) {
	assert.Equal(t, "DON_001", ErrDonationNotFound().Code)
	assert.Equal(t, http.StatusNotFound, ErrDonationNotFound().HTTPStatus)
	assert.Equal(t, "DON_002", ErrInvalidVote().Code)
	assert.Equal(t, "DON_003", ErrDuplicateVote().Code)
	assert.Equal(t, http.StatusConflict, ErrDuplicateVote().HTTPStatus)
}
