package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Upstream wallet API (UPS) ----

func ErrUpstreamStatus(endpoint string, status int) *AppError {
	return New("UPS_001", fmt.Sprintf("upstream %s returned status %d", endpoint, status), http.StatusBadGateway)
}

func ErrUpstreamUnreachable(endpoint string, err error) *AppError {
	return Wrap("UPS_002", fmt.Sprintf("upstream %s unreachable", endpoint), http.StatusBadGateway, err)
}

func ErrUpstreamDecode(endpoint string, err error) *AppError {
	return Wrap("UPS_003", fmt.Sprintf("upstream %s returned malformed body", endpoint), http.StatusBadGateway, err)
}

func ErrPayLinkNotFound(linkID string) *AppError {
	return New("UPS_004", fmt.Sprintf("no pay link found with ID %s", linkID), http.StatusNotFound)
}

// ---- Donations (DON) ----

func ErrDonationNotFound() *AppError {
	return New("DON_001", "Donation not found", http.StatusNotFound)
}

func ErrInvalidVote() *AppError {
	return New("DON_002", "Vote must be like or dislike", http.StatusBadRequest)
}

func ErrDuplicateVote() *AppError {
	return New("DON_003", "Vote already recorded for this donation", http.StatusConflict)
}

// ---- Inbound requests (REQ) ----

func ErrEmptyUpdate() *AppError {
	return New("REQ_001", "No update found", http.StatusBadRequest)
}

func ErrUnauthorizedAdmin() *AppError {
	return New("REQ_002", "Invalid admin token", http.StatusUnauthorized)
}

func Validation(message string) *AppError {
	return New("REQ_003", message, http.StatusBadRequest)
}

// ---- System & persistence (SYS) ----

func ErrStoreFailure(store string, err error) *AppError {
	return Wrap("SYS_001", fmt.Sprintf("%s store failure", store), http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
