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

// ---- Escrow Business Logic (ESC) ----

func ErrDuplicateStake() *AppError {
	return New("ESC_001", "Player already staked in this game", http.StatusConflict)
}

func ErrWalletNotFound() *AppError {
	return New("ESC_002", "No active escrow wallet for this game", http.StatusNotFound)
}

func ErrGameNotFound() *AppError {
	return New("ESC_003", "No stake record for this game", http.StatusNotFound)
}

func ErrEmptyEscrow() *AppError {
	return New("ESC_004", "Escrow wallet holds no funds", http.StatusUnprocessableEntity)
}

// ErrDecryptionFailure marks failed authentication of the custodial
// secret's ciphertext. Callers must not retry automatically: a tag
// mismatch means a tampered record or wrong key material.
func ErrDecryptionFailure(err error) *AppError {
	return Wrap("ESC_005", "Failed to decrypt custodial secret", http.StatusInternalServerError, err)
}

func ErrInvalidStake() *AppError {
	return New("ESC_006", "Stake does not match a confirmed ledger transfer", http.StatusBadRequest)
}

func ErrStakeBelowMinimum(min int64) *AppError {
	return New("ESC_007", fmt.Sprintf("Stake amount below minimum of %d", min), http.StatusBadRequest)
}

func ErrWalletNotExpired() *AppError {
	return New("ESC_008", "Wallet secret is only revealed for expired wallets", http.StatusConflict)
}

// ---- Ledger (LGR) ----

// ErrConfirmationTimeout means the outcome of a submitted transfer is
// unknown. Callers must re-check ledger state before retrying; blind
// resubmission risks a double payout.
func ErrConfirmationTimeout(err error) *AppError {
	return Wrap("LGR_001", "Transfer confirmation timed out", http.StatusGatewayTimeout, err)
}

// ErrTransferFailed means the ledger definitively rejected the
// transfer; retrying the transfer is safe.
func ErrTransferFailed(err error) *AppError {
	return Wrap("LGR_002", "Ledger rejected the transfer", http.StatusBadGateway, err)
}

func ErrLedgerUnavailable(err error) *AppError {
	return Wrap("LGR_003", "Ledger endpoint unreachable", http.StatusServiceUnavailable, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatastoreUnavailable(err error) *AppError {
	return Wrap("SYS_001", "Datastore unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("SYS_003", message, http.StatusBadRequest)
}
