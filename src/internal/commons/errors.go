package commons

import "errors"

// Client errors carry a stable public message; anything else is reported to
// callers as a generic failure and logged with detail for operators.
var (
	ErrRecordNotFound      = errors.New("Record not found")
	ErrWalletNotFound      = errors.New("Source wallet not found")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrInvalidAmount       = errors.New("Invalid amount after fees")
	ErrEmailAlreadyUsed    = errors.New("Email already registered")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
)
