package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrWalletNotFound indicates a wallet payment was requested for a user
	// without a wallet record.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientBalance indicates a wallet debit larger than the
	// current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount indicates a monetary field that failed to parse as a
	// non-negative decimal.
	ErrInvalidAmount = errors.New("invalid amount")
)
