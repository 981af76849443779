package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfiguration = "invalid theme configuration"
	ErrMsgThemeNotFound        = "theme not found"

	// Bet errors
	ErrMsgInvalidBet = "invalid bet amount"

	// Ledger errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgWalletNotFound      = "wallet not found"
	ErrMsgInvalidAmount       = "invalid transaction amount"

	// Spin errors
	ErrMsgSpinNotFound = "spin not found"
	ErrMsgInvalidSeed  = "invalid seed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)
	ErrThemeNotFound        = errors.New(ErrMsgThemeNotFound)

	// Bet errors
	ErrInvalidBet = errors.New(ErrMsgInvalidBet)

	// Ledger errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrWalletNotFound      = errors.New(ErrMsgWalletNotFound)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	// Spin errors
	ErrSpinNotFound = errors.New(ErrMsgSpinNotFound)
	ErrInvalidSeed  = errors.New(ErrMsgInvalidSeed)
)
