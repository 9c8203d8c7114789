package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyExists = "user already exists"

	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotInInventory = "item not in inventory"

	// Case errors
	ErrMsgCaseNotFound     = "case not found"
	ErrMsgInvalidPromoCode = "invalid promo code"
	ErrMsgRechargeTooLow   = "lifetime recharge below case threshold"

	// Ledger errors
	ErrMsgInsufficientBalance = "insufficient balance"

	// Upgrade errors
	ErrMsgTargetBelowRatio = "target value below minimum upgrade ratio"

	// Craft errors
	ErrMsgTooFewCraftInputs  = "craft requires at least 4 items"
	ErrMsgTooManyCraftInputs = "craft accepts at most 12 items"

	// Match errors
	ErrMsgMatchNotFound     = "match not found"
	ErrMsgMatchNotSpinnable = "match is not ready to spin"
	ErrMsgMatchAlreadyDone  = "match already resolved"
	ErrMsgBetMustBePositive = "bet must be positive"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Wallet errors
	ErrMsgWalletTransaction = "wallet transaction failed"

	// Transaction errors (pgx wording, matched to suppress rollback noise)
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)

	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)

	// Case errors
	ErrCaseNotFound     = errors.New(ErrMsgCaseNotFound)
	ErrInvalidPromoCode = errors.New(ErrMsgInvalidPromoCode)
	ErrRechargeTooLow   = errors.New(ErrMsgRechargeTooLow)

	// Ledger errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)

	// Upgrade errors
	ErrTargetBelowRatio = errors.New(ErrMsgTargetBelowRatio)

	// Craft errors
	ErrTooFewCraftInputs  = errors.New(ErrMsgTooFewCraftInputs)
	ErrTooManyCraftInputs = errors.New(ErrMsgTooManyCraftInputs)

	// Match errors
	ErrMatchNotFound     = errors.New(ErrMsgMatchNotFound)
	ErrMatchNotSpinnable = errors.New(ErrMsgMatchNotSpinnable)
	ErrMatchAlreadyDone  = errors.New(ErrMsgMatchAlreadyDone)
	ErrBetMustBePositive = errors.New(ErrMsgBetMustBePositive)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Wallet errors
	ErrWalletTransaction = errors.New(ErrMsgWalletTransaction)
)
