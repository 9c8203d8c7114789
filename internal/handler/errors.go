package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// ID parsing error messages
	ErrMsgInvalidMatchID = "Invalid match ID"

	// Operation error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetProfileFailed   = "Failed to get profile"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgSellItemsFailed    = "Failed to sell items"
	ErrMsgRedeemPromoFailed  = "Failed to redeem promo code"
	ErrMsgTopUpFailed        = "Failed to top up wallet"
	ErrMsgOpenCaseFailed     = "Failed to open case"
	ErrMsgUpgradeFailed      = "Failed to resolve upgrade"
	ErrMsgCraftFailed        = "Failed to craft"
	ErrMsgJoinMatchFailed    = "Failed to join match"
	ErrMsgSpinMatchFailed    = "Failed to spin match"
)
