package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Inventory Constants
const (
	// EmptyInventoryJSON is the default JSON structure for a new/empty inventory
	EmptyInventoryJSON = `{"items": []}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToUpdateUser = "failed to update user"
	ErrMsgFailedToGetUser    = "failed to get user"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToUpdateInventory = "failed to update inventory"
	ErrMsgFailedToEncodeInventory = "failed to encode inventory"
	ErrMsgFailedToDecodeInventory = "failed to decode inventory"
	ErrMsgFailedToEncodeUsage     = "failed to encode topup usage"
	ErrMsgFailedToDecodeUsage     = "failed to decode topup usage"
)
