package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/repository"
)

// pool is the subset of pgxpool.Pool the repository uses
type pool interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &LedgerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const insertUserSQL = `
	INSERT INTO users (user_id, username, balance, total_recharged, last_promo_at, topup_usage, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertInventorySQL = `
	INSERT INTO user_inventory (user_id, items, last_update)
	VALUES ($1, $2, NOW())
	ON CONFLICT (user_id) DO NOTHING`

// CreateUser inserts the profile and its empty inventory row in one
// transaction so a half-created user can never exist.
func (r *LedgerRepository) CreateUser(ctx context.Context, profile domain.Profile) error {
	uid, err := parseUserUUID(profile.UserID)
	if err != nil {
		return err
	}

	usage, err := encodeTopupUsage(profile.TopupUsage)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx, insertUserSQL,
		uid, profile.Username, profile.Balance, profile.TotalRecharged,
		profile.LastPromoAt, usage, profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}

	if _, err := tx.Exec(ctx, insertInventorySQL, uid, EmptyInventoryJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}
	return tx.Commit(ctx)
}

const getProfileSQL = `
	SELECT user_id, username, balance, total_recharged, last_promo_at, topup_usage, created_at
	FROM users
	WHERE user_id = $1`

const getProfileForUpdateSQL = getProfileSQL + ` FOR UPDATE`

// GetProfile retrieves a profile by user ID
func (r *LedgerRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return getProfile(ctx, r.db, getProfileSQL, userID)
}

// GetProfileForUpdate retrieves a profile and locks its row for the transaction
func (t *LedgerTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.Profile, error) {
	return getProfile(ctx, t.tx, getProfileForUpdateSQL, userID)
}

func getProfile(ctx context.Context, q querier, sql, userID string) (*domain.Profile, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		profile  domain.Profile
		rawUsage []byte
	)
	err = q.QueryRow(ctx, sql, uid).Scan(
		&profile.UserID, &profile.Username, &profile.Balance,
		&profile.TotalRecharged, &profile.LastPromoAt, &rawUsage, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	profile.TopupUsage, err = decodeTopupUsage(rawUsage)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

const updateProfileSQL = `
	UPDATE users
	SET username = $2, balance = $3, total_recharged = $4, last_promo_at = $5,
	    topup_usage = $6, updated_at = NOW()
	WHERE user_id = $1`

// UpdateProfile persists profile changes
func (r *LedgerRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return updateProfile(ctx, r.db, profile)
}

// UpdateProfile persists profile changes inside the transaction
func (t *LedgerTx) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	return updateProfile(ctx, t.tx, profile)
}

func updateProfile(ctx context.Context, q querier, profile domain.Profile) error {
	uid, err := parseUserUUID(profile.UserID)
	if err != nil {
		return err
	}

	usage, err := encodeTopupUsage(profile.TopupUsage)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, updateProfileSQL,
		uid, profile.Username, profile.Balance, profile.TotalRecharged,
		profile.LastPromoAt, usage)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

const getInventorySQL = `
	SELECT items, last_update
	FROM user_inventory
	WHERE user_id = $1`

// GetInventory retrieves the user's inventory
func (r *LedgerRepository) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, userID)
}

// GetInventory retrieves the user's inventory inside the transaction
func (t *LedgerTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return getInventory(ctx, t.tx, userID)
}

func getInventory(ctx context.Context, q querier, userID string) (*domain.Inventory, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		raw        []byte
		lastUpdate time.Time
	)
	err = q.QueryRow(ctx, getInventorySQL, uid).Scan(&raw, &lastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	var inventory domain.Inventory
	if err := json.Unmarshal(raw, &inventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeInventory, err)
	}
	inventory.LastUpdate = lastUpdate.Unix()
	return &inventory, nil
}

const updateInventorySQL = `
	UPDATE user_inventory
	SET items = $2, last_update = NOW()
	WHERE user_id = $1`

// UpdateInventory replaces the user's inventory
func (r *LedgerRepository) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return updateInventory(ctx, r.db, userID, inventory)
}

// UpdateInventory replaces the user's inventory inside the transaction
func (t *LedgerTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return updateInventory(ctx, t.tx, userID, inventory)
}

func updateInventory(ctx context.Context, q querier, userID string, inventory domain.Inventory) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeInventory, err)
	}

	tag, err := q.Exec(ctx, updateInventorySQL, uid, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func encodeTopupUsage(usage map[string]time.Time) ([]byte, error) {
	if usage == nil {
		usage = map[string]time.Time{}
	}
	raw, err := json.Marshal(usage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeUsage, err)
	}
	return raw, nil
}

func decodeTopupUsage(raw []byte) (map[string]time.Time, error) {
	usage := map[string]time.Time{}
	if len(raw) == 0 {
		return usage, nil
	}
	if err := json.Unmarshal(raw, &usage); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeUsage, err)
	}
	return usage, nil
}
