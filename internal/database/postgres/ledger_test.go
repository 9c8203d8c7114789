package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/domain"
)

// recordingTx implements the pgx.Tx surface CreateUser touches. Unused
// methods panic through the embedded nil interface, which is exactly what a
// test escaping this surface should do.
type recordingTx struct {
	pgx.Tx
	execs      []string
	failOnExec int // 1-based index of the Exec call that errors, 0 for none
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	if t.failOnExec == len(t.execs) {
		return pgconn.CommandTag{}, errors.New("connection reset by peer")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (t *recordingTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type stubPool struct {
	querier
	tx *recordingTx
}

func (p *stubPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.tx, nil
}

func testProfile() domain.Profile {
	return domain.Profile{
		UserID:    "0b1e9f66-0000-0000-0000-000000000001",
		Username:  "astra",
		Balance:   1500,
		CreatedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser_BothInsertsInOneTransaction(t *testing.T) {
	tx := &recordingTx{}
	repo := &LedgerRepository{db: &stubPool{tx: tx}}

	err := repo.CreateUser(context.Background(), testProfile())
	require.NoError(t, err)

	require.Len(t, tx.execs, 2)
	assert.Equal(t, insertUserSQL, tx.execs[0])
	assert.Equal(t, insertInventorySQL, tx.execs[1])
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestCreateUser_InventoryInsertFailureRollsBack(t *testing.T) {
	tx := &recordingTx{failOnExec: 2}
	repo := &LedgerRepository{db: &stubPool{tx: tx}}

	err := repo.CreateUser(context.Background(), testProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToUpdateInventory)

	assert.False(t, tx.committed, "a partial user must never be committed")
	assert.True(t, tx.rolledBack)
}

func TestCreateUser_UserInsertFailureRollsBack(t *testing.T) {
	tx := &recordingTx{failOnExec: 1}
	repo := &LedgerRepository{db: &stubPool{tx: tx}}

	err := repo.CreateUser(context.Background(), testProfile())
	require.Error(t, err)

	require.Len(t, tx.execs, 1, "inventory insert must not run after a failed user insert")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}
