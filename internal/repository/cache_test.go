package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/repository"
	"github.com/getgifts/starcase/internal/testing/fake"
)

const cachedUserID = "0b1e9f66-0000-0000-0000-000000000001"

func seedCached(t *testing.T) (*repository.CachedLedger, *fake.Ledger) {
	t.Helper()
	backing := fake.NewLedger()
	backing.Seed(domain.Profile{UserID: cachedUserID, Username: "astra", Balance: 500})
	return repository.NewCachedLedger(backing), backing
}

func TestCachedLedger_ServesCachedProfile(t *testing.T) {
	repo, backing := seedCached(t)

	first, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)
	assert.Equal(t, 500, first.Balance)

	// A write that bypasses the decorator entirely is invisible until the TTL.
	stale := backing.Profiles[cachedUserID]
	stale.Balance = 900
	backing.Profiles[cachedUserID] = stale

	cached, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)
	assert.Equal(t, 500, cached.Balance)
}

func TestCachedLedger_DirectUpdateInvalidates(t *testing.T) {
	repo, _ := seedCached(t)

	_, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)

	err = repo.UpdateProfile(context.Background(), domain.Profile{
		UserID: cachedUserID, Username: "astra", Balance: 250,
	})
	require.NoError(t, err)

	fresh, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)
	assert.Equal(t, 250, fresh.Balance)
}

func TestCachedLedger_TxCommitInvalidates(t *testing.T) {
	repo, _ := seedCached(t)

	_, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	profile, err := tx.GetProfileForUpdate(context.Background(), cachedUserID)
	require.NoError(t, err)
	profile.Balance -= 100
	require.NoError(t, tx.UpdateProfile(context.Background(), *profile))
	require.NoError(t, tx.Commit(context.Background()))

	fresh, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)
	assert.Equal(t, 400, fresh.Balance, "committed debit must not be masked by the cache")
}

func TestCachedLedger_RolledBackTxLeavesBalance(t *testing.T) {
	repo, _ := seedCached(t)

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	profile, err := tx.GetProfileForUpdate(context.Background(), cachedUserID)
	require.NoError(t, err)
	profile.Balance = 0
	require.NoError(t, tx.UpdateProfile(context.Background(), *profile))
	require.NoError(t, tx.Rollback(context.Background()))

	got, err := repo.GetProfile(context.Background(), cachedUserID)
	require.NoError(t, err)
	assert.Equal(t, 500, got.Balance)
}
