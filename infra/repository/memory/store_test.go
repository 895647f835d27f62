package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/peerpay/infra/repository/memory"
	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReseedReplacesWorkingSet(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	require.Len(t, store.Transactions().List(), 30)

	fresh := fixtures.Seed()
	store.Reseed(fresh)

	txns := store.Transactions().List()
	require.Len(t, txns, 30)
	// Ids are regenerated per snapshot, so surviving references into the
	// prior snapshot would be detectable here.
	assert.Equal(t, fresh.Transactions[0].ID, txns[0].ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	snap := fixtures.Seed()
	store := memory.NewSeeded(snap)

	users := store.Users().List()
	require.Len(t, users, len(snap.Users))
	for i := range users {
		assert.Equal(t, snap.Users[i].ID, users[i].ID)
	}
}

func TestListReturnsCopies(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())

	users := store.Users().List()
	users[0].Balance = 999999

	reread, err := store.Users().Get(users[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, int64(999999), reread.Balance)
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	store := memory.New()

	_, err := store.Users().Get(uuid.New())
	require.ErrorIs(t, err, ledger.ErrNotFound)

	_, err = store.Transactions().Get(uuid.New())
	require.ErrorIs(t, err, ledger.ErrNotFound)

	_, err = store.Notifications().Get(uuid.New())
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTransactionPatchUpdatesOnlySetFields(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	txn := store.Transactions().List()[0]

	status := ledger.StatusComplete
	updated, err := store.Transactions().Update(txn.ID, repository.TransactionPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, ledger.StatusComplete, updated.Status)
	assert.Equal(t, txn.Description, updated.Description)
	assert.Equal(t, txn.Amount, updated.Amount)
}

func TestLikeUniquenessEnforced(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	txn := store.Transactions().List()[0]
	userID := store.Users().List()[3].ID

	like := ledger.Like{ID: uuid.New(), TransactionID: txn.ID, UserID: userID, CreatedAt: time.Now()}
	require.NoError(t, store.Likes().Create(like))

	dup := ledger.Like{ID: uuid.New(), TransactionID: txn.ID, UserID: userID, CreatedAt: time.Now()}
	err := store.Likes().Create(dup)
	require.ErrorIs(t, err, ledger.ErrInvalidInput)
	assert.Equal(t, 1, store.Likes().CountByTransactionID(txn.ID))
}

func TestDoRunsAtomically(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	userID := store.Users().List()[0].ID

	// Writer pauses mid-mutation; a concurrent reader must observe either
	// the state before the mutation or after it, never in between.
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- store.Do(context.Background(), func(uow repository.UnitOfWork) error {
			if err := uow.Users().SetBalance(userID, 1); err != nil {
				return err
			}
			close(entered)
			<-release
			return uow.Users().SetBalance(userID, 2)
		})
	}()

	<-entered
	read := make(chan int64, 1)
	go func() {
		u, _ := store.Users().Get(userID)
		read <- u.Balance
	}()

	select {
	case <-read:
		t.Fatal("reader observed the store mid-mutation")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int64(2), <-read)
}

func TestDoHonorsPriorCancellation(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Do(ctx, func(uow repository.UnitOfWork) error {
		t.Fatal("closure must not run after cancellation")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSoftDeleteHidesAccountFromOwnerLookup(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	u := store.Users().List()[0]
	account := store.BankAccounts().ByUserID(u.ID)[0]

	require.NoError(t, store.BankAccounts().SoftDelete(account.ID))

	assert.Empty(t, store.BankAccounts().ByUserID(u.ID))
	kept, err := store.BankAccounts().Get(account.ID)
	require.NoError(t, err)
	assert.True(t, kept.IsDeleted)
}

func TestDoErrorPropagates(t *testing.T) {
	store := memory.NewSeeded(fixtures.Seed())
	sentinel := errors.New("boom")

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}
