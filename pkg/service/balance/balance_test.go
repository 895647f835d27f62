package balance_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/peerpay/infra/repository/memory"
	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/amirasaad/peerpay/pkg/service/balance"
	"github.com/amirasaad/peerpay/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, cfg config.LedgerConfig) (*balance.Service, *memory.Store) {
	t.Helper()
	store := memory.NewSeeded(fixtures.Seed())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return balance.NewService(store, cfg, logger), store
}

func TestComputeBalanceMatchesCachedForAllSeededUsers(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)

	for _, u := range store.Users().List() {
		computed, err := svc.ComputeBalance(u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Balance, computed, "user %s", u.Username)
	}
}

func TestComputeBalanceFirstSeededUser(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)

	computed, err := svc.ComputeBalance(store.Users().List()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(55000), computed)
}

func TestComputeBalanceUnknownUser(t *testing.T) {
	svc, _ := newService(t, testutils.TestConfig().Ledger)

	_, err := svc.ComputeBalance(uuid.New())
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestFoldIgnoresUnacceptedRequests(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()
	txns := []ledger.Transaction{
		{ID: uuid.New(), SenderID: userID, ReceiverID: other, Amount: 1000, Status: ledger.StatusComplete},
		{ID: uuid.New(), SenderID: userID, ReceiverID: other, Amount: 500, Status: ledger.StatusPending, RequestStatus: ledger.RequestPending},
		{ID: uuid.New(), SenderID: other, ReceiverID: userID, Amount: 700, Status: ledger.StatusPending, RequestStatus: ledger.RequestRejected},
	}
	assert.Equal(t, int64(-1000), balance.Fold(userID, txns, nil))
}

func TestFoldAcceptedRequestCreditsRequester(t *testing.T) {
	requester := uuid.New()
	payer := uuid.New()
	txns := []ledger.Transaction{
		{
			ID: uuid.New(), SenderID: requester, ReceiverID: payer, Amount: 2500,
			Status: ledger.StatusComplete, RequestStatus: ledger.RequestAccepted,
		},
	}
	assert.Equal(t, int64(2500), balance.Fold(requester, txns, nil))
	assert.Equal(t, int64(-2500), balance.Fold(payer, txns, nil))
}

func TestFoldBankTransfers(t *testing.T) {
	userID := uuid.New()
	transfers := []ledger.BankTransfer{
		{ID: uuid.New(), UserID: userID, Type: ledger.TransferWithdrawal, Amount: 4000},
		{ID: uuid.New(), UserID: userID, Type: ledger.TransferDeposit, Amount: 1500},
		{ID: uuid.New(), UserID: uuid.New(), Type: ledger.TransferWithdrawal, Amount: 9999},
	}
	assert.Equal(t, int64(2500), balance.Fold(userID, nil, transfers))
}

func TestReconcileNoOpWhenBalanceNonNegative(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)
	u := store.Users().List()[0]

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		return svc.Reconcile(uow, u.ID, uuid.New())
	})
	require.NoError(t, err)
	assert.Empty(t, store.BankTransfers().ByUserID(u.ID))
}

func TestReconcileCoversShortfallExactly(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)
	u := store.Users().List()[0]
	txnID := uuid.New()

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		if err := uow.Users().SetBalance(u.ID, -45000); err != nil {
			return err
		}
		return svc.Reconcile(uow, u.ID, txnID)
	})
	require.NoError(t, err)

	reread, err := store.Users().Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reread.Balance)

	transfers := store.BankTransfers().ByTransactionID(txnID)
	require.Len(t, transfers, 1)
	assert.Equal(t, ledger.TransferWithdrawal, transfers[0].Type)
	assert.Equal(t, int64(45000), transfers[0].Amount)
}

func TestReconcileSplitsShortfallAtConfiguredCap(t *testing.T) {
	svc, store := newService(t, config.LedgerConfig{MaxSingleTransfer: 45000})
	u := store.Users().List()[0]
	txnID := uuid.New()

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		if err := uow.Users().SetBalance(u.ID, -100000); err != nil {
			return err
		}
		return svc.Reconcile(uow, u.ID, txnID)
	})
	require.NoError(t, err)

	transfers := store.BankTransfers().ByTransactionID(txnID)
	require.Len(t, transfers, 3)
	var total int64
	for _, tr := range transfers {
		assert.LessOrEqual(t, tr.Amount, int64(45000))
		total += tr.Amount
	}
	assert.Equal(t, int64(100000), total)

	reread, err := store.Users().Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reread.Balance)
}

func TestDepositExceedingBalanceFails(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)
	u := store.Users().List()[0] // seeded balance 55000

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		_, err := svc.Deposit(uow, u.ID, uuid.New(), u.Balance+1)
		return err
	})
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Empty(t, store.BankTransfers().ByUserID(u.ID))

	reread, err := store.Users().Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Balance, reread.Balance)
}

func TestDepositDebitsBalance(t *testing.T) {
	svc, store := newService(t, testutils.TestConfig().Ledger)
	u := store.Users().List()[0]
	txnID := uuid.New()

	err := store.Do(context.Background(), func(uow repository.UnitOfWork) error {
		_, err := svc.Deposit(uow, u.ID, txnID, 5000)
		return err
	})
	require.NoError(t, err)

	reread, err := store.Users().Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Balance-5000, reread.Balance)

	transfers := store.BankTransfers().ByTransactionID(txnID)
	require.Len(t, transfers, 1)
	assert.Equal(t, ledger.TransferDeposit, transfers[0].Type)
	assert.Equal(t, int64(5000), transfers[0].Amount)
}
