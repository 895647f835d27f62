// Package balance implements the balance engine: the sole writer of the
// cached per-user balance, the generator of compensating bank transfers,
// and the pure fold that re-derives any balance from recorded history.
package balance

import (
	"log/slog"
	"time"

	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

// Service owns every mutation of the cached User.Balance field. All
// mutating methods take the caller's unit of work so the balance adjustment
// commits atomically with the transaction that caused it.
type Service struct {
	store  repository.Store
	cfg    config.LedgerConfig
	logger *slog.Logger
}

// NewService creates a balance engine over the given store.
func NewService(store repository.Store, cfg config.LedgerConfig, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.With("service", "balance"),
	}
}

// Fold derives a user's balance from recorded history: every funds-moving
// transaction the user participates in, plus every bank transfer belonging
// to the user. Same-user balance transfers net to zero on the transaction
// side; their movement is carried by the paired bank transfer.
func Fold(userID uuid.UUID, txns []ledger.Transaction, transfers []ledger.BankTransfer) int64 {
	var total int64
	for _, t := range txns {
		if !t.MovesFunds() || t.SenderID == t.ReceiverID {
			continue
		}
		payer, payee := t.FlowParties()
		if payer == userID {
			total -= t.Amount
		}
		if payee == userID {
			total += t.Amount
		}
	}
	for _, tr := range transfers {
		if tr.UserID != userID {
			continue
		}
		switch tr.Type {
		case ledger.TransferWithdrawal:
			total += tr.Amount
		case ledger.TransferDeposit:
			total -= tr.Amount
		}
	}
	return total
}

// ComputeBalance recomputes the user's balance from history, independent of
// the cached field. Deterministic, no side effects.
func (s *Service) ComputeBalance(userID uuid.UUID) (int64, error) {
	if _, err := s.store.Users().Get(userID); err != nil {
		return 0, err
	}
	txns := s.store.Transactions().ByParticipant(userID)
	transfers := s.store.BankTransfers().ByUserID(userID)
	return Fold(userID, txns, transfers), nil
}

// Apply adjusts the cached balances of both parties of a funds-moving
// transaction. Same-user transfers are a no-op here.
func (s *Service) Apply(uow repository.UnitOfWork, t ledger.Transaction) error {
	if !t.MovesFunds() || t.SenderID == t.ReceiverID {
		return nil
	}
	payer, payee := t.FlowParties()
	for _, adj := range []struct {
		userID uuid.UUID
		delta  int64
	}{{payer, -t.Amount}, {payee, t.Amount}} {
		u, err := uow.Users().Get(adj.userID)
		if err != nil {
			return err
		}
		if err := uow.Users().SetBalance(adj.userID, u.Balance+adj.delta); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile covers a negative cached balance with one or more withdrawal
// bank transfers against the user's linked bank account, each at most the
// configured single-transfer cap, bringing the balance to exactly zero.
// Each call covers only the shortfall existing at call time.
func (s *Service) Reconcile(uow repository.UnitOfWork, userID, transactionID uuid.UUID) error {
	u, err := uow.Users().Get(userID)
	if err != nil {
		return err
	}
	if u.Balance >= 0 {
		return nil
	}
	accounts := uow.BankAccounts().ByUserID(userID)
	if len(accounts) == 0 {
		return ledger.NewFieldError(ledger.ErrNotFound, "bankAccount", userID.String())
	}

	shortfall := -u.Balance
	limit := s.cfg.MaxSingleTransfer
	if limit <= 0 {
		limit = shortfall
	}
	now := time.Now()
	for shortfall > 0 {
		amount := min(shortfall, limit)
		if err := uow.BankTransfers().Create(ledger.BankTransfer{
			ID:            uuid.New(),
			TransactionID: transactionID,
			UserID:        userID,
			Type:          ledger.TransferWithdrawal,
			Amount:        amount,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		shortfall -= amount
	}
	s.logger.Info("covered balance shortfall", "user_id", userID, "amount", -u.Balance)
	return uow.Users().SetBalance(userID, 0)
}

// Deposit moves amount from the user's app balance to their bank account.
// Fails with ErrInsufficientFunds if amount exceeds the current balance;
// the store is left unmodified in that case.
func (s *Service) Deposit(uow repository.UnitOfWork, userID, transactionID uuid.UUID, amount int64) (ledger.BankTransfer, error) {
	u, err := uow.Users().Get(userID)
	if err != nil {
		return ledger.BankTransfer{}, err
	}
	if amount > u.Balance {
		return ledger.BankTransfer{}, ledger.NewFieldError(ledger.ErrInsufficientFunds, "amount", "")
	}
	transfer := ledger.BankTransfer{
		ID:            uuid.New(),
		TransactionID: transactionID,
		UserID:        userID,
		Type:          ledger.TransferDeposit,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}
	if err := uow.BankTransfers().Create(transfer); err != nil {
		return ledger.BankTransfer{}, err
	}
	if err := uow.Users().SetBalance(userID, u.Balance-amount); err != nil {
		return ledger.BankTransfer{}, err
	}
	return transfer, nil
}
