// Package transaction implements the transaction lifecycle manager: it
// creates payments, requests and balance transfers, applies request-status
// transitions, and records the counterpart notifications — each operation
// as one atomic unit against the entity store.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/events"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/eventbus"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/amirasaad/peerpay/pkg/service/balance"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service creates and mutates transactions.
type Service struct {
	store    repository.Store
	balance  *balance.Service
	bus      eventbus.Bus
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a lifecycle manager wired to the store, the balance
// engine and the event bus.
func NewService(store repository.Store, bal *balance.Service, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		balance:  bal,
		bus:      bus,
		validate: validator.New(),
		logger:   logger.With("service", "transaction"),
	}
}

// Create records a new transaction of the given kind on behalf of callerID.
// A payload with an empty source and equal sender/receiver ids routes to
// the balance-transfer path regardless of the requested kind.
func (s *Service) Create(ctx context.Context, callerID uuid.UUID, kind ledger.TransactionKind, payload dto.TransactionCreate) (ledger.Transaction, error) {
	if err := s.validate.Struct(payload); err != nil {
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrInvalidInput, "payload", err.Error())
	}
	if callerID != payload.SenderID {
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrForbidden, "senderId", payload.SenderID.String())
	}
	if kind == ledger.KindTransferDeposit || (payload.Source == "" && payload.SenderID == payload.ReceiverID) {
		return s.createTransferDeposit(ctx, payload)
	}
	switch kind {
	case ledger.KindPayment, ledger.KindRequest:
		return s.createPaymentOrRequest(ctx, kind, payload)
	default:
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrInvalidInput, "kind", string(kind))
	}
}

func (s *Service) createPaymentOrRequest(ctx context.Context, kind ledger.TransactionKind, payload dto.TransactionCreate) (ledger.Transaction, error) {
	now := time.Now()
	txn := ledger.Transaction{
		ID:           uuid.New(),
		SenderID:     payload.SenderID,
		ReceiverID:   payload.ReceiverID,
		Source:       payload.Source,
		Amount:       payload.Amount,
		Description:  payload.Description,
		PrivacyLevel: payload.PrivacyLevel,
		Status:       ledger.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if kind == ledger.KindRequest {
		txn.RequestStatus = ledger.RequestPending
	}

	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Users().Get(payload.SenderID); err != nil {
			return err
		}
		if _, err := uow.Users().Get(payload.ReceiverID); err != nil {
			return err
		}
		sourceID, err := uuid.Parse(payload.Source)
		if err != nil {
			return ledger.NewFieldError(ledger.ErrInvalidInput, "source", payload.Source)
		}
		account, err := uow.BankAccounts().Get(sourceID)
		if err != nil {
			return err
		}
		// A closed account cannot fund anything; without this check a later
		// reconciliation could fail after the transaction is already written.
		if account.IsDeleted {
			return ledger.NewFieldError(ledger.ErrNotFound, "source", payload.Source)
		}
		if account.UserID != payload.SenderID {
			return ledger.NewFieldError(ledger.ErrForbidden, "source", payload.Source)
		}

		if err := uow.Transactions().Create(txn); err != nil {
			return err
		}
		if kind == ledger.KindPayment {
			if err := s.balance.Apply(uow, txn); err != nil {
				return err
			}
			if err := s.balance.Reconcile(uow, txn.SenderID, txn.ID); err != nil {
				return err
			}
		}
		notifyType := ledger.NotifyPayment
		if kind == ledger.KindRequest {
			notifyType = ledger.NotifyRequest
		}
		return uow.Notifications().Create(ledger.Notification{
			ID:            uuid.New(),
			UserID:        txn.ReceiverID,
			TransactionID: txn.ID,
			Type:          notifyType,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return ledger.Transaction{}, err
	}

	if kind == ledger.KindRequest {
		s.emit(ctx, events.RequestCreated{Transaction: txn})
	} else {
		s.emit(ctx, events.PaymentCreated{Transaction: txn})
	}
	s.logger.Info("transaction created", "kind", kind, "transaction_id", txn.ID, "amount", txn.Amount)
	return txn, nil
}

func (s *Service) createTransferDeposit(ctx context.Context, payload dto.TransactionCreate) (ledger.Transaction, error) {
	if payload.Source != "" || payload.SenderID != payload.ReceiverID {
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrInvalidInput, "source", payload.Source)
	}
	now := time.Now()
	txn := ledger.Transaction{
		ID:           uuid.New(),
		SenderID:     payload.SenderID,
		ReceiverID:   payload.ReceiverID,
		Amount:       payload.Amount,
		Description:  payload.Description,
		PrivacyLevel: payload.PrivacyLevel,
		Status:       ledger.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var transfer ledger.BankTransfer
	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		// The funds check runs before anything is written, so a rejected
		// deposit leaves the store untouched.
		u, err := uow.Users().Get(payload.SenderID)
		if err != nil {
			return err
		}
		if payload.Amount > u.Balance {
			return ledger.NewFieldError(ledger.ErrInsufficientFunds, "amount", "")
		}
		if err := uow.Transactions().Create(txn); err != nil {
			return err
		}
		transfer, err = s.balance.Deposit(uow, payload.SenderID, txn.ID, payload.Amount)
		return err
	})
	if err != nil {
		return ledger.Transaction{}, err
	}

	s.emit(ctx, events.TransferDeposited{Transaction: txn, Transfer: transfer})
	s.logger.Info("balance transferred to bank", "transaction_id", txn.ID, "amount", txn.Amount)
	return txn, nil
}

// Update applies a partial patch to a transaction. Callers may change only
// the request status, the settlement status and the description. Resolving
// a request is restricted to its receiver and is terminal.
func (s *Service) Update(ctx context.Context, callerID, transactionID uuid.UUID, patch dto.TransactionUpdate) (ledger.Transaction, error) {
	if patch.RequestStatus != nil && patch.Status != nil {
		// Resolution alone determines the settlement status.
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrInvalidInput, "status", "conflicts with requestStatus")
	}
	var (
		updated  ledger.Transaction
		resolved ledger.RequestStatus
	)
	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		txn, err := uow.Transactions().Get(transactionID)
		if err != nil {
			return err
		}
		if callerID != txn.SenderID && callerID != txn.ReceiverID {
			return ledger.NewFieldError(ledger.ErrForbidden, "transaction", transactionID.String())
		}

		repoPatch := repository.TransactionPatch{Description: patch.Description}

		if patch.RequestStatus != nil {
			if !txn.IsRequest() {
				return ledger.NewFieldError(ledger.ErrInvalidInput, "requestStatus", string(*patch.RequestStatus))
			}
			if txn.Resolved() {
				return ledger.NewFieldError(ledger.ErrInvalidInput, "requestStatus", "already resolved")
			}
			if callerID != txn.ReceiverID {
				return ledger.NewFieldError(ledger.ErrForbidden, "requestStatus", string(*patch.RequestStatus))
			}
			now := time.Now()
			switch *patch.RequestStatus {
			case ledger.RequestAccepted:
				// A shortfall on acceptance is covered from the payer's bank
				// account; verify one exists before anything is written.
				payer, err := uow.Users().Get(txn.ReceiverID)
				if err != nil {
					return err
				}
				if payer.Balance < txn.Amount && len(uow.BankAccounts().ByUserID(txn.ReceiverID)) == 0 {
					return ledger.NewFieldError(ledger.ErrNotFound, "bankAccount", txn.ReceiverID.String())
				}
				status := ledger.StatusComplete
				repoPatch.Status = &status
				repoPatch.RequestStatus = patch.RequestStatus
				repoPatch.RequestResolvedAt = &now
			case ledger.RequestRejected:
				repoPatch.RequestStatus = patch.RequestStatus
				repoPatch.RequestResolvedAt = &now
			default:
				return ledger.NewFieldError(ledger.ErrInvalidInput, "requestStatus", string(*patch.RequestStatus))
			}
			resolved = *patch.RequestStatus
		} else if patch.Status != nil {
			if txn.IsRequest() {
				// Settlement of a request happens only through acceptance.
				return ledger.NewFieldError(ledger.ErrInvalidInput, "status", string(*patch.Status))
			}
			if *patch.Status != ledger.StatusPending && *patch.Status != ledger.StatusComplete {
				return ledger.NewFieldError(ledger.ErrInvalidInput, "status", string(*patch.Status))
			}
			repoPatch.Status = patch.Status
		}

		updated, err = uow.Transactions().Update(transactionID, repoPatch)
		if err != nil {
			return err
		}

		if resolved == ledger.RequestAccepted {
			// Funds move from the requester's counterpart now.
			if err := s.balance.Apply(uow, updated); err != nil {
				return err
			}
			if err := s.balance.Reconcile(uow, updated.ReceiverID, updated.ID); err != nil {
				return err
			}
			if err := uow.Notifications().Create(ledger.Notification{
				ID:            uuid.New(),
				UserID:        updated.SenderID,
				TransactionID: updated.ID,
				Type:          ledger.NotifyRequestAccepted,
				CreatedAt:     time.Now(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ledger.Transaction{}, err
	}

	if resolved != "" {
		s.emit(ctx, events.RequestResolved{Transaction: updated, Status: resolved})
		s.logger.Info("request resolved", "transaction_id", updated.ID, "request_status", resolved)
	}
	return updated, nil
}

// Get returns a single transaction by id.
func (s *Service) Get(transactionID uuid.UUID) (ledger.Transaction, error) {
	return s.store.Transactions().Get(transactionID)
}

func (s *Service) emit(ctx context.Context, e events.Event) {
	if err := s.bus.Emit(ctx, e); err != nil {
		s.logger.Error("emit failed", "event_type", e.Type(), "error", err)
	}
}
