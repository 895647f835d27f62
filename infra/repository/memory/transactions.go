package memory

import (
	"slices"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

type transactions struct{ view }

func (r *transactions) List() []ledger.Transaction {
	defer r.rlock()()
	return slices.Clone(r.data().transactions)
}

func (r *transactions) Get(id uuid.UUID) (ledger.Transaction, error) {
	defer r.rlock()()
	d := r.data()
	i, ok := d.transactionIdx[id]
	if !ok {
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrNotFound, "transaction", id.String())
	}
	return d.transactions[i], nil
}

func (r *transactions) ByParticipant(userID uuid.UUID) []ledger.Transaction {
	defer r.rlock()()
	var out []ledger.Transaction
	for _, t := range r.data().transactions {
		if t.SenderID == userID || t.ReceiverID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (r *transactions) Create(t ledger.Transaction) error {
	defer r.lock()()
	d := r.data()
	if _, ok := d.transactionIdx[t.ID]; ok {
		return ledger.NewFieldError(ledger.ErrInvalidInput, "transaction", t.ID.String())
	}
	d.transactionIdx[t.ID] = len(d.transactions)
	d.transactions = append(d.transactions, t)
	return nil
}

func (r *transactions) Update(id uuid.UUID, patch repository.TransactionPatch) (ledger.Transaction, error) {
	defer r.lock()()
	d := r.data()
	i, ok := d.transactionIdx[id]
	if !ok {
		return ledger.Transaction{}, ledger.NewFieldError(ledger.ErrNotFound, "transaction", id.String())
	}
	t := &d.transactions[i]
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.RequestStatus != nil {
		t.RequestStatus = *patch.RequestStatus
	}
	if patch.RequestResolvedAt != nil {
		t.RequestResolvedAt = *patch.RequestResolvedAt
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	t.UpdatedAt = time.Now()
	return *t, nil
}

type bankTransfers struct{ view }

func (r *bankTransfers) List() []ledger.BankTransfer {
	defer r.rlock()()
	return slices.Clone(r.data().bankTransfers)
}

func (r *bankTransfers) ByUserID(userID uuid.UUID) []ledger.BankTransfer {
	defer r.rlock()()
	var out []ledger.BankTransfer
	for _, t := range r.data().bankTransfers {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (r *bankTransfers) ByTransactionID(transactionID uuid.UUID) []ledger.BankTransfer {
	defer r.rlock()()
	var out []ledger.BankTransfer
	for _, t := range r.data().bankTransfers {
		if t.TransactionID == transactionID {
			out = append(out, t)
		}
	}
	return out
}

func (r *bankTransfers) Create(t ledger.BankTransfer) error {
	defer r.lock()()
	d := r.data()
	d.bankTransfers = append(d.bankTransfers, t)
	return nil
}
