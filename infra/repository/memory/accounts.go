package memory

import (
	"slices"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

type bankAccounts struct{ view }

func (r *bankAccounts) List() []ledger.BankAccount {
	defer r.rlock()()
	return slices.Clone(r.data().bankAccounts)
}

func (r *bankAccounts) Get(id uuid.UUID) (ledger.BankAccount, error) {
	defer r.rlock()()
	d := r.data()
	i, ok := d.bankAccountIdx[id]
	if !ok {
		return ledger.BankAccount{}, ledger.NewFieldError(ledger.ErrNotFound, "bankAccount", id.String())
	}
	return d.bankAccounts[i], nil
}

func (r *bankAccounts) ByUserID(userID uuid.UUID) []ledger.BankAccount {
	defer r.rlock()()
	var out []ledger.BankAccount
	for _, a := range r.data().bankAccounts {
		if a.UserID == userID && !a.IsDeleted {
			out = append(out, a)
		}
	}
	return out
}

func (r *bankAccounts) Create(a ledger.BankAccount) error {
	defer r.lock()()
	d := r.data()
	if _, ok := d.bankAccountIdx[a.ID]; ok {
		return ledger.NewFieldError(ledger.ErrInvalidInput, "bankAccount", a.ID.String())
	}
	d.bankAccountIdx[a.ID] = len(d.bankAccounts)
	d.bankAccounts = append(d.bankAccounts, a)
	return nil
}

func (r *bankAccounts) SoftDelete(id uuid.UUID) error {
	defer r.lock()()
	d := r.data()
	i, ok := d.bankAccountIdx[id]
	if !ok {
		return ledger.NewFieldError(ledger.ErrNotFound, "bankAccount", id.String())
	}
	d.bankAccounts[i].IsDeleted = true
	d.bankAccounts[i].UpdatedAt = time.Now()
	return nil
}
