package memory

import (
	"slices"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

type users struct{ view }

func (r *users) List() []ledger.User {
	defer r.rlock()()
	return slices.Clone(r.data().users)
}

func (r *users) Get(id uuid.UUID) (ledger.User, error) {
	defer r.rlock()()
	d := r.data()
	i, ok := d.userIdx[id]
	if !ok {
		return ledger.User{}, ledger.NewFieldError(ledger.ErrNotFound, "user", id.String())
	}
	return d.users[i], nil
}

func (r *users) Create(u ledger.User) error {
	defer r.lock()()
	d := r.data()
	if _, ok := d.userIdx[u.ID]; ok {
		return ledger.NewFieldError(ledger.ErrInvalidInput, "user", u.ID.String())
	}
	d.userIdx[u.ID] = len(d.users)
	d.users = append(d.users, u)
	return nil
}

func (r *users) SetBalance(id uuid.UUID, balance int64) error {
	defer r.lock()()
	d := r.data()
	i, ok := d.userIdx[id]
	if !ok {
		return ledger.NewFieldError(ledger.ErrNotFound, "user", id.String())
	}
	d.users[i].Balance = balance
	d.users[i].UpdatedAt = time.Now()
	return nil
}

type contacts struct{ view }

func (r *contacts) List() []ledger.Contact {
	defer r.rlock()()
	return slices.Clone(r.data().contacts)
}

func (r *contacts) ByUserID(userID uuid.UUID) []ledger.Contact {
	defer r.rlock()()
	var out []ledger.Contact
	for _, c := range r.data().contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

func (r *contacts) Create(c ledger.Contact) error {
	defer r.lock()()
	d := r.data()
	d.contacts = append(d.contacts, c)
	return nil
}
