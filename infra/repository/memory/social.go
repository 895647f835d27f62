package memory

import (
	"slices"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

type likes struct{ view }

func (r *likes) List() []ledger.Like {
	defer r.rlock()()
	return slices.Clone(r.data().likes)
}

func (r *likes) ByTransactionID(transactionID uuid.UUID) []ledger.Like {
	defer r.rlock()()
	var out []ledger.Like
	for _, l := range r.data().likes {
		if l.TransactionID == transactionID {
			out = append(out, l)
		}
	}
	return out
}

func (r *likes) Exists(transactionID, userID uuid.UUID) bool {
	defer r.rlock()()
	_, ok := r.data().likeSet[likeKey{transactionID, userID}]
	return ok
}

func (r *likes) Create(l ledger.Like) error {
	defer r.lock()()
	d := r.data()
	key := likeKey{l.TransactionID, l.UserID}
	if _, ok := d.likeSet[key]; ok {
		return ledger.NewFieldError(ledger.ErrInvalidInput, "like", l.TransactionID.String())
	}
	d.likeSet[key] = struct{}{}
	d.likes = append(d.likes, l)
	return nil
}

func (r *likes) Delete(transactionID, userID uuid.UUID) error {
	defer r.lock()()
	d := r.data()
	key := likeKey{transactionID, userID}
	if _, ok := d.likeSet[key]; !ok {
		return ledger.NewFieldError(ledger.ErrNotFound, "like", transactionID.String())
	}
	delete(d.likeSet, key)
	d.likes = slices.DeleteFunc(d.likes, func(l ledger.Like) bool {
		return l.TransactionID == transactionID && l.UserID == userID
	})
	return nil
}

func (r *likes) CountByTransactionID(transactionID uuid.UUID) int {
	defer r.rlock()()
	n := 0
	for _, l := range r.data().likes {
		if l.TransactionID == transactionID {
			n++
		}
	}
	return n
}

type comments struct{ view }

func (r *comments) List() []ledger.Comment {
	defer r.rlock()()
	return slices.Clone(r.data().comments)
}

func (r *comments) ByTransactionID(transactionID uuid.UUID) []ledger.Comment {
	defer r.rlock()()
	var out []ledger.Comment
	for _, c := range r.data().comments {
		if c.TransactionID == transactionID {
			out = append(out, c)
		}
	}
	return out
}

func (r *comments) Create(c ledger.Comment) error {
	defer r.lock()()
	d := r.data()
	d.comments = append(d.comments, c)
	return nil
}

func (r *comments) CountByTransactionID(transactionID uuid.UUID) int {
	defer r.rlock()()
	n := 0
	for _, c := range r.data().comments {
		if c.TransactionID == transactionID {
			n++
		}
	}
	return n
}

type notifications struct{ view }

func (r *notifications) List() []ledger.Notification {
	defer r.rlock()()
	return slices.Clone(r.data().notifications)
}

func (r *notifications) Get(id uuid.UUID) (ledger.Notification, error) {
	defer r.rlock()()
	d := r.data()
	i, ok := d.notificationIdx[id]
	if !ok {
		return ledger.Notification{}, ledger.NewFieldError(ledger.ErrNotFound, "notification", id.String())
	}
	return d.notifications[i], nil
}

func (r *notifications) ByUserID(userID uuid.UUID) []ledger.Notification {
	defer r.rlock()()
	var out []ledger.Notification
	for _, n := range r.data().notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (r *notifications) Create(n ledger.Notification) error {
	defer r.lock()()
	d := r.data()
	if _, ok := d.notificationIdx[n.ID]; ok {
		return ledger.NewFieldError(ledger.ErrInvalidInput, "notification", n.ID.String())
	}
	d.notificationIdx[n.ID] = len(d.notifications)
	d.notifications = append(d.notifications, n)
	return nil
}

func (r *notifications) MarkRead(id uuid.UUID) (ledger.Notification, error) {
	defer r.lock()()
	d := r.data()
	i, ok := d.notificationIdx[id]
	if !ok {
		return ledger.Notification{}, ledger.NewFieldError(ledger.ErrNotFound, "notification", id.String())
	}
	d.notifications[i].IsRead = true
	return d.notifications[i], nil
}
