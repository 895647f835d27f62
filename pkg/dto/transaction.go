// Package dto holds the plain data structures exchanged between the ledger
// core and its callers: create/patch payloads, query filters, decorated feed
// views and the seed snapshot format.
package dto

import (
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

// TransactionCreate is the payload for creating a payment, request or
// balance transfer. Source is the funding bank account id; it is empty only
// for a balance transfer, where SenderID and ReceiverID are the same user.
type TransactionCreate struct {
	SenderID     uuid.UUID           `json:"senderId" validate:"required"`
	ReceiverID   uuid.UUID           `json:"receiverId" validate:"required"`
	Source       string              `json:"source"`
	Amount       int64               `json:"amount" validate:"required,gt=0"`
	Description  string              `json:"description"`
	PrivacyLevel ledger.PrivacyLevel `json:"privacyLevel" validate:"required,oneof=public contacts private"`
}

// TransactionUpdate is a partial patch of a transaction. Only the request
// status, settlement status and description may be changed by callers.
type TransactionUpdate struct {
	RequestStatus *ledger.RequestStatus     `json:"requestStatus,omitempty"`
	Status        *ledger.TransactionStatus `json:"status,omitempty"`
	Description   *string                   `json:"description,omitempty"`
}

// StatusFilter narrows a feed by settlement status. FilterIncomplete matches
// any transaction whose status is not complete.
type StatusFilter string

const (
	FilterComplete   StatusFilter = "complete"
	FilterIncomplete StatusFilter = "incomplete"
	FilterPending    StatusFilter = "pending"
)

// TransactionFilter is the optional predicate set applied to feed queries.
// Zero-valued fields do not filter.
type TransactionFilter struct {
	Status         StatusFilter
	Privacy        ledger.PrivacyLevel
	DateRangeStart time.Time
	DateRangeEnd   time.Time
	AmountMin      int64
	AmountMax      int64
}

// Matches reports whether the transaction satisfies every set predicate.
func (f TransactionFilter) Matches(t ledger.Transaction) bool {
	switch f.Status {
	case FilterComplete:
		if t.Status != ledger.StatusComplete {
			return false
		}
	case FilterIncomplete:
		if t.Status == ledger.StatusComplete {
			return false
		}
	case FilterPending:
		if t.Status != ledger.StatusPending {
			return false
		}
	}
	if f.Privacy != "" && t.PrivacyLevel != f.Privacy {
		return false
	}
	if !f.DateRangeStart.IsZero() && t.CreatedAt.Before(f.DateRangeStart) {
		return false
	}
	if !f.DateRangeEnd.IsZero() && t.CreatedAt.After(f.DateRangeEnd) {
		return false
	}
	if f.AmountMin > 0 && t.Amount < f.AmountMin {
		return false
	}
	if f.AmountMax > 0 && t.Amount > f.AmountMax {
		return false
	}
	return true
}

// TransactionView is a feed item: the transaction decorated with display
// names and like/comment aggregates. The decoration is computed at the feed
// boundary and never stored on the transaction record.
type TransactionView struct {
	ledger.Transaction
	SenderName   string `json:"senderName"`
	ReceiverName string `json:"receiverName"`
	Likes        int    `json:"likes"`
	Comments     int    `json:"comments"`
}
