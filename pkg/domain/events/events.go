// Package events defines the domain events published on the event bus after
// a ledger mutation commits. Subscribers receive them synchronously; the
// mutation itself, including any notification rows, is already recorded by
// the time an event is observed.
package events

import (
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

// Event is the marker interface for all domain events.
type Event interface {
	Type() string
}

// PaymentCreated is published when a payment transaction is recorded.
type PaymentCreated struct {
	Transaction ledger.Transaction
}

func (PaymentCreated) Type() string { return "PaymentCreated" }

// RequestCreated is published when a request transaction is recorded.
type RequestCreated struct {
	Transaction ledger.Transaction
}

func (RequestCreated) Type() string { return "RequestCreated" }

// RequestResolved is published when a request is accepted or rejected.
type RequestResolved struct {
	Transaction ledger.Transaction
	Status      ledger.RequestStatus
}

func (RequestResolved) Type() string { return "RequestResolved" }

// TransferDeposited is published when app balance is moved to the bank.
type TransferDeposited struct {
	Transaction ledger.Transaction
	Transfer    ledger.BankTransfer
}

func (TransferDeposited) Type() string { return "TransferDeposited" }

// TransactionLiked is published when a like is recorded. Duplicate likes do
// not publish.
type TransactionLiked struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

func (TransactionLiked) Type() string { return "TransactionLiked" }

// CommentAdded is published when a comment is recorded.
type CommentAdded struct {
	Comment ledger.Comment
}

func (CommentAdded) Type() string { return "CommentAdded" }
