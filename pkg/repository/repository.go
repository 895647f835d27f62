// Package repository defines the entity-store contracts consumed by the
// ledger services. The store is memory-resident and rebuilt from a seed
// snapshot; implementations must return copies so no caller can mutate
// internal collections, and must keep id lookups O(1) alongside
// insertion-order listing.
package repository

import (
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/google/uuid"
)

// UserRepository stores account holders. The balance engine is the only
// component allowed to call SetBalance.
type UserRepository interface {
	List() []ledger.User
	Get(id uuid.UUID) (ledger.User, error)
	Create(u ledger.User) error
	SetBalance(id uuid.UUID, balance int64) error
}

// ContactRepository stores the directed social-graph edges.
type ContactRepository interface {
	List() []ledger.Contact
	ByUserID(userID uuid.UUID) []ledger.Contact
	Create(c ledger.Contact) error
}

// BankAccountRepository stores linked funding accounts.
type BankAccountRepository interface {
	List() []ledger.BankAccount
	Get(id uuid.UUID) (ledger.BankAccount, error)
	ByUserID(userID uuid.UUID) []ledger.BankAccount
	Create(a ledger.BankAccount) error
	SoftDelete(id uuid.UUID) error
}

// TransactionPatch is the partial update applied to a stored transaction.
// Nil fields are left untouched.
type TransactionPatch struct {
	Status            *ledger.TransactionStatus
	RequestStatus     *ledger.RequestStatus
	RequestResolvedAt *time.Time
	Description       *string
}

// TransactionRepository stores the monetary events.
type TransactionRepository interface {
	List() []ledger.Transaction
	Get(id uuid.UUID) (ledger.Transaction, error)
	ByParticipant(userID uuid.UUID) []ledger.Transaction
	Create(t ledger.Transaction) error
	Update(id uuid.UUID, patch TransactionPatch) (ledger.Transaction, error)
}

// BankTransferRepository stores balance/bank movements.
type BankTransferRepository interface {
	List() []ledger.BankTransfer
	ByUserID(userID uuid.UUID) []ledger.BankTransfer
	ByTransactionID(transactionID uuid.UUID) []ledger.BankTransfer
	Create(t ledger.BankTransfer) error
}

// LikeRepository stores likes, unique per (transaction, user).
type LikeRepository interface {
	List() []ledger.Like
	ByTransactionID(transactionID uuid.UUID) []ledger.Like
	Exists(transactionID, userID uuid.UUID) bool
	Create(l ledger.Like) error
	Delete(transactionID, userID uuid.UUID) error
	CountByTransactionID(transactionID uuid.UUID) int
}

// CommentRepository stores comments ordered by creation time.
type CommentRepository interface {
	List() []ledger.Comment
	ByTransactionID(transactionID uuid.UUID) []ledger.Comment
	Create(c ledger.Comment) error
	CountByTransactionID(transactionID uuid.UUID) int
}

// NotificationRepository stores per-user notifications.
type NotificationRepository interface {
	List() []ledger.Notification
	Get(id uuid.UUID) (ledger.Notification, error)
	ByUserID(userID uuid.UUID) []ledger.Notification
	Create(n ledger.Notification) error
	MarkRead(id uuid.UUID) (ledger.Notification, error)
}
