// Package ledger defines the entities of the peer-to-peer payments core:
// users, contacts, bank accounts, transactions, bank transfers, likes,
// comments and notifications, together with the error taxonomy shared by
// every service that operates on them.
//
// All monetary amounts are integer cents. A user's Balance is a cached
// derived value owned exclusively by the balance engine; it is always
// re-derivable from the transaction and bank-transfer history.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Balance is signed cents, maintained as a cache
// by the balance engine inside the same atomic operation that records a
// balance-affecting event.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"modifiedAt"`
}

// FullName is the display name used when decorating feed items.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Contact is one directed edge of the social graph. A mutual contact pair is
// stored as two rows.
type Contact struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	ContactUserID uuid.UUID `json:"contactUserId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BankAccount is a user's linked funding account. Routing and account
// numbers are opaque strings; accounts are soft-deleted, never removed.
type BankAccount struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	RoutingNumber string    `json:"routingNumber"`
	IsDeleted     bool      `json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"modifiedAt"`
}

// Transaction is a monetary event between two users. RequestStatus is
// non-empty iff the transaction was created as a request; Source is the
// funding bank account id, empty for a balance transfer where sender and
// receiver are the same user.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	SenderID          uuid.UUID         `json:"senderId"`
	ReceiverID        uuid.UUID         `json:"receiverId"`
	Source            string            `json:"source"`
	Amount            int64             `json:"amount"`
	Description       string            `json:"description"`
	PrivacyLevel      PrivacyLevel      `json:"privacyLevel"`
	Status            TransactionStatus `json:"status"`
	RequestStatus     RequestStatus     `json:"requestStatus,omitempty"`
	RequestResolvedAt time.Time         `json:"requestResolvedAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"modifiedAt"`
}

// IsRequest reports whether the transaction was created as a request.
func (t Transaction) IsRequest() bool {
	return t.RequestStatus != ""
}

// Resolved reports whether a request transaction has been accepted or
// rejected. Resolution is terminal.
func (t Transaction) Resolved() bool {
	return !t.RequestResolvedAt.IsZero()
}

// MovesFunds reports whether the transaction contributes to balances.
// Payments and balance transfers move funds at creation; a request moves
// funds only once accepted.
func (t Transaction) MovesFunds() bool {
	return !t.IsRequest() || t.Status == StatusComplete
}

// FlowParties returns who pays and who is paid once the transaction moves
// funds. A payment debits its sender; a request, once accepted, debits its
// receiver — the requester's counterpart.
func (t Transaction) FlowParties() (payer, payee uuid.UUID) {
	if t.IsRequest() {
		return t.ReceiverID, t.SenderID
	}
	return t.SenderID, t.ReceiverID
}

// BankTransfer records a movement between a user's app balance and their
// bank account. Transfers are created only by the balance engine, never by
// callers directly.
type BankTransfer struct {
	ID            uuid.UUID        `json:"id"`
	TransactionID uuid.UUID        `json:"transactionId"`
	UserID        uuid.UUID        `json:"userId"`
	Type          BankTransferType `json:"type"`
	Amount        int64            `json:"amount"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Like marks a user's appreciation of a transaction. At most one like per
// user per transaction; a duplicate like is an idempotent no-op.
type Like struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transactionId"`
	UserID        uuid.UUID `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Comment is a user's remark on a transaction, ordered by creation time.
type Comment struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transactionId"`
	UserID        uuid.UUID `json:"userId"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Notification tells a user about activity on a transaction they
// participated in.
type Notification struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"userId"`
	TransactionID uuid.UUID        `json:"transactionId"`
	Type          NotificationType `json:"type"`
	IsRead        bool             `json:"isRead"`
	CreatedAt     time.Time        `json:"createdAt"`
}
