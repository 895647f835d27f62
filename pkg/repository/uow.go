package repository

import (
	"context"

	"github.com/amirasaad/peerpay/pkg/dto"
)

// UnitOfWork groups the per-entity repositories behind one access point.
type UnitOfWork interface {
	Users() UserRepository
	Contacts() ContactRepository
	BankAccounts() BankAccountRepository
	Transactions() TransactionRepository
	BankTransfers() BankTransferRepository
	Likes() LikeRepository
	Comments() CommentRepository
	Notifications() NotificationRepository
}

// Store is the entity store handed to services. Mutations that touch more
// than one entity run inside Do, which holds exclusive access to the whole
// store for the duration of the closure: either every write in the closure
// becomes visible or, on error, the operation is treated as failed and the
// service must not have written anything observable beforehand. Reads
// outside Do are individually consistent and may run concurrently.
type Store interface {
	UnitOfWork

	// Do runs fn with exclusive access to the store.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Reseed replaces the entire working set with the snapshot contents.
	// The store retains no references into a previously loaded snapshot.
	Reseed(snapshot *dto.Snapshot)

	// Snapshot exports a deep copy of the current working set.
	Snapshot() *dto.Snapshot
}
