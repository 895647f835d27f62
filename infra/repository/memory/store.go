// Package memory implements the entity store as a single-process,
// memory-resident dataset. Every collection is kept in insertion order with
// an id index alongside for O(1) lookup; all reads hand out copies.
//
// Concurrency follows a coarse discipline: one RWMutex guards the whole
// dataset. Plain repository calls lock per call; Store.Do takes the write
// lock once for a whole multi-entity mutation, so a concurrent reader never
// observes a transaction without its bank transfer or notification.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

type likeKey struct {
	transactionID uuid.UUID
	userID        uuid.UUID
}

type dataset struct {
	users           []ledger.User
	userIdx         map[uuid.UUID]int
	contacts        []ledger.Contact
	bankAccounts    []ledger.BankAccount
	bankAccountIdx  map[uuid.UUID]int
	transactions    []ledger.Transaction
	transactionIdx  map[uuid.UUID]int
	bankTransfers   []ledger.BankTransfer
	likes           []ledger.Like
	likeSet         map[likeKey]struct{}
	comments        []ledger.Comment
	notifications   []ledger.Notification
	notificationIdx map[uuid.UUID]int
}

func newDataset() *dataset {
	return &dataset{
		userIdx:         make(map[uuid.UUID]int),
		bankAccountIdx:  make(map[uuid.UUID]int),
		transactionIdx:  make(map[uuid.UUID]int),
		likeSet:         make(map[likeKey]struct{}),
		notificationIdx: make(map[uuid.UUID]int),
	}
}

// Store is the in-memory entity store. It satisfies repository.Store.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// New returns an empty store. Populate it with Reseed.
func New() *Store {
	return &Store{data: newDataset()}
}

// NewSeeded returns a store loaded from the given snapshot.
func NewSeeded(snapshot *dto.Snapshot) *Store {
	s := New()
	s.Reseed(snapshot)
	return s
}

// view is embedded by every repository and carries whether the caller is
// already inside Do and therefore holds the store lock.
type view struct {
	s    *Store
	inTx bool
}

func (v view) rlock() func() {
	if v.inTx {
		return func() {}
	}
	v.s.mu.RLock()
	return v.s.mu.RUnlock
}

func (v view) lock() func() {
	if v.inTx {
		return func() {}
	}
	v.s.mu.Lock()
	return v.s.mu.Unlock
}

func (v view) data() *dataset { return v.s.data }

type uow struct {
	s    *Store
	inTx bool
}

func (u uow) Users() repository.UserRepository                 { return &users{view{u.s, u.inTx}} }
func (u uow) Contacts() repository.ContactRepository           { return &contacts{view{u.s, u.inTx}} }
func (u uow) BankAccounts() repository.BankAccountRepository   { return &bankAccounts{view{u.s, u.inTx}} }
func (u uow) Transactions() repository.TransactionRepository   { return &transactions{view{u.s, u.inTx}} }
func (u uow) BankTransfers() repository.BankTransferRepository { return &bankTransfers{view{u.s, u.inTx}} }
func (u uow) Likes() repository.LikeRepository                 { return &likes{view{u.s, u.inTx}} }
func (u uow) Comments() repository.CommentRepository           { return &comments{view{u.s, u.inTx}} }
func (u uow) Notifications() repository.NotificationRepository {
	return &notifications{view{u.s, u.inTx}}
}

func (s *Store) Users() repository.UserRepository                 { return uow{s: s}.Users() }
func (s *Store) Contacts() repository.ContactRepository           { return uow{s: s}.Contacts() }
func (s *Store) BankAccounts() repository.BankAccountRepository   { return uow{s: s}.BankAccounts() }
func (s *Store) Transactions() repository.TransactionRepository   { return uow{s: s}.Transactions() }
func (s *Store) BankTransfers() repository.BankTransferRepository { return uow{s: s}.BankTransfers() }
func (s *Store) Likes() repository.LikeRepository                 { return uow{s: s}.Likes() }
func (s *Store) Comments() repository.CommentRepository           { return uow{s: s}.Comments() }
func (s *Store) Notifications() repository.NotificationRepository { return uow{s: s}.Notifications() }

// Do runs fn with exclusive access to the whole store. A caller-supplied
// cancellation is honored before the closure starts, never mid-mutation;
// operations complete in bounded time and perform no I/O.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(uow{s: s, inTx: true})
}

// Reseed replaces the working set with the snapshot contents. The snapshot
// slices are copied, so no reference into the caller's data survives.
func (s *Store) Reseed(snapshot *dto.Snapshot) {
	d := newDataset()
	d.users = slices.Clone(snapshot.Users)
	for i, u := range d.users {
		d.userIdx[u.ID] = i
	}
	d.contacts = slices.Clone(snapshot.Contacts)
	d.bankAccounts = slices.Clone(snapshot.BankAccounts)
	for i, a := range d.bankAccounts {
		d.bankAccountIdx[a.ID] = i
	}
	d.transactions = slices.Clone(snapshot.Transactions)
	for i, t := range d.transactions {
		d.transactionIdx[t.ID] = i
	}
	d.bankTransfers = slices.Clone(snapshot.BankTransfers)
	d.likes = slices.Clone(snapshot.Likes)
	for _, l := range d.likes {
		d.likeSet[likeKey{l.TransactionID, l.UserID}] = struct{}{}
	}
	d.comments = slices.Clone(snapshot.Comments)
	d.notifications = slices.Clone(snapshot.Notifications)
	for i, n := range d.notifications {
		d.notificationIdx[n.ID] = i
	}

	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
}

// Snapshot exports a deep copy of the current working set.
func (s *Store) Snapshot() *dto.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.data
	return &dto.Snapshot{
		Users:         slices.Clone(d.users),
		Contacts:      slices.Clone(d.contacts),
		BankAccounts:  slices.Clone(d.bankAccounts),
		Transactions:  slices.Clone(d.transactions),
		BankTransfers: slices.Clone(d.bankTransfers),
		Likes:         slices.Clone(d.likes),
		Comments:      slices.Clone(d.comments),
		Notifications: slices.Clone(d.notifications),
	}
}

var _ repository.Store = (*Store)(nil)
