package dto

import "github.com/amirasaad/peerpay/pkg/domain/ledger"

// Snapshot is the persisted seed layout: parallel collections for every
// entity kind, each in insertion order. A reseed fully replaces the store's
// working set with the snapshot contents.
type Snapshot struct {
	Users         []ledger.User         `json:"users"`
	Contacts      []ledger.Contact      `json:"contacts"`
	BankAccounts  []ledger.BankAccount  `json:"bankaccounts"`
	Transactions  []ledger.Transaction  `json:"transactions"`
	BankTransfers []ledger.BankTransfer `json:"banktransfers"`
	Likes         []ledger.Like         `json:"likes"`
	Comments      []ledger.Comment      `json:"comments"`
	Notifications []ledger.Notification `json:"notifications"`
}
