package fixtures_test

import (
	"testing"

	"github.com/amirasaad/peerpay/internal/fixtures"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/service/balance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShape(t *testing.T) {
	snap := fixtures.Seed()

	assert.Len(t, snap.Users, 5)
	assert.Len(t, snap.Contacts, 8, "four mutual pairs stored as directed rows")
	assert.Len(t, snap.BankAccounts, 5)
	assert.Len(t, snap.Transactions, 30)

	var public int
	for _, txn := range snap.Transactions {
		if txn.PrivacyLevel == ledger.PrivacyPublic {
			public++
		}
	}
	assert.Equal(t, 10, public)
}

func TestSeedBalancesMatchHistory(t *testing.T) {
	snap := fixtures.Seed()
	for _, u := range snap.Users {
		assert.Equal(t, balance.Fold(u.ID, snap.Transactions, snap.BankTransfers), u.Balance, u.Username)
	}
	assert.Equal(t, int64(55000), snap.Users[0].Balance)
}

func TestSeedReferentialIntegrity(t *testing.T) {
	snap := fixtures.Seed()

	users := make(map[uuid.UUID]struct{}, len(snap.Users))
	for _, u := range snap.Users {
		users[u.ID] = struct{}{}
	}
	accounts := make(map[uuid.UUID]uuid.UUID, len(snap.BankAccounts))
	for _, a := range snap.BankAccounts {
		accounts[a.ID] = a.UserID
	}
	txns := make(map[uuid.UUID]struct{}, len(snap.Transactions))

	for _, txn := range snap.Transactions {
		_, senderOK := users[txn.SenderID]
		_, receiverOK := users[txn.ReceiverID]
		require.True(t, senderOK, "sender of %q", txn.Description)
		require.True(t, receiverOK, "receiver of %q", txn.Description)

		sourceID, err := uuid.Parse(txn.Source)
		require.NoError(t, err, "source of %q", txn.Description)
		require.Equal(t, txn.SenderID, accounts[sourceID], "source account owner of %q", txn.Description)

		txns[txn.ID] = struct{}{}
	}
	for _, c := range snap.Contacts {
		_, ownerOK := users[c.UserID]
		_, contactOK := users[c.ContactUserID]
		require.True(t, ownerOK)
		require.True(t, contactOK)
	}
	for _, l := range snap.Likes {
		_, ok := txns[l.TransactionID]
		require.True(t, ok)
	}
	for _, c := range snap.Comments {
		_, ok := txns[c.TransactionID]
		require.True(t, ok)
	}
	for _, n := range snap.Notifications {
		_, ok := txns[n.TransactionID]
		require.True(t, ok)
		_, ok = users[n.UserID]
		require.True(t, ok)
	}
}

func TestSeedRequestInvariants(t *testing.T) {
	snap := fixtures.Seed()
	for _, txn := range snap.Transactions {
		if txn.RequestStatus == "" {
			assert.True(t, txn.RequestResolvedAt.IsZero(), "%q is not a request", txn.Description)
			continue
		}
		switch txn.RequestStatus {
		case ledger.RequestPending:
			assert.Equal(t, ledger.StatusPending, txn.Status, txn.Description)
			assert.True(t, txn.RequestResolvedAt.IsZero(), txn.Description)
		case ledger.RequestAccepted:
			assert.Equal(t, ledger.StatusComplete, txn.Status, txn.Description)
			assert.False(t, txn.RequestResolvedAt.IsZero(), txn.Description)
		case ledger.RequestRejected:
			assert.False(t, txn.RequestResolvedAt.IsZero(), txn.Description)
		}
	}
}

func TestSeedIsFreshPerCall(t *testing.T) {
	a, b := fixtures.Seed(), fixtures.Seed()
	require.Len(t, b.Users, len(a.Users))
	assert.NotEqual(t, a.Users[0].ID, b.Users[0].ID, "ids are regenerated on every call")
	assert.Equal(t, a.Users[0].Balance, b.Users[0].Balance, "amounts and ordering stay fixed")
}
