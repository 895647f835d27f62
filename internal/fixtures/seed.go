// Package fixtures builds the canonical demo snapshot used by tests and the
// CLI. The dataset is fixed, not generated: five users, mutual contact
// pairs, one bank account each, thirty transactions of which ten are
// publicly visible, plus a sprinkling of likes, comments and notifications.
//
// The composition is deliberate. For the first seeded user: the personal
// feed holds six transactions (the newest complete one received, the oldest
// sent), the contacts feed holds seventeen of which three are incomplete
// and seven public, the non-contact public remainder is three, and the
// cached balance folds out to exactly 55000 cents.
package fixtures

import (
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/service/balance"
	"github.com/google/uuid"
)

var seedBase = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func at(hours int) time.Time { return seedBase.Add(time.Duration(hours) * time.Hour) }

type txnSpec struct {
	sender   int
	receiver int
	amount   int64
	privacy  ledger.PrivacyLevel
	status   ledger.TransactionStatus
	request  ledger.RequestStatus
	resolved bool
	hour     int
	desc     string
}

// Seed builds a fresh snapshot. Ids are new on every call; ordering and
// amounts are fixed.
func Seed() *dto.Snapshot {
	names := [][2]string{
		{"Edgar", "Johnston"},
		{"Arely", "Kertzmann"},
		{"Darrel", "Ortiz"},
		{"Giovanna", "Rowe"},
		{"Kaylin", "Homenick"},
	}
	usernames := []string{"edgar_j", "arely_k", "darrel_o", "giovanna_r", "kaylin_h"}

	snap := &dto.Snapshot{}
	userIDs := make([]uuid.UUID, len(names))
	for i, n := range names {
		userIDs[i] = uuid.New()
		snap.Users = append(snap.Users, ledger.User{
			ID:        userIDs[i],
			FirstName: n[0],
			LastName:  n[1],
			Username:  usernames[i],
			CreatedAt: seedBase,
			UpdatedAt: seedBase,
		})
	}

	// Mutual pairs stored as two directed rows. User 0's contact set is
	// exactly {1, 2}.
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}} {
		a, b := userIDs[pair[0]], userIDs[pair[1]]
		snap.Contacts = append(snap.Contacts,
			ledger.Contact{ID: uuid.New(), UserID: a, ContactUserID: b, CreatedAt: seedBase},
			ledger.Contact{ID: uuid.New(), UserID: b, ContactUserID: a, CreatedAt: seedBase},
		)
	}

	for i, id := range userIDs {
		snap.BankAccounts = append(snap.BankAccounts, ledger.BankAccount{
			ID:            uuid.New(),
			UserID:        id,
			BankName:      "First Example Bank",
			AccountNumber: "9:" + usernames[i],
			RoutingNumber: "110000000",
			CreatedAt:     seedBase,
			UpdatedAt:     seedBase,
		})
	}

	specs := []txnSpec{
		// Personal feed of user 0: six transactions. The fold over these is
		// -5000 - 10000 + 25000 + 45000 = 55000 cents.
		{0, 1, 5000, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 1, "Lunch"},
		{0, 2, 10000, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 5, "Concert tickets"},
		{1, 0, 25000, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 12, "Rent share"},
		{0, 1, 7500, ledger.PrivacyPrivate, ledger.StatusPending, ledger.RequestPending, false, 18, "Gas money"},
		{2, 0, 3000, ledger.PrivacyPrivate, ledger.StatusPending, ledger.RequestRejected, true, 25, "Coffee run"},
		{1, 0, 45000, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 29, "Car repair split"},

		// Contacts feed of user 0: seventeen transactions among users 1/2
		// and 3/4, seven public and ten contacts-visible, three incomplete.
		{1, 3, 2000, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 2, "Brunch"},
		{3, 1, 1500, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 3, "Movie night"},
		{2, 4, 4200, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 4, "Groceries"},
		{4, 2, 900, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 6, "Parking"},
		{1, 2, 3300, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 7, "Birthday gift"},
		{2, 1, 6100, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 8, "Dinner"},
		{1, 4, 2700, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 9, "Tickets"},
		{3, 2, 5400, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 10, "Utilities"},
		{2, 3, 1800, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 11, "Snacks"},
		{4, 1, 7200, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 13, "Road trip"},
		{1, 3, 2500, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 14, "Books"},
		{2, 4, 3900, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 15, "Takeout"},
		{4, 2, 1100, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 16, "Laundry"},
		{3, 1, 8000, ledger.PrivacyContacts, ledger.StatusComplete, "", false, 17, "Festival"},
		{1, 4, 4600, ledger.PrivacyContacts, ledger.StatusPending, "", false, 19, "Hotel split"},
		{1, 3, 2900, ledger.PrivacyContacts, ledger.StatusPending, ledger.RequestPending, false, 20, "Taxi fare"},
		{2, 4, 3500, ledger.PrivacyContacts, ledger.StatusPending, ledger.RequestPending, false, 21, "Museum"},

		// Public transactions outside user 0's contact graph.
		{3, 4, 6600, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 22, "Climbing gym"},
		{4, 3, 1200, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 23, "Ice cream"},
		{3, 4, 8800, ledger.PrivacyPublic, ledger.StatusComplete, "", false, 24, "Surf lessons"},

		// Private remainder among users 1..4.
		{1, 2, 2300, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 26, "Poker night"},
		{3, 4, 5100, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 27, "Camping gear"},
		{4, 3, 1700, ledger.PrivacyPrivate, ledger.StatusPending, ledger.RequestPending, false, 28, "Pizza"},
		{2, 3, 4400, ledger.PrivacyPrivate, ledger.StatusComplete, "", false, 30, "Haircut"},
	}

	accountOf := func(userIdx int) string { return snap.BankAccounts[userIdx].ID.String() }
	for _, spec := range specs {
		t := ledger.Transaction{
			ID:            uuid.New(),
			SenderID:      userIDs[spec.sender],
			ReceiverID:    userIDs[spec.receiver],
			Source:        accountOf(spec.sender),
			Amount:        spec.amount,
			Description:   spec.desc,
			PrivacyLevel:  spec.privacy,
			Status:        spec.status,
			RequestStatus: spec.request,
			CreatedAt:     at(spec.hour),
			UpdatedAt:     at(spec.hour),
		}
		if spec.resolved {
			t.RequestResolvedAt = at(spec.hour).Add(30 * time.Minute)
		}
		snap.Transactions = append(snap.Transactions, t)
	}

	// Social annotations on a few early transactions.
	brunch := snap.Transactions[6]
	rent := snap.Transactions[2]
	snap.Likes = append(snap.Likes,
		ledger.Like{ID: uuid.New(), TransactionID: brunch.ID, UserID: userIDs[0], CreatedAt: at(3)},
		ledger.Like{ID: uuid.New(), TransactionID: brunch.ID, UserID: userIDs[4], CreatedAt: at(4)},
		ledger.Like{ID: uuid.New(), TransactionID: rent.ID, UserID: userIDs[2], CreatedAt: at(13)},
	)
	snap.Comments = append(snap.Comments,
		ledger.Comment{ID: uuid.New(), TransactionID: brunch.ID, UserID: userIDs[2], Content: "Looks delicious!", CreatedAt: at(5)},
		ledger.Comment{ID: uuid.New(), TransactionID: rent.ID, UserID: userIDs[1], Content: "Thanks for sorting this out", CreatedAt: at(14)},
	)
	snap.Notifications = append(snap.Notifications,
		ledger.Notification{ID: uuid.New(), UserID: userIDs[1], TransactionID: brunch.ID, Type: ledger.NotifyLike, CreatedAt: at(3)},
		ledger.Notification{ID: uuid.New(), UserID: userIDs[0], TransactionID: rent.ID, Type: ledger.NotifyPayment, CreatedAt: at(12)},
		ledger.Notification{ID: uuid.New(), UserID: userIDs[0], TransactionID: snap.Transactions[3].ID, Type: ledger.NotifyRequest, IsRead: true, CreatedAt: at(18)},
	)

	// Cached balances are derived from the seeded history, so the cache and
	// the fold agree from the first read.
	for i := range snap.Users {
		snap.Users[i].Balance = balance.Fold(snap.Users[i].ID, snap.Transactions, snap.BankTransfers)
	}
	return snap
}
