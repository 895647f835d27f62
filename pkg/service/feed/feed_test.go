package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalFeed(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	views, err := a.Feed.ForUser(u.ID, dto.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, views, 6)

	for _, v := range views {
		assert.True(t, v.SenderID == u.ID || v.ReceiverID == u.ID,
			"personal feed must only hold the user's own transactions")
	}

	// Newest first: the latest item is the received car repair split, the
	// oldest is the lunch the user paid for.
	assert.Equal(t, "Car repair split", views[0].Description)
	assert.Equal(t, u.ID, views[0].ReceiverID)
	assert.Equal(t, "Lunch", views[len(views)-1].Description)
	assert.Equal(t, u.ID, views[len(views)-1].SenderID)
}

func TestPersonalFeedUnknownUser(t *testing.T) {
	a := testutils.NewSeededApp(t)
	_, err := a.Feed.ForUser(uuid.New(), dto.TransactionFilter{})
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestContactsFeed(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	views, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, views, 17)

	for _, v := range views {
		assert.NotEqual(t, u.ID, v.SenderID, "own transactions belong to the personal feed")
		assert.NotEqual(t, u.ID, v.ReceiverID, "own transactions belong to the personal feed")
		assert.NotEqual(t, ledger.PrivacyPrivate, v.PrivacyLevel)
	}
}

func TestContactsFeedStatusFilter(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	incomplete, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{Status: dto.FilterIncomplete})
	require.NoError(t, err)
	assert.Len(t, incomplete, 3)

	complete, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{Status: dto.FilterComplete})
	require.NoError(t, err)
	assert.Len(t, complete, 14)
}

func TestContactsFeedAmountAndDateFilters(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	all, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{})
	require.NoError(t, err)

	filtered, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{AmountMin: 3000})
	require.NoError(t, err)
	assert.Less(t, len(filtered), len(all))
	for _, v := range filtered {
		assert.GreaterOrEqual(t, v.Amount, int64(3000))
	}

	cutoff := all[len(all)-1].CreatedAt.Add(time.Minute)
	recent, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{DateRangeStart: cutoff})
	require.NoError(t, err)
	assert.Len(t, recent, len(all)-1, "the oldest item falls before the cutoff")
}

func TestPublicFeed(t *testing.T) {
	a := testutils.NewSeededApp(t)

	views := a.Feed.AllPublic()
	require.Len(t, views, 10)
	for _, v := range views {
		assert.Equal(t, ledger.PrivacyPublic, v.PrivacyLevel)
	}
	for i := 1; i < len(views); i++ {
		assert.False(t, views[i-1].CreatedAt.Before(views[i].CreatedAt), "public feed must be newest-first")
	}
}

func TestPublicDefaultSort(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	split, err := a.Feed.PublicDefaultSort(u.ID)
	require.NoError(t, err)

	assert.Len(t, split.Contacts, 17)
	assert.Len(t, split.Public, 3)

	seen := make(map[uuid.UUID]struct{})
	for _, v := range split.Contacts {
		seen[v.ID] = struct{}{}
	}
	for _, v := range split.Public {
		_, dup := seen[v.ID]
		assert.False(t, dup, "the two sections must not overlap")
		assert.Equal(t, ledger.PrivacyPublic, v.PrivacyLevel)
	}
}

func TestFeedDecoration(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	views, err := a.Feed.ForUserContacts(u.ID, dto.TransactionFilter{})
	require.NoError(t, err)

	var brunch *dto.TransactionView
	for i := range views {
		if views[i].Description == "Brunch" {
			brunch = &views[i]
		}
	}
	require.NotNil(t, brunch)
	assert.Equal(t, "Arely Kertzmann", brunch.SenderName)
	assert.Equal(t, "Giovanna Rowe", brunch.ReceiverName)
	assert.Equal(t, 2, brunch.Likes)
	assert.Equal(t, 1, brunch.Comments)
}

func TestPersonalFeedPagination(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	first, err := a.Feed.ForUserPage(u.ID, dto.TransactionFilter{}, "", 4)
	require.NoError(t, err)
	require.Len(t, first.Items, 4)
	require.NotEmpty(t, first.NextCursor)

	second, err := a.Feed.ForUserPage(u.ID, dto.TransactionFilter{}, first.NextCursor, 4)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.Empty(t, second.NextCursor)

	seen := make(map[uuid.UUID]struct{})
	for _, v := range first.Items {
		seen[v.ID] = struct{}{}
	}
	for _, v := range second.Items {
		_, dup := seen[v.ID]
		assert.False(t, dup, "pages must not repeat items")
	}
}

func TestPaginationStableAcrossInserts(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)
	other := testutils.UserAt(t, a, 1)
	account := testutils.AccountOf(t, a, u)

	first, err := a.Feed.ForUserPage(u.ID, dto.TransactionFilter{}, "", 3)
	require.NoError(t, err)
	require.NotEmpty(t, first.NextCursor)

	// A transaction created between page calls sorts newer than the cursor,
	// so the next page is unaffected.
	_, err = a.Transactions.Create(context.Background(), u.ID, ledger.KindPayment, dto.TransactionCreate{
		SenderID:     u.ID,
		ReceiverID:   other.ID,
		Source:       account.ID.String(),
		Amount:       100,
		Description:  "Mid-pagination payment",
		PrivacyLevel: ledger.PrivacyPrivate,
	})
	require.NoError(t, err)

	second, err := a.Feed.ForUserPage(u.ID, dto.TransactionFilter{}, first.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, second.Items, 3)
	for _, v := range second.Items {
		assert.NotEqual(t, "Mid-pagination payment", v.Description)
	}
	for _, v := range first.Items {
		for _, w := range second.Items {
			assert.NotEqual(t, v.ID, w.ID)
		}
	}
}

func TestPaginationRejectsMalformedCursor(t *testing.T) {
	a := testutils.NewSeededApp(t)
	u := testutils.UserAt(t, a, 0)

	_, err := a.Feed.ForUserPage(u.ID, dto.TransactionFilter{}, "not-a-cursor", 4)
	require.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestPaginationDefaultPageSize(t *testing.T) {
	a := testutils.NewSeededApp(t)

	page, err := a.Feed.AllPublicPage("", 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10, "default page size covers the whole seeded public feed")
	assert.Empty(t, page.NextCursor)
}
