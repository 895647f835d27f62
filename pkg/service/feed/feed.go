// Package feed derives the three visibility-scoped transaction views:
// personal, contacts and public. Items are decorated at this boundary with
// display names and like/comment aggregates; nothing is stored back on the
// transaction records.
package feed

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/amirasaad/peerpay/pkg/config"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

// Service composes transaction feeds.
type Service struct {
	store  repository.Store
	cfg    config.FeedConfig
	logger *slog.Logger
}

// NewService creates a feed composer over the given store.
func NewService(store repository.Store, cfg config.FeedConfig, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.With("service", "feed"),
	}
}

// PublicFeed is the default public view split into transactions among the
// caller's contacts and everything else that is publicly visible.
type PublicFeed struct {
	Contacts []dto.TransactionView `json:"contacts"`
	Public   []dto.TransactionView `json:"public"`
}

// compare orders newest-first by creation time, ties broken by id ascending
// so pagination stays reproducible across calls.
func compare(a, b ledger.Transaction) int {
	switch {
	case a.CreatedAt.After(b.CreatedAt):
		return -1
	case a.CreatedAt.Before(b.CreatedAt):
		return 1
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}

func sortFeed(txns []ledger.Transaction) {
	slices.SortStableFunc(txns, compare)
}

// ForUser returns every transaction where the user is sender or receiver,
// newest-first, optionally narrowed by the filter.
func (s *Service) ForUser(userID uuid.UUID, filter dto.TransactionFilter) ([]dto.TransactionView, error) {
	if _, err := s.store.Users().Get(userID); err != nil {
		return nil, err
	}
	txns := s.store.Transactions().ByParticipant(userID)
	txns = slices.DeleteFunc(txns, func(t ledger.Transaction) bool { return !filter.Matches(t) })
	sortFeed(txns)
	return s.decorate(txns), nil
}

// ForUserContacts returns transactions involving any of the user's contacts
// with public or contacts visibility, excluding transactions the user
// participates in — those belong to the personal feed.
func (s *Service) ForUserContacts(userID uuid.UUID, filter dto.TransactionFilter) ([]dto.TransactionView, error) {
	if _, err := s.store.Users().Get(userID); err != nil {
		return nil, err
	}
	contactIDs := make(map[uuid.UUID]struct{})
	for _, c := range s.store.Contacts().ByUserID(userID) {
		contactIDs[c.ContactUserID] = struct{}{}
	}

	var txns []ledger.Transaction
	for _, t := range s.store.Transactions().List() {
		if t.SenderID == userID || t.ReceiverID == userID {
			continue
		}
		if t.PrivacyLevel == ledger.PrivacyPrivate {
			continue
		}
		_, senderIsContact := contactIDs[t.SenderID]
		_, receiverIsContact := contactIDs[t.ReceiverID]
		if !senderIsContact && !receiverIsContact {
			continue
		}
		if !filter.Matches(t) {
			continue
		}
		txns = append(txns, t)
	}
	sortFeed(txns)
	return s.decorate(txns), nil
}

// AllPublic returns every transaction with public visibility, newest-first.
func (s *Service) AllPublic() []dto.TransactionView {
	var txns []ledger.Transaction
	for _, t := range s.store.Transactions().List() {
		if t.PrivacyLevel == ledger.PrivacyPublic {
			txns = append(txns, t)
		}
	}
	sortFeed(txns)
	return s.decorate(txns)
}

// PublicDefaultSort splits the publicly visible transaction set into the
// caller's contacts feed and the public remainder, each independently
// newest-first.
func (s *Service) PublicDefaultSort(userID uuid.UUID) (PublicFeed, error) {
	contactsFeed, err := s.ForUserContacts(userID, dto.TransactionFilter{})
	if err != nil {
		return PublicFeed{}, err
	}
	inContacts := make(map[uuid.UUID]struct{}, len(contactsFeed))
	for _, v := range contactsFeed {
		inContacts[v.ID] = struct{}{}
	}
	publicFeed := slices.DeleteFunc(s.AllPublic(), func(v dto.TransactionView) bool {
		_, ok := inContacts[v.ID]
		return ok
	})
	return PublicFeed{Contacts: contactsFeed, Public: publicFeed}, nil
}

// AllTransactions returns the full transaction set in insertion order.
func (s *Service) AllTransactions() []ledger.Transaction {
	return s.store.Transactions().List()
}

func (s *Service) decorate(txns []ledger.Transaction) []dto.TransactionView {
	views := make([]dto.TransactionView, 0, len(txns))
	names := make(map[uuid.UUID]string)
	name := func(id uuid.UUID) string {
		if n, ok := names[id]; ok {
			return n
		}
		u, err := s.store.Users().Get(id)
		if err != nil {
			s.logger.Warn("feed participant unknown", "user_id", id)
			names[id] = ""
			return ""
		}
		names[id] = u.FullName()
		return names[id]
	}
	for _, t := range txns {
		views = append(views, dto.TransactionView{
			Transaction:  t,
			SenderName:   name(t.SenderID),
			ReceiverName: name(t.ReceiverID),
			Likes:        s.store.Likes().CountByTransactionID(t.ID),
			Comments:     s.store.Comments().CountByTransactionID(t.ID),
		})
	}
	return views
}
