// Package notification exposes the per-user notification inbox.
package notification

import (
	"context"
	"log/slog"
	"slices"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

// Service lists and updates notifications.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

// NewService creates a notification service.
func NewService(store repository.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With("service", "notification"),
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(userID uuid.UUID) ([]ledger.Notification, error) {
	if _, err := s.store.Users().Get(userID); err != nil {
		return nil, err
	}
	out := s.store.Notifications().ByUserID(userID)
	slices.SortStableFunc(out, func(a, b ledger.Notification) int {
		switch {
		case a.CreatedAt.After(b.CreatedAt):
			return -1
		case a.CreatedAt.Before(b.CreatedAt):
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

// MarkRead flags a notification as read. Only the recipient may do so.
func (s *Service) MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) (ledger.Notification, error) {
	var updated ledger.Notification
	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		n, err := uow.Notifications().Get(notificationID)
		if err != nil {
			return err
		}
		if n.UserID != callerID {
			return ledger.NewFieldError(ledger.ErrForbidden, "notification", notificationID.String())
		}
		updated, err = uow.Notifications().MarkRead(notificationID)
		return err
	})
	return updated, err
}
