// Package social manages the likes and comments attached to transactions.
// Aggregate counts are never stored; the feed composer counts rows at read
// time, so the aggregates cannot drift.
package social

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/events"
	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/eventbus"
	"github.com/amirasaad/peerpay/pkg/repository"
	"github.com/google/uuid"
)

// Service records likes and comments.
type Service struct {
	store  repository.Store
	bus    eventbus.Bus
	logger *slog.Logger
}

// NewService creates a social annotation service.
func NewService(store repository.Store, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		bus:    bus,
		logger: logger.With("service", "social"),
	}
}

// Like records userID's like of a transaction and notifies the other
// participant. A duplicate like is an idempotent no-op, not an error.
func (s *Service) Like(ctx context.Context, userID, transactionID uuid.UUID) error {
	var duplicate bool
	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Users().Get(userID); err != nil {
			return err
		}
		txn, err := uow.Transactions().Get(transactionID)
		if err != nil {
			return err
		}
		if uow.Likes().Exists(transactionID, userID) {
			duplicate = true
			return nil
		}
		now := time.Now()
		if err := uow.Likes().Create(ledger.Like{
			ID:            uuid.New(),
			TransactionID: transactionID,
			UserID:        userID,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		return notifyParticipants(uow, txn, userID, ledger.NotifyLike, now)
	})
	if err != nil || duplicate {
		return err
	}
	// The like is committed; an emit failure is the bus's problem.
	if err := s.bus.Emit(ctx, events.TransactionLiked{TransactionID: transactionID, UserID: userID}); err != nil {
		s.logger.Error("emit failed", "event_type", "TransactionLiked", "error", err)
	}
	return nil
}

// Unlike removes userID's like. Removing a like that does not exist is a
// no-op, symmetric with Like.
func (s *Service) Unlike(ctx context.Context, userID, transactionID uuid.UUID) error {
	return s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Transactions().Get(transactionID); err != nil {
			return err
		}
		if !uow.Likes().Exists(transactionID, userID) {
			return nil
		}
		return uow.Likes().Delete(transactionID, userID)
	})
}

// AddComment appends a comment to the transaction's ordered sequence and
// notifies the other participant. Content must be non-empty after trimming.
func (s *Service) AddComment(ctx context.Context, userID, transactionID uuid.UUID, content string) (ledger.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return ledger.Comment{}, ledger.NewFieldError(ledger.ErrInvalidInput, "content", "")
	}
	var comment ledger.Comment
	err := s.store.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Users().Get(userID); err != nil {
			return err
		}
		txn, err := uow.Transactions().Get(transactionID)
		if err != nil {
			return err
		}
		now := time.Now()
		comment = ledger.Comment{
			ID:            uuid.New(),
			TransactionID: transactionID,
			UserID:        userID,
			Content:       content,
			CreatedAt:     now,
		}
		if err := uow.Comments().Create(comment); err != nil {
			return err
		}
		return notifyParticipants(uow, txn, userID, ledger.NotifyComment, now)
	})
	if err != nil {
		return ledger.Comment{}, err
	}
	if err := s.bus.Emit(ctx, events.CommentAdded{Comment: comment}); err != nil {
		s.logger.Error("emit failed", "event_type", "CommentAdded", "error", err)
	}
	return comment, nil
}

// CommentsFor returns the transaction's comments ordered by creation time.
func (s *Service) CommentsFor(transactionID uuid.UUID) ([]ledger.Comment, error) {
	if _, err := s.store.Transactions().Get(transactionID); err != nil {
		return nil, err
	}
	return s.store.Comments().ByTransactionID(transactionID), nil
}

// LikesFor returns the transaction's likes.
func (s *Service) LikesFor(transactionID uuid.UUID) ([]ledger.Like, error) {
	if _, err := s.store.Transactions().Get(transactionID); err != nil {
		return nil, err
	}
	return s.store.Likes().ByTransactionID(transactionID), nil
}

// notifyParticipants notifies every transaction participant other than the
// acting user.
func notifyParticipants(uow repository.UnitOfWork, txn ledger.Transaction, actorID uuid.UUID, kind ledger.NotificationType, at time.Time) error {
	recipients := []uuid.UUID{txn.SenderID}
	if txn.ReceiverID != txn.SenderID {
		recipients = append(recipients, txn.ReceiverID)
	}
	for _, recipient := range recipients {
		if recipient == actorID {
			continue
		}
		if err := uow.Notifications().Create(ledger.Notification{
			ID:            uuid.New(),
			UserID:        recipient,
			TransactionID: txn.ID,
			Type:          kind,
			CreatedAt:     at,
		}); err != nil {
			return err
		}
	}
	return nil
}
