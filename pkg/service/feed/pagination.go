package feed

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/peerpay/pkg/domain/ledger"
	"github.com/amirasaad/peerpay/pkg/dto"
	"github.com/google/uuid"
)

// Page is one slice of a feed. NextCursor is empty when the feed is
// exhausted.
//
// Pagination policy: feeds are re-queried live on every page, but the
// cursor is a seek position (creation time + id of the last returned item),
// so transactions created between page calls — which sort newer than the
// cursor — can never re-order or repeat items already returned. Only the
// first page observes new arrivals.
type Page struct {
	Items      []dto.TransactionView `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

type cursor struct {
	createdAt time.Time
	id        uuid.UUID
}

func encodeCursor(c cursor) string {
	raw := fmt.Sprintf("%d:%s", c.createdAt.UnixNano(), c.id)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(encoded string) (cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return cursor{}, ledger.NewFieldError(ledger.ErrInvalidInput, "cursor", encoded)
	}
	nanos, idPart, ok := strings.Cut(string(raw), ":")
	if !ok {
		return cursor{}, ledger.NewFieldError(ledger.ErrInvalidInput, "cursor", encoded)
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return cursor{}, ledger.NewFieldError(ledger.ErrInvalidInput, "cursor", encoded)
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return cursor{}, ledger.NewFieldError(ledger.ErrInvalidInput, "cursor", encoded)
	}
	return cursor{createdAt: time.Unix(0, n), id: id}, nil
}

// paginate slices a sorted feed after the cursor position.
func (s *Service) paginate(views []dto.TransactionView, after string, pageSize int) (Page, error) {
	if pageSize <= 0 {
		pageSize = s.cfg.PageSize
	}
	start := 0
	if after != "" {
		c, err := decodeCursor(after)
		if err != nil {
			return Page{}, err
		}
		// Seek past every item at or before the cursor in sort order.
		for start < len(views) {
			v := views[start]
			if v.CreatedAt.Before(c.createdAt) {
				break
			}
			if v.CreatedAt.Equal(c.createdAt) && v.ID.String() > c.id.String() {
				break
			}
			start++
		}
	}
	end := min(start+pageSize, len(views))
	page := Page{Items: views[start:end]}
	if end < len(views) && end > start {
		last := views[end-1]
		page.NextCursor = encodeCursor(cursor{createdAt: last.CreatedAt, id: last.ID})
	}
	return page, nil
}

// ForUserPage returns one page of the personal feed.
func (s *Service) ForUserPage(userID uuid.UUID, filter dto.TransactionFilter, after string, pageSize int) (Page, error) {
	views, err := s.ForUser(userID, filter)
	if err != nil {
		return Page{}, err
	}
	return s.paginate(views, after, pageSize)
}

// ForUserContactsPage returns one page of the contacts feed.
func (s *Service) ForUserContactsPage(userID uuid.UUID, filter dto.TransactionFilter, after string, pageSize int) (Page, error) {
	views, err := s.ForUserContacts(userID, filter)
	if err != nil {
		return Page{}, err
	}
	return s.paginate(views, after, pageSize)
}

// AllPublicPage returns one page of the global public feed.
func (s *Service) AllPublicPage(after string, pageSize int) (Page, error) {
	return s.paginate(s.AllPublic(), after, pageSize)
}
