package queries

import (
	"context"
	"time"

	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*GuestView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*GuestView, error)
}

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*GuestView, *Cursor, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
}

func NewGuestQueries(readStore GuestReadStore) GuestQueries {
	return &guestQueriesImpl{readStore: readStore}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrGuestNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *guestQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*GuestView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*GuestView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
