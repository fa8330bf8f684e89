package readstore

import (
	"context"
	"time"

	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestReadQueries interface {
	GetGuestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Guests, error)
	ListGuestsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Guests, error)
	ListGuestsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestsKeysetParams) ([]sqlc.Guests, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      sqlc.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db sqlc.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get guest by id", err)
	}
	return toGuestView(row), nil
}

func (r *GuestReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.GuestView, error) {
	rows, err := r.queries.ListGuestsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	return toGuestViews(rows), nil
}

func (r *GuestReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GuestView, error) {
	rows, err := r.queries.ListGuestsKeyset(ctx, r.db, sqlc.ListGuestsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests after cursor", err)
	}
	return toGuestViews(rows), nil
}

func (r *GuestReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get guest by id", err)
	}
	return &shared.GuestSnapshot{ID: row.ID, Email: row.Email}, nil
}

func toGuestViews(rows []sqlc.Guests) []*queries.GuestView {
	views := make([]*queries.GuestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toGuestView(row))
	}
	return views
}

func toGuestView(row sqlc.Guests) *queries.GuestView {
	return &queries.GuestView{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Gender:    pgconv.StringPtrFromPgtype(row.Gender),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Country:   pgconv.StringPtrFromPgtype(row.Country),
		City:      pgconv.StringPtrFromPgtype(row.City),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
