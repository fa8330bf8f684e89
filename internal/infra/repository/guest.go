package repository

import (
	"context"

	"hotel-management-api/internal/domain/guest"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GuestWriteQueries interface {
	CreateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGuestParams) (sqlc.Guests, error)
}

type GuestRepository struct {
	queries GuestWriteQueries
}

func NewGuestRepository(queries GuestWriteQueries) *GuestRepository {
	return &GuestRepository{
		queries: queries,
	}
}

func (r *GuestRepository) Create(ctx context.Context, tx sqlc.DBTX, g *guest.Guest) (uuid.UUID, error) {
	var gender *string
	if g.Gender() != nil {
		s := string(*g.Gender())
		gender = &s
	}

	row, err := r.queries.CreateGuest(ctx, tx, sqlc.CreateGuestParams{
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email().Value(),
		Gender:    pgconv.StringPtrToPgtype(gender),
		Phone:     pgconv.StringPtrToPgtype(g.Phone()),
		Country:   pgconv.StringPtrToPgtype(g.Country()),
		City:      pgconv.StringPtrToPgtype(g.City()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return row.ID, nil
}
