package commands

import (
	"context"

	"hotel-management-api/internal/domain/guest"
	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/clock"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type GuestCommands interface {
	CreateGuest(ctx context.Context, profile guest.Profile) (*queries.GuestView, error)
}

type guestUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	guestQueries queries.GuestQueries
}

func NewGuestUseCase(uow shared.UnitOfWork, clk clock.Clock, guestQueries queries.GuestQueries) GuestCommands {
	return &guestUseCaseImpl{uow: uow, clock: clk, guestQueries: guestQueries}
}

func (uc *guestUseCaseImpl) CreateGuest(ctx context.Context, profile guest.Profile) (*queries.GuestView, error) {
	g, err := guest.NewGuest(profile, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Guests().Create(ctx, tx.DB(), g)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateGuest)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.guestQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
