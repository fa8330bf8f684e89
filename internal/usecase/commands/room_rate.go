package commands

import (
	"context"

	"hotel-management-api/internal/domain/roomrate"
	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/clock"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomRateInput struct {
	RatePlanID uuid.UUID
	Hotel      string
	DayOfWeek  string
	Price      decimal.Decimal
}

func (in RoomRateInput) spec() roomrate.Spec {
	return roomrate.Spec{Hotel: in.Hotel, DayOfWeek: in.DayOfWeek, Price: in.Price}
}

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type RoomRateCommands interface {
	CreateRoomRate(ctx context.Context, in RoomRateInput) (*queries.RoomRateView, error)
	UpdateRoomRate(ctx context.Context, id uuid.UUID, in RoomRateInput) (*queries.RoomRateView, error)
	DeleteRoomRate(ctx context.Context, id uuid.UUID) error
}

type roomRateUseCaseImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	roomRateQueries queries.RoomRateQueries
}

func NewRoomRateUseCase(uow shared.UnitOfWork, clk clock.Clock, roomRateQueries queries.RoomRateQueries) RoomRateCommands {
	return &roomRateUseCaseImpl{uow: uow, clock: clk, roomRateQueries: roomRateQueries}
}

func (uc *roomRateUseCaseImpl) CreateRoomRate(ctx context.Context, in RoomRateInput) (*queries.RoomRateView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, derr := uc.loadPlan(ctx, tx.Reads(), in.RatePlanID)
		if derr != nil {
			return derr
		}

		rate, derr := roomrate.NewRoomRate(plan, in.spec(), uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.RoomRates().Create(ctx, tx.DB(), rate)
		if derr != nil {
			return markRoomRateWriteErr(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.readBack(ctx, createdID)
}

// UpdateRoomRate replaces the whole row; occupancy follows the (possibly new) plan.
func (uc *roomRateUseCaseImpl) UpdateRoomRate(ctx context.Context, id uuid.UUID, in RoomRateInput) (*queries.RoomRateView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rate, derr := tx.Reads().RoomRateByID(ctx, id)
		if derr != nil {
			return markLookupErr(derr, errs.ErrRoomRateNotFound)
		}

		plan, derr := uc.loadPlan(ctx, tx.Reads(), in.RatePlanID)
		if derr != nil {
			return derr
		}

		if derr = rate.Change(plan, in.spec(), uc.clock.Now()); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		if derr = tx.RoomRates().Update(ctx, tx.DB(), rate); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrRoomRateNotFound)
			}
			return markRoomRateWriteErr(derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.readBack(ctx, id)
}

func (uc *roomRateUseCaseImpl) DeleteRoomRate(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomRates().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomRateNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *roomRateUseCaseImpl) loadPlan(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (roomrate.Plan, error) {
	plan, err := reads.RatePlanByID(ctx, id)
	if err != nil {
		return roomrate.Plan{}, markLookupErr(err, errs.ErrRatePlanNotFound)
	}
	return roomrate.Plan{ID: plan.ID, MaxOccupancy: plan.MaxOccupancy}, nil
}

func (uc *roomRateUseCaseImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.RoomRateView, error) {
	view, err := uc.roomRateQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func markRoomRateWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateRoomRate)
	}
	return markWriteErr(err)
}
