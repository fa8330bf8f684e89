package commands

import (
	"context"
	"log/slog"

	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/infra"
	"hotel-management-api/internal/pkg/clock"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationInput struct {
	RoomID  uuid.UUID
	Details reservation.DetailsInput
}

// QuoteInput is priced as given: unparseable times or ages contribute nothing.
type QuoteInput struct {
	RoomID       uuid.UUID
	CheckInDate  string
	CheckOutDate string
	CheckInTime  string
	CheckOutTime string
	ChildrenAges string
}

type ReservationResult struct {
	Reservation *queries.ReservationView
	Breakdown   pricing.Breakdown
}

type QuoteResult struct {
	RoomID       uuid.UUID
	Hotel        string
	CheckInTime  string
	CheckOutTime string
	Breakdown    pricing.Breakdown
}

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in ReservationInput, userID uuid.UUID) (*ReservationResult, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, in ReservationInput) (*ReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	QuoteReservation(ctx context.Context, in QuoteInput) (*QuoteResult, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	services           *reservation.Services
	reservationQueries queries.ReservationQueries
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	calculator *pricing.Calculator,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		factory: factory,
		services: &reservation.Services{
			Clock:      clk,
			Calculator: calculator,
		},
		reservationQueries: reservationQueries,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in ReservationInput, userID uuid.UUID) (*ReservationResult, error) {
	details, err := uc.factory.BuildDetails(in.Details)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		createdID uuid.UUID
		breakdown pricing.Breakdown
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, rates, derr := uc.loadPricingContext(ctx, tx.Reads(), in.RoomID, details.GuestID)
		if derr != nil {
			return derr
		}

		res, b, derr := reservation.NewReservation(uc.services, room.Spec(), details, userID, rates)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Reservations().Create(ctx, tx.DB(), res); derr != nil {
			return markWriteErr(derr)
		}

		createdID = res.ID()
		breakdown = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logBreakdown("reservation created", createdID, breakdown)
	return uc.readBack(ctx, createdID, breakdown)
}

func (uc *reservationUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, in ReservationInput) (*ReservationResult, error) {
	details, err := uc.factory.BuildDetails(in.Details)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var breakdown pricing.Breakdown
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return markLookupErr(derr, errs.ErrReservationNotFound)
		}

		room, rates, derr := uc.loadPricingContext(ctx, tx.Reads(), in.RoomID, details.GuestID)
		if derr != nil {
			return derr
		}

		res := snap.Reconstruct()
		b, derr := res.Revise(uc.services, room.Spec(), details, rates)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Reservations().Update(ctx, tx.DB(), res); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrReservationNotFound)
			}
			return markWriteErr(derr)
		}

		breakdown = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logBreakdown("reservation updated", id, breakdown)
	return uc.readBack(ctx, id, breakdown)
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return markLookupErr(err, errs.ErrReservationNotFound)
		}

		res := snap.Reconstruct()
		res.Cancel(uc.services.Clock.Now())
		if err := tx.Reservations().Cancel(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *reservationUseCaseImpl) QuoteReservation(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	stay, err := pricing.ParseStay(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(reservation.ErrInvalidDate, errs.ErrDomainValidation)
	}

	reads := uc.uow.CommandReads()
	room, err := reads.RoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, markLookupErr(err, errs.ErrRoomNotFound)
	}
	rates, err := uc.ratesFor(ctx, reads, room)
	if err != nil {
		return nil, err
	}

	checkIn := in.CheckInTime
	if checkIn == "" {
		checkIn = uc.factory.DefaultCheckIn().String()
	}
	checkOut := in.CheckOutTime
	if checkOut == "" {
		checkOut = uc.factory.DefaultCheckOut().String()
	}

	breakdown := uc.services.Calculator.Calculate(pricing.Input{
		PlanID:       room.RatePlanID,
		Hotel:        room.Hotel,
		Stay:         stay,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		ChildrenAges: in.ChildrenAges,
	}, rates)

	return &QuoteResult{
		RoomID:       room.ID,
		Hotel:        room.Hotel.String(),
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Breakdown:    breakdown,
	}, nil
}

func (uc *reservationUseCaseImpl) loadPricingContext(
	ctx context.Context,
	reads shared.CommandReads,
	roomID, guestID uuid.UUID,
) (*shared.RoomSnapshot, pricing.RateLookup, error) {
	room, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, markLookupErr(err, errs.ErrRoomNotFound)
	}
	if _, err := reads.GuestByID(ctx, guestID); err != nil {
		return nil, nil, markLookupErr(err, errs.ErrGuestNotFound)
	}
	rates, err := uc.ratesFor(ctx, reads, room)
	if err != nil {
		return nil, nil, err
	}
	return room, rates, nil
}

// ratesFor returns nil for rooms without a plan; the engine prices those at zero.
func (uc *reservationUseCaseImpl) ratesFor(ctx context.Context, reads shared.CommandReads, room *shared.RoomSnapshot) (pricing.RateLookup, error) {
	if room.RatePlanID == uuid.Nil {
		return nil, nil
	}
	rates, err := reads.RatesForPlan(ctx, room.RatePlanID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rates, nil
}

func (uc *reservationUseCaseImpl) readBack(ctx context.Context, id uuid.UUID, breakdown pricing.Breakdown) (*ReservationResult, error) {
	// Read-after-write: Get the complete reservation view from read store
	view, err := uc.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &ReservationResult{Reservation: view, Breakdown: breakdown}, nil
}

func logBreakdown(msg string, id uuid.UUID, b pricing.Breakdown) {
	slog.Debug(msg,
		"reservation_id", id,
		"nights", b.Nights,
		"room_price", pricing.FormatMoney(b.RoomPrice),
		"children_bed_price", pricing.FormatMoney(b.ChildrenBedPrice),
		"children_breakfast_price", pricing.FormatMoney(b.ChildrenBreakfastPrice),
		"early_check_in_charge", pricing.FormatMoney(b.EarlyCheckInCharge),
		"late_check_out_charge", pricing.FormatMoney(b.LateCheckOutCharge),
		"total_price", b.FormattedTotal(),
	)
}

func markLookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func markWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
