package repository

import (
	"context"

	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	CancelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	occ := res.Occupancy()
	params := sqlc.CreateReservationParams{
		ID:              res.ID(),
		Code:            res.Code(),
		GuestID:         res.GuestID(),
		RoomID:          res.RoomID(),
		Hotel:           res.Hotel().String(),
		CheckInDate:     pgconv.DateToPgtype(res.CheckInDate()),
		CheckOutDate:    pgconv.DateToPgtype(res.CheckOutDate()),
		CheckInTime:     pgconv.ClockToPgtype(res.CheckInTime().Duration()),
		CheckOutTime:    pgconv.ClockToPgtype(res.CheckOutTime().Duration()),
		NumAdults:       pgconv.IntToInt32(occ.Adults()),
		NumChildren:     pgconv.IntToInt32(occ.Children()),
		ChildrenAges:    occ.ChildrenAges(),
		SpecialRequests: pgconv.StringPtrToPgtype(res.SpecialRequests()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		Source:          res.Source().String(),
		TotalPrice:      pgconv.DecimalToNumeric(res.TotalPrice().Round(2)),
		CreatedBy:       res.CreatedBy(),
		CancelledAt:     pgconv.TimePtrToPgtype(res.CancelledAt()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	occ := res.Occupancy()
	params := sqlc.UpdateReservationParams{
		ID:              res.ID(),
		GuestID:         res.GuestID(),
		RoomID:          res.RoomID(),
		Hotel:           res.Hotel().String(),
		CheckInDate:     pgconv.DateToPgtype(res.CheckInDate()),
		CheckOutDate:    pgconv.DateToPgtype(res.CheckOutDate()),
		CheckInTime:     pgconv.ClockToPgtype(res.CheckInTime().Duration()),
		CheckOutTime:    pgconv.ClockToPgtype(res.CheckOutTime().Duration()),
		NumAdults:       pgconv.IntToInt32(occ.Adults()),
		NumChildren:     pgconv.IntToInt32(occ.Children()),
		ChildrenAges:    occ.ChildrenAges(),
		SpecialRequests: pgconv.StringPtrToPgtype(res.SpecialRequests()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		Source:          res.Source().String(),
		TotalPrice:      pgconv.DecimalToNumeric(res.TotalPrice().Round(2)),
		CancelledAt:     pgconv.TimePtrToPgtype(res.CancelledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	rows, err := r.queries.UpdateReservation(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := sqlc.CancelReservationParams{
		ID:          res.ID(),
		CancelledAt: pgconv.TimePtrToPgtype(res.CancelledAt()),
	}
	rows, err := r.queries.CancelReservation(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
