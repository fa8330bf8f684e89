package readstore

import (
	"context"
	"time"

	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/infra"
	sqlc "hotel-management-api/internal/infra/sqlc/generated"
	"hotel-management-api/internal/pkg/pgconv"
	"hotel-management-api/internal/usecase/queries"
	"hotel-management-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsFirstPageParams) ([]sqlc.ListReservationsFirstPageRow, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return &queries.ReservationView{
		ID:              row.ID,
		Code:            row.Code,
		Hotel:           row.Hotel,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
		CheckInTime:     clockString(row.CheckInTime),
		CheckOutTime:    clockString(row.CheckOutTime),
		NumAdults:       int(row.NumAdults),
		NumChildren:     int(row.NumChildren),
		ChildrenAges:    row.ChildrenAges,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		Source:          row.Source,
		TotalPrice:      pgconv.DecimalFromNumeric(row.TotalPrice),
		CreatedBy:       row.CreatedBy,
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		GuestID:         row.GuestID,
		GuestFirstName:  row.GuestFirstName,
		GuestLastName:   row.GuestLastName,
		GuestEmail:      row.GuestEmail,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		RatePlanName:    pgconv.StringPtrFromPgtype(row.RatePlanName),
	}, nil
}

func (r *ReservationReadStore) FindFirstPage(ctx context.Context, hotel *string, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, sqlc.ListReservationsFirstPageParams{
		Hotel: pgconv.StringPtrToPgtype(hotel),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toReservationListItem(sqlc.ListReservationsKeysetRow(row)))
	}
	return items, nil
}

func (r *ReservationReadStore) FindKeyset(ctx context.Context, hotel *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		Hotel:     pgconv.StringPtrToPgtype(hotel),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations after cursor", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toReservationListItem(row))
	}
	return items, nil
}

// FindSnapshot reads the stored state a command needs before rewriting the reservation.
func (r *ReservationReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return &shared.ReservationSnapshot{
		ID:          row.ID,
		Code:        row.Code,
		Status:      reservation.Status(row.Status),
		CreatedBy:   row.CreatedBy,
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func toReservationListItem(row sqlc.ListReservationsKeysetRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:             row.ID,
		Code:           row.Code,
		Hotel:          row.Hotel,
		CheckInDate:    pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:   pgconv.DateFromPgtype(row.CheckOutDate),
		Status:         row.Status,
		PaymentStatus:  row.PaymentStatus,
		TotalPrice:     pgconv.DecimalFromNumeric(row.TotalPrice),
		GuestFirstName: row.GuestFirstName,
		GuestLastName:  row.GuestLastName,
		RoomNumber:     row.RoomNumber,
		RatePlanName:   pgconv.StringPtrFromPgtype(row.RatePlanName),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func clockString(t pgtype.Time) string {
	return reservation.TimeOfDayFromDuration(pgconv.ClockFromPgtype(t)).String()
}
