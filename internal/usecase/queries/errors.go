package queries

import "hotel-management-api/internal/pkg/errs"

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrInvalidFilter = errs.New("invalid filter")
)
