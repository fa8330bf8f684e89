package errs

// Sentinels shared by the command and query sides. Mark causes onto them with Mark.
var (
	// Lookup errors
	ErrReservationNotFound = New("reservation not found")
	ErrRoomNotFound        = New("room not found")
	ErrGuestNotFound       = New("guest not found")
	ErrRoomRateNotFound    = New("room rate not found")
	ErrRatePlanNotFound    = New("rate plan not found")

	// Uniqueness errors
	ErrDuplicateRoomRate = New("rate already exists for this plan, hotel and day class")
	ErrDuplicateGuest    = New("guest with this email already exists")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
