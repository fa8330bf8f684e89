package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusConfirmed, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	if s == "" {
		return PaymentPending, nil
	}
	p := PaymentStatus(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return p, nil
}

type Source string

const (
	SourceWebsite    Source = "website"
	SourceMobileApp  Source = "mobile_app"
	SourceWalkIn     Source = "walk_in"
	SourceAgent      Source = "agent"
	SourceCallCenter Source = "call_center"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceWebsite, SourceMobileApp, SourceWalkIn, SourceAgent, SourceCallCenter:
		return true
	default:
		return false
	}
}

func NewSource(s string) (Source, error) {
	if s == "" {
		return SourceWebsite, nil
	}
	src := Source(s)
	if !src.IsValid() {
		return "", ErrInvalidSource
	}
	return src, nil
}
