package booking

import "time"

type Status string

const (
	StatusPending              Status = "pending"
	StatusConfirmed            Status = "confirmed"
	StatusCancelledByCustomer  Status = "cancelled_by_customer"
	StatusCancelledByClub      Status = "cancelled_by_club"
	StatusCompleted            Status = "completed"
	StatusNoShow               Status = "no_show"
	StatusRejected             Status = "rejected"
	StatusExpired              Status = "expired"
	StatusReschedulePending    Status = "reschedule_pending"
	StatusRescheduleRequested  Status = "reschedule_requested"
	StatusCancelledRescheduled Status = "cancelled_rescheduled"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelledByCustomer,
	StatusCancelledByClub,
	StatusCompleted,
	StatusNoShow,
	StatusRejected,
	StatusExpired,
	StatusReschedulePending,
	StatusRescheduleRequested,
	StatusCancelledRescheduled,
}

// ActiveStatuses hold their slot: only these take part in overlap checks.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// hiddenFromDayView are left out of the owner-facing day schedule.
var hiddenFromDayView = []Status{
	StatusCancelledByCustomer,
	StatusCancelledByClub,
	StatusCancelledRescheduled,
	StatusRejected,
}

func ParseStatus(value string) (Status, bool) {
	for _, s := range allStatuses {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelledByCustomer, StatusCancelledByClub, StatusCompleted, StatusNoShow,
		StatusRejected, StatusExpired, StatusCancelledRescheduled:
		return true
	}
	return false
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	ClubID        string        `json:"clubId"`
	ServiceID     string        `json:"serviceId"`
	RescheduleOf  string        `json:"rescheduleOf,omitempty"`
	BookingDate   time.Time     `json:"bookingDate"`
	StartTime     string        `json:"startTime"` // HH:MM
	EndTime       string        `json:"endTime"`   // HH:MM
	StartsAt      time.Time     `json:"startsAt"`
	EndsAt        time.Time     `json:"endsAt"`
	DurationHours float64       `json:"durationHours"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateRequest is the input of a booking creation. Date is "YYYY-MM-DD",
// StartTime and EndTime are "HH:MM" in the operating timezone.
type CreateRequest struct {
	CustomerID    string
	ServiceID     string
	Date          string
	StartTime     string
	EndTime       string
	Notes         string
	RescheduleOf  string
	InitialStatus Status
}

// UpdateRequest changes status, notes or both. Nil fields are left alone.
type UpdateRequest struct {
	Status *Status `json:"status"`
	Notes  *string `json:"notes"`
}

type RescheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

type ListFilter struct {
	Status *Status
	Limit  int
	Skip   int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (f ListFilter) normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// CustomerQuery selects the customers to target with a bulk notification.
// Zero fields do not filter.
type CustomerQuery struct {
	ClubID    string
	ServiceID string
	Statuses  []Status
	From      *time.Time
	To        *time.Time
}

type ServiceBookingCount struct {
	ServiceID string `json:"serviceId"`
	Count     int    `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}
