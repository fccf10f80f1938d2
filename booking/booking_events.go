package booking

import "github.com/hanksha/club-booking-backend/catalog"

// Task types of the domain events consumed by the notification worker.
const (
	TypeBookingCreated       = "booking:created"
	TypeBookingStatusUpdated = "booking:status_updated"
)

type BookingCreated struct {
	Booking Booking         `json:"booking"`
	Service catalog.Service `json:"service"`
}

type BookingStatusUpdated struct {
	BookingID string  `json:"bookingId"`
	NewStatus Status  `json:"newStatus"`
	Booking   Booking `json:"booking"`
}
