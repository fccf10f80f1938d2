package booking

import (
	"context"
	"time"
)

// IsExpired reports whether b has ended at now.
func IsExpired(b Booking, now time.Time) bool {
	return !b.EndsAt.After(now)
}

// ExpireOverdueBookings moves every active booking whose end has passed to
// expired and returns how many were changed. It is idempotent.
func (s *Service) ExpireOverdueBookings(ctx context.Context) (int64, error) {
	expired, err := s.repo.ExpireBookings(ctx, s.clock.Now())

	if err != nil {
		return 0, err
	}

	if expired > 0 {
		s.logger.Info("expired overdue bookings", "count", expired)
	}

	return expired, nil
}

// CheckExpired is the point check used before a manual move to expired.
func (s *Service) CheckExpired(ctx context.Context, id string) (bool, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return false, err
	}

	return IsExpired(booking, s.clock.Now()), nil
}
