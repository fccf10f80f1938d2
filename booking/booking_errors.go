package booking

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the service for a rejected request
// wraps exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

var ErrBookingNotFound = fmt.Errorf("%w: booking not found", ErrNotFound)

var ErrServiceNotFound = fmt.Errorf("%w: service not found or inactive", ErrNotFound)

var ErrClubNotFound = fmt.Errorf("%w: club not found", ErrNotFound)

var ErrInvalidTimeRange = fmt.Errorf("%w: start time must be before end time", ErrBadRequest)

var ErrInvalidDate = fmt.Errorf("%w: invalid booking date", ErrBadRequest)

var ErrBookingInPast = fmt.Errorf("%w: booking must start in the future", ErrBadRequest)

var ErrOutsideOperatingHours = fmt.Errorf("%w: requested time is outside the service operating hours", ErrBadRequest)

var ErrInvalidSlotMultiple = fmt.Errorf("%w: duration must be a multiple of the slot duration", ErrBadRequest)

var ErrNothingToUpdate = fmt.Errorf("%w: nothing to update", ErrBadRequest)

var ErrInvalidBookingState = fmt.Errorf("%w: invalid booking state", ErrBadRequest)

var ErrSlotConflict = fmt.Errorf("%w: time slot already booked", ErrConflict)

var ErrNotAllowed = fmt.Errorf("%w: not allowed to perform this operation", ErrForbidden)

var ErrNotExpired = fmt.Errorf("%w: booking has not ended yet", ErrForbidden)
