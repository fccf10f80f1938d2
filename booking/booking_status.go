package booking

import (
	"fmt"
	"slices"

	"github.com/hanksha/club-booking-backend/auth"
)

// Verdict is the outcome of checking a requested status change against the
// transition table.
type Verdict struct {
	Allowed bool
	// NeedsExpiry means the change is only valid once the booking has
	// ended; the caller must verify it against the clock.
	NeedsExpiry bool
	Reason      string
}

func (v Verdict) Err() error {
	if v.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrForbidden, v.Reason)
}

type edge struct {
	from []Status
	to   Status
}

var customerEdges = []edge{
	{from: []Status{StatusPending, StatusConfirmed}, to: StatusCancelledByCustomer},
}

var clubEdges = []edge{
	{from: []Status{StatusPending}, to: StatusConfirmed},
	{from: []Status{StatusPending, StatusConfirmed}, to: StatusCancelledByClub},
	{from: []Status{StatusConfirmed}, to: StatusCompleted},
	{from: []Status{StatusConfirmed}, to: StatusNoShow},
	{from: []Status{StatusReschedulePending}, to: StatusConfirmed},
	{from: []Status{StatusReschedulePending}, to: StatusRejected},
}

func permits(edges []edge, from, to Status) bool {
	for _, e := range edges {
		if e.to == to && slices.Contains(e.from, from) {
			return true
		}
	}
	return false
}

// Decide applies the booking transition table to a status change requested
// by role. It is pure: ownership and expiry are checked by the caller.
func Decide(role auth.Role, from, to Status) Verdict {
	deny := func() Verdict {
		return Verdict{Reason: fmt.Sprintf("role '%s' cannot change a booking from '%s' to '%s'", role, from, to)}
	}

	switch role {
	case auth.RoleCustomer:
		if permits(customerEdges, from, to) {
			return Verdict{Allowed: true}
		}
		return deny()

	case auth.RoleOwner, auth.RoleAdmin:
		if to == StatusExpired {
			return Verdict{Allowed: true, NeedsExpiry: true}
		}
		if role == auth.RoleAdmin || permits(clubEdges, from, to) {
			return Verdict{Allowed: true}
		}
		return deny()
	}

	return Verdict{Reason: fmt.Sprintf("unknown role '%s'", role)}
}
