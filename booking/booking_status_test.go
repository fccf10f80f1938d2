package booking_test

import (
	"testing"

	"github.com/hanksha/club-booking-backend/auth"
	bk "github.com/hanksha/club-booking-backend/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		role        auth.Role
		from, to    bk.Status
		allowed     bool
		needsExpiry bool
	}{
		{"customer cancels pending", auth.RoleCustomer, bk.StatusPending, bk.StatusCancelledByCustomer, true, false},
		{"customer cancels confirmed", auth.RoleCustomer, bk.StatusConfirmed, bk.StatusCancelledByCustomer, true, false},
		{"customer cannot confirm", auth.RoleCustomer, bk.StatusPending, bk.StatusConfirmed, false, false},
		{"customer cannot cancel completed", auth.RoleCustomer, bk.StatusCompleted, bk.StatusCancelledByCustomer, false, false},
		{"customer cannot expire", auth.RoleCustomer, bk.StatusConfirmed, bk.StatusExpired, false, false},
		{"owner confirms pending", auth.RoleOwner, bk.StatusPending, bk.StatusConfirmed, true, false},
		{"owner cancels confirmed", auth.RoleOwner, bk.StatusConfirmed, bk.StatusCancelledByClub, true, false},
		{"owner completes confirmed", auth.RoleOwner, bk.StatusConfirmed, bk.StatusCompleted, true, false},
		{"owner marks no show", auth.RoleOwner, bk.StatusConfirmed, bk.StatusNoShow, true, false},
		{"owner accepts reschedule", auth.RoleOwner, bk.StatusReschedulePending, bk.StatusConfirmed, true, false},
		{"owner rejects reschedule", auth.RoleOwner, bk.StatusReschedulePending, bk.StatusRejected, true, false},
		{"owner cannot complete pending", auth.RoleOwner, bk.StatusPending, bk.StatusCompleted, false, false},
		{"owner cannot reopen cancelled", auth.RoleOwner, bk.StatusCancelledByClub, bk.StatusConfirmed, false, false},
		{"owner cannot cancel as customer", auth.RoleOwner, bk.StatusPending, bk.StatusCancelledByCustomer, false, false},
		{"owner expires after check", auth.RoleOwner, bk.StatusConfirmed, bk.StatusExpired, true, true},
		{"admin reopens cancelled", auth.RoleAdmin, bk.StatusCancelledByClub, bk.StatusConfirmed, true, false},
		{"admin expires after check", auth.RoleAdmin, bk.StatusPending, bk.StatusExpired, true, true},
		{"unknown role", auth.Role("guest"), bk.StatusPending, bk.StatusConfirmed, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := bk.Decide(tt.role, tt.from, tt.to)

			assert.Equal(t, tt.allowed, v.Allowed)
			assert.Equal(t, tt.needsExpiry, v.NeedsExpiry)

			if tt.allowed {
				require.NoError(t, v.Err())
			} else {
				require.ErrorIs(t, v.Err(), bk.ErrForbidden)
				require.NotEmpty(t, v.Reason)
			}
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	s, ok := bk.ParseStatus("reschedule_pending")
	require.True(t, ok)
	assert.Equal(t, bk.StatusReschedulePending, s)

	_, ok = bk.ParseStatus("archived")
	assert.False(t, ok)

	assert.True(t, bk.StatusPending.IsActive())
	assert.False(t, bk.StatusRescheduleRequested.IsActive())
	assert.True(t, bk.StatusExpired.IsTerminal())
	assert.False(t, bk.StatusReschedulePending.IsTerminal())
}
