package auth_test

import (
	"testing"
	"time"

	"github.com/hanksha/club-booking-backend/auth"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	v := auth.NewVerifier("secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := v.Issue(auth.Actor{ID: "owner-1", Role: auth.RoleOwner}, time.Hour)
		require.NoError(t, err)

		actor, err := v.Verify(token)
		require.NoError(t, err)
		require.Equal(t, auth.Actor{ID: "owner-1", Role: auth.RoleOwner}, actor)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewVerifier("other").Issue(auth.Actor{ID: "u", Role: auth.RoleCustomer}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := v.Issue(auth.Actor{ID: "u", Role: auth.RoleCustomer}, -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := v.Issue(auth.Actor{ID: "u", Role: "superuser"}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
