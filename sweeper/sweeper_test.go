package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/club-booking-backend/sweeper"
	"github.com/hanksha/club-booking-backend/sweeper/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	expirer *mocks.MockExpirer
	locker  *mocks.MockLocker
	sweeper *sweeper.Sweeper
	ctx     context.Context
}

func newTestDeps(t *testing.T, interval time.Duration) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	expirer := mocks.NewMockExpirer(ctrl)
	locker := mocks.NewMockLocker(ctrl)

	return ctrl, testDeps{
		expirer: expirer,
		locker:  locker,
		sweeper: sweeper.New(expirer, locker, interval),
		ctx:     context.Background(),
	}
}

func TestSweepOnce(t *testing.T) {
	t.Run("sweeps while holding the lock", func(t *testing.T) {
		ctrl, d := newTestDeps(t, time.Minute)
		defer ctrl.Finish()

		gomock.InOrder(
			d.locker.EXPECT().TryLock(d.ctx, gomock.Any(), time.Minute).Return(true, nil),
			d.expirer.EXPECT().ExpireOverdueBookings(d.ctx).Return(int64(4), nil),
			d.locker.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(nil),
		)

		n, swept, err := d.sweeper.SweepOnce(d.ctx)

		require.NoError(t, err)
		require.True(t, swept)
		require.Equal(t, int64(4), n)
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		ctrl, d := newTestDeps(t, time.Minute)
		defer ctrl.Finish()

		d.locker.EXPECT().TryLock(d.ctx, gomock.Any(), time.Minute).Return(false, nil).Times(1)
		d.expirer.EXPECT().ExpireOverdueBookings(gomock.Any()).Times(0)
		d.locker.EXPECT().Unlock(gomock.Any(), gomock.Any()).Times(0)

		_, swept, err := d.sweeper.SweepOnce(d.ctx)

		require.NoError(t, err)
		require.False(t, swept)
	})

	t.Run("expirer error still releases the lock", func(t *testing.T) {
		ctrl, d := newTestDeps(t, time.Minute)
		defer ctrl.Finish()

		d.locker.EXPECT().TryLock(d.ctx, gomock.Any(), time.Minute).Return(true, nil).Times(1)
		d.expirer.EXPECT().ExpireOverdueBookings(d.ctx).Return(int64(0), errors.New("db down")).Times(1)
		d.locker.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, swept, err := d.sweeper.SweepOnce(d.ctx)

		require.Error(t, err)
		require.True(t, swept)
	})

	t.Run("lock error", func(t *testing.T) {
		ctrl, d := newTestDeps(t, time.Minute)
		defer ctrl.Finish()

		d.locker.EXPECT().TryLock(d.ctx, gomock.Any(), time.Minute).Return(false, errors.New("redis down")).Times(1)
		d.expirer.EXPECT().ExpireOverdueBookings(gomock.Any()).Times(0)

		_, _, err := d.sweeper.SweepOnce(d.ctx)

		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	ctrl, d := newTestDeps(t, 10*time.Millisecond)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(d.ctx)

	d.locker.EXPECT().TryLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).MinTimes(2)
	d.locker.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(nil).MinTimes(2)

	calls := 0
	d.expirer.EXPECT().ExpireOverdueBookings(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return 0, nil
	}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		d.sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
