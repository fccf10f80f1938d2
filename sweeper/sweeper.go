package sweeper

import (
	"context"
	"log/slog"
	"time"
)

//go:generate mockgen -source=sweeper.go -destination=mocks/sweeper_mock.go -package=mocks

const lockKey = "club-booking:expiry-sweep"

type Expirer interface {
	ExpireOverdueBookings(ctx context.Context) (int64, error)
}

// Locker is a lease shared by every running instance.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Sweeper periodically expires overdue bookings. When several instances run,
// only the one holding the lock sweeps on a given tick.
type Sweeper struct {
	expirer  Expirer
	locker   Locker
	interval time.Duration
	logger   *slog.Logger
}

func New(expirer Expirer, locker Locker, interval time.Duration) *Sweeper {
	return &Sweeper{
		expirer:  expirer,
		locker:   locker,
		interval: interval,
		logger:   slog.Default().With("component", "sweeper"),
	}
}

// Run sweeps once right away and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("starting expiry sweeper", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, _, err := s.SweepOnce(ctx); err != nil {
			s.logger.Error("expiry sweep failed", "err", err)
		}

		select {
		case <-ctx.Done():
			s.logger.Info("stopping expiry sweeper")
			return
		case <-ticker.C:
		}
	}
}

// SweepOnce runs a single sweep if the lock can be taken. swept is false when
// another instance holds the lock.
func (s *Sweeper) SweepOnce(ctx context.Context) (expired int64, swept bool, err error) {
	ok, err := s.locker.TryLock(ctx, lockKey, s.interval)

	if err != nil {
		return 0, false, err
	}

	if !ok {
		s.logger.Debug("expiry sweep skipped, lock held elsewhere")
		return 0, false, nil
	}

	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), lockKey); err != nil {
			s.logger.Warn("failed to release sweep lock", "err", err)
		}
	}()

	expired, err = s.expirer.ExpireOverdueBookings(ctx)

	if err != nil {
		return 0, true, err
	}

	return expired, true, nil
}
