package booking

import (
	"context"
	"log/slog"
)

// compensationAttempts bounds how often a write restoring a consistent
// reschedule state is tried before giving up.
const compensationAttempts = 2

// rescheduleSaga moves a booking to a new slot in two local steps: the
// original is put on hold as reschedule_requested, then the new slot is
// created as a reschedule_pending proposal. When the proposal cannot be
// created the hold is released and the original gets its previous status back.
type rescheduleSaga struct {
	svc      *Service
	original Booking
	held     bool
	logger   *slog.Logger
}

func newRescheduleSaga(svc *Service, original Booking) *rescheduleSaga {
	return &rescheduleSaga{
		svc:      svc,
		original: original,
		logger:   svc.logger.With("saga", "reschedule", "bookingId", original.ID),
	}
}

func (r *rescheduleSaga) run(ctx context.Context, req RescheduleRequest) (Booking, error) {
	if err := r.hold(ctx); err != nil {
		return Booking{}, err
	}

	proposal, err := r.propose(ctx, req)

	if err != nil {
		if cerr := r.compensate(ctx); cerr != nil {
			r.logger.Error("failed to release reschedule hold", "previousStatus", r.original.Status, "err", cerr)
		}
		return Booking{}, err
	}

	held := r.original
	held.Status = StatusRescheduleRequested
	r.svc.publishStatusUpdated(ctx, held)

	r.logger.Info("reschedule proposed", "proposalId", proposal.ID)

	return proposal, nil
}

func (r *rescheduleSaga) hold(ctx context.Context) error {
	if err := r.svc.repo.SetBookingStatus(ctx, r.original.ID, StatusRescheduleRequested); err != nil {
		return err
	}

	r.held = true

	return nil
}

func (r *rescheduleSaga) propose(ctx context.Context, req RescheduleRequest) (Booking, error) {
	return r.svc.create(ctx, CreateRequest{
		CustomerID:    r.original.CustomerID,
		ServiceID:     r.original.ServiceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Notes:         req.Notes,
		RescheduleOf:  r.original.ID,
		InitialStatus: StatusReschedulePending,
	})
}

// compensate restores the original status. It runs detached from the
// request's cancellation so a client hanging up mid-saga does not leave the
// original on hold.
func (r *rescheduleSaga) compensate(ctx context.Context) error {
	if !r.held {
		return nil
	}

	err := retryDetached(ctx, compensationAttempts, func(ctx context.Context) error {
		return r.svc.repo.SetBookingStatus(ctx, r.original.ID, r.original.Status)
	})

	if err != nil {
		return err
	}

	r.held = false

	return nil
}

// retryDetached runs fn up to attempts times on a context that ignores the
// caller's cancellation, stopping at the first success.
func retryDetached(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	ctx = context.WithoutCancel(ctx)
	logger := slog.Default().With("component", "booking")

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		logger.Warn("write attempt failed", "attempt", attempt, "err", err)
	}

	return err
}
