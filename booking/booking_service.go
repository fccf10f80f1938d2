package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hanksha/club-booking-backend/auth"
	"github.com/hanksha/club-booking-backend/catalog"
	"github.com/hanksha/club-booking-backend/clock"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mock.go -package=mocks

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	HasOverlap(ctx context.Context, serviceID string, startsAt, endsAt time.Time, excludeID string) (bool, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBooking(ctx context.Context, b Booking) error
	SetBookingStatus(ctx context.Context, id string, status Status) error
	GetBookingsByServiceAndDate(ctx context.Context, serviceID string, date time.Time, statuses []Status) ([]Booking, error)
	GetBookingsPerCustomer(ctx context.Context, customerID string, filter ListFilter) ([]Booking, error)
	GetBookingsPerClub(ctx context.Context, clubID string, filter ListFilter) ([]Booking, error)
	ExpireBookings(ctx context.Context, now time.Time) (int64, error)
	GetDistinctCustomerIDs(ctx context.Context, query CustomerQuery) ([]string, error)
	GetBookingCountPerService(ctx context.Context, clubID string) ([]ServiceBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context, clubID string) ([]WeekDayBookingCount, error)
}

type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id string) (catalog.Service, error)
	FindClubByID(ctx context.Context, id string) (catalog.Club, error)
}

// EventPublisher enqueues domain events for asynchronous delivery.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	PublishBookingStatusUpdated(ctx context.Context, event BookingStatusUpdated) error
}

const publishTimeout = 2 * time.Second

type Service struct {
	repo    BookingRepository
	catalog ServiceCatalog
	events  EventPublisher
	clock   clock.Clock
	logger  *slog.Logger
}

func NewService(repo BookingRepository, catalog ServiceCatalog, events EventPublisher, clk clock.Clock) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		events:  events,
		clock:   clk,
		logger:  slog.Default().With("component", "booking"),
	}
}

func (s *Service) FindBookingByID(ctx context.Context, actor auth.Actor, id string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if err := s.authorize(ctx, actor, booking); err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func (s *Service) GetBookingStatus(ctx context.Context, id string) (Status, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return "", err
	}

	return booking.Status, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateRequest) (Booking, error) {
	if req.RescheduleOf != "" {
		if _, err := s.repo.GetBookingByID(ctx, req.RescheduleOf); err != nil {
			return Booking{}, err
		}
	}

	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req CreateRequest) (Booking, error) {
	if req.CustomerID == "" {
		return Booking{}, fmt.Errorf("%w: customer id is required", ErrBadRequest)
	}

	service, club, err := s.lookupService(ctx, req.ServiceID)

	if err != nil {
		return Booking{}, err
	}

	loc := s.clock.Location()

	date, err := clock.ParseDate(req.Date, loc)

	if err != nil {
		return Booking{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	start, startErr := clock.ParseClock(req.StartTime)
	end, endErr := clock.ParseClock(req.EndTime)

	if startErr != nil || endErr != nil || start >= end {
		return Booking{}, ErrInvalidTimeRange
	}

	startsAt := clock.At(date, start, loc)
	endsAt := clock.At(date, end, loc)

	if !startsAt.After(s.clock.Now()) {
		return Booking{}, ErrBookingInPast
	}

	if !withinOperatingHours(service, date, loc, start, end) {
		return Booking{}, ErrOutsideOperatingHours
	}

	duration := end - start

	if service.SlotDurationMinutes <= 0 || duration%service.SlotDurationMinutes != 0 {
		return Booking{}, ErrInvalidSlotMultiple
	}

	overlap, err := s.repo.HasOverlap(ctx, service.ID, startsAt, endsAt, "")

	if err != nil {
		return Booking{}, err
	}

	if overlap {
		return Booking{}, ErrSlotConflict
	}

	durationHours := float64(duration) / 60

	status := req.InitialStatus
	if status == "" {
		status = StatusPending
	}

	now := s.clock.Now()

	booking := Booking{
		ID:            uuid.NewString(),
		CustomerID:    req.CustomerID,
		ClubID:        club.ID,
		ServiceID:     service.ID,
		RescheduleOf:  req.RescheduleOf,
		BookingDate:   date,
		StartTime:     clock.FormatClock(start),
		EndTime:       clock.FormatClock(end),
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		DurationHours: durationHours,
		TotalPrice:    math.Round(service.HourlyPrice*durationHours*100) / 100,
		Status:        status,
		PaymentStatus: PaymentPending,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	inserted, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	s.publishCreated(ctx, inserted, service)

	return inserted, nil
}

func withinOperatingHours(service catalog.Service, date time.Time, loc *time.Location, start, end int) bool {
	if !service.OpensOn(clock.Weekday(date, loc)) {
		return false
	}

	opening, err := clock.ParseClock(service.OpeningTime)
	if err != nil {
		return false
	}

	closing, err := clock.ParseClock(service.ClosingTime)
	if err != nil {
		return false
	}

	return start >= opening && end <= closing
}

// UpdateBooking applies a status change, a notes change, or both, on behalf
// of actor.
func (s *Service) UpdateBooking(ctx context.Context, actor auth.Actor, id string, req UpdateRequest) (Booking, error) {
	if req.Status == nil && req.Notes == nil {
		return Booking{}, ErrNothingToUpdate
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if err := s.authorize(ctx, actor, booking); err != nil {
		return Booking{}, err
	}

	updated := booking
	statusChanged := req.Status != nil && *req.Status != booking.Status

	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	if !statusChanged && req.Notes == nil {
		return Booking{}, ErrNothingToUpdate
	}

	if statusChanged {
		to := *req.Status

		if _, ok := ParseStatus(string(to)); !ok {
			return Booking{}, fmt.Errorf("%w: unknown status '%v'", ErrBadRequest, to)
		}

		verdict := Decide(actor.Role, booking.Status, to)

		if err := verdict.Err(); err != nil {
			return Booking{}, err
		}

		if verdict.NeedsExpiry && !IsExpired(booking, s.clock.Now()) {
			return Booking{}, ErrNotExpired
		}

		if !booking.Status.IsActive() && to.IsActive() {
			overlap, err := s.repo.HasOverlap(ctx, booking.ServiceID, booking.StartsAt, booking.EndsAt, booking.ID)

			if err != nil {
				return Booking{}, err
			}

			if overlap {
				return Booking{}, ErrSlotConflict
			}
		}

		updated.Status = to
	}

	updated.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateBooking(ctx, updated); err != nil {
		return Booking{}, err
	}

	if !statusChanged {
		return updated, nil
	}

	if booking.Status == StatusReschedulePending && updated.RescheduleOf != "" {
		if err := s.settleOriginal(ctx, updated); err != nil {
			s.revertProposal(ctx, booking)
			return Booking{}, err
		}
	}

	s.publishStatusUpdated(ctx, updated)

	return updated, nil
}

// revertProposal puts an answered proposal back to reschedule_pending when its
// original could not be settled, so the answer can be given again.
func (s *Service) revertProposal(ctx context.Context, proposal Booking) {
	err := retryDetached(ctx, compensationAttempts, func(ctx context.Context) error {
		return s.repo.UpdateBooking(ctx, proposal)
	})

	if err != nil {
		s.logger.Error("failed to revert reschedule proposal", "bookingId", proposal.ID, "err", err)
	}
}

// settleOriginal resolves the booking a reschedule proposal was made for once
// the proposal leaves reschedule_pending: an accepted proposal cancels the
// original, any other outcome puts the original back to confirmed.
func (s *Service) settleOriginal(ctx context.Context, proposal Booking) error {
	original, err := s.repo.GetBookingByID(ctx, proposal.RescheduleOf)

	if err != nil {
		return fmt.Errorf("failed to load original booking '%v': %w", proposal.RescheduleOf, err)
	}

	if original.Status != StatusRescheduleRequested {
		s.logger.Warn("original booking is no longer on hold", "bookingId", original.ID, "status", original.Status)
		return nil
	}

	next := StatusConfirmed
	if proposal.Status == StatusConfirmed {
		next = StatusCancelledRescheduled
	}

	err = retryDetached(ctx, compensationAttempts, func(ctx context.Context) error {
		return s.repo.SetBookingStatus(ctx, original.ID, next)
	})

	if err != nil {
		return fmt.Errorf("failed to settle original booking '%v': %w", original.ID, err)
	}

	original.Status = next
	s.publishStatusUpdated(ctx, original)

	return nil
}

// RequestReschedule puts the customer's booking on hold and proposes the
// requested slot as a new booking awaiting the club's answer.
func (s *Service) RequestReschedule(ctx context.Context, actor auth.Actor, id string, req RescheduleRequest) (Booking, error) {
	original, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !actor.IsAdmin() && original.CustomerID != actor.ID {
		return Booking{}, ErrNotAllowed
	}

	if !original.Status.IsActive() {
		return Booking{}, ErrInvalidBookingState
	}

	return newRescheduleSaga(s, original).run(ctx, req)
}

func (s *Service) GetAvailableSlots(ctx context.Context, serviceID, date string) ([]string, error) {
	service, err := s.catalog.GetServiceByID(ctx, serviceID)

	if errors.Is(err, catalog.ErrServiceNotFound) {
		return nil, ErrServiceNotFound
	}

	if err != nil {
		return nil, err
	}

	loc := s.clock.Location()

	day, err := clock.ParseDate(date, loc)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	if !service.IsActive || !service.OpensOn(clock.Weekday(day, loc)) {
		return []string{}, nil
	}

	bookings, err := s.repo.GetBookingsByServiceAndDate(ctx, service.ID, day, ActiveStatuses)

	if err != nil {
		return nil, err
	}

	return availableSlots(service, day, loc, bookings), nil
}

// GetBookingsByServiceAndDate is the owner's schedule of one service for one
// day, cancelled and rejected bookings left out.
func (s *Service) GetBookingsByServiceAndDate(ctx context.Context, actor auth.Actor, serviceID, date string) ([]Booking, error) {
	service, err := s.catalog.GetServiceByID(ctx, serviceID)

	if errors.Is(err, catalog.ErrServiceNotFound) {
		return nil, ErrServiceNotFound
	}

	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeClub(ctx, actor, service.ClubID); err != nil {
		return nil, err
	}

	day, err := clock.ParseDate(date, s.clock.Location())

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	visible := slices.DeleteFunc(slices.Clone(allStatuses), func(st Status) bool {
		return slices.Contains(hiddenFromDayView, st)
	})

	return s.repo.GetBookingsByServiceAndDate(ctx, service.ID, day, visible)
}

func (s *Service) GetCustomerBookings(ctx context.Context, customerID string, filter ListFilter) ([]Booking, error) {
	return s.repo.GetBookingsPerCustomer(ctx, customerID, filter.normalized())
}

func (s *Service) GetClubBookings(ctx context.Context, actor auth.Actor, clubID string, filter ListFilter) ([]Booking, error) {
	if _, err := s.authorizeClub(ctx, actor, clubID); err != nil {
		return nil, err
	}

	return s.repo.GetBookingsPerClub(ctx, clubID, filter.normalized())
}

func (s *Service) GetDistinctCustomerIDs(ctx context.Context, query CustomerQuery) ([]string, error) {
	return s.repo.GetDistinctCustomerIDs(ctx, query)
}

func (s *Service) GetBookingCountPerService(ctx context.Context, actor auth.Actor, clubID string) ([]ServiceBookingCount, error) {
	if _, err := s.authorizeClub(ctx, actor, clubID); err != nil {
		return nil, err
	}

	return s.repo.GetBookingCountPerService(ctx, clubID)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context, actor auth.Actor, clubID string) ([]WeekDayBookingCount, error) {
	if _, err := s.authorizeClub(ctx, actor, clubID); err != nil {
		return nil, err
	}

	return s.repo.GetBookingCountPerWeekDay(ctx, clubID)
}

func (s *Service) lookupService(ctx context.Context, serviceID string) (catalog.Service, catalog.Club, error) {
	service, err := s.catalog.GetServiceByID(ctx, serviceID)

	if errors.Is(err, catalog.ErrServiceNotFound) {
		return catalog.Service{}, catalog.Club{}, ErrServiceNotFound
	}

	if err != nil {
		return catalog.Service{}, catalog.Club{}, err
	}

	if !service.IsActive {
		return catalog.Service{}, catalog.Club{}, ErrServiceNotFound
	}

	if service.ClubID == "" {
		return catalog.Service{}, catalog.Club{}, ErrClubNotFound
	}

	club, err := s.findClub(ctx, service.ClubID)

	if err != nil {
		return catalog.Service{}, catalog.Club{}, err
	}

	return service, club, nil
}

func (s *Service) findClub(ctx context.Context, clubID string) (catalog.Club, error) {
	club, err := s.catalog.FindClubByID(ctx, clubID)

	if errors.Is(err, catalog.ErrClubNotFound) {
		return catalog.Club{}, ErrClubNotFound
	}

	return club, err
}

// authorize checks that actor may act on booking: customers on their own
// bookings, owners on bookings of their clubs, admins on everything.
func (s *Service) authorize(ctx context.Context, actor auth.Actor, booking Booking) error {
	switch actor.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RoleCustomer:
		if booking.CustomerID == actor.ID {
			return nil
		}
		return ErrNotAllowed
	case auth.RoleOwner:
		_, err := s.authorizeClub(ctx, actor, booking.ClubID)
		return err
	}

	return ErrNotAllowed
}

func (s *Service) authorizeClub(ctx context.Context, actor auth.Actor, clubID string) (catalog.Club, error) {
	if actor.Role != auth.RoleOwner && actor.Role != auth.RoleAdmin {
		return catalog.Club{}, ErrNotAllowed
	}

	club, err := s.findClub(ctx, clubID)

	if err != nil {
		return catalog.Club{}, err
	}

	if !actor.IsAdmin() && club.OwnerID != actor.ID {
		return catalog.Club{}, ErrNotAllowed
	}

	return club, nil
}

// Event delivery is never allowed to fail or delay a booking operation past
// publishTimeout; errors are only logged.
func (s *Service) publishCreated(ctx context.Context, booking Booking, service catalog.Service) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.events.PublishBookingCreated(ctx, BookingCreated{Booking: booking, Service: service})

	if err != nil {
		s.logger.Error("failed to publish booking created event", "bookingId", booking.ID, "err", err)
	}
}

func (s *Service) publishStatusUpdated(ctx context.Context, booking Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.events.PublishBookingStatusUpdated(ctx, BookingStatusUpdated{
		BookingID: booking.ID,
		NewStatus: booking.Status,
		Booking:   booking,
	})

	if err != nil {
		s.logger.Error("failed to publish booking status event", "bookingId", booking.ID, "status", booking.Status, "err", err)
	}
}
