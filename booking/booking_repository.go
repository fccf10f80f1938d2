package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanksha/club-booking-backend/clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

func NewRepository(pool *pgxpool.Pool, loc *time.Location) *Repository {
	return &Repository{pool: pool, loc: loc}
}

const bookingColumns = `id, customer_id, club_id, service_id, COALESCE(reschedule_of, ''), booking_date, start_time, end_time,
		starts_at, ends_at, duration_hours, total_price, status, payment_status, COALESCE(notes, ''), created_at, updated_at`

func scanBooking(row pgx.Row, loc *time.Location) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ClubID,
		&booking.ServiceID,
		&booking.RescheduleOf,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.StartsAt,
		&booking.EndsAt,
		&booking.DurationHours,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	booking.BookingDate = clock.CalendarDate(booking.BookingDate, loc)

	return booking, err
}

func collectBookings(rows pgx.Rows, loc *time.Location) ([]Booking, error) {
	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows, loc)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func statusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM club_booking.bookings
			WHERE id=$1;
		`

	booking, err := scanBooking(r.pool.QueryRow(ctx, sql, id), r.loc)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

// HasOverlap reports whether an active booking of the service intersects
// [startsAt, endsAt). excludeID is ignored when empty.
func (r *Repository) HasOverlap(ctx context.Context, serviceID string, startsAt, endsAt time.Time, excludeID string) (bool, error) {
	sql := `
			SELECT EXISTS (
				SELECT 1 FROM club_booking.bookings
				WHERE service_id=$1
				AND status = ANY($2)
				AND starts_at < $3 AND ends_at > $4
				AND id <> $5
			);
		`

	var exists bool
	err := r.pool.QueryRow(ctx, sql, serviceID, statusStrings(ActiveStatuses), endsAt, startsAt, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check overlapping bookings for service '%v': %w", serviceID, err)
	}

	return exists, nil
}

// InsertBooking stores a new booking. The overlap check is repeated inside
// the transaction under an advisory lock keyed on service and date, so two
// concurrent inserts for the same slot cannot both succeed.
func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	lockKey := booking.ServiceID + ":" + booking.BookingDate.In(r.loc).Format(time.DateOnly)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, lockKey); err != nil {
		return Booking{}, fmt.Errorf("failed to lock slot '%v': %w", lockKey, err)
	}

	var conflict bool
	err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM club_booking.bookings
				WHERE service_id=$1
				AND status = ANY($2)
				AND starts_at < $3 AND ends_at > $4
			);
		`, booking.ServiceID, statusStrings(ActiveStatuses), booking.EndsAt, booking.StartsAt).Scan(&conflict)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if conflict {
		return Booking{}, ErrSlotConflict
	}

	var rescheduleOf *string
	if booking.RescheduleOf != "" {
		rescheduleOf = &booking.RescheduleOf
	}

	sql := `
			INSERT INTO club_booking.bookings(
			id, customer_id, club_id, service_id, reschedule_of, booking_date, start_time, end_time,
			starts_at, ends_at, duration_hours, total_price, status, payment_status, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16);
		`

	_, err = tx.Exec(ctx, sql,
		booking.ID,
		booking.CustomerID,
		booking.ClubID,
		booking.ServiceID,
		rescheduleOf,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.StartsAt,
		booking.EndsAt,
		booking.DurationHours,
		booking.TotalPrice,
		string(booking.Status),
		string(booking.PaymentStatus),
		booking.Notes,
		booking.CreatedAt,
	)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	booking.UpdatedAt = booking.CreatedAt

	return booking, nil
}

func (r *Repository) UpdateBooking(ctx context.Context, booking Booking) error {
	sql := `
			UPDATE club_booking.bookings
			SET
				status=$1,
				notes=$2,
				updated_at=$3
			WHERE id=$4;
		`

	tag, err := r.pool.Exec(ctx, sql,
		string(booking.Status),
		booking.Notes,
		booking.UpdatedAt,
		booking.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status Status) error {
	sql := `
            UPDATE club_booking.bookings
            SET status=$1, updated_at=now()
            WHERE id=$2;
        `

	tag, err := r.pool.Exec(ctx, sql, string(status), id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) GetBookingsByServiceAndDate(ctx context.Context, serviceID string, date time.Time, statuses []Status) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
			FROM club_booking.bookings
			WHERE service_id=$1 AND booking_date=$2 AND status = ANY($3)
			ORDER BY start_time ASC;
		`

	rows, err := r.pool.Query(ctx, sql, serviceID, date, statusStrings(statuses))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for service '%v': %w", serviceID, err)
	}

	return collectBookings(rows, r.loc)
}

func (r *Repository) GetBookingsPerCustomer(ctx context.Context, customerID string, filter ListFilter) ([]Booking, error) {
	return r.listBookings(ctx, "customer_id", customerID, filter)
}

func (r *Repository) GetBookingsPerClub(ctx context.Context, clubID string, filter ListFilter) ([]Booking, error) {
	return r.listBookings(ctx, "club_id", clubID, filter)
}

func (r *Repository) listBookings(ctx context.Context, column, value string, filter ListFilter) ([]Booking, error) {
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	sql := `SELECT ` + bookingColumns + `
			FROM club_booking.bookings
			WHERE ` + column + `=$1 AND ($2::text IS NULL OR status=$2)
			ORDER BY booking_date DESC, start_time DESC
			LIMIT $3 OFFSET $4;
		`

	rows, err := r.pool.Query(ctx, sql, value, status, filter.Limit, filter.Skip)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %v '%v': %w", column, value, err)
	}

	return collectBookings(rows, r.loc)
}

// ExpireBookings moves every active booking that ended at or before now to
// expired in a single statement and returns how many were changed.
func (r *Repository) ExpireBookings(ctx context.Context, now time.Time) (int64, error) {
	sql := `
			UPDATE club_booking.bookings
			SET status=$1, updated_at=$2
			WHERE status = ANY($3) AND ends_at <= $2;
		`

	tag, err := r.pool.Exec(ctx, sql, string(StatusExpired), now, statusStrings(ActiveStatuses))

	if err != nil {
		return 0, fmt.Errorf("failed to expire bookings: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) GetDistinctCustomerIDs(ctx context.Context, query CustomerQuery) ([]string, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if query.ClubID != "" {
		add("club_id=$%d", query.ClubID)
	}
	if query.ServiceID != "" {
		add("service_id=$%d", query.ServiceID)
	}
	if len(query.Statuses) > 0 {
		add("status = ANY($%d)", statusStrings(query.Statuses))
	}
	if query.From != nil {
		add("booking_date >= $%d", *query.From)
	}
	if query.To != nil {
		add("booking_date <= $%d", *query.To)
	}

	sql := `SELECT DISTINCT customer_id FROM club_booking.bookings WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY customer_id;`

	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct customers: %w", err)
	}

	customerIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])

	if err != nil {
		return nil, fmt.Errorf("failed to scan customer ids: %w", err)
	}

	return customerIDs, nil
}

func (r *Repository) GetBookingCountPerService(ctx context.Context, clubID string) ([]ServiceBookingCount, error) {
	sql := `
		SELECT service_id, COUNT(*) as booking_count FROM club_booking.bookings
		WHERE club_id=$1 AND status IN ('confirmed', 'completed')
		GROUP BY service_id
		ORDER BY booking_count DESC
	`

	rows, err := r.pool.Query(ctx, sql, clubID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per service: %w", err)
	}

	defer rows.Close()

	stats := []ServiceBookingCount{}

	for rows.Next() {
		var serviceID string
		var count int
		err := rows.Scan(&serviceID, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, ServiceBookingCount{ServiceID: serviceID, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context, clubID string) ([]WeekDayBookingCount, error) {
	sql := `
		SELECT
			TO_CHAR(booking_date, 'FMDay') as day_of_week,
			COUNT(*) as booking_count
		FROM
			club_booking.bookings
		WHERE club_id=$1 AND status IN ('confirmed', 'completed')
		GROUP BY
			day_of_week
		ORDER BY
			booking_count DESC;
	`

	rows, err := r.pool.Query(ctx, sql, clubID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayBookingCount{}

	for rows.Next() {
		var weekDay string
		var count int
		err := rows.Scan(&weekDay, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, WeekDayBookingCount{WeekDay: weekDay, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}
