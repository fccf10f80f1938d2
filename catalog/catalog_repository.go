package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetServiceByID(ctx context.Context, id string) (Service, error) {
	sql := `
			SELECT id, club_id, name, hourly_price, slot_duration_minutes, is_active, available_days, opening_time, closing_time
			FROM club_booking.services
			WHERE id=$1;
		`

	var service Service
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&service.ID,
		&service.ClubID,
		&service.Name,
		&service.HourlyPrice,
		&service.SlotDurationMinutes,
		&service.IsActive,
		&service.AvailableDays,
		&service.OpeningTime,
		&service.ClosingTime,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, ErrServiceNotFound
	}

	if err != nil {
		return Service{}, fmt.Errorf("failed to fetch service with id %v: %w", id, err)
	}

	return service, nil
}

func (r *Repository) FindClubByID(ctx context.Context, id string) (Club, error) {
	sql := `
			SELECT id, owner_id, name
			FROM club_booking.clubs
			WHERE id=$1;
		`

	var club Club
	err := r.pool.QueryRow(ctx, sql, id).Scan(&club.ID, &club.OwnerID, &club.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return Club{}, ErrClubNotFound
	}

	if err != nil {
		return Club{}, fmt.Errorf("failed to fetch club with id %v: %w", id, err)
	}

	return club, nil
}
