package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dayoff"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

type dayOffRepository struct {
	db *database.DB
}

func NewDayOffRepository(db *database.DB) dayoff.DayOffRepository {
	return &dayOffRepository{db: db}
}

// Book implements dayoff.DayOffRepository. The UNIQUE constraint on
// weekends.date makes the check-and-insert atomic: of two concurrent bookings
// for one date, exactly one insert succeeds and the other trips 23505.
func (r *dayOffRepository) Book(ctx context.Context, userID string, date time.Time) (dayoff.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekends (user_id, date)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	booking := dayoff.Booking{UserID: userID, Date: date}
	err := q.QueryRow(ctx, query, userID, date).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return dayoff.Booking{}, dayoff.ErrDateTaken
		}
		return dayoff.Booking{}, fmt.Errorf("failed to book day off: %w", err)
	}

	return booking, nil
}

// IsDateTaken implements dayoff.DayOffRepository.
func (r *dayOffRepository) IsDateTaken(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM weekends WHERE date = $1)`

	var taken bool
	if err := q.QueryRow(ctx, query, date).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check day-off date: %w", err)
	}

	return taken, nil
}

// ListDatesBetween implements dayoff.DayOffRepository.
func (r *dayOffRepository) ListDatesBetween(ctx context.Context, minDate, maxDate time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date FROM weekends
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan booked date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate booked dates: %w", err)
	}

	return dates, nil
}

// List implements dayoff.DayOffRepository.
func (r *dayOffRepository) List(ctx context.Context) ([]dayoff.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.user_id, w.date, w.created_at, COALESCE(u.full_name, u.external_id)
		FROM weekends w
		JOIN users u ON u.id = w.user_id
		ORDER BY w.date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list day-off bookings: %w", err)
	}
	defer rows.Close()

	var bookings []dayoff.Booking
	for rows.Next() {
		var b dayoff.Booking
		var userName string
		if err := rows.Scan(&b.ID, &b.UserID, &b.Date, &b.CreatedAt, &userName); err != nil {
			return nil, fmt.Errorf("failed to scan day-off booking: %w", err)
		}
		b.UserName = &userName
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day-off bookings: %w", err)
	}

	return bookings, nil
}

// DeleteByDate implements dayoff.DayOffRepository.
func (r *dayOffRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM weekends WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete day-off booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dayoff.ErrBookingNotFound
	}

	return nil
}
