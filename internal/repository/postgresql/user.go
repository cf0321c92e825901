package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, external_id, full_name, department, position, is_admin, reminder, created_at, updated_at`

// GetOrCreateByExternalID implements user.UserRepository. First contact from
// an unknown external identity creates the record; the ON CONFLICT clause
// keeps a concurrent first contact from creating two.
func (r *userRepository) GetOrCreateByExternalID(ctx context.Context, externalID string) (user.User, error) {
	if externalID == "" {
		return user.User{}, user.ErrExternalIDRequired
	}

	q := GetQuerier(ctx, r.db)

	selectQuery := fmt.Sprintf(`SELECT %s FROM users WHERE external_id = $1`, userColumns)

	existing, err := scanUser(q.QueryRow(ctx, selectQuery, externalID))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, fmt.Errorf("failed to get user by external id: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO users (id, external_id)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING %s
	`, userColumns)

	created, err := scanUser(q.QueryRow(ctx, insertQuery, id.String(), externalID))
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	// Lost the race to a concurrent first contact; the row exists now.
	existing, err = scanUser(q.QueryRow(ctx, selectQuery, externalID))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user after concurrent create: %w", err)
	}
	return existing, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// ListOrdered implements user.UserRepository.
func (r *userRepository) ListOrdered(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY COALESCE(full_name, external_id) ASC, id ASC
	`, userColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUserFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	argNum := 1

	if req.FullName != nil {
		sets = append(sets, fmt.Sprintf("full_name = $%d", argNum))
		args = append(args, *req.FullName)
		argNum++
	}
	if req.Department != nil {
		sets = append(sets, fmt.Sprintf("department = $%d", argNum))
		args = append(args, *req.Department)
		argNum++
	}
	if req.Position != nil {
		sets = append(sets, fmt.Sprintf("position = $%d", argNum))
		args = append(args, *req.Position)
		argNum++
	}
	if req.IsAdmin != nil {
		sets = append(sets, fmt.Sprintf("is_admin = $%d", argNum))
		args = append(args, *req.IsAdmin)
		argNum++
	}
	if req.Reminder != nil {
		sets = append(sets, fmt.Sprintf("reminder = $%d", argNum))
		args = append(args, *req.Reminder)
		argNum++
	}

	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argNum, userColumns)
	args = append(args, req.ID)

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// Delete implements user.UserRepository. Operations and day-off bookings
// cascade at the schema level.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.ExternalID, &u.FullName, &u.Department, &u.Position,
		&u.IsAdmin, &u.Reminder, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func scanUserFromRows(rows pgx.Rows) (user.User, error) {
	var u user.User
	err := rows.Scan(
		&u.ID, &u.ExternalID, &u.FullName, &u.Department, &u.Position,
		&u.IsAdmin, &u.Reminder, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
