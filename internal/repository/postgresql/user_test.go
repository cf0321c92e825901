package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userTestColumns = []string{
	"id", "external_id", "full_name", "department", "position",
	"is_admin", "reminder", "created_at", "updated_at",
}

func userRow(id, externalID string, fullName *string, isAdmin bool) *pgxmock.Rows {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(userTestColumns).
		AddRow(id, externalID, fullName, (*string)(nil), (*string)(nil), isAdmin, (*string)(nil), now, now)
}

func TestUserRepository_GetOrCreateByExternalID_Existing(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE external_id = \$1`).
		WithArgs("ext-1").
		WillReturnRows(userRow("u1", "ext-1", nil, false))

	u, err := repo.GetOrCreateByExternalID(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "ext-1", u.ExternalID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetOrCreateByExternalID_Creates(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE external_id = \$1`).
		WithArgs("ext-1").
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "ext-1").
		WillReturnRows(userRow("u1", "ext-1", nil, false))

	u, err := repo.GetOrCreateByExternalID(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.False(t, u.IsAdmin)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetOrCreateByExternalID_LostRace(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	// Another request created the row between our select and insert; the
	// ON CONFLICT DO NOTHING insert returns no row and we re-select.
	mock.ExpectQuery(`SELECT .+ FROM users WHERE external_id = \$1`).
		WithArgs("ext-1").
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "ext-1").
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE external_id = \$1`).
		WithArgs("ext-1").
		WillReturnRows(userRow("u1", "ext-1", nil, false))

	u, err := repo.GetOrCreateByExternalID(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetOrCreateByExternalID_EmptyID(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetOrCreateByExternalID(context.Background(), "")
	assert.ErrorIs(t, err, user.ErrExternalIDRequired)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListOrdered(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	alice := "Alice Smith"
	rows := userRow("u1", "ext-1", &alice, true)
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	rows.AddRow("u2", "ext-2", (*string)(nil), (*string)(nil), (*string)(nil), false, (*string)(nil), now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY COALESCE(full_name, external_id) ASC, id ASC`)).
		WillReturnRows(rows)

	users, err := repo.ListOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice Smith", users[0].DisplayName())
	assert.Equal(t, "ext-2", users[1].DisplayName())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	name := "Alice Smith"
	isAdmin := true

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET full_name = $1, is_admin = $2, updated_at = NOW()`)).
		WithArgs(name, isAdmin, "u1").
		WillReturnRows(userRow("u1", "ext-1", &name, true))

	u, err := repo.Update(context.Background(), user.UpdateUserRequest{
		ID:       "u1",
		FullName: &name,
		IsAdmin:  &isAdmin,
	})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	require.NotNil(t, u.FullName)
	assert.Equal(t, "Alice Smith", *u.FullName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	name := "Alice Smith"
	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs(name, "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), user.UpdateUserRequest{ID: "missing", FullName: &name})
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
