package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scholar-portal/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("A", "a@x.com", "digest", domain.RoleStudent).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("user-1", now, now))

	repo := NewUserRepository(mock)
	user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "digest", Role: domain.RoleStudent}

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, "user-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("B", "a@x.com", "digest", domain.RoleStudent).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := NewUserRepository(mock)
	err := repo.Create(context.Background(), &domain.User{
		Name: "B", Email: "a@x.com", PasswordHash: "digest", Role: domain.RoleStudent,
	})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailNotFound(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("missing@x.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	_, err := repo.GetByEmail(context.Background(), "missing@x.com")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
		}).AddRow("user-1", "A", "a@x.com", "digest", domain.RoleStudent, now, now))

	repo := NewUserRepository(mock)
	user, err := repo.GetByID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ConnectionFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("a@x.com").
		WillReturnError(&pgconn.PgError{Code: "08006"})

	repo := NewUserRepository(mock)
	_, err := repo.GetByEmail(context.Background(), "a@x.com")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
