//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserQueries) UpdateUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockUserQueries
func (m *MockUserQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		userID    uuid.UUID
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			userID:    testUserID,
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			userID:    testUserID,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, tt.userID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)

	row := sqlc.Users{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		Name:         "Guest",
		Title:        pgtype.Text{String: "Ms", Valid: true},
		PasswordHash: "hash",
	}

	t.Run("ユーザーが見つかる", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "guest@example.com").Return(row, nil)

		u, err := NewUserRepository(mockQueries).FindByEmail(context.Background(), mockQueries, email)

		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		assert.Equal(t, "Ms", *u.Title())
		assert.Nil(t, u.PhoneNumber())
		assert.Equal(t, "hash", u.PasswordHash())
	})

	t.Run("存在しないメールはNOT_FOUND", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "guest@example.com").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindByEmail(context.Background(), mockQueries, email)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	email, err := user.NewEmail("dup@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Dup", "hash")
	require.NoError(t, err)

	mockQueries := new(MockUserQueries)
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	mockQueries.On("CreateUser", mock.Anything, mock.Anything, sqlc.CreateUserParams{
		Email:        "dup@example.com",
		Name:         "Dup",
		PasswordHash: "hash",
	}).Return(uuid.Nil, dup)

	id, err := NewUserRepository(mockQueries).Create(context.Background(), mockQueries, u)

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
