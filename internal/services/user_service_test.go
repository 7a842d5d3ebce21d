package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/catmap/backend/internal/models"
	"github.com/catmap/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// stubRecorder is a no-op Recorder for service tests
type stubRecorder struct {
	usersRegistered int
	catsCreated     int
}

func (r *stubRecorder) RecordUserRegistered() { r.usersRegistered++ }
func (r *stubRecorder) RecordCatCreated()     { r.catsCreated++ }

// mockUserRepository is a mock implementation of UserRepository for service tests
type mockUserRepository struct {
	user      *models.User
	users     []models.UserOutput
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	listErr   error

	created *models.User
	updated *models.User
	deleted []int
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.UserOutput, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.users, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = user
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, userID)
	return nil
}

func newUserService(repo *mockUserRepository) (*userService, *stubRecorder) {
	recorder := &stubRecorder{}
	return NewUserService(repo, recorder, zap.NewNop()), recorder
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name           string
		req            *models.RegisterRequest
		repo           *mockUserRepository
		expectedError  bool
		expectedStatus int
	}{
		{
			name: "success",
			req:  &models.RegisterRequest{Username: "Alice", Email: "a@x.com", Password: "secret"},
			repo: &mockUserRepository{},
		},
		{
			name:           "missing username",
			req:            &models.RegisterRequest{Email: "a@x.com", Password: "secret"},
			repo:           &mockUserRepository{},
			expectedError:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email and password",
			req:            &models.RegisterRequest{Username: "Alice"},
			repo:           &mockUserRepository{},
			expectedError:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email format",
			req:            &models.RegisterRequest{Username: "Alice", Email: "not-an-email", Password: "secret"},
			repo:           &mockUserRepository{},
			expectedError:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage failure",
			req:            &models.RegisterRequest{Username: "Alice", Email: "a@x.com", Password: "secret"},
			repo:           &mockUserRepository{createErr: errors.New("database error")},
			expectedError:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, recorder := newUserService(tt.repo)

			output, err := svc.Register(context.Background(), tt.req)

			if tt.expectedError {
				require.Error(t, err)
				appErr, ok := err.(*models.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.expectedStatus, appErr.Status)
				assert.Nil(t, output)
				assert.Zero(t, recorder.usersRegistered)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, 1, output.ID)
			assert.Equal(t, "Alice", output.Username)
			assert.Equal(t, "a@x.com", output.Email)
			assert.Equal(t, 1, recorder.usersRegistered)
		})
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := &mockUserRepository{}
	svc, _ := newUserService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "Alice",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	// The stored value is never the plaintext and verifies as a bcrypt hash
	assert.NotEqual(t, "secret", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret")))
	assert.Equal(t, models.RoleUser, repo.created.Role)
}

func TestUserService_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		repo           *mockUserRepository
		expectedError  bool
		expectedStatus int
	}{
		{
			name: "success",
			repo: &mockUserRepository{user: &models.User{
				ID: 3, Username: "bob", Email: "b@x.com", PasswordHash: "hash", Role: models.RoleAdmin,
			}},
		},
		{
			name:           "not found",
			repo:           &mockUserRepository{getErr: repositories.ErrNotFound},
			expectedError:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "storage failure",
			repo:           &mockUserRepository{getErr: errors.New("database error")},
			expectedError:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(tt.repo)

			output, err := svc.GetByID(context.Background(), 3)

			if tt.expectedError {
				require.Error(t, err)
				appErr, ok := err.(*models.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.expectedStatus, appErr.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &models.UserOutput{ID: 3, Username: "bob", Email: "b@x.com"}, output)
		})
	}
}

func TestUserService_List_EmptyIsNotAnError(t *testing.T) {
	svc, _ := newUserService(&mockUserRepository{users: []models.UserOutput{}})

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_UpdateSelf(t *testing.T) {
	username := "newname"
	email := "NEW@X.COM"
	password := "newsecret"
	badEmail := "nope"

	tests := []struct {
		name           string
		patch          *models.UpdateUserRequest
		repo           *mockUserRepository
		expectedError  bool
		expectedStatus int
		check          func(t *testing.T, repo *mockUserRepository)
	}{
		{
			name:  "partial patch preserves absent fields",
			patch: &models.UpdateUserRequest{Username: &username},
			repo: &mockUserRepository{user: &models.User{
				ID: 1, Username: "old", Email: "a@x.com", PasswordHash: "hash", Role: models.RoleUser,
			}},
			check: func(t *testing.T, repo *mockUserRepository) {
				assert.Equal(t, "newname", repo.updated.Username)
				assert.Equal(t, "a@x.com", repo.updated.Email)
				assert.Equal(t, "hash", repo.updated.PasswordHash)
			},
		},
		{
			name:  "email is normalized",
			patch: &models.UpdateUserRequest{Email: &email},
			repo: &mockUserRepository{user: &models.User{
				ID: 1, Username: "old", Email: "a@x.com", PasswordHash: "hash",
			}},
			check: func(t *testing.T, repo *mockUserRepository) {
				assert.Equal(t, "new@x.com", repo.updated.Email)
			},
		},
		{
			name:  "new password is hashed",
			patch: &models.UpdateUserRequest{Password: &password},
			repo: &mockUserRepository{user: &models.User{
				ID: 1, Username: "old", Email: "a@x.com", PasswordHash: "hash",
			}},
			check: func(t *testing.T, repo *mockUserRepository) {
				assert.NotEqual(t, "newsecret", repo.updated.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updated.PasswordHash), []byte("newsecret")))
			},
		},
		{
			name:  "invalid email is rejected",
			patch: &models.UpdateUserRequest{Email: &badEmail},
			repo: &mockUserRepository{user: &models.User{
				ID: 1, Username: "old", Email: "a@x.com", PasswordHash: "hash",
			}},
			expectedError:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "record vanished",
			patch:          &models.UpdateUserRequest{Username: &username},
			repo:           &mockUserRepository{getErr: repositories.ErrNotFound},
			expectedError:  true,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(tt.repo)

			output, err := svc.UpdateSelf(context.Background(), 1, tt.patch)

			if tt.expectedError {
				require.Error(t, err)
				appErr, ok := err.(*models.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.expectedStatus, appErr.Status)
				assert.Nil(t, tt.repo.updated)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, output)
			require.NotNil(t, tt.repo.updated)
			tt.check(t, tt.repo)
		})
	}
}

func TestUserService_DeleteSelf(t *testing.T) {
	tests := []struct {
		name           string
		repo           *mockUserRepository
		expectedError  bool
		expectedStatus int
	}{
		{
			name: "returns the projection captured before deletion",
			repo: &mockUserRepository{user: &models.User{
				ID: 4, Username: "carol", Email: "c@x.com", PasswordHash: "hash",
			}},
		},
		{
			name:           "not found",
			repo:           &mockUserRepository{getErr: repositories.ErrNotFound},
			expectedError:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "delete failure",
			repo: &mockUserRepository{
				user:      &models.User{ID: 4, Username: "carol", Email: "c@x.com"},
				deleteErr: errors.New("database error"),
			},
			expectedError:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(tt.repo)

			output, err := svc.DeleteSelf(context.Background(), 4)

			if tt.expectedError {
				require.Error(t, err)
				appErr, ok := err.(*models.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.expectedStatus, appErr.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &models.UserOutput{ID: 4, Username: "carol", Email: "c@x.com"}, output)
			assert.Equal(t, []int{4}, tt.repo.deleted)
		})
	}
}

func TestUserService_IdentityFromToken(t *testing.T) {
	svc, _ := newUserService(&mockUserRepository{})

	t.Run("anonymous caller fails with 401", func(t *testing.T) {
		output, err := svc.IdentityFromToken(nil)

		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
		assert.Nil(t, output)
	})

	t.Run("resolved caller is projected without a storage lookup", func(t *testing.T) {
		caller := &models.Caller{ID: 9, Username: "dora", Email: "d@x.com", Role: models.RoleAdmin}

		output, err := svc.IdentityFromToken(caller)

		require.NoError(t, err)
		assert.Equal(t, &models.UserOutput{ID: 9, Username: "dora", Email: "d@x.com"}, output)
	})
}
