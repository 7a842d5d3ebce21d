package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/catmap/backend/internal/models"
	"github.com/catmap/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter carries the fields of the new user; its ID is filled
	// in on success.
	//
	// If some error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByID retrieves a user by ID.
	//
	// "userID" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, repositories.ErrNotFound will be
	// returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method List retrieves the sanitized projection of every user.
	// Password hashes and roles are excluded at the query level.
	List(ctx context.Context) ([]models.UserOutput, error)
	// Method Update replaces the mutable fields of a user.
	Update(ctx context.Context, user *models.User) error
	// Method Delete removes a user by ID.
	//
	// If user with such ID does not exist, repositories.ErrNotFound will be
	// returned.
	Delete(ctx context.Context, userID int) error
}

// Recorder counts domain events for the metrics endpoint
type Recorder interface {
	RecordUserRegistered()
	RecordCatCreated()
}

// userService implements the user lifecycle: registration with credential
// hashing, sanitized reads, self-update and self-deletion
type userService struct {
	userRepo UserRepository
	recorder Recorder
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, recorder Recorder, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		recorder: recorder,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Register validates the candidate, hashes the password and persists a new
// user with the default role. Returns the sanitized projection.
// bcrypt generates a fresh random salt for every hash, so no process-wide
// salt state exists.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserOutput, error) {
	var problems []string
	if strings.TrimSpace(req.Username) == "" {
		problems = append(problems, "username is required")
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		problems = append(problems, "email is required")
	} else if !emailRegex.MatchString(email) {
		problems = append(problems, "invalid email format")
	}
	if req.Password == "" {
		problems = append(problems, "password is required")
	}
	if len(problems) > 0 {
		msg := strings.Join(problems, ", ")
		s.logger.Info("register validation failed", zap.String("problems", msg))
		return nil, models.NewValidationError(msg)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError("Error creating user")
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, models.NewInternalError("Error creating user")
	}

	s.recorder.RecordUserRegistered()

	output := user.Output()
	return &output, nil
}

// GetByID returns the sanitized projection of a user
func (s *userService) GetByID(ctx context.Context, userID int) (*models.UserOutput, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("User not found")
		}
		return nil, models.NewInternalError("Error getting user")
	}

	output := user.Output()
	return &output, nil
}

// List returns the sanitized projection of every user. An empty table is
// not an error: the result degrades to an empty list with a log line.
func (s *userService) List(ctx context.Context) ([]models.UserOutput, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError("Error getting users")
	}

	if len(users) == 0 {
		s.logger.Info("no users found")
	}
	return users, nil
}

// UpdateSelf merges the provided fields onto the caller's own record and
// persists it. Nil patch fields keep the stored values. A new password is
// hashed before storage. Ownership is implicit: the only reachable record
// is the caller's own.
func (s *userService) UpdateSelf(ctx context.Context, callerID int, patch *models.UpdateUserRequest) (*models.UserOutput, error) {
	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("User not found")
		}
		return nil, models.NewInternalError("Error updating user")
	}

	if patch.Username != nil {
		user.Username = strings.TrimSpace(*patch.Username)
	}
	if patch.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		if !emailRegex.MatchString(email) {
			return nil, models.NewValidationError("invalid email format")
		}
		user.Email = email
	}
	if patch.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError("Error updating user")
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", zap.Error(err), zap.Int("user_id", callerID))
		return nil, models.NewInternalError("Error updating user")
	}

	output := user.Output()
	return &output, nil
}

// DeleteSelf removes the caller's own record and returns the sanitized
// projection captured before deletion as confirmation of what was removed.
func (s *userService) DeleteSelf(ctx context.Context, callerID int) (*models.UserOutput, error) {
	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("User not found")
		}
		return nil, models.NewInternalError("Error deleting user")
	}

	output := user.Output()

	if err := s.userRepo.Delete(ctx, callerID); err != nil {
		s.logger.Error("failed to delete user", zap.Error(err), zap.Int("user_id", callerID))
		return nil, models.NewInternalError("Error deleting user")
	}

	return &output, nil
}

// IdentityFromToken returns the sanitized projection of the authenticated
// caller straight from the request context, with no storage lookup.
func (s *userService) IdentityFromToken(caller *models.Caller) (*models.UserOutput, error) {
	if caller == nil {
		return nil, models.NewUnauthenticatedError("No token found")
	}

	output := caller.Output()
	return &output, nil
}
