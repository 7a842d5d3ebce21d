package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/catmap/backend/internal/auth/middleware"
	"github.com/catmap/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user business logic
type UserService interface {
	// Register validates the candidate, hashes the password and persists a
	// new user with the default role.
	//
	// "req" parameter carries the registration fields.
	//
	// Returns the sanitized projection of the created user, or a
	// models.AppError on validation or storage failure.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserOutput, error)
	// GetByID returns the sanitized projection of a user.
	//
	// "userID" parameter is used to retrieve a user by ID.
	GetByID(ctx context.Context, userID int) (*models.UserOutput, error)
	// List returns the sanitized projection of every user.
	List(ctx context.Context) ([]models.UserOutput, error)
	// UpdateSelf merges the patch onto the caller's own record.
	//
	// "callerID" parameter identifies the caller; ownership is implicit.
	// "patch" parameter carries the fields to overwrite; nil fields are kept.
	UpdateSelf(ctx context.Context, callerID int, patch *models.UpdateUserRequest) (*models.UserOutput, error)
	// DeleteSelf removes the caller's own record and returns the projection
	// captured before deletion.
	DeleteSelf(ctx context.Context, callerID int) (*models.UserOutput, error)
	// IdentityFromToken returns the caller's sanitized projection from the
	// authenticated context, with no storage lookup.
	IdentityFromToken(caller *models.Caller) (*models.UserOutput, error)
}

// UserHandler handles user HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/token", h.IdentityFromToken)
			r.Put("/", h.UpdateSelf)
			r.Delete("/", h.DeleteSelf)
		})
		r.Get("/{id}", h.GetByID)
	})
}

// Register handles POST /users
// @Summary Register a new user
// @Description Register a new user with username, email and password. The password is hashed before storage and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User to register"
// @Success 200 {object} DataResponse "Created user (sanitized)"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, DataResponse{Message: "User created successfully", Data: user})
}

// List handles GET /users
// @Summary List all users
// @Description List all users. Password hashes and roles are excluded at the query level.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserOutput "Users"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// GetByID handles GET /users/{id}
// @Summary Get a user by ID
// @Description Get the sanitized projection of a user.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserOutput "User"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// UpdateSelf handles PUT /users
// @Summary Update the current user
// @Description Update the authenticated user's own record. Fields absent from the body are preserved.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} DataResponse "Updated user (sanitized)"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [put]
func (h *UserHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		h.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var patch models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateSelf(r.Context(), caller.ID, &patch)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, DataResponse{Message: "User updated successfully", Data: user})
}

// DeleteSelf handles DELETE /users
// @Summary Delete the current user
// @Description Delete the authenticated user's own record. Returns the projection captured before deletion.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DataResponse "Deleted user (sanitized)"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [delete]
func (h *UserHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		h.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.userService.DeleteSelf(r.Context(), caller.ID)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, DataResponse{Message: "User deleted!", Data: user})
}

// IdentityFromToken handles GET /users/token
// @Summary Get the identity behind the presented token
// @Description Return the sanitized identity resolved from the access token, with no database lookup.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserOutput "Caller identity"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /users/token [get]
func (h *UserHandler) IdentityFromToken(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.IdentityFromToken(middleware.GetCaller(r.Context()))
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
