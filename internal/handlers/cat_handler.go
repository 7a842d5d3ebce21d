package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/catmap/backend/internal/auth/middleware"
	"github.com/catmap/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatService is the interface that wraps methods for cat business logic
type CatService interface {
	// Create builds a new cat owned by the caller. A nil caller fails with
	// a 401 models.AppError.
	//
	// "filename" parameter is the uploaded filename, or "" when the request
	// carried no upload.
	Create(ctx context.Context, caller *models.Caller, req *models.CreateCatRequest, filename string) (*models.Cat, error)
	// GetByID returns a cat with its owner expanded to the sanitized
	// projection.
	GetByID(ctx context.Context, catID int) (*models.Cat, error)
	// List returns all cats with owners expanded.
	List(ctx context.Context) ([]models.Cat, error)
	// ListByOwner returns all cats owned by the caller.
	ListByOwner(ctx context.Context, callerID int) ([]models.Cat, error)
	// ListByBoundingBox returns all cats inside the rectangle spanned by
	// the two corner coordinates, boundary inclusive.
	ListByBoundingBox(ctx context.Context, lon1, lat1, lon2, lat2 float64) ([]models.Cat, error)
	// UpdateSelf merges the patch onto the cat after the authorization gate
	// allows the caller.
	UpdateSelf(ctx context.Context, catID int, caller *models.Caller, patch *models.UpdateCatRequest) (*models.Cat, error)
	// DeleteSelf removes the cat after the authorization gate allows the
	// caller. Returns the pre-deletion record.
	DeleteSelf(ctx context.Context, catID int, caller *models.Caller) (*models.Cat, error)
	// UpdateAsAdmin is the admin-only owner reassignment stub.
	UpdateAsAdmin(ctx context.Context, catID int, newOwnerID int) (*models.Cat, error)
	// DeleteAsAdmin is the admin-only force delete stub.
	DeleteAsAdmin(ctx context.Context, catID int) (*models.Cat, error)
}

// CatHandler handles cat HTTP requests
type CatHandler struct {
	BaseHandler
	catService CatService
}

// NewCatHandler creates a new cat handler
func NewCatHandler(catService CatService, logger *zap.Logger) *CatHandler {
	return &CatHandler{
		BaseHandler: BaseHandler{Logger: logger},
		catService:  catService,
	}
}

// RegisterRoutes registers all cat handler routes. Mutations sit behind the
// optional-auth middleware so the domain layer decides 401 vs 403 per
// record; the admin routes sit behind the role middleware.
func (h *CatHandler) RegisterRoutes(r chi.Router, optionalAuth, requireAuth, adminOnly func(http.Handler) http.Handler) {
	r.Route("/cats", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/area", h.ListByBoundingBox)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/user", h.ListByOwner)
		})
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Post("/", h.Create)
			r.Put("/{id}", h.UpdateSelf)
			r.Delete("/{id}", h.DeleteSelf)
		})
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Put("/admin/{id}", h.UpdateAsAdmin)
			r.Delete("/admin/{id}", h.DeleteAsAdmin)
		})
		r.Get("/{id}", h.GetByID)
	})
}

// catID parses the {id} route parameter
func catID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// decodeCreateRequest reads the creation payload from a JSON body or a
// multipart form. The multipart path also extracts the uploaded filename;
// storing the bytes is the upload side-channel's concern, only the name is
// recorded on the cat.
func (h *CatHandler) decodeCreateRequest(r *http.Request) (*models.CreateCatRequest, string, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req models.CreateCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, "", err
		}
		return &req, "", nil
	}

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		return nil, "", err
	}

	req := models.CreateCatRequest{
		Name:      r.FormValue("cat_name"),
		Birthdate: r.FormValue("birthdate"),
	}
	if v := r.FormValue("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, "", err
		}
		req.Weight = weight
	}
	if v := r.FormValue("location"); v != "" {
		var location models.Point
		if err := json.Unmarshal([]byte(v), &location); err != nil {
			return nil, "", err
		}
		req.Location = &location
	}

	filename := ""
	if file, header, err := r.FormFile("cat"); err == nil {
		file.Close()
		filename = header.Filename
	}

	return &req, filename, nil
}

// Create handles POST /cats
// @Summary Create a new cat
// @Description Create a cat owned by the authenticated caller. Accepts JSON or multipart form data with an optional "cat" file part whose filename is recorded. Location defaults to the origin point.
// @Tags cats
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param cat body models.CreateCatRequest true "Cat to create"
// @Success 200 {object} DataResponse "Created cat"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats [post]
func (h *CatHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, filename, err := h.decodeCreateRequest(r)
	if err != nil {
		h.Logger.Error("failed to decode create request", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.catService.Create(r.Context(), middleware.GetCaller(r.Context()), req, filename)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, DataResponse{Message: "Cat created", Data: cat})
}

// List handles GET /cats
// @Summary List all cats
// @Description List all cats with owners expanded to the sanitized projection.
// @Tags cats
// @Produce json
// @Success 200 {array} models.Cat "Cats"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats [get]
func (h *CatHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catService.List(r.Context())
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cats)
}

// ListByOwner handles GET /cats/user
// @Summary List the caller's cats
// @Description List all cats owned by the authenticated caller.
// @Tags cats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Cat "Cats"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/user [get]
func (h *CatHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		h.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	cats, err := h.catService.ListByOwner(r.Context(), caller.ID)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cats)
}

// ListByBoundingBox handles GET /cats/area
// @Summary List cats inside a bounding box
// @Description List all cats whose location falls inside the rectangle spanned by the two corner coordinates, boundary inclusive.
// @Tags cats
// @Produce json
// @Param lon1 query number true "First corner longitude"
// @Param lat1 query number true "First corner latitude"
// @Param lon2 query number true "Second corner longitude"
// @Param lat2 query number true "Second corner latitude"
// @Success 200 {array} models.Cat "Cats"
// @Failure 500 {object} map[string]string "Malformed coordinates or query error"
// @Router /cats/area [get]
func (h *CatHandler) ListByBoundingBox(w http.ResponseWriter, r *http.Request) {
	// Malformed or missing coordinates surface as the generic query error,
	// matching the single failure mode clients already observe.
	coords := make([]float64, 4)
	for i, name := range []string{"lon1", "lat1", "lon2", "lat2"} {
		v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
		if err != nil {
			h.Logger.Info("malformed bounding box", zap.String("param", name))
			h.RespondError(w, http.StatusInternalServerError, "Error getting cats")
			return
		}
		coords[i] = v
	}

	cats, err := h.catService.ListByBoundingBox(r.Context(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cats)
}

// GetByID handles GET /cats/{id}
// @Summary Get a cat by ID
// @Description Get a cat with its owner expanded to the sanitized projection.
// @Tags cats
// @Produce json
// @Param id path int true "Cat ID"
// @Success 200 {object} models.Cat "Cat"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id} [get]
func (h *CatHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	cat, err := h.catService.GetByID(r.Context(), id)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cat)
}

// UpdateSelf handles PUT /cats/{id}
// @Summary Update a cat
// @Description Update a cat. Allowed for the owner or an admin; fields absent from the body are preserved. Returns the bare updated record.
// @Tags cats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Cat ID"
// @Param cat body models.UpdateCatRequest true "Fields to update"
// @Success 200 {object} models.Cat "Updated cat"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 403 {object} map[string]string "Not authorized"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id} [put]
func (h *CatHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var patch models.UpdateCatRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.catService.UpdateSelf(r.Context(), id, middleware.GetCaller(r.Context()), &patch)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cat)
}

// DeleteSelf handles DELETE /cats/{id}
// @Summary Delete a cat
// @Description Delete a cat. Allowed for the owner or an admin. Returns the pre-deletion record.
// @Tags cats
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Cat ID"
// @Success 200 {object} models.Cat "Deleted cat"
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 403 {object} map[string]string "Not authorized"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/{id} [delete]
func (h *CatHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	cat, err := h.catService.DeleteSelf(r.Context(), id, middleware.GetCaller(r.Context()))
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cat)
}

// AdminUpdateRequest represents an admin owner reassignment request
type AdminUpdateRequest struct {
	Owner int `json:"owner"`
}

// UpdateAsAdmin handles PUT /cats/admin/{id}
// @Summary Reassign a cat's owner (admin)
// @Description Admin-only owner reassignment. The reassignment itself is currently a stub: the record is returned unmodified.
// @Tags cats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Cat ID"
// @Param body body AdminUpdateRequest true "New owner"
// @Success 200 {object} models.Cat "Cat"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/admin/{id} [put]
func (h *CatHandler) UpdateAsAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var req AdminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.catService.UpdateAsAdmin(r.Context(), id, req.Owner)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cat)
}

// DeleteAsAdmin handles DELETE /cats/admin/{id}
// @Summary Force delete a cat (admin)
// @Description Admin-only delete. The delete itself is currently a stub: the record is returned and left in place.
// @Tags cats
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Cat ID"
// @Success 200 {object} models.Cat "Cat"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Cat not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cats/admin/{id} [delete]
func (h *CatHandler) DeleteAsAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := catID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	cat, err := h.catService.DeleteAsAdmin(r.Context(), id)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cat)
}
