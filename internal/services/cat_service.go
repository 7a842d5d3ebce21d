package services

import (
	"context"
	"errors"
	"strings"

	"github.com/catmap/backend/internal/models"
	"github.com/catmap/backend/internal/repositories"
	"go.uber.org/zap"
)

// CatRepository is the interface that wraps methods for Cat table data access
type CatRepository interface {
	// Method Create inserts a new cat into the database.
	//
	// "cat" parameter carries the fields of the new cat; its ID is filled
	// in on success.
	Create(ctx context.Context, cat *models.Cat) error
	// Method GetByID retrieves a cat by ID with its owner expanded to the
	// sanitized projection.
	//
	// If cat with such ID does not exist, repositories.ErrNotFound will be
	// returned together with "nil" value.
	GetByID(ctx context.Context, catID int) (*models.Cat, error)
	// Method List retrieves all cats with owners expanded to the sanitized
	// projection.
	List(ctx context.Context) ([]models.Cat, error)
	// Method ListByOwner retrieves all cats owned by the given user.
	ListByOwner(ctx context.Context, ownerID int) ([]models.Cat, error)
	// Method ListByBoundingBox retrieves all cats inside the axis-aligned
	// rectangle spanned by the two corners, boundary inclusive.
	ListByBoundingBox(ctx context.Context, lon1, lat1, lon2, lat2 float64) ([]models.Cat, error)
	// Method Update replaces the mutable fields of a cat.
	Update(ctx context.Context, cat *models.Cat) error
	// Method Delete removes a cat by ID.
	//
	// If cat with such ID does not exist, repositories.ErrNotFound will be
	// returned.
	Delete(ctx context.Context, catID int) error
}

// catService implements the cat lifecycle: creation tied to an authenticated
// owner, reads with owner enrichment, gate-checked update/delete and the
// admin-only operations
type catService struct {
	catRepo  CatRepository
	recorder Recorder
	logger   *zap.Logger
}

// NewCatService creates a new cat service
func NewCatService(catRepo CatRepository, recorder Recorder, logger *zap.Logger) *catService {
	return &catService{
		catRepo:  catRepo,
		recorder: recorder,
		logger:   logger,
	}
}

// Create builds a new cat from the request, the caller as owner, the
// uploaded filename (empty when no upload happened) and the resolved
// location or the origin point. Returns the created record with the literal
// caller identity as owner, not a fresh reload.
func (s *catService) Create(ctx context.Context, caller *models.Caller, req *models.CreateCatRequest, filename string) (*models.Cat, error) {
	if caller == nil {
		return nil, models.NewUnauthenticatedError("Not authenticated")
	}

	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "cat_name is required")
	}
	if req.Weight <= 0 {
		problems = append(problems, "weight is required")
	}
	if strings.TrimSpace(req.Birthdate) == "" {
		problems = append(problems, "birthdate is required")
	}
	if len(problems) > 0 {
		msg := strings.Join(problems, ", ")
		s.logger.Info("cat create validation failed", zap.String("problems", msg))
		return nil, models.NewValidationError(msg)
	}

	location := models.OriginPoint()
	if req.Location != nil {
		location = *req.Location
		location.Type = "Point"
	}

	cat := &models.Cat{
		Name:      strings.TrimSpace(req.Name),
		Weight:    req.Weight,
		Birthdate: req.Birthdate,
		Filename:  filename,
		Location:  location,
		OwnerID:   caller.ID,
	}

	if err := s.catRepo.Create(ctx, cat); err != nil {
		s.logger.Error("failed to create cat", zap.Error(err))
		return nil, models.NewInternalError("Error creating cat")
	}

	s.recorder.RecordCatCreated()

	owner := caller.Output()
	cat.Owner = &owner
	return cat, nil
}

// GetByID returns a cat with its owner expanded to the sanitized projection
func (s *catService) GetByID(ctx context.Context, catID int) (*models.Cat, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("Cat not found")
		}
		return nil, models.NewInternalError("Error getting cat")
	}

	return cat, nil
}

// List returns all cats with owners expanded. An empty table degrades to an
// empty list with a log line rather than a not-found failure.
func (s *catService) List(ctx context.Context) ([]models.Cat, error) {
	cats, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError("Error getting cats")
	}

	if len(cats) == 0 {
		s.logger.Info("no cats found")
	}
	return cats, nil
}

// ListByOwner returns all cats owned by the caller
func (s *catService) ListByOwner(ctx context.Context, callerID int) ([]models.Cat, error) {
	cats, err := s.catRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, models.NewInternalError("Error getting cats")
	}

	return cats, nil
}

// ListByBoundingBox returns all cats inside the rectangle spanned by the two
// corner coordinates, in storage-natural order
func (s *catService) ListByBoundingBox(ctx context.Context, lon1, lat1, lon2, lat2 float64) ([]models.Cat, error) {
	cats, err := s.catRepo.ListByBoundingBox(ctx, lon1, lat1, lon2, lat2)
	if err != nil {
		return nil, models.NewInternalError("Error getting cats")
	}

	return cats, nil
}

// UpdateSelf merges the provided fields onto the cat and persists it, after
// the authorization gate allows the caller (owner or admin). Nil patch
// fields keep the stored values. The owner reference is never touched.
func (s *catService) UpdateSelf(ctx context.Context, catID int, caller *models.Caller, patch *models.UpdateCatRequest) (*models.Cat, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("Cat not found")
		}
		return nil, models.NewInternalError("Error updating cat")
	}

	if err := Authorize(cat.OwnerID, caller); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		cat.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Weight != nil {
		cat.Weight = *patch.Weight
	}
	if patch.Birthdate != nil {
		cat.Birthdate = *patch.Birthdate
	}
	if patch.Location != nil {
		cat.Location = *patch.Location
		cat.Location.Type = "Point"
	}

	if err := s.catRepo.Update(ctx, cat); err != nil {
		s.logger.Error("failed to update cat", zap.Error(err), zap.Int("cat_id", catID))
		return nil, models.NewInternalError("Error updating cat")
	}

	return cat, nil
}

// DeleteSelf removes a cat after the authorization gate allows the caller.
// Returns the pre-deletion record as confirmation.
func (s *catService) DeleteSelf(ctx context.Context, catID int, caller *models.Caller) (*models.Cat, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("Cat not found")
		}
		return nil, models.NewInternalError("Error deleting cat")
	}

	if err := Authorize(cat.OwnerID, caller); err != nil {
		return nil, err
	}

	if err := s.catRepo.Delete(ctx, catID); err != nil {
		s.logger.Error("failed to delete cat", zap.Error(err), zap.Int("cat_id", catID))
		return nil, models.NewInternalError("Error deleting cat")
	}

	return cat, nil
}

// UpdateAsAdmin is the admin-only owner reassignment. Admin access is
// enforced by the role middleware upstream. The contract is "reassign
// owner", but the effecting write is deliberately not performed: the record
// is loaded and returned unmodified.
// TODO: wire the owner reassignment once product confirms the intended
// semantics of the admin endpoints; they currently match the observed
// stubbed behavior.
func (s *catService) UpdateAsAdmin(ctx context.Context, catID int, newOwnerID int) (*models.Cat, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("Cat not found")
		}
		return nil, models.NewInternalError("Error updating cat")
	}

	return cat, nil
}

// DeleteAsAdmin is the admin-only force delete. Same stub contract as
// UpdateAsAdmin: the record is loaded and returned, but not deleted.
func (s *catService) DeleteAsAdmin(ctx context.Context, catID int) (*models.Cat, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.NewNotFoundError("Cat not found")
		}
		return nil, models.NewInternalError("Error deleting cat")
	}

	return cat, nil
}
