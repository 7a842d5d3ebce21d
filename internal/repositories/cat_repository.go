package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/catmap/backend/internal/models"
	"go.uber.org/zap"
)

// catRepository provides Cat table data access
type catRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatRepository creates a new cat repository
func NewCatRepository(db *sql.DB, logger *zap.Logger) *catRepository {
	return &catRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new cat into the database
func (r *catRepository) Create(ctx context.Context, cat *models.Cat) error {
	query := `
		INSERT INTO cats (cat_name, weight, birthdate, filename, lon, lat, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		cat.Name,
		cat.Weight,
		cat.Birthdate,
		cat.Filename,
		cat.Location.Coordinates[0],
		cat.Location.Coordinates[1],
		cat.OwnerID,
	)
	if err != nil {
		r.logger.Error("failed to create cat", zap.Error(err))
		return fmt.Errorf("failed to create cat: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cat.ID = int(id)
	return nil
}

// GetByID retrieves a cat by ID with its owner expanded to the sanitized
// projection. Only the owner's id, username and email are selected.
func (r *catRepository) GetByID(ctx context.Context, catID int) (*models.Cat, error) {
	query := `
		SELECT c.id, c.cat_name, c.weight, c.birthdate, c.filename, c.lon, c.lat, c.owner_id,
		       u.id, u.username, u.email
		FROM cats c
		JOIN users u ON u.id = c.owner_id
		WHERE c.id = ?
	`

	cat := &models.Cat{Location: models.Point{Type: "Point"}}
	owner := models.UserOutput{}
	err := r.db.QueryRowContext(ctx, query, catID).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Weight,
		&cat.Birthdate,
		&cat.Filename,
		&cat.Location.Coordinates[0],
		&cat.Location.Coordinates[1],
		&cat.OwnerID,
		&owner.ID,
		&owner.Username,
		&owner.Email,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get cat by id", zap.Error(err), zap.Int("cat_id", catID))
		return nil, fmt.Errorf("failed to get cat by id: %w", err)
	}

	cat.Owner = &owner
	return cat, nil
}

// List retrieves all cats with owners expanded to the sanitized projection
func (r *catRepository) List(ctx context.Context) ([]models.Cat, error) {
	query := `
		SELECT c.id, c.cat_name, c.weight, c.birthdate, c.filename, c.lon, c.lat, c.owner_id,
		       u.id, u.username, u.email
		FROM cats c
		JOIN users u ON u.id = c.owner_id
		ORDER BY c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list cats", zap.Error(err))
		return nil, fmt.Errorf("failed to list cats: %w", err)
	}
	defer rows.Close()

	return scanCatRows(rows, true)
}

// ListByOwner retrieves all cats owned by the given user
func (r *catRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Cat, error) {
	query := `
		SELECT id, cat_name, weight, birthdate, filename, lon, lat, owner_id
		FROM cats
		WHERE owner_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.logger.Error("failed to list cats by owner", zap.Error(err), zap.Int("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list cats by owner: %w", err)
	}
	defer rows.Close()

	return scanCatRows(rows, false)
}

// ListByBoundingBox retrieves all cats whose location falls inside the
// axis-aligned rectangle spanned by the two corners, boundary inclusive.
// LEAST/GREATEST make the query insensitive to corner ordering.
func (r *catRepository) ListByBoundingBox(ctx context.Context, lon1, lat1, lon2, lat2 float64) ([]models.Cat, error) {
	query := `
		SELECT id, cat_name, weight, birthdate, filename, lon, lat, owner_id
		FROM cats
		WHERE lon BETWEEN LEAST(?, ?) AND GREATEST(?, ?)
		  AND lat BETWEEN LEAST(?, ?) AND GREATEST(?, ?)
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, lon1, lon2, lon1, lon2, lat1, lat2, lat1, lat2)
	if err != nil {
		r.logger.Error("failed to list cats by bounding box", zap.Error(err))
		return nil, fmt.Errorf("failed to list cats by bounding box: %w", err)
	}
	defer rows.Close()

	return scanCatRows(rows, false)
}

// Update replaces the mutable fields of a cat. The owner reference is
// immutable through this path.
func (r *catRepository) Update(ctx context.Context, cat *models.Cat) error {
	query := `
		UPDATE cats
		SET cat_name = ?, weight = ?, birthdate = ?, filename = ?, lon = ?, lat = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		cat.Name,
		cat.Weight,
		cat.Birthdate,
		cat.Filename,
		cat.Location.Coordinates[0],
		cat.Location.Coordinates[1],
		cat.ID,
	)
	if err != nil {
		r.logger.Error("failed to update cat", zap.Error(err), zap.Int("cat_id", cat.ID))
		return fmt.Errorf("failed to update cat: %w", err)
	}

	return nil
}

// Delete removes a cat by ID
func (r *catRepository) Delete(ctx context.Context, catID int) error {
	query := `DELETE FROM cats WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, catID)
	if err != nil {
		r.logger.Error("failed to delete cat", zap.Error(err), zap.Int("cat_id", catID))
		return fmt.Errorf("failed to delete cat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// scanCatRows scans cat rows, optionally with the joined owner projection
func scanCatRows(rows *sql.Rows, withOwner bool) ([]models.Cat, error) {
	cats := []models.Cat{}
	for rows.Next() {
		cat := models.Cat{Location: models.Point{Type: "Point"}}
		dest := []any{
			&cat.ID,
			&cat.Name,
			&cat.Weight,
			&cat.Birthdate,
			&cat.Filename,
			&cat.Location.Coordinates[0],
			&cat.Location.Coordinates[1],
			&cat.OwnerID,
		}
		var owner models.UserOutput
		if withOwner {
			dest = append(dest, &owner.ID, &owner.Username, &owner.Email)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan cat row: %w", err)
		}
		if withOwner {
			cat.Owner = &owner
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cat rows: %w", err)
	}

	return cats, nil
}
