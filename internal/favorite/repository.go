// AngelaMos | 2026
// repository.go

package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/property"
)

type Repository interface {
	Create(ctx context.Context, userID, propertyID int64) error
	Delete(ctx context.Context, userID, propertyID int64) error
	Exists(ctx context.Context, userID, propertyID int64) (bool, error)
	ListPropertiesForUser(
		ctx context.Context,
		userID int64,
	) ([]property.Property, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts the pair. The unique constraint is the authority on
// duplicates; a violation under a concurrent add comes back as
// ErrConflict.
func (r *repository) Create(
	ctx context.Context,
	userID, propertyID int64,
) error {
	query := `
		INSERT INTO favorites (user_id, property_id)
		VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, userID, propertyID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create favorite: %w", core.ErrConflict)
		}
		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

func (r *repository) Delete(
	ctx context.Context,
	userID, propertyID int64,
) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, propertyID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete favorite: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(
	ctx context.Context,
	userID, propertyID int64,
) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, propertyID); err != nil {
		return false, fmt.Errorf("check favorite exists: %w", err)
	}

	return exists, nil
}

func (r *repository) ListPropertiesForUser(
	ctx context.Context,
	userID int64,
) ([]property.Property, error) {
	query := `
		SELECT p.id, p.agent_id, p.size_sq_ft, p.property_type,
		       p.no_of_floors, p.address, p.project_name, p.price, p.year,
		       p.price_per_sqft, p.facilities, p.date_of_valuation
		FROM properties p
		JOIN favorites f ON f.property_id = p.id
		WHERE f.user_id = $1`

	var properties []property.Property
	if err := r.db.SelectContext(ctx, &properties, query, userID); err != nil {
		return nil, fmt.Errorf("list favorite properties: %w", err)
	}

	return properties, nil
}
