// AngelaMos | 2026
// repository.go

package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/realty/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id int64) (*Property, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Property, error)
	ListByAgent(ctx context.Context, agentID int64) ([]Property, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const propertyColumns = `id, agent_id, size_sq_ft, property_type, no_of_floors,
       address, project_name, price, year, price_per_sqft, facilities,
       date_of_valuation`

func (r *repository) Create(ctx context.Context, p *Property) error {
	query := `
		INSERT INTO properties (agent_id, size_sq_ft, property_type,
		                        no_of_floors, address, project_name, price,
		                        year, price_per_sqft, facilities,
		                        date_of_valuation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.GetContext(ctx, &p.ID, query,
		p.AgentID,
		p.SizeSqFt,
		p.PropertyType,
		p.NoOfFloors,
		p.Address,
		p.ProjectName,
		p.Price,
		p.Year,
		p.PricePerSqft,
		p.Facilities,
		p.DateOfValuation,
	)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Property, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM properties WHERE id = $1`,
		propertyColumns,
	)

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Property) error {
	query := `
		UPDATE properties
		SET size_sq_ft = $2, property_type = $3, no_of_floors = $4,
		    address = $5, project_name = $6, price = $7, year = $8,
		    price_per_sqft = $9, facilities = $10, date_of_valuation = $11
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.SizeSqFt,
		p.PropertyType,
		p.NoOfFloors,
		p.Address,
		p.ProjectName,
		p.Price,
		p.Year,
		p.PricePerSqft,
		p.Facilities,
		p.DateOfValuation,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update property: %w", core.ErrNotFound)
	}

	return nil
}

// Delete removes the listing. Favorites referencing it cascade away in
// the schema.
func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete property: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListAll(ctx context.Context) ([]Property, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM properties ORDER BY id`,
		propertyColumns,
	)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

func (r *repository) ListByAgent(
	ctx context.Context,
	agentID int64,
) ([]Property, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM properties WHERE agent_id = $1 ORDER BY id`,
		propertyColumns,
	)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query, agentID); err != nil {
		return nil, fmt.Errorf("list properties by agent: %w", err)
	}

	return properties, nil
}

func (r *repository) ExistsByID(
	ctx context.Context,
	id int64,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM properties WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check property exists: %w", err)
	}

	return exists, nil
}
