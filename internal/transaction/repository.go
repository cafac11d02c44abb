// AngelaMos | 2026
// repository.go

package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/angelamos/realty/internal/core"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Transaction, error)
	ListByProject(ctx context.Context, projectName string) ([]Transaction, error)
	ProjectNames(ctx context.Context, prefix string) ([]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const transactionColumns = `id, agent_id, property_id, size_sq_ft,
       property_type, no_of_floors, address, project_name, price, year,
       price_per_sqft, facilities, date_of_valuation`

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	query := `
		INSERT INTO transactions (agent_id, property_id, size_sq_ft,
		                          property_type, no_of_floors, address,
		                          project_name, price, year, price_per_sqft,
		                          facilities, date_of_valuation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.db.GetContext(ctx, &t.ID, query,
		t.AgentID,
		t.PropertyID,
		t.SizeSqFt,
		t.PropertyType,
		t.NoOfFloors,
		t.Address,
		t.ProjectName,
		t.Price,
		t.Year,
		t.PricePerSqft,
		t.Facilities,
		t.DateOfValuation,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE id = $1`,
		transactionColumns,
	)

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get transaction: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Transaction) error {
	query := `
		UPDATE transactions
		SET size_sq_ft = $2, property_type = $3, no_of_floors = $4,
		    address = $5, project_name = $6, price = $7, year = $8,
		    price_per_sqft = $9, facilities = $10, date_of_valuation = $11
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.SizeSqFt,
		t.PropertyType,
		t.NoOfFloors,
		t.Address,
		t.ProjectName,
		t.Price,
		t.Year,
		t.PricePerSqft,
		t.Facilities,
		t.DateOfValuation,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update transaction: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete transaction: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListAll(ctx context.Context) ([]Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions ORDER BY id`,
		transactionColumns,
	)

	var transactions []Transaction
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}

func (r *repository) ListByProject(
	ctx context.Context,
	projectName string,
) ([]Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE project_name ILIKE $1 ORDER BY id`,
		transactionColumns,
	)

	var transactions []Transaction
	err := r.db.SelectContext(
		ctx,
		&transactions,
		query,
		"%"+escapeLike(projectName)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions by project: %w", err)
	}

	return transactions, nil
}

func (r *repository) ProjectNames(
	ctx context.Context,
	prefix string,
) ([]string, error) {
	query := `
		SELECT DISTINCT project_name
		FROM transactions
		WHERE project_name ILIKE $1
		ORDER BY project_name
		LIMIT 20`

	var names []string
	err := r.db.SelectContext(ctx, &names, query, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("project name suggestions: %w", err)
	}

	return names, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
