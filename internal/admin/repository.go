// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/angelamos/realty/internal/core"
)

type InventoryCounts struct {
	Users        int64 `json:"users"        db:"users"`
	Properties   int64 `json:"properties"   db:"properties"`
	Transactions int64 `json:"transactions" db:"transactions"`
	Messages     int64 `json:"messages"     db:"messages"`
	Favorites    int64 `json:"favorites"    db:"favorites"`
}

type Repository interface {
	Counts(ctx context.Context) (*InventoryCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (*InventoryCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)        AS users,
			(SELECT COUNT(*) FROM properties)   AS properties,
			(SELECT COUNT(*) FROM transactions) AS transactions,
			(SELECT COUNT(*) FROM messages)     AS messages,
			(SELECT COUNT(*) FROM favorites)    AS favorites`

	var counts InventoryCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("inventory counts: %w", err)
	}

	return &counts, nil
}
