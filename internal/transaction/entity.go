// AngelaMos | 2026
// entity.go

package transaction

import (
	"time"

	"github.com/angelamos/realty/internal/search"
)

// Transaction is a completed or valuated sale record. It carries the
// same searchable surface as a listing plus an optional link back to
// the property it settled.
type Transaction struct {
	ID              int64      `db:"id"`
	AgentID         int64      `db:"agent_id"`
	PropertyID      *int64     `db:"property_id"`
	SizeSqFt        string     `db:"size_sq_ft"`
	PropertyType    string     `db:"property_type"`
	NoOfFloors      int        `db:"no_of_floors"`
	Address         string     `db:"address"`
	ProjectName     string     `db:"project_name"`
	Price           float64    `db:"price"`
	Year            int        `db:"year"`
	PricePerSqft    float64    `db:"price_per_sqft"`
	Facilities      string     `db:"facilities"`
	DateOfValuation *time.Time `db:"date_of_valuation"`
}

func SearchFields(t *Transaction) search.Fields {
	return search.Fields{
		SizeSqFt:        t.SizeSqFt,
		PropertyType:    t.PropertyType,
		NoOfFloors:      t.NoOfFloors,
		Address:         t.Address,
		ProjectName:     t.ProjectName,
		Price:           t.Price,
		Year:            t.Year,
		PricePerSqft:    t.PricePerSqft,
		Facilities:      t.Facilities,
		DateOfValuation: t.DateOfValuation,
	}
}
