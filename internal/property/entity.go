// AngelaMos | 2026
// entity.go

package property

import (
	"time"

	"github.com/angelamos/realty/internal/search"
)

type Property struct {
	ID              int64      `db:"id"`
	AgentID         int64      `db:"agent_id"`
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

// SearchFields projects a listing into the filter engine's view.
func SearchFields(p *Property) search.Fields {
	return search.Fields{
		SizeSqFt:        p.SizeSqFt,
		PropertyType:    p.PropertyType,
		NoOfFloors:      p.NoOfFloors,
		Address:         p.Address,
		ProjectName:     p.ProjectName,
		Price:           p.Price,
		Year:            p.Year,
		PricePerSqft:    p.PricePerSqft,
		Facilities:      p.Facilities,
		DateOfValuation: p.DateOfValuation,
	}
}
