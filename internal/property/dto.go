// AngelaMos | 2026
// dto.go

package property

import (
	"time"
)

type CreatePropertyRequest struct {
	SizeSqFt     string  `json:"size_sq_ft"     validate:"required,max=50"`
	PropertyType string  `json:"property_type"  validate:"required,max=100"`
	NoOfFloors   int     `json:"no_of_floors"   validate:"gte=0"`
	Address      string  `json:"address"        validate:"required,max=500"`
	ProjectName  string  `json:"project_name"   validate:"required,max=200"`
	Price        float64 `json:"price"          validate:"gte=0"`
	Year         int     `json:"year"           validate:"gte=0"`
	PricePerSqft float64 `json:"price_per_sqft" validate:"gte=0"`
	Facilities   string  `json:"facilities"     validate:"omitempty,max=1000"`

	DateOfValuation *time.Time `json:"date_of_valuation,omitempty"`
}

type UpdatePropertyRequest struct {
	SizeSqFt     *string  `json:"size_sq_ft,omitempty"     validate:"omitempty,max=50"`
	PropertyType *string  `json:"property_type,omitempty"  validate:"omitempty,max=100"`
	NoOfFloors   *int     `json:"no_of_floors,omitempty"   validate:"omitempty,gte=0"`
	Address      *string  `json:"address,omitempty"        validate:"omitempty,max=500"`
	ProjectName  *string  `json:"project_name,omitempty"   validate:"omitempty,max=200"`
	Price        *float64 `json:"price,omitempty"          validate:"omitempty,gte=0"`
	Year         *int     `json:"year,omitempty"           validate:"omitempty,gte=0"`
	PricePerSqft *float64 `json:"price_per_sqft,omitempty" validate:"omitempty,gte=0"`
	Facilities   *string  `json:"facilities,omitempty"     validate:"omitempty,max=1000"`

	DateOfValuation *time.Time `json:"date_of_valuation,omitempty"`
}

type PropertyResponse struct {
	ID              int64      `json:"id"`
	AgentID         int64      `json:"agent_id"`
	SizeSqFt        string     `json:"size_sq_ft"`
	PropertyType    string     `json:"property_type"`
	NoOfFloors      int        `json:"no_of_floors"`
	Address         string     `json:"address"`
	ProjectName     string     `json:"project_name"`
	Price           float64    `json:"price"`
	Year            int        `json:"year"`
	PricePerSqft    float64    `json:"price_per_sqft"`
	Facilities      string     `json:"facilities,omitempty"`
	DateOfValuation *time.Time `json:"date_of_valuation,omitempty"`
}

func ToPropertyResponse(p *Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID,
		AgentID:         p.AgentID,
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

func ToPropertyResponseList(properties []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, ToPropertyResponse(&properties[i]))
	}
	return responses
}
