// AngelaMos | 2026
// dto.go

package transaction

import (
	"time"
)

type CreateTransactionRequest struct {
	PropertyID   *int64  `json:"property_id,omitempty"`
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

type UpdateTransactionRequest struct {
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

type TransactionResponse struct {
	ID              int64      `json:"id"`
	AgentID         int64      `json:"agent_id"`
	PropertyID      *int64     `json:"property_id,omitempty"`
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

type SuggestionsResponse struct {
	ProjectNames []string `json:"project_names"`
}

func ToTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AgentID:         t.AgentID,
		PropertyID:      t.PropertyID,
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

func ToTransactionResponseList(transactions []Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, ToTransactionResponse(&transactions[i]))
	}
	return responses
}
