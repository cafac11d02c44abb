// AngelaMos | 2026
// service.go

package property

import (
	"context"

	"github.com/angelamos/realty/internal/search"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	agentID int64,
	req CreatePropertyRequest,
) (*Property, error) {
	p := &Property{
		AgentID:         agentID,
		SizeSqFt:        req.SizeSqFt,
		PropertyType:    req.PropertyType,
		NoOfFloors:      req.NoOfFloors,
		Address:         req.Address,
		ProjectName:     req.ProjectName,
		Price:           req.Price,
		Year:            req.Year,
		PricePerSqft:    req.PricePerSqft,
		Facilities:      req.Facilities,
		DateOfValuation: req.DateOfValuation,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdatePropertyRequest,
) (*Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(p, req)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *Service) ListByAgent(
	ctx context.Context,
	agentID int64,
) ([]Property, error) {
	return s.repo.ListByAgent(ctx, agentID)
}

// Search loads the full listing set and runs it through the filter
// engine. Both listing and transaction searches share the one engine
// instead of per-entity query builders.
func (s *Service) Search(
	ctx context.Context,
	criteria search.Criteria,
) ([]Property, error) {
	properties, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return search.Apply(properties, SearchFields, criteria), nil
}

func applyUpdate(p *Property, req UpdatePropertyRequest) {
	if req.SizeSqFt != nil {
		p.SizeSqFt = *req.SizeSqFt
	}
	if req.PropertyType != nil {
		p.PropertyType = *req.PropertyType
	}
	if req.NoOfFloors != nil {
		p.NoOfFloors = *req.NoOfFloors
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.ProjectName != nil {
		p.ProjectName = *req.ProjectName
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Year != nil {
		p.Year = *req.Year
	}
	if req.PricePerSqft != nil {
		p.PricePerSqft = *req.PricePerSqft
	}
	if req.Facilities != nil {
		p.Facilities = *req.Facilities
	}
	if req.DateOfValuation != nil {
		p.DateOfValuation = req.DateOfValuation
	}
}
