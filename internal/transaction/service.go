// AngelaMos | 2026
// service.go

package transaction

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/angelamos/realty/internal/search"
)

const (
	suggestionCacheKey = "suggest:project:"
	suggestionCacheTTL = 5 * time.Minute

	recentSalesLimit = 5
)

type Service struct {
	repo  Repository
	cache *redis.Client
}

func NewService(repo Repository, cache *redis.Client) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) Create(
	ctx context.Context,
	agentID int64,
	req CreateTransactionRequest,
) (*Transaction, error) {
	t := &Transaction{
		AgentID:         agentID,
		PropertyID:      req.PropertyID,
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

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateTransactionRequest,
) (*Transaction, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(t, req)

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search runs the stored sale records through the shared filter
// engine, same as listing search.
func (s *Service) Search(
	ctx context.Context,
	criteria search.Criteria,
) ([]Transaction, error) {
	transactions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return search.Apply(transactions, SearchFields, criteria), nil
}

// RecentByProject returns the newest sales for a project, by valuation
// date, capped at five records.
func (s *Service) RecentByProject(
	ctx context.Context,
	projectName string,
) ([]Transaction, error) {
	transactions, err := s.repo.ListByProject(ctx, projectName)
	if err != nil {
		return nil, err
	}

	return search.TopNByDateDesc(transactions, SearchFields, recentSalesLimit), nil
}

// SuggestProjects serves typeahead suggestions. Results are cached
// briefly per prefix; cache failures fall through to the database.
func (s *Service) SuggestProjects(
	ctx context.Context,
	prefix string,
) ([]string, error) {
	key := suggestionCacheKey + strings.ToLower(prefix)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var names []string
			if jsonErr := json.Unmarshal([]byte(cached), &names); jsonErr == nil {
				return names, nil
			}
		}
	}

	names, err := s.repo.ProjectNames(ctx, prefix)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, jsonErr := json.Marshal(names); jsonErr == nil {
			if setErr := s.cache.Set(
				ctx, key, encoded, suggestionCacheTTL,
			).Err(); setErr != nil {
				slog.Debug("suggestion cache write failed", "error", setErr)
			}
		}
	}

	return names, nil
}

func applyUpdate(t *Transaction, req UpdateTransactionRequest) {
	if req.SizeSqFt != nil {
		t.SizeSqFt = *req.SizeSqFt
	}
	if req.PropertyType != nil {
		t.PropertyType = *req.PropertyType
	}
	if req.NoOfFloors != nil {
		t.NoOfFloors = *req.NoOfFloors
	}
	if req.Address != nil {
		t.Address = *req.Address
	}
	if req.ProjectName != nil {
		t.ProjectName = *req.ProjectName
	}
	if req.Price != nil {
		t.Price = *req.Price
	}
	if req.Year != nil {
		t.Year = *req.Year
	}
	if req.PricePerSqft != nil {
		t.PricePerSqft = *req.PricePerSqft
	}
	if req.Facilities != nil {
		t.Facilities = *req.Facilities
	}
	if req.DateOfValuation != nil {
		t.DateOfValuation = req.DateOfValuation
	}
}
