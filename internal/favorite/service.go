// AngelaMos | 2026
// service.go

package favorite

import (
	"context"
	"fmt"

	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/property"
)

// EndpointChecker reports whether a referenced account or listing row
// exists.
type EndpointChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service guards the user-to-property favorite relation: no duplicate
// pairs, no pairs pointing at missing rows.
type Service struct {
	repo       Repository
	users      EndpointChecker
	properties EndpointChecker
}

func NewService(
	repo Repository,
	users EndpointChecker,
	properties EndpointChecker,
) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		properties: properties,
	}
}

// Add creates the pair. The duplicate check runs before the existence
// checks, so re-favoriting always reads as Conflict rather than an
// ambiguous NotFound. A constraint violation from a concurrent add is
// already mapped to Conflict by the repository.
func (s *Service) Add(ctx context.Context, userID, propertyID int64) error {
	exists, err := s.repo.Exists(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("add favorite: %w", core.ErrConflict)
	}

	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return fmt.Errorf("add favorite: user %d: %w", userID, core.ErrNotFound)
	}

	propertyExists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return err
	}
	if !propertyExists {
		return fmt.Errorf(
			"add favorite: property %d: %w",
			propertyID,
			core.ErrNotFound,
		)
	}

	return s.repo.Create(ctx, userID, propertyID)
}

func (s *Service) Remove(ctx context.Context, userID, propertyID int64) error {
	return s.repo.Delete(ctx, userID, propertyID)
}

func (s *Service) ListForUser(
	ctx context.Context,
	userID int64,
) ([]property.Property, error) {
	return s.repo.ListPropertiesForUser(ctx, userID)
}
