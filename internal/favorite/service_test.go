// AngelaMos | 2026
// service_test.go

package favorite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/property"
)

type pair struct {
	userID     int64
	propertyID int64
}

type fakeRepository struct {
	pairs      map[pair]struct{}
	properties map[int64]property.Property
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		pairs:      make(map[pair]struct{}),
		properties: make(map[int64]property.Property),
	}
}

func (f *fakeRepository) Create(
	_ context.Context,
	userID, propertyID int64,
) error {
	key := pair{userID, propertyID}
	if _, ok := f.pairs[key]; ok {
		return fmt.Errorf("create favorite: %w", core.ErrConflict)
	}
	f.pairs[key] = struct{}{}
	return nil
}

func (f *fakeRepository) Delete(
	_ context.Context,
	userID, propertyID int64,
) error {
	key := pair{userID, propertyID}
	if _, ok := f.pairs[key]; !ok {
		return fmt.Errorf("delete favorite: %w", core.ErrNotFound)
	}
	delete(f.pairs, key)
	return nil
}

func (f *fakeRepository) Exists(
	_ context.Context,
	userID, propertyID int64,
) (bool, error) {
	_, ok := f.pairs[pair{userID, propertyID}]
	return ok, nil
}

func (f *fakeRepository) ListPropertiesForUser(
	_ context.Context,
	userID int64,
) ([]property.Property, error) {
	var out []property.Property
	for key := range f.pairs {
		if key.userID == userID {
			if p, ok := f.properties[key.propertyID]; ok {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type staticChecker map[int64]bool

func (c staticChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	repo.properties[10] = property.Property{ID: 10, ProjectName: "Oakwood Heights"}
	repo.properties[11] = property.Property{ID: 11, ProjectName: "Maple Court"}

	users := staticChecker{7: true, 9: true}
	properties := staticChecker{10: true, 11: true}

	return NewService(repo, users, properties), repo
}

func TestAddTwiceYieldsConflict(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if err := svc.Add(ctx, 7, 10); err != nil {
		t.Fatalf("first Add: %v", err)
	}

	err := svc.Add(ctx, 7, 10)
	if !errors.Is(err, core.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}

	if len(repo.pairs) != 1 {
		t.Errorf("stored %d pairs, want 1", len(repo.pairs))
	}
}

func TestConflictCheckedBeforeExistence(t *testing.T) {
	// A pair left behind by a since-deleted property must still read
	// as Conflict, not NotFound.
	repo := newFakeRepository()
	repo.pairs[pair{7, 99}] = struct{}{}

	svc := NewService(repo, staticChecker{7: true}, staticChecker{})

	err := svc.Add(context.Background(), 7, 99)
	if !errors.Is(err, core.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestAddMissingEndpoints(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Add(ctx, 999, 10); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing user: err = %v, want ErrNotFound", err)
	}
	if err := svc.Add(ctx, 7, 999); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing property: err = %v, want ErrNotFound", err)
	}
}

func TestRemoveAfterAdds(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if err := svc.Add(ctx, 7, 10); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Add(ctx, 7, 10); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("second Add err = %v, want ErrConflict", err)
	}

	if err := svc.Remove(ctx, 7, 10); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(repo.pairs) != 0 {
		t.Errorf("stored %d pairs after remove, want 0", len(repo.pairs))
	}

	err := svc.Remove(ctx, 7, 10)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("second Remove err = %v, want ErrNotFound", err)
	}
}

func TestListForUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Add(ctx, 7, 10); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Add(ctx, 7, 11); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Add(ctx, 9, 10); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := svc.ListForUser(ctx, 7)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}

	if len(got) != 2 {
		t.Errorf("got %d properties for user 7, want 2", len(got))
	}
}
