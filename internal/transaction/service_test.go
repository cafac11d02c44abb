// AngelaMos | 2026
// service_test.go

package transaction

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/angelamos/realty/internal/core"
	"github.com/angelamos/realty/internal/search"
)

type fakeRepository struct {
	transactions     []Transaction
	nextID           int64
	projectNameCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, t *Transaction) error {
	t.ID = f.nextID
	f.nextID++
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id int64,
) (*Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			copied := f.transactions[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get transaction: %w", core.ErrNotFound)
}

func (f *fakeRepository) Update(_ context.Context, t *Transaction) error {
	for i := range f.transactions {
		if f.transactions[i].ID == t.ID {
			f.transactions[i] = *t
			return nil
		}
	}
	return fmt.Errorf("update transaction: %w", core.ErrNotFound)
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete transaction: %w", core.ErrNotFound)
}

func (f *fakeRepository) ListAll(_ context.Context) ([]Transaction, error) {
	out := make([]Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (f *fakeRepository) ListByProject(
	_ context.Context,
	projectName string,
) ([]Transaction, error) {
	var out []Transaction
	needle := strings.ToLower(projectName)
	for _, t := range f.transactions {
		if strings.Contains(strings.ToLower(t.ProjectName), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) ProjectNames(
	_ context.Context,
	prefix string,
) ([]string, error) {
	f.projectNameCalls++

	seen := make(map[string]struct{})
	var names []string
	for _, t := range f.transactions {
		if !strings.HasPrefix(
			strings.ToLower(t.ProjectName),
			strings.ToLower(prefix),
		) {
			continue
		}
		if _, ok := seen[t.ProjectName]; ok {
			continue
		}
		seen[t.ProjectName] = struct{}{}
		names = append(names, t.ProjectName)
	}
	return names, nil
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func seedService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()

	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	records := []CreateTransactionRequest{
		{SizeSqFt: "1200", PropertyType: "Apartment", Address: "12 Elm St", ProjectName: "Oakwood Heights", Price: 150000, Year: 2019, PricePerSqft: 125, DateOfValuation: date("2024-03-15")},
		{SizeSqFt: "900", PropertyType: "Studio", Address: "4 Birch Ave", ProjectName: "Oakwood Heights", Price: 120000, Year: 2021, PricePerSqft: 133, DateOfValuation: date("2023-07-01")},
		{SizeSqFt: "2400", PropertyType: "Villa", Address: "88 Lake Rd", ProjectName: "Royal Oaks", Price: 250000, Year: 2017, PricePerSqft: 104, DateOfValuation: date("2024-01-20")},
		{SizeSqFt: "1100", PropertyType: "Apartment", Address: "9 Pine Ct", ProjectName: "Oakwood Heights", Price: 140000, Year: 2020, PricePerSqft: 127, DateOfValuation: date("2024-05-02")},
		{SizeSqFt: "1500", PropertyType: "Townhouse", Address: "3 Fir Ln", ProjectName: "Oakwood Heights", Price: 190000, Year: 2018, PricePerSqft: 126, DateOfValuation: date("2022-12-11")},
		{SizeSqFt: "1300", PropertyType: "Apartment", Address: "7 Ash Way", ProjectName: "Oakwood Heights", Price: 160000, Year: 2022, PricePerSqft: 123, DateOfValuation: date("2023-02-08")},
		{SizeSqFt: "1250", PropertyType: "Apartment", Address: "2 Yew Rd", ProjectName: "Oakwood Heights", Price: 155000, Year: 2023, PricePerSqft: 124, DateOfValuation: date("2024-06-30")},
	}

	for _, req := range records {
		if _, err := svc.Create(ctx, 1, req); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}

	return svc, repo
}

func TestSearchFiltersSales(t *testing.T) {
	svc, _ := seedService(t)

	c := search.NewCriteria()
	c.PropertyType = "apartment"
	c.MaxPrice = 155000

	got, err := svc.Search(context.Background(), c)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for _, tx := range got {
		if tx.Price > 155000 || !strings.EqualFold(tx.PropertyType, "apartment") {
			t.Errorf("record %d escaped the filter", tx.ID)
		}
	}
}

func TestRecentByProjectCapsAtFiveNewestFirst(t *testing.T) {
	svc, _ := seedService(t)

	got, err := svc.RecentByProject(context.Background(), "Oakwood Heights")
	if err != nil {
		t.Fatalf("RecentByProject: %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("got %d records, want 5", len(got))
	}

	for i := 1; i < len(got); i++ {
		prev := got[i-1].DateOfValuation
		cur := got[i].DateOfValuation
		if prev == nil || cur == nil {
			t.Fatal("seeded records all carry dates")
		}
		if cur.After(*prev) {
			t.Errorf("records out of order at index %d", i)
		}
	}

	if !got[0].DateOfValuation.Equal(*date("2024-06-30")) {
		t.Errorf("newest record dated %v, want 2024-06-30", got[0].DateOfValuation)
	}
}

func TestSuggestProjectsWithoutCache(t *testing.T) {
	svc, repo := seedService(t)

	names, err := svc.SuggestProjects(context.Background(), "oak")
	if err != nil {
		t.Fatalf("SuggestProjects: %v", err)
	}

	if len(names) != 1 || names[0] != "Oakwood Heights" {
		t.Errorf("got %v, want [Oakwood Heights]", names)
	}
	if repo.projectNameCalls != 1 {
		t.Errorf("repo queried %d times, want 1", repo.projectNameCalls)
	}
}
