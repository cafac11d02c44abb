// AngelaMos | 2026
// engine_test.go

package search

import (
	"reflect"
	"testing"
	"time"
)

type listing struct {
	Name     string
	Project  string
	Price    float64
	Floors   int
	Valuated *time.Time
}

func view(l *listing) Fields {
	return Fields{
		ProjectName:     l.Project,
		Price:           l.Price,
		NoOfFloors:      l.Floors,
		DateOfValuation: l.Valuated,
	}
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleListings() []listing {
	return []listing{
		{Name: "a", Project: "Oakwood Heights", Price: 150000, Floors: 2, Valuated: date("2024-03-15")},
		{Name: "b", Project: "Maple Court", Price: 120000, Floors: 1, Valuated: date("2023-11-02")},
		{Name: "c", Project: "Royal Oaks", Price: 250000, Floors: 3, Valuated: date("2024-01-20")},
		{Name: "d", Project: "OAKLAND PARK", Price: 180000, Floors: 2, Valuated: nil},
		{Name: "e", Project: "Cedar Grove", Price: 110000, Floors: 1, Valuated: date("2022-06-30")},
	}
}

func names(listings []listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Name
	}
	return out
}

func TestUnsetCriteriaReturnsAllInOrder(t *testing.T) {
	in := sampleListings()
	got := Apply(in, view, NewCriteria())

	if !reflect.DeepEqual(names(got), []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("got %v, want full input in original order", names(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	in := sampleListings()
	c := NewCriteria()
	c.MinPrice = 120000
	c.ProjectName = "oak"

	first := Apply(in, view, c)
	second := Apply(first, view, c)

	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("second pass %v differs from first %v", names(second), names(first))
	}
}

func TestPriceRangeAndSubstring(t *testing.T) {
	in := sampleListings()
	c := NewCriteria()
	c.MinPrice = 100000
	c.MaxPrice = 200000
	c.ProjectName = "oak"

	got := Apply(in, view, c)

	if !reflect.DeepEqual(names(got), []string{"a", "d"}) {
		t.Errorf("got %v, want [a d]", names(got))
	}
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	in := sampleListings()
	c := NewCriteria()
	c.MinPrice = 150000
	c.MaxPrice = 150000

	got := Apply(in, view, c)

	if !reflect.DeepEqual(names(got), []string{"a"}) {
		t.Errorf("got %v, want [a]", names(got))
	}
}

func TestIntegerExactMatch(t *testing.T) {
	in := sampleListings()
	floors := 1
	c := NewCriteria()
	c.NoOfFloors = &floors

	got := Apply(in, view, c)

	if !reflect.DeepEqual(names(got), []string{"b", "e"}) {
		t.Errorf("got %v, want [b e]", names(got))
	}
}

func TestDatePrefixGranularity(t *testing.T) {
	in := sampleListings()

	cases := []struct {
		prefix string
		want   []string
	}{
		{"2024", []string{"a", "c"}},
		{"2024-03", []string{"a"}},
		{"2024-03-15", []string{"a"}},
		{"2021", []string{}},
	}

	for _, tc := range cases {
		c := NewCriteria()
		c.DatePrefix = tc.prefix

		got := names(Apply(in, view, c))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("prefix %q: got %v, want %v", tc.prefix, got, tc.want)
		}
	}
}

func TestNilDateExcludedByDatePredicate(t *testing.T) {
	in := sampleListings()
	c := NewCriteria()
	c.DatePrefix = "20"

	for _, l := range Apply(in, view, c) {
		if l.Valuated == nil {
			t.Errorf("record %q with nil date matched a date predicate", l.Name)
		}
	}
}

func TestTopNByDateDesc(t *testing.T) {
	in := sampleListings()

	got := TopNByDateDesc(in, view, 3)

	if !reflect.DeepEqual(names(got), []string{"a", "c", "b"}) {
		t.Errorf("got %v, want [a c b]", names(got))
	}

	all := TopNByDateDesc(in, view, 10)
	if len(all) != len(in) {
		t.Fatalf("got %d records, want %d", len(all), len(in))
	}
	if all[len(all)-1].Name != "d" {
		t.Errorf("nil-date record sorted to %q position, want last", all[len(all)-1].Name)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sampleListings()
	before := names(in)

	c := NewCriteria()
	c.ProjectName = "cedar"
	Apply(in, view, c)

	if !reflect.DeepEqual(names(in), before) {
		t.Error("input slice reordered by Apply")
	}
}
