// AngelaMos | 2026
// engine.go

// Package search filters property-shaped record collections with a
// uniform conjunction of optional predicates. Property and transaction
// listings share the same searchable fields, so both route through the
// one engine instead of per-entity filter chains.
package search

import (
	"math"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Criteria is the set of optional predicates. Empty strings and nil
// pointers mean "no constraint". The price bounds are always applied;
// callers pass 0 and no-upper-bound sentinels for unset ends so the
// comparison never special-cases absence.
type Criteria struct {
	SizeSqFt     string
	PropertyType string
	Address      string

	ProjectName string
	Facilities  string

	NoOfFloors *int
	Year       *int

	MinPrice        float64
	MaxPrice        float64
	MinPricePerSqft float64
	MaxPricePerSqft float64

	// DatePrefix matches the canonical yyyy-mm-dd rendering of the
	// valuation date, so "2024", "2024-03", and "2024-03-15" all work.
	DatePrefix string
}

// NewCriteria returns a criteria with every predicate unset: text
// fields empty, integer pointers nil, and the range bounds at their
// pass-everything sentinels.
func NewCriteria() Criteria {
	return Criteria{
		MaxPrice:        math.MaxFloat64,
		MaxPricePerSqft: math.MaxFloat64,
	}
}

// Fields is the projection a record exposes to the engine.
type Fields struct {
	SizeSqFt        string
	PropertyType    string
	NoOfFloors      int
	Address         string
	ProjectName     string
	Price           float64
	Year            int
	PricePerSqft    float64
	Facilities      string
	DateOfValuation *time.Time
}

// Apply returns the records whose fields satisfy every provided
// predicate, preserving input order. The input slice is never
// modified.
func Apply[T any](records []T, view func(*T) Fields, c Criteria) []T {
	out := make([]T, 0, len(records))
	for i := range records {
		if matches(view(&records[i]), c) {
			out = append(out, records[i])
		}
	}
	return out
}

// TopNByDateDesc returns up to n records ordered by valuation date,
// newest first. Records without a date sort last. The sort is stable
// so ties keep input order.
func TopNByDateDesc[T any](records []T, view func(*T) Fields, n int) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		di := view(&out[i]).DateOfValuation
		dj := view(&out[j]).DateOfValuation
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.After(*dj)
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

func matches(f Fields, c Criteria) bool {
	if !equalFold(c.SizeSqFt, f.SizeSqFt) {
		return false
	}
	if !equalFold(c.PropertyType, f.PropertyType) {
		return false
	}
	if !equalFold(c.Address, f.Address) {
		return false
	}

	if !containsFold(c.ProjectName, f.ProjectName) {
		return false
	}
	if !containsFold(c.Facilities, f.Facilities) {
		return false
	}

	if c.NoOfFloors != nil && f.NoOfFloors != *c.NoOfFloors {
		return false
	}
	if c.Year != nil && f.Year != *c.Year {
		return false
	}

	if f.Price < c.MinPrice || f.Price > c.MaxPrice {
		return false
	}
	if f.PricePerSqft < c.MinPricePerSqft ||
		f.PricePerSqft > c.MaxPricePerSqft {
		return false
	}

	if c.DatePrefix != "" {
		// A record without a date cannot satisfy a date predicate.
		if f.DateOfValuation == nil {
			return false
		}
		rendered := f.DateOfValuation.Format(dateLayout)
		if !strings.HasPrefix(rendered, c.DatePrefix) {
			return false
		}
	}

	return true
}

func equalFold(want, have string) bool {
	return want == "" || strings.EqualFold(want, have)
}

func containsFold(want, have string) bool {
	return want == "" ||
		strings.Contains(strings.ToLower(have), strings.ToLower(want))
}
