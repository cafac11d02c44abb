// AngelaMos | 2026
// criteria.go

package search

import (
	"fmt"
	"net/url"
	"strconv"
)

// CriteriaFromQuery builds filter criteria from request query
// parameters. Missing parameters stay unset; malformed numeric values
// are reported rather than silently ignored.
func CriteriaFromQuery(values url.Values) (Criteria, error) {
	c := NewCriteria()

	c.SizeSqFt = values.Get("size_sq_ft")
	c.PropertyType = values.Get("property_type")
	c.Address = values.Get("address")
	c.ProjectName = values.Get("project_name")
	c.Facilities = values.Get("facilities")
	c.DatePrefix = values.Get("date_of_valuation")

	if v := values.Get("no_of_floors"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid no_of_floors %q", v)
		}
		c.NoOfFloors = &n
	}

	if v := values.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid year %q", v)
		}
		c.Year = &n
	}

	var err error
	if c.MinPrice, err = parseFloat(values, "min_price", c.MinPrice); err != nil {
		return c, err
	}
	if c.MaxPrice, err = parseFloat(values, "max_price", c.MaxPrice); err != nil {
		return c, err
	}
	if c.MinPricePerSqft, err = parseFloat(
		values, "min_price_per_sqft", c.MinPricePerSqft,
	); err != nil {
		return c, err
	}
	if c.MaxPricePerSqft, err = parseFloat(
		values, "max_price_per_sqft", c.MaxPricePerSqft,
	); err != nil {
		return c, err
	}

	return c, nil
}

func parseFloat(
	values url.Values,
	key string,
	fallback float64,
) (float64, error) {
	v := values.Get(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q", key, v)
	}

	return f, nil
}
