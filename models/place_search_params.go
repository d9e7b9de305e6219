package models

import (
	"net/url"
	"strconv"
	"strings"
)

// PlaceSearchParams mirrors the place-search query args. Zero values are omitted.
type PlaceSearchParams struct {
	LL         string `json:"ll" validate:"required"`
	Query      string `json:"query"`
	Limit      int    `json:"limit" validate:"min=1,max=50"`
	Radius     *int   `json:"radius" validate:"omitempty,min=1,max=50000"`
	Categories string `json:"categories"`
}

// Validate checks the params and that ll parses as a coordinate.
func (p PlaceSearchParams) Validate() error {
	if err := Validate(p); err != nil {
		return err
	}
	_, err := ParseCoordinate(p.LL)
	return err
}

func (p PlaceSearchParams) ToValues() url.Values {
	q := url.Values{}
	q.Set("ll", p.LL)
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Radius != nil {
		q.Set("radius", strconv.Itoa(*p.Radius))
	}
	if p.Categories != "" {
		q.Set("categories", p.Categories)
	}
	return q
}

// CacheKey identifies a search by all of its params.
func (p PlaceSearchParams) CacheKey() string {
	radius := ""
	if p.Radius != nil {
		radius = strconv.Itoa(*p.Radius)
	}
	return strings.Join([]string{
		p.LL,
		strings.ToLower(strings.TrimSpace(p.Query)),
		strconv.Itoa(p.Limit),
		radius,
		p.Categories,
	}, "|")
}
