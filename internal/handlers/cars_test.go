package handlers

import (
	"net/url"
	"strings"
	"testing"

	"RENTWHEELS_BACK-END/internal/dto"
)

func TestParseCarFilter(t *testing.T) {
	q := url.Values{}
	q.Set("category", "SUV")
	q.Set("transmission", "Automatic")
	q.Set("minPrice", "40")
	q.Set("maxPrice", "90.5")

	f := parseCarFilter(q)
	if f.Category != "SUV" || f.Transmission != "Automatic" {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 40 {
		t.Fatalf("minPrice not parsed: %+v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 90.5 {
		t.Fatalf("maxPrice not parsed: %+v", f.MaxPrice)
	}
}

func TestParseCarFilterIgnoresBadPrices(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "cheap")
	q.Set("maxPrice", "")

	f := parseCarFilter(q)
	if f.MinPrice != nil || f.MaxPrice != nil {
		t.Fatalf("expected unparseable bounds to be dropped: %+v", f)
	}
}

func TestBuildCarListQueryNoFilters(t *testing.T) {
	query, args := buildCarListQuery(dto.CarFilter{})
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "available = TRUE") {
		t.Fatalf("availability gate missing from query: %s", query)
	}
	if strings.Contains(query, "AND") {
		t.Fatalf("expected no filter clauses: %s", query)
	}
}

func TestBuildCarListQuerySingleFilter(t *testing.T) {
	query, args := buildCarListQuery(dto.CarFilter{Category: "SUV"})
	if len(args) != 1 || args[0] != "SUV" {
		t.Fatalf("unexpected args: %v", args)
	}
	if !strings.Contains(query, "category = $1") {
		t.Fatalf("category clause missing: %s", query)
	}
}

func TestBuildCarListQueryAllFilters(t *testing.T) {
	min, max := 40.0, 90.0
	query, args := buildCarListQuery(dto.CarFilter{
		Category:     "SUV",
		Transmission: "Automatic",
		MinPrice:     &min,
		MaxPrice:     &max,
	})

	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
	// Placeholders are assigned in append order
	if args[0] != "SUV" || args[1] != 40.0 || args[2] != 90.0 || args[3] != "Automatic" {
		t.Fatalf("unexpected arg order: %v", args)
	}
	for _, clause := range []string{
		"category = $1",
		"price_per_day >= $2",
		"price_per_day <= $3",
		"transmission = $4",
	} {
		if !strings.Contains(query, clause) {
			t.Fatalf("missing clause %q in query: %s", clause, query)
		}
	}
}
