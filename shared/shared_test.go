package shared_test

import (
	"testing"

	"homestay/shared"
	"homestay/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"areas"},
			expected: "areas",
		},
		{
			name:     "prefix with id",
			parts:    []string{"houses", "detail", "abc-123"},
			expected: "houses:detail:abc-123",
		},
		{
			name:     "empty parts preserved",
			parts:    []string{"houses", "search", "", "7"},
			expected: "houses:search::7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type houseUpdate struct {
		Title string `db:"title"`
		Price int64  `db:"price"`
		Beds  string `db:"beds"`
	}

	fields := shared.TransformFields(houseUpdate{Title: "Lakeside loft", Price: 320}, "user-1")

	if fields["title"] != "Lakeside loft" {
		t.Errorf("unexpected title: %v", fields["title"])
	}

	if fields["price"] != int64(320) {
		t.Errorf("unexpected price: %v", fields["price"])
	}

	if _, ok := fields["beds"]; ok {
		t.Error("zero-valued fields must be skipped")
	}

	if fields["modified_by"] != "user-1" {
		t.Errorf("unexpected modified_by: %v", fields["modified_by"])
	}

	if _, ok := fields["modified_at"]; !ok {
		t.Error("modified_at must always be set")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("house-1", "id", "houses")

	if len(group.Filters) != 1 {
		t.Fatalf("expected a single filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter entry")
	}

	if filter.Field != "id" || filter.Table != "houses" || filter.Value != "house-1" {
		t.Errorf("unexpected filter: %+v", filter)
	}

	where, args := group.GetWhereClause()
	if where != "(houses.id = :id)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["id"] != "house-1" {
		t.Errorf("unexpected args: %+v", args)
	}
}
