package models

import "testing"

func uintPtr(v uint64) *uint64 { return &v }

func TestRowMatchesSchema(t *testing.T) {
	record := EnrichmentRecord{
		Title:       "Chef X",
		ChannelURL:  "https://www.youtube.com/@chefx",
		Subscribers: uintPtr(1000),
		ViewCount:   uintPtr(50000),
		VideoCount:  uintPtr(42),
		JoinDate:    "2019-01-02T03:04:05Z",
		Country:     "United States",
		Description: "Cooking videos",
		Social: SocialProfileSet{
			Instagram: "https://instagram.com/chefx",
			Twitter:   NotFound,
			Facebook:  NotFound,
			LinkedIn:  NotFound,
			Other:     []string{"https://chefsite.org"},
		},
		Email: "chef@x.com",
	}

	row := record.Row()
	if len(row) != len(SheetSchema) {
		t.Fatalf("row has %d cells, schema has %d columns", len(row), len(SheetSchema))
	}

	want := []any{
		"Chef X",
		"https://www.youtube.com/@chefx",
		uint64(1000),
		uint64(50000),
		uint64(42),
		"2019-01-02T03:04:05Z",
		"United States",
		"Cooking videos",
		"https://instagram.com/chefx",
		NotFound,
		NotFound,
		NotFound,
		"https://chefsite.org",
		"chef@x.com",
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] (%s) = %v, want %v", i, SheetSchema[i], row[i], want[i])
		}
	}
}

func TestRowAbsentCounts(t *testing.T) {
	record := EnrichmentRecord{Title: "Chef X", Social: NewSocialProfileSet()}
	row := record.Row()

	for _, i := range []int{2, 3, 4} {
		if row[i] != NotAvailable {
			t.Errorf("row[%d] (%s) = %v, want %q", i, SheetSchema[i], row[i], NotAvailable)
		}
	}
}

func TestSheetSchemaShape(t *testing.T) {
	if len(SheetSchema) != 14 {
		t.Fatalf("schema has %d columns, want 14", len(SheetSchema))
	}
	if SheetSchema[0] != "Channel Name" || SheetSchema[13] != "Email" {
		t.Errorf("unexpected schema bounds: %q ... %q", SheetSchema[0], SheetSchema[13])
	}
}
