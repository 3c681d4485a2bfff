package models

import "testing"

func filterFixtures() []*Company {
	return []*Company{
		{
			ID: "c1", Name: "Innovate Solutions", Tagline: "AI copilots for operations teams",
			Description: "Workflow automation with large language models.",
			Industry:    "AI", Stage: StageSeed, Batch: "S24",
			Location: "San Francisco, CA", Tags: []string{"B2B SaaS", "Machine Learning"},
			Featured: true,
		},
		{
			ID: "c2", Name: "LedgerPay", Tagline: "Payments infrastructure for marketplaces",
			Description: "Instant settlement rails.",
			Industry:    "Fintech", Stage: StageSeriesA, Batch: "W24",
			Location: "New York, NY", Tags: []string{"Payments", "API"},
			Featured: false,
		},
		{
			ID: "c3", Name: "CarePath Health", Tagline: "Care coordination for clinics",
			Description: "Patient journey tracking.",
			Industry:    "Healthcare", Stage: StageSeed, Batch: "S23",
			Location: "Austin, TX", Tags: []string{"B2B SaaS", "Health IT"},
			Featured: true,
		},
	}
}

func matchedIDs(companies []*Company) []string {
	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	companies := filterFixtures()
	filter := &CompanyFilter{}

	if !filter.IsEmpty() {
		t.Error("expected zero-value filter to be empty")
	}
	if got := filter.Apply(companies); len(got) != len(companies) {
		t.Errorf("expected all %d companies, got %d", len(companies), len(got))
	}
}

func TestFilterFieldsCombineWithAnd(t *testing.T) {
	companies := filterFixtures()

	// Industry alone matches c1; adding a stage the company doesn't have
	// must drop it.
	filter := &CompanyFilter{Industries: []string{"AI"}, Stages: []string{StageSeriesA}}
	if got := filter.Apply(companies); len(got) != 0 {
		t.Errorf("expected no matches, got %v", matchedIDs(got))
	}

	filter = &CompanyFilter{Industries: []string{"AI"}, Stages: []string{StageSeed}}
	got := filter.Apply(companies)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("expected [c1], got %v", matchedIDs(got))
	}
}

func TestFilterValuesCombineWithOr(t *testing.T) {
	companies := filterFixtures()

	filter := &CompanyFilter{Industries: []string{"Fintech", "Healthcare"}}
	got := filter.Apply(companies)
	if len(got) != 2 || got[0].ID != "c2" || got[1].ID != "c3" {
		t.Errorf("expected [c2 c3], got %v", matchedIDs(got))
	}
}

func TestFilterTagsMatchCaseInsensitiveSubstring(t *testing.T) {
	companies := filterFixtures()

	filter := &CompanyFilter{Tags: []string{"saas"}}
	got := filter.Apply(companies)
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Errorf("expected [c1 c3] for tag 'saas', got %v", matchedIDs(got))
	}
}

func TestFilterLocationSubstring(t *testing.T) {
	companies := filterFixtures()

	filter := &CompanyFilter{Locations: []string{"san francisco"}}
	got := filter.Apply(companies)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("expected [c1], got %v", matchedIDs(got))
	}
}

func TestFilterSearchTextSpansNameTaglineDescription(t *testing.T) {
	companies := filterFixtures()

	tests := []struct {
		text string
		want string
	}{
		{"ledgerpay", "c2"},  // name
		{"copilots", "c1"},   // tagline
		{"settlement", "c2"}, // description
	}
	for _, tt := range tests {
		filter := &CompanyFilter{SearchText: tt.text}
		got := filter.Apply(companies)
		if len(got) != 1 || got[0].ID != tt.want {
			t.Errorf("SearchText %q: expected [%s], got %v", tt.text, tt.want, matchedIDs(got))
		}
	}
}

func TestFilterFeatured(t *testing.T) {
	companies := filterFixtures()

	featured := true
	filter := &CompanyFilter{Featured: &featured}
	got := filter.Apply(companies)
	if len(got) != 2 {
		t.Errorf("expected 2 featured companies, got %v", matchedIDs(got))
	}

	notFeatured := false
	filter = &CompanyFilter{Featured: &notFeatured}
	got = filter.Apply(companies)
	if len(got) != 1 || got[0].ID != "c2" {
		t.Errorf("expected [c2], got %v", matchedIDs(got))
	}
}

func TestFilterExactMatchFieldsRejectSubstrings(t *testing.T) {
	companies := filterFixtures()

	// Industry matching is exact, unlike tags and locations.
	filter := &CompanyFilter{Industries: []string{"Fin"}}
	if got := filter.Apply(companies); len(got) != 0 {
		t.Errorf("expected no matches for partial industry, got %v", matchedIDs(got))
	}
}
