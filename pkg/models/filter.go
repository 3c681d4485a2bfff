package models

import "strings"

// CompanyFilter is the structured representation of a free-text search
// query. Fields combine with AND; values within a multi-valued field
// combine with OR. Empty fields impose no constraint.
type CompanyFilter struct {
	Industries []string `json:"industries,omitempty"`
	Stages     []string `json:"stages,omitempty"`
	Batches    []string `json:"batches,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	SearchText string   `json:"searchText,omitempty"`
	Featured   *bool    `json:"featured,omitempty"`
}

// IsEmpty reports whether the filter imposes no constraints at all.
func (f *CompanyFilter) IsEmpty() bool {
	return len(f.Industries) == 0 &&
		len(f.Stages) == 0 &&
		len(f.Batches) == 0 &&
		len(f.Tags) == 0 &&
		len(f.Locations) == 0 &&
		f.SearchText == "" &&
		f.Featured == nil
}

// Matches reports whether a company satisfies every non-empty field of
// the filter. Industries, stages and batches are exact matches; tags and
// locations are case-insensitive substring matches; SearchText matches
// against name, tagline or description.
func (f *CompanyFilter) Matches(c *Company) bool {
	if len(f.Industries) > 0 && !containsExact(f.Industries, c.Industry) {
		return false
	}
	if len(f.Stages) > 0 && !containsExact(f.Stages, c.Stage) {
		return false
	}
	if len(f.Batches) > 0 && !containsExact(f.Batches, c.Batch) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatches(f.Tags, c.Tags) {
		return false
	}
	if len(f.Locations) > 0 && !anySubstringMatches(f.Locations, c.Location) {
		return false
	}
	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Tagline), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) {
			return false
		}
	}
	if f.Featured != nil && c.Featured != *f.Featured {
		return false
	}
	return true
}

// Apply returns the companies that match the filter, preserving input order.
func (f *CompanyFilter) Apply(companies []*Company) []*Company {
	if f.IsEmpty() {
		return companies
	}
	matched := make([]*Company, 0, len(companies))
	for _, c := range companies {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func anySubstringMatches(needles []string, haystack string) bool {
	lower := strings.ToLower(haystack)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func anyTagMatches(needles, tags []string) bool {
	for _, tag := range tags {
		if anySubstringMatches(needles, tag) {
			return true
		}
	}
	return false
}
