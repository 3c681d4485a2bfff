package llm

// ToolDefinition defines a tool that can be called by the LLM.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ParameterProperty defines a parameter property in JSON Schema format.
type ParameterProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	// Items is the element type for array parameters.
	Items string `json:"items,omitempty"`
}

// NewToolDefinition creates a new tool definition with standard JSON Schema parameters.
func NewToolDefinition(name, description string, properties map[string]ParameterProperty, required []string) ToolDefinition {
	props := make(map[string]any)
	for k, v := range properties {
		prop := map[string]any{
			"type":        v.Type,
			"description": v.Description,
		}
		if v.Items != "" {
			prop["items"] = map[string]any{"type": v.Items}
		}
		props[k] = prop
	}

	return ToolDefinition{
		Name:        name,
		Description: description,
		Parameters: map[string]any{
			"type":       "object",
			"properties": props,
			"required":   required,
		},
	}
}

// FilterCompaniesToolName is the function name the search translator expects.
const FilterCompaniesToolName = "filter_companies"

// FilterCompaniesTool returns the tool definition used to translate a
// free-text query into a structured company filter.
func FilterCompaniesTool() ToolDefinition {
	return NewToolDefinition(
		FilterCompaniesToolName,
		"Filter companies based on criteria like industry, stage, batch, tags, location, or any text in name/description",
		map[string]ParameterProperty{
			"industries": {
				Type:        "array",
				Items:       "string",
				Description: `Filter by industries (e.g., ["AI", "Fintech"])`,
			},
			"stages": {
				Type:        "array",
				Items:       "string",
				Description: `Filter by funding stages (e.g., ["Seed", "Series A"])`,
			},
			"batches": {
				Type:        "array",
				Items:       "string",
				Description: `Filter by batch (e.g., ["S24", "W24"])`,
			},
			"tags": {
				Type:        "array",
				Items:       "string",
				Description: `Filter by tags (e.g., ["AI", "B2B SaaS"])`,
			},
			"locations": {
				Type:        "array",
				Items:       "string",
				Description: "Filter by location/city",
			},
			"searchText": {
				Type:        "string",
				Description: "Search text to match in company name, tagline, or description",
			},
			"featured": {
				Type:        "boolean",
				Description: "Filter only featured companies",
			},
		},
		[]string{},
	)
}
