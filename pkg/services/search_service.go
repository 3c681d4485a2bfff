package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/llm"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/security"
)

// SearchResult is the outcome of a natural-language company search.
// Translation failures never empty the result: Companies always holds a
// usable list, with ErrorKind/ErrorMessage describing what went wrong.
type SearchResult struct {
	Companies    []*models.Company     `json:"companies"`
	Filters      *models.CompanyFilter `json:"filters"`
	Query        string                `json:"query,omitempty"`
	ErrorKind    string                `json:"errorKind,omitempty"`
	ErrorMessage string                `json:"errorMessage,omitempty"`
}

// SearchService translates free-text queries into structured company
// filters via an LLM tool call, then applies them deterministically.
type SearchService interface {
	Search(ctx context.Context, query string) *SearchResult
}

type searchService struct {
	companyService CompanyService
	toolCaller     llm.ToolCaller // nil disables translation
	logger         *zap.Logger
}

// NewSearchService creates a new search service. Pass a nil toolCaller to
// run without an AI provider; searches then return the unfiltered list.
func NewSearchService(companyService CompanyService, toolCaller llm.ToolCaller, logger *zap.Logger) SearchService {
	return &searchService{
		companyService: companyService,
		toolCaller:     toolCaller,
		logger:         logger,
	}
}

const searchPromptTemplate = `You are a helpful assistant that filters startup companies for a demo day platform.

Available companies data structure:
- id, name, tagline, description
- industry: AI, Fintech, Healthcare, Climate Tech, Security, Industrial
- stage: Pre-Seed, Seed, Series A, Series B
- batch: S24, W24, S23
- tags: array of strings
- location: city, state
- featured: boolean

User query: %q

Based on this query, determine the appropriate filter criteria and call the filter_companies function.
Be flexible and understand natural language queries like:
- "AI companies" -> filter by industry: AI
- "seed stage startups in SF" -> filter by stage: Seed, location: San Francisco
- "B2B SaaS companies" -> filter by tags containing "B2B SaaS"
- "featured companies" -> filter by featured: true
- "fintech or healthcare" -> filter by industries: Fintech, Healthcare`

func (s *searchService) Search(ctx context.Context, query string) *SearchResult {
	companies := s.companyService.List(ctx)
	result := &SearchResult{
		Companies: companies,
		Filters:   &models.CompanyFilter{},
		Query:     query,
	}

	if isBlank(query) {
		return result
	}

	if s.toolCaller == nil {
		s.logger.Debug("AI search disabled, returning unfiltered list")
		return result
	}

	// The query is interpolated into the prompt; screen it first. A flagged
	// query falls back to the unfiltered list rather than reaching the model.
	if hit := security.CheckFieldForInjection("query", query); hit != nil {
		s.logger.Warn("Injection pattern in search query",
			zap.String("fingerprint", hit.Fingerprint))
		return result
	}

	prompt := fmt.Sprintf(searchPromptTemplate, query)
	call, err := s.toolCaller.CallTool(ctx, prompt, llm.FilterCompaniesTool())
	if err != nil {
		s.classifyError(err, result)
		return result
	}
	if call == nil {
		// Model answered without a function call (ambiguous query): fail
		// open with the full list and an empty filter.
		s.logger.Debug("No function call in search response", zap.String("query", query))
		return result
	}

	filter := &models.CompanyFilter{}
	if err := json.Unmarshal([]byte(call.Arguments), filter); err != nil {
		s.logger.Warn("Unparseable filter arguments from model",
			zap.String("arguments", call.Arguments),
			zap.Error(err))
		result.ErrorKind = string(llm.ErrorTypeUnknown)
		result.ErrorMessage = "Failed to process AI search"
		return result
	}

	result.Filters = filter
	result.Companies = filter.Apply(companies)

	s.logger.Info("AI search completed",
		zap.String("query", query),
		zap.Int("matched", len(result.Companies)),
		zap.Int("total", len(companies)))

	return result
}

// classifyError maps a translation failure onto the caller-facing error
// fields, keeping the unfiltered company list in place.
func (s *searchService) classifyError(err error, result *SearchResult) {
	kind := llm.ClassifyError(err).Type
	result.ErrorKind = string(kind)

	switch kind {
	case llm.ErrorTypeRateLimit:
		result.ErrorMessage = "API rate limit exceeded. Please try again in a few moments."
	case llm.ErrorTypeAuth:
		result.ErrorMessage = "API configuration error. Please contact support."
	default:
		result.ErrorMessage = "Failed to process AI search"
	}

	s.logger.Error("AI search translation failed",
		zap.String("kind", string(kind)),
		zap.Error(err))
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
