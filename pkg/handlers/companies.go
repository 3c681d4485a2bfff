package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/services"
)

// CompanyListResponse for GET /api/companies
type CompanyListResponse struct {
	Companies []*models.Company `json:"companies"`
	Total     int               `json:"total"`
}

// CompanyHandler serves the company directory.
type CompanyHandler struct {
	companyService services.CompanyService
	logger         *zap.Logger
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService services.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// RegisterRoutes registers the company handler's routes on the given mux.
func (h *CompanyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/companies", h.List)
	mux.HandleFunc("GET /api/companies/{id}", h.Get)
}

// List handles GET /api/companies
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies := h.companyService.List(r.Context())

	response := CompanyListResponse{
		Companies: companies,
		Total:     len(companies),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/companies/{id}
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	company, err := h.companyService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "company_not_found", "Company not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to get company", zap.String("company_id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "get_company_failed", "Failed to load company"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: company}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
