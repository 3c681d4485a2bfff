package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/auth"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/services"
)

// AdminHandler exposes dataset seeding and reset for demo environments.
type AdminHandler struct {
	adminService services.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService services.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// RegisterRoutes registers the admin handler's routes on the given mux.
// Both endpoints require the admin role.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)
	mux.HandleFunc("POST /api/admin/seed", adminOnly(h.Seed))
	mux.HandleFunc("POST /api/admin/reset", adminOnly(h.Reset))
}

// Seed handles POST /api/admin/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.Seed(r.Context())
	if err != nil {
		h.logger.Error("Failed to seed dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "seed_failed", "Failed to seed dataset"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: summary}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Reset handles POST /api/admin/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.Reset(r.Context())
	if err != nil {
		h.logger.Error("Failed to reset dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "reset_failed", "Failed to reset dataset"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: summary}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
