package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/auth"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/services"
)

// CreateConnectionRequest for POST /api/connections
type CreateConnectionRequest struct {
	InvestorID       string   `json:"investorId,omitempty"`
	InvestorName     string   `json:"investorName"`
	InvestorEmail    string   `json:"investorEmail"`
	InvestorFirm     string   `json:"investorFirm,omitempty"`
	InvestorLinkedIn string   `json:"investorLinkedIn,omitempty"`
	CompanyID        string   `json:"companyId"`
	CompanyName      string   `json:"companyName"`
	Message          string   `json:"message"`
	Interests        []string `json:"interests,omitempty"`
	CheckSize        string   `json:"checkSize,omitempty"`
	Timeline         string   `json:"timeline,omitempty"`
}

// UpdateConnectionRequest for PATCH /api/connections/{id}.
// Absent fields are left untouched.
type UpdateConnectionRequest struct {
	Status          *models.ConnectionStatus `json:"status,omitempty"`
	PearNotes       *string                  `json:"pearNotes,omitempty"`
	FounderResponse *string                  `json:"founderResponse,omitempty"`
}

// ConnectionListResponse for GET /api/connections
type ConnectionListResponse struct {
	Connections []*models.ConnectionRequest `json:"connections"`
	Total       int                         `json:"total"`
}

// UpdateConnectionResponse for PATCH /api/connections/{id}. Notification
// is present only when the update accepted the request.
type UpdateConnectionResponse struct {
	Connection   *models.ConnectionRequest `json:"connection"`
	Notification *services.Notification    `json:"notification,omitempty"`
}

// ConnectionHandler handles connection request HTTP endpoints.
type ConnectionHandler struct {
	connectionService services.ConnectionService
	logger            *zap.Logger
}

// NewConnectionHandler creates a new connection handler.
func NewConnectionHandler(connectionService services.ConnectionService, logger *zap.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the connection handler's routes on the given mux.
// Creation is open to unauthenticated investors; reads and review updates
// require a login.
func (h *ConnectionHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("POST /api/connections", h.Create)
	mux.HandleFunc("GET /api/connections", authMiddleware.RequireAuth(h.List))
	mux.HandleFunc("GET /api/connections/{id}", authMiddleware.RequireAuth(h.Get))
	mux.HandleFunc("PATCH /api/connections/{id}", authMiddleware.RequireAuth(h.Update))
}

// Create handles POST /api/connections
func (h *ConnectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	input := &services.CreateConnectionInput{
		InvestorID:       req.InvestorID,
		InvestorName:     req.InvestorName,
		InvestorEmail:    req.InvestorEmail,
		InvestorFirm:     req.InvestorFirm,
		InvestorLinkedIn: req.InvestorLinkedIn,
		CompanyID:        req.CompanyID,
		CompanyName:      req.CompanyName,
		Message:          req.Message,
		Interests:        req.Interests,
		CheckSize:        req.CheckSize,
		Timeline:         req.Timeline,
	}

	connection, err := h.connectionService.Create(r.Context(), input)
	if err != nil {
		var ve *apperrors.ValidationError
		switch {
		case errors.As(err, &ve):
			message := "Missing required fields: " + strings.Join(ve.MissingFields, ", ")
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", message); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrInvalidInput):
			if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			h.logger.Error("Failed to create connection request", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "create_connection_failed", "Failed to create connection request"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: connection}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/connections
// Supports ?companyId=, ?investorId= and ?stats=true query modes.
func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("stats") == "true" {
		stats, err := h.connectionService.Stats(ctx)
		if err != nil {
			h.logger.Error("Failed to compute connection stats", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "connection_stats_failed", "Failed to compute stats"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
		return
	}

	var (
		connections []*models.ConnectionRequest
		err         error
	)
	switch {
	case r.URL.Query().Get("companyId") != "":
		connections, err = h.connectionService.ListByCompany(ctx, r.URL.Query().Get("companyId"))
	case r.URL.Query().Get("investorId") != "":
		connections, err = h.connectionService.ListByInvestor(ctx, r.URL.Query().Get("investorId"))
	default:
		connections, err = h.connectionService.List(ctx)
	}
	if err != nil {
		h.logger.Error("Failed to list connection requests", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_connections_failed", "Failed to list connection requests"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ConnectionListResponse{
		Connections: connections,
		Total:       len(connections),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/connections/{id}
func (h *ConnectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	connection, err := h.connectionService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "connection_not_found", "Connection request not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to get connection request", zap.String("connection_id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "get_connection_failed", "Failed to load connection request"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: connection}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PATCH /api/connections/{id}
func (h *ConnectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	input := &services.UpdateConnectionInput{
		Status:          req.Status,
		PearNotes:       req.PearNotes,
		FounderResponse: req.FounderResponse,
	}

	connection, notification, err := h.connectionService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			if err := ErrorResponse(w, http.StatusNotFound, "connection_not_found", "Connection request not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrInvalidTransition):
			if err := ErrorResponse(w, http.StatusConflict, "invalid_transition", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			h.logger.Error("Failed to update connection request", zap.String("connection_id", id), zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "update_connection_failed", "Failed to update connection request"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	response := UpdateConnectionResponse{
		Connection:   connection,
		Notification: notification,
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
