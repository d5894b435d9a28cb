package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
)

// AdminHandler handles HTTP requests for the admin dashboard.
type AdminHandler struct {
	admin  *service.AdminService
	logger *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(admin *service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary Admin dashboard aggregates
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Dashboard(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: stats})
}
