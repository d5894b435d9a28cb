package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
)

// CategoryHandler handles HTTP requests for category endpoints.
type CategoryHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(catalog *service.CatalogService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListCategories handles GET /api/v1/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.ListCategories(r.Context())})
}
