// Package http implements the storefront's HTTP API on chi, from catalog
// browsing through cart, checkout, orders, and the admin dashboard.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/query"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(catalog *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// queryFromRequest builds an engine query from URL parameters. Parsing is
// deliberately forgiving: a malformed value means the corresponding filter
// is skipped or defaulted, never a 400. Listing products always succeeds.
func queryFromRequest(r *http.Request) query.Query {
	params := r.URL.Query()

	q := query.Query{
		Search:    params.Get("search"),
		Category:  params.Get("category"),
		MinPrice:  params.Get("minPrice"),
		MaxPrice:  params.Get("maxPrice"),
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
	}

	if v := params.Get("inStock"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.InStock = b
		}
	}
	if v := params.Get("minRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			q.MinRating = f
		}
	}
	if v := params.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := params.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}

	return q
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description Returns a filtered, sorted, paginated product page with facet metadata
// @Tags products
// @Produce json
// @Param search query string false "Text search across name, description, and category"
// @Param category query string false "Category filter; 'all' disables the filter"
// @Param minPrice query number false "Inclusive minimum price"
// @Param maxPrice query number false "Inclusive maximum price"
// @Param inStock query bool false "Only products with stock"
// @Param minRating query number false "Minimum average rating"
// @Param sortBy query string false "Sort key" Enums(name,price,rating,category,newest)
// @Param sortOrder query string false "Sort direction" Enums(asc,desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(12)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.SearchProducts(r.Context(), queryFromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// FeaturedProducts handles GET /api/v1/products/featured
// @Summary List featured products
// @Tags products
// @Produce json
// @Param limit query int false "Maximum number of products" default(4)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/products/featured [get]
func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := 4
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.catalog.FeaturedProducts(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// GetProduct handles GET /api/v1/products/{id}
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "ProductID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ProductRequest is the JSON request body for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Featured    bool    `json:"featured"`
}

func (req ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	}
}

// CreateProduct handles POST /api/v1/admin/products
// @Summary Create a product
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}

// UpdateProduct handles PUT /api/v1/admin/products/{id}
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body ProductRequest true "New product fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// DeleteProduct handles DELETE /api/v1/admin/products/{id}
// @Summary Delete a product
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
