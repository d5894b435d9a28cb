package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints. All routes require
// an authenticated user; the cart is addressed by the identity in context.
type CartHandler struct {
	cart   *service.CartService
	logger *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(cart *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cart,
		logger: logger,
	}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=100"`
}

// UpdateQuantityRequest is the JSON request body for updating an item quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=100"`
}

// GetCart handles GET /api/v1/cart
// @Summary Get the current user's cart
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	cart, err := h.cart.GetCart(r.Context(), user.ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items
// @Summary Add an item to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item to add"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req AddItemRequest
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

	cart, err := h.cart.AddItem(r.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// UpdateItem handles PUT /api/v1/cart/items/{productId}
// @Summary Update a cart item quantity; quantity 0 removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateQuantityRequest
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

	cart, err := h.cart.UpdateItemQuantity(r.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
// @Summary Remove an item from the cart
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	cart, err := h.cart.RemoveItem(r.Context(), user.ID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
// @Summary Remove all items from the cart
// @Tags cart
// @Success 204
// @Router /api/v1/cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	if err := h.cart.ClearCart(r.Context(), user.ID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
