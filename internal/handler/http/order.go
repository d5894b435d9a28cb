package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	orders *service.OrderService
	logger *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(orders *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// orderListResponse pairs the order page with its pagination metadata.
type orderListResponse struct {
	Orders     any `json:"orders"`
	Pagination any `json:"pagination"`
}

// ListOrders handles GET /api/v1/orders
// Customers see only their own orders; admins see all orders and may filter
// by user.
// @Summary List orders, newest first
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status" Enums(pending,processing,shipped,delivered,cancelled)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(12)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	params := r.URL.Query()

	input := service.ListOrdersInput{
		UserID: user.ID,
		Status: params.Get("status"),
	}
	if user.IsAdmin() {
		input.UserID = params.Get("user_id")
	}
	if v := params.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Page = n
		}
	}
	if v := params.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Limit = n
		}
	}

	orders, pagination, err := h.orders.ListOrders(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: orderListResponse{
		Orders:     orders,
		Pagination: pagination,
	}})
}

// GetOrder handles GET /api/v1/orders/{id}
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	id := chi.URLParam(r, "id")

	order, err := h.orders.GetOrder(r.Context(), id, user)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}

// UpdateStatusRequest is the JSON request body for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// UpdateStatus handles PATCH /api/v1/admin/orders/{id}/status
// @Summary Update an order's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateStatusRequest
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

	order, err := h.orders.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}
