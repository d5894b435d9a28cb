package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// CheckoutHandler handles HTTP requests for the checkout endpoint.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(checkout *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// CheckoutRequest is the JSON request body for placing an order.
type CheckoutRequest struct {
	ShippingAddress AddressRequest `json:"shipping_address" validate:"required"`
	PaymentMethod   string         `json:"payment_method" validate:"required,oneof=card paypal"`
}

// AddressRequest is the shipping address portion of a checkout request.
type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Checkout handles POST /api/v1/checkout
// @Summary Place an order from the current cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Shipping address and payment method"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CheckoutRequest
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

	order, err := h.checkout.Checkout(r.Context(), user.ID, service.CheckoutInput{
		ShippingAddress: domain.Address{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
