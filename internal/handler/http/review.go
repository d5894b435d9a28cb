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

// ReviewHandler handles HTTP requests for product review endpoints.
type ReviewHandler struct {
	reviews *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(reviews *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// CreateReviewRequest is the JSON request body for posting a review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ListReviews handles GET /api/v1/products/{productId}/reviews
// @Summary List reviews for a product, newest first
// @Tags reviews
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/products/{productId}/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	reviews, err := h.reviews.ListReviews(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}

// CreateReview handles POST /api/v1/products/{productId}/reviews
// @Summary Post a review for a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body CreateReviewRequest true "Review to post"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/products/{productId}/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateReviewRequest
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

	review, err := h.reviews.CreateReview(r.Context(), productID, user, service.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}
