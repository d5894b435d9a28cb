package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// Services bundles the service dependencies the router wires up.
type Services struct {
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Checkout *service.CheckoutService
	Orders   *service.OrderService
	Reviews  *service.ReviewService
	Admin    *service.AdminService
}

// NewRouter creates a chi router with all storefront routes registered.
// Catalog browsing is public; cart, checkout, and order routes require an
// authenticated identity; admin routes additionally require the admin role.
func NewRouter(
	svcs Services,
	users repository.UserRepository,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authenticate := Authenticate(users, logger)

	productHandler := NewProductHandler(svcs.Catalog, logger)
	reviewHandler := NewReviewHandler(svcs.Reviews, logger)
	categoryHandler := NewCategoryHandler(svcs.Catalog, logger)
	cartHandler := NewCartHandler(svcs.Cart, logger)
	checkoutHandler := NewCheckoutHandler(svcs.Checkout, logger)
	orderHandler := NewOrderHandler(svcs.Orders, logger)
	adminHandler := NewAdminHandler(svcs.Admin, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public catalog routes
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/featured", productHandler.FeaturedProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
		r.Get("/products/{productId}/reviews", reviewHandler.ListReviews)
		r.Get("/categories", categoryHandler.ListCategories)

		// Authenticated customer routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/products/{productId}/reviews", reviewHandler.CreateReview)

			r.Get("/cart", cartHandler.GetCart)
			r.Delete("/cart", cartHandler.ClearCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{productId}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Post("/checkout", checkoutHandler.Checkout)

			r.Get("/orders", orderHandler.ListOrders)
			r.Get("/orders/{id}", orderHandler.GetOrder)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(RequireAdmin)

			r.Get("/dashboard", adminHandler.Dashboard)

			r.Post("/products", productHandler.CreateProduct)
			r.Put("/products/{id}", productHandler.UpdateProduct)
			r.Delete("/products/{id}", productHandler.DeleteProduct)

			r.Patch("/orders/{id}/status", orderHandler.UpdateStatus)
		})
	})

	return r
}
