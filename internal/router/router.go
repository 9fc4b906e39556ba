package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check
// for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterWebhooks registers the billing provider's callback endpoints.
// These are authenticated by HMAC signature inside the handler, not by
// JWT, so they live outside the /v1 groups.
func RegisterWebhooks(e *echo.Echo, w *handler.WebhookHandler) {
	e.POST("/webhooks/invoices", w.HandleInvoice)
}
