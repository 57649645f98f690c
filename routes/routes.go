package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
	"github.com/maturomero/huellitas-tpo-front/store"
)

// SetupRoutes is the single entry-point that wires up every route
// group. All routes run behind the session middleware.
func SetupRoutes(r *gin.Engine, reg *store.Registry, client *backend.Client, resolver *images.Resolver) {
	r.Use(middleware.Sessions(reg))

	// Public auth + session routes
	SetupAuthRoutes(r)

	// Storefront routes (browse, cart, orders, notifications)
	SetupStorefrontRoutes(r, client, resolver)

	// Admin routes (ADMIN profile required)
	SetupAdminRoutes(r, client, resolver)
}
