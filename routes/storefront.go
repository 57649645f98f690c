package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	attributeControllers "github.com/maturomero/huellitas-tpo-front/controllers/attribute"
	cartControllers "github.com/maturomero/huellitas-tpo-front/controllers/cart"
	notifyControllers "github.com/maturomero/huellitas-tpo-front/controllers/notify"
	orderControllers "github.com/maturomero/huellitas-tpo-front/controllers/order"
	productcontroller "github.com/maturomero/huellitas-tpo-front/controllers/product"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// SetupStorefrontRoutes registers browsing, cart, order and
// notification endpoints.
func SetupStorefrontRoutes(r *gin.Engine, client *backend.Client, resolver *images.Resolver) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts())
	r.GET("/products/:id", productcontroller.GetProductByID(client))
	r.GET("/products/:id/image", productcontroller.GetProductImage(resolver))

	// ──────────────── Reference Lists ────────────────
	r.GET("/animals", attributeControllers.GetAnimals())
	r.GET("/categories", attributeControllers.GetCategories())

	// ──────────────── Notifications ────────────────
	r.GET("/notifications", notifyControllers.GetNotifications())
	r.GET("/notifications/ws", notifyControllers.NotificationsWebSocketHandler())

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.GET("", cartControllers.Get())
		cartGroup.POST("", cartControllers.AddLine(client, resolver))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveLine())
		cartGroup.DELETE("", cartControllers.Clear())
	}

	// ──────────────── Orders ────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.GET("", orderControllers.GetOrdersHandler())
		orders.POST("", orderControllers.PlaceOrderHandler())
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler())
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler())
	}
}
