package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	productcontroller "github.com/maturomero/huellitas-tpo-front/controllers/product"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// authenticated session with the ADMIN role.
func SetupAdminRoutes(r *gin.Engine, client *backend.Client, resolver *images.Resolver) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		adminGroup.POST("/products", productcontroller.CreateProduct(client))
		adminGroup.PATCH("/products/:id", productcontroller.UpdateProduct(client))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(client))
		adminGroup.POST("/products/:id/images", productcontroller.UploadProductImages(client, resolver))
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel())
	}
}
