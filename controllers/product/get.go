package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// GetProductByID returns a single product and makes it the session's
// current product.
// URL param: /products/:id
func GetProductByID(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if product, ok := st.Catalog.SetCurrent(uint(id)); ok {
			c.JSON(http.StatusOK, product)
			return
		}

		product, err := client.GetProduct(c.Request.Context(), st.Session.Token(), uint(id))
		if err != nil {
			if apiErr, ok := err.(*backend.APIError); ok && apiErr.Status == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProductImage resolves the product's first image to a data URI,
// retrying while the backend catches up. A product that stays imageless
// gets the placeholder, never an error.
// URL param: /products/:id/image
func GetProductImage(resolver *images.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Known image ids skip the discovery stage.
		var knownIDs []uint
		if product, ok := st.Catalog.Product(uint(id)); ok {
			knownIDs = product.ImageIDs
		}

		src := resolver.Resolve(c.Request.Context(), st.Session.Token(), uint(id), knownIDs)
		c.JSON(http.StatusOK, gin.H{"id": id, "src": src})
	}
}
