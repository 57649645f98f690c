package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
	"github.com/maturomero/huellitas-tpo-front/store"
)

type AddLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Units     int  `json:"units" binding:"required,min=1"`
}

// POST /cart
func AddLine(client *backend.Client, resolver *images.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		var input AddLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Prefer the mirrored product; fall back to a direct fetch when
		// the catalog has not been loaded in this session yet.
		product, ok := st.Catalog.Product(input.ProductID)
		if !ok {
			fetched, err := client.GetProduct(c.Request.Context(), st.Session.Token(), input.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			product = fetched
		}

		// Never block an add on image resolution; use whatever is cached.
		imageRef, _ := resolver.Cached(product.ID)

		cart, err := st.Cart.AddLine(product, input.Units, imageRef)
		if err != nil {
			if errors.Is(err, store.ErrInsufficientStock) {
				st.Notify.Error("Insufficient stock.")
				c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock", "cart": cart})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		if input.Units > 1 {
			st.Notify.Success(fmt.Sprintf("Added %d units of %s to the cart.", input.Units, product.Name))
		} else {
			st.Notify.Success(fmt.Sprintf("Added 1 unit of %s to the cart.", product.Name))
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:product_id
func RemoveLine() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		// Removing an absent line is a no-op, not an error.
		cart := st.Cart.RemoveLine(uint(productID))
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func Clear() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)
		c.JSON(http.StatusOK, st.Cart.Clear())
	}
}

// GET /cart
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)
		c.JSON(http.StatusOK, st.Cart.Snapshot())
	}
}
