package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// PATCH /admin/products/:id
func UpdateProduct(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := client.UpdateProduct(c.Request.Context(), st.Session.Token(), uint(id), input.toBackend())
		if err != nil {
			st.Notify.Error("Could not update product: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		st.Catalog.Update(product)
		st.Notify.Success("Product updated.")
		c.JSON(http.StatusOK, product)
	}
}
