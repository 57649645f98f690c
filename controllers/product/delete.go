package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// DELETE /admin/products/:id
func DeleteProduct(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := client.DeleteProduct(c.Request.Context(), st.Session.Token(), uint(id)); err != nil {
			st.Notify.Error("Could not delete product: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		st.Catalog.Remove(uint(id))
		st.Notify.Success("Product deleted.")
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
