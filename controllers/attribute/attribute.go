package attributeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/middleware"
)

// GET /animals
func GetAnimals() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		animals, err := st.Attrs.FetchAnimals(c.Request.Context(), st.Session.Token())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch animals"})
			return
		}
		c.JSON(http.StatusOK, animals)
	}
}

// GET /categories
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		categories, err := st.Attrs.FetchCategories(c.Request.Context(), st.Session.Token())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
